package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"lakeside-exchange/marketplace-backend/internal/config"
	"lakeside-exchange/marketplace-backend/pkg/apperrors"
)

// RegisterRequest creates a new investor account.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
}

// LoginRequest authenticates an existing account.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Service issues and verifies JWT sessions over the user store.
type Service struct {
	repo     Repository
	security config.SecurityConfig
	logger   *zap.Logger
}

func NewService(repo Repository, security config.SecurityConfig, logger *zap.Logger) *Service {
	return &Service{repo: repo, security: security, logger: logger}
}

// Register creates an account with a bcrypt-hashed password and
// returns a fresh session.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*Session, error) {
	if req.Email == "" || req.Password == "" {
		return nil, apperrors.Validation("email and password are required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.Internal("failed to hash password")
	}

	now := time.Now()
	user := &User{
		ID:           fmt.Sprintf("user-%s", uuid.NewString()[:8]),
		Email:        req.Email,
		PasswordHash: string(hash),
		Name:         req.Name,
		Role:         RoleInvestor,
		Phone:        req.Phone,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.repo.Insert(ctx, user); err != nil {
		return nil, err
	}

	token, err := s.issueToken(user.ID)
	if err != nil {
		return nil, err
	}
	s.logger.Info("user registered", zap.String("user_id", user.ID))
	return &Session{Token: token, User: user}, nil
}

// Login verifies credentials and returns a session. Unknown email and
// wrong password are deliberately indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*Session, error) {
	user, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, apperrors.Forbidden("invalid email or password")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, apperrors.Forbidden("invalid email or password")
	}

	token, err := s.issueToken(user.ID)
	if err != nil {
		return nil, err
	}
	return &Session{Token: token, User: user}, nil
}

// UserFromToken validates a bearer token and loads its user.
func (s *Service) UserFromToken(ctx context.Context, tokenString string) (*User, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(s.security.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, apperrors.Forbidden("invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, apperrors.Forbidden("invalid token claims")
	}
	userID, _ := claims["userId"].(string)
	if userID == "" {
		return nil, apperrors.Forbidden("invalid token claims")
	}
	return s.repo.GetByID(ctx, userID)
}

func (s *Service) issueToken(userID string) (string, error) {
	ttl := s.security.TokenTTL
	if ttl == 0 {
		ttl = 7 * 24 * time.Hour
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId": userID,
		"exp":    time.Now().Add(ttl).Unix(),
	})
	signed, err := token.SignedString([]byte(s.security.JWTSecret))
	if err != nil {
		return "", apperrors.Internal("failed to sign token")
	}
	return signed, nil
}
