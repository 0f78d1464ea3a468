package auth

import (
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"lakeside-exchange/marketplace-backend/pkg/apperrors"
	"lakeside-exchange/marketplace-backend/pkg/respond"
)

// Handler exposes the auth HTTP surface.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	auth := rg.Group("/auth")
	{
		auth.POST("/register", h.register)
		auth.POST("/login", h.login)
		auth.GET("/me", h.me)
	}
}

func (h *Handler) register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.BadRequest(c, "invalid request body")
		return
	}

	session, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		respond.Error(c, err)
		return
	}
	respond.Created(c, session)
}

func (h *Handler) login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.BadRequest(c, "invalid request body")
		return
	}

	session, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		if apperrors.KindOf(err) == apperrors.KindForbidden {
			respond.Unauthorized(c, "INVALID_CREDENTIALS", "invalid email or password")
			return
		}
		respond.Error(c, err)
		return
	}
	respond.OK(c, session)
}

func (h *Handler) me(c *gin.Context) {
	token := bearerToken(c)
	if token == "" {
		respond.Unauthorized(c, "MISSING_TOKEN", "authorization header required")
		return
	}

	user, err := h.service.UserFromToken(c.Request.Context(), token)
	if err != nil {
		if apperrors.KindOf(err) == apperrors.KindForbidden {
			respond.Unauthorized(c, "INVALID_TOKEN", "invalid or expired token")
			return
		}
		respond.Error(c, err)
		return
	}
	respond.OK(c, user)
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return strings.TrimSpace(parts[1])
	}
	return strings.TrimSpace(header)
}
