package auth

import (
	"context"
	"sync"

	"lakeside-exchange/marketplace-backend/pkg/apperrors"
)

// Repository owns the collection of user accounts.
type Repository interface {
	Insert(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
}

type memoryRepository struct {
	mu      sync.RWMutex
	byID    map[string]*User
	byEmail map[string]string
}

// NewMemoryRepository creates an empty in-memory user store.
func NewMemoryRepository() Repository {
	return &memoryRepository{
		byID:    make(map[string]*User),
		byEmail: make(map[string]string),
	}
}

func (r *memoryRepository) Insert(ctx context.Context, u *User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byEmail[u.Email]; exists {
		return apperrors.Validation("email %s is already registered", u.Email)
	}
	clone := *u
	r.byID[u.ID] = &clone
	r.byEmail[u.Email] = u.ID
	return nil
}

func (r *memoryRepository) GetByID(ctx context.Context, id string) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return nil, apperrors.NotFound("user %s not found", id)
	}
	clone := *u
	return &clone, nil
}

func (r *memoryRepository) GetByEmail(ctx context.Context, email string) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[email]
	if !ok {
		return nil, apperrors.NotFound("no account for %s", email)
	}
	clone := *r.byID[id]
	return &clone, nil
}
