package investments

import (
	"context"
	"sync"

	"lakeside-exchange/marketplace-backend/pkg/apperrors"
)

// Repository owns the collection of investment records.
type Repository interface {
	Insert(ctx context.Context, inv *Investment) error
	GetByID(ctx context.Context, id string) (*Investment, error)
	List(ctx context.Context) ([]*Investment, error)
	ListByUser(ctx context.Context, userID string) ([]*Investment, error)
}

type memoryRepository struct {
	mu    sync.RWMutex
	byID  map[string]*Investment
	order []string
}

// NewMemoryRepository creates an empty in-memory investment store.
func NewMemoryRepository() Repository {
	return &memoryRepository{
		byID: make(map[string]*Investment),
	}
}

func (r *memoryRepository) Insert(ctx context.Context, inv *Investment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[inv.ID]; exists {
		return apperrors.Internal("investment %s already exists", inv.ID)
	}
	clone := *inv
	r.byID[inv.ID] = &clone
	r.order = append(r.order, inv.ID)
	return nil
}

func (r *memoryRepository) GetByID(ctx context.Context, id string) (*Investment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	inv, ok := r.byID[id]
	if !ok {
		return nil, apperrors.NotFound("investment %s not found", id)
	}
	clone := *inv
	return &clone, nil
}

func (r *memoryRepository) List(ctx context.Context) ([]*Investment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Investment, 0, len(r.order))
	for _, id := range r.order {
		clone := *r.byID[id]
		out = append(out, &clone)
	}
	return out, nil
}

func (r *memoryRepository) ListByUser(ctx context.Context, userID string) ([]*Investment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Investment, 0)
	for _, id := range r.order {
		if r.byID[id].UserID == userID {
			clone := *r.byID[id]
			out = append(out, &clone)
		}
	}
	return out, nil
}
