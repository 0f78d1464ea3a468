package assets

import (
	"context"
	"sync"

	"lakeside-exchange/marketplace-backend/pkg/apperrors"
)

// Repository owns the collection of market-visible listings.
type Repository interface {
	Insert(ctx context.Context, l *Listing) error
	GetByID(ctx context.Context, id string) (*Listing, error)
	Save(ctx context.Context, l *Listing) error
	// Remove deletes the listing if present and reports whether a
	// removal occurred. "Already removed" is a valid caller state, not
	// an error.
	Remove(ctx context.Context, id string) bool
	List(ctx context.Context) ([]*Listing, error)
}

type memoryRepository struct {
	mu    sync.RWMutex
	byID  map[string]*Listing
	order []string
}

// NewMemoryRepository creates an empty in-memory listing mirror.
func NewMemoryRepository() Repository {
	return &memoryRepository{
		byID: make(map[string]*Listing),
	}
}

func (r *memoryRepository) Insert(ctx context.Context, l *Listing) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[l.ID]; exists {
		return apperrors.Internal("listing %s already exists", l.ID)
	}
	r.byID[l.ID] = l.Clone()
	r.order = append(r.order, l.ID)
	return nil
}

func (r *memoryRepository) GetByID(ctx context.Context, id string) (*Listing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	l, ok := r.byID[id]
	if !ok {
		return nil, apperrors.NotFound("asset %s not found", id)
	}
	return l.Clone(), nil
}

func (r *memoryRepository) Save(ctx context.Context, l *Listing) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[l.ID]; !ok {
		return apperrors.NotFound("asset %s not found", l.ID)
	}
	r.byID[l.ID] = l.Clone()
	return nil
}

func (r *memoryRepository) Remove(ctx context.Context, id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return false
	}
	delete(r.byID, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true
}

func (r *memoryRepository) List(ctx context.Context) ([]*Listing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Listing, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id].Clone())
	}
	return out, nil
}
