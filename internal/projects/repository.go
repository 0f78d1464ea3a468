package projects

import (
	"context"
	"sync"

	"lakeside-exchange/marketplace-backend/pkg/apperrors"
)

// Repository owns the canonical collection of project records.
type Repository interface {
	Insert(ctx context.Context, p *Project) error
	GetByID(ctx context.Context, id string) (*Project, error)
	Save(ctx context.Context, p *Project) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*Project, error)
}

// memoryRepository keeps projects in an ID-keyed map with a separate
// insertion-order list so listings render in submission order.
type memoryRepository struct {
	mu    sync.RWMutex
	byID  map[string]*Project
	order []string
}

// NewMemoryRepository creates an empty in-memory project store.
func NewMemoryRepository() Repository {
	return &memoryRepository{
		byID: make(map[string]*Project),
	}
}

func (r *memoryRepository) Insert(ctx context.Context, p *Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[p.ID]; exists {
		return apperrors.Internal("project %s already exists", p.ID)
	}
	r.byID[p.ID] = p.Clone()
	r.order = append(r.order, p.ID)
	return nil
}

func (r *memoryRepository) GetByID(ctx context.Context, id string) (*Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return nil, apperrors.NotFound("project %s not found", id)
	}
	return p.Clone(), nil
}

func (r *memoryRepository) Save(ctx context.Context, p *Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[p.ID]; !ok {
		return apperrors.NotFound("project %s not found", p.ID)
	}
	r.byID[p.ID] = p.Clone()
	return nil
}

func (r *memoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return apperrors.NotFound("project %s not found", id)
	}
	delete(r.byID, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *memoryRepository) List(ctx context.Context) ([]*Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Project, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id].Clone())
	}
	return out, nil
}
