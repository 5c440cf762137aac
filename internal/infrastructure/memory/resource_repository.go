package memory

import (
	"context"
	"sync"

	"github.com/vitality-edu/wellness-hub/internal/core/domain"
)

// ResourceRepository holds the resource collection as an ordered slice so
// prepend semantics (newest first) survive listing.
type ResourceRepository struct {
	mu        sync.RWMutex
	resources []*domain.Resource
}

// NewResourceRepository seeds the collection in the given order.
func NewResourceRepository(seed []*domain.Resource) *ResourceRepository {
	r := &ResourceRepository{resources: make([]*domain.Resource, 0, len(seed))}
	for _, res := range seed {
		clone := *res
		r.resources = append(r.resources, &clone)
	}
	return r
}

func (r *ResourceRepository) List(_ context.Context) ([]*domain.Resource, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Resource, len(r.resources))
	for i, res := range r.resources {
		clone := *res
		out[i] = &clone
	}
	return out, nil
}

func (r *ResourceRepository) FindByID(_ context.Context, id string) (*domain.Resource, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, res := range r.resources {
		if res.ID == id {
			clone := *res
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *ResourceRepository) Prepend(_ context.Context, res *domain.Resource) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	clone := *res
	r.resources = append([]*domain.Resource{&clone}, r.resources...)
	return nil
}

// Replace swaps the record with the matching id; absent ids are a no-op.
func (r *ResourceRepository) Replace(_ context.Context, res *domain.Resource) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, existing := range r.resources {
		if existing.ID == res.ID {
			clone := *res
			r.resources[i] = &clone
			return nil
		}
	}
	return nil
}

// Delete removes by id; absent ids are a no-op.
func (r *ResourceRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, existing := range r.resources {
		if existing.ID == id {
			r.resources = append(r.resources[:i], r.resources[i+1:]...)
			return nil
		}
	}
	return nil
}
