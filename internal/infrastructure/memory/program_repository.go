package memory

import (
	"context"
	"sync"

	"github.com/vitality-edu/wellness-hub/internal/core/domain"
)

// ProgramRepository holds the program collection as an ordered slice.
type ProgramRepository struct {
	mu       sync.RWMutex
	programs []*domain.Program
}

// NewProgramRepository seeds the collection in the given order.
func NewProgramRepository(seed []*domain.Program) *ProgramRepository {
	r := &ProgramRepository{programs: make([]*domain.Program, 0, len(seed))}
	for _, p := range seed {
		clone := *p
		r.programs = append(r.programs, &clone)
	}
	return r
}

func (r *ProgramRepository) List(_ context.Context) ([]*domain.Program, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Program, len(r.programs))
	for i, p := range r.programs {
		clone := *p
		out[i] = &clone
	}
	return out, nil
}

func (r *ProgramRepository) FindByID(_ context.Context, id string) (*domain.Program, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.programs {
		if p.ID == id {
			clone := *p
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *ProgramRepository) Append(_ context.Context, p *domain.Program) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	clone := *p
	r.programs = append(r.programs, &clone)
	return nil
}

// Replace swaps the record with the matching id; absent ids are a no-op.
func (r *ProgramRepository) Replace(_ context.Context, p *domain.Program) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, existing := range r.programs {
		if existing.ID == p.ID {
			clone := *p
			r.programs[i] = &clone
			return nil
		}
	}
	return nil
}
