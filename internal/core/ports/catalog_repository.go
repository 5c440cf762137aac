package ports

import (
	"context"

	"github.com/vitality-edu/wellness-hub/internal/core/domain"
)

// ResourceRepository holds the resource collection in insertion order.
// Mutations addressing an absent identifier are silent no-ops.
type ResourceRepository interface {
	List(ctx context.Context) ([]*domain.Resource, error)
	// FindByID returns (nil, nil) when the id is unknown.
	FindByID(ctx context.Context, id string) (*domain.Resource, error)
	// Prepend inserts at the head of the collection (newest first).
	Prepend(ctx context.Context, r *domain.Resource) error
	Replace(ctx context.Context, r *domain.Resource) error
	Delete(ctx context.Context, id string) error
}

// ProgramRepository holds the program collection in insertion order.
// Mutations addressing an absent identifier are silent no-ops.
type ProgramRepository interface {
	List(ctx context.Context) ([]*domain.Program, error)
	// FindByID returns (nil, nil) when the id is unknown.
	FindByID(ctx context.Context, id string) (*domain.Program, error)
	// Append inserts at the tail of the collection.
	Append(ctx context.Context, p *domain.Program) error
	Replace(ctx context.Context, p *domain.Program) error
}
