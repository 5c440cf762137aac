package ports

import (
	"context"

	"github.com/vitality-edu/wellness-hub/internal/core/domain"
)

// ResourceService owns the resource collection plus its search and category
// filter state. Filters are stored on the service and applied at read time.
type ResourceService interface {
	SetSearch(query string)
	SetCategoryFilter(c domain.Category)
	// Visible lists resources that pass the read contract: status is not
	// inactive, the category filter matches, and the search query matches.
	Visible(ctx context.Context) ([]*domain.Resource, error)
	// All lists every resource regardless of status or filters (admin view).
	All(ctx context.Context) ([]*domain.Resource, error)
	// Add prepends a resource; a missing id or status is synthesized.
	Add(ctx context.Context, r *domain.Resource) (*domain.Resource, error)
	// Replace swaps the record with the matching id; absent ids are a no-op.
	// The stored view counter always survives, and an omitted status keeps
	// the stored one.
	Replace(ctx context.Context, r *domain.Resource) error
	// CycleStatus advances the status machine; absent ids are a no-op.
	CycleStatus(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	ViewRecorder
}

// ViewRecorder consumes resource view events.
type ViewRecorder interface {
	// RecordView bumps the view counter; absent ids are a no-op.
	RecordView(ctx context.Context, resourceID string) error
}

// ViewEvent marks one read of a resource.
type ViewEvent struct {
	ResourceID string
}

// ProgramService owns the program collection plus its category filter state.
type ProgramService interface {
	SetCategoryFilter(c domain.Category)
	// Visible lists programs that are not inactive and match the category filter.
	Visible(ctx context.Context) ([]*domain.Program, error)
	// All lists every program regardless of status or filter (admin view).
	All(ctx context.Context) ([]*domain.Program, error)
	// Mine lists the programs a student sees as theirs: membership in the
	// enrollment set or nonzero progress both qualify.
	Mine(ctx context.Context, enrolled []string) ([]*domain.Program, error)
	// UpdateProgress stores a clamped completion percentage; absent ids are a no-op.
	UpdateProgress(ctx context.Context, id string, pct int) error
	// Add appends a program; a missing id or status is synthesized.
	Add(ctx context.Context, p *domain.Program) (*domain.Program, error)
	// Replace swaps the record with the matching id; absent ids are a no-op.
	// Stored progress always survives, and an omitted status keeps the
	// stored one.
	Replace(ctx context.Context, p *domain.Program) error
	// ToggleStatus flips active/inactive; absent ids are a no-op.
	ToggleStatus(ctx context.Context, id string) error
}
