package service

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/vitality-edu/wellness-hub/internal/api/metrics"
	"github.com/vitality-edu/wellness-hub/internal/core/domain"
	"github.com/vitality-edu/wellness-hub/internal/core/ids"
	"github.com/vitality-edu/wellness-hub/internal/core/ports"
)

// ResourceService owns the resource collection and its filter state. The
// search query and category filter are stored here and applied at read time;
// the repository only sees raw collection operations.
type ResourceService struct {
	repo ports.ResourceRepository
	log  zerolog.Logger

	mu             sync.RWMutex
	searchQuery    string
	categoryFilter domain.Category
}

func NewResourceService(repo ports.ResourceRepository, log zerolog.Logger) *ResourceService {
	return &ResourceService{repo: repo, log: log, categoryFilter: domain.CategoryAll}
}

func (s *ResourceService) SetSearch(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.searchQuery = query
}

func (s *ResourceService) SetCategoryFilter(c domain.Category) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.categoryFilter = c
}

// Visible applies the read contract: inactive items are hidden, then the
// category filter and the case-insensitive search query narrow the rest.
func (s *ResourceService) Visible(ctx context.Context) ([]*domain.Resource, error) {
	s.mu.RLock()
	query, filter := s.searchQuery, s.categoryFilter
	s.mu.RUnlock()

	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	visible := make([]*domain.Resource, 0, len(all))
	for _, r := range all {
		if r.Status == domain.ResourceInactive {
			continue
		}
		if !filter.Matches(r.Category) {
			continue
		}
		if !r.MatchesQuery(query) {
			continue
		}
		visible = append(visible, r)
	}
	return visible, nil
}

// All returns the unfiltered collection for the admin view.
func (s *ResourceService) All(ctx context.Context) ([]*domain.Resource, error) {
	return s.repo.List(ctx)
}

// Add prepends a resource so the newest entry lists first. Missing id and
// status are synthesized; unreviewed items start as pending.
func (s *ResourceService) Add(ctx context.Context, r *domain.Resource) (*domain.Resource, error) {
	if r.Title == "" || !r.Category.Valid() {
		return nil, domain.ErrInvalidInput
	}
	if r.Status != "" && !r.Status.Valid() {
		return nil, domain.ErrInvalidInput
	}
	if r.ID == "" {
		r.ID = "res-" + ids.New()
	}
	if r.Status == "" {
		r.Status = domain.ResourcePending
	}

	if err := s.repo.Prepend(ctx, r); err != nil {
		return nil, err
	}

	metrics.CatalogMutationsTotal.WithLabelValues("resource", "add").Inc()
	s.log.Info().Str("resource_id", r.ID).Msg("resource added")
	return r, nil
}

// Replace swaps the stored record. Absent ids are a silent no-op. The view
// counter is server-owned and survives the swap, and an omitted status keeps
// the stored one so a partial edit can never leave the status enum.
func (s *ResourceService) Replace(ctx context.Context, r *domain.Resource) error {
	if r.Title == "" || !r.Category.Valid() {
		return domain.ErrInvalidInput
	}
	if r.Status != "" && !r.Status.Valid() {
		return domain.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	stored, err := s.repo.FindByID(ctx, r.ID)
	if err != nil || stored == nil {
		return err
	}
	r.Views = stored.Views
	if r.Status == "" {
		r.Status = stored.Status
	}
	if err := s.repo.Replace(ctx, r); err != nil {
		return err
	}

	metrics.CatalogMutationsTotal.WithLabelValues("resource", "replace").Inc()
	return nil
}

// CycleStatus advances pending→active and flips active↔inactive. Absent ids
// are a silent no-op.
func (s *ResourceService) CycleStatus(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, err := s.repo.FindByID(ctx, id)
	if err != nil || r == nil {
		return err
	}
	r.Status = r.Status.Next()
	if err := s.repo.Replace(ctx, r); err != nil {
		return err
	}

	metrics.CatalogMutationsTotal.WithLabelValues("resource", "status").Inc()
	s.log.Info().Str("resource_id", id).Str("status", string(r.Status)).Msg("resource status cycled")
	return nil
}

func (s *ResourceService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	metrics.CatalogMutationsTotal.WithLabelValues("resource", "delete").Inc()
	s.log.Info().Str("resource_id", id).Msg("resource deleted")
	return nil
}

// RecordView bumps the view counter. Absent ids are a silent no-op.
func (s *ResourceService) RecordView(ctx context.Context, resourceID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, err := s.repo.FindByID(ctx, resourceID)
	if err != nil || r == nil {
		return err
	}
	r.Views++
	if err := s.repo.Replace(ctx, r); err != nil {
		return err
	}

	metrics.ResourceViewsTotal.Inc()
	return nil
}
