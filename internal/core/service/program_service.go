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

// ProgramService owns the program collection and its category filter state.
type ProgramService struct {
	repo ports.ProgramRepository
	log  zerolog.Logger

	mu             sync.RWMutex
	categoryFilter domain.Category
}

func NewProgramService(repo ports.ProgramRepository, log zerolog.Logger) *ProgramService {
	return &ProgramService{repo: repo, log: log, categoryFilter: domain.CategoryAll}
}

func (s *ProgramService) SetCategoryFilter(c domain.Category) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.categoryFilter = c
}

// Visible lists programs that are not inactive and match the category filter.
func (s *ProgramService) Visible(ctx context.Context) ([]*domain.Program, error) {
	s.mu.RLock()
	filter := s.categoryFilter
	s.mu.RUnlock()

	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	visible := make([]*domain.Program, 0, len(all))
	for _, p := range all {
		if p.Status == domain.ProgramInactive {
			continue
		}
		if !filter.Matches(p.Category) {
			continue
		}
		visible = append(visible, p)
	}
	return visible, nil
}

// All returns the unfiltered collection for the admin view.
func (s *ProgramService) All(ctx context.Context) ([]*domain.Program, error) {
	return s.repo.List(ctx)
}

// Mine lists the programs a student sees as theirs. Membership in the
// enrollment set or nonzero progress both qualify: a program can look started
// without an enrollment record, which mirrors how the views always behaved.
func (s *ProgramService) Mine(ctx context.Context, enrolled []string) ([]*domain.Program, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	member := make(map[string]struct{}, len(enrolled))
	for _, id := range enrolled {
		member[id] = struct{}{}
	}

	var mine []*domain.Program
	for _, p := range all {
		if _, ok := member[p.ID]; ok || p.Progress > 0 {
			mine = append(mine, p)
		}
	}
	return mine, nil
}

// UpdateProgress stores a completion percentage clamped to [0,100]. Absent
// ids are a silent no-op.
func (s *ProgramService) UpdateProgress(ctx context.Context, id string, pct int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.repo.FindByID(ctx, id)
	if err != nil || p == nil {
		return err
	}
	p.SetProgress(pct)
	if err := s.repo.Replace(ctx, p); err != nil {
		return err
	}

	metrics.CatalogMutationsTotal.WithLabelValues("program", "progress").Inc()
	return nil
}

// Add appends a program to the catalog. Missing id and status are synthesized.
func (s *ProgramService) Add(ctx context.Context, p *domain.Program) (*domain.Program, error) {
	if p.Title == "" || !p.Category.Valid() {
		return nil, domain.ErrInvalidInput
	}
	if p.Status != "" && !p.Status.Valid() {
		return nil, domain.ErrInvalidInput
	}
	if p.ID == "" {
		p.ID = "prog-" + ids.New()
	}
	if p.Status == "" {
		p.Status = domain.ProgramActive
	}
	p.SetProgress(p.Progress)

	if err := s.repo.Append(ctx, p); err != nil {
		return nil, err
	}

	metrics.CatalogMutationsTotal.WithLabelValues("program", "add").Inc()
	s.log.Info().Str("program_id", p.ID).Msg("program added")
	return p, nil
}

// Replace swaps the stored record. Absent ids are a silent no-op. Progress
// belongs to the student and only moves through UpdateProgress, so the stored
// value survives the swap; an omitted status keeps the stored one.
func (s *ProgramService) Replace(ctx context.Context, p *domain.Program) error {
	if p.Title == "" || !p.Category.Valid() {
		return domain.ErrInvalidInput
	}
	if p.Status != "" && !p.Status.Valid() {
		return domain.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	stored, err := s.repo.FindByID(ctx, p.ID)
	if err != nil || stored == nil {
		return err
	}
	p.Progress = stored.Progress
	if p.Status == "" {
		p.Status = stored.Status
	}
	if err := s.repo.Replace(ctx, p); err != nil {
		return err
	}

	metrics.CatalogMutationsTotal.WithLabelValues("program", "replace").Inc()
	return nil
}

// ToggleStatus flips active↔inactive. Absent ids are a silent no-op.
func (s *ProgramService) ToggleStatus(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.repo.FindByID(ctx, id)
	if err != nil || p == nil {
		return err
	}
	p.Status = p.Status.Toggle()
	if err := s.repo.Replace(ctx, p); err != nil {
		return err
	}

	metrics.CatalogMutationsTotal.WithLabelValues("program", "status").Inc()
	s.log.Info().Str("program_id", id).Str("status", string(p.Status)).Msg("program status toggled")
	return nil
}
