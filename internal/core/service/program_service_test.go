package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/vitality-edu/wellness-hub/internal/core/domain"
	"github.com/vitality-edu/wellness-hub/internal/core/seed"
	"github.com/vitality-edu/wellness-hub/internal/infrastructure/memory"
)

func newProgramFixture() *ProgramService {
	return NewProgramService(memory.NewProgramRepository(seed.Programs()), zerolog.Nop())
}

func programIDs(items []*domain.Program) []string {
	ids := make([]string, len(items))
	for i, p := range items {
		ids[i] = p.ID
	}
	return ids
}

func TestProgramService_CategoryFilter_Fitness(t *testing.T) {
	svc := newProgramFixture()

	svc.SetCategoryFilter(domain.CategoryFitness)
	items, err := svc.Visible(context.Background())
	if err != nil {
		t.Fatalf("visible: %v", err)
	}

	got := programIDs(items)
	if len(got) != 2 || got[0] != "prog-002" || got[1] != "prog-005" {
		t.Fatalf("expected exactly prog-002 and prog-005, got %v", got)
	}
}

func TestProgramService_Visible_ExcludesInactive(t *testing.T) {
	svc := newProgramFixture()
	ctx := context.Background()

	if err := svc.ToggleStatus(ctx, "prog-004"); err != nil {
		t.Fatalf("toggle: %v", err)
	}

	items, err := svc.Visible(ctx)
	if err != nil {
		t.Fatalf("visible: %v", err)
	}
	for _, p := range items {
		if p.ID == "prog-004" {
			t.Fatalf("inactive program leaked into the visible list")
		}
	}
	if len(items) != 5 {
		t.Fatalf("expected 5 visible, got %d", len(items))
	}

	// Toggling back restores it.
	if err := svc.ToggleStatus(ctx, "prog-004"); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	items, err = svc.Visible(ctx)
	if err != nil {
		t.Fatalf("visible: %v", err)
	}
	if len(items) != 6 {
		t.Fatalf("expected 6 visible after re-activation, got %d", len(items))
	}
}

func TestProgramService_ToggleStatus_AbsentID(t *testing.T) {
	svc := newProgramFixture()

	if err := svc.ToggleStatus(context.Background(), "prog-404"); err != nil {
		t.Fatalf("absent toggle must be a silent no-op, got %v", err)
	}
}

func TestProgramService_Mine(t *testing.T) {
	svc := newProgramFixture()

	// prog-001 via enrollment, prog-003 via its seeded progress of 80.
	items, err := svc.Mine(context.Background(), []string{"prog-001"})
	if err != nil {
		t.Fatalf("mine: %v", err)
	}
	got := programIDs(items)
	if len(got) != 2 || got[0] != "prog-001" || got[1] != "prog-003" {
		t.Fatalf("expected prog-001 and prog-003, got %v", got)
	}
}

func TestProgramService_Mine_EmptyEnrollment(t *testing.T) {
	svc := newProgramFixture()

	// Progress alone qualifies a program.
	items, err := svc.Mine(context.Background(), nil)
	if err != nil {
		t.Fatalf("mine: %v", err)
	}
	got := programIDs(items)
	if len(got) != 1 || got[0] != "prog-003" {
		t.Fatalf("expected only prog-003, got %v", got)
	}
}

func TestProgramService_UpdateProgress_Clamps(t *testing.T) {
	svc := newProgramFixture()
	ctx := context.Background()

	cases := []struct {
		in   int
		want int
	}{
		{150, 100},
		{-20, 0},
		{55, 55},
	}
	for _, tc := range cases {
		if err := svc.UpdateProgress(ctx, "prog-001", tc.in); err != nil {
			t.Fatalf("update progress: %v", err)
		}
		p, err := svc.repo.FindByID(ctx, "prog-001")
		if err != nil || p == nil {
			t.Fatalf("lookup: %v", err)
		}
		if p.Progress != tc.want {
			t.Fatalf("progress %d should clamp to %d, got %d", tc.in, tc.want, p.Progress)
		}
	}

	if err := svc.UpdateProgress(ctx, "prog-404", 50); err != nil {
		t.Fatalf("absent update must be a no-op, got %v", err)
	}
}

func TestProgramService_Add_AppendsWithDefaults(t *testing.T) {
	svc := newProgramFixture()
	ctx := context.Background()

	created, err := svc.Add(ctx, &domain.Program{Title: "Yoga Foundations", Category: domain.CategoryWellness})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if created.ID == "" || created.Status != domain.ProgramActive {
		t.Fatalf("defaults not synthesized: %+v", created)
	}

	all, err := svc.All(ctx)
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(all) != 7 || all[len(all)-1].ID != created.ID {
		t.Fatalf("new program must list last, got tail %s", all[len(all)-1].ID)
	}
}

func TestProgramService_Add_Invalid(t *testing.T) {
	svc := newProgramFixture()

	if _, err := svc.Add(context.Background(), &domain.Program{Category: domain.CategoryWellness}); err != domain.ErrInvalidInput {
		t.Fatalf("missing title must be rejected, got %v", err)
	}
	if _, err := svc.Add(context.Background(), &domain.Program{Title: "X", Category: domain.CategoryWellness, Status: "archived"}); err != domain.ErrInvalidInput {
		t.Fatalf("unknown status must be rejected, got %v", err)
	}
}

func TestProgramService_Replace_PreservesProgressAndStatus(t *testing.T) {
	svc := newProgramFixture()
	ctx := context.Background()

	// A title-only edit carries neither progress nor status.
	edit := &domain.Program{ID: "prog-003", Title: "Balanced Nutrition (revised)", Category: domain.CategoryNutrition}
	if err := svc.Replace(ctx, edit); err != nil {
		t.Fatalf("replace: %v", err)
	}

	p, err := svc.repo.FindByID(ctx, "prog-003")
	if err != nil || p == nil {
		t.Fatalf("lookup: %v", err)
	}
	if p.Title != "Balanced Nutrition (revised)" {
		t.Fatalf("edit not applied: %s", p.Title)
	}
	if p.Progress != 80 {
		t.Fatalf("replace must preserve stored progress, got %d", p.Progress)
	}
	if p.Status != domain.ProgramActive {
		t.Fatalf("omitted status must keep the stored one, got %q", p.Status)
	}

	// The seeded student still sees prog-003 through its progress.
	mine, err := svc.Mine(ctx, nil)
	if err != nil {
		t.Fatalf("mine: %v", err)
	}
	if len(mine) != 1 || mine[0].ID != "prog-003" {
		t.Fatalf("edited program fell out of the my-programs view: %v", programIDs(mine))
	}
}

func TestProgramService_Replace_Invalid(t *testing.T) {
	svc := newProgramFixture()
	ctx := context.Background()

	if err := svc.Replace(ctx, &domain.Program{ID: "prog-001", Category: domain.CategoryWellness}); err != domain.ErrInvalidInput {
		t.Fatalf("missing title must be rejected, got %v", err)
	}
	if err := svc.Replace(ctx, &domain.Program{ID: "prog-001", Title: "X", Category: domain.CategoryWellness, Status: "archived"}); err != domain.ErrInvalidInput {
		t.Fatalf("unknown status must be rejected, got %v", err)
	}

	// Absent ids stay a silent no-op.
	if err := svc.Replace(ctx, &domain.Program{ID: "prog-404", Title: "X", Category: domain.CategoryWellness}); err != nil {
		t.Fatalf("absent replace must be a no-op, got %v", err)
	}
}
