package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/vitality-edu/wellness-hub/internal/core/domain"
	"github.com/vitality-edu/wellness-hub/internal/core/ports"
	"github.com/vitality-edu/wellness-hub/internal/core/seed"
)

func newInsightsFixture() *InsightsService {
	return NewInsightsService(
		seed.WellnessReport(),
		seed.Appointments(),
		seed.PlatformMetrics(),
		seed.Usage(),
		seed.TopResources(),
		seed.Announcements(),
		false, // no artificial delays in tests
		zerolog.Nop(),
	)
}

func TestInsightsService_WellnessReport(t *testing.T) {
	svc := newInsightsFixture()

	report, err := svc.WellnessReport(context.Background(), "stu-001")
	if err != nil {
		t.Fatalf("wellness report: %v", err)
	}
	if report.Overall != 70 {
		t.Fatalf("expected overall 70, got %d", report.Overall)
	}
	if len(report.Dimensions) != 5 {
		t.Fatalf("expected 5 dimensions, got %d", len(report.Dimensions))
	}
	if report.Dimensions[2].Label != "Social" || report.Dimensions[2].Value != 84 {
		t.Fatalf("unexpected dimension: %+v", report.Dimensions[2])
	}
}

func TestInsightsService_Appointments(t *testing.T) {
	svc := newInsightsFixture()

	items, err := svc.Appointments(context.Background(), "stu-001")
	if err != nil {
		t.Fatalf("appointments: %v", err)
	}
	if len(items) != 3 || items[0].Provider != "Dr. Emily Park" {
		t.Fatalf("unexpected appointments: %+v", items)
	}
}

func TestInsightsService_PlatformStats(t *testing.T) {
	svc := newInsightsFixture()

	stats, err := svc.PlatformStats(context.Background())
	if err != nil {
		t.Fatalf("platform stats: %v", err)
	}
	if stats.Metrics.ActiveStudents != 2847 {
		t.Fatalf("unexpected metrics: %+v", stats.Metrics)
	}
	if len(stats.Usage) != 5 || stats.Usage[4].Week != "Feb W1" {
		t.Fatalf("unexpected usage trend: %+v", stats.Usage)
	}
}

func TestInsightsService_TopResources(t *testing.T) {
	svc := newInsightsFixture()

	items, err := svc.TopResources(context.Background())
	if err != nil {
		t.Fatalf("top resources: %v", err)
	}
	if len(items) != 5 || items[0].Views != 2100 {
		t.Fatalf("unexpected ranking: %+v", items)
	}
}

func TestInsightsService_Announcements(t *testing.T) {
	svc := newInsightsFixture()
	ctx := context.Background()

	items, err := svc.Announcements(ctx)
	if err != nil {
		t.Fatalf("announcements: %v", err)
	}
	if len(items) != 2 || items[0].ID != "ann-001" {
		t.Fatalf("unexpected seeded list: %+v", items)
	}

	created, err := svc.AddAnnouncement(ctx, ports.AnnouncementInput{
		Title: "Pool Closure",
		Body:  "The campus pool is closed for maintenance this weekend.",
	})
	if err != nil {
		t.Fatalf("add announcement: %v", err)
	}
	if created.Priority != "medium" {
		t.Fatalf("default priority not applied: %s", created.Priority)
	}

	items, err = svc.Announcements(ctx)
	if err != nil {
		t.Fatalf("announcements: %v", err)
	}
	if len(items) != 3 || items[0].ID != created.ID {
		t.Fatalf("new announcement must list first, got %+v", items)
	}

	if err := svc.RemoveAnnouncement(ctx, created.ID); err != nil {
		t.Fatalf("remove announcement: %v", err)
	}
	items, _ = svc.Announcements(ctx)
	if len(items) != 2 {
		t.Fatalf("expected 2 after removal, got %d", len(items))
	}

	// Absent ids are a silent no-op.
	if err := svc.RemoveAnnouncement(ctx, "ann-404"); err != nil {
		t.Fatalf("absent removal must be a no-op, got %v", err)
	}
}

func TestInsightsService_AddAnnouncement_Invalid(t *testing.T) {
	svc := newInsightsFixture()

	if _, err := svc.AddAnnouncement(context.Background(), ports.AnnouncementInput{Title: "x"}); err != domain.ErrInvalidInput {
		t.Fatalf("missing body must be rejected, got %v", err)
	}
}
