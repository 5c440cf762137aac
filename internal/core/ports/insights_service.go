package ports

import (
	"context"

	"github.com/vitality-edu/wellness-hub/internal/core/domain"
)

// PlatformStatsResult bundles the admin metrics snapshot with the usage trend.
type PlatformStatsResult struct {
	Metrics domain.PlatformMetrics `json:"metrics"`
	Usage   []domain.UsagePoint    `json:"usage"`
}

// AnnouncementInput carries a new campus notice.
type AnnouncementInput struct {
	Title    string
	Body     string
	Priority string
}

// InsightsService is the simulated data-fetch façade: read-only aggregate
// views served from fixtures behind fixed artificial delays standing in for
// network calls. Reads always run to completion; there is no cancellation.
type InsightsService interface {
	WellnessReport(ctx context.Context, userID string) (*domain.WellnessReport, error)
	Appointments(ctx context.Context, userID string) ([]domain.Appointment, error)
	PlatformStats(ctx context.Context) (*PlatformStatsResult, error)
	TopResources(ctx context.Context) ([]domain.TopResource, error)

	Announcements(ctx context.Context) ([]*domain.Announcement, error)
	AddAnnouncement(ctx context.Context, input AnnouncementInput) (*domain.Announcement, error)
	// RemoveAnnouncement deletes by id; absent ids are a no-op.
	RemoveAnnouncement(ctx context.Context, id string) error
}
