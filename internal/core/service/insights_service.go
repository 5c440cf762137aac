package service

import (
	"context"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/vitality-edu/wellness-hub/internal/api/metrics"
	"github.com/vitality-edu/wellness-hub/internal/core/domain"
	"github.com/vitality-edu/wellness-hub/internal/core/ids"
	"github.com/vitality-edu/wellness-hub/internal/core/ports"
)

// Fixed artificial delays standing in for upstream calls. Reads always run to
// completion; there is no cancellation path.
const (
	wellnessDelay     = 400 * time.Millisecond
	appointmentsDelay = 300 * time.Millisecond
	platformDelay     = 500 * time.Millisecond
	topResourcesDelay = 350 * time.Millisecond
)

// InsightsService serves read-only aggregate views from fixtures, plus the
// admin-managed announcement list. When simulateLatency is false (tests) the
// artificial delays are skipped.
type InsightsService struct {
	log             zerolog.Logger
	simulateLatency bool

	report       domain.WellnessReport
	appointments []domain.Appointment
	platform     domain.PlatformMetrics
	usage        []domain.UsagePoint
	top          []domain.TopResource

	mu            sync.RWMutex
	announcements []*domain.Announcement
}

// NewInsightsService builds the façade around the given fixtures.
func NewInsightsService(
	report domain.WellnessReport,
	appointments []domain.Appointment,
	platform domain.PlatformMetrics,
	usage []domain.UsagePoint,
	top []domain.TopResource,
	announcements []*domain.Announcement,
	simulateLatency bool,
	log zerolog.Logger,
) *InsightsService {
	return &InsightsService{
		log:             log,
		simulateLatency: simulateLatency,
		report:          report,
		appointments:    appointments,
		platform:        platform,
		usage:           usage,
		top:             top,
		announcements:   announcements,
	}
}

func (s *InsightsService) WellnessReport(ctx context.Context, userID string) (*domain.WellnessReport, error) {
	defer s.observe("wellness")()
	s.wait(wellnessDelay)

	report := s.report
	report.Dimensions = append([]domain.WellnessDimension(nil), s.report.Dimensions...)
	return &report, nil
}

func (s *InsightsService) Appointments(ctx context.Context, userID string) ([]domain.Appointment, error) {
	defer s.observe("appointments")()
	s.wait(appointmentsDelay)

	return append([]domain.Appointment(nil), s.appointments...), nil
}

func (s *InsightsService) PlatformStats(ctx context.Context) (*ports.PlatformStatsResult, error) {
	defer s.observe("platform")()
	s.wait(platformDelay)

	return &ports.PlatformStatsResult{
		Metrics: s.platform,
		Usage:   append([]domain.UsagePoint(nil), s.usage...),
	}, nil
}

func (s *InsightsService) TopResources(ctx context.Context) ([]domain.TopResource, error) {
	defer s.observe("top_resources")()
	s.wait(topResourcesDelay)

	return append([]domain.TopResource(nil), s.top...), nil
}

func (s *InsightsService) Announcements(ctx context.Context) ([]*domain.Announcement, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.Announcement, len(s.announcements))
	for i, a := range s.announcements {
		clone := *a
		out[i] = &clone
	}
	return out, nil
}

// AddAnnouncement prepends a notice so the newest shows first.
func (s *InsightsService) AddAnnouncement(ctx context.Context, input ports.AnnouncementInput) (*domain.Announcement, error) {
	if input.Title == "" || input.Body == "" {
		return nil, domain.ErrInvalidInput
	}
	priority := input.Priority
	if priority == "" {
		priority = "medium"
	}

	ann := &domain.Announcement{
		ID:       "ann-" + ids.New(),
		Title:    input.Title,
		Body:     input.Body,
		Date:     time.Now().UTC().Format("2006-01-02"),
		Priority: priority,
	}

	s.mu.Lock()
	s.announcements = append([]*domain.Announcement{ann}, s.announcements...)
	s.mu.Unlock()

	s.log.Info().Str("announcement_id", ann.ID).Msg("announcement published")
	clone := *ann
	return &clone, nil
}

// RemoveAnnouncement deletes by id. Absent ids are a silent no-op.
func (s *InsightsService) RemoveAnnouncement(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.announcements[:0]
	for _, a := range s.announcements {
		if a.ID != id {
			kept = append(kept, a)
		}
	}
	s.announcements = kept
	return nil
}

func (s *InsightsService) wait(d time.Duration) {
	if s.simulateLatency {
		time.Sleep(d)
	}
}

func (s *InsightsService) observe(view string) func() {
	timer := prometheus.NewTimer(metrics.InsightFetchDuration.WithLabelValues(view))
	return func() { timer.ObserveDuration() }
}
