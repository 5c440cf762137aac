package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vitality-edu/wellness-hub/internal/core/ports"
)

// InsightsHandler serves the aggregate read views: the student wellness and
// appointment panels, the admin platform dashboards, and announcements.
type InsightsHandler struct {
	insights ports.InsightsService
}

func NewInsightsHandler(insights ports.InsightsService) *InsightsHandler {
	return &InsightsHandler{insights: insights}
}

// Wellness returns the caller's wellness report.
func (h *InsightsHandler) Wellness(c echo.Context) error {
	userID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	report, err := h.insights.WellnessReport(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, report)
}

// Appointments returns the caller's upcoming appointments.
func (h *InsightsHandler) Appointments(c echo.Context) error {
	userID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	items, err := h.insights.Appointments(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// PlatformStats returns the admin metrics snapshot with the usage trend.
func (h *InsightsHandler) PlatformStats(c echo.Context) error {
	stats, err := h.insights.PlatformStats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}

// TopResources returns the most-viewed resource ranking.
func (h *InsightsHandler) TopResources(c echo.Context) error {
	items, err := h.insights.TopResources(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// Announcements lists the campus notices, newest first.
func (h *InsightsHandler) Announcements(c echo.Context) error {
	items, err := h.insights.Announcements(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, announcementListResponse{Data: items})
}

// CreateAnnouncement prepends a new campus notice.
func (h *InsightsHandler) CreateAnnouncement(c echo.Context) error {
	var req announcementRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	created, err := h.insights.AddAnnouncement(c.Request().Context(), ports.AnnouncementInput{
		Title:    req.Title,
		Body:     req.Body,
		Priority: req.Priority,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

// DeleteAnnouncement removes a notice by id. Unknown ids are a silent no-op.
func (h *InsightsHandler) DeleteAnnouncement(c echo.Context) error {
	if err := h.insights.RemoveAnnouncement(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
