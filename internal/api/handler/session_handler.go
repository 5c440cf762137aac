package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vitality-edu/wellness-hub/internal/core/ports"
)

// SessionHandler exposes the active session record.
type SessionHandler struct {
	sessions ports.SessionService
}

func NewSessionHandler(sessions ports.SessionService) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

// Current returns the active identity. The user field is null when the store
// holds no session, matching the store's "missing or malformed means no
// session" contract.
func (h *SessionHandler) Current(c echo.Context) error {
	return c.JSON(http.StatusOK, sessionResponse{User: h.sessions.Current()})
}

// UpdateEnrollment adds or removes one program id from the active identity's
// enrollment set and returns the updated identity.
func (h *SessionHandler) UpdateEnrollment(c echo.Context) error {
	var req enrollmentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	identity, err := h.sessions.UpdateEnrollment(c.Request().Context(), req.ProgramID, ports.EnrollmentAction(req.Action))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sessionResponse{User: identity})
}
