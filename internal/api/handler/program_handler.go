package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vitality-edu/wellness-hub/internal/core/domain"
	"github.com/vitality-edu/wellness-hub/internal/core/ports"
)

// ProgramHandler exposes the program catalog. It also holds the session
// service so the "my programs" view can read the caller's enrollment set.
type ProgramHandler struct {
	programs ports.ProgramService
	sessions ports.SessionService
}

func NewProgramHandler(programs ports.ProgramService, sessions ports.SessionService) *ProgramHandler {
	return &ProgramHandler{programs: programs, sessions: sessions}
}

// List returns the visible programs, updating the stored category filter when
// the category query param is present.
func (h *ProgramHandler) List(c echo.Context) error {
	if cat, ok := queryParam(c, "category"); ok {
		h.programs.SetCategoryFilter(domain.Category(cat))
	}

	items, err := h.programs.Visible(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, programListResponse{Data: items})
}

// AdminList returns every program regardless of status or filter.
func (h *ProgramHandler) AdminList(c echo.Context) error {
	items, err := h.programs.All(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, programListResponse{Data: items})
}

// Mine returns the programs the active identity sees as theirs: enrollment
// members plus anything with progress already on the books.
func (h *ProgramHandler) Mine(c echo.Context) error {
	var enrolled []string
	if identity := h.sessions.Current(); identity != nil {
		enrolled = identity.Enrolled
	}

	items, err := h.programs.Mine(c.Request().Context(), enrolled)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, programListResponse{Data: items})
}

// Create appends a new program to the catalog.
func (h *ProgramHandler) Create(c echo.Context) error {
	var req programRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	created, err := h.programs.Add(c.Request().Context(), req.toDomain())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

// Update replaces the program with the path id. Unknown ids are a silent no-op.
func (h *ProgramHandler) Update(c echo.Context) error {
	var req programRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	p := req.toDomain()
	p.ID = c.Param("id")
	if err := h.programs.Replace(c.Request().Context(), p); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// ToggleStatus flips the program between active and inactive.
func (h *ProgramHandler) ToggleStatus(c echo.Context) error {
	if err := h.programs.ToggleStatus(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// UpdateProgress stores the caller's completion percentage for a program. The
// value is clamped to [0,100] before it lands.
func (h *ProgramHandler) UpdateProgress(c echo.Context) error {
	var req progressRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}

	if err := h.programs.UpdateProgress(c.Request().Context(), c.Param("id"), req.Progress); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
