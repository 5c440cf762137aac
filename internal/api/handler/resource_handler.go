package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vitality-edu/wellness-hub/internal/core/domain"
	"github.com/vitality-edu/wellness-hub/internal/core/ports"
)

// viewEnqueuer hands view events to the async counting pipeline.
type viewEnqueuer interface {
	Enqueue(ev ports.ViewEvent)
}

// ResourceHandler exposes the resource catalog: the filtered member view and
// the unfiltered admin view with its mutations.
type ResourceHandler struct {
	resources ports.ResourceService
	views     viewEnqueuer
}

func NewResourceHandler(resources ports.ResourceService, views viewEnqueuer) *ResourceHandler {
	return &ResourceHandler{resources: resources, views: views}
}

// List returns the visible resources. Query params q and category update the
// stored filter state before the read, so the filters stick across calls the
// way the catalog contract prescribes.
func (h *ResourceHandler) List(c echo.Context) error {
	if q, ok := queryParam(c, "q"); ok {
		h.resources.SetSearch(q)
	}
	if cat, ok := queryParam(c, "category"); ok {
		h.resources.SetCategoryFilter(domain.Category(cat))
	}

	items, err := h.resources.Visible(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resourceListResponse{Data: items})
}

// AdminList returns every resource regardless of status or filters.
func (h *ResourceHandler) AdminList(c echo.Context) error {
	items, err := h.resources.All(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resourceListResponse{Data: items})
}

// Create prepends a new resource to the catalog.
func (h *ResourceHandler) Create(c echo.Context) error {
	var req resourceRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	created, err := h.resources.Add(c.Request().Context(), req.toDomain())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

// Update replaces the resource with the path id. An unknown id is a silent
// no-op, so the response is 204 either way.
func (h *ResourceHandler) Update(c echo.Context) error {
	var req resourceRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	res := req.toDomain()
	res.ID = c.Param("id")
	if err := h.resources.Replace(c.Request().Context(), res); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// CycleStatus advances the resource's status machine one step.
func (h *ResourceHandler) CycleStatus(c echo.Context) error {
	if err := h.resources.CycleStatus(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Delete removes the resource with the path id.
func (h *ResourceHandler) Delete(c echo.Context) error {
	if err := h.resources.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// RecordView enqueues one view event and returns immediately; the counter is
// bumped asynchronously by the dispatcher workers.
func (h *ResourceHandler) RecordView(c echo.Context) error {
	h.views.Enqueue(ports.ViewEvent{ResourceID: c.Param("id")})
	return c.NoContent(http.StatusAccepted)
}

// queryParam distinguishes an absent query param from an explicitly empty one:
// ?q= clears the stored search, while omitting q leaves it untouched.
func queryParam(c echo.Context, name string) (string, bool) {
	if !c.QueryParams().Has(name) {
		return "", false
	}
	return c.QueryParam(name), true
}
