package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/vitality-edu/wellness-hub/internal/core/domain"
	"github.com/vitality-edu/wellness-hub/internal/core/ports"
)

type stubResourceService struct {
	search      string
	searchSet   bool
	category    domain.Category
	categorySet bool
	visible     []*domain.Resource
}

func (s *stubResourceService) SetSearch(query string) {
	s.search = query
	s.searchSet = true
}

func (s *stubResourceService) SetCategoryFilter(c domain.Category) {
	s.category = c
	s.categorySet = true
}

func (s *stubResourceService) Visible(ctx context.Context) ([]*domain.Resource, error) {
	return s.visible, nil
}

func (s *stubResourceService) All(ctx context.Context) ([]*domain.Resource, error) {
	return s.visible, nil
}

func (s *stubResourceService) Add(ctx context.Context, r *domain.Resource) (*domain.Resource, error) {
	return r, nil
}

func (s *stubResourceService) Replace(ctx context.Context, r *domain.Resource) error { return nil }
func (s *stubResourceService) CycleStatus(ctx context.Context, id string) error      { return nil }
func (s *stubResourceService) Delete(ctx context.Context, id string) error           { return nil }
func (s *stubResourceService) RecordView(ctx context.Context, resourceID string) error {
	return nil
}

type stubEnqueuer struct {
	events []ports.ViewEvent
}

func (s *stubEnqueuer) Enqueue(ev ports.ViewEvent) {
	s.events = append(s.events, ev)
}

func TestResourceHandler_List_SetsFiltersFromQuery(t *testing.T) {
	svc := &stubResourceService{}
	handler := NewResourceHandler(svc, &stubEnqueuer{})

	c, rec := newTestContext(t, http.MethodGet, "/v1/resources?q=stress&category=Fitness", "")

	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !svc.searchSet || svc.search != "stress" {
		t.Fatalf("search filter not applied: %q", svc.search)
	}
	if !svc.categorySet || svc.category != domain.CategoryFitness {
		t.Fatalf("category filter not applied: %q", svc.category)
	}
}

func TestResourceHandler_List_OmittedParamsLeaveFiltersAlone(t *testing.T) {
	svc := &stubResourceService{}
	handler := NewResourceHandler(svc, &stubEnqueuer{})

	c, _ := newTestContext(t, http.MethodGet, "/v1/resources", "")

	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if svc.searchSet || svc.categorySet {
		t.Fatalf("filters should stay untouched when params are omitted")
	}
}

func TestResourceHandler_List_EmptyParamClearsSearch(t *testing.T) {
	svc := &stubResourceService{}
	handler := NewResourceHandler(svc, &stubEnqueuer{})

	c, _ := newTestContext(t, http.MethodGet, "/v1/resources?q=", "")

	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !svc.searchSet || svc.search != "" {
		t.Fatalf("explicit empty q should clear the stored search")
	}
}

func TestResourceHandler_RecordView_EnqueuesAndAccepts(t *testing.T) {
	queue := &stubEnqueuer{}
	handler := NewResourceHandler(&stubResourceService{}, queue)

	c, rec := newTestContext(t, http.MethodPost, "/v1/resources/res-003/view", "")
	c.SetParamNames("id")
	c.SetParamValues("res-003")

	if err := handler.RecordView(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d", rec.Code)
	}
	if len(queue.events) != 1 || queue.events[0].ResourceID != "res-003" {
		t.Fatalf("view event not enqueued: %+v", queue.events)
	}
}

func TestResourceHandler_Create_RejectsMissingTitle(t *testing.T) {
	handler := NewResourceHandler(&stubResourceService{}, &stubEnqueuer{})

	c, rec := newTestContext(t, http.MethodPost, "/v1/resources", `{"category":"Fitness"}`)

	_ = handler.Create(c)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
