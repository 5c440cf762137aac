package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/vitality-edu/wellness-hub/internal/core/domain"
	"github.com/vitality-edu/wellness-hub/internal/core/ports"
)

type stubSessionService struct {
	loginFn    func(ctx context.Context, email, password string) (*domain.Identity, error)
	registerFn func(ctx context.Context, input ports.RegisterInput) (*domain.Identity, error)
	logoutFn   func(ctx context.Context) error
	current    *domain.Identity
	enrollFn   func(ctx context.Context, programID string, action ports.EnrollmentAction) (*domain.Identity, error)
}

func (s *stubSessionService) Login(ctx context.Context, email, password string) (*domain.Identity, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubSessionService) Register(ctx context.Context, input ports.RegisterInput) (*domain.Identity, error) {
	return s.registerFn(ctx, input)
}

func (s *stubSessionService) Logout(ctx context.Context) error {
	if s.logoutFn != nil {
		return s.logoutFn(ctx)
	}
	return nil
}

func (s *stubSessionService) Current() *domain.Identity { return s.current }

func (s *stubSessionService) UpdateEnrollment(ctx context.Context, programID string, action ports.EnrollmentAction) (*domain.Identity, error) {
	return s.enrollFn(ctx, programID, action)
}

func (s *stubSessionService) Restore(ctx context.Context) {}

func newTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Login_Success(t *testing.T) {
	stub := &stubSessionService{
		loginFn: func(ctx context.Context, email, password string) (*domain.Identity, error) {
			if email != "student@vitality.edu" || password != "student123" {
				t.Fatalf("unexpected args: %s %s", email, password)
			}
			return &domain.Identity{ID: "stu-001", Email: email, Role: domain.RoleStudent}, nil
		},
	}
	handler := NewAuthHandler(stub, "secret")

	c, rec := newTestContext(t, http.MethodPost, "/auth/login",
		`{"email":"student@vitality.edu","password":"student123"}`)

	if err := handler.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] == "" || resp["token"] == nil {
		t.Fatalf("expected token in response")
	}
	user, ok := resp["user"].(map[string]any)
	if !ok || user["id"] != "stu-001" || user["role"] != "student" {
		t.Fatalf("unexpected user payload: %+v", resp["user"])
	}
}

func TestAuthHandler_Login_InvalidCredentialsPropagates(t *testing.T) {
	stub := &stubSessionService{
		loginFn: func(ctx context.Context, email, password string) (*domain.Identity, error) {
			return nil, domain.ErrInvalidCredentials
		},
	}
	handler := NewAuthHandler(stub, "secret")

	c, _ := newTestContext(t, http.MethodPost, "/auth/login",
		`{"email":"student@vitality.edu","password":"wrongpass"}`)

	err := handler.Login(c)
	if err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials to propagate, got %v", err)
	}
}

func TestAuthHandler_Login_MissingFields(t *testing.T) {
	stub := &stubSessionService{
		loginFn: func(ctx context.Context, email, password string) (*domain.Identity, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	}
	handler := NewAuthHandler(stub, "secret")

	c, rec := newTestContext(t, http.MethodPost, "/auth/login", `{"email":"","password":""}`)

	_ = handler.Login(c)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAuthHandler_Register_Success(t *testing.T) {
	stub := &stubSessionService{
		registerFn: func(ctx context.Context, input ports.RegisterInput) (*domain.Identity, error) {
			if input.Name != "Casey Nguyen" || input.Role != "student" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.Identity{ID: "usr-123", Name: input.Name, Email: input.Email, Role: input.Role}, nil
		},
	}
	handler := NewAuthHandler(stub, "secret")

	c, rec := newTestContext(t, http.MethodPost, "/auth/register",
		`{"name":"Casey Nguyen","email":"casey@vitality.edu","password":"longenough","confirm_password":"longenough","role":"student"}`)

	if err := handler.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestAuthHandler_Register_PasswordMismatch(t *testing.T) {
	stub := &stubSessionService{
		registerFn: func(ctx context.Context, input ports.RegisterInput) (*domain.Identity, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	}
	handler := NewAuthHandler(stub, "secret")

	c, rec := newTestContext(t, http.MethodPost, "/auth/register",
		`{"name":"Casey","email":"casey@vitality.edu","password":"longenough","confirm_password":"different1","role":"student"}`)

	_ = handler.Register(c)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "passwords do not match") {
		t.Fatalf("expected mismatch message, got %s", rec.Body.String())
	}
}

func TestAuthHandler_Register_ShortPassword(t *testing.T) {
	stub := &stubSessionService{
		registerFn: func(ctx context.Context, input ports.RegisterInput) (*domain.Identity, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	}
	handler := NewAuthHandler(stub, "secret")

	c, rec := newTestContext(t, http.MethodPost, "/auth/register",
		`{"name":"Casey","email":"casey@vitality.edu","password":"short","confirm_password":"short","role":"student"}`)

	_ = handler.Register(c)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAuthHandler_Logout(t *testing.T) {
	cleared := false
	stub := &stubSessionService{
		logoutFn: func(ctx context.Context) error {
			cleared = true
			return nil
		},
	}
	handler := NewAuthHandler(stub, "secret")

	c, rec := newTestContext(t, http.MethodPost, "/auth/logout", "")

	if err := handler.Logout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if !cleared {
		t.Fatalf("logout not forwarded to service")
	}
}
