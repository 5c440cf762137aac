package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/vitality-edu/wellness-hub/internal/api/handler"
	"github.com/vitality-edu/wellness-hub/internal/api/middleware"
	"github.com/vitality-edu/wellness-hub/internal/core/domain"
	"github.com/vitality-edu/wellness-hub/internal/core/ports"
)

// ViewQueue hands resource view events to the async counting pipeline.
type ViewQueue interface {
	Enqueue(ev ports.ViewEvent)
}

// RouterConfig carries the wired services the router exposes. Redis is nil
// when the portal runs on the in-memory session store.
type RouterConfig struct {
	Sessions  ports.SessionService
	Resources ports.ResourceService
	Programs  ports.ProgramService
	Insights  ports.InsightsService
	Views     ViewQueue
	Redis     *redis.Client
	JWTSecret string
	Logger    zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg RouterConfig) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(cfg.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("wellness"))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(cfg.Sessions, cfg.JWTSecret)
	sessionHandler := handler.NewSessionHandler(cfg.Sessions)
	resourceHandler := handler.NewResourceHandler(cfg.Resources, cfg.Views)
	programHandler := handler.NewProgramHandler(cfg.Programs, cfg.Sessions)
	insightsHandler := handler.NewInsightsHandler(cfg.Insights)
	healthHandler := handler.NewHealthHandler(cfg.Redis)

	// --- Route guards ---
	auth := middleware.Auth(cfg.JWTSecret)
	authOptional := middleware.AuthOptional(cfg.JWTSecret)
	publicOnly := middleware.Guard(domain.RouteRule{PublicOnly: true})
	anyRole := middleware.Guard(domain.RouteRule{RequireAuth: true})
	studentOnly := middleware.Guard(domain.RouteRule{RequireAuth: true, Role: domain.RoleStudent})
	adminOnly := middleware.Guard(domain.RouteRule{RequireAuth: true, Role: domain.RoleAdmin})

	// --- Auth routes (public-only: authenticated callers are bounced home) ---
	e.POST("/auth/login", authHandler.Login, authOptional, publicOnly)
	e.POST("/auth/register", authHandler.Register, authOptional, publicOnly)
	e.POST("/auth/logout", authHandler.Logout, auth, anyRole)

	// --- Session ---
	v1 := e.Group("/v1")
	v1.GET("/session", sessionHandler.Current, auth, anyRole)
	v1.POST("/session/enrollment", sessionHandler.UpdateEnrollment, auth, anyRole)

	// --- Catalog: resources ---
	v1.GET("/resources", resourceHandler.List, auth, anyRole)
	v1.POST("/resources/:id/view", resourceHandler.RecordView, auth, anyRole)
	v1.POST("/resources", resourceHandler.Create, auth, adminOnly)
	v1.PUT("/resources/:id", resourceHandler.Update, auth, adminOnly)
	v1.POST("/resources/:id/status", resourceHandler.CycleStatus, auth, adminOnly)
	v1.DELETE("/resources/:id", resourceHandler.Delete, auth, adminOnly)

	// --- Catalog: programs ---
	v1.GET("/programs", programHandler.List, auth, anyRole)
	v1.GET("/programs/mine", programHandler.Mine, auth, anyRole)
	v1.PUT("/programs/:id/progress", programHandler.UpdateProgress, auth, studentOnly)
	v1.POST("/programs", programHandler.Create, auth, adminOnly)
	v1.PUT("/programs/:id", programHandler.Update, auth, adminOnly)
	v1.POST("/programs/:id/status", programHandler.ToggleStatus, auth, adminOnly)

	// --- Insights ---
	v1.GET("/insights/wellness", insightsHandler.Wellness, auth, studentOnly)
	v1.GET("/insights/appointments", insightsHandler.Appointments, auth, studentOnly)
	v1.GET("/insights/platform", insightsHandler.PlatformStats, auth, adminOnly)
	v1.GET("/insights/top-resources", insightsHandler.TopResources, auth, adminOnly)

	// --- Announcements ---
	v1.GET("/announcements", insightsHandler.Announcements, auth, anyRole)
	v1.POST("/announcements", insightsHandler.CreateAnnouncement, auth, adminOnly)
	v1.DELETE("/announcements/:id", insightsHandler.DeleteAnnouncement, auth, adminOnly)

	// --- Admin catalog listings (unfiltered, all statuses) ---
	admin := e.Group("/v1/admin", auth, adminOnly)
	admin.GET("/resources", resourceHandler.AdminList)
	admin.GET("/programs", programHandler.AdminList)

	// --- Health probes and metrics (no auth required) ---
	e.GET("/health", healthHandler.Live)       // liveness  – is the process alive?
	e.GET("/health/ready", healthHandler.Ready) // readiness – is the session store up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
