package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vitality-edu/wellness-hub/internal/core/domain"
)

// guardResponse tells the navigation layer where a rejected caller belongs.
type guardResponse struct {
	Error    string `json:"error"`
	Redirect string `json:"redirect"`
}

// Guard enforces a route rule against the caller's authentication state:
// anonymous callers of protected views are pointed at the login view,
// authenticated callers of the wrong role at their own role's home view.
// The decision itself is the pure domain.Decide function.
func Guard(rule domain.RouteRule) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			state := domain.StateForRole(role)

			decision := domain.Decide(state, rule)
			if decision.Allow {
				return next(c)
			}

			status := http.StatusForbidden
			msg := "forbidden"
			if state == domain.Anonymous {
				status = http.StatusUnauthorized
				msg = "authentication required"
			}
			return c.JSON(status, guardResponse{Error: msg, Redirect: decision.RedirectTo})
		}
	}
}
