package handler

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/vitality-edu/wellness-hub/internal/core/domain"
	"github.com/vitality-edu/wellness-hub/internal/core/ports"
)

const tokenTTL = 24 * time.Hour

// AuthHandler exposes login, registration and logout. Tokens are the HTTP
// transport's proof of identity; the session service remains the single
// holder of the active identity record.
type AuthHandler struct {
	sessions  ports.SessionService
	jwtSecret string
}

func NewAuthHandler(sessions ports.SessionService, jwtSecret string) *AuthHandler {
	return &AuthHandler{sessions: sessions, jwtSecret: jwtSecret}
}

// Login authenticates a credential pair and returns a bearer token plus the
// sanitized identity.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	identity, err := h.sessions.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	token, err := h.signToken(identity)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, authResponse{Token: token, User: identity})
}

// Register creates an account, activates it and returns a bearer token.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	identity, err := h.sessions.Register(c.Request().Context(), ports.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		return err
	}

	token, err := h.signToken(identity)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, authResponse{Token: token, User: identity})
}

// Logout clears the active session and its persisted record.
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.sessions.Logout(c.Request().Context()); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *AuthHandler) signToken(identity *domain.Identity) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   identity.ID,
		"email": identity.Email,
		"role":  identity.Role,
		"iat":   now.Unix(),
		"exp":   now.Add(tokenTTL).Unix(),
	})
	return token.SignedString([]byte(h.jwtSecret))
}
