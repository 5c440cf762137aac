package ports

import (
	"context"

	"github.com/vitality-edu/wellness-hub/internal/core/domain"
)

// EnrollmentAction selects the direction of an enrollment mutation.
type EnrollmentAction string

const (
	EnrollmentAdd    EnrollmentAction = "add"
	EnrollmentRemove EnrollmentAction = "remove"
)

// RegisterInput carries a new account request. Field-level validation (empty
// fields, password length, confirmation match) belongs to the caller; the
// service only enforces role validity and email uniqueness.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

// SessionService tracks at most one active identity and persists it across
// restarts as a single serialized record.
type SessionService interface {
	// Login authenticates against the credential table (case-insensitive email,
	// exact password) and activates the matched identity with the password
	// stripped. Failures return domain.ErrInvalidCredentials and leave the
	// active session and the credential table untouched.
	Login(ctx context.Context, email, password string) (*domain.Identity, error)
	// Register appends a credential record and activates the new identity.
	// A duplicate email (any case) returns domain.ErrEmailTaken.
	Register(ctx context.Context, input RegisterInput) (*domain.Identity, error)
	// Logout clears the active identity and removes the persisted record.
	Logout(ctx context.Context) error
	// Current returns a copy of the active identity, or nil.
	Current() *domain.Identity
	// UpdateEnrollment mutates the active identity's enrollment set with set
	// semantics (idempotent add, no-op remove of non-members) and persists the
	// updated record immediately.
	UpdateEnrollment(ctx context.Context, programID string, action EnrollmentAction) (*domain.Identity, error)
	// Restore loads the persisted record at process start. Missing or
	// malformed state yields no active identity, never an error.
	Restore(ctx context.Context)
}
