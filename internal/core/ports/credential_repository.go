package ports

import (
	"context"

	"github.com/vitality-edu/wellness-hub/internal/core/domain"
)

// CredentialRepository is the credential table: identity records with their
// password hashes. Email lookups are case-insensitive.
type CredentialRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.Identity, error)
	// Create appends a new record. A case-insensitive email collision returns
	// domain.ErrEmailTaken without mutating the table.
	Create(ctx context.Context, identity *domain.Identity) error
}
