package ports

import (
	"context"

	"github.com/vitality-edu/wellness-hub/internal/core/domain"
)

// SessionRecordStore persists the active identity as one serialized record
// under a single well-known storage key.
type SessionRecordStore interface {
	// Save overwrites the stored record with the given identity.
	Save(ctx context.Context, identity *domain.Identity) error
	// Load returns the stored identity, or (nil, nil) when the key is absent
	// or holds data that does not deserialize. Malformed state is "no active
	// session", never an error.
	Load(ctx context.Context) (*domain.Identity, error)
	// Clear removes the key.
	Clear(ctx context.Context) error
}
