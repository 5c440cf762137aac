// Package memory provides the in-memory state backing the portal: the
// credential table and both catalog collections are mock data held in process,
// mutated only through their repository interfaces.
package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/vitality-edu/wellness-hub/internal/core/domain"
)

// CredentialRepository is the in-memory credential table, keyed by lowercase
// email so lookups are case-insensitive.
type CredentialRepository struct {
	mu      sync.RWMutex
	byEmail map[string]*domain.Identity
}

// NewCredentialRepository seeds the table with the given identities.
func NewCredentialRepository(seed []*domain.Identity) *CredentialRepository {
	r := &CredentialRepository{byEmail: make(map[string]*domain.Identity, len(seed))}
	for _, identity := range seed {
		r.byEmail[strings.ToLower(identity.Email)] = identity.Clone()
	}
	return r
}

func (r *CredentialRepository) FindByEmail(_ context.Context, email string) (*domain.Identity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	identity, ok := r.byEmail[strings.ToLower(email)]
	if !ok {
		return nil, domain.ErrIdentityNotFound
	}
	return identity.Clone(), nil
}

func (r *CredentialRepository) Create(_ context.Context, identity *domain.Identity) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := strings.ToLower(identity.Email)
	if _, exists := r.byEmail[key]; exists {
		return domain.ErrEmailTaken
	}
	r.byEmail[key] = identity.Clone()
	return nil
}
