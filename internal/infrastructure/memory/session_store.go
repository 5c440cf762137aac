package memory

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/vitality-edu/wellness-hub/internal/core/domain"
)

// SessionStore keeps the serialized session record in process memory. It is
// the fallback when no Redis address is configured, and it round-trips the
// record through JSON exactly like the Redis-backed store does.
type SessionStore struct {
	mu   sync.Mutex
	data []byte
}

func NewSessionStore() *SessionStore {
	return &SessionStore{}
}

func (s *SessionStore) Save(_ context.Context, identity *domain.Identity) error {
	data, err := json.Marshal(identity)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = data
	return nil
}

func (s *SessionStore) Load(_ context.Context) (*domain.Identity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.data == nil {
		return nil, nil
	}

	var identity domain.Identity
	if err := json.Unmarshal(s.data, &identity); err != nil {
		// Malformed state reads as "no active session".
		return nil, nil
	}
	return &identity, nil
}

func (s *SessionStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = nil
	return nil
}
