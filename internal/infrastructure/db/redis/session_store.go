package redis

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/vitality-edu/wellness-hub/internal/core/domain"
)

// DefaultSessionKey is the well-known storage key holding the serialized
// active identity.
const DefaultSessionKey = "vh:session"

// SessionStore persists the active identity as one JSON document under a
// single key. Absence of the key means no active session; a record that does
// not deserialize reads the same way.
type SessionStore struct {
	client *redis.Client
	key    string
	log    zerolog.Logger
}

// NewSessionStore wraps the given client. An empty key falls back to
// DefaultSessionKey.
func NewSessionStore(client *redis.Client, key string, log zerolog.Logger) *SessionStore {
	if key == "" {
		key = DefaultSessionKey
	}
	return &SessionStore{client: client, key: key, log: log}
}

func (s *SessionStore) Save(ctx context.Context, identity *domain.Identity) error {
	data, err := json.Marshal(identity)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, s.key, data, 0).Err()
}

func (s *SessionStore) Load(ctx context.Context) (*domain.Identity, error) {
	data, err := s.client.Get(ctx, s.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var identity domain.Identity
	if err := json.Unmarshal(data, &identity); err != nil {
		s.log.Warn().Err(err).Str("key", s.key).Msg("stored session record is malformed, ignoring")
		return nil, nil
	}
	return &identity, nil
}

func (s *SessionStore) Clear(ctx context.Context) error {
	return s.client.Del(ctx, s.key).Err()
}
