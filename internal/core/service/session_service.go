package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/vitality-edu/wellness-hub/internal/api/metrics"
	"github.com/vitality-edu/wellness-hub/internal/core/domain"
	"github.com/vitality-edu/wellness-hub/internal/core/ids"
	"github.com/vitality-edu/wellness-hub/internal/core/ports"
)

const defaultWellnessScore = 50

// SessionService tracks the single active identity. All mutations go through
// the service, so the mutex makes each one atomic from the caller's
// perspective; readers only ever see a fully applied state.
type SessionService struct {
	creds ports.CredentialRepository
	store ports.SessionRecordStore
	log   zerolog.Logger

	mu     sync.RWMutex
	active *domain.Identity
}

func NewSessionService(creds ports.CredentialRepository, store ports.SessionRecordStore, log zerolog.Logger) *SessionService {
	return &SessionService{creds: creds, store: store, log: log}
}

// Login matches a case-insensitive email and exact password against the
// credential table. Failures leave the active session and the credential
// table untouched.
func (s *SessionService) Login(ctx context.Context, email, password string) (*domain.Identity, error) {
	if email == "" || password == "" {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return nil, domain.ErrInvalidCredentials
	}

	found, err := s.creds.FindByEmail(ctx, email)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		if errors.Is(err, domain.ErrIdentityNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(found.PasswordHash), []byte(password)) != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return nil, domain.ErrInvalidCredentials
	}

	identity := found.Sanitized()
	if err := s.activate(ctx, identity); err != nil {
		return nil, err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	s.log.Info().Str("user_id", identity.ID).Str("role", identity.Role).Msg("login")
	return identity.Clone(), nil
}

// Register appends a credential record and activates the new identity. The
// identifier is time-ordered, the avatar is derived from the name, and
// students start with the default wellness score and an empty enrollment set.
func (s *SessionService) Register(ctx context.Context, input ports.RegisterInput) (*domain.Identity, error) {
	if input.Name == "" || input.Email == "" || input.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	if !domain.ValidRole(input.Role) {
		return nil, domain.ErrInvalidInput
	}

	if _, err := s.creds.FindByEmail(ctx, input.Email); err == nil {
		return nil, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrIdentityNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	identity := &domain.Identity{
		ID:            "usr-" + ids.New(),
		Name:          input.Name,
		Email:         input.Email,
		PasswordHash:  string(hash),
		Role:          input.Role,
		Avatar:        domain.AvatarInitials(input.Name),
		JoinDate:      time.Now().UTC().Format("2006-01-02"),
		WellnessScore: defaultWellnessScore,
		Enrolled:      []string{},
	}

	if err := s.creds.Create(ctx, identity); err != nil {
		return nil, err
	}

	active := identity.Sanitized()
	if err := s.activate(ctx, active); err != nil {
		return nil, err
	}

	metrics.RegistrationsTotal.Inc()
	s.log.Info().Str("user_id", identity.ID).Str("role", identity.Role).Msg("account registered")
	return active.Clone(), nil
}

// Logout clears the active identity and removes the persisted record.
func (s *SessionService) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.active = nil
	metrics.SessionActive.Set(0)
	if err := s.store.Clear(ctx); err != nil {
		return err
	}
	s.log.Info().Msg("logout")
	return nil
}

// Current returns a copy of the active identity, or nil.
func (s *SessionService) Current() *domain.Identity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active.Clone()
}

// UpdateEnrollment applies an add/remove to the active identity's enrollment
// set and persists the updated record before it becomes visible.
func (s *SessionService) UpdateEnrollment(ctx context.Context, programID string, action ports.EnrollmentAction) (*domain.Identity, error) {
	if programID == "" {
		return nil, domain.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active == nil {
		return nil, domain.ErrNoActiveSession
	}

	updated := s.active.Clone()
	switch action {
	case ports.EnrollmentAdd:
		updated.Enroll(programID)
	case ports.EnrollmentRemove:
		updated.Unenroll(programID)
	default:
		return nil, domain.ErrInvalidInput
	}

	if err := s.store.Save(ctx, updated); err != nil {
		return nil, err
	}
	s.active = updated

	metrics.EnrollmentUpdatesTotal.WithLabelValues(string(action)).Inc()
	s.log.Info().Str("program_id", programID).Str("action", string(action)).Msg("enrollment updated")
	return updated.Clone(), nil
}

// Restore loads the persisted record at process start. Missing or malformed
// state yields no active identity; store failures are logged and swallowed so
// startup never depends on a readable session key.
func (s *SessionService) Restore(ctx context.Context) {
	identity, err := s.store.Load(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("session restore failed, starting anonymous")
		return
	}
	if identity == nil {
		return
	}

	s.mu.Lock()
	s.active = identity.Sanitized()
	s.mu.Unlock()

	metrics.SessionActive.Set(1)
	s.log.Info().Str("user_id", identity.ID).Msg("session restored")
}

// activate persists the identity and swaps it in as the active session.
func (s *SessionService) activate(ctx context.Context, identity *domain.Identity) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Save(ctx, identity); err != nil {
		return err
	}
	s.active = identity
	metrics.SessionActive.Set(1)
	return nil
}
