package commands

import (
	"context"
	"crypto/subtle"
	"log/slog"
	"time"

	"weekly-booking/internal/domain/session"
	"weekly-booking/internal/pkg/clock"
	"weekly-booking/internal/pkg/config"
	"weekly-booking/internal/pkg/errs"
	"weekly-booking/internal/pkg/jwt"
	"weekly-booking/internal/pkg/password"
	"weekly-booking/internal/pkg/settings"
)

var (
	ErrInvalidCredentials  = errs.New("invalid credentials")
	ErrSessionStoreFailed  = errs.New("session store operation failed")
	ErrTokenIssuanceFailed = errs.New("session token issuance failed")
)

type SessionResult struct {
	State     *session.State
	Token     string
	ExpiresAt time.Time
}

type SessionCommands interface {
	Login(ctx context.Context, current *session.State) (*SessionResult, error)
	LoginWithCredentials(ctx context.Context, current *session.State, username, password string) (*SessionResult, error)
	Logout(ctx context.Context, current *session.State) error
}

type sessionUseCaseImpl struct {
	store  SessionStore
	tokens *jwt.Service
	admin  settings.AdminAccount
	ttl    time.Duration
	clock  clock.Clock
}

func NewSessionUseCase(
	store SessionStore,
	tokens *jwt.Service,
	admin settings.AdminAccount,
	cfg config.Config,
	clock clock.Clock,
) SessionCommands {
	return &sessionUseCaseImpl{
		store:  store,
		tokens: tokens,
		admin:  admin,
		ttl:    cfg.Session.TTL,
		clock:  clock,
	}
}

// Login stores a logged-in state under a new session id and drops the
// previous one.
func (s *sessionUseCaseImpl) Login(ctx context.Context, current *session.State) (*SessionResult, error) {
	now := s.clock.Now()
	next := current.LogIn(now, s.ttl)

	if err := s.store.Save(ctx, next); err != nil {
		return nil, errs.Mark(err, ErrSessionStoreFailed)
	}

	if current.IsPersisted() {
		if err := s.store.Delete(ctx, current.ID()); err != nil {
			slog.Warn("failed to drop previous session", "session_id", current.ID(), "error", err)
		}
	}

	token, err := s.tokens.GenerateSessionToken(next.ID(), now, next.ExpiresAt())
	if err != nil {
		return nil, errs.Mark(err, ErrTokenIssuanceFailed)
	}

	return &SessionResult{
		State:     next,
		Token:     token,
		ExpiresAt: next.ExpiresAt(),
	}, nil
}

func (s *sessionUseCaseImpl) LoginWithCredentials(
	ctx context.Context,
	current *session.State,
	username, pw string,
) (*SessionResult, error) {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.admin.Username)) == 1
	// The hash is compared even for an unknown username.
	pwErr := password.ComparePassword(s.admin.PasswordHash, pw)
	if !userOK || pwErr != nil {
		return nil, ErrInvalidCredentials
	}

	return s.Login(ctx, current)
}

func (s *sessionUseCaseImpl) Logout(ctx context.Context, current *session.State) error {
	if !current.IsPersisted() {
		return nil
	}
	if err := s.store.Delete(ctx, current.ID()); err != nil {
		return errs.Mark(err, ErrSessionStoreFailed)
	}
	return nil
}
