package session

import (
	"time"

	"github.com/google/uuid"
)

// State is the server-side view of one visitor session. Anonymous states
// have no id and are never stored.
type State struct {
	id        uuid.UUID
	loggedIn  bool
	expiresAt time.Time
}

func NewAnonymous() *State {
	return &State{}
}

func Reconstruct(id uuid.UUID, loggedIn bool, expiresAt time.Time) *State {
	return &State{
		id:        id,
		loggedIn:  loggedIn,
		expiresAt: expiresAt,
	}
}

// LogIn returns a fresh logged-in state under a new id; the previous id is
// never promoted.
func (s *State) LogIn(now time.Time, ttl time.Duration) *State {
	return &State{
		id:        uuid.New(),
		loggedIn:  true,
		expiresAt: now.Add(ttl),
	}
}

func (s *State) IsLoggedIn(now time.Time) bool {
	return s.loggedIn && now.Before(s.expiresAt)
}

func (s *State) IsExpired(now time.Time) bool {
	return !s.expiresAt.IsZero() && !now.Before(s.expiresAt)
}

func (s *State) IsPersisted() bool {
	return s.id != uuid.Nil
}

func (s *State) ID() uuid.UUID        { return s.id }
func (s *State) LoggedIn() bool       { return s.loggedIn }
func (s *State) ExpiresAt() time.Time { return s.expiresAt }
func (s *State) TTL(now time.Time) time.Duration {
	if s.expiresAt.IsZero() {
		return 0
	}
	return s.expiresAt.Sub(now)
}
