package sessionstore

import (
	"context"
	"sync"
	"time"

	"weekly-booking/internal/domain/session"
	"weekly-booking/internal/infra"
	"weekly-booking/internal/pkg/clock"

	"github.com/google/uuid"
)

// sweepInterval bounds how often Save scans for expired entries.
const sweepInterval = time.Minute

var errAnonymousState = infra.WrapRepoErr("anonymous session cannot be stored", nil, infra.KindConstraintViolated)

type entry struct {
	loggedIn  bool
	expiresAt time.Time
}

// MemoryStore keeps sessions in process. Expired entries are dropped when a
// lookup finds them and by a periodic sweep on Save.
type MemoryStore struct {
	mu        sync.RWMutex
	entries   map[uuid.UUID]entry
	clock     clock.Clock
	lastSweep time.Time
}

func NewMemoryStore(clock clock.Clock) *MemoryStore {
	return &MemoryStore{
		entries: make(map[uuid.UUID]entry),
		clock:   clock,
	}
}

func (s *MemoryStore) Save(_ context.Context, st *session.State) error {
	if !st.IsPersisted() {
		return errAnonymousState
	}

	now := s.clock.Now()

	s.mu.Lock()
	defer s.mu.Unlock()
	if now.Sub(s.lastSweep) >= sweepInterval {
		s.sweepLocked(now)
	}
	s.entries[st.ID()] = entry{loggedIn: st.LoggedIn(), expiresAt: st.ExpiresAt()}
	return nil
}

func (s *MemoryStore) sweepLocked(now time.Time) {
	for id, e := range s.entries {
		if !e.expiresAt.IsZero() && !now.Before(e.expiresAt) {
			delete(s.entries, id)
		}
	}
	s.lastSweep = now
}

func (s *MemoryStore) Find(_ context.Context, id uuid.UUID) (*session.State, error) {
	s.mu.RLock()
	e, ok := s.entries[id]
	s.mu.RUnlock()

	if !ok {
		return nil, infra.WrapRepoErr("session not found", nil, infra.KindNotFound)
	}

	st := session.Reconstruct(id, e.loggedIn, e.expiresAt)
	if st.IsExpired(s.clock.Now()) {
		s.mu.Lock()
		delete(s.entries, id)
		s.mu.Unlock()
		return nil, infra.WrapRepoErr("session expired", nil, infra.KindNotFound)
	}

	return st, nil
}

func (s *MemoryStore) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, id)
	return nil
}

func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
