package sessionstore

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"weekly-booking/internal/domain/session"
	"weekly-booking/internal/infra"
	"weekly-booking/internal/pkg/clock"
	"weekly-booking/internal/pkg/config"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type redisRecord struct {
	LoggedIn  bool      `json:"logged_in"`
	ExpiresAt time.Time `json:"expires_at"`
}

// RedisStore keeps one key per session and lets Redis expire it.
type RedisStore struct {
	client *redis.Client
	prefix string
	clock  clock.Clock
}

func NewRedisClient(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

// Ping checks the connection with a short timeout.
func Ping(ctx context.Context, client *redis.Client) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return client.Ping(ctx).Err()
}

func NewRedisStore(client *redis.Client, prefix string, clock clock.Clock) *RedisStore {
	return &RedisStore{
		client: client,
		prefix: prefix,
		clock:  clock,
	}
}

func (s *RedisStore) key(id uuid.UUID) string {
	return s.prefix + id.String()
}

func (s *RedisStore) Save(ctx context.Context, st *session.State) error {
	if !st.IsPersisted() {
		return errAnonymousState
	}

	ttl := st.TTL(s.clock.Now())
	if ttl <= 0 {
		return s.Delete(ctx, st.ID())
	}

	body, err := json.Marshal(redisRecord{LoggedIn: st.LoggedIn(), ExpiresAt: st.ExpiresAt()})
	if err != nil {
		return infra.WrapRepoErr("failed to encode session", err)
	}

	if err := s.client.Set(ctx, s.key(st.ID()), body, ttl).Err(); err != nil {
		return infra.WrapRepoErr("failed to store session", err)
	}
	return nil
}

func (s *RedisStore) Find(ctx context.Context, id uuid.UUID) (*session.State, error) {
	body, err := s.client.Get(ctx, s.key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, infra.WrapRepoErr("session not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load session", err)
	}

	var rec redisRecord
	if err := json.Unmarshal(body, &rec); err != nil {
		return nil, infra.WrapRepoErr("failed to decode session", err)
	}

	st := session.Reconstruct(id, rec.LoggedIn, rec.ExpiresAt)
	if st.IsExpired(s.clock.Now()) {
		return nil, infra.WrapRepoErr("session expired", nil, infra.KindNotFound)
	}
	return st, nil
}

func (s *RedisStore) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.client.Del(ctx, s.key(id)).Err(); err != nil {
		return infra.WrapRepoErr("failed to delete session", err)
	}
	return nil
}
