package bootstrap

import (
	"context"
	"log/slog"

	"weekly-booking/internal/infra/sessionstore"
	"weekly-booking/internal/pkg/clock"
	"weekly-booking/internal/pkg/config"
	"weekly-booking/internal/pkg/errs"
	"weekly-booking/internal/usecase/commands"
	"weekly-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var SessionModule = fx.Module("session",
	fx.Provide(
		NewSessionStore,
		func(store commands.SessionStore) queries.SessionReader { return store },
	),
)

// NewSessionStore uses Redis when REDIS_ADDR is set and an in-process map
// otherwise.
func NewSessionStore(lc fx.Lifecycle, cfg config.Config, clk clock.Clock, logger *slog.Logger) (commands.SessionStore, error) {
	if cfg.Redis.Addr == "" {
		logger.Info("session store: in-memory")
		return sessionstore.NewMemoryStore(clk), nil
	}

	client := sessionstore.NewRedisClient(cfg.Redis)
	if err := sessionstore.Ping(context.Background(), client); err != nil {
		_ = client.Close()
		return nil, errs.Wrapf(err, "redis %s unreachable", cfg.Redis.Addr)
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	logger.Info("session store: redis", "addr", cfg.Redis.Addr)
	return sessionstore.NewRedisStore(client, cfg.Redis.Prefix, clk), nil
}
