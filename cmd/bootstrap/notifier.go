package bootstrap

import (
	"context"
	"log/slog"

	"weekly-booking/internal/infra/notifier"
	"weekly-booking/internal/pkg/clock"
	"weekly-booking/internal/pkg/config"
	"weekly-booking/internal/usecase/commands"

	"go.uber.org/fx"
)

var NotifierModule = fx.Module("notifier",
	fx.Provide(
		NewReservationNotifier,
	),
)

// NewReservationNotifier publishes to RabbitMQ when AMQP_URL is set and
// drops events otherwise. The broker is dialled on first publish.
func NewReservationNotifier(lc fx.Lifecycle, cfg config.Config, clk clock.Clock, logger *slog.Logger) commands.ReservationNotifier {
	if cfg.AMQP.URL == "" {
		logger.Info("reservation events disabled: AMQP_URL not set")
		return notifier.NewNop()
	}

	n := notifier.NewAMQPNotifier(cfg.AMQP, clk, logger)
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return n.Close()
		},
	})
	return n
}
