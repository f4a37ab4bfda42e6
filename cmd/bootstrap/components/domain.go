package components

import (
	"log/slog"

	"weekly-booking/internal/domain/calendar"
	"weekly-booking/internal/domain/reservation"
	"weekly-booking/internal/pkg/clock"
	"weekly-booking/internal/pkg/config"
	"weekly-booking/internal/pkg/settings"

	"go.uber.org/fx"
)

var DomainModule = fx.Module("domain",
	fx.Provide(
		NewClock,
		NewCalendarEngine,
		NewReservationFactory,
	),
)

// NewClock reports time in APP_TIMEZONE so week boundaries follow the
// business's calendar.
func NewClock(cfg config.Config) clock.Clock {
	return clock.NewRealClock(clock.LoadLocation(cfg.App.TimeZone))
}

func NewCalendarEngine(s settings.Settings, logger *slog.Logger) *calendar.Engine {
	locale := calendar.ParseLocale(s.MomentLanguage)
	logger.Info("calendar configured", "locale", locale.String(), "years_to_future", s.YearsToFuture)
	return calendar.NewEngine(locale, s.YearsToFuture)
}

func NewReservationFactory(clk clock.Clock, engine *calendar.Engine) *reservation.Factory {
	return reservation.NewFactory(clk, engine.YearsToFuture())
}
