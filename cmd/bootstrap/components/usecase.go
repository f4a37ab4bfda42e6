package components

import (
	"weekly-booking/internal/domain/calendar"
	"weekly-booking/internal/pkg/clock"
	"weekly-booking/internal/pkg/settings"
	"weekly-booking/internal/usecase/commands"
	"weekly-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewReservationUseCase,
		commands.NewSessionUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewReservationQueries,
		queries.NewSessionQueries,
		NewCalendarQueries,
	),
)

func NewCalendarQueries(
	engine *calendar.Engine,
	reservations queries.ReservationQueries,
	s settings.Settings,
	clk clock.Clock,
) queries.CalendarQueries {
	return queries.NewCalendarQueries(engine, reservations, s.CompanyName, clk)
}
