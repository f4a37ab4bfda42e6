package components

import (
	"weekly-booking/internal/handler"
	"weekly-booking/internal/handler/api"
	"weekly-booking/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewCalendarHandler,
		api.NewReservationHandler,
		api.NewAdminHandler,
		api.NewSessionHandler,
		middleware.NewSessionMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	calendar *api.CalendarHandler,
	reservation *api.ReservationHandler,
	admin *api.AdminHandler,
	session *api.SessionHandler,
) handler.Handlers {
	return handler.Handlers{
		Calendar:    calendar,
		Reservation: reservation,
		Admin:       admin,
		Session:     session,
	}
}
