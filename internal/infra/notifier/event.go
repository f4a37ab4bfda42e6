package notifier

import (
	"context"
	"time"

	"weekly-booking/internal/domain/reservation"

	"github.com/google/uuid"
)

type ReservationCreatedEvent struct {
	ReservationID uuid.UUID `json:"reservation_id"`
	Name          string    `json:"name"`
	WeekNumber    int       `json:"week_number"`
	Year          int       `json:"year"`
	CellID        int       `json:"cell_id"`
	CreatedAt     time.Time `json:"created_at"`
}

func NewReservationCreatedEvent(res *reservation.Reservation) ReservationCreatedEvent {
	slot := res.Slot()
	return ReservationCreatedEvent{
		ReservationID: res.ID(),
		Name:          res.Name().String(),
		WeekNumber:    slot.WeekNumber(),
		Year:          slot.Year(),
		CellID:        slot.CellID(),
		CreatedAt:     res.CreatedAt(),
	}
}

// Nop drops every event. It is used when no broker is configured.
type Nop struct{}

func NewNop() *Nop { return &Nop{} }

func (Nop) ReservationCreated(_ context.Context, _ *reservation.Reservation) error {
	return nil
}
