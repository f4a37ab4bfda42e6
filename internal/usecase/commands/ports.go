package commands

import (
	"context"

	"weekly-booking/internal/domain/reservation"
	"weekly-booking/internal/domain/session"

	"github.com/google/uuid"
)

type ReservationRepository interface {
	Create(ctx context.Context, res *reservation.Reservation) (*reservation.Reservation, error)
}

type ReservationNotifier interface {
	ReservationCreated(ctx context.Context, res *reservation.Reservation) error
}

type SessionStore interface {
	Save(ctx context.Context, state *session.State) error
	Find(ctx context.Context, id uuid.UUID) (*session.State, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
