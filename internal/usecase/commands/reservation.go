package commands

import (
	"context"
	"log/slog"

	"weekly-booking/internal/domain/reservation"
	reqdto "weekly-booking/internal/handler/dto/request"
	"weekly-booking/internal/pkg/errs"
)

var ErrDatabaseOperationFailed = errs.New("database operation failed")

type CreateReservationResult struct {
	Reservation *reservation.Reservation
	WeekNumber  int
	Year        int
}

type ReservationCommands interface {
	CreateReservation(ctx context.Context, req reqdto.CreateReservationRequest) (*CreateReservationResult, error)
}

type reservationUseCaseImpl struct {
	reservationRepo    ReservationRepository
	notifier           ReservationNotifier
	reservationFactory *reservation.Factory
}

func NewReservationUseCase(
	reservationRepo ReservationRepository,
	notifier ReservationNotifier,
	reservationFactory *reservation.Factory,
) ReservationCommands {
	return &reservationUseCaseImpl{
		reservationRepo:    reservationRepo,
		notifier:           notifier,
		reservationFactory: reservationFactory,
	}
}

// CreateReservation validates and stores one booking. Validation errors are
// returned marked with reservation.ErrValidationFailed, store errors with
// ErrDatabaseOperationFailed. Event publishing never fails the call.
func (r *reservationUseCaseImpl) CreateReservation(
	ctx context.Context,
	req reqdto.CreateReservationRequest,
) (*CreateReservationResult, error) {
	candidate, err := r.reservationFactory.FromPayload(req.ToPayload())
	if err != nil {
		return nil, err
	}

	stored, err := r.reservationRepo.Create(ctx, candidate)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := r.notifier.ReservationCreated(ctx, stored); err != nil {
		slog.Warn("failed to publish reservation event", "reservation_id", stored.ID(), "error", err)
	}

	return &CreateReservationResult{
		Reservation: stored,
		WeekNumber:  stored.Slot().WeekNumber(),
		Year:        stored.Slot().Year(),
	}, nil
}
