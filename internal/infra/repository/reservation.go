package repository

import (
	"context"

	"weekly-booking/internal/domain/reservation"
	"weekly-booking/internal/infra"
	"weekly-booking/internal/infra/db"
	"weekly-booking/internal/pkg/pgconv"
	"weekly-booking/internal/pkg/ptr"
)

//go:generate mockgen -source=reservation.go -destination=../../../tests/mock/repository/reservation.go -package=repositorymock

type ReservationWriteQueries interface {
	CreateReservation(ctx context.Context, db db.DBTX, arg db.CreateReservationParams) (db.ReservationRow, error)
}

type ReservationRepository struct {
	queries ReservationWriteQueries
	db      db.DBTX
}

func NewReservationRepository(queries ReservationWriteQueries, db db.DBTX) *ReservationRepository {
	return &ReservationRepository{
		queries: queries,
		db:      db,
	}
}

// Create inserts the candidate and returns the stored reservation with the
// id and timestamps assigned by the database.
func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) (*reservation.Reservation, error) {
	row, err := r.queries.CreateReservation(ctx, r.db, toCreateParams(res))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create reservation", err)
	}

	stored, err := rowToReservation(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to reconstruct reservation", err)
	}

	return stored, nil
}

func toCreateParams(res *reservation.Reservation) db.CreateReservationParams {
	slot := res.Slot()
	return db.CreateReservationParams{
		Name:       res.Name().String(),
		Email:      pgconv.StringPtrToPgtype(ptr.Of(res.Email().String())),
		Message:    pgconv.StringPtrToPgtype(ptr.Of(res.Message().String())),
		WeekNumber: int32(slot.WeekNumber()),
		Year:       int32(slot.Year()),
		CellID:     int32(slot.CellID()),
	}
}

func rowToReservation(row db.ReservationRow) (*reservation.Reservation, error) {
	return reservation.ReconstructReservation(
		row.ID,
		row.Name,
		ptr.Deref(pgconv.StringPtrFromPgtype(row.Email), ""),
		ptr.Deref(pgconv.StringPtrFromPgtype(row.Message), ""),
		reservation.ReconstructSlot(int(row.WeekNumber), int(row.Year), int(row.CellID)),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}
