package readstore

import (
	"context"

	"weekly-booking/internal/infra"
	"weekly-booking/internal/infra/db"
	"weekly-booking/internal/pkg/pgconv"
	"weekly-booking/internal/usecase/queries"
)

type ReservationViewQueries interface {
	ListReservations(ctx context.Context, db db.DBTX) ([]db.ReservationRow, error)
}

type ReservationReadStore struct {
	queries ReservationViewQueries
	db      db.DBTX
}

func NewReservationReadStore(queries ReservationViewQueries, db db.DBTX) *ReservationReadStore {
	return &ReservationReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationReadStore) ListAll(ctx context.Context) ([]*queries.ReservationView, error) {
	rows, err := r.queries.ListReservations(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}

	result := make([]*queries.ReservationView, len(rows))
	for i, row := range rows {
		result[i] = rowToReservationView(row)
	}

	return result, nil
}

func rowToReservationView(row db.ReservationRow) *queries.ReservationView {
	return &queries.ReservationView{
		ID:      row.ID,
		Name:    row.Name,
		Email:   pgconv.StringPtrFromPgtype(row.Email),
		Message: pgconv.StringPtrFromPgtype(row.Message),
		Time: queries.TimeView{
			WeekNumber: int(row.WeekNumber),
			Year:       int(row.Year),
			CellID:     int(row.CellID),
		},
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt: pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
