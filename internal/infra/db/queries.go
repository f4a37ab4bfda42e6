package db

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

// DBTX is satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type ReservationRow struct {
	ID         uuid.UUID
	Name       string
	Email      pgtype.Text
	Message    pgtype.Text
	WeekNumber int32
	Year       int32
	CellID     int32
	CreatedAt  pgtype.Timestamptz
	UpdatedAt  pgtype.Timestamptz
}

type CreateReservationParams struct {
	Name       string
	Email      pgtype.Text
	Message    pgtype.Text
	WeekNumber int32
	Year       int32
	CellID     int32
}

type Queries struct{}

func NewQueries() *Queries {
	return &Queries{}
}

const reservationColumns = `id, name, email, message, week_number, year, cell_id, created_at, updated_at`

const createReservation = `
INSERT INTO reservations (name, email, message, week_number, year, cell_id)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + reservationColumns

func (q *Queries) CreateReservation(ctx context.Context, db DBTX, arg CreateReservationParams) (ReservationRow, error) {
	row := db.QueryRow(ctx, createReservation,
		arg.Name,
		arg.Email,
		arg.Message,
		arg.WeekNumber,
		arg.Year,
		arg.CellID,
	)
	return scanReservation(row)
}

const listReservations = `
SELECT ` + reservationColumns + `
FROM reservations
ORDER BY created_at, id`

func (q *Queries) ListReservations(ctx context.Context, db DBTX) ([]ReservationRow, error) {
	rows, err := db.Query(ctx, listReservations)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []ReservationRow{}
	for rows.Next() {
		i, err := scanReservation(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func scanReservation(row pgx.Row) (ReservationRow, error) {
	var i ReservationRow
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Email,
		&i.Message,
		&i.WeekNumber,
		&i.Year,
		&i.CellID,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}
