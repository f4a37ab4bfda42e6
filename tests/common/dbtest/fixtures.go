//go:build e2e

package dbtest

import (
	"context"
	"testing"
	"time"

	"weekly-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// InsertReservation writes b straight into the table, bypassing validation,
// and returns the generated id.
func InsertReservation(t *testing.T, db DBLike, b *builder.ReservationBuilder) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(), `
		INSERT INTO reservations (name, email, message, week_number, year, cell_id)
		VALUES ($1, NULLIF($2, ''), NULLIF($3, ''), $4, $5, $6)
		RETURNING id`,
		b.Name, b.Email, b.Message, b.WeekNumber, b.Year, b.CellID,
	).Scan(&id)
	require.NoError(t, err)
	return id
}

func CountReservations(t *testing.T, db DBLike) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM reservations").Scan(&n)
	require.NoError(t, err)
	return n
}

// CountReservationsAt counts bookings of one cell; duplicates are allowed.
func CountReservationsAt(t *testing.T, db DBLike, week, year, cellID int) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM reservations WHERE week_number = $1 AND year = $2 AND cell_id = $3",
		week, year, cellID,
	).Scan(&n)
	require.NoError(t, err)
	return n
}

// ResetDB empties every table the service writes to.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := pool.Exec(ctx, "TRUNCATE reservations")
	return err
}
