package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ReservationView is the stored reservation as the presentation layer sees it.
type ReservationView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     *string   `json:"email,omitempty"`
	Message   *string   `json:"message,omitempty"`
	Time      TimeView  `json:"time"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type TimeView struct {
	WeekNumber int `json:"weekNumber"`
	Year       int `json:"year"`
	CellID     int `json:"cellId"`
}

type ReservationReadStore interface {
	ListAll(ctx context.Context) ([]*ReservationView, error)
}

type ReservationQueries interface {
	ListAll(ctx context.Context) ([]*ReservationView, error)
}

type reservationQueriesImpl struct {
	store ReservationReadStore
}

func NewReservationQueries(store ReservationReadStore) ReservationQueries {
	return &reservationQueriesImpl{store: store}
}

// ListAll returns every stored reservation; no filtering by week is applied.
func (q *reservationQueriesImpl) ListAll(ctx context.Context) ([]*ReservationView, error) {
	return q.store.ListAll(ctx)
}
