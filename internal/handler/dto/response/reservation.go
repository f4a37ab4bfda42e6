package response

import (
	"time"

	"weekly-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationResponse struct {
	ID        uuid.UUID    `json:"id"`
	Name      string       `json:"name"`
	Email     *string      `json:"email,omitempty"`
	Message   *string      `json:"message,omitempty"`
	Time      TimeResponse `json:"time"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
}

type TimeResponse struct {
	WeekNumber int `json:"weekNumber"`
	Year       int `json:"year"`
	CellID     int `json:"cellId"`
}

func FromReservationView(v *queries.ReservationView) *ReservationResponse {
	return &ReservationResponse{
		ID:        v.ID,
		Name:      v.Name,
		Email:     v.Email,
		Message:   v.Message,
		Time:      TimeResponse(v.Time),
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
}

func FromReservationViews(views []*queries.ReservationView) []*ReservationResponse {
	out := make([]*ReservationResponse, len(views))
	for i, v := range views {
		out[i] = FromReservationView(v)
	}
	return out
}
