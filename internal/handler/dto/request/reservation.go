package request

import (
	"weekly-booking/internal/domain/reservation"
)

// CreateReservationRequest binds from either a JSON body or a urlencoded
// form. Fields are pointers so absent and zero values stay distinguishable.
type CreateReservationRequest struct {
	Name       *string `json:"name" form:"name"`
	Email      *string `json:"email,omitempty" form:"email"`
	Message    *string `json:"message,omitempty" form:"message"`
	ExtraInfo  *string `json:"extraInfo,omitempty" form:"extraInfo"`
	WeekNumber *int    `json:"weekNumber" form:"weekNumber"`
	Year       *int    `json:"year" form:"year"`
	CellID     *int    `json:"cellId" form:"cellId"`
}

func (r CreateReservationRequest) ToPayload() reservation.Payload {
	return reservation.Payload{
		Name:       r.Name,
		Email:      r.Email,
		Message:    r.Message,
		ExtraInfo:  r.ExtraInfo,
		WeekNumber: r.WeekNumber,
		Year:       r.Year,
		CellID:     r.CellID,
	}
}
