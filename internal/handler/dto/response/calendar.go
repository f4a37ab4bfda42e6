package response

import (
	"weekly-booking/internal/domain/calendar"
	"weekly-booking/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type DateInfoResponse struct {
	CurrentDay *int                         `json:"currentDay"`
	WeekNumber int                          `json:"weekNumber"`
	Year       int                          `json:"year"`
	NextWeek   int                          `json:"nextWeek"`
	NextYear   int                          `json:"nextYear"`
	PrevWeek   *int                         `json:"prevWeek"`
	PrevYear   *int                         `json:"prevYear"`
	Dates      [calendar.DaysPerWeek]string `json:"dates"`
}

// AdminDateInfoResponse carries no navigation; the admin view always shows
// the current week.
type AdminDateInfoResponse struct {
	CurrentDay *int                         `json:"currentDay"`
	WeekNumber int                          `json:"weekNumber"`
	Year       int                          `json:"year"`
	Dates      [calendar.DaysPerWeek]string `json:"dates"`
}

type CalendarPageResponse struct {
	CompanyName  string                 `json:"company_name"`
	DateInfo     DateInfoResponse       `json:"date_info"`
	Reservations []*ReservationResponse `json:"reservations"`
}

type AdminPageResponse struct {
	CompanyName  string                 `json:"company_name"`
	DateInfo     AdminDateInfoResponse  `json:"date_info"`
	Reservations []*ReservationResponse `json:"reservations"`
}

func FromCalendarPage(p *queries.CalendarPage) (*CalendarPageResponse, error) {
	var info DateInfoResponse
	if err := copier.Copy(&info, &p.Week); err != nil {
		return nil, err
	}
	return &CalendarPageResponse{
		CompanyName:  p.CompanyName,
		DateInfo:     info,
		Reservations: FromReservationViews(p.Reservations),
	}, nil
}

func FromAdminPage(p *queries.CalendarPage) (*AdminPageResponse, error) {
	var info AdminDateInfoResponse
	if err := copier.Copy(&info, &p.Week); err != nil {
		return nil, err
	}
	return &AdminPageResponse{
		CompanyName:  p.CompanyName,
		DateInfo:     info,
		Reservations: FromReservationViews(p.Reservations),
	}, nil
}
