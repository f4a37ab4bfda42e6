package queries

import (
	"context"

	"weekly-booking/internal/domain/calendar"
	"weekly-booking/internal/pkg/clock"
	"weekly-booking/internal/pkg/errs"
)

var ErrReadFailed = errs.New("failed to read reservations")

// CalendarPage is everything a calendar view renders: the week grid and the
// full, unfiltered reservation list.
type CalendarPage struct {
	CompanyName  string
	Week         calendar.WeekView
	Reservations []*ReservationView
}

type CalendarQueries interface {
	GetCurrentWeek(ctx context.Context) (*CalendarPage, error)
	GetWeek(ctx context.Context, week, year int) (*CalendarPage, error)
	AdminOverview(ctx context.Context) (*CalendarPage, error)
}

type calendarQueriesImpl struct {
	engine       *calendar.Engine
	reservations ReservationQueries
	companyName  string
	clock        clock.Clock
}

func NewCalendarQueries(
	engine *calendar.Engine,
	reservations ReservationQueries,
	companyName string,
	clock clock.Clock,
) CalendarQueries {
	return &calendarQueriesImpl{
		engine:       engine,
		reservations: reservations,
		companyName:  companyName,
		clock:        clock,
	}
}

func (q *calendarQueriesImpl) GetCurrentWeek(ctx context.Context) (*CalendarPage, error) {
	return q.page(ctx, q.engine.ResolveDefaultWeek(q.clock.Now()))
}

// GetWeek returns an error matching calendar.ErrOutOfRange for weeks or
// years outside the bookable range; the store is not read in that case.
func (q *calendarQueriesImpl) GetWeek(ctx context.Context, week, year int) (*CalendarPage, error) {
	view, err := q.engine.ResolveWeek(q.clock.Now(), week, year)
	if err != nil {
		return nil, err
	}
	return q.page(ctx, view)
}

func (q *calendarQueriesImpl) AdminOverview(ctx context.Context) (*CalendarPage, error) {
	return q.page(ctx, q.engine.ResolveDefaultWeek(q.clock.Now()))
}

func (q *calendarQueriesImpl) page(ctx context.Context, view calendar.WeekView) (*CalendarPage, error) {
	list, err := q.reservations.ListAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrReadFailed)
	}
	return &CalendarPage{
		CompanyName:  q.companyName,
		Week:         view,
		Reservations: list,
	}, nil
}
