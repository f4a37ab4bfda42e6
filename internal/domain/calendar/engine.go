// Package calendar turns (week, year) pairs into displayable week views.
// Every function takes the reference time explicitly and never reads the
// process clock.
package calendar

import (
	"time"

	"weekly-booking/internal/pkg/errs"
)

const (
	MinWeek     = 1
	MaxWeek     = 52
	DaysPerWeek = 7
)

var ErrOutOfRange = errs.New("week or year out of range")

type WeekView struct {
	WeekNumber int
	Year       int
	// CurrentDay is today's index within Days, nil unless the view shows today.
	CurrentDay *int
	Days       [DaysPerWeek]time.Time
	Dates      [DaysPerWeek]string
	NextWeek   int
	NextYear   int
	PrevWeek   *int
	PrevYear   *int
}

type Engine struct {
	locale        Locale
	yearsToFuture int
}

func NewEngine(locale Locale, yearsToFuture int) *Engine {
	if yearsToFuture < 0 {
		yearsToFuture = 0
	}
	return &Engine{
		locale:        locale,
		yearsToFuture: yearsToFuture,
	}
}

func (e *Engine) Locale() Locale     { return e.locale }
func (e *Engine) YearsToFuture() int { return e.yearsToFuture }

func IsValidWeek(week int) bool {
	return week >= MinWeek && week <= MaxWeek
}

// YearRange is the inclusive range of bookable years as seen at now.
func YearRange(now time.Time, yearsToFuture int) (from, to int) {
	return now.Year(), now.Year() + yearsToFuture
}

func IsValidYear(now time.Time, year, yearsToFuture int) bool {
	from, to := YearRange(now, yearsToFuture)
	return year >= from && year <= to
}

func (e *Engine) ResolveWeek(now time.Time, week, year int) (WeekView, error) {
	if !IsValidWeek(week) || !IsValidYear(now, year, e.yearsToFuture) {
		return WeekView{}, errs.Wrapf(ErrOutOfRange, "week %d year %d", week, year)
	}

	monday := isoWeekMonday(year, week, now.Location())
	view := e.buildView(monday, week, year)

	if todayYear, todayWeek := e.locale.WeekOf(now); todayYear == year && todayWeek == week {
		idx := e.locale.DayIndex(now.Weekday())
		view.CurrentDay = &idx
	}

	if e.allowsPrevious(now, monday) {
		prevWeek, prevYear := previous(week, year)
		view.PrevWeek = &prevWeek
		view.PrevYear = &prevYear
	}

	return view, nil
}

func (e *Engine) ResolveDefaultWeek(now time.Time) WeekView {
	year, week := e.locale.WeekOf(now)
	monday := isoWeekMonday(year, week, now.Location())
	view := e.buildView(monday, week, year)

	idx := e.locale.DayIndex(now.Weekday())
	view.CurrentDay = &idx

	return view
}

func (e *Engine) buildView(monday time.Time, week, year int) WeekView {
	view := WeekView{
		WeekNumber: week,
		Year:       year,
	}

	start := monday.AddDate(0, 0, -e.locale.mondayOffset())
	for i := 0; i < DaysPerWeek; i++ {
		day := start.AddDate(0, 0, i)
		view.Days[i] = day
		view.Dates[i] = e.locale.Format(day)
	}

	view.NextWeek, view.NextYear = next(week, year)
	return view
}

// allowsPrevious compares mid-week anchors: the week before the viewed one
// must not lie before the current week. Wednesdays keep the comparison clear
// of week and year boundaries.
func (e *Engine) allowsPrevious(now, viewedMonday time.Time) bool {
	todayYear, todayWeek := e.locale.WeekOf(now)
	currentAnchor := isoWeekMonday(todayYear, todayWeek, now.Location()).AddDate(0, 0, 2)
	previousAnchor := viewedMonday.AddDate(0, 0, 2-DaysPerWeek)
	return !previousAnchor.Before(currentAnchor)
}

func next(week, year int) (int, int) {
	if week >= MaxWeek {
		return MinWeek, year + 1
	}
	return week + 1, year
}

func previous(week, year int) (int, int) {
	if week <= MinWeek {
		return MaxWeek, year - 1
	}
	return week - 1, year
}

// isoWeekMonday returns the Monday of ISO week `week` of `year`. January 4th
// always falls in ISO week 1.
func isoWeekMonday(year, week int, loc *time.Location) time.Time {
	jan4 := time.Date(year, time.January, 4, 0, 0, 0, 0, loc)
	sinceMonday := (int(jan4.Weekday()) + 6) % DaysPerWeek
	return jan4.AddDate(0, 0, -sinceMonday+(week-1)*DaysPerWeek)
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
