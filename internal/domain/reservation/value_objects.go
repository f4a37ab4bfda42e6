package reservation

import (
	"time"
	"unicode/utf8"

	"weekly-booking/internal/domain/calendar"
)

type Name struct {
	value string
}

func NewName(value string) (Name, error) {
	if value == "" {
		return Name{}, ErrMissingField
	}
	if utf8.RuneCountInString(value) >= MaxNameLength {
		return Name{}, ErrNameTooLong
	}
	return Name{value: value}, nil
}

func (n Name) String() string { return n.value }

type Email struct {
	value string
}

func NewEmail(value string) (Email, error) {
	if utf8.RuneCountInString(value) > MaxEmailLength {
		return Email{}, ErrEmailTooLong
	}
	return Email{value: value}, nil
}

func (e Email) String() string { return e.value }
func (e Email) IsEmpty() bool  { return e.value == "" }

type Message struct {
	value string
}

func NewMessage(value string) (Message, error) {
	if utf8.RuneCountInString(value) > MaxMessageLength {
		return Message{}, ErrMessageTooLong
	}
	return Message{value: value}, nil
}

func (m Message) String() string { return m.value }
func (m Message) IsEmpty() bool  { return m.value == "" }

// Slot identifies one bookable cell of one week.
type Slot struct {
	weekNumber int
	year       int
	cellID     int
}

// NewSlot checks week, then year, then cell against the calendar bounds in
// effect at now.
func NewSlot(weekNumber, year, cellID int, now time.Time, yearsToFuture int) (Slot, error) {
	if !calendar.IsValidWeek(weekNumber) {
		return Slot{}, ErrWeekOutOfRange
	}
	if !calendar.IsValidYear(now, year, yearsToFuture) {
		return Slot{}, ErrYearOutOfRange
	}
	if cellID < MinCellID || cellID > MaxCellID {
		return Slot{}, ErrCellOutOfRange
	}
	return Slot{weekNumber: weekNumber, year: year, cellID: cellID}, nil
}

// ReconstructSlot skips range checks; stored rows may predate the current
// booking horizon.
func ReconstructSlot(weekNumber, year, cellID int) Slot {
	return Slot{weekNumber: weekNumber, year: year, cellID: cellID}
}

func (s Slot) WeekNumber() int { return s.weekNumber }
func (s Slot) Year() int       { return s.year }
func (s Slot) CellID() int     { return s.cellID }
