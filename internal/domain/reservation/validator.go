package reservation

import (
	"time"

	"weekly-booking/internal/pkg/clock"
	"weekly-booking/internal/pkg/errs"
)

// Payload is a booking submission as received. Nil pointers are absent
// fields; empty strings count as absent too.
type Payload struct {
	Name       *string
	Email      *string
	Message    *string
	ExtraInfo  *string
	WeekNumber *int
	Year       *int
	CellID     *int
}

// Validate runs the booking checks in a fixed order and stops at the first
// failure. Every failure is marked with ErrValidationFailed.
func Validate(p Payload, now time.Time, yearsToFuture int) (*Reservation, error) {
	r, err := validate(p, now, yearsToFuture)
	if err != nil {
		return nil, errs.Mark(err, ErrValidationFailed)
	}
	return r, nil
}

func validate(p Payload, now time.Time, yearsToFuture int) (*Reservation, error) {
	if isBlank(p.Name) || p.WeekNumber == nil || p.Year == nil || p.CellID == nil {
		return nil, ErrMissingField
	}

	name, err := NewName(*p.Name)
	if err != nil {
		return nil, err
	}

	slot, err := NewSlot(*p.WeekNumber, *p.Year, *p.CellID, now, yearsToFuture)
	if err != nil {
		return nil, err
	}

	email, err := NewEmail(valueOf(p.Email))
	if err != nil {
		return nil, err
	}

	message, err := NewMessage(valueOf(p.Message))
	if err != nil {
		return nil, err
	}
	// extraInfo is an older alias of message; it is length-checked and only
	// stored when message itself is empty.
	extra, err := NewMessage(valueOf(p.ExtraInfo))
	if err != nil {
		return nil, err
	}
	if message.IsEmpty() {
		message = extra
	}

	return newCandidate(name, email, message, slot), nil
}

type Factory struct {
	Clock         clock.Clock
	YearsToFuture int
}

func NewFactory(clock clock.Clock, yearsToFuture int) *Factory {
	return &Factory{
		Clock:         clock,
		YearsToFuture: yearsToFuture,
	}
}

func (f *Factory) FromPayload(p Payload) (*Reservation, error) {
	return Validate(p, f.Clock.Now(), f.YearsToFuture)
}

func isBlank(s *string) bool {
	return s == nil || *s == ""
}

func valueOf(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
