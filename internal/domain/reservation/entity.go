package reservation

import (
	"time"

	"github.com/google/uuid"
)

type Reservation struct {
	id        uuid.UUID
	name      Name
	email     Email
	message   Message
	slot      Slot
	createdAt time.Time
	updatedAt time.Time
}

// newCandidate builds a reservation that has not been stored yet: the store
// assigns its id and timestamps.
func newCandidate(name Name, email Email, message Message, slot Slot) *Reservation {
	return &Reservation{
		name:    name,
		email:   email,
		message: message,
		slot:    slot,
	}
}

func ReconstructReservation(
	id uuid.UUID,
	name, email, message string,
	slot Slot,
	createdAt, updatedAt time.Time,
) (*Reservation, error) {
	if id == uuid.Nil {
		return nil, ErrInvalidIdentity
	}
	return &Reservation{
		id:        id,
		name:      Name{value: name},
		email:     Email{value: email},
		message:   Message{value: message},
		slot:      slot,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (r *Reservation) IsPersisted() bool {
	return r.id != uuid.Nil
}

func (r *Reservation) ID() uuid.UUID        { return r.id }
func (r *Reservation) Name() Name           { return r.name }
func (r *Reservation) Email() Email         { return r.email }
func (r *Reservation) Message() Message     { return r.message }
func (r *Reservation) Slot() Slot           { return r.slot }
func (r *Reservation) CreatedAt() time.Time { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time { return r.updatedAt }
