//go:build unit || e2e

package builder

import (
	"time"

	"weekly-booking/internal/domain/reservation"
	reqdto "weekly-booking/internal/handler/dto/request"
	"weekly-booking/internal/infra/db"
	"weekly-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const DefaultYearsToFuture = 1

type ReservationBuilder struct {
	Now        time.Time
	Name       string
	Email      string
	Message    string
	ExtraInfo  string
	WeekNumber int
	Year       int
	CellID     int
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	now := time.Now().UTC()
	return &ReservationBuilder{
		Now:        now,
		Name:       "Maija Meikäläinen",
		Email:      "maija@example.com",
		Message:    "Annual check-up",
		WeekNumber: 20,
		Year:       now.Year(),
		CellID:     10,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func (r *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(r)
	return r
}

// Build methods
func (r *ReservationBuilder) BuildPayload() reservation.Payload {
	return reservation.Payload{
		Name:       optional(r.Name),
		Email:      optional(r.Email),
		Message:    optional(r.Message),
		ExtraInfo:  optional(r.ExtraInfo),
		WeekNumber: &r.WeekNumber,
		Year:       &r.Year,
		CellID:     &r.CellID,
	}
}

// BuildDomain returns an unsaved candidate validated against r.Now.
func (r *ReservationBuilder) BuildDomain() (*reservation.Reservation, error) {
	return reservation.Validate(r.BuildPayload(), r.Now, DefaultYearsToFuture)
}

func (r *ReservationBuilder) BuildPersisted(id uuid.UUID) (*reservation.Reservation, error) {
	return reservation.ReconstructReservation(
		id,
		r.Name,
		r.Email,
		r.Message,
		reservation.ReconstructSlot(r.WeekNumber, r.Year, r.CellID),
		r.CreatedAt,
		r.UpdatedAt,
	)
}

func (r *ReservationBuilder) BuildDTO() reqdto.CreateReservationRequest {
	p := r.BuildPayload()
	return reqdto.CreateReservationRequest{
		Name:       p.Name,
		Email:      p.Email,
		Message:    p.Message,
		ExtraInfo:  p.ExtraInfo,
		WeekNumber: p.WeekNumber,
		Year:       p.Year,
		CellID:     p.CellID,
	}
}

func (r *ReservationBuilder) BuildInfra() db.ReservationRow {
	return db.ReservationRow{
		ID:         uuid.New(),
		Name:       r.Name,
		Email:      pgText(r.Email),
		Message:    pgText(r.Message),
		WeekNumber: int32(r.WeekNumber),
		Year:       int32(r.Year),
		CellID:     int32(r.CellID),
		CreatedAt:  pgtype.Timestamptz{Time: r.CreatedAt, Valid: true},
		UpdatedAt:  pgtype.Timestamptz{Time: r.UpdatedAt, Valid: true},
	}
}

func (r *ReservationBuilder) BuildView() *queries.ReservationView {
	return &queries.ReservationView{
		ID:      uuid.New(),
		Name:    r.Name,
		Email:   optional(r.Email),
		Message: optional(r.Message),
		Time: queries.TimeView{
			WeekNumber: r.WeekNumber,
			Year:       r.Year,
			CellID:     r.CellID,
		},
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// Fluent builder methods
func (r *ReservationBuilder) WithNow(now time.Time) *ReservationBuilder {
	r.Now = now
	r.Year = now.Year()
	return r
}

func (r *ReservationBuilder) WithName(name string) *ReservationBuilder {
	r.Name = name
	return r
}

func (r *ReservationBuilder) WithEmail(email string) *ReservationBuilder {
	r.Email = email
	return r
}

func (r *ReservationBuilder) WithMessage(message string) *ReservationBuilder {
	r.Message = message
	return r
}

func (r *ReservationBuilder) WithExtraInfo(extraInfo string) *ReservationBuilder {
	r.ExtraInfo = extraInfo
	return r
}

func (r *ReservationBuilder) WithSlot(week, year, cellID int) *ReservationBuilder {
	r.WeekNumber = week
	r.Year = year
	r.CellID = cellID
	return r
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func pgText(s string) pgtype.Text {
	return pgtype.Text{String: s, Valid: s != ""}
}
