//go:build e2e

package reservation_test

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"testing"
	"time"

	"weekly-booking/internal/handler/dto/response"
	"weekly-booking/tests/common/builder"
	"weekly-booking/tests/common/dbtest"
	"weekly-booking/tests/common/httptest"
	"weekly-booking/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

const newReservationURL = "/newReservation"

type ReservationSuite struct {
	e2e.SharedSuite
	year int
}

func (s *ReservationSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.year = time.Now().UTC().Year()
}

func TestReservationSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(ReservationSuite))
}

func (s *ReservationSuite) listWeek(week int) *response.CalendarPageResponse {
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, fmt.Sprintf("/date/%d/%d", week, s.year), nil)
	var page response.CalendarPageResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &page)
	return &page
}

// =============================================================================
// POST /newReservation
// =============================================================================

func (s *ReservationSuite) TestCreateReservation() {
	s.Run("success: minimal booking is stored and listed", func() {
		body := map[string]any{"name": "Alice", "weekNumber": 10, "year": s.year, "cellId": 5}

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, newReservationURL, body)

		httptest.AssertRedirect(s.T(), rec, fmt.Sprintf("/date/10/%d", s.year))

		page := s.listWeek(10)
		s.Require().Len(page.Reservations, 1)
		got := page.Reservations[0]
		s.NotEqual(uuid.Nil, got.ID)
		s.Nil(got.Email)
		s.Nil(got.Message)

		want := response.ReservationResponse{
			Name: "Alice",
			Time: response.TimeResponse{WeekNumber: 10, Year: s.year, CellID: 5},
		}
		if diff := cmp.Diff(want, *got, cmpopts.IgnoreFields(response.ReservationResponse{}, "ID", "CreatedAt", "UpdatedAt")); diff != "" {
			s.Failf("reservation mismatch", "(-want +got):\n%s", diff)
		}
	})

	s.Run("success: form submission with extraInfo stores it as the message", func() {
		form := url.Values{}
		form.Set("name", "Bob")
		form.Set("email", "bob@example.com")
		form.Set("extraInfo", "Back pain")
		form.Set("weekNumber", "12")
		form.Set("year", fmt.Sprint(s.year))
		form.Set("cellId", "62")

		rec := httptest.PerformFormRequest(s.T(), s.Router, newReservationURL, form)

		httptest.AssertRedirect(s.T(), rec, fmt.Sprintf("/date/12/%d", s.year))
		page := s.listWeek(12)
		s.Require().Len(page.Reservations, 1)
		s.Require().NotNil(page.Reservations[0].Message)
		s.Equal("Back pain", *page.Reservations[0].Message)
		s.Equal("bob@example.com", *page.Reservations[0].Email)
	})

	s.Run("success: the same cell can be booked twice", func() {
		body := builder.NewReservationBuilder().WithSlot(15, s.year, 7).BuildDTO()

		first := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, newReservationURL, body)
		second := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, newReservationURL, body)

		httptest.AssertRedirect(s.T(), first, fmt.Sprintf("/date/15/%d", s.year))
		httptest.AssertRedirect(s.T(), second, fmt.Sprintf("/date/15/%d", s.year))
		s.Equal(2, dbtest.CountReservationsAt(s.T(), s.DB, 15, s.year, 7))

		page := s.listWeek(15)
		s.Require().Len(page.Reservations, 2)
		s.NotEqual(page.Reservations[0].ID, page.Reservations[1].ID)
	})

	s.Run("error: invalid bookings are rejected and nothing is stored", func() {
		cases := []struct {
			name string
			b    *builder.ReservationBuilder
		}{
			{name: "week 0", b: builder.NewReservationBuilder().WithSlot(0, s.year, 1)},
			{name: "cell 63", b: builder.NewReservationBuilder().WithSlot(10, s.year, 63)},
			{name: "name of 60 characters", b: builder.NewReservationBuilder().WithName(strings.Repeat("n", 60))},
			{name: "email of 51 characters", b: builder.NewReservationBuilder().WithEmail(strings.Repeat("e", 51))},
			{name: "year beyond horizon", b: builder.NewReservationBuilder().WithSlot(10, s.year+2, 1)},
		}
		for _, tc := range cases {
			rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, newReservationURL, tc.b.BuildDTO())
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Error while saving your reservation")
		}
		s.Equal(0, dbtest.CountReservations(s.T(), s.DB))
	})

	s.Run("success: boundary values are accepted", func() {
		b := builder.NewReservationBuilder().WithName(strings.Repeat("n", 59)).WithSlot(52, s.year, 62)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, newReservationURL, b.BuildDTO())

		httptest.AssertRedirect(s.T(), rec, fmt.Sprintf("/date/52/%d", s.year))
		s.Equal(1, dbtest.CountReservations(s.T(), s.DB))
	})
}
