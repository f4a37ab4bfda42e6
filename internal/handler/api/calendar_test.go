//go:build unit

package api_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"weekly-booking/internal/domain/calendar"
	"weekly-booking/internal/handler/api"
	resdto "weekly-booking/internal/handler/dto/response"
	"weekly-booking/internal/pkg/errs"
	"weekly-booking/internal/usecase/queries"
	"weekly-booking/tests/common/builder"
	"weekly-booking/tests/common/httptest"
	queriesmock "weekly-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CalendarHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockCalendarQueries
	handler     *api.CalendarHandler
	now         time.Time
}

func (s *CalendarHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockCalendarQueries(s.mockCtrl)
	s.handler = api.NewCalendarHandler(s.mockQueries)
	s.now = time.Date(2026, time.October, 16, 9, 0, 0, 0, time.UTC)

	s.router.GET("/", s.handler.Index)
	s.router.GET("/date/:week/:year", s.handler.Week)
}

func (s *CalendarHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCalendarHandlerSuite(t *testing.T) {
	suite.Run(t, new(CalendarHandlerTestSuite))
}

func (s *CalendarHandlerTestSuite) page(week, year int) *queries.CalendarPage {
	view, err := calendar.NewEngine(calendar.ParseLocale("en"), builder.DefaultYearsToFuture).
		ResolveWeek(s.now, week, year)
	s.Require().NoError(err)
	return &queries.CalendarPage{
		CompanyName: "Doctor",
		Week:        view,
		Reservations: []*queries.ReservationView{
			builder.NewReservationBuilder().WithSlot(week, year, 3).BuildView(),
		},
	}
}

func (s *CalendarHandlerTestSuite) TestIndex() {
	s.Run("success: 200 with current week and all reservations", func() {
		page := s.page(42, 2026)
		s.mockQueries.EXPECT().GetCurrentWeek(gomock.Any()).Return(page, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/", nil)

		var resp resdto.CalendarPageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal("Doctor", resp.CompanyName)
		s.Equal(42, resp.DateInfo.WeekNumber)
		s.Equal(page.Week.Dates, resp.DateInfo.Dates)
		s.Require().Len(resp.Reservations, 1)
		s.Equal(page.Reservations[0].ID, resp.Reservations[0].ID)
	})

	s.Run("error: 500 with generic message when the store fails", func() {
		s.mockQueries.EXPECT().GetCurrentWeek(gomock.Any()).
			Return(nil, errs.Mark(errs.New("connection reset"), queries.ErrReadFailed)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/", nil)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Error while retrieving data")
		s.NotContains(rec.Body.String(), "connection reset")
	})
}

func (s *CalendarHandlerTestSuite) TestWeek() {
	s.Run("success: 200 with the requested week", func() {
		page := s.page(44, 2026)
		s.mockQueries.EXPECT().GetWeek(gomock.Any(), 44, 2026).Return(page, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/date/44/2026", nil)

		var resp resdto.CalendarPageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal(44, resp.DateInfo.WeekNumber)
		s.Equal(2026, resp.DateInfo.Year)
		s.Equal(45, resp.DateInfo.NextWeek)
		s.Require().NotNil(resp.DateInfo.PrevWeek)
		s.Equal(43, *resp.DateInfo.PrevWeek)
		s.Nil(resp.DateInfo.CurrentDay)
	})

	s.Run("redirect: out-of-range values go back to the start page", func() {
		cases := []struct {
			name string
			week int
			year int
		}{
			{name: "week 0", week: 0, year: 2026},
			{name: "week 53", week: 53, year: 2026},
			{name: "past year", week: 10, year: 2025},
			{name: "beyond horizon", week: 10, year: 2028},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockQueries.EXPECT().GetWeek(gomock.Any(), tc.week, tc.year).
					Return(nil, errs.Wrap(calendar.ErrOutOfRange, "resolve week")).Times(1)

				path := fmt.Sprintf("/date/%d/%d", tc.week, tc.year)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, path, nil)

				httptest.AssertRedirect(s.T(), rec, "/")
			})
		}
	})

	s.Run("redirect: malformed values never reach the queries", func() {
		for _, path := range []string{"/date/abc/2026", "/date/10/twenty", "/date/1.5/2026"} {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, path, nil)
			httptest.AssertRedirect(s.T(), rec, "/")
		}
	})

	s.Run("error: 500 when reservations cannot be read", func() {
		s.mockQueries.EXPECT().GetWeek(gomock.Any(), 44, 2026).
			Return(nil, errs.Mark(errs.New("timeout"), queries.ErrReadFailed)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/date/44/2026", nil)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Error while retrieving data")
	})
}
