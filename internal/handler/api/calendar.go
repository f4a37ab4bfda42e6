package api

import (
	"log/slog"
	"net/http"
	"strconv"

	"weekly-booking/internal/domain/calendar"
	resdto "weekly-booking/internal/handler/dto/response"
	"weekly-booking/internal/handler/httperr"
	"weekly-booking/internal/handler/middleware"
	"weekly-booking/internal/pkg/errs"
	"weekly-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const (
	msgRetrieveFailed = "Error while retrieving data. Please try again later."
	homePath          = "/"
)

type CalendarHandler struct {
	q queries.CalendarQueries
}

func NewCalendarHandler(q queries.CalendarQueries) *CalendarHandler {
	return &CalendarHandler{q: q}
}

// @Summary Current week
// @Description Calendar for the current week with all reservations
// @Tags calendar
// @Produce json
// @Success 200 {object} resdto.CalendarPageResponse
// @Failure 500 {object} httperr.Response
// @Router / [get]
func (h *CalendarHandler) Index(c *gin.Context) {
	page, err := h.q.GetCurrentWeek(c.Request.Context())
	if err != nil {
		abortReadFailure(c, err)
		return
	}
	h.render(c, page)
}

// @Summary Week by number
// @Description Calendar for an ISO week; out-of-range or malformed values redirect to /
// @Tags calendar
// @Produce json
// @Param week path int true "Week number (1-52)"
// @Param year path int true "Year"
// @Success 200 {object} resdto.CalendarPageResponse
// @Success 302 "Redirect to /"
// @Failure 500 {object} httperr.Response
// @Router /date/{week}/{year} [get]
func (h *CalendarHandler) Week(c *gin.Context) {
	weekParam, yearParam := c.Param("week"), c.Param("year")

	week, weekErr := strconv.Atoi(weekParam)
	year, yearErr := strconv.Atoi(yearParam)
	if weekErr != nil || yearErr != nil {
		slog.Warn("malformed week parameters, redirecting", "week", weekParam, "year", yearParam)
		c.Redirect(http.StatusFound, homePath)
		return
	}

	page, err := h.q.GetWeek(c.Request.Context(), week, year)
	if err != nil {
		if errs.Is(err, calendar.ErrOutOfRange) {
			slog.Warn("week out of range, redirecting", "week", week, "year", year, "error", err)
			c.Redirect(http.StatusFound, homePath)
			return
		}
		abortReadFailure(c, err)
		return
	}
	h.render(c, page)
}

func (h *CalendarHandler) render(c *gin.Context, page *queries.CalendarPage) {
	resp, err := resdto.FromCalendarPage(page)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func abortReadFailure(c *gin.Context, err error) {
	slog.Error("failed to read reservations",
		"request_id", middleware.GetRequestID(c),
		"path", c.Request.URL.Path,
		"error", err,
		"stack", errs.ExtractStackLines(err, 5),
	)
	httperr.AbortWithError(c, http.StatusInternalServerError, err, msgRetrieveFailed, nil)
}
