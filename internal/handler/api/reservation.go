package api

import (
	"fmt"
	"log/slog"
	"net/http"

	"weekly-booking/internal/domain/reservation"
	reqdto "weekly-booking/internal/handler/dto/request"
	"weekly-booking/internal/handler/httperr"
	"weekly-booking/internal/handler/middleware"
	"weekly-booking/internal/pkg/errs"
	"weekly-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

const msgSaveFailed = "Error while saving your reservation. Please try again later."

type ReservationHandler struct {
	cmds commands.ReservationCommands
}

func NewReservationHandler(cmds commands.ReservationCommands) *ReservationHandler {
	return &ReservationHandler{cmds: cmds}
}

// @Summary Create reservation
// @Description Book one cell of one week. Accepts JSON or a urlencoded form and redirects to the booked week.
// @Tags reservations
// @Accept json
// @Accept x-www-form-urlencoded
// @Produce json
// @Param request body reqdto.CreateReservationRequest true "Reservation request"
// @Success 302 "Redirect to /date/{week}/{year}"
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /newReservation [post]
func (h *ReservationHandler) CreateReservation(c *gin.Context) {
	var req reqdto.CreateReservationRequest
	if err := c.ShouldBind(&req); err != nil {
		slog.Warn("reservation request could not be decoded", "error", err)
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgSaveFailed, nil)
		return
	}

	result, err := h.cmds.CreateReservation(c.Request.Context(), req)
	if err != nil {
		switch {
		case errs.Is(err, reservation.ErrValidationFailed):
			slog.Warn("reservation rejected", "request_id", middleware.GetRequestID(c), "error", err)
			httperr.AbortWithError(c, http.StatusBadRequest, err, msgSaveFailed, nil)
		default:
			slog.Error("failed to store reservation",
				"request_id", middleware.GetRequestID(c),
				"error", err,
				"stack", errs.ExtractStackLines(err, 5),
			)
			httperr.AbortWithError(c, http.StatusInternalServerError, err, msgSaveFailed, nil)
		}
		return
	}

	c.Redirect(http.StatusFound, fmt.Sprintf("/date/%d/%d", result.WeekNumber, result.Year))
}
