package api

import (
	"net/http"

	resdto "weekly-booking/internal/handler/dto/response"
	"weekly-booking/internal/handler/httperr"
	"weekly-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	q queries.CalendarQueries
}

func NewAdminHandler(q queries.CalendarQueries) *AdminHandler {
	return &AdminHandler{q: q}
}

// @Summary Admin overview
// @Description All reservations with the current week's dates. Requires a logged-in session.
// @Tags admin
// @Produce json
// @Success 200 {object} resdto.AdminPageResponse
// @Success 302 "Redirect to /login"
// @Failure 500 {object} httperr.Response
// @Router /admin [get]
func (h *AdminHandler) Overview(c *gin.Context) {
	page, err := h.q.AdminOverview(c.Request.Context())
	if err != nil {
		abortReadFailure(c, err)
		return
	}

	resp, err := resdto.FromAdminPage(page)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}
