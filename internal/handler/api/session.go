package api

import (
	"log/slog"
	"net/http"

	reqdto "weekly-booking/internal/handler/dto/request"
	"weekly-booking/internal/handler/httperr"
	"weekly-booking/internal/handler/middleware"
	"weekly-booking/internal/pkg/config"
	"weekly-booking/internal/pkg/cookie"
	"weekly-booking/internal/pkg/errs"
	"weekly-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

const adminPath = "/admin"

type SessionHandler struct {
	cmds commands.SessionCommands
	cfg  config.SessionConfig
}

func NewSessionHandler(cmds commands.SessionCommands, cfg config.Config) *SessionHandler {
	return &SessionHandler{
		cmds: cmds,
		cfg:  cfg.Session,
	}
}

// @Summary Log in
// @Description Marks the current session as logged in and redirects to /admin
// @Tags session
// @Success 302 "Redirect to /admin"
// @Failure 500 {object} httperr.Response
// @Router /login [get]
func (h *SessionHandler) Login(c *gin.Context) {
	result, err := h.cmds.Login(c.Request.Context(), middleware.GetSession(c))
	if err != nil {
		slog.Error("login failed", "error", err)
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Login failed", nil)
		return
	}

	middleware.SetSession(c, result.State)
	cookie.SetSessionCookie(c, h.cfg, result.Token, h.cfg.TTL)
	c.Redirect(http.StatusFound, adminPath)
}

// @Summary Log in with credentials
// @Description Checks the admin account and redirects to /admin
// @Tags session
// @Accept json
// @Accept x-www-form-urlencoded
// @Param request body reqdto.LoginRequest true "Admin credentials"
// @Success 302 "Redirect to /admin"
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /login [post]
func (h *SessionHandler) LoginWithCredentials(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.cmds.LoginWithCredentials(c.Request.Context(), middleware.GetSession(c), req.Username, req.Password)
	if err != nil {
		if errs.Is(err, commands.ErrInvalidCredentials) {
			slog.Warn("admin login rejected", "client_ip", c.ClientIP())
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid username or password", nil)
			return
		}
		slog.Error("login failed", "error", err)
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Login failed", nil)
		return
	}

	middleware.SetSession(c, result.State)
	cookie.SetSessionCookie(c, h.cfg, result.Token, h.cfg.TTL)
	c.Redirect(http.StatusFound, adminPath)
}

// @Summary Log out
// @Description Ends the current session and redirects to /
// @Tags session
// @Success 302 "Redirect to /"
// @Router /logout [get]
func (h *SessionHandler) Logout(c *gin.Context) {
	if err := h.cmds.Logout(c.Request.Context(), middleware.GetSession(c)); err != nil {
		slog.Warn("failed to drop session on logout", "error", err)
	}

	cookie.ClearSessionCookie(c, h.cfg)
	c.Redirect(http.StatusFound, homePath)
}
