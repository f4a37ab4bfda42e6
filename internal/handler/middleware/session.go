package middleware

import (
	"log/slog"
	"net/http"

	"weekly-booking/internal/domain/session"
	"weekly-booking/internal/pkg/clock"
	"weekly-booking/internal/pkg/config"
	"weekly-booking/internal/pkg/cookie"
	"weekly-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const ctxSessionKey = "session_state"

// LoginPath is where unauthenticated admin requests are sent.
const LoginPath = "/login"

type SessionMiddleware struct {
	queries queries.SessionQueries
	cfg     config.SessionConfig
	clock   clock.Clock
}

func NewSessionMiddleware(q queries.SessionQueries, cfg config.Config, clock clock.Clock) *SessionMiddleware {
	return &SessionMiddleware{
		queries: q,
		cfg:     cfg.Session,
		clock:   clock,
	}
}

// LoadSession resolves the session cookie into a State for every request.
// A cookie that no longer maps to a live session is cleared.
func (m *SessionMiddleware) LoadSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := cookie.GetSessionToken(c, m.cfg)
		st := m.queries.Resolve(c.Request.Context(), token)

		if token != "" && !st.IsPersisted() {
			cookie.ClearSessionCookie(c, m.cfg)
		}

		SetSession(c, st)
		c.Next()
	}
}

func (m *SessionMiddleware) RequireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		st := GetSession(c)
		if !st.IsLoggedIn(m.clock.Now()) {
			slog.Info("login required, redirecting", "path", c.Request.URL.Path)
			c.Redirect(http.StatusFound, LoginPath)
			c.Abort()
			return
		}
		c.Next()
	}
}

// SetSession replaces the request's session, e.g. after login rotates it, so
// later middleware sees the new state.
func SetSession(c *gin.Context, st *session.State) {
	c.Set(ctxSessionKey, st)
}

// GetSession returns the request's session, or an anonymous one when
// LoadSession did not run.
func GetSession(c *gin.Context) *session.State {
	if v, exists := c.Get(ctxSessionKey); exists {
		if st, ok := v.(*session.State); ok {
			return st
		}
	}
	return session.NewAnonymous()
}
