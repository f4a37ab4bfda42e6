package queries

import (
	"context"
	"log/slog"

	"weekly-booking/internal/domain/session"
	"weekly-booking/internal/infra"
	"weekly-booking/internal/pkg/jwt"

	"github.com/google/uuid"
)

type SessionReader interface {
	Find(ctx context.Context, id uuid.UUID) (*session.State, error)
}

type SessionQueries interface {
	Resolve(ctx context.Context, token string) *session.State
}

type sessionQueriesImpl struct {
	reader SessionReader
	tokens *jwt.Service
}

func NewSessionQueries(reader SessionReader, tokens *jwt.Service) SessionQueries {
	return &sessionQueriesImpl{
		reader: reader,
		tokens: tokens,
	}
}

// Resolve never fails: any token that does not lead to a live stored session
// yields an anonymous state.
func (q *sessionQueriesImpl) Resolve(ctx context.Context, token string) *session.State {
	if token == "" {
		return session.NewAnonymous()
	}

	claims, err := q.tokens.ValidateSessionToken(token)
	if err != nil {
		slog.Debug("session token rejected", "error", err)
		return session.NewAnonymous()
	}

	st, err := q.reader.Find(ctx, claims.SessionID)
	if err != nil {
		if !infra.IsKind(err, infra.KindNotFound) {
			slog.Warn("failed to load session", "session_id", claims.SessionID, "error", err)
		}
		return session.NewAnonymous()
	}

	return st
}
