//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"weekly-booking/internal/domain/session"
	"weekly-booking/internal/infra"
	"weekly-booking/internal/pkg/jwt"
	"weekly-booking/internal/usecase/queries"
	queriesmock "weekly-booking/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSessionQueries_Resolve(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	tokens := jwt.NewService("test-session-secret")

	issue := func(t *testing.T, id uuid.UUID, expiresAt time.Time) string {
		t.Helper()
		token, err := tokens.GenerateSessionToken(id, now, expiresAt)
		require.NoError(t, err)
		return token
	}

	t.Run("empty token is anonymous", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reader := queriesmock.NewMockSessionReader(ctrl)

		st := queries.NewSessionQueries(reader, tokens).Resolve(ctx, "")

		assert.False(t, st.IsPersisted())
	})

	t.Run("stored session is returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reader := queriesmock.NewMockSessionReader(ctrl)
		stored := session.Reconstruct(uuid.New(), true, now.Add(time.Hour))
		reader.EXPECT().Find(gomock.Any(), stored.ID()).Return(stored, nil).Times(1)

		st := queries.NewSessionQueries(reader, tokens).Resolve(ctx, issue(t, stored.ID(), stored.ExpiresAt()))

		assert.Same(t, stored, st)
	})

	t.Run("unknown session is anonymous", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reader := queriesmock.NewMockSessionReader(ctrl)
		id := uuid.New()
		reader.EXPECT().Find(gomock.Any(), id).
			Return(nil, infra.WrapRepoErr("session not found", nil, infra.KindNotFound)).Times(1)

		st := queries.NewSessionQueries(reader, tokens).Resolve(ctx, issue(t, id, now.Add(time.Hour)))

		assert.False(t, st.IsPersisted())
	})

	t.Run("tampered or foreign tokens are anonymous", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reader := queriesmock.NewMockSessionReader(ctrl)
		foreign, err := jwt.NewService("another-secret").GenerateSessionToken(uuid.New(), now, now.Add(time.Hour))
		require.NoError(t, err)

		q := queries.NewSessionQueries(reader, tokens)

		assert.False(t, q.Resolve(ctx, "not-a-jwt").IsPersisted())
		assert.False(t, q.Resolve(ctx, foreign).IsPersisted())
	})

	t.Run("expired token is anonymous", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reader := queriesmock.NewMockSessionReader(ctrl)

		st := queries.NewSessionQueries(reader, tokens).Resolve(ctx, issue(t, uuid.New(), now.Add(-time.Minute)))

		assert.False(t, st.IsPersisted())
	})
}
