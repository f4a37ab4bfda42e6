//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"

	"weekly-booking/internal/infra"
	"weekly-booking/internal/infra/db"
	"weekly-booking/internal/infra/repository"
	"weekly-booking/tests/common/builder"
	repositorymock "weekly-booking/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockReservationWriteQueries, db.ReservationRow, db.DBTX)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: reservation created with store-assigned id",
			setupMock: func(mock *repositorymock.MockReservationWriteQueries, row db.ReservationRow, tx db.DBTX) {
				mock.EXPECT().CreateReservation(ctx, tx, gomock.Any()).Return(row, nil)
			},
			expectedError: false,
		},
		{
			name: "error: database error occurs",
			setupMock: func(mock *repositorymock.MockReservationWriteQueries, _ db.ReservationRow, tx db.DBTX) {
				mock.EXPECT().CreateReservation(ctx, tx, gomock.Any()).Return(db.ReservationRow{}, errors.New("database connection error"))
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
		{
			name: "error: check constraint violated",
			setupMock: func(mock *repositorymock.MockReservationWriteQueries, _ db.ReservationRow, tx db.DBTX) {
				violation := &pgconn.PgError{Code: "23514", Message: "new row violates check constraint"}
				mock.EXPECT().CreateReservation(ctx, tx, gomock.Any()).Return(db.ReservationRow{}, violation)
			},
			expectedError: true,
			expectKind:    infra.KindConstraintViolated,
		},
		{
			name: "error: row without id cannot be reconstructed",
			setupMock: func(mock *repositorymock.MockReservationWriteQueries, row db.ReservationRow, tx db.DBTX) {
				row.ID = uuid.Nil
				mock.EXPECT().CreateReservation(ctx, tx, gomock.Any()).Return(row, nil)
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockReservationWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewReservationRepository(mockQueries, mockDB)

			b := builder.NewReservationBuilder()
			candidate, err := b.BuildDomain()
			require.NoError(t, err)
			row := b.BuildInfra()

			tc.setupMock(mockQueries, row, mockDB)

			stored, actualError := repo.Create(ctx, candidate)

			if tc.expectedError {
				require.Error(t, actualError)
				if tc.expectKind != "" {
					assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, actualError, actualError)
				}
				assert.Nil(t, stored)
			} else {
				require.NoError(t, actualError)
				assert.True(t, stored.IsPersisted())
				assert.Equal(t, row.ID, stored.ID())
				assert.Equal(t, b.Name, stored.Name().String())
				assert.Equal(t, b.WeekNumber, stored.Slot().WeekNumber())
				assert.Equal(t, row.CreatedAt.Time, stored.CreatedAt())
			}
		})
	}
}

func TestRepository_Create_Params(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueries := repositorymock.NewMockReservationWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewReservationRepository(mockQueries, mockDB)

	b := builder.NewReservationBuilder().WithEmail("")
	b.WithSlot(7, b.Year, 62)
	candidate, err := b.BuildDomain()
	require.NoError(t, err)

	expected := db.CreateReservationParams{
		Name:       b.Name,
		Email:      pgtype.Text{Valid: false},
		Message:    pgtype.Text{String: b.Message, Valid: true},
		WeekNumber: 7,
		Year:       int32(b.Year),
		CellID:     62,
	}
	mockQueries.EXPECT().CreateReservation(ctx, mockDB, expected).Return(b.BuildInfra(), nil)

	_, err = repo.Create(ctx, candidate)
	require.NoError(t, err)
}

// mockDBTX is a mock implementation of db.DBTX interface
type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	panic("mockDBTX.QueryRow was called unexpectedly. Use the queries mock instead.")
}
