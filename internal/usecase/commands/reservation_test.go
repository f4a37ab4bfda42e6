//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"weekly-booking/internal/domain/reservation"
	"weekly-booking/internal/infra"
	"weekly-booking/internal/pkg/clock"
	"weekly-booking/internal/pkg/errs"
	"weekly-booking/internal/usecase/commands"
	"weekly-booking/tests/common/builder"
	commandsmock "weekly-booking/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationCommandsTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	mockRepo     *commandsmock.MockReservationRepository
	mockNotifier *commandsmock.MockReservationNotifier
	useCase      commands.ReservationCommands
	now          time.Time
}

func (s *ReservationCommandsTestSuite) SetupTest() {
	s.now = time.Date(2026, time.October, 16, 9, 0, 0, 0, time.UTC)
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRepo = commandsmock.NewMockReservationRepository(s.mockCtrl)
	s.mockNotifier = commandsmock.NewMockReservationNotifier(s.mockCtrl)

	factory := reservation.NewFactory(clock.NewMockClock(s.now), builder.DefaultYearsToFuture)
	s.useCase = commands.NewReservationUseCase(s.mockRepo, s.mockNotifier, factory)
}

func (s *ReservationCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationCommandsSuite(t *testing.T) {
	suite.Run(t, new(ReservationCommandsTestSuite))
}

func (s *ReservationCommandsTestSuite) persisted(b *builder.ReservationBuilder) *reservation.Reservation {
	stored, err := b.BuildPersisted(uuid.New())
	s.Require().NoError(err)
	return stored
}

func (s *ReservationCommandsTestSuite) TestCreateReservation() {
	ctx := context.Background()

	s.Run("success: stores the candidate and reports its week", func() {
		b := builder.NewReservationBuilder().WithNow(s.now).WithSlot(44, 2027, 5)
		stored := s.persisted(b)

		s.mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, res *reservation.Reservation) (*reservation.Reservation, error) {
				s.False(res.IsPersisted())
				s.Equal(b.Name, res.Name().String())
				s.Equal(5, res.Slot().CellID())
				return stored, nil
			}).Times(1)
		s.mockNotifier.EXPECT().ReservationCreated(gomock.Any(), stored).Return(nil).Times(1)

		result, err := s.useCase.CreateReservation(ctx, b.BuildDTO())

		s.Require().NoError(err)
		s.Equal(stored, result.Reservation)
		s.Equal(44, result.WeekNumber)
		s.Equal(2027, result.Year)
	})

	s.Run("success: notifier failure does not fail the booking", func() {
		b := builder.NewReservationBuilder().WithNow(s.now)
		stored := s.persisted(b)

		s.mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(stored, nil).Times(1)
		s.mockNotifier.EXPECT().ReservationCreated(gomock.Any(), stored).
			Return(errs.New("amqp: channel closed")).Times(1)

		result, err := s.useCase.CreateReservation(ctx, b.BuildDTO())

		s.Require().NoError(err)
		s.Equal(stored.ID(), result.Reservation.ID())
	})

	s.Run("error: invalid payload never reaches the store", func() {
		cases := []struct {
			name string
			b    *builder.ReservationBuilder
		}{
			{name: "missing name", b: builder.NewReservationBuilder().WithNow(s.now).WithName("")},
			{name: "week 53", b: builder.NewReservationBuilder().WithNow(s.now).WithSlot(53, 2026, 0)},
			{name: "year beyond horizon", b: builder.NewReservationBuilder().WithNow(s.now).WithSlot(10, 2028, 0)},
			{name: "cell 63", b: builder.NewReservationBuilder().WithNow(s.now).WithSlot(10, 2026, 63)},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				result, err := s.useCase.CreateReservation(ctx, tc.b.BuildDTO())

				s.Nil(result)
				s.True(errs.Is(err, reservation.ErrValidationFailed))
				s.False(errs.Is(err, commands.ErrDatabaseOperationFailed))
			})
		}
	})

	s.Run("error: store failure is marked as a database failure", func() {
		b := builder.NewReservationBuilder().WithNow(s.now)
		repoErr := infra.WrapRepoErr("failed to create reservation", errs.New("connection refused"))
		s.mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, repoErr).Times(1)

		result, err := s.useCase.CreateReservation(ctx, b.BuildDTO())

		s.Nil(result)
		s.True(errs.Is(err, commands.ErrDatabaseOperationFailed))
		s.True(infra.IsKind(err, infra.KindDBFailure))
	})
}
