//go:build unit

package assignment_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"boat-reservation/internal/domain/fleet"
	"boat-reservation/internal/domain/user"
	"boat-reservation/internal/pkg/clock"
	"boat-reservation/internal/usecase/assignment"
	"boat-reservation/internal/usecase/shared"
	"boat-reservation/tests/common/builder"
	assignmentmock "boat-reservation/tests/mock/assignment"
	sharedmock "boat-reservation/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	uow          *sharedmock.MockUnitOfWork
	tx           *sharedmock.MockTx
	boats        *sharedmock.MockBoatRepository
	batteries    *sharedmock.MockBatteryRepository
	reservations *sharedmock.MockReservationRepository
	users        *sharedmock.MockUserRepository
	locker       *sharedmock.MockLocker
	notifier     *sharedmock.MockNotifier
	recorder     *assignmentmock.MockRecorder
	released     bool
	svc          *assignment.Service
}

func (s *ServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.uow = sharedmock.NewMockUnitOfWork(s.ctrl)
	s.tx = sharedmock.NewMockTx(s.ctrl)
	s.boats = sharedmock.NewMockBoatRepository(s.ctrl)
	s.batteries = sharedmock.NewMockBatteryRepository(s.ctrl)
	s.reservations = sharedmock.NewMockReservationRepository(s.ctrl)
	s.users = sharedmock.NewMockUserRepository(s.ctrl)
	s.locker = sharedmock.NewMockLocker(s.ctrl)
	s.notifier = sharedmock.NewMockNotifier(s.ctrl)
	s.recorder = assignmentmock.NewMockRecorder(s.ctrl)
	s.released = false

	s.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, s.tx)
		}).AnyTimes()
	s.tx.EXPECT().Boats().Return(s.boats).AnyTimes()
	s.tx.EXPECT().Batteries().Return(s.batteries).AnyTimes()
	s.tx.EXPECT().Reservations().Return(s.reservations).AnyTimes()
	s.tx.EXPECT().Users().Return(s.users).AnyTimes()

	s.svc = assignment.NewService(s.uow, s.locker, s.notifier, s.recorder, clock.NewMockClock(builder.Now), assignment.Options{
		LockTTL:             time.Minute,
		HistoryLookbackDays: 30,
	})
}

func (s *ServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}

func (s *ServiceTestSuite) expectLock() {
	s.locker.EXPECT().Acquire(gomock.Any(), assignment.LockKey, time.Minute).
		Return(func(context.Context) error {
			s.released = true
			return nil
		}, nil)
}

func (s *ServiceTestSuite) TestRunAssignsAndNotifies() {
	boat := builder.NewBoatBuilder().With(func(b *builder.BoatBuilder) { b.Batteries = 1 }).BuildDomain()
	first := builder.NewReservationBuilder().ForBoat(boat.ID()).OnDay(1, 9*time.Hour, 12*time.Hour).BuildReconstructed()
	second := builder.NewReservationBuilder().ForBoat(boat.ID()).OnDay(1, 14*time.Hour, 17*time.Hour).BuildReconstructed()
	s.Require().NoError(boat.AddReservation(second))
	s.Require().NoError(boat.AddReservation(first))
	battery := boat.Batteries()[0]

	mentor := user.ReconstructUser(battery.MentorID(), "mentor@example.com", "Mika", user.RoleMentor)
	firstUser := user.ReconstructUser(first.UserID(), "a@example.com", "Aki", user.RoleGuest)

	s.expectLock()
	s.boats.EXPECT().FindWithPendingAssignments(gomock.Any(), builder.Today, builder.Today.AddDate(0, 0, 3), builder.Today.AddDate(0, 0, -30)).
		Return([]*fleet.Boat{boat}, nil)
	s.reservations.EXPECT().Update(gomock.Any(), first).Return(nil)
	s.reservations.EXPECT().Update(gomock.Any(), second).Return(nil)
	s.batteries.EXPECT().UpdateUsage(gomock.Any(), battery).Return(nil)
	s.users.EXPECT().FindByIDs(gomock.Any(), gomock.Any()).
		Return(map[uuid.UUID]*user.User{mentor.ID(): mentor, firstUser.ID(): firstUser}, nil)
	s.notifier.EXPECT().NotifyBatteryAssignments(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, notices []shared.BatteryAssignmentNotice) error {
			s.Require().Len(notices, 2)
			s.Equal(first.ID(), notices[0].ReservationID)
			s.Equal("Mika", notices[0].MentorName)
			s.Nil(notices[0].PreviousHolderID)
			s.Equal(second.ID(), notices[1].ReservationID)
			s.Require().NotNil(notices[1].PreviousHolderID)
			s.Equal(first.UserID(), *notices[1].PreviousHolderID)
			s.Equal("Aki", notices[1].PreviousHolderName)
			s.Equal("14:00", notices[1].Start)
			return nil
		})
	s.recorder.EXPECT().ObserveRun(gomock.Any(), 2, nil)

	res, err := s.svc.Run(context.Background())
	s.Require().NoError(err)
	s.Equal(1, res.Boats)
	s.Equal(2, res.Assigned)
	s.Equal(2, res.Notified)
	s.Equal(2, battery.UsageCount())
	s.True(s.released)
}

func (s *ServiceTestSuite) TestRunWithoutPendingWork() {
	s.expectLock()
	s.boats.EXPECT().FindWithPendingAssignments(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
	s.recorder.EXPECT().ObserveRun(gomock.Any(), 0, nil)

	res, err := s.svc.Run(context.Background())
	s.Require().NoError(err)
	s.Zero(res.Assigned)
}

func (s *ServiceTestSuite) TestNotificationFailureKeepsAssignments() {
	boat := builder.NewBoatBuilder().BuildDomain()
	res := builder.NewReservationBuilder().ForBoat(boat.ID()).OnDay(2, 9*time.Hour, 12*time.Hour).BuildReconstructed()
	s.Require().NoError(boat.AddReservation(res))

	s.expectLock()
	s.boats.EXPECT().FindWithPendingAssignments(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return([]*fleet.Boat{boat}, nil)
	s.reservations.EXPECT().Update(gomock.Any(), res).Return(nil)
	s.batteries.EXPECT().UpdateUsage(gomock.Any(), gomock.Any()).Return(nil)
	s.users.EXPECT().FindByIDs(gomock.Any(), gomock.Any()).Return(map[uuid.UUID]*user.User{}, nil)
	s.notifier.EXPECT().NotifyBatteryAssignments(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))
	s.recorder.EXPECT().ObserveRun(gomock.Any(), 1, nil)

	result, err := s.svc.Run(context.Background())
	s.Require().NoError(err)
	s.Equal(1, result.Assigned)
	s.Zero(result.Notified)
	s.NotNil(res.BatteryID())
}

func (s *ServiceTestSuite) TestPersistenceFailureAbortsRun() {
	boat := builder.NewBoatBuilder().BuildDomain()
	res := builder.NewReservationBuilder().ForBoat(boat.ID()).OnDay(2, 9*time.Hour, 12*time.Hour).BuildReconstructed()
	s.Require().NoError(boat.AddReservation(res))
	dbErr := errors.New("connection reset")

	s.expectLock()
	s.boats.EXPECT().FindWithPendingAssignments(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return([]*fleet.Boat{boat}, nil)
	s.reservations.EXPECT().Update(gomock.Any(), res).Return(dbErr)
	s.recorder.EXPECT().ObserveRun(gomock.Any(), gomock.Any(), dbErr)

	_, err := s.svc.Run(context.Background())
	s.ErrorIs(err, dbErr)
	s.True(s.released, "lock is released on failure")
}

func (s *ServiceTestSuite) TestSkipsWhenLockHeld() {
	s.locker.EXPECT().Acquire(gomock.Any(), assignment.LockKey, gomock.Any()).Return(nil, shared.ErrLockHeld)

	_, err := s.svc.Run(context.Background())
	s.ErrorIs(err, assignment.ErrAlreadyRunning)
}

func TestNewTimeInfo(t *testing.T) {
	info := assignment.NewTimeInfo(time.Date(2025, 6, 10, 21, 30, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC), info.Today)
	assert.Equal(t, 21*time.Hour+30*time.Minute, info.CurrentTime)
	assert.Equal(t, time.Date(2025, 6, 13, 0, 0, 0, 0, time.UTC), info.ThreeDaysFromNow)

	tokyo := time.FixedZone("JST", 9*60*60)
	info = assignment.NewTimeInfo(time.Date(2025, 6, 10, 21, 30, 0, 0, time.UTC).In(tokyo))
	require.Equal(t, time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC), info.Today)
}
