//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"boat-reservation/internal/domain/reservation"
	"boat-reservation/internal/domain/user"
	"boat-reservation/internal/pkg/clock"
	"boat-reservation/internal/usecase/commands"
	"boat-reservation/internal/usecase/shared"
	"boat-reservation/tests/common/builder"
	sharedmock "boat-reservation/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSetAvailability(t *testing.T) {
	ctx := context.Background()
	admin := shared.NewActor(uuid.New(), user.RoleAdmin)

	setup := func(t *testing.T) (*txMocks, *sharedmock.MockNotifier, commands.BoatCommands) {
		ctrl := gomock.NewController(t)
		m := newTxMocks(ctrl)
		notifier := sharedmock.NewMockNotifier(ctrl)
		return m, notifier, commands.NewBoatCommands(m.uow, notifier, clock.NewMockClock(builder.Now))
	}

	t.Run("利用停止で今日以降の予約をキャンセルする", func(t *testing.T) {
		m, notifier, cmds := setup(t)

		boatID := uuid.New()
		today := builder.NewReservationBuilder().ForBoat(boatID).OnDay(0, 15*time.Hour, 17*time.Hour).BuildReconstructed()
		later := builder.NewReservationBuilder().ForBoat(boatID).OnDay(4, 9*time.Hour, 12*time.Hour).BuildReconstructed()
		boat := builder.NewBoatBuilder().With(func(b *builder.BoatBuilder) {
			b.ID = boatID
			b.Reservations = []*reservation.Reservation{today, later}
		}).BuildDomain()

		m.boats.EXPECT().FindByIDWithReservationsFrom(gomock.Any(), boatID, builder.Today).Return(boat, nil)
		m.reservations.EXPECT().Update(gomock.Any(), today).Return(nil)
		m.reservations.EXPECT().Update(gomock.Any(), later).Return(nil)
		m.boats.EXPECT().UpdateAvailability(gomock.Any(), boat).Return(nil)
		notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(nil).Times(2)

		res, err := cmds.SetAvailability(ctx, admin, boatID, false)
		require.NoError(t, err)
		assert.Equal(t, 2, res.Canceled)
		assert.False(t, boat.IsAvailable())
		assert.True(t, today.IsDeleted())
		assert.True(t, later.IsDeleted())
	})

	t.Run("利用再開は予約に触れない", func(t *testing.T) {
		m, _, cmds := setup(t)
		boat := builder.NewBoatBuilder().With(func(b *builder.BoatBuilder) { b.IsAvailable = false }).BuildDomain()

		m.boats.EXPECT().FindByIDWithReservationsFrom(gomock.Any(), boat.ID(), gomock.Any()).Return(boat, nil)
		m.boats.EXPECT().UpdateAvailability(gomock.Any(), boat).Return(nil)

		res, err := cmds.SetAvailability(ctx, admin, boat.ID(), true)
		require.NoError(t, err)
		assert.Zero(t, res.Canceled)
		assert.True(t, boat.IsAvailable())
	})

	t.Run("管理者以外は拒否", func(t *testing.T) {
		_, _, cmds := setup(t)
		_, err := cmds.SetAvailability(ctx, shared.NewActor(uuid.New(), user.RoleMentor), uuid.New(), false)
		assert.ErrorIs(t, err, commands.ErrAdminRequired)
	})

	t.Run("存在しないボートはNotFound", func(t *testing.T) {
		m, _, cmds := setup(t)
		m.boats.EXPECT().FindByIDWithReservationsFrom(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, notFound())

		_, err := cmds.SetAvailability(ctx, admin, uuid.New(), false)
		assert.ErrorIs(t, err, commands.ErrBoatNotFound)
	})
}
