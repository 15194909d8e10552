//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"boat-reservation/internal/domain/reservation"
	"boat-reservation/internal/domain/schedule"
	"boat-reservation/internal/infra"
	"boat-reservation/internal/infra/pgquery"
	"boat-reservation/internal/infra/repository"
	"boat-reservation/internal/infra/repository/converter"
	"boat-reservation/internal/pkg/pgconv"
	"boat-reservation/tests/common/builder"
	repositorymock "boat-reservation/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// =============================================================================
// Create Reservation Tests
// =============================================================================

func TestReservationRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		queryErr   error
		expectErr  error
		expectKind infra.RepositoryErrorKind
	}{
		{
			name: "success: reservation created",
		},
		{
			name:      "error: boat already reserved for the slot",
			queryErr:  &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: repository.ConstraintBoatTimeSlotActive},
			expectErr: reservation.ErrBoatAlreadyReserved,
		},
		{
			name:      "error: user already booked the slot",
			queryErr:  &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: repository.ConstraintUserTimeSlotActive},
			expectErr: reservation.ErrUserAlreadyBooked,
		},
		{
			name:       "error: unknown foreign key",
			queryErr:   &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation, ConstraintName: "reservations_user_id_fkey"},
			expectKind: infra.KindForeignKeyViolated,
		},
		{
			name:       "error: database error occurs",
			queryErr:   errors.New("database connection error"),
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockReservationQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewReservationRepository(mockQueries, mockDB)

			res, err := builder.NewReservationBuilder().BuildDomain()
			require.NoError(t, err)

			mockQueries.EXPECT().
				CreateReservation(ctx, mockDB, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ pgquery.DBTX, arg pgquery.CreateReservationParams) error {
					assert.Equal(t, res.ID(), arg.ID)
					assert.Equal(t, res.TimeSlot().ID(), arg.TimeSlotID)
					assert.Equal(t, res.BoatID(), arg.BoatID)
					return tc.queryErr
				})

			actualError := repo.Create(ctx, res)

			switch {
			case tc.expectErr != nil:
				require.ErrorIs(t, actualError, tc.expectErr)
			case tc.expectKind != "":
				require.Error(t, actualError)
				assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, actualError)
			default:
				assert.NoError(t, actualError)
			}
		})
	}
}

// =============================================================================
// Find / Update Reservation Tests
// =============================================================================

func TestReservationRepository_FindByID(t *testing.T) {
	ctx := context.Background()

	t.Run("success: row converted to domain", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockReservationQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewReservationRepository(mockQueries, mockDB)

		batteryID := uuid.New()
		stored := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
			b.BatteryID = &batteryID
		}).BuildReconstructed()

		mockQueries.EXPECT().GetReservationForUpdate(ctx, mockDB, stored.ID()).Return(reservationRow(stored), nil)

		got, err := repo.FindByID(ctx, stored.ID())
		require.NoError(t, err)
		assert.Equal(t, stored.ID(), got.ID())
		assert.Equal(t, stored.UserID(), got.UserID())
		assert.True(t, got.TimeSlot().SameWindow(stored.TimeSlot()))
		assert.Equal(t, stored.TimeSlot().Date(), got.TimeSlot().Date())
		require.NotNil(t, got.BatteryID())
		assert.Equal(t, batteryID, *got.BatteryID())
		assert.Nil(t, got.PreviousHolderID())
	})

	t.Run("error: reservation not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockReservationQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewReservationRepository(mockQueries, mockDB)

		id := uuid.New()
		mockQueries.EXPECT().GetReservationForUpdate(ctx, mockDB, id).Return(pgquery.ReservationRow{}, pgx.ErrNoRows)

		_, err := repo.FindByID(ctx, id)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestReservationRepository_Update(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockReservationQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewReservationRepository(mockQueries, mockDB)

	res, err := builder.NewReservationBuilder().BuildDomain()
	require.NoError(t, err)
	require.NoError(t, res.Cancel(false, builder.Now))

	mockQueries.EXPECT().
		UpdateReservation(ctx, mockDB, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ pgquery.DBTX, arg pgquery.UpdateReservationParams) error {
			assert.True(t, arg.IsDeleted)
			assert.False(t, arg.BatteryID.Valid)
			return nil
		})
	require.NoError(t, repo.Update(ctx, res))

	mockQueries.EXPECT().UpdateReservation(ctx, mockDB, gomock.Any()).Return(pgx.ErrNoRows)
	assert.True(t, infra.IsKind(repo.Update(ctx, res), infra.KindNotFound))
}

// =============================================================================
// Time Slot Tests
// =============================================================================

func TestTimeSlotRepository_Create(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockTimeSlotQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewTimeSlotRepository(mockQueries, mockDB)

	slot := builder.Slot(5, 10*time.Hour, 13*time.Hour)

	dup := &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: repository.ConstraintTimeSlotWindow}
	mockQueries.EXPECT().CreateTimeSlot(ctx, mockDB, gomock.Any()).Return(dup)
	require.ErrorIs(t, repo.Create(ctx, slot), schedule.ErrDuplicateTimeSlot)

	mockQueries.EXPECT().CreateTimeSlot(ctx, mockDB, gomock.Any()).Return(nil)
	require.NoError(t, repo.Create(ctx, slot))
}

func reservationRow(res *reservation.Reservation) pgquery.ReservationRow {
	params := converter.ReservationToUpdateParams(res)
	return pgquery.ReservationRow{
		ID:                      res.ID(),
		UserID:                  res.UserID(),
		BoatID:                  res.BoatID(),
		BatteryID:               params.BatteryID,
		PreviousBatteryHolderID: params.PreviousBatteryHolderID,
		IsDeleted:               res.IsDeleted(),
		CreatedAt:               params.UpdatedAt,
		UpdatedAt:               params.UpdatedAt,
		Slot:                    slotRow(res.TimeSlot()),
	}
}

func slotRow(slot schedule.TimeSlot) pgquery.TimeSlotRow {
	return pgquery.TimeSlotRow{
		ID:             slot.ID(),
		CruisePeriodID: slot.CruisePeriodID(),
		Date:           pgconv.DateToPgtype(slot.Date()),
		StartTime:      pgconv.DurationToPgTime(slot.Start()),
		EndTime:        pgconv.DurationToPgTime(slot.End()),
	}
}

type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	panic("mockDBTX.QueryRow was called unexpectedly. Use the query mock instead.")
}
