//go:build unit

package schedule_test

import (
	"testing"
	"time"

	"boat-reservation/internal/domain/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)

func mustPeriod(t *testing.T) *schedule.CruisePeriod {
	t.Helper()
	p, err := schedule.NewCruisePeriod(
		time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC),
		time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	return p
}

func TestNewTimeSlot(t *testing.T) {
	period := mustPeriod(t)

	cases := []struct {
		name  string
		date  time.Time
		start time.Duration
		end   time.Duration
		errIs error
	}{
		{name: "期間内OK", date: time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), start: 10 * time.Hour, end: 13 * time.Hour},
		{name: "期間開始日OK (開始時刻より前の日付部分)", date: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), start: 6 * time.Hour, end: 7 * time.Hour},
		{name: "期間終了日NG (半開区間)", date: time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC), start: 10 * time.Hour, end: 11 * time.Hour, errIs: schedule.ErrDateOutsidePeriod},
		{name: "期間前NG", date: time.Date(2025, 5, 31, 0, 0, 0, 0, time.UTC), start: 10 * time.Hour, end: 11 * time.Hour, errIs: schedule.ErrDateOutsidePeriod},
		{name: "終了が開始と同じNG", date: time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), start: 10 * time.Hour, end: 10 * time.Hour, errIs: schedule.ErrInvalidTimeRange},
		{name: "終了が開始より前NG", date: time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), start: 12 * time.Hour, end: 10 * time.Hour, errIs: schedule.ErrInvalidTimeRange},
		{name: "24時超えNG", date: time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), start: 22 * time.Hour, end: 25 * time.Hour, errIs: schedule.ErrInvalidTimeRange},
		{name: "2000年より前NG", date: time.Date(1999, 12, 31, 0, 0, 0, 0, time.UTC), start: time.Hour, end: 2 * time.Hour, errIs: schedule.ErrDateOutOfRange},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			slot, err := schedule.NewTimeSlot(period, c.date, c.start, c.end, now)
			if c.errIs != nil {
				require.ErrorIs(t, err, c.errIs)
				assert.Nil(t, slot)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, period.ID(), slot.CruisePeriodID())
			assert.Equal(t, c.date, slot.Date())
			assert.Equal(t, c.end-c.start, slot.Duration())
		})
	}

	t.Run("cruise period無しNG", func(t *testing.T) {
		_, err := schedule.NewTimeSlot(nil, now, time.Hour, 2*time.Hour, now)
		require.ErrorIs(t, err, schedule.ErrCruisePeriodRequired)
	})

	t.Run("100年先を超える年NG", func(t *testing.T) {
		far, err := schedule.NewCruisePeriod(time.Date(2120, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2130, 1, 1, 0, 0, 0, 0, time.UTC))
		require.NoError(t, err)
		_, err = schedule.NewTimeSlot(far, time.Date(2126, 1, 1, 0, 0, 0, 0, time.UTC), time.Hour, 2*time.Hour, now)
		require.ErrorIs(t, err, schedule.ErrDateOutOfRange)
	})
}

func TestCruisePeriod(t *testing.T) {
	t.Run("終了が開始以前NG", func(t *testing.T) {
		start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
		_, err := schedule.NewCruisePeriod(start, start)
		require.ErrorIs(t, err, schedule.ErrInvalidPeriod)
	})

	t.Run("AddTimeSlotは順序を保ち重複を拒否する", func(t *testing.T) {
		period := mustPeriod(t)
		day := time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC)

		late, err := schedule.NewTimeSlot(period, day, 14*time.Hour, 17*time.Hour, now)
		require.NoError(t, err)
		early, err := schedule.NewTimeSlot(period, day, 10*time.Hour, 13*time.Hour, now)
		require.NoError(t, err)
		dup, err := schedule.NewTimeSlot(period, day, 14*time.Hour, 17*time.Hour, now)
		require.NoError(t, err)

		require.NoError(t, period.AddTimeSlot(late))
		require.NoError(t, period.AddTimeSlot(early))
		require.ErrorIs(t, period.AddTimeSlot(dup), schedule.ErrDuplicateTimeSlot)

		slots := period.TimeSlots()
		require.Len(t, slots, 2)
		assert.Equal(t, early.ID(), slots[0].ID())
		assert.Equal(t, late.ID(), slots[1].ID())
	})

	t.Run("他の期間のスロットNG", func(t *testing.T) {
		period, other := mustPeriod(t), mustPeriod(t)
		slot, err := schedule.NewTimeSlot(other, time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC), time.Hour, 2*time.Hour, now)
		require.NoError(t, err)
		require.ErrorIs(t, period.AddTimeSlot(slot), schedule.ErrForeignTimeSlot)
		require.ErrorIs(t, period.AddTimeSlot(nil), schedule.ErrTimeSlotRequired)
	})
}

func TestTimeSlotDaysFrom(t *testing.T) {
	slot := schedule.ReconstructTimeSlot(
		[16]byte{1}, [16]byte{2},
		time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC), 10*time.Hour, 13*time.Hour,
	)

	assert.Equal(t, 2, slot.DaysFrom(now))
	assert.Equal(t, 0, slot.DaysFrom(time.Date(2025, 6, 12, 23, 59, 0, 0, time.UTC)))
	assert.True(t, slot.IsPast(time.Date(2025, 6, 13, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "10:00", slot.StartText())
	assert.Equal(t, "13:00", slot.EndText())

	// the calendar day follows the location of now
	tokyo := time.FixedZone("JST", 9*60*60)
	assert.Equal(t, 1, slot.DaysFrom(time.Date(2025, 6, 10, 16, 0, 0, 0, time.UTC).In(tokyo)))
}

func TestParseTimeOfDay(t *testing.T) {
	d, err := schedule.ParseTimeOfDay("14:30")
	require.NoError(t, err)
	assert.Equal(t, 14*time.Hour+30*time.Minute, d)

	_, err = schedule.ParseTimeOfDay("25:00")
	assert.Error(t, err)
}
