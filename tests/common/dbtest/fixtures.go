//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"boat-reservation/internal/domain/user"
	"boat-reservation/internal/infra/pgquery"
	"boat-reservation/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

var q = pgquery.New()

func CreateTestUser(t *testing.T, db DBLike, name string, role user.Role) uuid.UUID {
	t.Helper()

	id := uuid.New()
	err := q.CreateUser(context.Background(), db, pgquery.CreateUserParams{
		ID:          id,
		Email:       strings.ToLower(name) + "-" + id.String()[:8] + "@example.com",
		DisplayName: name,
		Role:        role.String(),
	})
	require.NoError(t, err)
	return id
}

func CreateTestBoat(t *testing.T, db DBLike, name string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	err := q.CreateBoat(context.Background(), db, pgquery.CreateBoatParams{ID: id, PersonalName: name, IsAvailable: true})
	require.NoError(t, err)
	return id
}

func CreateTestBattery(t *testing.T, db DBLike, boatID, mentorID uuid.UUID, batteryType string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	err := q.CreateBattery(context.Background(), db, pgquery.CreateBatteryParams{
		ID: id, BoatID: boatID, MentorID: mentorID, Type: batteryType,
	})
	require.NoError(t, err)
	return id
}

// CreateTestCruisePeriod spans sixty days around date.
func CreateTestCruisePeriod(t *testing.T, db DBLike, date time.Time) uuid.UUID {
	t.Helper()

	id := uuid.New()
	err := q.CreateCruisePeriod(context.Background(), db, pgquery.CreateCruisePeriodParams{
		ID:      id,
		StartAt: date.AddDate(0, 0, -30),
		EndAt:   date.AddDate(0, 0, 30),
	})
	require.NoError(t, err)
	return id
}

func CreateTestTimeSlot(t *testing.T, db DBLike, periodID uuid.UUID, date time.Time, start, end time.Duration) uuid.UUID {
	t.Helper()

	id := uuid.New()
	err := q.CreateTimeSlot(context.Background(), db, pgquery.CreateTimeSlotParams{
		ID:             id,
		CruisePeriodID: periodID,
		Date:           pgconv.DateToPgtype(date),
		StartTime:      pgconv.DurationToPgTime(start),
		EndTime:        pgconv.DurationToPgTime(end),
	})
	require.NoError(t, err)
	return id
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
