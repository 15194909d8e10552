package pgquery

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

var timeSlotColumns = []string{"ts.id", "ts.cruise_period_id", "ts.date", "ts.start_time", "ts.end_time"}

func (r *TimeSlotRow) scanTargets() []any {
	return []any{&r.ID, &r.CruisePeriodID, &r.Date, &r.StartTime, &r.EndTime}
}

func scanTimeSlot(row pgx.Row) (TimeSlotRow, error) {
	var ts TimeSlotRow
	err := row.Scan(ts.scanTargets()...)
	return ts, err
}

type CreateCruisePeriodParams struct {
	ID      uuid.UUID
	StartAt time.Time
	EndAt   time.Time
}

func (q *Queries) CreateCruisePeriod(ctx context.Context, db DBTX, arg CreateCruisePeriodParams) error {
	return execOne(ctx, db, psql.Insert("cruise_periods").
		Columns("id", "start_at", "end_at").
		Values(arg.ID, arg.StartAt, arg.EndAt))
}

func (q *Queries) GetCruisePeriod(ctx context.Context, db DBTX, id uuid.UUID) (CruisePeriodRow, error) {
	var p CruisePeriodRow
	row, err := queryRow(ctx, db, psql.Select("id", "start_at", "end_at").
		From("cruise_periods").
		Where(eqID("id", id)))
	if err != nil {
		return p, err
	}
	err = row.Scan(&p.ID, &p.StartAt, &p.EndAt)
	return p, err
}

func (q *Queries) ListTimeSlotsByCruisePeriod(ctx context.Context, db DBTX, cruisePeriodID uuid.UUID) ([]TimeSlotRow, error) {
	b := psql.Select(timeSlotColumns...).
		From("time_slots ts").
		Where(eqID("ts.cruise_period_id", cruisePeriodID)).
		Where("NOT ts.is_deleted").
		OrderBy("ts.date", "ts.start_time", "ts.end_time")
	return queryAll(ctx, db, b, scanTimeSlot)
}

type CreateTimeSlotParams struct {
	ID             uuid.UUID
	CruisePeriodID uuid.UUID
	Date           pgtype.Date
	StartTime      pgtype.Time
	EndTime        pgtype.Time
}

func (q *Queries) CreateTimeSlot(ctx context.Context, db DBTX, arg CreateTimeSlotParams) error {
	return execOne(ctx, db, psql.Insert("time_slots").
		Columns("id", "cruise_period_id", "date", "start_time", "end_time").
		Values(arg.ID, arg.CruisePeriodID, arg.Date, arg.StartTime, arg.EndTime))
}

func (q *Queries) GetTimeSlot(ctx context.Context, db DBTX, id uuid.UUID) (TimeSlotRow, error) {
	row, err := queryRow(ctx, db, psql.Select(timeSlotColumns...).
		From("time_slots ts").
		Where(eqID("ts.id", id)).
		Where("NOT ts.is_deleted"))
	if err != nil {
		return TimeSlotRow{}, err
	}
	return scanTimeSlot(row)
}
