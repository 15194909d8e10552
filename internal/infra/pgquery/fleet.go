package pgquery

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

var (
	boatColumns    = []string{"b.id", "b.personal_name", "b.is_available"}
	batteryColumns = []string{"bt.id", "bt.boat_id", "bt.mentor_id", "bt.type", "bt.usage_count"}
)

func scanBoat(row pgx.Row) (BoatRow, error) {
	var b BoatRow
	err := row.Scan(&b.ID, &b.PersonalName, &b.IsAvailable)
	return b, err
}

func scanBattery(row pgx.Row) (BatteryRow, error) {
	var b BatteryRow
	err := row.Scan(&b.ID, &b.BoatID, &b.MentorID, &b.Type, &b.UsageCount)
	return b, err
}

// GetFreeBoatForTimeSlot picks the lowest-id available boat without an
// active booking for the slot. Boats locked by a concurrent booking are
// skipped so parallel requests spread over the fleet.
func (q *Queries) GetFreeBoatForTimeSlot(ctx context.Context, db DBTX, timeSlotID uuid.UUID) (BoatRow, error) {
	row, err := queryRow(ctx, db, psql.Select(boatColumns...).
		From("boats b").
		Where("b.is_available").
		Where(`NOT EXISTS (
			SELECT 1 FROM reservations r
			WHERE r.boat_id = b.id AND r.time_slot_id = ? AND NOT r.is_deleted)`, timeSlotID).
		OrderBy("b.id").
		Limit(1).
		Suffix("FOR UPDATE OF b SKIP LOCKED"))
	if err != nil {
		return BoatRow{}, err
	}
	return scanBoat(row)
}

func (q *Queries) GetBoatForUpdate(ctx context.Context, db DBTX, id uuid.UUID) (BoatRow, error) {
	row, err := queryRow(ctx, db, psql.Select(boatColumns...).
		From("boats b").
		Where(eqID("b.id", id)).
		Suffix("FOR UPDATE"))
	if err != nil {
		return BoatRow{}, err
	}
	return scanBoat(row)
}

func (q *Queries) ListBoatsByIDs(ctx context.Context, db DBTX, ids []uuid.UUID) ([]BoatRow, error) {
	b := psql.Select(boatColumns...).
		From("boats b").
		Where(inIDs("b.id", ids)).
		OrderBy("b.id")
	return queryAll(ctx, db, b, scanBoat)
}

type CreateBoatParams struct {
	ID           uuid.UUID
	PersonalName string
	IsAvailable  bool
}

func (q *Queries) CreateBoat(ctx context.Context, db DBTX, arg CreateBoatParams) error {
	return execOne(ctx, db, psql.Insert("boats").
		Columns("id", "personal_name", "is_available").
		Values(arg.ID, arg.PersonalName, arg.IsAvailable))
}

type UpdateBoatAvailabilityParams struct {
	ID          uuid.UUID
	IsAvailable bool
}

func (q *Queries) UpdateBoatAvailability(ctx context.Context, db DBTX, arg UpdateBoatAvailabilityParams) error {
	return execOne(ctx, db, psql.Update("boats").
		Set("is_available", arg.IsAvailable).
		Set("updated_at", sq.Expr("now()")).
		Where(eqID("id", arg.ID)))
}

// ListBatteriesByBoatIDs keeps the insertion order, which is the order the
// assignment tries batteries in.
func (q *Queries) ListBatteriesByBoatIDs(ctx context.Context, db DBTX, boatIDs []uuid.UUID) ([]BatteryRow, error) {
	b := psql.Select(batteryColumns...).
		From("batteries bt").
		Where(inIDs("bt.boat_id", boatIDs)).
		OrderBy("bt.created_at", "bt.id")
	return queryAll(ctx, db, b, scanBattery)
}

type CreateBatteryParams struct {
	ID       uuid.UUID
	BoatID   uuid.UUID
	MentorID uuid.UUID
	Type     string
}

func (q *Queries) CreateBattery(ctx context.Context, db DBTX, arg CreateBatteryParams) error {
	return execOne(ctx, db, psql.Insert("batteries").
		Columns("id", "boat_id", "mentor_id", "type").
		Values(arg.ID, arg.BoatID, arg.MentorID, arg.Type))
}

type UpdateBatteryUsageParams struct {
	ID         uuid.UUID
	UsageCount int32
}

func (q *Queries) UpdateBatteryUsage(ctx context.Context, db DBTX, arg UpdateBatteryUsageParams) error {
	return execOne(ctx, db, psql.Update("batteries").
		Set("usage_count", arg.UsageCount).
		Set("updated_at", sq.Expr("now()")).
		Where(eqID("id", arg.ID)))
}

type ListBatteryUsagesParams struct {
	BoatIDs []uuid.UUID
	From    pgtype.Date
	To      pgtype.Date
}

// ListBatteryUsages returns the active reservations holding a battery of
// one of the boats, with slot dates in [From, To].
func (q *Queries) ListBatteryUsages(ctx context.Context, db DBTX, arg ListBatteryUsagesParams) ([]BatteryUsageRow, error) {
	cols := append([]string{"r.battery_id", "r.id", "r.user_id"}, timeSlotColumns...)
	b := psql.Select(cols...).
		From("reservations r").
		Join("batteries bt ON bt.id = r.battery_id").
		Join("time_slots ts ON ts.id = r.time_slot_id").
		Where(inIDs("bt.boat_id", arg.BoatIDs)).
		Where("NOT r.is_deleted").
		Where("ts.date BETWEEN ? AND ?", arg.From, arg.To).
		OrderBy("ts.start_at", "r.id")
	return queryAll(ctx, db, b, scanBatteryUsage)
}

type ListLatestBatteryUsagesBeforeParams struct {
	BoatIDs []uuid.UUID
	Before  pgtype.Date
}

// ListLatestBatteryUsagesBefore returns, per battery of the boats, the
// latest active use dated strictly before Before, however old it is.
func (q *Queries) ListLatestBatteryUsagesBefore(ctx context.Context, db DBTX, arg ListLatestBatteryUsagesBeforeParams) ([]BatteryUsageRow, error) {
	cols := append([]string{"r.battery_id", "r.id", "r.user_id"}, timeSlotColumns...)
	b := psql.Select(cols...).
		Options("DISTINCT ON (r.battery_id)").
		From("reservations r").
		Join("batteries bt ON bt.id = r.battery_id").
		Join("time_slots ts ON ts.id = r.time_slot_id").
		Where(inIDs("bt.boat_id", arg.BoatIDs)).
		Where("NOT r.is_deleted").
		Where("ts.date < ?", arg.Before).
		OrderBy("r.battery_id", "ts.start_at DESC", "r.id DESC")
	return queryAll(ctx, db, b, scanBatteryUsage)
}

func scanBatteryUsage(row pgx.Row) (BatteryUsageRow, error) {
	var u BatteryUsageRow
	targets := append([]any{&u.BatteryID, &u.ReservationID, &u.UserID}, u.Slot.scanTargets()...)
	err := row.Scan(targets...)
	return u, err
}
