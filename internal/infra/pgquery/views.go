package pgquery

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

func (q *Queries) GetReservationView(ctx context.Context, db DBTX, id uuid.UUID) (ReservationViewRow, error) {
	cols := []string{"r.id", "r.user_id", "r.boat_id", "b.personal_name"}
	cols = append(cols, timeSlotColumns...)
	cols = append(cols,
		"r.battery_id", "bt.type", "m.display_name",
		"r.previous_battery_holder_id", "ph.display_name",
		"r.is_deleted", "r.created_at", "r.updated_at",
	)
	row, err := queryRow(ctx, db, psql.Select(cols...).
		From("reservations r").
		Join("boats b ON b.id = r.boat_id").
		Join("time_slots ts ON ts.id = r.time_slot_id").
		LeftJoin("batteries bt ON bt.id = r.battery_id").
		LeftJoin("users m ON m.id = bt.mentor_id").
		LeftJoin("users ph ON ph.id = r.previous_battery_holder_id").
		Where(eqID("r.id", id)))
	if err != nil {
		return ReservationViewRow{}, err
	}

	var v ReservationViewRow
	targets := []any{&v.ID, &v.UserID, &v.BoatID, &v.BoatName}
	targets = append(targets, v.Slot.scanTargets()...)
	targets = append(targets,
		&v.BatteryID, &v.BatteryType, &v.MentorName,
		&v.PreviousBatteryHolderID, &v.PreviousHolderName,
		&v.IsDeleted, &v.CreatedAt, &v.UpdatedAt,
	)
	err = row.Scan(targets...)
	return v, err
}

type ListReservationsByUserParams struct {
	UserID uuid.UUID
	// A nil AfterStartAt starts from the first row in scan order.
	AfterStartAt *time.Time
	AfterID      uuid.UUID
	Backward     bool
	Limit        uint64
}

// ListReservationsByUser scans in (start_at, id) order, descending when
// Backward is set.
func (q *Queries) ListReservationsByUser(ctx context.Context, db DBTX, arg ListReservationsByUserParams) ([]ReservationListRow, error) {
	cols := []string{"r.id", "r.boat_id", "b.personal_name"}
	cols = append(cols, timeSlotColumns...)
	cols = append(cols, "ts.start_at", "r.battery_id", "r.is_deleted")

	b := psql.Select(cols...).
		From("reservations r").
		Join("boats b ON b.id = r.boat_id").
		Join("time_slots ts ON ts.id = r.time_slot_id").
		Where(eqID("r.user_id", arg.UserID))

	op, order := ">", []string{"ts.start_at ASC", "r.id ASC"}
	if arg.Backward {
		op, order = "<", []string{"ts.start_at DESC", "r.id DESC"}
	}
	if arg.AfterStartAt != nil {
		b = b.Where("(ts.start_at, r.id) "+op+" (?::timestamp, ?::uuid)", *arg.AfterStartAt, arg.AfterID)
	}
	b = b.OrderBy(order...).Limit(arg.Limit)

	return queryAll(ctx, db, b, func(row pgx.Row) (ReservationListRow, error) {
		var r ReservationListRow
		targets := []any{&r.ID, &r.BoatID, &r.BoatName}
		targets = append(targets, r.Slot.scanTargets()...)
		targets = append(targets, &r.StartAt, &r.BatteryID, &r.IsDeleted)
		err := row.Scan(targets...)
		return r, err
	})
}
