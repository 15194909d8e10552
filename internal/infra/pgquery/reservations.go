package pgquery

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

var reservationColumns = append([]string{
	"r.id", "r.user_id", "r.boat_id", "r.battery_id", "r.previous_battery_holder_id",
	"r.is_deleted", "r.created_at", "r.updated_at",
}, timeSlotColumns...)

func scanReservation(row pgx.Row) (ReservationRow, error) {
	var r ReservationRow
	targets := append([]any{
		&r.ID, &r.UserID, &r.BoatID, &r.BatteryID, &r.PreviousBatteryHolderID,
		&r.IsDeleted, &r.CreatedAt, &r.UpdatedAt,
	}, r.Slot.scanTargets()...)
	err := row.Scan(targets...)
	return r, err
}

func selectReservations() sq.SelectBuilder {
	return psql.Select(reservationColumns...).
		From("reservations r").
		Join("time_slots ts ON ts.id = r.time_slot_id")
}

type CreateReservationParams struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	BoatID     uuid.UUID
	TimeSlotID uuid.UUID
	CreatedAt  pgtype.Timestamptz
	UpdatedAt  pgtype.Timestamptz
}

func (q *Queries) CreateReservation(ctx context.Context, db DBTX, arg CreateReservationParams) error {
	return execOne(ctx, db, psql.Insert("reservations").
		Columns("id", "user_id", "boat_id", "time_slot_id", "created_at", "updated_at").
		Values(arg.ID, arg.UserID, arg.BoatID, arg.TimeSlotID, arg.CreatedAt, arg.UpdatedAt))
}

func (q *Queries) GetReservationForUpdate(ctx context.Context, db DBTX, id uuid.UUID) (ReservationRow, error) {
	row, err := queryRow(ctx, db, selectReservations().
		Where(eqID("r.id", id)).
		Suffix("FOR UPDATE OF r"))
	if err != nil {
		return ReservationRow{}, err
	}
	return scanReservation(row)
}

type UpdateReservationParams struct {
	ID                      uuid.UUID
	BatteryID               pgtype.UUID
	PreviousBatteryHolderID pgtype.UUID
	IsDeleted               bool
	UpdatedAt               pgtype.Timestamptz
}

func (q *Queries) UpdateReservation(ctx context.Context, db DBTX, arg UpdateReservationParams) error {
	return execOne(ctx, db, psql.Update("reservations").
		Set("battery_id", arg.BatteryID).
		Set("previous_battery_holder_id", arg.PreviousBatteryHolderID).
		Set("is_deleted", arg.IsDeleted).
		Set("updated_at", arg.UpdatedAt).
		Where(eqID("id", arg.ID)))
}

type ListPendingReservationsParams struct {
	From pgtype.Date
	To   pgtype.Date
}

// ListPendingReservations locks the unassigned active reservations of
// available boats dated in [From, To].
func (q *Queries) ListPendingReservations(ctx context.Context, db DBTX, arg ListPendingReservationsParams) ([]ReservationRow, error) {
	b := selectReservations().
		Join("boats b ON b.id = r.boat_id").
		Where("b.is_available").
		Where("r.battery_id IS NULL").
		Where("NOT r.is_deleted").
		Where("ts.date BETWEEN ? AND ?", arg.From, arg.To).
		OrderBy("ts.start_at", "r.id").
		Suffix("FOR UPDATE OF r")
	return queryAll(ctx, db, b, scanReservation)
}

type ListActiveReservationsByBoatParams struct {
	BoatID uuid.UUID
	From   pgtype.Date
}

func (q *Queries) ListActiveReservationsByBoat(ctx context.Context, db DBTX, arg ListActiveReservationsByBoatParams) ([]ReservationRow, error) {
	b := selectReservations().
		Where(eqID("r.boat_id", arg.BoatID)).
		Where("NOT r.is_deleted").
		Where("ts.date >= ?", arg.From).
		OrderBy("ts.start_at", "r.id").
		Suffix("FOR UPDATE OF r")
	return queryAll(ctx, db, b, scanReservation)
}
