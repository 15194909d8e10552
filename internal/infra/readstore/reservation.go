package readstore

import (
	"context"

	"boat-reservation/internal/domain/schedule"
	"boat-reservation/internal/infra"
	"boat-reservation/internal/infra/pgquery"
	"boat-reservation/internal/pkg/pgconv"
	"boat-reservation/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationViewQueries interface {
	GetReservationView(ctx context.Context, db pgquery.DBTX, id uuid.UUID) (pgquery.ReservationViewRow, error)
	ListReservationsByUser(ctx context.Context, db pgquery.DBTX, arg pgquery.ListReservationsByUserParams) ([]pgquery.ReservationListRow, error)
}

type ReservationReadStore struct {
	queries ReservationViewQueries
	db      pgquery.DBTX
}

func NewReservationReadStore(queries ReservationViewQueries, db pgquery.DBTX) *ReservationReadStore {
	return &ReservationReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	row, err := r.queries.GetReservationView(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}

	return rowToReservationView(row), nil
}

func (r *ReservationReadStore) ListByUser(
	ctx context.Context,
	userID uuid.UUID,
	after *queries.Keyset,
	dir queries.Direction,
	limit int,
) ([]*queries.ReservationListItem, error) {
	params := pgquery.ListReservationsByUserParams{
		UserID:   userID,
		Backward: dir == queries.DirectionPrev,
		Limit:    uint64(max(limit, 0)), // #nosec G115 -- clamped to non-negative
	}
	if after != nil {
		startAt := after.StartAt
		params.AfterStartAt = &startAt
		params.AfterID = after.ID
	}

	rows, err := r.queries.ListReservationsByUser(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations by user", err)
	}

	items := make([]*queries.ReservationListItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, rowToReservationListItem(row))
	}
	return items, nil
}

func rowToReservationView(row pgquery.ReservationViewRow) *queries.ReservationView {
	start := pgconv.DurationFromPgTime(row.Slot.StartTime)
	end := pgconv.DurationFromPgTime(row.Slot.EndTime)
	return &queries.ReservationView{
		ID:                 row.ID,
		UserID:             row.UserID,
		BoatID:             row.BoatID,
		BoatName:           row.BoatName,
		TimeSlotID:         row.Slot.ID,
		Date:               pgconv.DateFromPgtype(row.Slot.Date),
		Start:              schedule.FormatTimeOfDay(start),
		End:                schedule.FormatTimeOfDay(end),
		BatteryID:          pgconv.UUIDPtrFromPgtype(row.BatteryID),
		BatteryType:        pgconv.StringPtrFromPgtype(row.BatteryType),
		MentorName:         pgconv.StringPtrFromPgtype(row.MentorName),
		PreviousHolderID:   pgconv.UUIDPtrFromPgtype(row.PreviousBatteryHolderID),
		PreviousHolderName: pgconv.StringPtrFromPgtype(row.PreviousHolderName),
		IsDeleted:          row.IsDeleted,
		CreatedAt:          pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:          pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}

func rowToReservationListItem(row pgquery.ReservationListRow) *queries.ReservationListItem {
	return &queries.ReservationListItem{
		ID:        row.ID,
		BoatID:    row.BoatID,
		BoatName:  row.BoatName,
		Date:      pgconv.DateFromPgtype(row.Slot.Date),
		Start:     schedule.FormatTimeOfDay(pgconv.DurationFromPgTime(row.Slot.StartTime)),
		End:       schedule.FormatTimeOfDay(pgconv.DurationFromPgTime(row.Slot.EndTime)),
		StartAt:   row.StartAt.Time.UTC(),
		BatteryID: pgconv.UUIDPtrFromPgtype(row.BatteryID),
		IsDeleted: row.IsDeleted,
	}
}
