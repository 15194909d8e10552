package repository

import (
	"context"
	"time"

	"boat-reservation/internal/domain/fleet"
	"boat-reservation/internal/infra"
	"boat-reservation/internal/infra/pgquery"
	"boat-reservation/internal/infra/repository/converter"
	"boat-reservation/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type BoatQueries interface {
	GetFreeBoatForTimeSlot(ctx context.Context, db pgquery.DBTX, timeSlotID uuid.UUID) (pgquery.BoatRow, error)
	GetBoatForUpdate(ctx context.Context, db pgquery.DBTX, id uuid.UUID) (pgquery.BoatRow, error)
	ListBoatsByIDs(ctx context.Context, db pgquery.DBTX, ids []uuid.UUID) ([]pgquery.BoatRow, error)
	UpdateBoatAvailability(ctx context.Context, db pgquery.DBTX, arg pgquery.UpdateBoatAvailabilityParams) error
	ListBatteriesByBoatIDs(ctx context.Context, db pgquery.DBTX, boatIDs []uuid.UUID) ([]pgquery.BatteryRow, error)
	ListBatteryUsages(ctx context.Context, db pgquery.DBTX, arg pgquery.ListBatteryUsagesParams) ([]pgquery.BatteryUsageRow, error)
	ListLatestBatteryUsagesBefore(ctx context.Context, db pgquery.DBTX, arg pgquery.ListLatestBatteryUsagesBeforeParams) ([]pgquery.BatteryUsageRow, error)
	ListPendingReservations(ctx context.Context, db pgquery.DBTX, arg pgquery.ListPendingReservationsParams) ([]pgquery.ReservationRow, error)
	ListActiveReservationsByBoat(ctx context.Context, db pgquery.DBTX, arg pgquery.ListActiveReservationsByBoatParams) ([]pgquery.ReservationRow, error)
}

type BoatRepository struct {
	queries BoatQueries
	db      pgquery.DBTX
}

func NewBoatRepository(queries BoatQueries, db pgquery.DBTX) *BoatRepository {
	return &BoatRepository{
		queries: queries,
		db:      db,
	}
}

func (r *BoatRepository) FindWithPendingAssignments(ctx context.Context, horizonStart, horizonEnd, historyFrom time.Time) ([]*fleet.Boat, error) {
	pending, err := r.queries.ListPendingReservations(ctx, r.db, pgquery.ListPendingReservationsParams{
		From: pgconv.DateToPgtype(horizonStart),
		To:   pgconv.DateToPgtype(horizonEnd),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list pending reservations", err)
	}
	if len(pending) == 0 {
		return nil, nil
	}

	var boatIDs []uuid.UUID
	seen := make(map[uuid.UUID]bool)
	for _, p := range pending {
		if !seen[p.BoatID] {
			seen[p.BoatID] = true
			boatIDs = append(boatIDs, p.BoatID)
		}
	}

	boats, err := r.queries.ListBoatsByIDs(ctx, r.db, boatIDs)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list boats", err)
	}
	return r.assemble(ctx, boats, pending, historyFrom, horizonEnd)
}

func (r *BoatRepository) FindFreeForTimeSlot(ctx context.Context, timeSlotID uuid.UUID) (*fleet.Boat, error) {
	row, err := r.queries.GetFreeBoatForTimeSlot(ctx, r.db, timeSlotID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find free boat", err)
	}
	return fleet.ReconstructBoat(row.ID, row.PersonalName, row.IsAvailable, nil, nil), nil
}

func (r *BoatRepository) FindByIDWithReservationsFrom(ctx context.Context, id uuid.UUID, from time.Time) (*fleet.Boat, error) {
	row, err := r.queries.GetBoatForUpdate(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find boat", err)
	}

	reservations, err := r.queries.ListActiveReservationsByBoat(ctx, r.db, pgquery.ListActiveReservationsByBoatParams{
		BoatID: id,
		From:   pgconv.DateToPgtype(from),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list boat reservations", err)
	}

	until := from
	for _, res := range reservations {
		if d := pgconv.DateFromPgtype(res.Slot.Date); d.After(until) {
			until = d
		}
	}
	boats, err := r.assemble(ctx, []pgquery.BoatRow{row}, reservations, from, until)
	if err != nil {
		return nil, err
	}
	return boats[0], nil
}

func (r *BoatRepository) UpdateAvailability(ctx context.Context, boat *fleet.Boat) error {
	err := r.queries.UpdateBoatAvailability(ctx, r.db, pgquery.UpdateBoatAvailabilityParams{
		ID:          boat.ID(),
		IsAvailable: boat.IsAvailable(),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update boat availability", err)
	}
	return nil
}

// assemble loads the batteries of the boats with their history in
// [historyFrom, historyTo] plus each battery's latest earlier use, so the
// previous holder is known however long the battery sat unused.
func (r *BoatRepository) assemble(
	ctx context.Context,
	boats []pgquery.BoatRow,
	reservations []pgquery.ReservationRow,
	historyFrom, historyTo time.Time,
) ([]*fleet.Boat, error) {
	boatIDs := make([]uuid.UUID, 0, len(boats))
	for _, b := range boats {
		boatIDs = append(boatIDs, b.ID)
	}

	batteries, err := r.queries.ListBatteriesByBoatIDs(ctx, r.db, boatIDs)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list batteries", err)
	}
	var usages []pgquery.BatteryUsageRow
	if len(batteries) > 0 {
		usages, err = r.queries.ListLatestBatteryUsagesBefore(ctx, r.db, pgquery.ListLatestBatteryUsagesBeforeParams{
			BoatIDs: boatIDs,
			Before:  pgconv.DateToPgtype(historyFrom),
		})
		if err != nil {
			return nil, infra.WrapRepoErr("failed to list earlier battery use", err)
		}
		window, err := r.queries.ListBatteryUsages(ctx, r.db, pgquery.ListBatteryUsagesParams{
			BoatIDs: boatIDs,
			From:    pgconv.DateToPgtype(historyFrom),
			To:      pgconv.DateToPgtype(historyTo),
		})
		if err != nil {
			return nil, infra.WrapRepoErr("failed to list battery history", err)
		}
		usages = append(usages, window...)
	}

	return converter.BoatsToDomain(boats, reservations, batteries, usages), nil
}
