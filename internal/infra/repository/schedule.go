package repository

import (
	"context"

	"boat-reservation/internal/domain/schedule"
	"boat-reservation/internal/infra"
	"boat-reservation/internal/infra/pgquery"
	"boat-reservation/internal/infra/repository/converter"

	"github.com/google/uuid"
)

const ConstraintTimeSlotWindow = "time_slots_window_key"

type CruisePeriodQueries interface {
	CreateCruisePeriod(ctx context.Context, db pgquery.DBTX, arg pgquery.CreateCruisePeriodParams) error
	GetCruisePeriod(ctx context.Context, db pgquery.DBTX, id uuid.UUID) (pgquery.CruisePeriodRow, error)
	ListTimeSlotsByCruisePeriod(ctx context.Context, db pgquery.DBTX, cruisePeriodID uuid.UUID) ([]pgquery.TimeSlotRow, error)
}

type CruisePeriodRepository struct {
	queries CruisePeriodQueries
	db      pgquery.DBTX
}

func NewCruisePeriodRepository(queries CruisePeriodQueries, db pgquery.DBTX) *CruisePeriodRepository {
	return &CruisePeriodRepository{queries: queries, db: db}
}

func (r *CruisePeriodRepository) Create(ctx context.Context, period *schedule.CruisePeriod) error {
	if err := r.queries.CreateCruisePeriod(ctx, r.db, converter.CruisePeriodToCreateParams(period)); err != nil {
		return infra.WrapRepoErr("failed to create cruise period", err)
	}
	return nil
}

func (r *CruisePeriodRepository) FindByID(ctx context.Context, id uuid.UUID) (*schedule.CruisePeriod, error) {
	row, err := r.queries.GetCruisePeriod(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find cruise period", err)
	}
	slots, err := r.queries.ListTimeSlotsByCruisePeriod(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list time slots", err)
	}
	return converter.CruisePeriodToDomain(row, slots), nil
}

type TimeSlotQueries interface {
	CreateTimeSlot(ctx context.Context, db pgquery.DBTX, arg pgquery.CreateTimeSlotParams) error
	GetTimeSlot(ctx context.Context, db pgquery.DBTX, id uuid.UUID) (pgquery.TimeSlotRow, error)
}

type TimeSlotRepository struct {
	queries TimeSlotQueries
	db      pgquery.DBTX
}

func NewTimeSlotRepository(queries TimeSlotQueries, db pgquery.DBTX) *TimeSlotRepository {
	return &TimeSlotRepository{queries: queries, db: db}
}

func (r *TimeSlotRepository) Create(ctx context.Context, slot *schedule.TimeSlot) error {
	err := r.queries.CreateTimeSlot(ctx, r.db, converter.TimeSlotToCreateParams(slot))
	if err == nil {
		return nil
	}
	wrapped := infra.WrapRepoErr("failed to create time slot", err)
	if infra.ConstraintOf(wrapped) == ConstraintTimeSlotWindow {
		return schedule.ErrDuplicateTimeSlot
	}
	return wrapped
}

func (r *TimeSlotRepository) FindByID(ctx context.Context, id uuid.UUID) (*schedule.TimeSlot, error) {
	row, err := r.queries.GetTimeSlot(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find time slot", err)
	}
	return converter.TimeSlotToDomain(row), nil
}
