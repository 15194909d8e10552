package repository

import (
	"context"

	"boat-reservation/internal/domain/fleet"
	"boat-reservation/internal/infra"
	"boat-reservation/internal/infra/pgquery"
)

type BatteryQueries interface {
	UpdateBatteryUsage(ctx context.Context, db pgquery.DBTX, arg pgquery.UpdateBatteryUsageParams) error
}

type BatteryRepository struct {
	queries BatteryQueries
	db      pgquery.DBTX
}

func NewBatteryRepository(queries BatteryQueries, db pgquery.DBTX) *BatteryRepository {
	return &BatteryRepository{
		queries: queries,
		db:      db,
	}
}

func (r *BatteryRepository) UpdateUsage(ctx context.Context, battery *fleet.Battery) error {
	err := r.queries.UpdateBatteryUsage(ctx, r.db, pgquery.UpdateBatteryUsageParams{
		ID:         battery.ID(),
		UsageCount: int32(battery.UsageCount()), // #nosec G115 -- bounded by the usage_count column
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update battery usage", err)
	}
	return nil
}
