package converter

import (
	"boat-reservation/internal/domain/schedule"
	"boat-reservation/internal/infra/pgquery"
	"boat-reservation/internal/pkg/pgconv"
)

func TimeSlotToDomain(row pgquery.TimeSlotRow) *schedule.TimeSlot {
	return schedule.ReconstructTimeSlot(
		row.ID,
		row.CruisePeriodID,
		pgconv.DateFromPgtype(row.Date),
		pgconv.DurationFromPgTime(row.StartTime),
		pgconv.DurationFromPgTime(row.EndTime),
	)
}

func TimeSlotToCreateParams(slot *schedule.TimeSlot) pgquery.CreateTimeSlotParams {
	return pgquery.CreateTimeSlotParams{
		ID:             slot.ID(),
		CruisePeriodID: slot.CruisePeriodID(),
		Date:           pgconv.DateToPgtype(slot.Date()),
		StartTime:      pgconv.DurationToPgTime(slot.Start()),
		EndTime:        pgconv.DurationToPgTime(slot.End()),
	}
}

func CruisePeriodToDomain(row pgquery.CruisePeriodRow, slots []pgquery.TimeSlotRow) *schedule.CruisePeriod {
	domainSlots := make([]*schedule.TimeSlot, 0, len(slots))
	for _, s := range slots {
		domainSlots = append(domainSlots, TimeSlotToDomain(s))
	}
	return schedule.ReconstructCruisePeriod(row.ID, row.StartAt, row.EndAt, domainSlots)
}

func CruisePeriodToCreateParams(period *schedule.CruisePeriod) pgquery.CreateCruisePeriodParams {
	return pgquery.CreateCruisePeriodParams{
		ID:      period.ID(),
		StartAt: period.Start(),
		EndAt:   period.End(),
	}
}
