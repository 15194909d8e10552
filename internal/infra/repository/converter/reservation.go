package converter

import (
	"boat-reservation/internal/domain/reservation"
	"boat-reservation/internal/infra/pgquery"
	"boat-reservation/internal/pkg/pgconv"
)

func ReservationToDomain(row pgquery.ReservationRow) *reservation.Reservation {
	return reservation.ReconstructReservation(
		row.ID,
		row.UserID,
		row.BoatID,
		*TimeSlotToDomain(row.Slot),
		pgconv.UUIDPtrFromPgtype(row.BatteryID),
		pgconv.UUIDPtrFromPgtype(row.PreviousBatteryHolderID),
		row.IsDeleted,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}

func ReservationToCreateParams(res *reservation.Reservation) pgquery.CreateReservationParams {
	return pgquery.CreateReservationParams{
		ID:         res.ID(),
		UserID:     res.UserID(),
		BoatID:     res.BoatID(),
		TimeSlotID: res.TimeSlot().ID(),
		CreatedAt:  pgconv.TimeToPgtype(res.CreatedAt()),
		UpdatedAt:  pgconv.TimeToPgtype(res.UpdatedAt()),
	}
}

func ReservationToUpdateParams(res *reservation.Reservation) pgquery.UpdateReservationParams {
	return pgquery.UpdateReservationParams{
		ID:                      res.ID(),
		BatteryID:               pgconv.UUIDPtrToPgtype(res.BatteryID()),
		PreviousBatteryHolderID: pgconv.UUIDPtrToPgtype(res.PreviousHolderID()),
		IsDeleted:               res.IsDeleted(),
		UpdatedAt:               pgconv.TimeToPgtype(res.UpdatedAt()),
	}
}
