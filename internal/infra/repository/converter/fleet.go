package converter

import (
	"boat-reservation/internal/domain/fleet"
	"boat-reservation/internal/domain/reservation"
	"boat-reservation/internal/infra/pgquery"

	"github.com/google/uuid"
)

func UsageToDomain(row pgquery.BatteryUsageRow) fleet.Usage {
	return fleet.Usage{
		ReservationID: row.ReservationID,
		UserID:        row.UserID,
		TimeSlot:      *TimeSlotToDomain(row.Slot),
	}
}

func BatteryToDomain(row pgquery.BatteryRow, history []fleet.Usage) *fleet.Battery {
	return fleet.ReconstructBattery(row.ID, row.BoatID, row.MentorID, row.Type, int(row.UsageCount), history)
}

// BoatsToDomain assembles boats with their reservations and batteries. Rows
// that reference a boat or battery outside the given sets are dropped.
func BoatsToDomain(
	boats []pgquery.BoatRow,
	reservations []pgquery.ReservationRow,
	batteries []pgquery.BatteryRow,
	usages []pgquery.BatteryUsageRow,
) []*fleet.Boat {
	history := make(map[uuid.UUID][]fleet.Usage)
	for _, u := range usages {
		history[u.BatteryID] = append(history[u.BatteryID], UsageToDomain(u))
	}

	batteriesByBoat := make(map[uuid.UUID][]*fleet.Battery)
	for _, b := range batteries {
		batteriesByBoat[b.BoatID] = append(batteriesByBoat[b.BoatID], BatteryToDomain(b, history[b.ID]))
	}

	reservationsByBoat := make(map[uuid.UUID][]*reservation.Reservation)
	for _, r := range reservations {
		reservationsByBoat[r.BoatID] = append(reservationsByBoat[r.BoatID], ReservationToDomain(r))
	}

	out := make([]*fleet.Boat, 0, len(boats))
	for _, b := range boats {
		out = append(out, fleet.ReconstructBoat(b.ID, b.PersonalName, b.IsAvailable, reservationsByBoat[b.ID], batteriesByBoat[b.ID]))
	}
	return out
}
