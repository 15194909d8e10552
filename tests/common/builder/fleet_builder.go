//go:build unit || e2e

package builder

import (
	"boat-reservation/internal/domain/fleet"
	"boat-reservation/internal/domain/reservation"

	"github.com/google/uuid"
)

type BoatBuilder struct {
	ID           uuid.UUID
	Name         string
	IsAvailable  bool
	Batteries    int
	Reservations []*reservation.Reservation
}

func NewBoatBuilder() *BoatBuilder {
	return &BoatBuilder{
		ID:          uuid.New(),
		Name:        "Sea Breeze",
		IsAvailable: true,
		Batteries:   1,
	}
}

func (b *BoatBuilder) With(mutate func(*BoatBuilder)) *BoatBuilder {
	mutate(b)
	return b
}

// BuildDomain returns a boat with Batteries fresh batteries, each with an
// empty history.
func (b *BoatBuilder) BuildDomain() *fleet.Boat {
	batteries := make([]*fleet.Battery, 0, b.Batteries)
	for i := 0; i < b.Batteries; i++ {
		batteries = append(batteries, fleet.ReconstructBattery(uuid.New(), b.ID, uuid.New(), "LiFePO4", 0, nil))
	}
	return fleet.ReconstructBoat(b.ID, b.Name, b.IsAvailable, b.Reservations, batteries)
}
