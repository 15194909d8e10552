package shared

import (
	"context"
	"time"

	"boat-reservation/internal/domain/fleet"
	"boat-reservation/internal/domain/reservation"
	"boat-reservation/internal/domain/schedule"
	"boat-reservation/internal/domain/user"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within runs fn in one read-committed transaction, retrying on
	// serialization failures and deadlocks. fn may run more than once.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

// Tx exposes repositories bound to the running transaction.
type Tx interface {
	Boats() BoatRepository
	Batteries() BatteryRepository
	Reservations() ReservationRepository
	CruisePeriods() CruisePeriodRepository
	TimeSlots() TimeSlotRepository
	Users() UserRepository
}

type BoatRepository interface {
	// FindWithPendingAssignments returns every available boat that has at
	// least one unassigned active reservation dated within
	// [horizonStart, horizonEnd]. Each boat carries those reservations and
	// its batteries; battery history covers [historyFrom, horizonEnd] plus
	// the latest use of each battery before historyFrom.
	FindWithPendingAssignments(ctx context.Context, horizonStart, horizonEnd, historyFrom time.Time) ([]*fleet.Boat, error)
	// FindFreeForTimeSlot returns the first available boat, ordered by id,
	// without an active reservation for the slot.
	FindFreeForTimeSlot(ctx context.Context, timeSlotID uuid.UUID) (*fleet.Boat, error)
	// FindByIDWithReservationsFrom loads a boat with its active reservations
	// dated from onwards and the matching battery history.
	FindByIDWithReservationsFrom(ctx context.Context, id uuid.UUID, from time.Time) (*fleet.Boat, error)
	UpdateAvailability(ctx context.Context, boat *fleet.Boat) error
}

type BatteryRepository interface {
	UpdateUsage(ctx context.Context, battery *fleet.Battery) error
}

type ReservationRepository interface {
	Create(ctx context.Context, res *reservation.Reservation) error
	// FindByID locks the row for the rest of the transaction.
	FindByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	Update(ctx context.Context, res *reservation.Reservation) error
}

type CruisePeriodRepository interface {
	Create(ctx context.Context, period *schedule.CruisePeriod) error
	// FindByID returns the period with its live time slots.
	FindByID(ctx context.Context, id uuid.UUID) (*schedule.CruisePeriod, error)
}

type TimeSlotRepository interface {
	Create(ctx context.Context, slot *schedule.TimeSlot) error
	FindByID(ctx context.Context, id uuid.UUID) (*schedule.TimeSlot, error)
}

type UserRepository interface {
	// FindByIDs skips unknown ids.
	FindByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*user.User, error)
}
