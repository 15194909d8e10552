package fleet

import (
	"slices"
	"strings"
	"time"

	"boat-reservation/internal/domain/reservation"
	"boat-reservation/internal/domain/schedule"
	"boat-reservation/internal/pkg/errs"

	"github.com/google/uuid"
)

// AssignmentHorizonDays bounds the batch to reservations dated
// [today, today+AssignmentHorizonDays].
const AssignmentHorizonDays = 3

var (
	ErrBoatNameRequired = errs.Define("boat name cannot be empty", errs.ErrInvalidArgument)
	ErrBatteryRequired  = errs.Define("battery is required", errs.ErrInvalidArgument)
	ErrForeignBattery   = errs.Define("battery belongs to another boat", errs.ErrInvalidArgument)
	ErrForeignBooking   = errs.Define("reservation belongs to another boat", errs.ErrInvalidArgument)
)

// Boat owns its batteries and decides which of them is free. Batteries never
// move between boats, so allocation is always local to one boat.
type Boat struct {
	id           uuid.UUID
	name         string
	isAvailable  bool
	reservations []*reservation.Reservation
	batteries    []*Battery
}

func NewBoat(name string) (*Boat, error) {
	b := &Boat{id: uuid.New(), isAvailable: true}
	if err := b.Rename(name); err != nil {
		return nil, err
	}
	return b, nil
}

func ReconstructBoat(id uuid.UUID, name string, isAvailable bool, reservations []*reservation.Reservation, batteries []*Battery) *Boat {
	return &Boat{
		id:           id,
		name:         name,
		isAvailable:  isAvailable,
		reservations: slices.Clone(reservations),
		batteries:    slices.Clone(batteries),
	}
}

func (b *Boat) ID() uuid.UUID                            { return b.id }
func (b *Boat) Name() string                             { return b.name }
func (b *Boat) IsAvailable() bool                        { return b.isAvailable }
func (b *Boat) Reservations() []*reservation.Reservation { return slices.Clone(b.reservations) }
func (b *Boat) Batteries() []*Battery                    { return slices.Clone(b.batteries) }

func (b *Boat) Rename(name string) error {
	n := strings.TrimSpace(name)
	if n == "" {
		return ErrBoatNameRequired
	}
	b.name = n
	return nil
}

func (b *Boat) AddReservation(r *reservation.Reservation) error {
	if r == nil {
		return ErrReservationRequired
	}
	if r.BoatID() != b.id {
		return ErrForeignBooking
	}
	b.reservations = append(b.reservations, r)
	return nil
}

func (b *Boat) AddBattery(battery *Battery) error {
	if battery == nil {
		return ErrBatteryRequired
	}
	if battery.BoatID() != b.id {
		return ErrForeignBattery
	}
	b.batteries = append(b.batteries, battery)
	return nil
}

func (b *Boat) Battery(id uuid.UUID) *Battery {
	for _, battery := range b.batteries {
		if battery.ID() == id {
			return battery
		}
	}
	return nil
}

// FindAvailableBattery returns the first battery, in stored order, that can
// serve the slot. Nil means none can, or the trip already ended at now.
func (b *Boat) FindAvailableBattery(slot *schedule.TimeSlot, now time.Time) (*Battery, error) {
	if slot == nil {
		return nil, schedule.ErrTimeSlotRequired
	}
	if slot.EndAt().Before(now) {
		return nil, nil
	}
	for _, battery := range b.batteries {
		if battery.IsAvailableForTimeSlot(slot) {
			return battery, nil
		}
	}
	return nil, nil
}

// AssignBatteriesToReservations gives a battery to every unassigned active
// reservation inside the horizon, earliest slot first, and returns the
// reservations that received one. Reservations without a free battery stay
// unassigned for the next run.
func (b *Boat) AssignBatteriesToReservations(now time.Time) []*reservation.Reservation {
	pending := make([]*reservation.Reservation, 0, len(b.reservations))
	for _, r := range b.reservations {
		if r.IsDeleted() || r.HasBattery() {
			continue
		}
		if days := r.TimeSlot().DaysFrom(now); days < 0 || days > AssignmentHorizonDays {
			continue
		}
		pending = append(pending, r)
	}
	slices.SortStableFunc(pending, func(x, y *reservation.Reservation) int {
		return x.TimeSlot().Compare(y.TimeSlot())
	})

	assigned := make([]*reservation.Reservation, 0, len(pending))
	for _, r := range pending {
		slot := r.TimeSlot()
		battery, _ := b.FindAvailableBattery(&slot, now)
		if battery == nil {
			continue
		}
		var previousHolder *uuid.UUID
		if prev := battery.ClosestPastReservation(&slot); prev != nil {
			id := prev.UserID
			previousHolder = &id
		}
		if err := r.AssignBattery(battery.ID(), previousHolder, now); err != nil {
			continue
		}
		battery.IncreaseUsageStats()
		_ = battery.AddReservation(r)
		assigned = append(assigned, r)
	}
	return assigned
}

// MarkUnavailable takes the boat out of service and cancels, as an admin,
// every active reservation dated today or later. Batteries held by those
// reservations drop them from their history.
func (b *Boat) MarkUnavailable(now time.Time) []*reservation.Reservation {
	b.isAvailable = false

	canceled := make([]*reservation.Reservation, 0)
	for _, r := range b.reservations {
		if r.IsDeleted() || r.TimeSlot().IsPast(now) {
			continue
		}
		batteryID := r.BatteryID()
		if err := r.Cancel(true, now); err != nil {
			continue
		}
		if batteryID != nil {
			if battery := b.Battery(*batteryID); battery != nil {
				_ = battery.RemoveReservation(r)
			}
		}
		canceled = append(canceled, r)
	}
	return canceled
}

func (b *Boat) MarkAvailable() {
	b.isAvailable = true
}
