package reservation

import (
	"fmt"
	"time"

	"boat-reservation/internal/domain/schedule"
	"boat-reservation/internal/pkg/errs"

	"github.com/google/uuid"
)

// MinDaysBetweenReservation is the lead time in days that non-admins need
// both to book and to cancel.
const MinDaysBetweenReservation = 2

var (
	ErrAlreadyCanceled = errs.Define("reservation is already canceled", errs.ErrInvalidOperation)
	ErrCancelPast      = errs.Define("reservations in the past cannot be canceled", errs.ErrInvalidOperation)
	ErrCancelTooLate   = errs.Define(
		fmt.Sprintf("Reservations can only be canceled at least %d days before the reservation date unless canceled by an admin.", MinDaysBetweenReservation),
		errs.ErrInvalidOperation,
	)
	ErrBookPast    = errs.Define("reservations cannot be made for past dates", errs.ErrInvalidOperation)
	ErrBookTooLate = errs.Define(
		fmt.Sprintf("Reservations can only be made at least %d days before the reservation date unless made by an admin.", MinDaysBetweenReservation),
		errs.ErrInvalidOperation,
	)
	ErrBatteryAlreadyAssigned = errs.Define("reservation already has a battery", errs.ErrInvalidOperation)
	ErrAssignCanceled         = errs.Define("cannot assign a battery to a canceled reservation", errs.ErrInvalidOperation)
	ErrIDRequired             = errs.Define("user and boat are required", errs.ErrInvalidArgument)

	// Raised by storage when a uniqueness index rejects the reservation.
	ErrBoatAlreadyReserved = errs.Define("boat is already reserved for this time slot", errs.ErrConflict)
	ErrUserAlreadyBooked   = errs.Define("user has already booked this time slot", errs.ErrConflict)
)

// Reservation binds a user, a boat and a time slot. The battery and the
// previous battery holder are filled in later by the assignment batch.
// Users, boats and batteries are referenced by id only.
type Reservation struct {
	id               uuid.UUID
	userID           uuid.UUID
	boatID           uuid.UUID
	timeSlot         schedule.TimeSlot
	batteryID        *uuid.UUID
	previousHolderID *uuid.UUID
	isDeleted        bool
	createdAt        time.Time
	updatedAt        time.Time
}

func NewReservation(userID, boatID uuid.UUID, slot *schedule.TimeSlot, isAdmin bool, now time.Time) (*Reservation, error) {
	if slot == nil {
		return nil, schedule.ErrTimeSlotRequired
	}
	if userID == uuid.Nil || boatID == uuid.Nil {
		return nil, ErrIDRequired
	}
	days := slot.DaysFrom(now)
	if days < 0 {
		return nil, ErrBookPast
	}
	if !isAdmin && days < MinDaysBetweenReservation {
		return nil, ErrBookTooLate
	}
	return &Reservation{
		id:        uuid.New(),
		userID:    userID,
		boatID:    boatID,
		timeSlot:  *slot,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructReservation(
	id, userID, boatID uuid.UUID,
	slot schedule.TimeSlot,
	batteryID, previousHolderID *uuid.UUID,
	isDeleted bool,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:               id,
		userID:           userID,
		boatID:           boatID,
		timeSlot:         slot,
		batteryID:        batteryID,
		previousHolderID: previousHolderID,
		isDeleted:        isDeleted,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}
}

// Cancel moves an active reservation to the terminal canceled state and
// releases its battery. Usage statistics and history entries elsewhere are
// left untouched.
func (r *Reservation) Cancel(isAdmin bool, now time.Time) error {
	if r.isDeleted {
		return ErrAlreadyCanceled
	}
	days := r.timeSlot.DaysFrom(now)
	if days < 0 {
		return ErrCancelPast
	}
	if !isAdmin && days < MinDaysBetweenReservation {
		return ErrCancelTooLate
	}
	r.isDeleted = true
	r.batteryID = nil
	r.updatedAt = now
	return nil
}

func (r *Reservation) AssignBattery(batteryID uuid.UUID, previousHolderID *uuid.UUID, now time.Time) error {
	if r.isDeleted {
		return ErrAssignCanceled
	}
	if r.batteryID != nil {
		return ErrBatteryAlreadyAssigned
	}
	r.batteryID = &batteryID
	r.previousHolderID = previousHolderID
	r.updatedAt = now
	return nil
}

func (r *Reservation) HasBattery() bool { return r.batteryID != nil }
func (r *Reservation) IsActive() bool   { return !r.isDeleted }

func (r *Reservation) ID() uuid.UUID                { return r.id }
func (r *Reservation) UserID() uuid.UUID            { return r.userID }
func (r *Reservation) BoatID() uuid.UUID            { return r.boatID }
func (r *Reservation) TimeSlot() schedule.TimeSlot  { return r.timeSlot }
func (r *Reservation) BatteryID() *uuid.UUID        { return r.batteryID }
func (r *Reservation) PreviousHolderID() *uuid.UUID { return r.previousHolderID }
func (r *Reservation) IsDeleted() bool              { return r.isDeleted }
func (r *Reservation) CreatedAt() time.Time         { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time         { return r.updatedAt }
