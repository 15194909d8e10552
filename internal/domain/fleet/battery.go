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

// MinRechargeInterval is the minimum distance between the starts of two
// consecutive uses of the same battery.
const MinRechargeInterval = 4 * time.Hour

var (
	ErrBatteryTypeRequired = errs.Define("battery type cannot be empty", errs.ErrInvalidArgument)
	ErrMentorRequired      = errs.Define("battery mentor is required", errs.ErrInvalidArgument)
	ErrBoatRequired        = errs.Define("battery must belong to a boat", errs.ErrInvalidArgument)
	ErrReservationRequired = errs.Define("reservation is required", errs.ErrInvalidArgument)
	ErrUsageCountNegative  = errs.Define("UsageCount cannot be decreased below zero", errs.ErrInvalidArgument)
)

// Usage is one entry of a battery's history. It is a non-owning copy of the
// reservation fields that temporal lookups need.
type Usage struct {
	ReservationID uuid.UUID
	UserID        uuid.UUID
	TimeSlot      schedule.TimeSlot
}

func UsageOf(r *reservation.Reservation) Usage {
	return Usage{ReservationID: r.ID(), UserID: r.UserID(), TimeSlot: r.TimeSlot()}
}

type Battery struct {
	id          uuid.UUID
	boatID      uuid.UUID
	mentorID    uuid.UUID
	batteryType string
	usageCount  int
	history     []Usage
}

func NewBattery(boatID, mentorID uuid.UUID, batteryType string) (*Battery, error) {
	b := &Battery{id: uuid.New()}
	if boatID == uuid.Nil {
		return nil, ErrBoatRequired
	}
	b.boatID = boatID
	if err := b.SetMentor(mentorID); err != nil {
		return nil, err
	}
	if err := b.SetType(batteryType); err != nil {
		return nil, err
	}
	return b, nil
}

func ReconstructBattery(id, boatID, mentorID uuid.UUID, batteryType string, usageCount int, history []Usage) *Battery {
	return &Battery{
		id:          id,
		boatID:      boatID,
		mentorID:    mentorID,
		batteryType: batteryType,
		usageCount:  usageCount,
		history:     slices.Clone(history),
	}
}

func (b *Battery) ID() uuid.UUID       { return b.id }
func (b *Battery) BoatID() uuid.UUID   { return b.boatID }
func (b *Battery) MentorID() uuid.UUID { return b.mentorID }
func (b *Battery) Type() string        { return b.batteryType }
func (b *Battery) UsageCount() int     { return b.usageCount }
func (b *Battery) History() []Usage    { return slices.Clone(b.history) }

func (b *Battery) SetType(batteryType string) error {
	t := strings.TrimSpace(batteryType)
	if t == "" {
		return ErrBatteryTypeRequired
	}
	b.batteryType = t
	return nil
}

func (b *Battery) SetMentor(mentorID uuid.UUID) error {
	if mentorID == uuid.Nil {
		return ErrMentorRequired
	}
	b.mentorID = mentorID
	return nil
}

// AddReservation records a use of the battery. Order is not kept; lookups
// sort on demand.
func (b *Battery) AddReservation(r *reservation.Reservation) error {
	if r == nil {
		return ErrReservationRequired
	}
	b.history = append(b.history, UsageOf(r))
	return nil
}

// RemoveReservation is a no-op when the reservation is not in the history.
func (b *Battery) RemoveReservation(r *reservation.Reservation) error {
	if r == nil {
		return ErrReservationRequired
	}
	b.history = slices.DeleteFunc(b.history, func(u Usage) bool {
		return u.ReservationID == r.ID()
	})
	return nil
}

// IsAvailableForTimeSlot checks the recharge interval against the nearest
// use starting before the slot and the nearest use starting at or after it,
// and rejects the slot while any use still overlaps it. A missing neighbour
// leaves that side unconstrained.
func (b *Battery) IsAvailableForTimeSlot(slot *schedule.TimeSlot) bool {
	if slot == nil {
		return false
	}
	startAt, endAt := slot.StartAt(), slot.EndAt()
	var prev, next *Usage
	for i := range b.history {
		u := &b.history[i]
		at := u.TimeSlot.StartAt()
		if at.Before(endAt) && startAt.Before(u.TimeSlot.EndAt()) {
			return false
		}
		if at.Before(startAt) {
			if prev == nil || at.After(prev.TimeSlot.StartAt()) {
				prev = u
			}
			continue
		}
		if next == nil || at.Before(next.TimeSlot.StartAt()) {
			next = u
		}
	}
	if prev != nil && startAt.Sub(prev.TimeSlot.StartAt()) < MinRechargeInterval {
		return false
	}
	if next != nil && next.TimeSlot.StartAt().Sub(startAt) < MinRechargeInterval {
		return false
	}
	return true
}

// ClosestPastReservation returns the use with the latest (Date, Start) not
// after the slot's. When every use lies after the slot the earliest one is
// returned instead. Nil means the battery has never been used.
func (b *Battery) ClosestPastReservation(slot *schedule.TimeSlot) *Usage {
	if slot == nil || len(b.history) == 0 {
		return nil
	}
	sorted := slices.Clone(b.history)
	slices.SortStableFunc(sorted, func(x, y Usage) int {
		return x.TimeSlot.StartAt().Compare(y.TimeSlot.StartAt())
	})
	startAt := slot.StartAt()
	for i := len(sorted) - 1; i >= 0; i-- {
		if !sorted[i].TimeSlot.StartAt().After(startAt) {
			return &sorted[i]
		}
	}
	return &sorted[0]
}

func (b *Battery) IncreaseUsageStats() {
	b.usageCount++
}

func (b *Battery) DecreaseUsageStats() error {
	if b.usageCount == 0 {
		return ErrUsageCountNegative
	}
	b.usageCount--
	return nil
}
