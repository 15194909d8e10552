//go:build unit || e2e

package builder

import (
	"time"

	"boat-reservation/internal/domain/reservation"
	"boat-reservation/internal/domain/schedule"
	reqdto "boat-reservation/internal/handler/dto/request"
	"boat-reservation/internal/usecase/queries"

	"github.com/google/uuid"
)

// Today is the fixed reference day used across unit tests.
var Today = time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

// Now is nine in the morning of Today.
var Now = Today.Add(9 * time.Hour)

// Slot builds a standalone slot offsetDays after Today.
func Slot(offsetDays int, start, end time.Duration) *schedule.TimeSlot {
	return schedule.ReconstructTimeSlot(uuid.New(), uuid.New(), Today.AddDate(0, 0, offsetDays), start, end)
}

type ReservationBuilder struct {
	ID               uuid.UUID
	UserID           uuid.UUID
	BoatID           uuid.UUID
	TimeSlot         *schedule.TimeSlot
	BatteryID        *uuid.UUID
	PreviousHolderID *uuid.UUID
	IsDeleted        bool
	IsAdmin          bool
	Now              time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		ID:       uuid.New(),
		UserID:   uuid.New(),
		BoatID:   uuid.New(),
		TimeSlot: Slot(5, 10*time.Hour, 13*time.Hour),
		Now:      Now,
	}
}

func (r *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(r)
	return r
}

func (r *ReservationBuilder) OnDay(offsetDays int, start, end time.Duration) *ReservationBuilder {
	r.TimeSlot = Slot(offsetDays, start, end)
	return r
}

func (r *ReservationBuilder) ForBoat(boatID uuid.UUID) *ReservationBuilder {
	r.BoatID = boatID
	return r
}

// Build methods
func (r *ReservationBuilder) BuildDomain() (*reservation.Reservation, error) {
	return reservation.NewReservation(r.UserID, r.BoatID, r.TimeSlot, r.IsAdmin, r.Now)
}

func (r *ReservationBuilder) BuildReconstructed() *reservation.Reservation {
	return reservation.ReconstructReservation(
		r.ID, r.UserID, r.BoatID,
		*r.TimeSlot,
		r.BatteryID, r.PreviousHolderID,
		r.IsDeleted,
		r.Now, r.Now,
	)
}

func (r *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{TimeSlotID: r.TimeSlot.ID()}
}

func (r *ReservationBuilder) BuildView() *queries.ReservationView {
	return &queries.ReservationView{
		ID:               r.ID,
		UserID:           r.UserID,
		BoatID:           r.BoatID,
		BoatName:         "Sea Breeze",
		TimeSlotID:       r.TimeSlot.ID(),
		Date:             r.TimeSlot.Date(),
		Start:            r.TimeSlot.StartText(),
		End:              r.TimeSlot.EndText(),
		BatteryID:        r.BatteryID,
		PreviousHolderID: r.PreviousHolderID,
		IsDeleted:        r.IsDeleted,
		CreatedAt:        r.Now,
		UpdatedAt:        r.Now,
	}
}

func (r *ReservationBuilder) BuildListItem() *queries.ReservationListItem {
	return &queries.ReservationListItem{
		ID:        r.ID,
		BoatID:    r.BoatID,
		BoatName:  "Sea Breeze",
		Date:      r.TimeSlot.Date(),
		Start:     r.TimeSlot.StartText(),
		End:       r.TimeSlot.EndText(),
		StartAt:   r.TimeSlot.StartAt(),
		BatteryID: r.BatteryID,
		IsDeleted: r.IsDeleted,
	}
}
