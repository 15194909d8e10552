package repository

import (
	"context"

	"boat-reservation/internal/domain/reservation"
	"boat-reservation/internal/infra"
	"boat-reservation/internal/infra/pgquery"
	"boat-reservation/internal/infra/repository/converter"

	"github.com/google/uuid"
)

// Partial unique indexes over active reservations.
const (
	ConstraintBoatTimeSlotActive = "reservations_boat_time_slot_active_key"
	ConstraintUserTimeSlotActive = "reservations_user_time_slot_active_key"
)

type ReservationQueries interface {
	CreateReservation(ctx context.Context, db pgquery.DBTX, arg pgquery.CreateReservationParams) error
	GetReservationForUpdate(ctx context.Context, db pgquery.DBTX, id uuid.UUID) (pgquery.ReservationRow, error)
	UpdateReservation(ctx context.Context, db pgquery.DBTX, arg pgquery.UpdateReservationParams) error
}

type ReservationRepository struct {
	queries ReservationQueries
	db      pgquery.DBTX
}

func NewReservationRepository(queries ReservationQueries, db pgquery.DBTX) *ReservationRepository {
	return &ReservationRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) error {
	err := r.queries.CreateReservation(ctx, r.db, converter.ReservationToCreateParams(res))
	if err == nil {
		return nil
	}

	wrapped := infra.WrapRepoErr("failed to create reservation", err)
	switch infra.ConstraintOf(wrapped) {
	case ConstraintBoatTimeSlotActive:
		return reservation.ErrBoatAlreadyReserved
	case ConstraintUserTimeSlotActive:
		return reservation.ErrUserAlreadyBooked
	}
	return wrapped
}

func (r *ReservationRepository) FindByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	row, err := r.queries.GetReservationForUpdate(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find reservation", err)
	}
	return converter.ReservationToDomain(row), nil
}

func (r *ReservationRepository) Update(ctx context.Context, res *reservation.Reservation) error {
	if err := r.queries.UpdateReservation(ctx, r.db, converter.ReservationToUpdateParams(res)); err != nil {
		return infra.WrapRepoErr("failed to update reservation", err)
	}
	return nil
}
