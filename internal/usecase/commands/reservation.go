package commands

import (
	"context"
	"fmt"

	"boat-reservation/internal/domain/reservation"
	"boat-reservation/internal/infra"
	"boat-reservation/internal/pkg/clock"
	"boat-reservation/internal/pkg/errs"
	"boat-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateReservationResult struct {
	ReservationID uuid.UUID
	BoatID        uuid.UUID
}

type ReservationCommands interface {
	Create(ctx context.Context, actor shared.Actor, timeSlotID uuid.UUID) (*CreateReservationResult, error)
	Cancel(ctx context.Context, actor shared.Actor, reservationID uuid.UUID) error
}

type reservationCommandsImpl struct {
	uow      shared.UnitOfWork
	notifier shared.Notifier
	payment  shared.PaymentGateway
	clock    clock.Clock
}

func NewReservationCommands(
	uow shared.UnitOfWork,
	notifier shared.Notifier,
	payment shared.PaymentGateway,
	clk clock.Clock,
) ReservationCommands {
	return &reservationCommandsImpl{
		uow:      uow,
		notifier: notifier,
		payment:  payment,
		clock:    clk,
	}
}

// Create books the first free boat for the slot. The user does not choose
// the boat and no battery is assigned here.
func (c *reservationCommandsImpl) Create(ctx context.Context, actor shared.Actor, timeSlotID uuid.UUID) (*CreateReservationResult, error) {
	now := c.clock.Now()

	var created *reservation.Reservation
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		slot, err := tx.TimeSlots().FindByID(ctx, timeSlotID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrTimeSlotNotFound
			}
			return err
		}

		boat, err := tx.Boats().FindFreeForTimeSlot(ctx, slot.ID())
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrNoBoatAvailable
			}
			return err
		}

		res, err := reservation.NewReservation(actor.CurrentUserID(), boat.ID(), slot, actor.IsAdmin(), now)
		if err != nil {
			return err
		}
		if err := tx.Reservations().Create(ctx, res); err != nil {
			return err
		}
		if err := c.payment.Confirm(ctx, res.ID()); err != nil {
			return errs.Wrap(err, "confirm payment")
		}
		created = res
		return nil
	})
	if err != nil {
		return nil, err
	}

	notifyAfterCommit(ctx, c.notifier, shared.Notification{
		UserID:   created.UserID(),
		Title:    "Reservation confirmed",
		Message:  fmt.Sprintf("Your trip on %s is booked.", describeSlot(created.TimeSlot())),
		Severity: shared.SeverityInfo,
	})

	return &CreateReservationResult{ReservationID: created.ID(), BoatID: created.BoatID()}, nil
}

// Cancel is allowed to the owner and to admins. Only admins may cancel
// inside the lead-time window.
func (c *reservationCommandsImpl) Cancel(ctx context.Context, actor shared.Actor, reservationID uuid.UUID) error {
	now := c.clock.Now()

	var canceled *reservation.Reservation
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := tx.Reservations().FindByID(ctx, reservationID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrReservationNotFound
			}
			return err
		}
		if !actor.CanAccess(res.UserID()) {
			return ErrNotReservationOwner
		}
		if err := res.Cancel(actor.IsAdmin(), now); err != nil {
			return err
		}
		if err := tx.Reservations().Update(ctx, res); err != nil {
			return err
		}
		canceled = res
		return nil
	})
	if err != nil {
		return err
	}

	notifyAfterCommit(ctx, c.notifier, canceledNotice(canceled, actor.CurrentUserID() != canceled.UserID()))
	return nil
}

func canceledNotice(res *reservation.Reservation, byAdmin bool) shared.Notification {
	n := shared.Notification{
		UserID:   res.UserID(),
		Title:    "Reservation canceled",
		Message:  fmt.Sprintf("Your trip on %s was canceled.", describeSlot(res.TimeSlot())),
		Severity: shared.SeverityInfo,
	}
	if byAdmin {
		n.Severity = shared.SeverityWarning
		n.Message = fmt.Sprintf("Your trip on %s was canceled by an administrator.", describeSlot(res.TimeSlot()))
	}
	return n
}
