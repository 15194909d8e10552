package commands

import (
	"context"

	"boat-reservation/internal/domain/reservation"
	"boat-reservation/internal/domain/schedule"
	"boat-reservation/internal/infra"
	"boat-reservation/internal/pkg/clock"
	"boat-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

type SetAvailabilityResult struct {
	BoatID      uuid.UUID
	IsAvailable bool
	Canceled    int
}

type BoatCommands interface {
	SetAvailability(ctx context.Context, actor shared.Actor, boatID uuid.UUID, available bool) (*SetAvailabilityResult, error)
}

type boatCommandsImpl struct {
	uow      shared.UnitOfWork
	notifier shared.Notifier
	clock    clock.Clock
}

func NewBoatCommands(uow shared.UnitOfWork, notifier shared.Notifier, clk clock.Clock) BoatCommands {
	return &boatCommandsImpl{uow: uow, notifier: notifier, clock: clk}
}

// SetAvailability takes a boat in or out of service. Taking it out cancels
// every active reservation from today onwards and frees their batteries.
func (c *boatCommandsImpl) SetAvailability(ctx context.Context, actor shared.Actor, boatID uuid.UUID, available bool) (*SetAvailabilityResult, error) {
	if !actor.IsAdmin() {
		return nil, ErrAdminRequired
	}
	now := c.clock.Now()

	var canceled []*reservation.Reservation
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		canceled = nil

		boat, err := tx.Boats().FindByIDWithReservationsFrom(ctx, boatID, schedule.DateOf(now))
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrBoatNotFound
			}
			return err
		}

		if available {
			boat.MarkAvailable()
		} else {
			canceled = boat.MarkUnavailable(now)
			for _, res := range canceled {
				if err := tx.Reservations().Update(ctx, res); err != nil {
					return err
				}
			}
		}
		return tx.Boats().UpdateAvailability(ctx, boat)
	})
	if err != nil {
		return nil, err
	}

	notices := make([]shared.Notification, 0, len(canceled))
	for _, res := range canceled {
		notices = append(notices, canceledNotice(res, true))
	}
	notifyAfterCommit(ctx, c.notifier, notices...)

	return &SetAvailabilityResult{BoatID: boatID, IsAvailable: available, Canceled: len(canceled)}, nil
}
