package commands

import (
	"context"
	"time"

	"boat-reservation/internal/domain/schedule"
	"boat-reservation/internal/infra"
	"boat-reservation/internal/pkg/clock"
	"boat-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

type AddTimeSlotRequest struct {
	CruisePeriodID uuid.UUID
	Date           time.Time
	Start          time.Duration
	End            time.Duration
}

type ScheduleCommands interface {
	CreateCruisePeriod(ctx context.Context, actor shared.Actor, start, end time.Time) (uuid.UUID, error)
	AddTimeSlot(ctx context.Context, actor shared.Actor, req AddTimeSlotRequest) (uuid.UUID, error)
}

type scheduleCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewScheduleCommands(uow shared.UnitOfWork, clk clock.Clock) ScheduleCommands {
	return &scheduleCommandsImpl{uow: uow, clock: clk}
}

func (c *scheduleCommandsImpl) CreateCruisePeriod(ctx context.Context, actor shared.Actor, start, end time.Time) (uuid.UUID, error) {
	if !actor.IsAdmin() {
		return uuid.Nil, ErrAdminRequired
	}
	period, err := schedule.NewCruisePeriod(start, end)
	if err != nil {
		return uuid.Nil, err
	}
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.CruisePeriods().Create(ctx, period)
	})
	if err != nil {
		return uuid.Nil, err
	}
	return period.ID(), nil
}

func (c *scheduleCommandsImpl) AddTimeSlot(ctx context.Context, actor shared.Actor, req AddTimeSlotRequest) (uuid.UUID, error) {
	if !actor.IsAdmin() {
		return uuid.Nil, ErrAdminRequired
	}
	now := c.clock.Now()

	var slotID uuid.UUID
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		period, err := tx.CruisePeriods().FindByID(ctx, req.CruisePeriodID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrCruisePeriodNotFound
			}
			return err
		}

		slot, err := schedule.NewTimeSlot(period, req.Date, req.Start, req.End, now)
		if err != nil {
			return err
		}
		if err := period.AddTimeSlot(slot); err != nil {
			return err
		}
		if err := tx.TimeSlots().Create(ctx, slot); err != nil {
			return err
		}
		slotID = slot.ID()
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return slotID, nil
}
