package assignment

import (
	"context"
	"log/slog"
	"time"

	"boat-reservation/internal/domain/fleet"
	"boat-reservation/internal/domain/reservation"
	"boat-reservation/internal/domain/schedule"
	"boat-reservation/internal/domain/user"
	"boat-reservation/internal/pkg/clock"
	"boat-reservation/internal/pkg/errs"
	"boat-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

const LockKey = "battery-assignment"

var ErrAlreadyRunning = errs.Define("battery assignment is already running", errs.ErrConflict)

// TimeInfo pins the clock for one run.
type TimeInfo struct {
	Now              time.Time
	Today            time.Time
	CurrentTime      time.Duration
	ThreeDaysFromNow time.Time
}

func NewTimeInfo(now time.Time) TimeInfo {
	today := schedule.DateOf(now)
	return TimeInfo{
		Now:              now,
		Today:            today,
		CurrentTime:      schedule.TimeOfDay(now),
		ThreeDaysFromNow: today.AddDate(0, 0, fleet.AssignmentHorizonDays),
	}
}

type Result struct {
	StartedAt time.Time
	Boats     int
	Assigned  int
	Notified  int
	Duration  time.Duration
}

type Runner interface {
	Run(ctx context.Context) (*Result, error)
}

// Recorder receives one observation per finished run.
type Recorder interface {
	ObserveRun(duration time.Duration, assigned int, err error)
}

type Options struct {
	LockTTL             time.Duration
	HistoryLookbackDays int
}

type Service struct {
	uow      shared.UnitOfWork
	locker   shared.Locker
	notifier shared.Notifier
	recorder Recorder
	clock    clock.Clock
	opts     Options
}

func NewService(
	uow shared.UnitOfWork,
	locker shared.Locker,
	notifier shared.Notifier,
	recorder Recorder,
	clk clock.Clock,
	opts Options,
) *Service {
	return &Service{
		uow:      uow,
		locker:   locker,
		notifier: notifier,
		recorder: recorder,
		clock:    clk,
		opts:     opts,
	}
}

// Run assigns batteries to every pending reservation inside the horizon.
// All assignments commit together or not at all; notifications go out after
// the commit and never fail the run.
func (s *Service) Run(ctx context.Context) (result *Result, err error) {
	info := NewTimeInfo(s.clock.Now())
	result = &Result{StartedAt: info.Now}
	defer func() {
		result.Duration = s.clock.Now().Sub(info.Now)
		if !errs.Is(err, ErrAlreadyRunning) {
			s.recorder.ObserveRun(result.Duration, result.Assigned, err)
		}
	}()

	release, err := s.locker.Acquire(ctx, LockKey, s.opts.LockTTL)
	if err != nil {
		if errs.Is(err, shared.ErrLockHeld) {
			slog.InfoContext(ctx, "battery assignment skipped, another run holds the lock")
			return result, ErrAlreadyRunning
		}
		return result, errs.Wrap(err, "acquire assignment lock")
	}
	defer func() {
		if rerr := release(context.WithoutCancel(ctx)); rerr != nil {
			slog.WarnContext(ctx, "failed to release assignment lock", slog.String("error", rerr.Error()))
		}
	}()

	slog.InfoContext(ctx, "battery assignment started",
		slog.Time("today", info.Today),
		slog.Time("horizon_end", info.ThreeDaysFromNow))

	var notices []shared.BatteryAssignmentNotice
	err = s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		notices = nil
		result.Boats, result.Assigned = 0, 0

		historyFrom := info.Today.AddDate(0, 0, -s.opts.HistoryLookbackDays)
		boats, err := tx.Boats().FindWithPendingAssignments(ctx, info.Today, info.ThreeDaysFromNow, historyFrom)
		if err != nil {
			return err
		}
		result.Boats = len(boats)

		type assigned struct {
			boat *fleet.Boat
			res  *reservation.Reservation
		}
		var changed []assigned
		for _, boat := range boats {
			for _, res := range boat.AssignBatteriesToReservations(info.Now) {
				changed = append(changed, assigned{boat: boat, res: res})
			}
		}

		touched := make(map[uuid.UUID]*fleet.Battery)
		userIDs := make([]uuid.UUID, 0, len(changed)*3)
		for _, c := range changed {
			if err := tx.Reservations().Update(ctx, c.res); err != nil {
				return err
			}
			battery := c.boat.Battery(*c.res.BatteryID())
			touched[battery.ID()] = battery
			userIDs = append(userIDs, c.res.UserID(), battery.MentorID())
			if prev := c.res.PreviousHolderID(); prev != nil {
				userIDs = append(userIDs, *prev)
			}
		}
		for _, battery := range touched {
			if err := tx.Batteries().UpdateUsage(ctx, battery); err != nil {
				return err
			}
		}
		result.Assigned = len(changed)
		if len(changed) == 0 {
			return nil
		}

		users, err := tx.Users().FindByIDs(ctx, userIDs)
		if err != nil {
			return err
		}
		for _, c := range changed {
			notices = append(notices, buildNotice(c.boat, c.res, users))
		}
		return nil
	})
	if err != nil {
		slog.ErrorContext(ctx, "battery assignment failed", slog.String("error", err.Error()))
		return result, err
	}

	if len(notices) > 0 {
		if nerr := s.notifier.NotifyBatteryAssignments(ctx, notices); nerr != nil {
			slog.WarnContext(ctx, "battery assignment notifications failed", slog.String("error", nerr.Error()))
		} else {
			result.Notified = len(notices)
		}
	}

	slog.InfoContext(ctx, "battery assignment finished",
		slog.Int("boats", result.Boats),
		slog.Int("assigned", result.Assigned),
		slog.Int("notified", result.Notified))
	return result, nil
}

func buildNotice(boat *fleet.Boat, res *reservation.Reservation, users map[uuid.UUID]*user.User) shared.BatteryAssignmentNotice {
	battery := boat.Battery(*res.BatteryID())
	slot := res.TimeSlot()
	n := shared.BatteryAssignmentNotice{
		ReservationID:    res.ID(),
		UserID:           res.UserID(),
		BoatName:         boat.Name(),
		Date:             slot.Date(),
		Start:            slot.StartText(),
		End:              slot.EndText(),
		BatteryID:        battery.ID(),
		BatteryType:      battery.Type(),
		MentorID:         battery.MentorID(),
		PreviousHolderID: res.PreviousHolderID(),
	}
	if mentor, ok := users[battery.MentorID()]; ok {
		n.MentorName = mentor.DisplayName()
	}
	if prev := res.PreviousHolderID(); prev != nil {
		if holder, ok := users[*prev]; ok {
			n.PreviousHolderName = holder.DisplayName()
		}
	}
	return n
}
