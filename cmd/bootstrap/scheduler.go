package bootstrap

import (
	"log/slog"

	"boat-reservation/internal/infra/scheduler"
	"boat-reservation/internal/pkg/config"
	"boat-reservation/internal/usecase/assignment"

	"go.uber.org/fx"
)

var SchedulerModule = fx.Module("scheduler",
	fx.Provide(
		NewScheduler,
	),
	fx.Invoke(startScheduler),
)

func NewScheduler(runner assignment.Runner, cfg config.Config) *scheduler.Scheduler {
	return scheduler.New(runner, scheduler.Options{
		Interval:   cfg.Assignment.Interval,
		RunOnStart: cfg.Assignment.RunOnStart,
	})
}

func startScheduler(lc fx.Lifecycle, s *scheduler.Scheduler, cfg config.Config, logger *slog.Logger) {
	if !cfg.Assignment.Enabled {
		logger.Info("Battery assignment scheduler disabled")
		return
	}
	lc.Append(fx.Hook{
		OnStart: s.Start,
		OnStop:  s.Stop,
	})
}
