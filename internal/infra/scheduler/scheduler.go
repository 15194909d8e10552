package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"boat-reservation/internal/pkg/errs"
	"boat-reservation/internal/usecase/assignment"
)

type Options struct {
	Interval   time.Duration
	RunOnStart bool
}

// Scheduler triggers the battery assignment batch on a fixed interval.
type Scheduler struct {
	runner assignment.Runner
	opts   Options

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

func New(runner assignment.Runner, opts Options) *Scheduler {
	return &Scheduler{runner: runner, opts: opts}
}

// Start returns immediately; runs happen on a background goroutine until
// Stop is called. Starting twice is a no-op.
func (s *Scheduler) Start(ctx context.Context) error {
	if s.opts.Interval <= 0 {
		return errs.New("scheduler interval must be positive")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		return nil
	}

	loopCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	s.cancel = cancel
	s.done = make(chan struct{})

	go s.loop(loopCtx, s.done)

	slog.InfoContext(ctx, "Battery assignment scheduler started",
		slog.Duration("interval", s.opts.Interval),
		slog.Bool("run_on_start", s.opts.RunOnStart))
	return nil
}

// Stop cancels the running batch, if any, and waits for the loop to exit or
// for ctx to expire.
func (s *Scheduler) Stop(ctx context.Context) error {
	s.mu.Lock()
	cancel, done := s.cancel, s.done
	s.cancel, s.done = nil, nil
	s.mu.Unlock()

	if cancel == nil {
		return nil
	}
	cancel()

	select {
	case <-done:
		slog.InfoContext(ctx, "Battery assignment scheduler stopped")
		return nil
	case <-ctx.Done():
		return errs.Wrap(ctx.Err(), "wait for scheduler to stop")
	}
}

func (s *Scheduler) loop(ctx context.Context, done chan struct{}) {
	defer close(done)

	if s.opts.RunOnStart {
		s.runOnce(ctx)
	}

	ticker := time.NewTicker(s.opts.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runOnce(ctx)
		}
	}
}

func (s *Scheduler) runOnce(ctx context.Context) {
	result, err := s.runner.Run(ctx)
	switch {
	case err == nil:
		slog.InfoContext(ctx, "Scheduled battery assignment completed",
			slog.Int("boats", result.Boats),
			slog.Int("assigned", result.Assigned),
			slog.Duration("duration", result.Duration))
	case errs.Is(err, assignment.ErrAlreadyRunning):
		slog.InfoContext(ctx, "Scheduled battery assignment skipped")
	case ctx.Err() != nil:
		// shutting down
	default:
		slog.ErrorContext(ctx, "Scheduled battery assignment failed", slog.String("error", err.Error()))
	}
}
