package metrics

import (
	"time"

	"boat-reservation/internal/pkg/errs"
	"boat-reservation/internal/usecase/assignment"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "battery_assignment"

// Run results reported in the runs_total "result" label.
const (
	ResultSuccess = "success"
	ResultSkipped = "skipped"
	ResultFailure = "failure"
)

type AssignmentMetrics struct {
	runs     *prometheus.CounterVec
	assigned prometheus.Counter
	duration prometheus.Histogram
}

func NewAssignmentMetrics(reg prometheus.Registerer) (*AssignmentMetrics, error) {
	m := &AssignmentMetrics{
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Battery assignment runs by result.",
		}, []string{"result"}),
		assigned: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "assigned_total",
			Help:      "Reservations that received a battery.",
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "run_duration_seconds",
			Help:      "Wall time of one assignment run.",
			Buckets:   prometheus.ExponentialBuckets(0.01, 2, 12),
		}),
	}
	for _, c := range []prometheus.Collector{m.runs, m.assigned, m.duration} {
		if err := reg.Register(c); err != nil {
			return nil, errs.Wrap(err, "register assignment metrics")
		}
	}
	return m, nil
}

func (m *AssignmentMetrics) ObserveRun(duration time.Duration, assigned int, err error) {
	switch {
	case err == nil:
		m.runs.WithLabelValues(ResultSuccess).Inc()
	case errs.Is(err, assignment.ErrAlreadyRunning):
		m.runs.WithLabelValues(ResultSkipped).Inc()
		return
	default:
		m.runs.WithLabelValues(ResultFailure).Inc()
	}
	m.assigned.Add(float64(assigned))
	m.duration.Observe(duration.Seconds())
}
