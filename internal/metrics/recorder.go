// Package metrics holds the Prometheus instrumentation for the board client
// and the backend.
package metrics

import (
	"sync"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"

	"github.com/iudanet/gophotel/internal/optimistic"
)

const namespace = "gophotel"

// MutationRecorder implements optimistic.Recorder using Prometheus metrics
type MutationRecorder struct {
	once      sync.Once
	duration  *prom.HistogramVec
	outcomes  *prom.CounterVec
	undoTotal *prom.CounterVec
}

var _ optimistic.Recorder = (*MutationRecorder)(nil)

// NewMutationRecorder constructs and registers the mutation metrics.
// A nil registry gets a private one.
func NewMutationRecorder(reg *prom.Registry) *MutationRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	mr := &MutationRecorder{}
	mr.once.Do(func() {
		mr.duration = prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: namespace,
			Subsystem: "board",
			Name:      "mutation_duration_seconds",
			Help:      "Time from local apply to remote confirmation or revert",
			Buckets:   prom.DefBuckets,
		}, []string{"kind"})
		mr.outcomes = prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Subsystem: "board",
			Name:      "mutations_total",
			Help:      "Optimistic mutations by kind and final outcome",
		}, []string{"kind", "outcome"})
		mr.undoTotal = prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Subsystem: "board",
			Name:      "undo_total",
			Help:      "Undo invocations by mutation kind",
		}, []string{"kind"})
		reg.MustRegister(mr.duration, mr.outcomes, mr.undoTotal)
	})
	return mr
}

func (m *MutationRecorder) ObserveMutation(kind optimistic.Kind, outcome optimistic.Outcome, elapsed time.Duration) {
	if m == nil || m.outcomes == nil {
		return
	}
	m.outcomes.WithLabelValues(string(kind), outcome.String()).Inc()
	// Отклоненные до удаленного вызова не попадают в гистограмму
	if outcome == optimistic.OutcomeRejected || outcome == optimistic.OutcomeSkipped {
		return
	}
	m.duration.WithLabelValues(string(kind)).Observe(elapsed.Seconds())
}

func (m *MutationRecorder) ObserveUndo(kind optimistic.Kind) {
	if m == nil || m.undoTotal == nil {
		return
	}
	m.undoTotal.WithLabelValues(string(kind)).Inc()
}
