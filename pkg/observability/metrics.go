package observability

import (
	"github.com/aretw0/arkhe/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics records handover calls as Prometheus metrics.
type Metrics struct {
	Executions *prometheus.CounterVec
	Duration   *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them with reg.
// A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Executions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "arkhe_handover_executions_total",
				Help: "Total number of handover executions",
			},
			[]string{"handover", "protocol"},
		),
		Duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "arkhe_handover_duration_seconds",
				Help:    "Duration of handover mapper calls",
				Buckets: prometheus.ExponentialBuckets(1e-6, 10, 7),
			},
			[]string{"handover"},
		),
	}
	if reg != nil {
		reg.MustRegister(m.Executions, m.Duration)
	}
	return m
}

// Hooks returns hooks feeding m.
func (m *Metrics) Hooks() domain.HandoverHooks {
	return domain.HandoverHooks{
		OnExecute: func(e *domain.HandoverEvent) {
			m.Executions.WithLabelValues(e.HandoverID, e.Protocol.String()).Inc()
		},
		OnReturn: func(e *domain.HandoverEvent) {
			m.Duration.WithLabelValues(e.HandoverID).Observe(e.Duration.Seconds())
		},
	}
}
