package pipeline

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	outcomeSuccess = "success"
	outcomeFailure = "failure"
)

// Metrics records per-stage latency and outcomes
type Metrics struct {
	duration *prometheus.HistogramVec
	outcomes *prometheus.CounterVec
}

// NewMetrics registers the pipeline collectors on reg
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "meeting_insights",
			Subsystem: "pipeline",
			Name:      "stage_duration_seconds",
			Help:      "Time spent in each provider call.",
			Buckets:   []float64{0.5, 1, 2.5, 5, 10, 20, 40, 60, 120},
		}, []string{"stage"}),
		outcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "meeting_insights",
			Subsystem: "pipeline",
			Name:      "stage_total",
			Help:      "Provider calls by stage and outcome.",
		}, []string{"stage", "outcome"}),
	}
	reg.MustRegister(m.duration, m.outcomes)
	return m
}

func (m *Metrics) observe(stage Stage, elapsed time.Duration, err error) {
	if m == nil {
		return
	}
	outcome := outcomeSuccess
	if err != nil {
		outcome = outcomeFailure
	}
	m.duration.WithLabelValues(string(stage)).Observe(elapsed.Seconds())
	m.outcomes.WithLabelValues(string(stage), outcome).Inc()
}
