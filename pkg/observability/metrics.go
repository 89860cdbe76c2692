package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// GatewayMetrics instruments calls to the maze authority.
type GatewayMetrics struct {
	calls    *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewGatewayMetrics creates and registers the gateway collectors.
func NewGatewayMetrics(reg prometheus.Registerer) *GatewayMetrics {
	m := &GatewayMetrics{
		calls: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ariadne_gateway_calls_total",
				Help: "Gateway calls by operation and outcome.",
			},
			[]string{"op", "outcome"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "ariadne_gateway_call_duration_seconds",
				Help:    "Gateway call latency by operation.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"op"},
		),
	}
	reg.MustRegister(m.calls, m.duration)
	return m
}

// Observe records one gateway call.
func (m *GatewayMetrics) Observe(op string, elapsed time.Duration, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.calls.WithLabelValues(op, outcome).Inc()
	m.duration.WithLabelValues(op).Observe(elapsed.Seconds())
}
