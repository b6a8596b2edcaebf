// Package monitoring exposes Prometheus metrics for command execution.
package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Command result labels.
const (
	StatusExit    = "exit"
	StatusPending = "pending"
	StatusError   = "error"
)

// Metrics holds all Prometheus metrics. A nil *Metrics is valid and
// records nothing, so callers never need to guard instrumentation sites.
type Metrics struct {
	CommandsTotal   *prometheus.CounterVec
	CommandDuration prometheus.Histogram
	Timeouts        prometheus.Counter
	Truncations     prometheus.Counter
	SessionsActive  prometheus.Gauge
}

// New creates metrics registered on the given registerer.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		CommandsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "shellpilot_commands_total",
			Help: "Commands executed, labeled by result status",
		}, []string{"status"}),
		CommandDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "shellpilot_command_duration_seconds",
			Help:    "Wall-clock duration of execute calls",
			Buckets: prometheus.DefBuckets,
		}),
		Timeouts: factory.NewCounter(prometheus.CounterOpts{
			Name: "shellpilot_command_timeouts_total",
			Help: "Commands that hit the timeout without reaching the prompt",
		}),
		Truncations: factory.NewCounter(prometheus.CounterOpts{
			Name: "shellpilot_output_truncations_total",
			Help: "Results whose output exceeded the token budget",
		}),
		SessionsActive: factory.NewGauge(prometheus.GaugeOpts{
			Name: "shellpilot_sessions_active",
			Help: "Number of live shell sessions",
		}),
	}
}

// ObserveCommand records one execute call.
func (m *Metrics) ObserveCommand(status string, d time.Duration) {
	if m == nil {
		return
	}
	m.CommandsTotal.WithLabelValues(status).Inc()
	m.CommandDuration.Observe(d.Seconds())
	if status == StatusPending {
		m.Timeouts.Inc()
	}
}

// ObserveTruncation records a token-budget truncation.
func (m *Metrics) ObserveTruncation() {
	if m == nil {
		return
	}
	m.Truncations.Inc()
}

// SessionStarted records a new live session.
func (m *Metrics) SessionStarted() {
	if m == nil {
		return
	}
	m.SessionsActive.Inc()
}

// SessionClosed records a session teardown.
func (m *Metrics) SessionClosed() {
	if m == nil {
		return
	}
	m.SessionsActive.Dec()
}
