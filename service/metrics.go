package service

import (
	"mydirectory/domain"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the directory's Prometheus collectors.
type Metrics struct {
	requests      *prometheus.CounterVec
	registrations prometheus.Gauge
	auditDropped  prometheus.Counter
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "directory",
			Name:      "requests_total",
			Help:      "Protocol requests handled, by transport, command and status code.",
		}, []string{"transport", "command", "status"}),
		registrations: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "directory",
			Name:      "registrations",
			Help:      "Registrations held by the registry after the last operation.",
		}),
		auditDropped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "directory",
			Name:      "audit_dropped_total",
			Help:      "Audit events dropped because the audit buffer was full.",
		}),
	}
	NilPanic(reg, "service.metrics.go: registerer is required").MustRegister(m.requests, m.registrations, m.auditDropped)
	return m
}

// ObserveRequest counts one handled protocol request.
func (m *Metrics) ObserveRequest(transport domain.Origin, command string, status Status) {
	m.requests.WithLabelValues(string(transport), command, string(status)).Inc()
}

// SetRegistrations records the number of registrations currently held.
func (m *Metrics) SetRegistrations(n int) {
	m.registrations.Set(float64(n))
}

// AuditDropped counts one dropped audit event.
func (m *Metrics) AuditDropped() {
	m.auditDropped.Inc()
}
