// Package metrics exposes Prometheus collectors for the API.
package metrics

import (
	"strconv"
	"time"

	"github.com/Dan9191/runway-service/internal/runway"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the service's collectors. A nil *Metrics records nothing.
type Metrics struct {
	requests     *prometheus.CounterVec
	duration     *prometheus.HistogramVec
	calculations *prometheus.CounterVec
	alerts       prometheus.Counter
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "runway",
			Name:      "http_requests_total",
			Help:      "HTTP requests by route, method and status.",
		}, []string{"route", "method", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "runway",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),
		calculations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "runway",
			Name:      "hiring_impact_calculations_total",
			Help:      "Hiring impact calculations by resulting risk level.",
		}, []string{"risk_level"}),
		alerts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "runway",
			Name:      "alerts_sent_total",
			Help:      "Runway alert emails sent.",
		}),
	}
	reg.MustRegister(m.requests, m.duration, m.calculations, m.alerts)
	return m
}

// ObserveRequest records one served HTTP request.
func (m *Metrics) ObserveRequest(route, method string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.duration.WithLabelValues(route, method).Observe(elapsed.Seconds())
}

// ObserveImpact records one hiring impact calculation.
func (m *Metrics) ObserveImpact(risk runway.RiskLevel) {
	if m == nil {
		return
	}
	m.calculations.WithLabelValues(risk.String()).Inc()
}

// ObserveAlertSent records one delivered runway alert.
func (m *Metrics) ObserveAlertSent() {
	if m == nil {
		return
	}
	m.alerts.Inc()
}
