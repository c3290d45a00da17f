package metrics

import (
	"net/http"
	"testing"
	"time"

	"github.com/Dan9191/runway-service/internal/runway"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Observe(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.ObserveImpact(runway.RiskRisky)
	m.ObserveImpact(runway.RiskRisky)
	m.ObserveImpact(runway.RiskSafe)
	m.ObserveRequest("/api/companies", http.MethodGet, http.StatusOK, 15*time.Millisecond)
	m.ObserveAlertSent()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.calculations.WithLabelValues("Risky")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.calculations.WithLabelValues("Safe")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("/api/companies", "GET", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.alerts))
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveImpact(runway.RiskDangerous)
		m.ObserveRequest("/", http.MethodGet, http.StatusOK, time.Millisecond)
		m.ObserveAlertSent()
	})
}
