package metrics

import (
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Record(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.ObserveHTTPRequest(http.MethodGet, "/api/clients", http.StatusOK, 20*time.Millisecond)
	m.ObserveHTTPRequest(http.MethodGet, "/api/clients", http.StatusOK, 30*time.Millisecond)
	m.ObserveHTTPRequest(http.MethodGet, "", http.StatusNotFound, time.Millisecond)
	m.RecordRenewal("Yearly")
	m.RecordRemindersSent(3)
	m.RecordRemindersSent(0)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "/api/clients", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "unmatched", "404")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.renewals.WithLabelValues("Yearly")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.remindersSent))

	families, err := reg.Gather()
	require.NoError(t, err)
	var names []string
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, names, "gymdesk_http_request_duration_seconds")
	assert.Contains(t, names, "gymdesk_client_renewals_total")
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveHTTPRequest("GET", "/", 200, time.Millisecond)
		m.RecordRenewal("Monthly")
		m.RecordRemindersSent(1)
	})
}

func TestNewRegistry(t *testing.T) {
	reg := NewRegistry()
	families, err := reg.Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, families)
}
