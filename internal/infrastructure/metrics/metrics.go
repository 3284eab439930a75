// Package metrics exposes Prometheus instruments for the HTTP surface and the
// membership workflows.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const namespace = "gymdesk"

// Metrics is safe to use as a nil pointer; every recorder is then a no-op.
type Metrics struct {
	httpRequests  *prometheus.CounterVec
	httpDuration  *prometheus.HistogramVec
	renewals      *prometheus.CounterVec
	remindersSent prometheus.Counter
}

// NewRegistry returns a registry carrying the Go runtime and process
// collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

// New registers the instruments with registerer, or the default registerer
// when nil.
func New(registerer prometheus.Registerer) *Metrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	httpRequests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "HTTP requests by method, route and status code.",
	}, []string{"method", "route", "status"})
	httpDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by method and route.",
		Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
	}, []string{"method", "route"})
	renewals := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "client_renewals_total",
		Help:      "Membership renewals by plan type.",
	}, []string{"plan_type"})
	remindersSent := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reminders_sent_total",
		Help:      "Expiry reminder emails sent.",
	})

	registerer.MustRegister(httpRequests, httpDuration, renewals, remindersSent)

	return &Metrics{
		httpRequests:  httpRequests,
		httpDuration:  httpDuration,
		renewals:      renewals,
		remindersSent: remindersSent,
	}
}

// ObserveHTTPRequest records one finished request. route is the matched route
// template, not the raw path.
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	if route == "" {
		route = "unmatched"
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func (m *Metrics) RecordRenewal(planType string) {
	if m == nil {
		return
	}
	m.renewals.WithLabelValues(planType).Inc()
}

func (m *Metrics) RecordRemindersSent(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.remindersSent.Add(float64(n))
}
