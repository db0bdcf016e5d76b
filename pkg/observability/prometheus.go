package observability

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// QueryMetrics collects query and HTTP metrics in a private Prometheus
// registry. Query latencies are forwarded to CloudWatch when configured.
type QueryMetrics struct {
	registry        *prometheus.Registry
	counters        map[string]*prometheus.CounterVec
	queryDuration   *prometheus.HistogramVec
	requests        *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	cloud           *Metrics
}

// NewQueryMetrics creates and registers all collectors. cloud may be nil.
func NewQueryMetrics(namespace string, cloud *Metrics) *QueryMetrics {
	m := &QueryMetrics{
		registry: prometheus.NewRegistry(),
		counters: map[string]*prometheus.CounterVec{
			"query_count": prometheus.NewCounterVec(prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "queries_total",
				Help:      "Queries dispatched, by query type.",
			}, []string{"query"}),
			"query_success": prometheus.NewCounterVec(prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "query_success_total",
				Help:      "Queries that returned a result, by query type.",
			}, []string{"query"}),
			"query_errors": prometheus.NewCounterVec(prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "query_errors_total",
				Help:      "Queries that returned an error, by query type.",
			}, []string{"query"}),
		},
		queryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "query_duration_seconds",
			Help:      "Query handling time, by query type.",
			Buckets:   []float64{.00005, .0001, .00025, .0005, .001, .0025, .005, .01, .05},
		}, []string{"query"}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests, by method, route pattern and status.",
		}, []string{"method", "route", "status"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency, by method and route pattern.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		cloud: cloud,
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.queryDuration,
		m.requests,
		m.requestDuration,
	)
	for _, c := range m.counters {
		m.registry.MustRegister(c)
	}

	return m
}

// Increment bumps a named query counter. Unknown names are ignored.
func (m *QueryMetrics) Increment(metric, label string) {
	if c, ok := m.counters[metric]; ok {
		c.WithLabelValues(label).Inc()
	}
}

// StartTimer starts timing a query; call Stop on the result when done
func (m *QueryMetrics) StartTimer(metric, label string) *Timer {
	return &Timer{
		start: time.Now(),
		observe: func(d time.Duration) {
			if metric != "query_duration" {
				return
			}
			m.queryDuration.WithLabelValues(label).Observe(d.Seconds())
			m.cloud.RecordLatency(context.Background(), label, d)
		},
	}
}

// ObserveRequest records a completed HTTP request
func (m *QueryMetrics) ObserveRequest(method, route string, status int, d time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	m.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.requestDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

// Handler serves the registry in the Prometheus exposition format
func (m *QueryMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Timer measures a single operation
type Timer struct {
	start   time.Time
	observe func(time.Duration)
}

// Stop records the elapsed time
func (t *Timer) Stop() {
	t.observe(time.Since(t.start))
}
