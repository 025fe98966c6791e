package server

import (
	"context"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/matzehuels/casegen/pkg/errors"
	"github.com/matzehuels/casegen/pkg/observability"
)

// Metrics holds the Prometheus collectors for the server. It implements the
// observability hook interfaces, so registering it with observability is
// enough to populate every collector.
type Metrics struct {
	BatchesTotal         *prometheus.CounterVec
	BatchDurationSeconds prometheus.Histogram
	RecordsTotal         prometheus.Counter
	CacheHitTotal        *prometheus.CounterVec
	CacheMissTotal       *prometheus.CounterVec
	CacheWriteBytes      *prometheus.CounterVec
	RequestsTotal        *prometheus.CounterVec
	RequestDuration      *prometheus.HistogramVec
	RequestsInFlight     prometheus.Gauge
}

var (
	_ observability.GenerationHooks = (*Metrics)(nil)
	_ observability.CacheHooks      = (*Metrics)(nil)
	_ observability.RequestHooks    = (*Metrics)(nil)
)

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(namespace string, reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		BatchesTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "batches_total",
				Help:      "Total number of generation batches by outcome code",
			},
			[]string{"code"},
		),
		BatchDurationSeconds: f.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "batch_duration_seconds",
				Help:      "Batch generation latency in seconds",
				Buckets:   []float64{.0001, .0005, .001, .005, .01, .025, .05, .1, .25, .5, 1, 5},
			},
		),
		RecordsTotal: f.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "records_total",
				Help:      "Total number of test case records produced",
			},
		),
		CacheHitTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "cache_hit_total",
				Help:      "Total number of cache hits",
			},
			[]string{"type"},
		),
		CacheMissTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "cache_miss_total",
				Help:      "Total number of cache misses",
			},
			[]string{"type"},
		),
		CacheWriteBytes: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "cache_write_bytes_total",
				Help:      "Total bytes written to the cache",
			},
			[]string{"type"},
		),
		RequestsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "requests_total",
				Help:      "Total number of requests",
			},
			[]string{"method", "endpoint", "status"},
		),
		RequestDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "request_duration_seconds",
				Help:      "Request latency in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "endpoint"},
		),
		RequestsInFlight: f.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "requests_in_flight",
				Help:      "Requests currently being served",
			},
		),
	}
}

// Register installs m as the process-wide observability hooks.
func (m *Metrics) Register() {
	observability.SetGenerationHooks(m)
	observability.SetCacheHooks(m)
	observability.SetRequestHooks(m)
}

func (m *Metrics) OnBatchStart(context.Context, int, int) {}

func (m *Metrics) OnBatchComplete(_ context.Context, _, count int, duration time.Duration, err error) {
	code := "ok"
	if err != nil {
		code = string(errors.GetCode(err))
		if code == "" {
			code = "error"
		}
	} else {
		m.RecordsTotal.Add(float64(count))
	}
	m.BatchesTotal.WithLabelValues(code).Inc()
	m.BatchDurationSeconds.Observe(duration.Seconds())
}

func (m *Metrics) OnCacheHit(_ context.Context, keyType string) {
	m.CacheHitTotal.WithLabelValues(keyType).Inc()
}

func (m *Metrics) OnCacheMiss(_ context.Context, keyType string) {
	m.CacheMissTotal.WithLabelValues(keyType).Inc()
}

func (m *Metrics) OnCacheSet(_ context.Context, keyType string, size int) {
	m.CacheWriteBytes.WithLabelValues(keyType).Add(float64(size))
}

func (m *Metrics) OnRequest(context.Context, string, string) {
	m.RequestsInFlight.Inc()
}

func (m *Metrics) OnResponse(_ context.Context, method, route string, status int, duration time.Duration) {
	m.RequestsInFlight.Dec()
	m.RequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.RequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}
