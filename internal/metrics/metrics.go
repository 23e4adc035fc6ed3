package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the process's Prometheus collectors. It implements
// internal/batchwriter.Recorder so the writer can report flush outcomes
// without importing this package's concrete type.
type Metrics struct {
	flushTotal      *prometheus.CounterVec
	flushDuration   prometheus.Histogram
	tradesInserted  prometheus.Counter
	tradesConflict  prometheus.Counter
	queueDepth      prometheus.Gauge
	queueCapacity   prometheus.Gauge
	streamConnected prometheus.Gauge
	reconnectTotal  prometheus.Counter
}

// New registers and returns the collectors for this process. reg is
// typically prometheus.NewRegistry() so tests don't collide with the
// default global registry.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		flushTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "trade_ingest_flush_total",
			Help: "Batch flush attempts by outcome.",
		}, []string{"outcome"}),
		flushDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "trade_ingest_flush_duration_seconds",
			Help:    "Wall time spent committing one batch.",
			Buckets: prometheus.DefBuckets,
		}),
		tradesInserted: factory.NewCounter(prometheus.CounterOpts{
			Name: "trade_ingest_trades_inserted_total",
			Help: "Trades newly inserted into the store.",
		}),
		tradesConflict: factory.NewCounter(prometheus.CounterOpts{
			Name: "trade_ingest_trades_conflict_total",
			Help: "Trades that hit the primary-key conflict on insert.",
		}),
		queueDepth: factory.NewGauge(prometheus.GaugeOpts{
			Name: "trade_ingest_queue_depth",
			Help: "Current number of trades waiting in the bounded queue.",
		}),
		queueCapacity: factory.NewGauge(prometheus.GaugeOpts{
			Name: "trade_ingest_queue_capacity",
			Help: "Configured capacity of the bounded queue.",
		}),
		streamConnected: factory.NewGauge(prometheus.GaugeOpts{
			Name: "trade_ingest_stream_connected",
			Help: "1 if the upstream stream connection is currently open.",
		}),
		reconnectTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "trade_ingest_stream_reconnect_total",
			Help: "Upstream stream reconnect attempts.",
		}),
	}
}

// ObserveFlush records the outcome of one batch flush attempt.
func (m *Metrics) ObserveFlush(count, conflicts int, duration time.Duration, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.flushTotal.WithLabelValues(outcome).Inc()
	m.flushDuration.Observe(duration.Seconds())
	if err == nil {
		m.tradesInserted.Add(float64(count - conflicts))
		m.tradesConflict.Add(float64(conflicts))
	}
}

// ObserveQueueDepth records the queue's current fill level.
func (m *Metrics) ObserveQueueDepth(depth, capacity int) {
	m.queueDepth.Set(float64(depth))
	m.queueCapacity.Set(float64(capacity))
}

// SetStreamConnected records whether the upstream socket is currently up.
func (m *Metrics) SetStreamConnected(connected bool) {
	if connected {
		m.streamConnected.Set(1)
		return
	}
	m.streamConnected.Set(0)
}

// ObserveReconnect records one upstream reconnect attempt.
func (m *Metrics) ObserveReconnect() {
	m.reconnectTotal.Inc()
}

// Handler returns the HTTP handler to mount at the configured metrics path.
func Handler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}
