package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// StoreMetrics records store operation outcomes and collection sizes.
type StoreMetrics struct {
	duration  *prometheus.HistogramVec
	success   *prometheus.CounterVec
	failure   *prometheus.CounterVec
	rollbacks *prometheus.CounterVec
	size      *prometheus.GaugeVec
}

// NewStoreMetrics registers the store metrics on the provided registerer.
func NewStoreMetrics(reg prometheus.Registerer) *StoreMetrics {
	if reg == nil {
		return &StoreMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "store_operation_duration_seconds",
		Help:    "Duration of store operations in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation"})
	success := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "store_operation_success_total",
		Help: "Store operations that committed.",
	}, []string{"operation"})
	failure := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "store_operation_failure_total",
		Help: "Store operations that failed, by error code.",
	}, []string{"operation", "code"})
	rollbacks := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "store_rollbacks_total",
		Help: "Compound operations that rolled back a partial write.",
	}, []string{"result"})
	size := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "store_collection_size",
		Help: "Number of records held per collection.",
	}, []string{"collection"})
	reg.MustRegister(duration, success, failure, rollbacks, size)
	return &StoreMetrics{
		duration:  duration,
		success:   success,
		failure:   failure,
		rollbacks: rollbacks,
		size:      size,
	}
}

// ObserveDuration records the duration for the named operation.
func (s *StoreMetrics) ObserveDuration(op string, duration time.Duration) {
	if s == nil || s.duration == nil {
		return
	}
	s.duration.WithLabelValues(normalizeLabel(op)).Observe(duration.Seconds())
}

func (s *StoreMetrics) IncSuccess(op string) {
	if s == nil || s.success == nil {
		return
	}
	s.success.WithLabelValues(normalizeLabel(op)).Inc()
}

func (s *StoreMetrics) IncFailure(op, code string) {
	if s == nil || s.failure == nil {
		return
	}
	s.failure.WithLabelValues(normalizeLabel(op), normalizeLabel(code)).Inc()
}

// IncRollback counts a rollback; result is "ok" or "failed".
func (s *StoreMetrics) IncRollback(result string) {
	if s == nil || s.rollbacks == nil {
		return
	}
	s.rollbacks.WithLabelValues(normalizeLabel(result)).Inc()
}

func (s *StoreMetrics) SetCollectionSize(collection string, n int) {
	if s == nil || s.size == nil {
		return
	}
	s.size.WithLabelValues(normalizeLabel(collection)).Set(float64(n))
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
