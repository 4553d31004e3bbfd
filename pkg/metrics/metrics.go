package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// ConsumerMetrics counts what the notification pipeline does per channel and
// failure class. All methods are safe on a nil receiver so tests can run the
// pipeline without a registry.
type ConsumerMetrics struct {
	eventsConsumed *prometheus.CounterVec
	persisted      prometheus.Counter
	failures       *prometheus.CounterVec
}

// Failure classes, matching the pipeline's error policy.
const (
	FailureRetryable  = "retryable"
	FailureBestEffort = "best_effort"
	FailureNotFound   = "not_found"
	FailureDecode     = "decode"
)

// NewConsumerMetrics registers the pipeline counters with reg.
func NewConsumerMetrics(reg prometheus.Registerer) *ConsumerMetrics {
	eventsConsumed := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "tripezzy",
		Subsystem: "notifications",
		Name:      "events_consumed_total",
		Help:      "Total number of events decoded from the bus.",
	}, []string{"channel"})
	persisted := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "tripezzy",
		Subsystem: "notifications",
		Name:      "records_persisted_total",
		Help:      "Total number of notification records written.",
	})
	failures := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "tripezzy",
		Subsystem: "notifications",
		Name:      "failures_total",
		Help:      "Total number of processing failures by class.",
	}, []string{"class"})

	reg.MustRegister(eventsConsumed, persisted, failures)
	return &ConsumerMetrics{
		eventsConsumed: eventsConsumed,
		persisted:      persisted,
		failures:       failures,
	}
}

// IncConsumed counts one decoded event on the given channel.
func (m *ConsumerMetrics) IncConsumed(channel string) {
	if m == nil {
		return
	}
	m.eventsConsumed.WithLabelValues(channel).Inc()
}

// IncPersisted counts one written notification record.
func (m *ConsumerMetrics) IncPersisted() {
	if m == nil {
		return
	}
	m.persisted.Inc()
}

// IncFailure counts one failure of the given class.
func (m *ConsumerMetrics) IncFailure(class string) {
	if m == nil {
		return
	}
	m.failures.WithLabelValues(class).Inc()
}

// Handler exposes the default registry for scraping.
func Handler() http.Handler {
	return promhttp.Handler()
}
