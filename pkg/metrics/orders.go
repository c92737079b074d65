package metrics

import (
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// OrderMetrics records submission outcomes and spam deflections.
type OrderMetrics struct {
	submitted    *prometheus.CounterVec
	honeypot     prometheus.Counter
	sinkDuration prometheus.Histogram
}

// NewOrderMetrics registers the order metrics on the provided registerer.
func NewOrderMetrics(reg prometheus.Registerer) *OrderMetrics {
	if reg == nil {
		return &OrderMetrics{}
	}
	submitted := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "orders_submitted_total",
		Help: "Order submissions relayed to the ledger, by item type and outcome.",
	}, []string{"item_type", "outcome"})
	honeypot := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "orders_honeypot_trips_total",
		Help: "Submissions silently dropped because the honeypot field was filled.",
	})
	sinkDuration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "order_sink_call_duration_seconds",
		Help:    "Duration of ledger relay calls in seconds.",
		Buckets: prometheus.DefBuckets,
	})
	reg.MustRegister(submitted, honeypot, sinkDuration)
	return &OrderMetrics{
		submitted:    submitted,
		honeypot:     honeypot,
		sinkDuration: sinkDuration,
	}
}

// IncSubmitted increments the submission counter for an item type and outcome.
func (m *OrderMetrics) IncSubmitted(itemType, outcome string) {
	if m == nil || m.submitted == nil {
		return
	}
	m.submitted.WithLabelValues(normalizeLabel(itemType), normalizeLabel(outcome)).Inc()
}

// IncHoneypot increments the honeypot trip counter.
func (m *OrderMetrics) IncHoneypot() {
	if m == nil || m.honeypot == nil {
		return
	}
	m.honeypot.Inc()
}

// ObserveSinkCall records the duration of one ledger relay call.
func (m *OrderMetrics) ObserveSinkCall(duration time.Duration) {
	if m == nil || m.sinkDuration == nil {
		return
	}
	m.sinkDuration.Observe(duration.Seconds())
}

func normalizeLabel(value string) string {
	value = strings.TrimSpace(strings.ToLower(value))
	if value == "" {
		return "unknown"
	}
	return value
}
