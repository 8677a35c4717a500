package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// CheckoutMetrics records pricing attempt outcomes for quotes and checkouts.
type CheckoutMetrics struct {
	duration *prometheus.HistogramVec
	outcomes *prometheus.CounterVec
}

// Outcome labels for pricing attempts.
const (
	OutcomePriced   = "priced"
	OutcomeRejected = "rejected"
	OutcomeError    = "error"
)

// Operation labels for pricing attempts.
const (
	OperationQuote    = "quote"
	OperationCheckout = "checkout"
)

// NewCheckoutMetrics registers the checkout metrics on the provided registerer.
func NewCheckoutMetrics(reg prometheus.Registerer) *CheckoutMetrics {
	if reg == nil {
		return &CheckoutMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "pricing_duration_seconds",
		Help:    "Duration of pricing attempts in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation"})
	outcomes := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "pricing_outcomes_total",
		Help: "Pricing attempts by operation and outcome.",
	}, []string{"operation", "outcome"})
	reg.MustRegister(duration, outcomes)
	return &CheckoutMetrics{duration: duration, outcomes: outcomes}
}

// ObserveDuration records how long a pricing attempt took.
func (c *CheckoutMetrics) ObserveDuration(operation string, duration time.Duration) {
	if c == nil || c.duration == nil {
		return
	}
	c.duration.WithLabelValues(normalizeLabel(operation)).Observe(duration.Seconds())
}

// IncOutcome increments the outcome counter for the operation.
func (c *CheckoutMetrics) IncOutcome(operation, outcome string) {
	if c == nil || c.outcomes == nil {
		return
	}
	c.outcomes.WithLabelValues(normalizeLabel(operation), normalizeLabel(outcome)).Inc()
}
