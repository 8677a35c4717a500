package metrics

import (
	"fmt"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func TestCheckoutMetricsExportsOutcomesAndDuration(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewCheckoutMetrics(reg)

	metrics.ObserveDuration("checkout", 120*time.Millisecond)
	metrics.IncOutcome("checkout", OutcomePriced)
	metrics.IncOutcome("checkout", OutcomePriced)
	metrics.IncOutcome("quote", OutcomeRejected)

	mfs, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather metrics: %v", err)
	}

	if got, err := fetchOutcomeValue(mfs, "checkout", OutcomePriced); err != nil {
		t.Fatalf("fetch priced: %v", err)
	} else if got != 2 {
		t.Fatalf("expected priced=2, got %f", got)
	}

	if got, err := fetchOutcomeValue(mfs, "quote", OutcomeRejected); err != nil {
		t.Fatalf("fetch rejected: %v", err)
	} else if got != 1 {
		t.Fatalf("expected rejected=1, got %f", got)
	}

	sum, err := fetchDurationSum(mfs, "checkout")
	if err != nil {
		t.Fatalf("fetch duration: %v", err)
	}
	if sum <= 0 {
		t.Fatalf("expected duration sum > 0, got %f", sum)
	}
}

func TestCheckoutMetricsNilReceiverIsSafe(t *testing.T) {
	var metrics *CheckoutMetrics
	metrics.ObserveDuration("checkout", time.Second)
	metrics.IncOutcome("checkout", OutcomeError)

	unregistered := NewCheckoutMetrics(nil)
	unregistered.ObserveDuration("checkout", time.Second)
	unregistered.IncOutcome("checkout", OutcomePriced)
}

func fetchOutcomeValue(mfs []*dto.MetricFamily, operation, outcome string) (float64, error) {
	for _, mf := range mfs {
		if mf.GetName() != "pricing_outcomes_total" {
			continue
		}
		for _, metric := range mf.GetMetric() {
			if labelValue(metric.GetLabel(), "operation") == operation &&
				labelValue(metric.GetLabel(), "outcome") == outcome {
				return metric.GetCounter().GetValue(), nil
			}
		}
	}
	return 0, fmt.Errorf("no counter for operation=%s outcome=%s", operation, outcome)
}

func fetchDurationSum(mfs []*dto.MetricFamily, operation string) (float64, error) {
	for _, mf := range mfs {
		if mf.GetName() != "pricing_duration_seconds" {
			continue
		}
		for _, metric := range mf.GetMetric() {
			if labelValue(metric.GetLabel(), "operation") == operation {
				return metric.GetHistogram().GetSampleSum(), nil
			}
		}
	}
	return 0, fmt.Errorf("no histogram for operation=%s", operation)
}

func labelValue(labels []*dto.LabelPair, name string) string {
	for _, label := range labels {
		if label.GetName() == name {
			return label.GetValue()
		}
	}
	return ""
}
