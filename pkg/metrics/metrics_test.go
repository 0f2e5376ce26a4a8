package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestNewRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := NewRegistry(reg)

	r.SubscriptionsStarted.WithLabelValues("fetch-user").Inc()
	r.SubscriptionsActive.WithLabelValues("fetch-user").Inc()
	r.ValuesDelivered.WithLabelValues("fetch-user").Add(3)
	r.Completions.WithLabelValues("fetch-user", OutcomeFinished).Inc()
	r.SubscriptionsActive.WithLabelValues("fetch-user").Dec()

	if got := testutil.ToFloat64(r.SubscriptionsStarted.WithLabelValues("fetch-user")); got != 1 {
		t.Errorf("subscriptions started = %v, want 1", got)
	}
	if got := testutil.ToFloat64(r.SubscriptionsActive.WithLabelValues("fetch-user")); got != 0 {
		t.Errorf("subscriptions active = %v, want 0", got)
	}
	if got := testutil.ToFloat64(r.ValuesDelivered.WithLabelValues("fetch-user")); got != 3 {
		t.Errorf("values delivered = %v, want 3", got)
	}
}

func TestDefaultRegistry(t *testing.T) {
	if DefaultRegistry == nil {
		t.Fatal("DefaultRegistry should be initialized")
	}
}
