package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestOrderMetricsRecord(t *testing.T) {
	reg := prometheus.NewRegistry()
	met := NewOrderMetrics(reg)

	met.IncSubmitted("cake", "success")
	met.IncSubmitted("cake", "success")
	met.IncSubmitted("cookies", "error")
	met.IncHoneypot()
	met.ObserveSinkCall(42 * time.Millisecond)

	if got := testutil.ToFloat64(met.submitted.WithLabelValues("cake", "success")); got != 2 {
		t.Fatalf("got %v cake successes", got)
	}
	if got := testutil.ToFloat64(met.submitted.WithLabelValues("cookies", "error")); got != 1 {
		t.Fatalf("got %v cookie errors", got)
	}
	if got := testutil.ToFloat64(met.honeypot); got != 1 {
		t.Fatalf("got %v honeypot trips", got)
	}
}

func TestNilRegistererIsSafe(t *testing.T) {
	met := NewOrderMetrics(nil)
	met.IncSubmitted("cake", "success")
	met.IncHoneypot()
	met.ObserveSinkCall(time.Millisecond)
}
