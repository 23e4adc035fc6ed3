package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func TestMetrics_ObserveFlush(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.ObserveFlush(10, 2, 5*time.Millisecond, nil)

	if got := counterValue(t, m.tradesInserted); got != 8 {
		t.Errorf("tradesInserted = %v, want 8", got)
	}
	if got := counterValue(t, m.tradesConflict); got != 2 {
		t.Errorf("tradesConflict = %v, want 2", got)
	}
}

func TestMetrics_ObserveFlushError(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.ObserveFlush(10, 0, time.Second, errTest{})

	if got := counterValue(t, m.tradesInserted); got != 0 {
		t.Errorf("tradesInserted = %v, want 0 on error", got)
	}
}

func TestMetrics_ObserveQueueDepth(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.ObserveQueueDepth(42, 50000)

	if got := gaugeValue(t, m.queueDepth); got != 42 {
		t.Errorf("queueDepth = %v, want 42", got)
	}
	if got := gaugeValue(t, m.queueCapacity); got != 50000 {
		t.Errorf("queueCapacity = %v, want 50000", got)
	}
}

type errTest struct{}

func (errTest) Error() string { return "boom" }

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	if err := c.Write(&m); err != nil {
		t.Fatalf("Write: %v", err)
	}
	return m.GetCounter().GetValue()
}

func gaugeValue(t *testing.T, g prometheus.Gauge) float64 {
	t.Helper()
	var m dto.Metric
	if err := g.Write(&m); err != nil {
		t.Fatalf("Write: %v", err)
	}
	return m.GetGauge().GetValue()
}
