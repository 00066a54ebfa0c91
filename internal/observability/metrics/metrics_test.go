//go:build unit

package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var out dto.Metric
	if err := c.Write(&out); err != nil {
		t.Fatalf("write counter: %v", err)
	}
	return out.GetCounter().GetValue()
}

func TestBackendMetricsObserve(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewBackendMetrics(reg)
	m.ObserveRequest("GET", 200, 0.2)
	m.ObserveRequest("GET", 204, 0.1)
	m.ObserveRequest("POST", 0, 0.5)

	if got := counterValue(t, m.requestsTotal.WithLabelValues("GET", "2xx")); got != 2 {
		t.Fatalf("GET 2xx count = %v, want 2", got)
	}
	if got := counterValue(t, m.requestsTotal.WithLabelValues("POST", "unreachable")); got != 1 {
		t.Fatalf("POST unreachable count = %v, want 1", got)
	}
}

func TestBackendMetricsNilSafe(t *testing.T) {
	var m *BackendMetrics
	m.ObserveRequest("GET", 500, 0.1)
}

func TestStatusClass(t *testing.T) {
	cases := map[int]string{0: "unreachable", 201: "2xx", 303: "3xx", 422: "4xx", 503: "5xx"}
	for status, want := range cases {
		if got := StatusClass(status); got != want {
			t.Errorf("StatusClass(%d) = %s, want %s", status, got, want)
		}
	}
}
