package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func resetGlobalMetricsForTest() {
	globalMetricsMu.Lock()
	globalMetrics = nil
	globalMetricsMu.Unlock()
}

func metricCounterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	if err := c.Write(&m); err != nil {
		t.Fatalf("counter Write() error: %v", err)
	}
	if m.Counter == nil {
		t.Fatal("expected counter metric to have Counter field")
	}
	return m.GetCounter().GetValue()
}

func metricHistogramCount(t *testing.T, o prometheus.Observer) uint64 {
	t.Helper()
	metric, ok := o.(prometheus.Metric)
	if !ok {
		t.Fatalf("observer %T does not implement prometheus.Metric", o)
	}
	var m dto.Metric
	if err := metric.Write(&m); err != nil {
		t.Fatalf("histogram Write() error: %v", err)
	}
	if m.Histogram == nil {
		t.Fatal("expected histogram metric to have Histogram field")
	}
	return m.GetHistogram().GetSampleCount()
}

func TestPrometheusMiddleware_RecordsSuccessAndError(t *testing.T) {
	t.Run("success increments counter and duration", func(t *testing.T) {
		resetGlobalMetricsForTest()
		reg := prometheus.NewRegistry()

		config := defaultMetricsConfig()
		config.Registry = reg
		m := initMetrics(config)

		globalMetricsMu.Lock()
		globalMetrics = m
		globalMetricsMu.Unlock()

		handler := Prometheus()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/test", nil))

		if got := metricCounterValue(t, m.requestsTotal.WithLabelValues("/test", "200")); got != 1 {
			t.Fatalf("requests_total(200)=%v, want 1", got)
		}
		if got := metricHistogramCount(t, m.requestDuration.WithLabelValues("/test")); got != 1 {
			t.Fatalf("request_duration count=%v, want 1", got)
		}
		if got := metricCounterValue(t, m.requestErrors.WithLabelValues("/test")); got != 0 {
			t.Fatalf("request_errors_total=%v, want 0", got)
		}
	})

	t.Run("server error increments error counter", func(t *testing.T) {
		resetGlobalMetricsForTest()
		reg := prometheus.NewRegistry()

		config := defaultMetricsConfig()
		config.Registry = reg
		m := initMetrics(config)

		globalMetricsMu.Lock()
		globalMetrics = m
		globalMetricsMu.Unlock()

		handler := Prometheus()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/broken", nil))

		if got := metricCounterValue(t, m.requestsTotal.WithLabelValues("/broken", "500")); got != 1 {
			t.Fatalf("requests_total(500)=%v, want 1", got)
		}
		if got := metricCounterValue(t, m.requestErrors.WithLabelValues("/broken")); got != 1 {
			t.Fatalf("request_errors_total=%v, want 1", got)
		}
	})
}

func TestPrometheusMiddleware_UsesChiRoutePattern(t *testing.T) {
	resetGlobalMetricsForTest()
	reg := prometheus.NewRegistry()

	config := defaultMetricsConfig()
	config.Registry = reg
	m := initMetrics(config)

	globalMetricsMu.Lock()
	globalMetrics = m
	globalMetricsMu.Unlock()

	r := chi.NewRouter()
	r.Use(Prometheus())
	r.Get("/users/{name}", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/users/ada", nil))

	if got := metricCounterValue(t, m.requestsTotal.WithLabelValues("/users/{name}", "200")); got != 1 {
		t.Fatalf("requests_total(route pattern)=%v, want 1", got)
	}
}

func TestPrometheusMiddleware_CustomRegistryIsIsolated(t *testing.T) {
	resetGlobalMetricsForTest()

	reg := prometheus.NewRegistry()
	handler := Prometheus(WithRegistry(reg), WithNamespace("custom"))(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}),
	)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil))

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather() error: %v", err)
	}
	found := false
	for _, f := range families {
		if f.GetName() == "custom_requests_total" {
			found = true
		}
	}
	if !found {
		t.Fatal("expected custom_requests_total in custom registry")
	}

	globalMetricsMu.Lock()
	stillNil := globalMetrics == nil
	globalMetricsMu.Unlock()
	if !stillNil {
		t.Fatal("custom registry middleware should not initialize the global singleton")
	}
}

func TestStatusOf_TreatsUnwrittenAsOK(t *testing.T) {
	if got := statusOf(0); got != http.StatusOK {
		t.Fatalf("statusOf(0) = %d, want %d", got, http.StatusOK)
	}
	if got := statusOf(http.StatusTeapot); got != http.StatusTeapot {
		t.Fatalf("statusOf(418) = %d, want %d", got, http.StatusTeapot)
	}
}
