package server

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"colorfy/internal/ui"
)

var (
	// MetricRequests counts API requests by route and status code
	MetricRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "colorfy_requests_total",
		Help: "Total API requests by route and status code",
	}, []string{"route", "code"})

	// MetricConversions counts color conversions by kind
	MetricConversions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "colorfy_conversions_total",
		Help: "Total color conversions by kind",
	}, []string{"kind"})

	// MetricAuthFailures counts rejected API requests
	MetricAuthFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "colorfy_auth_failures_total",
		Help: "Total requests rejected by token auth",
	})

	// MetricDuration tracks request duration
	MetricDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "colorfy_request_duration_seconds",
		Help:    "API request duration in seconds",
		Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
	})
)

// MetricsServer wraps the HTTP server for prometheus metrics
type MetricsServer struct {
	server *http.Server
}

// NewMetricsServer creates a new metrics server
func NewMetricsServer(addr string) *MetricsServer {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	return &MetricsServer{
		server: &http.Server{
			Addr:    addr,
			Handler: mux,
		},
	}
}

// Start begins serving metrics (non-blocking)
func (m *MetricsServer) Start() {
	go func() {
		if err := m.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			ui.LogStatus("error", "Metrics server error: "+err.Error())
		}
	}()
}

// Shutdown gracefully stops the metrics server
func (m *MetricsServer) Shutdown(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return m.server.Shutdown(shutdownCtx)
}
