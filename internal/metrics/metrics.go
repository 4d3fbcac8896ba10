package metrics

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	SearchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stayfinder_searches_total",
			Help: "Total number of search invocations by result path",
		},
		[]string{"path"}, // live, fallback, empty
	)

	DestinationResolutions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stayfinder_destination_resolutions_total",
			Help: "Total number of destination resolutions by answering tier",
		},
		[]string{"tier"},
	)

	VendorRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "stayfinder_vendor_request_duration_seconds",
			Help:    "Duration of vendor API requests in seconds",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2, 5, 10},
		},
		[]string{"endpoint"},
	)

	VendorErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stayfinder_vendor_errors_total",
			Help: "Total number of failed vendor API requests",
		},
		[]string{"endpoint", "kind"}, // kind: transport, decode, envelope
	)
)

// Server encapsulates an HTTP server for Prometheus metrics.
type Server struct {
	srv *http.Server
}

// Start begins listening on the specified port and exposes /metrics.
func Start(port int) *Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: mux,
	}

	go func() {
		// Suppress the error from intentional shutdown
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			fmt.Printf("metrics server failed: %v\n", err)
		}
	}()

	return &Server{srv: srv}
}

// Stop gracefully shuts down the metrics server.
func (s *Server) Stop(ctx context.Context) error {
	if s.srv == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return s.srv.Shutdown(ctx)
}
