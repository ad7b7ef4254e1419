// Package metrics exposes Prometheus instruments for the backdrop loop and
// the telemetry poller.
package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// FrameDuration tracks time spent rendering one backdrop frame
	FrameDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "crowdwatch_frame_duration_seconds",
			Help:    "Time spent advancing and drawing one backdrop frame",
			Buckets: []float64{.0005, .001, .0025, .005, .01, .025, .05},
		},
	)

	// Particles is the current backdrop population size
	Particles = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "crowdwatch_particles",
			Help: "Particles in the backdrop population",
		},
	)

	// Links is the number of edges drawn in the last frame
	Links = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "crowdwatch_links",
			Help: "Proximity edges drawn in the last frame",
		},
	)

	// Polls counts telemetry polls by result
	Polls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "crowdwatch_telemetry_polls_total",
			Help: "Telemetry polls by result",
		},
		[]string{"mode", "result"},
	)
)

// ObserveFrame records one rendered frame.
func ObserveFrame(particles, links int, d time.Duration) {
	FrameDuration.Observe(d.Seconds())
	Particles.Set(float64(particles))
	Links.Set(float64(links))
}

// ObservePoll records one poll outcome.
func ObservePoll(mode string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	Polls.WithLabelValues(mode, result).Inc()
}

// Serve exposes /metrics on addr until ctx is cancelled.
func Serve(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
