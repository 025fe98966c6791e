// Package server exposes test case generation over HTTP.
package server

import (
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/matzehuels/casegen/pkg/batch"
)

// maxBodyBytes bounds a generate request body.
const maxBodyBytes = 1 << 20

// RouterConfig holds router configuration.
type RouterConfig struct {
	RequestTimeout time.Duration
	MetricsEnabled bool
	MetricsPath    string
	// Gatherer serves /metrics. Nil uses the default Prometheus registry.
	Gatherer prometheus.Gatherer
}

// NewRouter creates the HTTP handler for the API.
func NewRouter(runner *batch.Runner, logger *log.Logger, cfg RouterConfig) http.Handler {
	if logger == nil {
		logger = log.Default()
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(logger))
	r.Use(middleware.Recoverer)

	if cfg.RequestTimeout > 0 {
		r.Use(middleware.Timeout(cfg.RequestTimeout))
	}

	h := NewHandler(runner, logger)

	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)

	if cfg.MetricsEnabled {
		path := cfg.MetricsPath
		if path == "" {
			path = "/metrics"
		}
		gatherer := cfg.Gatherer
		if gatherer == nil {
			gatherer = prometheus.DefaultGatherer
		}
		r.Handle(path, promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/generate", h.Generate)
	})

	return r
}
