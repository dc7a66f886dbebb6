package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// buildRoutes configures all HTTP routes and middleware
func (s *Server) buildRoutes() http.Handler {
	mux := http.NewServeMux()

	// System endpoints (no rate limiting)
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/ready", s.handleReady)
	mux.Handle("/metrics", promhttp.Handler())

	// Registered handlers, including the root route, go through the
	// full middleware chain.
	for path, handler := range s.config.Handlers {
		mux.HandleFunc(path, s.withMiddleware(handler))
	}

	return mux
}
