// Package api provides the HTTP API layer for the meal planner service.
//
// This package acts as a thin wrapper around the reusable pkg/server
// package, configuring it with application-specific routes and handlers.
// It exposes plan searches over a recipe table loaded once at startup.
//
// # Usage
//
// To start the API server:
//
//	package main
//
//	import (
//	    "context"
//	    "log"
//
//	    "github.com/NSteinhoff/meal-planner/pkg/api"
//	)
//
//	func main() {
//	    if err := api.Serve(context.Background(), ""); err != nil {
//	        log.Fatalf("server error: %v", err)
//	    }
//	}
//
// # Endpoints
//
// Application endpoints (with rate limiting):
//   - GET /v1/plans - Search meal plans against the loaded recipe table
//
// System endpoints (no rate limiting):
//   - GET /health  - Health check (liveness probe)
//   - GET /ready   - Readiness check
//   - GET /metrics - Prometheus metrics
//
// # Query Parameters (GET /v1/plans)
//
// Range parameters accept the MIN:MAX grammar (either bound optional,
// bare N for an exact value):
//   - kcal: total calories per plan
//   - p:    total protein grams
//   - c:    total carbohydrate grams
//   - f:    total fat grams
//   - pi:   protein share of calories (0..1)
//
// Limits:
//   - n:           maximum meals per plan (default 5)
//   - max-results: maximum number of plans returned (default 10)
//
// Example:
//
//	curl "http://localhost:8080/v1/plans?kcal=1800:2200&pi=0.3:&n=3"
//
// # Configuration
//
// The server is configured via environment variables:
//   - RECIPES_FILE: recipe table to serve (required unless a path is
//     passed to Serve)
//   - PORT: HTTP server port (default: 8080)
//   - LOG_LEVEL: Logging level (debug, info, warn, error)
//
// Version information is set at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/NSteinhoff/meal-planner/pkg/api.version=1.0.0'"
package api
