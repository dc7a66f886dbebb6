// Package server implements the meal planner HTTP API.
//
// The server is a stateless HTTP service with the following components:
//
//   - Rate limiting using a token bucket (golang.org/x/time/rate)
//   - Request ID tracking via X-Request-Id headers (UUID format)
//   - API version negotiation via vendor Accept headers
//   - Prometheus metrics exposed on /metrics
//   - Panic recovery and structured error responses
//   - Graceful shutdown driven by context cancellation or signals
//   - Health and readiness probes for Kubernetes
//
// # Usage
//
// Domain handlers are registered as routes and wrapped with the full
// middleware chain:
//
//	routes := map[string]http.HandlerFunc{
//	    "/v1/plans": handler.HandlePlans,
//	}
//
//	s := server.New(
//	    server.WithName("meal-planner-api"),
//	    server.WithHandler(routes),
//	)
//
//	if err := s.Run(context.Background()); err != nil {
//	    log.Fatal(err)
//	}
//
// Configuration comes from the environment: PORT overrides the listen
// port, RATE_LIMIT and RATE_LIMIT_BURST the token bucket, and
// SHUTDOWN_TIMEOUT_SECONDS the shutdown grace period.
//
// # Error Handling
//
// All errors return a consistent JSON structure:
//
//	{
//	  "code": "INVALID_REQUEST",
//	  "message": "Invalid plan query",
//	  "details": {"error": "invalid kcal range"},
//	  "requestId": "550e8400-e29b-41d4-a716-446655440000",
//	  "timestamp": "2026-08-30T12:00:00Z",
//	  "retryable": false
//	}
//
// Status codes are derived from the structured error taxonomy in
// pkg/errors; see HTTPStatusFromCode.
package server
