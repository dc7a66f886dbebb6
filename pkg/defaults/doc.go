// Package defaults provides centralized configuration constants for meal-planner.
//
// This package defines timeout values and other configuration defaults used
// across the codebase. Centralizing these values ensures consistency and
// makes tuning easier.
//
// # Timeout Categories
//
// Timeouts are organized by component:
//
//   - Handler timeouts: For HTTP request processing
//   - Server timeouts: For HTTP server configuration
//   - HTTP client timeouts: For outbound HTTP requests
//
// # Usage
//
// Import and use constants directly:
//
//	import "github.com/NSteinhoff/meal-planner/pkg/defaults"
//
//	ctx, cancel := context.WithTimeout(ctx, defaults.PlanSearchTimeout)
//	defer cancel()
package defaults
