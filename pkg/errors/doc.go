// Package errors provides structured error types for better observability
// and programmatic error handling across the application.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeInvalidRequest,
//	    "failed to parse constraint",
//	    parseErr,
//	    map[string]interface{}{
//	        "metric": "kcal",
//	        "raw": "1800:1200",
//	    },
//	)
package errors
