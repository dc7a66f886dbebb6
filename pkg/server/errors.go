package server

import (
	goerrors "errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	mperrors "github.com/NSteinhoff/meal-planner/pkg/errors"
	"github.com/NSteinhoff/meal-planner/pkg/serializer"
)

// HTTPStatusFromCode maps a structured error code to an HTTP status.
// Unknown codes map to 500.
func HTTPStatusFromCode(code mperrors.ErrorCode) int {
	switch code {
	case mperrors.ErrCodeInvalidRequest:
		return http.StatusBadRequest
	case mperrors.ErrCodeUnauthorized:
		return http.StatusUnauthorized
	case mperrors.ErrCodeNotFound:
		return http.StatusNotFound
	case mperrors.ErrCodeMethodNotAllowed:
		return http.StatusMethodNotAllowed
	case mperrors.ErrCodeRateLimitExceeded:
		return http.StatusTooManyRequests
	case mperrors.ErrCodeUnavailable:
		return http.StatusServiceUnavailable
	case mperrors.ErrCodeTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// retryableFromCode reports whether a client may reasonably retry a
// request that failed with the given code.
func retryableFromCode(code mperrors.ErrorCode) bool {
	switch code {
	case mperrors.ErrCodeTimeout,
		mperrors.ErrCodeUnavailable,
		mperrors.ErrCodeRateLimitExceeded,
		mperrors.ErrCodeInternal:
		return true
	default:
		return false
	}
}

// mergeDetails combines two detail maps, the second overwriting the
// first on conflict. Returns nil when both are empty.
func mergeDetails(a, b map[string]any) map[string]any {
	if len(a) == 0 && len(b) == 0 {
		return nil
	}

	merged := make(map[string]any, len(a)+len(b))
	for k, v := range a {
		merged[k] = v
	}
	for k, v := range b {
		merged[k] = v
	}
	return merged
}

// WriteError writes a structured error response with the request ID from
// the request context.
func WriteError(w http.ResponseWriter, r *http.Request, statusCode int,
	code mperrors.ErrorCode, message string, retryable bool, details map[string]any) {

	requestID, _ := r.Context().Value(contextKeyRequestID).(string)
	if requestID == "" {
		requestID = uuid.New().String()
	}

	errResp := ErrorResponse{
		Code:      string(code),
		Message:   message,
		Details:   details,
		RequestID: requestID,
		Timestamp: time.Now().UTC(),
		Retryable: retryable,
	}

	serializer.RespondJSON(w, statusCode, errResp)
}

// WriteErrorFromErr writes an error response derived from err. Structured
// errors carry their own code, message, and context; anything else is
// reported as an internal error using the fallback message.
func WriteErrorFromErr(w http.ResponseWriter, r *http.Request, err error,
	fallbackMessage string, details map[string]any) {

	var structured *mperrors.StructuredError
	if goerrors.As(err, &structured) {
		merged := mergeDetails(structured.Context, details)
		if structured.Cause != nil {
			if merged == nil {
				merged = make(map[string]any, 1)
			}
			merged["error"] = structured.Cause.Error()
		}

		WriteError(w, r, HTTPStatusFromCode(structured.Code), structured.Code,
			structured.Message, retryableFromCode(structured.Code), merged)
		return
	}

	merged := mergeDetails(details, map[string]any{"error": err.Error()})
	WriteError(w, r, http.StatusInternalServerError, mperrors.ErrCodeInternal,
		fallbackMessage, true, merged)
}
