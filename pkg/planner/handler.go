package planner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/NSteinhoff/meal-planner/pkg/defaults"
	mperrors "github.com/NSteinhoff/meal-planner/pkg/errors"
	"github.com/NSteinhoff/meal-planner/pkg/recipe"
	"github.com/NSteinhoff/meal-planner/pkg/serializer"
	"github.com/NSteinhoff/meal-planner/pkg/server"
)

// DefaultResultLimit caps the max-results a single query may request
// when the handler is not configured with its own bound.
const DefaultResultLimit = 100

// Handler serves plan searches over HTTP against a recipe table loaded
// at startup.
type Handler struct {
	table       recipe.Table
	resultLimit int
}

// HandlerOption customizes the handler during construction.
type HandlerOption func(*Handler)

// WithResultLimit bounds the max-results a single query may request.
// Values below one keep the default.
func WithResultLimit(n int) HandlerOption {
	return func(h *Handler) {
		if n > 0 {
			h.resultLimit = n
		}
	}
}

// NewHandler creates a plan search handler for the given table.
func NewHandler(table recipe.Table, opts ...HandlerOption) *Handler {
	h := &Handler{
		table:       table,
		resultLimit: DefaultResultLimit,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// HandlePlans processes GET /v1/plans requests. Query parameters mirror
// the CLI options: kcal, p, c, f, pi as MIN:MAX ranges, plus n and
// max-results. Requests asking for more results than the configured
// limit are rejected. The response is the JSON array of accepted plans
// in canonical search order.
func (h *Handler) HandlePlans(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), defaults.PlanSearchTimeout)
	defer cancel()

	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		server.WriteError(w, r, http.StatusMethodNotAllowed, mperrors.ErrCodeMethodNotAllowed,
			"Method not allowed", false, map[string]any{
				"method": r.Method,
			})
		return
	}

	cs, err := ParseQuery(r)
	if err != nil {
		server.WriteError(w, r, http.StatusBadRequest, mperrors.ErrCodeInvalidRequest,
			"Invalid plan query", false, map[string]any{
				"error": err.Error(),
			})
		return
	}

	if cs.MaxResults > h.resultLimit {
		server.WriteError(w, r, http.StatusBadRequest, mperrors.ErrCodeInvalidRequest,
			"Invalid plan query", false, map[string]any{
				"error": fmt.Sprintf("%s %d exceeds the limit of %d",
					QueryParamMaxResults, cs.MaxResults, h.resultLimit),
			})
		return
	}

	slog.Debug("plan query",
		"recipes", len(h.table),
		"maxMeals", cs.MaxMeals,
		"maxResults", cs.MaxResults,
		"constrained", cs.Constrained(),
	)

	plans, err := Search(ctx, h.table, cs)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			server.WriteError(w, r, http.StatusGatewayTimeout, mperrors.ErrCodeTimeout,
				"Plan search timed out", true, nil)
			return
		}
		server.WriteErrorFromErr(w, r, err, "Plan search failed", nil)
		return
	}

	serializer.RespondJSON(w, http.StatusOK, plans)
}
