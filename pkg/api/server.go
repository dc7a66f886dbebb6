package api

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	mperrors "github.com/NSteinhoff/meal-planner/pkg/errors"
	"github.com/NSteinhoff/meal-planner/pkg/logging"
	"github.com/NSteinhoff/meal-planner/pkg/planner"
	"github.com/NSteinhoff/meal-planner/pkg/recipe"
	"github.com/NSteinhoff/meal-planner/pkg/server"
)

const (
	name           = "mealpland"
	versionDefault = "dev"
)

// EnvRecipesFile names the recipe file for the daemon when no explicit
// path is given.
const EnvRecipesFile = "RECIPES_FILE"

var (
	// overridden during build with ldflags to reflect actual version info
	// e.g., -X "github.com/NSteinhoff/meal-planner/pkg/api.version=1.0.0"
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Serve starts the API server and blocks until shutdown. The recipe
// table is loaded once at startup from recipesPath, falling back to the
// RECIPES_FILE environment variable when the path is empty.
// Returns an error if the table cannot be loaded or the server fails.
func Serve(ctx context.Context, recipesPath string) error {
	logging.SetDefaultStructuredLogger(name, version)
	slog.Info("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
	)

	if recipesPath == "" {
		recipesPath = os.Getenv(EnvRecipesFile)
	}
	if recipesPath == "" {
		return mperrors.New(mperrors.ErrCodeInvalidRequest,
			"no recipe file configured, set "+EnvRecipesFile)
	}

	table, err := recipe.Load(recipesPath)
	if err != nil {
		slog.Error("failed to load recipe table", "path", recipesPath, "error", err)
		return err
	}
	slog.Info("recipe table loaded", "path", recipesPath, "recipes", len(table))

	cfg := server.NewConfig()
	h := planner.NewHandler(table, planner.WithResultLimit(cfg.MaxResultsLimit))

	r := map[string]http.HandlerFunc{
		"/v1/plans": h.HandlePlans,
	}

	s := server.New(
		server.WithConfig(cfg),
		server.WithName(name),
		server.WithVersion(version),
		server.WithHandler(r),
	)

	if err := s.Run(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}

	return nil
}
