package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/NSteinhoff/meal-planner/pkg/api"
)

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:      "serve",
		Usage:     "Run the meal planner API server",
		ArgsUsage: "[RECIPE_FILE]",
		Description: `Serve plan searches over HTTP against a recipe table loaded once
at startup. The recipe file may be given as an argument or through the
RECIPES_FILE environment variable. The server listens on PORT
(default 8080) and exposes:

  GET /v1/plans  - search meal plans
  GET /health    - liveness probe
  GET /ready     - readiness probe
  GET /metrics   - Prometheus metrics

The server runs until interrupted and shuts down gracefully.`,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return api.Serve(ctx, cmd.Args().First())
		},
	}
}
