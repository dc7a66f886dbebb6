package cli

import (
	"context"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/NSteinhoff/meal-planner/pkg/planner"
	"github.com/NSteinhoff/meal-planner/pkg/recipe"
	"github.com/NSteinhoff/meal-planner/pkg/serializer"
)

// planAction is the root command action: load the recipe table, search
// for plans satisfying the constraints, and serialize the results.
func planAction(ctx context.Context, cmd *cli.Command) error {
	setupLogging(cmd)
	slog.Debug("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
	)

	args := cmd.Args().Slice()
	if len(args) != 1 {
		return &argsError{args: args}
	}
	path := args[0]

	outFormat, err := parseOutputFormat(cmd)
	if err != nil {
		return err
	}

	cs, err := constraintsFromCmd(cmd)
	if err != nil {
		return err
	}

	table, err := recipe.Load(path)
	if err != nil {
		return unknownFile(err, path)
	}
	slog.Info("recipe table loaded", "path", path, "recipes", len(table))

	plans, err := planner.Search(ctx, table, cs)
	if err != nil {
		return err
	}

	ser := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
	defer closeSerializer(ser)

	return ser.Serialize(ctx, plans)
}
