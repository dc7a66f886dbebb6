package cli

import (
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/NSteinhoff/meal-planner/pkg/constraint"
	"github.com/NSteinhoff/meal-planner/pkg/serializer"
)

// Flags shared by every command that writes results.
var (
	outputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Write results to a file instead of stdout",
	}

	formatFlag = &cli.StringFlag{
		Name:  "format",
		Value: string(serializer.FormatJSON),
		Usage: fmt.Sprintf("Output format (supported values: %v)",
			serializer.SupportedFormats()),
	}

	logLevelFlag = &cli.StringFlag{
		Name:    "log-level",
		Value:   "info",
		Sources: cli.EnvVars("LOG_LEVEL"),
		Usage:   "Log level (debug, info, warn, error)",
	}
)

// planFlags are the search options of the primary plan invocation. The
// range flags share their names with the constraint metrics so the flag
// set can be walked generically.
func planFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:  "n",
			Value: 5,
			Usage: "Maximum number of meals in a plan",
		},
		&cli.StringFlag{
			Name:  "kcal",
			Usage: "Calories (kcal) MIN[:MAX]",
		},
		&cli.StringFlag{
			Name:  "p",
			Usage: "Protein (g) MIN[:MAX]",
		},
		&cli.StringFlag{
			Name:  "c",
			Usage: "Carbs (g) MIN[:MAX]",
		},
		&cli.StringFlag{
			Name:  "f",
			Usage: "Fat (g) MIN[:MAX]",
		},
		&cli.StringFlag{
			Name:  "pi",
			Usage: "Fraction of calories from protein MIN[:MAX]",
		},
		&cli.IntFlag{
			Name:  "max-results",
			Value: 10,
			Usage: "Maximum number of plans to produce",
		},
		outputFlag,
		formatFlag,
		logLevelFlag,
	}
}

// parseOutputFormat resolves the format flag into a serializer format.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	format := serializer.Format(cmd.String("format"))
	if format.IsUnknown() {
		return "", fmt.Errorf("unknown output format: %q (supported formats: %v)",
			format, serializer.SupportedFormats())
	}
	return format, nil
}

// constraintsFromCmd builds the constraint set from the plan flags.
func constraintsFromCmd(cmd *cli.Command) (*constraint.Set, error) {
	opts := []constraint.Option{
		constraint.WithMaxMeals(int(cmd.Int("n"))),
		constraint.WithMaxResults(int(cmd.Int("max-results"))),
	}

	for _, m := range constraint.Metrics() {
		raw := cmd.String(m.String())
		if raw == "" {
			continue
		}
		r, err := constraint.ParseRange(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid %s range: %w", m, err)
		}
		opts = append(opts, constraint.WithRange(m, r))
	}

	return constraint.NewSet(opts...), nil
}

// closeSerializer closes a serializer when it holds resources, logging
// instead of failing the command on close errors.
func closeSerializer(ser serializer.Serializer) {
	if closer, ok := ser.(serializer.Closer); ok {
		if err := closer.Close(); err != nil {
			slog.Warn("failed to close serializer", "error", err)
		}
	}
}
