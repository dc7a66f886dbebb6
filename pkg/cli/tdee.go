package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/NSteinhoff/meal-planner/pkg/tdee"
)

func tdeeCmd() *cli.Command {
	return &cli.Command{
		Name:      "tdee",
		Usage:     "Estimate total daily energy expenditure",
		ArgsUsage: "[LOG_FILE]",
		Description: `Estimate total daily energy expenditure (TDEE) in kcal/day.

Two modes are available:

Parameter mode (no arguments) applies the Katch-McArdle formula to the
supplied body composition:

  meal-planner tdee --weight 80 --body-fat 20 --activity-level moderate

Log mode reads a CSV intake log with 'date, kg, kcal' columns holding
daily morning weight and calories consumed, and derives the estimate
from observed weight change. One 'date,estimate' line per resolvable
day is written to stdout; the log must span at least 15 days.`,
		Flags: []cli.Flag{
			&cli.FloatFlag{
				Name:  "weight",
				Usage: "Body weight in kilograms",
			},
			&cli.FloatFlag{
				Name:  "body-fat",
				Usage: "Body fat as a percentage of total weight",
			},
			&cli.StringFlag{
				Name: "activity-level",
				Usage: fmt.Sprintf("Habitual activity level (supported values: %v)",
					tdee.SupportedActivityLevels()),
			},
			logLevelFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			setupLogging(cmd)

			if path := cmd.Args().First(); path != "" {
				return estimateFromLog(path)
			}

			activity, err := tdee.ParseActivityLevel(cmd.String("activity-level"))
			if err != nil {
				return err
			}

			estimate, err := tdee.Calculate(tdee.Params{
				Weight:   cmd.Float("weight"),
				BodyFat:  cmd.Float("body-fat"),
				Activity: activity,
			})
			if err != nil {
				return err
			}

			fmt.Printf("%.2f\n", estimate)
			return nil
		},
	}
}

// estimateFromLog derives expenditure estimates from an intake log and
// prints one date,estimate line per resolvable day. The running summary
// goes to stderr so stdout stays machine-readable.
func estimateFromLog(path string) error {
	entries, err := tdee.LoadLog(path)
	if err != nil {
		return unknownFile(err, path)
	}

	estimates, err := tdee.EstimateLog(entries)
	if err != nil {
		return err
	}

	for _, e := range estimates {
		fmt.Printf("%s,%.2f\n", e.Date, e.Kcal)
	}

	latest := estimates[len(estimates)-1]
	fmt.Fprintf(os.Stderr, "estimated expenditure over %d logged days: %.0f kcal/day\n",
		len(entries), latest.Kcal)
	return nil
}
