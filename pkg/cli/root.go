package cli

import (
	"context"
	goerrors "errors"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	mperrors "github.com/NSteinhoff/meal-planner/pkg/errors"
	"github.com/NSteinhoff/meal-planner/pkg/logging"
)

const (
	name           = "meal-planner"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags to reflect actual version info
	// e.g., -X "github.com/NSteinhoff/meal-planner/pkg/cli.version=1.0.0"
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

const usageText = `usage: meal-planner RECIPE_FILE [OPTIONS]

Create meal plans from recipes in a CSV formatted file
and print a JSON array with the results to stdout.

Example recipe file contents:

    name     , protein, carbs,  fat
    meal-one ,    50.5,  10.6, 25.2
    meal-two ,    42.3,    11, 15.3

The ranges for options take a minimum and an
optional maximum value separated by ':'.

Examples:
  -c 50:100 -> between 50 and 100 grams of carbs
  -f 75:    -> minimum of 75 grams of fat

Options:
  -n                   Maximum number of meals in a plan (default=5).
  -kcal                Calories (kcal) MIN[:MAX]
  -p                   Protein (g) MIN[:MAX]
  -c                   Carbs (g) MIN[:MAX]
  -f                   Fat (g) MIN[:MAX]
  -pi                  Fraction of calories from protein MIN[:MAX]
  --max-results        Maximum number of plans to produce (default=10).
  --output, -o         Write results to a file instead of stdout.
  --format             Output format: json, yaml, or table (default=json).
  --log-level          Log level: debug, info, warn, or error (default=info).
  -h, --help           Show this message and exit.

Commands:
  recipes              Parse and display the recipe table.
  tdee                 Estimate total daily energy expenditure.
  serve                Run the meal planner API server.
`

// argsError reports arguments the command line could not make sense of.
// Its text is part of the CLI contract.
type argsError struct {
	args []string
}

func (e *argsError) Error() string {
	return fmt.Sprintf("Error parsing arguments: %v", e.args)
}

// rootCmd assembles the full command tree: the plan search as the root
// action plus the recipes, tdee, and serve subcommands.
func rootCmd() *cli.Command {
	return &cli.Command{
		Name:                  name,
		Usage:                 "Create meal plans from recipes in a CSV formatted file",
		EnableShellCompletion: true,
		HideHelp:              true,
		Flags:                 planFlags(),
		Commands: []*cli.Command{
			recipesCmd(),
			tdeeCmd(),
			serveCmd(),
		},
		Action: planAction,
	}
}

// Run executes the command line and returns the process exit code.
//
// The primary surface puts the recipe file first, before the options.
// Flag parsing stops at the first positional argument, so a leading
// file path is rotated behind the options before the command runs.
func Run(ctx context.Context, args []string) int {
	sub := len(args) > 0 && isSubcommand(args[0])

	if !sub {
		for _, a := range args {
			if a == "-h" || a == "--help" {
				fmt.Fprint(os.Stdout, usageText)
				return 0
			}
		}
	}

	if len(args) == 0 {
		fmt.Fprintf(os.Stderr, "Error parsing arguments: %v\n", args)
		fmt.Fprint(os.Stderr, usageText)
		return 1
	}

	run := args
	if !sub && !strings.HasPrefix(args[0], "-") {
		run = append(append([]string{}, args[1:]...), args[0])
	}

	if err := rootCmd().Run(ctx, append([]string{name}, run...)); err != nil {
		var aerr *argsError
		switch {
		case goerrors.As(err, &aerr):
			fmt.Fprintln(os.Stderr, aerr)
			fmt.Fprint(os.Stderr, usageText)
		case isParseError(err):
			fmt.Fprintf(os.Stderr, "Error parsing arguments: %v\n", args)
			fmt.Fprint(os.Stderr, usageText)
		default:
			fmt.Fprintln(os.Stderr, err)
		}
		return 1
	}

	return 0
}

func isSubcommand(arg string) bool {
	switch arg {
	case "recipes", "tdee", "serve":
		return true
	}
	return false
}

// flagParseMessages are substrings of the errors that never reach a
// command action because argument parsing failed. The wording comes from
// the stdlib flag package underneath the CLI framework; a framework
// upgrade that changes it will show up in TestIsParseError.
var flagParseMessages = []string{
	"flag provided but not defined",
	"flag needs an argument",
	"invalid value",
}

// isParseError reports whether the error came out of flag parsing rather
// than the command action.
func isParseError(err error) bool {
	msg := err.Error()
	for _, m := range flagParseMessages {
		if strings.Contains(msg, m) {
			return true
		}
	}
	return false
}

// setupLogging installs the default structured logger at the level given
// by the log-level flag. Diagnostics go to stderr so that stdout carries
// results only.
func setupLogging(cmd *cli.Command) {
	logging.SetDefaultStructuredLoggerWithLevel(name, version, cmd.String("log-level"))
}

// unknownFile maps a load failure on path to the user-facing message when
// the file does not exist, and passes every other error through.
func unknownFile(err error, path string) error {
	var serr *mperrors.StructuredError
	if goerrors.As(err, &serr) && serr.Code == mperrors.ErrCodeNotFound {
		return fmt.Errorf("Unknown file: %s.", path)
	}
	return err
}
