// Package cli implements the command-line interface for the meal-planner tool.
//
// # Overview
//
// The meal-planner CLI searches recipe combinations for meal plans that
// satisfy nutritional constraints, displays recipe tables, estimates daily
// energy expenditure, and runs the HTTP API server.
//
// # Primary Invocation
//
// Plan search is the root command; the recipe file comes first, before
// the options:
//
//	meal-planner recipes.csv -n 3 -kcal 1800:2200 -pi 0.3:
//
// Constraint options take a MIN:MAX range with either bound optional.
// Accepted plans are printed as a JSON array on stdout, in a
// deterministic order: smaller plans first, ties broken by the recipe
// order in the input file.
//
// # Commands
//
// recipes - Parse and display the recipe table:
//
//	meal-planner recipes recipes.csv --format table
//
// tdee - Estimate total daily energy expenditure, either from body
// composition parameters or from a daily intake/weight log:
//
//	meal-planner tdee --weight 80 --body-fat 20 --activity-level moderate
//	meal-planner tdee intake-log.csv
//
// serve - Run the meal planner API server:
//
//	meal-planner serve recipes.csv
//
// # Global Flags
//
//	--output, -o   Output file path (default: stdout)
//	--format       Output format: json, yaml, table (default: json)
//	--log-level    Logging verbosity (debug, info, warn, error)
//	--help, -h     Show usage
//
// # Exit Codes
//
//	0  Success
//	1  General error (invalid arguments, unknown file, execution failure)
//
// # Architecture
//
// The CLI uses the urfave/cli/v3 framework and delegates to specialized
// packages:
//   - pkg/recipe - Recipe table parsing
//   - pkg/constraint - Range constraint parsing
//   - pkg/planner - Combination search
//   - pkg/tdee - Energy expenditure estimation
//   - pkg/api - HTTP API server
//   - pkg/serializer - Output formatting
//   - pkg/logging - Structured logging
//
// Diagnostics are logged to stderr so stdout carries results only.
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/NSteinhoff/meal-planner/pkg/cli.version=1.0.0'"
package cli
