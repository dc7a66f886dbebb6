package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/urfave/cli/v3"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/NSteinhoff/meal-planner/pkg/recipe"
	"github.com/NSteinhoff/meal-planner/pkg/serializer"
)

func recipesCmd() *cli.Command {
	return &cli.Command{
		Name:      "recipes",
		Usage:     "Parse and display the recipe table",
		ArgsUsage: "RECIPE_FILE",
		Description: `Parse a recipe file and display the table with derived calories.

The table can be output in JSON, YAML, or table format.`,
		Flags: []cli.Flag{
			outputFlag,
			formatFlag,
			logLevelFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			setupLogging(cmd)

			args := cmd.Args().Slice()
			if len(args) != 1 {
				return &argsError{args: args}
			}
			path := args[0]

			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			table, err := recipe.Load(path)
			if err != nil {
				return unknownFile(err, path)
			}

			if outFormat == serializer.FormatTable {
				out := io.Writer(os.Stdout)
				if outPath := cmd.String("output"); outPath != "" {
					f, err := os.Create(outPath)
					if err != nil {
						return err
					}
					defer f.Close()
					out = f
				}
				return writeRecipeTable(out, table)
			}

			ser := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			defer closeSerializer(ser)

			return ser.Serialize(ctx, table)
		},
	}
}

// writeRecipeTable renders the table one recipe per row with title-cased
// column headers.
func writeRecipeTable(w io.Writer, table recipe.Table) error {
	title := cases.Title(language.English)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
		title.String("name"),
		title.String("protein"),
		title.String("carbs"),
		title.String("fat"),
		title.String("kcal"),
	)
	for _, r := range table {
		fmt.Fprintf(tw, "%s\t%.2f\t%.2f\t%.2f\t%.2f\n",
			r.Name, r.Protein, r.Carbs, r.Fat, r.Kcal())
	}
	return tw.Flush()
}
