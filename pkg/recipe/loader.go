package recipe

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/NSteinhoff/meal-planner/pkg/errors"
	"github.com/NSteinhoff/meal-planner/pkg/serializer"
)

// Column names expected in the recipe file header.
const (
	ColumnName    = "name"
	ColumnProtein = "protein"
	ColumnCarbs   = "carbs"
	ColumnFat     = "fat"
)

// Load reads a recipe table from path. CSV is the primary format; files with
// a .json, .yaml, or .yml extension are deserialized as structured recipe
// lists instead. HTTP and HTTPS URLs are supported for structured files.
func Load(path string) (Table, error) {
	if hasStructuredExt(path) {
		return loadStructured(path)
	}
	return loadCSV(path)
}

// hasStructuredExt reports whether the path carries an extension handled by
// the structured-data reader. Everything else is treated as delimited text.
func hasStructuredExt(path string) bool {
	p := strings.ToLower(path)
	return strings.HasSuffix(p, ".json") ||
		strings.HasSuffix(p, ".yaml") ||
		strings.HasSuffix(p, ".yml")
}

func loadCSV(path string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WrapWithContext(
			errors.ErrCodeNotFound,
			"failed to open recipe file",
			err,
			map[string]any{"path": path},
		)
	}
	defer f.Close()

	table, err := ParseCSV(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse recipe file %q: %w", path, err)
	}

	slog.Debug("loaded recipe table", "path", path, "recipes", len(table))
	return table, nil
}

func loadStructured(path string) (Table, error) {
	records, err := serializer.FromFile[[]Recipe](path)
	if err != nil {
		return nil, err
	}

	table := make(Table, 0, len(*records))
	for i, rec := range *records {
		r := New(rec.Name, rec.Protein, rec.Carbs, rec.Fat)
		if err := r.Validate(); err != nil {
			return nil, fmt.Errorf("invalid recipe at index %d: %w", i, err)
		}
		table = append(table, r)
	}

	slog.Debug("loaded recipe table", "path", path, "recipes", len(table))
	return table, nil
}

// ParseCSV reads a recipe table from delimited text. The first row is the
// header and must contain the name, protein, carbs, and fat columns in any
// order; surrounding whitespace and header case are ignored, and columns
// beyond the required four are skipped. Blank lines are skipped.
func ParseCSV(r io.Reader) (Table, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("recipe file is empty")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}

	for _, required := range []string{ColumnName, ColumnProtein, ColumnCarbs, ColumnFat} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("missing required column %q", required)
		}
	}

	var table Table
	for row := 1; ; row++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row %d: %w", row, err)
		}

		name := strings.TrimSpace(record[cols[ColumnName]])

		protein, err := parseMacro(record, cols, ColumnProtein, row)
		if err != nil {
			return nil, err
		}
		carbs, err := parseMacro(record, cols, ColumnCarbs, row)
		if err != nil {
			return nil, err
		}
		fat, err := parseMacro(record, cols, ColumnFat, row)
		if err != nil {
			return nil, err
		}

		rec := New(name, protein, carbs, fat)
		if err := rec.Validate(); err != nil {
			return nil, fmt.Errorf("invalid recipe %q at row %d: %w", name, row, err)
		}

		table = append(table, rec)
	}

	return table, nil
}

func parseMacro(record []string, cols map[string]int, col string, row int) (float64, error) {
	raw := strings.TrimSpace(record[cols[col]])
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q at row %d: %w", col, raw, row, err)
	}
	return v, nil
}
