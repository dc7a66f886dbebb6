package tdee

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/NSteinhoff/meal-planner/pkg/errors"
)

// Column names expected in the log file header.
const (
	ColumnDate = "date"
	ColumnKg   = "kg"
	ColumnKcal = "kcal"
)

// kcalPerKg is the energy equivalent of one kilogram of body mass.
const kcalPerKg = 7700

// windowDays is the width of the rolling averages and the spacing
// between the averages compared for the weight delta.
const windowDays = 7

// MinLogEntries is the smallest log that yields an estimate: one day of
// intake lag, two full rolling windows a week apart.
const MinLogEntries = 2*windowDays + 1

// Entry is one day of the intake log: morning weight and the calories
// consumed that day.
type Entry struct {
	Date string  `json:"date" yaml:"date"`
	Kg   float64 `json:"kg" yaml:"kg"`
	Kcal float64 `json:"kcal" yaml:"kcal"`
}

// Estimate is the expenditure estimate as of a given log date.
type Estimate struct {
	Date string  `json:"date" yaml:"date"`
	Kcal float64 `json:"kcal" yaml:"kcal"`
}

// LoadLog reads an intake log from a CSV file at path.
func LoadLog(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WrapWithContext(
			errors.ErrCodeNotFound,
			"failed to open log file",
			err,
			map[string]any{"path": path},
		)
	}
	defer f.Close()

	entries, err := ParseLog(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse log file %q: %w", path, err)
	}

	slog.Debug("loaded intake log", "path", path, "entries", len(entries))
	return entries, nil
}

// ParseLog reads an intake log from delimited text. The first row is the
// header and must contain the date, kg, and kcal columns in any order;
// surrounding whitespace and header case are ignored. Rows are expected
// in chronological order, one per day.
func ParseLog(r io.Reader) ([]Entry, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("log file is empty")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}

	for _, required := range []string{ColumnDate, ColumnKg, ColumnKcal} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("missing required column %q", required)
		}
	}

	var entries []Entry
	for row := 1; ; row++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row %d: %w", row, err)
		}

		kg, err := parseLogValue(record, cols, ColumnKg, row)
		if err != nil {
			return nil, err
		}
		kcal, err := parseLogValue(record, cols, ColumnKcal, row)
		if err != nil {
			return nil, err
		}

		entries = append(entries, Entry{
			Date: strings.TrimSpace(record[cols[ColumnDate]]),
			Kg:   kg,
			Kcal: kcal,
		})
	}

	return entries, nil
}

func parseLogValue(record []string, cols map[string]int, col string, row int) (float64, error) {
	raw := strings.TrimSpace(record[cols[col]])
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q at row %d: %w", col, raw, row, err)
	}
	return v, nil
}

// window is a rolling mean of intake and weight over windowDays entries.
type window struct {
	start string
	end   string
	kcal  float64
	kg    float64
}

// EstimateLog derives expenditure estimates from a chronological intake
// log. Intake is lagged by one day so that yesterday's calories are
// weighed against today's weight, both series are smoothed with
// windowDays rolling means, and the week-over-week weight delta is
// converted to an energy surplus at kcalPerKg. Daily expenditure is mean
// intake minus the daily surplus, and each estimate is the cumulative
// mean of expenditure up to that date.
func EstimateLog(entries []Entry) ([]Estimate, error) {
	if len(entries) < MinLogEntries {
		return nil, errors.NewWithContext(
			errors.ErrCodeInvalidRequest,
			fmt.Sprintf("need at least %d log entries for an estimate", MinLogEntries),
			map[string]any{"entries": len(entries)},
		)
	}

	lagged := make([]Entry, len(entries)-1)
	for i := range lagged {
		lagged[i] = Entry{
			Date: entries[i+1].Date,
			Kg:   entries[i+1].Kg,
			Kcal: entries[i].Kcal,
		}
	}

	windows := make([]window, len(lagged)-windowDays+1)
	for i := range windows {
		w := window{
			start: lagged[i].Date,
			end:   lagged[i+windowDays-1].Date,
		}
		for _, e := range lagged[i : i+windowDays] {
			w.kcal += e.Kcal
			w.kg += e.Kg
		}
		w.kcal /= windowDays
		w.kg /= windowDays
		windows[i] = w
	}

	estimates := make([]Estimate, 0, len(windows)-windowDays)
	var cumulative float64
	for i := windowDays; i < len(windows); i++ {
		now, previous := windows[i], windows[i-windowDays]

		surplus := (now.kg - previous.kg) * kcalPerKg
		expended := now.kcal - surplus/windowDays

		cumulative += expended
		estimates = append(estimates, Estimate{
			Date: now.end,
			Kcal: cumulative / float64(len(estimates)+1),
		})
	}

	return estimates, nil
}
