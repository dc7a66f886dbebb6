package tdee

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// logEntries generates n chronological entries. Weight starts at kg and
// changes by kgPerDay each day; intake is constant.
func logEntries(n int, kg, kgPerDay, kcal float64) []Entry {
	entries := make([]Entry, n)
	for i := range entries {
		entries[i] = Entry{
			Date: fmt.Sprintf("2026-01-%02d", i+1),
			Kg:   kg + float64(i)*kgPerDay,
			Kcal: kcal,
		}
	}
	return entries
}

func TestParseLog(t *testing.T) {
	input := `date, kg, kcal
2026-01-01, 80.5, 2200
2026-01-02, 80.3, 2150
2026-01-03, 80.4, 2300
`
	entries, err := ParseLog(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, Entry{Date: "2026-01-01", Kg: 80.5, Kcal: 2200}, entries[0])
	assert.Equal(t, Entry{Date: "2026-01-03", Kg: 80.4, Kcal: 2300}, entries[2])
}

func TestParseLog_ColumnOrderFree(t *testing.T) {
	input := `kcal, date, kg
2000, 2026-01-01, 75
`
	entries, err := ParseLog(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, Entry{Date: "2026-01-01", Kg: 75, Kcal: 2000}, entries[0])
}

func TestParseLog_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty file", input: ""},
		{name: "missing kg column", input: "date, kcal\n2026-01-01, 2000\n"},
		{name: "non-numeric weight", input: "date, kg, kcal\n2026-01-01, heavy, 2000\n"},
		{name: "non-numeric intake", input: "date, kg, kcal\n2026-01-01, 80, lots\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseLog(strings.NewReader(tt.input))
			assert.Error(t, err)
		})
	}
}

func TestEstimateLog_StableWeight(t *testing.T) {
	// Constant weight and intake: expenditure equals intake.
	entries := logEntries(MinLogEntries, 70, 0, 2000)

	estimates, err := EstimateLog(entries)
	require.NoError(t, err)
	require.Len(t, estimates, 1)

	assert.Equal(t, entries[len(entries)-1].Date, estimates[0].Date)
	assert.InDelta(t, 2000, estimates[0].Kcal, 0.001)
}

func TestEstimateLog_SteadyGain(t *testing.T) {
	// Gaining 0.1 kg/day on 2500 kcal: weekly surplus is 0.7 kg x 7700
	// kcal, so daily expenditure is 2500 - 770 = 1730.
	entries := logEntries(22, 70, 0.1, 2500)

	estimates, err := EstimateLog(entries)
	require.NoError(t, err)
	require.Len(t, estimates, 8)

	for _, e := range estimates {
		assert.InDelta(t, 1730, e.Kcal, 0.01)
	}
}

func TestEstimateLog_SteadyLoss(t *testing.T) {
	// Losing 0.05 kg/day on 1800 kcal: expenditure is 1800 + 385 = 2185.
	entries := logEntries(MinLogEntries, 80, -0.05, 1800)

	estimates, err := EstimateLog(entries)
	require.NoError(t, err)
	require.Len(t, estimates, 1)
	assert.InDelta(t, 2185, estimates[0].Kcal, 0.01)
}

func TestEstimateLog_CumulativeMean(t *testing.T) {
	// A one-off shift in intake is smoothed by the cumulative mean, so
	// consecutive estimates move monotonically toward the new level.
	entries := logEntries(30, 70, 0, 2000)
	for i := 20; i < len(entries); i++ {
		entries[i].Kcal = 2300
	}

	estimates, err := EstimateLog(entries)
	require.NoError(t, err)
	require.Greater(t, len(estimates), 2)

	for i := 1; i < len(estimates); i++ {
		assert.GreaterOrEqual(t, estimates[i].Kcal+0.001, estimates[i-1].Kcal,
			"estimate %d should not decrease", i)
	}
}

func TestEstimateLog_TooFewEntries(t *testing.T) {
	_, err := EstimateLog(logEntries(MinLogEntries-1, 70, 0, 2000))
	assert.Error(t, err)

	_, err = EstimateLog(nil)
	assert.Error(t, err)
}
