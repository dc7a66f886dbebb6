package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testRecipeCSV = "name, protein, carbs, fat\n" +
	"meal-one, 50, 10, 5\n" +
	"meal-two, 42, 11, 11\n"

func writeTestFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}
	return path
}

// captureOutput swaps stdout and stderr for the duration of fn and
// returns what was written to each.
func captureOutput(t *testing.T, fn func()) (stdout, stderr string) {
	t.Helper()

	oldOut, oldErr := os.Stdout, os.Stderr
	outR, outW, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	errR, errW, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}

	os.Stdout, os.Stderr = outW, errW
	defer func() {
		os.Stdout, os.Stderr = oldOut, oldErr
	}()

	fn()

	outW.Close()
	errW.Close()
	outB, _ := io.ReadAll(outR)
	errB, _ := io.ReadAll(errR)
	return string(outB), string(errB)
}

func TestRunHelp(t *testing.T) {
	var short, long string

	stdout, _ := captureOutput(t, func() {
		if code := Run(context.Background(), []string{"-h"}); code != 0 {
			t.Errorf("Run(-h) = %d, want 0", code)
		}
	})
	short = stdout

	stdout, _ = captureOutput(t, func() {
		if code := Run(context.Background(), []string{"--help"}); code != 0 {
			t.Errorf("Run(--help) = %d, want 0", code)
		}
	})
	long = stdout

	if short != long {
		t.Error("-h and --help output differ")
	}
	if !strings.HasPrefix(short, "usage: meal-planner RECIPE_FILE [OPTIONS]\n") {
		t.Errorf("unexpected usage first line: %q", strings.SplitN(short, "\n", 2)[0])
	}
}

func TestRunHelpAnywhere(t *testing.T) {
	stdout, _ := captureOutput(t, func() {
		if code := Run(context.Background(), []string{"recipes.csv", "-n", "2", "--help"}); code != 0 {
			t.Errorf("Run() = %d, want 0", code)
		}
	})
	if !strings.HasPrefix(stdout, "usage: meal-planner") {
		t.Error("expected usage output when --help is present")
	}
}

func TestRunNoArgs(t *testing.T) {
	_, stderr := captureOutput(t, func() {
		if code := Run(context.Background(), nil); code != 1 {
			t.Errorf("Run() = %d, want 1", code)
		}
	})
	if !strings.HasPrefix(stderr, "Error parsing arguments: []\n") {
		t.Errorf("unexpected stderr: %q", stderr)
	}
}

func TestRunUnknownFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.csv")

	_, stderr := captureOutput(t, func() {
		if code := Run(context.Background(), []string{path}); code != 1 {
			t.Errorf("Run() = %d, want 1", code)
		}
	})
	want := fmt.Sprintf("Unknown file: %s.\n", path)
	if stderr != want {
		t.Errorf("stderr = %q, want %q", stderr, want)
	}
}

func TestRunUnknownFlag(t *testing.T) {
	path := writeTestFile(t, "recipes.csv", testRecipeCSV)

	_, stderr := captureOutput(t, func() {
		if code := Run(context.Background(), []string{path, "-x", "1"}); code != 1 {
			t.Errorf("Run() = %d, want 1", code)
		}
	})
	if !strings.HasPrefix(stderr, "Error parsing arguments: ") {
		t.Errorf("unexpected stderr: %q", stderr)
	}
}

func TestRunExtraArguments(t *testing.T) {
	path := writeTestFile(t, "recipes.csv", testRecipeCSV)

	_, stderr := captureOutput(t, func() {
		if code := Run(context.Background(), []string{path, "extra"}); code != 1 {
			t.Errorf("Run() = %d, want 1", code)
		}
	})
	if !strings.HasPrefix(stderr, "Error parsing arguments: ") {
		t.Errorf("unexpected stderr: %q", stderr)
	}
}

func TestRunMalformedRange(t *testing.T) {
	path := writeTestFile(t, "recipes.csv", testRecipeCSV)

	_, stderr := captureOutput(t, func() {
		if code := Run(context.Background(), []string{path, "-kcal", "200:100"}); code != 1 {
			t.Errorf("Run() = %d, want 1", code)
		}
	})
	if !strings.Contains(stderr, "kcal") {
		t.Errorf("expected range error naming the metric, got %q", stderr)
	}
}

func TestRunPlanSearch(t *testing.T) {
	path := writeTestFile(t, "recipes.csv", testRecipeCSV)
	out := filepath.Join(t.TempDir(), "plans.json")

	_, stderr := captureOutput(t, func() {
		code := Run(context.Background(), []string{path, "-c", "0:25", "-n", "2", "--output", out})
		if code != 0 {
			t.Errorf("Run() = %d, want 0", code)
		}
	})
	_ = stderr

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}

	var plans []map[string]any
	if err := json.Unmarshal(data, &plans); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if len(plans) != 3 {
		t.Fatalf("got %d plans, want 3", len(plans))
	}
	wantKcal := []float64{285, 311, 596}
	for i, p := range plans {
		if got := p["kcal"].(float64); got != wantKcal[i] {
			t.Errorf("plan %d kcal = %v, want %v", i, got, wantKcal[i])
		}
	}
}

// The recipe file may come before or after the options.
func TestRunArgumentOrder(t *testing.T) {
	path := writeTestFile(t, "recipes.csv", testRecipeCSV)

	fileFirst := filepath.Join(t.TempDir(), "first.json")
	fileLast := filepath.Join(t.TempDir(), "last.json")

	captureOutput(t, func() {
		if code := Run(context.Background(), []string{path, "-c", "0:25", "--output", fileFirst}); code != 0 {
			t.Fatalf("file-first Run() = %d, want 0", code)
		}
		if code := Run(context.Background(), []string{"-c", "0:25", "--output", fileLast, path}); code != 0 {
			t.Fatalf("file-last Run() = %d, want 0", code)
		}
	})

	first, err := os.ReadFile(fileFirst)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	last, err := os.ReadFile(fileLast)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	if string(first) != string(last) {
		t.Error("argument order changed the results")
	}
}

func TestRunEmptyResult(t *testing.T) {
	path := writeTestFile(t, "recipes.csv", testRecipeCSV)
	out := filepath.Join(t.TempDir(), "plans.json")

	captureOutput(t, func() {
		if code := Run(context.Background(), []string{path, "-kcal", "10000:", "--output", out}); code != 0 {
			t.Errorf("Run() = %d, want 0", code)
		}
	})

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	var plans []map[string]any
	if err := json.Unmarshal(data, &plans); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(plans) != 0 {
		t.Errorf("got %d plans, want 0", len(plans))
	}
}

func TestVersionDefaults(t *testing.T) {
	if name != "meal-planner" {
		t.Errorf("name = %q, want %q", name, "meal-planner")
	}
	if version == "" || commit == "" || date == "" {
		t.Error("build metadata should not be empty")
	}
}

func TestIsParseError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "unknown flag", err: errors.New("flag provided but not defined: -x"), want: true},
		{name: "missing flag value", err: errors.New("flag needs an argument: -n"), want: true},
		{name: "bad flag value", err: errors.New(`invalid value "two" for flag -n: parse error`), want: true},
		{name: "action error", err: errors.New("Unknown file: recipes.csv."), want: false},
		{name: "range error", err: errors.New("minimum 50 greater than maximum 10"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isParseError(tt.err); got != tt.want {
				t.Errorf("isParseError(%v) = %t, want %t", tt.err, got, tt.want)
			}
		})
	}
}
