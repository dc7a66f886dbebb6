package planner

import (
	"context"
	"reflect"
	"testing"

	"github.com/NSteinhoff/meal-planner/pkg/constraint"
	"github.com/NSteinhoff/meal-planner/pkg/recipe"
)

// testTable returns the two-recipe fixture used across search tests:
// meal-one is 285 kcal with protein fraction 0.70, meal-two is 311 kcal
// with protein fraction 0.54.
func testTable() recipe.Table {
	return recipe.Table{
		recipe.New("meal-one", 50, 10, 5),
		recipe.New("meal-two", 42, 11, 11),
	}
}

func planMeals(plans []Plan) [][]string {
	out := make([][]string, len(plans))
	for i, p := range plans {
		out[i] = p.Meals
	}
	return out
}

func TestSearch_CarbsBound(t *testing.T) {
	cs := constraint.NewSet(
		constraint.WithRange(constraint.MetricCarbs, mustRange(t, "0:25")),
		constraint.WithMaxMeals(2),
	)

	plans, err := Search(context.Background(), testTable(), cs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := [][]string{
		{"meal-one"},
		{"meal-two"},
		{"meal-one", "meal-two"},
	}
	if !reflect.DeepEqual(planMeals(plans), want) {
		t.Fatalf("expected plans %v, got %v", want, planMeals(plans))
	}

	if plans[0].Kcal != 285 || plans[0].C != 10 {
		t.Errorf("first plan: expected 285 kcal and 10g carbs, got %v kcal and %vg", plans[0].Kcal, plans[0].C)
	}
	if plans[1].Kcal != 311 || plans[1].C != 11 {
		t.Errorf("second plan: expected 311 kcal and 11g carbs, got %v kcal and %vg", plans[1].Kcal, plans[1].C)
	}
	if plans[2].Kcal != 596 || plans[2].C != 21 {
		t.Errorf("pair plan: expected 596 kcal and 21g carbs, got %v kcal and %vg", plans[2].Kcal, plans[2].C)
	}
}

func TestSearch_ProteinFractionBound(t *testing.T) {
	cs := constraint.NewSet(
		constraint.WithRange(constraint.MetricProteinFraction, mustRange(t, "0.5:1.0")),
		constraint.WithMaxMeals(1),
		constraint.WithMaxResults(2),
	)

	plans, err := Search(context.Background(), testTable(), cs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := [][]string{{"meal-one"}, {"meal-two"}}
	if !reflect.DeepEqual(planMeals(plans), want) {
		t.Fatalf("expected plans %v, got %v", want, planMeals(plans))
	}

	if plans[0].Pi != 0.7 {
		t.Errorf("expected meal-one protein fraction 0.7, got %v", plans[0].Pi)
	}
	if plans[1].Pi != 0.54 {
		t.Errorf("expected meal-two protein fraction 0.54, got %v", plans[1].Pi)
	}
}

func TestSearch_UnconstrainedEnumeratesAllSubsets(t *testing.T) {
	table := recipe.Table{
		recipe.New("a", 10, 10, 10),
		recipe.New("b", 20, 20, 20),
		recipe.New("c", 30, 30, 30),
	}

	cs := constraint.NewSet(
		constraint.WithMaxMeals(len(table)),
		constraint.WithMaxResults(1<<len(table)-1),
	)

	plans, err := Search(context.Background(), table, cs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Every non-empty subset in canonical order: sizes ascending, then
	// lexicographic over recipe indices.
	want := [][]string{
		{"a"}, {"b"}, {"c"},
		{"a", "b"}, {"a", "c"}, {"b", "c"},
		{"a", "b", "c"},
	}
	if !reflect.DeepEqual(planMeals(plans), want) {
		t.Fatalf("expected plans %v, got %v", want, planMeals(plans))
	}
}

func TestSearch_OrderInvariant(t *testing.T) {
	table := recipe.Table{
		recipe.New("a", 10, 10, 10),
		recipe.New("b", 20, 20, 20),
		recipe.New("c", 30, 30, 30),
		recipe.New("d", 40, 40, 40),
	}

	cs := constraint.NewSet(
		constraint.WithMaxMeals(len(table)),
		constraint.WithMaxResults(1<<len(table)-1),
	)

	plans, err := Search(context.Background(), table, cs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := 1; i < len(plans); i++ {
		if plans[i-1].Size() > plans[i].Size() {
			t.Errorf("plan %d (size %d) precedes plan %d (size %d): size order violated",
				i-1, plans[i-1].Size(), i, plans[i].Size())
		}
	}
}

func TestSearch_Determinism(t *testing.T) {
	cs := constraint.NewSet(constraint.WithMaxMeals(2))

	first, err := Search(context.Background(), testTable(), cs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for range 5 {
		again, err := Search(context.Background(), testTable(), cs)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reflect.DeepEqual(first, again) {
			t.Fatal("expected identical results across repeated searches")
		}
	}
}

func TestSearch_ResultCap(t *testing.T) {
	table := recipe.Table{
		recipe.New("a", 10, 10, 10),
		recipe.New("b", 20, 20, 20),
		recipe.New("c", 30, 30, 30),
		recipe.New("d", 40, 40, 40),
	}

	cs := constraint.NewSet(
		constraint.WithMaxMeals(len(table)),
		constraint.WithMaxResults(3),
	)

	plans, err := Search(context.Background(), table, cs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(plans) != 3 {
		t.Fatalf("expected exactly 3 plans, got %d", len(plans))
	}

	want := [][]string{{"a"}, {"b"}, {"c"}}
	if !reflect.DeepEqual(planMeals(plans), want) {
		t.Fatalf("expected first 3 singles %v, got %v", want, planMeals(plans))
	}
}

func TestSearch_BoundSatisfaction(t *testing.T) {
	table := recipe.Table{
		recipe.New("a", 30, 5, 2),
		recipe.New("b", 10, 60, 20),
		recipe.New("c", 45, 10, 8),
		recipe.New("d", 5, 80, 35),
	}

	cs := constraint.NewSet(
		constraint.WithRange(constraint.MetricKcal, mustRange(t, "100:700")),
		constraint.WithRange(constraint.MetricProtein, mustRange(t, "20:")),
		constraint.WithRange(constraint.MetricProteinFraction, mustRange(t, "0.3:")),
		constraint.WithMaxMeals(3),
		constraint.WithMaxResults(100),
	)

	plans, err := Search(context.Background(), table, cs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(plans) == 0 {
		t.Fatal("expected at least one accepted plan")
	}

	for i, p := range plans {
		if p.Kcal < 100 || p.Kcal > 700 {
			t.Errorf("plan %d kcal %v outside [100, 700]", i, p.Kcal)
		}
		if p.P < 20 {
			t.Errorf("plan %d protein %v below minimum 20", i, p.P)
		}
		if p.Pi < 0.3 {
			t.Errorf("plan %d protein fraction %v below minimum 0.3", i, p.Pi)
		}
	}
}

func TestSearch_Degenerate(t *testing.T) {
	t.Run("empty table", func(t *testing.T) {
		plans, err := Search(context.Background(), recipe.Table{}, constraint.NewSet())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(plans) != 0 {
			t.Errorf("expected empty result, got %v", plans)
		}
	})

	t.Run("max meals zero", func(t *testing.T) {
		cs := constraint.NewSet(constraint.WithMaxMeals(0))
		plans, err := Search(context.Background(), testTable(), cs)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(plans) != 0 {
			t.Errorf("expected empty result for max meals 0, got %v", plans)
		}
	})

	t.Run("nil constraint set uses defaults", func(t *testing.T) {
		plans, err := Search(context.Background(), testTable(), nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(plans) != 3 {
			t.Errorf("expected all 3 subsets with default limits, got %d", len(plans))
		}
	})

	t.Run("max meals exceeding table size is clamped", func(t *testing.T) {
		cs := constraint.NewSet(constraint.WithMaxMeals(10))
		plans, err := Search(context.Background(), testTable(), cs)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(plans) != 3 {
			t.Errorf("expected 3 subsets, got %d", len(plans))
		}
	})
}

func TestSearch_Cancellation(t *testing.T) {
	// A table large enough that the candidate space dwarfs the
	// cancellation check interval.
	table := make(recipe.Table, 24)
	for i := range table {
		table[i] = recipe.New(string(rune('a'+i)), 1, 1, 1)
	}

	cs := constraint.NewSet(
		constraint.WithRange(constraint.MetricKcal, mustRange(t, "1000000:")),
		constraint.WithMaxMeals(len(table)),
	)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := Search(ctx, table, cs); err == nil {
		t.Fatal("expected context cancellation error")
	}
}

func TestNewPlan_OutputShape(t *testing.T) {
	p := NewPlan(testTable())

	if p.Kcal != 596 {
		t.Errorf("expected 596 kcal, got %v", p.Kcal)
	}
	if p.Pi != 0.62 {
		t.Errorf("expected protein fraction 0.62, got %v", p.Pi)
	}
	if !reflect.DeepEqual(p.Meals, []string{"meal-one", "meal-two"}) {
		t.Errorf("unexpected meals: %v", p.Meals)
	}

	// 285/596 = 0.478..., 311/596 = 0.521...
	if !reflect.DeepEqual(p.KcalShare, []float64{0.48, 0.52}) {
		t.Errorf("unexpected calorie shares: %v", p.KcalShare)
	}

	if len(p.Details) != 2 {
		t.Fatalf("expected 2 details, got %d", len(p.Details))
	}
	first := Detail{Name: "meal-one", Kcal: 285, P: 50, F: 5, C: 10}
	if p.Details[0] != first {
		t.Errorf("unexpected first detail: %+v", p.Details[0])
	}
}

func TestNewPlan_ZeroCalories(t *testing.T) {
	p := NewPlan([]recipe.Recipe{recipe.New("water", 0, 0, 0)})

	if p.Kcal != 0 || p.Pi != 0 {
		t.Errorf("expected zero kcal and fraction, got %v and %v", p.Kcal, p.Pi)
	}
	if p.KcalShare[0] != 0 {
		t.Errorf("expected zero calorie share, got %v", p.KcalShare[0])
	}
}
