// Package planner implements the combinatorial meal plan search.
//
// A candidate plan is a non-empty, duplicate-free combination of recipes
// drawn from a table. The search enumerates candidates in a fixed order
// (plan size ascending, then recipe-index lexicographic within a size),
// evaluates each against a constraint set, and collects the first
// MaxResults plans that satisfy every constraint. The order is fully
// deterministic for a given table and constraint set, which makes search
// results reproducible and directly comparable across runs.
//
// Evaluation computes five aggregate metrics per candidate: total
// calories, protein, carbs, fat, and the protein-calorie fraction
// (4 kcal/g protein over total kcal). Metrics are checked in that order
// and evaluation stops at the first failing constraint. The protein
// fraction of a zero-calorie plan is undefined and fails any bounded
// protein-fraction constraint.
//
// The search is a pure single pass: it holds no state between runs and
// never mutates the recipe table or the constraint set.
package planner
