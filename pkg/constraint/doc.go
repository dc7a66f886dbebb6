// Package constraint models the nutritional bounds a meal plan must satisfy.
//
// A Range is an optional [minimum, maximum] bound on a single numeric
// metric. Either side may be absent, and a range with no bounds never
// rejects a value. Ranges are parsed from strings of the form:
//
//	MIN:MAX   between MIN and MAX inclusive
//	MIN:      at least MIN
//	:MAX      at most MAX
//	N         exactly N (both bounds set to N)
//
// A Set collects the named ranges for all plan metrics together with the
// search limits (maximum recipes per plan, maximum plans reported). Sets
// are built once from caller input and never mutated afterwards; a metric
// without a range in the set is unconstrained.
package constraint
