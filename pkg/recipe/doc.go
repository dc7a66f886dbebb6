// Package recipe defines the recipe model and recipe table loading.
//
// A Recipe carries a name and its per-serving macronutrients in grams.
// Calories are never stored; they are derived from the macros at
// 4 kcal/g for protein and carbs and 9 kcal/g for fat. All macro values
// are rounded to two decimal places on construction so that derived
// values, constraint checks, and output all agree.
//
// Tables are loaded from CSV files with a header row:
//
//	name     , protein, carbs,  fat
//	meal-one ,    50.5,  10.6, 25.2
//	meal-two ,    42.3,    11, 15.3
//
// Column order is free, surrounding whitespace is trimmed, and columns
// beyond the required four are ignored. Files with a .json, .yaml, or
// .yml extension are read as structured recipe lists instead.
//
// Table order is meaningful: the position of a recipe determines the
// order in which meal plan combinations are enumerated.
package recipe
