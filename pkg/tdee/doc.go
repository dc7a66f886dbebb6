// Package tdee estimates total daily energy expenditure.
//
// Two modes are supported: a parameter-based estimate from body
// composition and activity level using the Katch-McArdle formula, and a
// data-driven estimate from a daily log of weight and calorie intake
// that infers expenditure from observed weight change.
package tdee
