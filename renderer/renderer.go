// Package renderer builds the markdown reports shown by the `fit` command
// line tool. Each report takes the already-computed figures and only deals
// with presentation; nothing here touches the filesystem.
package renderer

import "fmt"

// signedCalories formats a kcal/day figure with an explicit sign, for gaps
// and balances.
func signedCalories(v float64) string { return fmt.Sprintf("%+.0f kcal/day", v) }

// calories formats a kcal/day figure.
func calories(v float64) string { return fmt.Sprintf("%.0f kcal/day", v) }

// pounds formats a weight with one decimal.
func pounds(v float64) string { return fmt.Sprintf("%.1f lbs", v) }
