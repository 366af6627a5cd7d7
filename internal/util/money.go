// Package util holds small shared helpers with no domain knowledge.
package util

import "math"

// RoundCurrency rounds an amount to two decimal places, the smallest unit the
// till deals in. Totals are rounded once at checkout so repeated float
// accumulation never drifts past currency precision.
func RoundCurrency(amount float64) float64 {
	return math.Round(amount*100) / 100
}
