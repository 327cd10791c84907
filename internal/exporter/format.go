package exporter

import (
	"fmt"
)

// formatSigned formats a delta rounded to a whole number with an explicit
// "+" for non-negative values, e.g. +5 and -3.
func formatSigned(v float64) string {
	if v >= 0 {
		return fmt.Sprintf("+%.0f", v)
	}
	return fmt.Sprintf("%.0f", v)
}

// formatCount formats a metric value rounded to a whole number
func formatCount(v float64) string {
	return fmt.Sprintf("%.0f", v)
}

// percentChange computes diff as a percentage of the previous-period value.
// A zero previous period is defined as 100% for a positive diff and 0%
// otherwise.
func percentChange(diff, previous float64) float64 {
	if previous != 0 {
		return (diff / previous) * 100
	}
	if diff > 0 {
		return 100
	}
	return 0
}
