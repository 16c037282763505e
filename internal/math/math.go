package math

import (
	"math"
	"strconv"
)

// Undefined is the representation of a metric that could not be computed.
const Undefined = "undefined"

// Format formats a float with 2 decimals.
// NaN values e.g. from a zero denominator are rendered as Undefined.
func Format(f float64) string {
	return FormatPrecision(f, 2)
}

// FormatPrecision formats a float based on the given precision.
func FormatPrecision(f float64, precision int) string {
	if math.IsNaN(f) {
		return Undefined
	}
	return strconv.FormatFloat(f, 'f', precision, 64)
}

// Ratio divides the given values and returns NaN if the denominator is zero.
func Ratio(num, den float64) float64 {
	if den == 0 {
		return math.NaN()
	}
	return num / den
}
