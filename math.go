package ascent

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// precision is the number of decimals kept in flight records.
const precision = 2

// round rounds to the record precision, half away from zero.
func round(v float64) float64 {
	return scalar.Round(v, precision)
}

// clamp bounds v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}
