package mathutil

import (
	"math"
	"strconv"
)

// CoordPrecision is the number of decimals kept in path coordinates.
const CoordPrecision = 3

// Round rounds v to the given number of decimals.
func Round(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}

// FormatCoord renders a coordinate for path data: fixed precision, trailing
// zeros trimmed, never "-0".
func FormatCoord(v float64) string {
	v = Round(v, CoordPrecision)
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
