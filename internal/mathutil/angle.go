package mathutil

import "math"

// StartAngle is the reference angle of the first segment: the top of the circle
// in a y-down system where 0° points right and angles grow clockwise.
const StartAngle = -90.0

// Deg2Rad converts degrees to radians.
func Deg2Rad(d float64) float64 {
	return d * math.Pi / 180
}

// Rad2Deg converts radians to degrees.
func Rad2Deg(r float64) float64 {
	return r * 180 / math.Pi
}

// NormalizeDeg maps an angle into [0, 360).
func NormalizeDeg(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	return a
}

// InSweep reports whether angle a lies on the clockwise sweep from start to end.
// A sweep of a full turn or more contains every angle.
func InSweep(a, start, end float64) bool {
	if end-start >= 360 {
		return true
	}
	if end <= start {
		return false
	}
	off := NormalizeDeg(a - start)
	return off <= end-start
}
