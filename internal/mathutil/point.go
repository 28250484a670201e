package mathutil

import "math"

// Point is a 2D position in pixel space (y grows downwards).
type Point struct {
	X, Y float64
}

// Polar returns the point at radius r and angle deg (degrees) around c.
func Polar(c Point, r, deg float64) Point {
	rad := Deg2Rad(deg)
	return Point{
		X: c.X + r*math.Cos(rad),
		Y: c.Y + r*math.Sin(rad),
	}
}

// Dist returns the Euclidean distance between two points.
func (p Point) Dist(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Angle returns the direction of q seen from p, in degrees within [0, 360).
func (p Point) Angle(q Point) float64 {
	return NormalizeDeg(Rad2Deg(math.Atan2(q.Y-p.Y, q.X-p.X)))
}
