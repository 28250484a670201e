package segment

import "github.com/dianabombi/student-advisor-sub002/internal/mathutil"

// HitTest returns the index of the wedge under (x, y), or -1.
// Used by presentation layers to track which wedge is hovered.
func HitTest(ds []Descriptor, g Geometry, x, y float64) int {
	c := g.Center()
	p := mathutil.Point{X: x, Y: y}
	d := c.Dist(p)
	if d > g.Radius() || d < g.InnerRadius() {
		return -1
	}

	a := c.Angle(p)
	for i, s := range ds {
		if s.Sweep == 0 {
			continue
		}
		if mathutil.InSweep(a, s.StartAngle, s.EndAngle) {
			return i
		}
	}
	return -1
}
