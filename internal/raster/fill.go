package raster

import (
	"image/color"
	"math"

	"github.com/dianabombi/student-advisor-sub002/internal/mathutil"
)

// FillWedge fills the ring sector between radii ir and r (ir == 0 for a pie
// wedge) swept clockwise from start to end degrees. Pixels are sampled at
// their centres. A sweep of a full turn fills the whole disc or ring.
func FillWedge(fb *FrameBuffer, c mathutil.Point, ir, r, start, end float64, col color.NRGBA) {
	if r <= 0 || end <= start {
		return
	}
	minY := int(math.Floor(c.Y - r))
	maxY := int(math.Ceil(c.Y + r))
	minX := int(math.Floor(c.X - r))
	maxX := int(math.Ceil(c.X + r))
	if minY < 0 {
		minY = 0
	}
	if minX < 0 {
		minX = 0
	}
	if maxY > fb.Height-1 {
		maxY = fb.Height - 1
	}
	if maxX > fb.Width-1 {
		maxX = fb.Width - 1
	}

	r2 := r * r
	ir2 := ir * ir
	for y := minY; y <= maxY; y++ {
		dy := float64(y) + 0.5 - c.Y
		for x := minX; x <= maxX; x++ {
			dx := float64(x) + 0.5 - c.X
			d2 := dx*dx + dy*dy
			if d2 > r2 || d2 < ir2 {
				continue
			}
			a := mathutil.NormalizeDeg(mathutil.Rad2Deg(math.Atan2(dy, dx)))
			if mathutil.InSweep(a, start, end) {
				fb.Blend(x, y, col)
			}
		}
	}
}

// FillRect fills the axis-aligned rectangle [x0, x1) × [y0, y1), sampling pixel centres.
func FillRect(fb *FrameBuffer, x0, y0, x1, y1 float64, col color.NRGBA) {
	for y := int(math.Floor(y0)); y < int(math.Ceil(y1)); y++ {
		cy := float64(y) + 0.5
		if cy < y0 || cy >= y1 {
			continue
		}
		for x := int(math.Floor(x0)); x < int(math.Ceil(x1)); x++ {
			cx := float64(x) + 0.5
			if cx < x0 || cx >= x1 {
				continue
			}
			fb.Blend(x, y, col)
		}
	}
}

// HLine draws a one-pixel horizontal line.
func HLine(fb *FrameBuffer, x0, x1, y int, col color.NRGBA) {
	for x := x0; x < x1; x++ {
		fb.Blend(x, y, col)
	}
}
