// Package segment turns a dataset into the wedges of a pie or donut chart.
//
// Angles follow a y-down convention: 0° points right and angles grow clockwise,
// so the first wedge starts at the top of the circle (-90°). Every angle is
// derived from the running sum of values relative to that reference, which keeps
// consecutive wedges exactly contiguous and the last wedge ending at 270°.
package segment

import (
	"strings"

	"github.com/dianabombi/student-advisor-sub002/internal/dataset"
	"github.com/dianabombi/student-advisor-sub002/internal/mathutil"
	"github.com/dianabombi/student-advisor-sub002/internal/palette"
)

// Geometry describes the drawing area of a circular chart.
type Geometry struct {
	Size       float64 // circle bounding box edge, pixels
	Inset      float64 // gap between bounding box and circle edge
	InnerRatio float64 // donut hole radius as a fraction of the outer radius, 0 = pie
}

// Center returns the circle centre.
func (g Geometry) Center() mathutil.Point {
	return mathutil.Point{X: g.Size / 2, Y: g.Size / 2}
}

// Radius returns the outer radius.
func (g Geometry) Radius() float64 {
	return g.Size/2 - g.Inset
}

// InnerRadius returns the donut hole radius (0 for a pie).
func (g Geometry) InnerRadius() float64 {
	return g.Radius() * g.InnerRatio
}

func (g Geometry) validate() error {
	switch {
	case !dataset.ValidNumber(g.Size) || g.Size == 0:
		return dataset.InvalidParam("size", g.Size)
	case !dataset.ValidNumber(g.Inset) || g.Radius() <= 0:
		return dataset.InvalidParam("inset", g.Inset)
	case !dataset.ValidNumber(g.InnerRatio) || g.InnerRatio >= 1:
		return dataset.InvalidParam("inner ratio", g.InnerRatio)
	}
	return nil
}

// Descriptor is one wedge, in input order.
type Descriptor struct {
	Label      string  `json:"label"`
	Value      float64 `json:"value"`
	Color      string  `json:"color"`
	StartAngle float64 `json:"start_angle"`
	EndAngle   float64 `json:"end_angle"`
	Sweep      float64 `json:"sweep"`
	Percentage float64 `json:"percentage"` // rounded to one decimal, display only
	Path       string  `json:"path"`       // SVG path data, empty for zero sweep
	FullCircle bool    `json:"full_circle"`
}

// Compute builds one descriptor per entry.
//
// A zero total is not an error: the result is empty and the caller draws a
// placeholder. Negative or non-finite values and bad geometry are rejected with
// an error wrapping dataset.ErrInvalidValue before anything is produced.
// Zero-value entries are kept with zero sweep and an empty path so that the
// output stays aligned with the legend. Only the sole non-zero entry is drawn
// as a full circle. A total that overflows to infinity is rejected.
func Compute(entries []dataset.Entry, g Geometry) ([]Descriptor, error) {
	if err := g.validate(); err != nil {
		return nil, err
	}
	if err := dataset.Validate(entries); err != nil {
		return nil, err
	}

	var total float64
	nonZero := 0
	for _, e := range entries {
		total += e.Value
		if e.Value > 0 {
			nonZero++
		}
	}
	if total == 0 {
		return []Descriptor{}, nil
	}
	if !dataset.ValidNumber(total) {
		return nil, dataset.InvalidParam("total", total)
	}

	c := g.Center()
	r := g.Radius()
	ir := g.InnerRadius()

	out := make([]Descriptor, len(entries))
	var cum float64
	for i, e := range entries {
		start := angleAt(cum, total)
		cum += e.Value
		end := angleAt(cum, total)
		sweep := end - start

		d := Descriptor{
			Label:      e.Label,
			Value:      e.Value,
			Color:      palette.Pick(e.Color, palette.SeriesColor(i)),
			StartAngle: start,
			EndAngle:   end,
			Sweep:      sweep,
			Percentage: mathutil.Round(e.Value/total*100, 1),
		}

		switch {
		case e.Value == 0:
		case nonZero == 1:
			d.FullCircle = true
			d.Path = circlePath(c, r, ir, start)
		default:
			d.Path = wedgePath(c, r, ir, start, end)
		}
		out[i] = d
	}
	return out, nil
}

func angleAt(cum, total float64) float64 {
	return mathutil.StartAngle + cum/total*360
}

// wedgePath draws a pie wedge (ir == 0) or a ring sector.
func wedgePath(c mathutil.Point, r, ir, start, end float64) string {
	large := "0"
	if end-start > 180 {
		large = "1"
	}

	s := mathutil.Polar(c, r, start)
	e := mathutil.Polar(c, r, end)
	// A sweep just short of a full turn rounds to identical endpoints, which
	// an SVG arc draws as nothing; route such arcs through their midpoint.
	split := large == "1" && samePoint(s, e)
	mid := start + (end-start)/2

	var b pathBuilder
	if ir == 0 {
		b.cmd("M", c.X, c.Y)
		b.cmd("L", s.X, s.Y)
		if split {
			b.arc(r, "0", "1", mathutil.Polar(c, r, mid))
			b.arc(r, "0", "1", e)
		} else {
			b.arc(r, large, "1", e)
		}
		b.close()
		return b.String()
	}

	is := mathutil.Polar(c, ir, start)
	ie := mathutil.Polar(c, ir, end)
	b.cmd("M", s.X, s.Y)
	if split {
		b.arc(r, "0", "1", mathutil.Polar(c, r, mid))
		b.arc(r, "0", "1", e)
		b.cmd("L", ie.X, ie.Y)
		b.arc(ir, "0", "0", mathutil.Polar(c, ir, mid))
		b.arc(ir, "0", "0", is)
	} else {
		b.arc(r, large, "1", e)
		b.cmd("L", ie.X, ie.Y)
		b.arc(ir, large, "0", is)
	}
	b.close()
	return b.String()
}

func samePoint(p, q mathutil.Point) bool {
	return mathutil.FormatCoord(p.X) == mathutil.FormatCoord(q.X) &&
		mathutil.FormatCoord(p.Y) == mathutil.FormatCoord(q.Y)
}

// circlePath draws a full disc as two half-circle arcs through the point
// opposite start, since a single arc with identical endpoints renders nothing.
// A donut adds the hole as a reversed ring so the nonzero fill rule leaves it empty.
func circlePath(c mathutil.Point, r, ir, start float64) string {
	var b pathBuilder
	ring := func(radius float64, sweepFlag string) {
		p := mathutil.Polar(c, radius, start)
		q := mathutil.Polar(c, radius, start+180)
		b.cmd("M", p.X, p.Y)
		b.arc(radius, "1", sweepFlag, q)
		b.arc(radius, "1", sweepFlag, p)
		b.close()
	}
	ring(r, "1")
	if ir > 0 {
		ring(ir, "0")
	}
	return b.String()
}

type pathBuilder struct {
	strings.Builder
}

func (b *pathBuilder) sep() {
	if b.Len() > 0 {
		b.WriteByte(' ')
	}
}

func (b *pathBuilder) cmd(op string, x, y float64) {
	b.sep()
	b.WriteString(op)
	b.WriteByte(' ')
	b.WriteString(mathutil.FormatCoord(x))
	b.WriteByte(' ')
	b.WriteString(mathutil.FormatCoord(y))
}

func (b *pathBuilder) arc(r float64, large, sweep string, to mathutil.Point) {
	b.sep()
	b.WriteString("A ")
	rs := mathutil.FormatCoord(r)
	b.WriteString(rs + " " + rs + " 0 " + large + " " + sweep + " ")
	b.WriteString(mathutil.FormatCoord(to.X))
	b.WriteByte(' ')
	b.WriteString(mathutil.FormatCoord(to.Y))
}

func (b *pathBuilder) close() {
	b.sep()
	b.WriteByte('Z')
}
