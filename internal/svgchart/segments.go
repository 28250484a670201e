package svgchart

import (
	"fmt"
	"io"

	"github.com/dianabombi/student-advisor-sub002/internal/palette"
	"github.com/dianabombi/student-advisor-sub002/internal/segment"
)

// WriteSegments writes a pie or donut chart with a legend to the right.
// An empty descriptor slice draws a grey placeholder ring.
func WriteSegments(w io.Writer, title string, ds []segment.Descriptor, g segment.Geometry, st State) error {
	size := int(g.Size)
	height := size
	if rows := len(ds)*legendRow + legendRow; rows > height {
		height = rows
	}

	canvas, ew := newCanvas(w)
	canvas.Start(size+legendWidth, height)
	if title != "" {
		canvas.Title(title)
	}

	c := g.Center()
	if len(ds) == 0 {
		canvas.Circle(int(c.X), int(c.Y), int(g.Radius()), "fill:none;stroke:"+palette.AxisColor+";stroke-width:2")
		canvas.Text(int(c.X), int(c.Y), "No data", textStyle("text-anchor:middle"))
		canvas.End()
		return ew.err
	}

	for i, d := range ds {
		if d.Path == "" {
			continue
		}
		canvas.Group(fmt.Sprintf(`opacity="%s"`, st.opacity(i)))
		canvas.Title(fmt.Sprintf("%s: %s (%s)", d.Label, formatValue(d.Value), formatPercent(d.Percentage)))
		style := fill(d.Color) + ";stroke:" + palette.Background + ";stroke-width:1"
		if d.FullCircle && g.InnerRatio > 0 {
			style += ";fill-rule:evenodd"
		}
		canvas.Path(d.Path, style)
		canvas.Gend()
	}

	if st.Hover >= 0 && st.Hover < len(ds) {
		d := ds[st.Hover]
		canvas.Text(int(c.X), int(c.Y)+4, formatPercent(d.Percentage), textStyle("text-anchor:middle;font-weight:bold"))
	}

	x := size + 8
	for i, d := range ds {
		y := legendRow/2 + i*legendRow
		canvas.Group(fmt.Sprintf(`opacity="%s"`, st.opacity(i)))
		canvas.Rect(x, y, swatch, swatch, fill(d.Color))
		canvas.Text(x+swatch+6, y+swatch-1, fmt.Sprintf("%s %s", d.Label, formatPercent(d.Percentage)), textStyle(""))
		canvas.Gend()
	}

	canvas.End()
	return ew.err
}
