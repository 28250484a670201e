package svgchart

import (
	"fmt"
	"io"
	"strings"

	"github.com/dianabombi/student-advisor-sub002/internal/bar"
	"github.com/dianabombi/student-advisor-sub002/internal/palette"
)

// WriteBars writes one rectangle per descriptor with its value above and its label below.
func WriteBars(w io.Writer, title string, ds []bar.Descriptor, f bar.Frame, st State) error {
	canvas, ew := newCanvas(w)
	canvas.Start(int(f.Width), int(f.BoundingHeight))
	if title != "" {
		canvas.Title(title)
	}

	base := f.Baseline()
	canvas.Line(0, int(base), int(f.Width), int(base), "stroke:"+palette.AxisColor+";stroke-width:1")

	slots := f.Slots(len(ds))
	for i, d := range ds {
		s := slots[i]
		mid := int(s.X + s.Width/2)

		canvas.Group(fmt.Sprintf(`opacity="%s"`, st.opacity(i)))
		canvas.Title(fmt.Sprintf("%s: %s", d.Label, formatValue(d.Value)))
		if d.Height > 0 {
			canvas.Path(rectPath(s.X, base-d.Height, s.Width, d.Height), fill(d.Color))
		}
		canvas.Text(mid, int(base-d.Height)-4, formatValue(d.Value), textStyle("text-anchor:middle"))
		canvas.Text(mid, int(base)+14, d.Label, textStyle("text-anchor:middle"))
		canvas.Gend()
	}

	canvas.End()
	return ew.err
}

// rectPath keeps fractional heights that svgo's integer Rect would round away.
func rectPath(x, y, w, h float64) string {
	return strings.Join([]string{
		"M", num(x), num(y),
		"h", num(w),
		"v", num(h),
		"h", num(-w),
		"Z",
	}, " ")
}
