package raster

import (
	"fmt"
	"image"
	"image/color"
	"strconv"

	"golang.org/x/image/draw"

	"github.com/dianabombi/student-advisor-sub002/internal/bar"
	"github.com/dianabombi/student-advisor-sub002/internal/mathutil"
	"github.com/dianabombi/student-advisor-sub002/internal/palette"
	"github.com/dianabombi/student-advisor-sub002/internal/segment"
)

const (
	legendWidth = 160
	legendRow   = 18
	swatch      = 10
	dimAlpha    = 90
)

// Options controls rasterisation.
type Options struct {
	Supersample int // render scale before downsampling, <= 1 disables
	Hover       int // index drawn at full strength while others are dimmed, -1 for none
}

func (o Options) scale() int {
	if o.Supersample < 1 {
		return 1
	}
	return o.Supersample
}

func (o Options) tint(i int, c color.NRGBA) color.NRGBA {
	if o.Hover >= 0 && o.Hover != i {
		c.A = uint8(int(c.A) * dimAlpha / 255)
	}
	return c
}

// RenderSegments rasterises a pie or donut chart with a legend to the right.
func RenderSegments(ds []segment.Descriptor, g segment.Geometry, o Options) *image.NRGBA {
	size := int(g.Size)
	height := size
	if rows := (len(ds) + 1) * legendRow; rows > height {
		height = rows
	}

	img := image.NewNRGBA(image.Rect(0, 0, size+legendWidth, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(palette.MustParse(palette.Background)), image.Point{}, draw.Src)

	ss := o.scale()
	fs := float64(ss)
	fb := NewFrameBuffer(size*ss, size*ss, color.NRGBA{})
	c := mathutil.Point{X: g.Center().X * fs, Y: g.Center().Y * fs}
	r := g.Radius() * fs
	ir := g.InnerRadius() * fs

	text := palette.MustParse(palette.TextColor)
	if len(ds) == 0 {
		FillWedge(fb, c, r-2*fs, r, 0, 360, palette.MustParse(palette.AxisColor))
	}
	for i, d := range ds {
		if d.Sweep == 0 {
			continue
		}
		FillWedge(fb, c, ir, r, d.StartAngle, d.EndAngle, o.tint(i, palette.MustParse(d.Color)))
	}

	chart := Downsample(fb.Image(), size, size)
	draw.Draw(img, chart.Bounds(), chart, image.Point{}, draw.Over)

	if len(ds) == 0 {
		DrawLabel(img, size/2, size/2+4, "No data", text, AlignCenter)
		return img
	}
	if o.Hover >= 0 && o.Hover < len(ds) {
		DrawLabel(img, size/2, size/2+4, fmt.Sprintf("%.1f%%", ds[o.Hover].Percentage), text, AlignCenter)
	}

	x := size + 8
	for i, d := range ds {
		y := legendRow/2 + i*legendRow
		sw := image.Rect(x, y, x+swatch, y+swatch)
		draw.Draw(img, sw, image.NewUniform(o.tint(i, palette.MustParse(d.Color))), image.Point{}, draw.Over)
		DrawLabel(img, x+swatch+6, y+swatch, fmt.Sprintf("%s %.1f%%", d.Label, d.Percentage), o.tint(i, text), AlignLeft)
	}
	return img
}

// RenderBars rasterises a bar chart: one rectangle per descriptor, value above, label below.
func RenderBars(ds []bar.Descriptor, f bar.Frame, o Options) *image.NRGBA {
	w, h := int(f.Width), int(f.BoundingHeight)
	ss := o.scale()
	fs := float64(ss)

	fb := NewFrameBuffer(w*ss, h*ss, palette.MustParse(palette.Background))
	base := f.Baseline()
	slots := f.Slots(len(ds))
	for i, d := range ds {
		s := slots[i]
		FillRect(fb, s.X*fs, (base-d.Height)*fs, (s.X+s.Width)*fs, base*fs, o.tint(i, palette.MustParse(d.Color)))
	}
	HLine(fb, 0, w*ss, int(base*fs), palette.MustParse(palette.AxisColor))

	img := Downsample(fb.Image(), w, h)
	text := palette.MustParse(palette.TextColor)
	for i, d := range ds {
		mid := int(slots[i].X + slots[i].Width/2)
		col := o.tint(i, text)
		DrawLabel(img, mid, int(base-d.Height)-4, formatValue(d.Value), col, AlignCenter)
		DrawLabel(img, mid, int(base)+LineHeight, d.Label, col, AlignCenter)
	}
	return img
}

func formatValue(v float64) string {
	return strconv.FormatFloat(mathutil.Round(v, 2), 'f', -1, 64)
}
