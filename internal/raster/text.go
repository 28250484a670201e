package raster

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Align positions a label horizontally relative to its anchor.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
)

var face = basicfont.Face7x13

// LineHeight is the pixel height of one label line.
var LineHeight = face.Metrics().Height.Ceil()

// DrawLabel draws s with its baseline at y.
func DrawLabel(dst *image.NRGBA, x, y int, s string, col color.NRGBA, align Align) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: face,
	}
	if align == AlignCenter {
		x -= d.MeasureString(s).Ceil() / 2
	}
	d.Dot = fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)}
	d.DrawString(s)
}

// LabelWidth returns the rendered width of s in pixels.
func LabelWidth(s string) int {
	return font.MeasureString(face, s).Ceil()
}
