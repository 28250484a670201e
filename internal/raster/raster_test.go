package raster

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dianabombi/student-advisor-sub002/internal/bar"
	"github.com/dianabombi/student-advisor-sub002/internal/dataset"
	"github.com/dianabombi/student-advisor-sub002/internal/mathutil"
	"github.com/dianabombi/student-advisor-sub002/internal/segment"
)

var (
	red   = color.NRGBA{255, 0, 0, 255}
	blue  = color.NRGBA{0, 0, 255, 255}
	white = color.NRGBA{255, 255, 255, 255}
)

func at(img *image.NRGBA, x, y int) color.NRGBA {
	return img.NRGBAAt(x, y)
}

// near compares colours with a small tolerance for resampling error.
func near(t *testing.T, want, got color.NRGBA) {
	t.Helper()
	assert.InDelta(t, int(want.R), int(got.R), 2)
	assert.InDelta(t, int(want.G), int(got.G), 2)
	assert.InDelta(t, int(want.B), int(got.B), 2)
	assert.InDelta(t, int(want.A), int(got.A), 2)
}

func TestBlend(t *testing.T) {
	fb := NewFrameBuffer(2, 1, white)
	fb.Blend(0, 0, red)
	fb.Blend(1, 0, color.NRGBA{0, 0, 0, 128})
	fb.Blend(5, 5, red)

	img := fb.Image()
	assert.Equal(t, red, at(img, 0, 0))
	got := at(img, 1, 0)
	assert.InDelta(t, 127, int(got.R), 1)
	assert.Equal(t, uint8(255), got.A)
}

func TestFillWedgeQuarter(t *testing.T) {
	fb := NewFrameBuffer(100, 100, color.NRGBA{})
	FillWedge(fb, mathutil.Point{X: 50, Y: 50}, 0, 50, -90, 0, red)
	img := fb.Image()

	assert.Equal(t, red, at(img, 70, 30))
	assert.Equal(t, uint8(0), at(img, 30, 30).A)
	assert.Equal(t, uint8(0), at(img, 70, 70).A)
	assert.Equal(t, uint8(0), at(img, 99, 1).A)
}

func TestFillWedgeFullTurnRing(t *testing.T) {
	fb := NewFrameBuffer(100, 100, color.NRGBA{})
	FillWedge(fb, mathutil.Point{X: 50, Y: 50}, 25, 50, -90, 270, red)
	img := fb.Image()

	for _, p := range []image.Point{{50, 5}, {95, 50}, {50, 95}, {5, 50}} {
		assert.Equal(t, red, at(img, p.X, p.Y), "point %v", p)
	}
	assert.Equal(t, uint8(0), at(img, 50, 50).A)
}

func TestRenderSegments(t *testing.T) {
	g := segment.Geometry{Size: 100}
	ds, err := segment.Compute([]dataset.Entry{
		{Label: "A", Value: 1, Color: "#ff0000"},
		{Label: "B", Value: 1, Color: "#0000ff"},
	}, g)
	require.NoError(t, err)

	img := RenderSegments(ds, g, Options{Supersample: 1, Hover: -1})
	assert.Equal(t, 100+legendWidth, img.Bounds().Dx())
	assert.Equal(t, red, at(img, 75, 50))
	assert.Equal(t, blue, at(img, 25, 50))
	assert.Equal(t, white, at(img, 2, 2))

	hovered := RenderSegments(ds, g, Options{Supersample: 1, Hover: 0})
	assert.Equal(t, red, at(hovered, 75, 50))
	assert.NotEqual(t, blue, at(hovered, 25, 50))
}

func TestRenderSegmentsFullCircle(t *testing.T) {
	g := segment.Geometry{Size: 100}
	ds, err := segment.Compute([]dataset.Entry{{Label: "all", Value: 3, Color: "#ff0000"}}, g)
	require.NoError(t, err)

	img := RenderSegments(ds, g, Options{Supersample: 2, Hover: -1})
	assert.Equal(t, 100, img.Bounds().Dy())
	near(t, red, at(img, 50, 10))
	near(t, red, at(img, 50, 90))
	near(t, red, at(img, 20, 50))
}

func TestRenderSegmentsEmpty(t *testing.T) {
	g := segment.Geometry{Size: 100, Inset: 4}
	img := RenderSegments(nil, g, Options{Hover: -1})
	assert.Equal(t, white, at(img, 50, 25))
}

func TestRenderBars(t *testing.T) {
	f := bar.Frame{Width: 200, BoundingHeight: 120, Reserved: 20, Gap: 20}
	ds, err := bar.Compute([]dataset.Entry{
		{Label: "mon", Value: 10, Color: "#ff0000"},
		{Label: "tue", Value: 5, Color: "#0000ff"},
	}, bar.Options{BoundingHeight: 120, ReservedLabelSpace: 20})
	require.NoError(t, err)

	img := RenderBars(ds, f, Options{Supersample: 1, Hover: -1})
	assert.Equal(t, image.Rect(0, 0, 200, 120), img.Bounds())
	assert.Equal(t, red, at(img, 50, 60))
	assert.Equal(t, blue, at(img, 150, 80))
	assert.Equal(t, white, at(img, 150, 30))
	assert.Equal(t, white, at(img, 100, 80))
}

func TestRenderBarsZeroWidth(t *testing.T) {
	ds, err := bar.Compute([]dataset.Entry{{Label: "mon", Value: 10}}, bar.Options{BoundingHeight: 10})
	require.NoError(t, err)

	var img *image.NRGBA
	require.NotPanics(t, func() {
		img = RenderBars(ds, bar.Frame{BoundingHeight: 10}, Options{Supersample: 2, Hover: -1})
	})
	assert.Equal(t, 0, img.Bounds().Dx())
}

func TestDownsample(t *testing.T) {
	fb := NewFrameBuffer(64, 32, red)
	img := Downsample(fb.Image(), 16, 8)
	assert.Equal(t, image.Rect(0, 0, 16, 8), img.Bounds())
	near(t, red, at(img, 8, 4))

	same := fb.Image()
	assert.Same(t, same, Downsample(same, 64, 32))
}

func TestDrawLabel(t *testing.T) {
	img := NewFrameBuffer(60, 20, white).Image()
	DrawLabel(img, 30, 14, "42", color.NRGBA{0, 0, 0, 255}, AlignCenter)

	dark := 0
	for y := 0; y < 20; y++ {
		for x := 0; x < 60; x++ {
			if at(img, x, y).R < 128 {
				dark++
			}
		}
	}
	assert.Greater(t, dark, 0)
	assert.Equal(t, 14, LabelWidth("42"))
}
