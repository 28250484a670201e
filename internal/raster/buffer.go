package raster

import (
	"image"
	"image/color"
)

// FrameBuffer holds the rendering target as a flat RGBA slice for cache locality.
type FrameBuffer struct {
	Width  int
	Height int
	Color  []uint8 // non-premultiplied RGBA interleaved, len = W*H*4
}

// NewFrameBuffer allocates a buffer filled with bg.
func NewFrameBuffer(w, h int, bg color.NRGBA) *FrameBuffer {
	fb := &FrameBuffer{
		Width:  w,
		Height: h,
		Color:  make([]uint8, w*h*4),
	}
	for i := 0; i < len(fb.Color); i += 4 {
		fb.Color[i] = bg.R
		fb.Color[i+1] = bg.G
		fb.Color[i+2] = bg.B
		fb.Color[i+3] = bg.A
	}
	return fb
}

// Blend composites c over the pixel at (x, y). Out-of-range pixels are ignored.
func (fb *FrameBuffer) Blend(x, y int, c color.NRGBA) {
	if x < 0 || y < 0 || x >= fb.Width || y >= fb.Height || c.A == 0 {
		return
	}
	i := (y*fb.Width + x) * 4
	if c.A == 255 {
		fb.Color[i] = c.R
		fb.Color[i+1] = c.G
		fb.Color[i+2] = c.B
		fb.Color[i+3] = 255
		return
	}

	sa := float64(c.A) / 255
	da := float64(fb.Color[i+3]) / 255
	oa := sa + da*(1-sa)
	mix := func(s, d uint8) uint8 {
		return clamp255((float64(s)*sa + float64(d)*da*(1-sa)) / oa)
	}
	fb.Color[i] = mix(c.R, fb.Color[i])
	fb.Color[i+1] = mix(c.G, fb.Color[i+1])
	fb.Color[i+2] = mix(c.B, fb.Color[i+2])
	fb.Color[i+3] = clamp255(oa * 255)
}

// Image copies the buffer into an NRGBA image.
func (fb *FrameBuffer) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	copy(img.Pix, fb.Color)
	return img
}

func clamp255(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
