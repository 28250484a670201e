// Package palette holds the chart colours and converts CSS hex strings to image colours.
package palette

import (
	"image/color"
	"strconv"
	"strings"
)

// Series is Paul Tol's qualitative palette, safe for colour-blind readers.
var Series = []string{
	"#4477AA",
	"#EE6677",
	"#228833",
	"#CCBB44",
	"#66CCEE",
	"#AA3377",
	"#BBBBBB",
	"#EE8866",
	"#44BB99",
	"#FFAABB",
}

// BarFallback is used for bars whose entry carries no colour.
const BarFallback = "#3B82F6"

// Text and axis colours shared by the renderers.
const (
	TextColor  = "#374151"
	AxisColor  = "#9CA3AF"
	Background = "#FFFFFF"
)

// SeriesColor returns the palette colour for index i, cycling through Series.
func SeriesColor(i int) string {
	if i < 0 {
		i = -i
	}
	return Series[i%len(Series)]
}

// Pick returns c when it is set, otherwise fallback.
func Pick(c, fallback string) string {
	if strings.TrimSpace(c) == "" {
		return fallback
	}
	return c
}

// Parse converts "#rgb", "#rrggbb" or "#rrggbbaa" to NRGBA.
// Anything else yields ok == false and opaque mid-grey.
func Parse(s string) (c color.NRGBA, ok bool) {
	grey := color.NRGBA{R: 128, G: 128, B: 128, A: 255}
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")

	switch len(s) {
	case 3:
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]}) + "ff"
	case 6:
		s += "ff"
	case 8:
	default:
		return grey, false
	}

	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return grey, false
	}
	return color.NRGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, true
}

// MustParse is Parse without the ok flag.
func MustParse(s string) color.NRGBA {
	c, _ := Parse(s)
	return c
}
