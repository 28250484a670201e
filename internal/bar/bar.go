// Package bar scales a dataset into bar heights for a vertical bar chart.
package bar

import (
	"math"

	"github.com/dianabombi/student-advisor-sub002/internal/dataset"
	"github.com/dianabombi/student-advisor-sub002/internal/palette"
)

// Options controls scaling.
type Options struct {
	BoundingHeight     float64 // chart height in pixels
	ExplicitMax        float64 // scaling reference; <= 0 means infer from the data, NaN/Inf are rejected
	ReservedLabelSpace float64 // pixels kept free for labels, subtracted from the bar area
	FallbackColor      string  // defaults to palette.BarFallback
}

// Usable returns the height available to the tallest bar.
func (o Options) Usable() float64 {
	return o.BoundingHeight - o.ReservedLabelSpace
}

func (o Options) validate() error {
	switch {
	case !dataset.ValidNumber(o.BoundingHeight):
		return dataset.InvalidParam("bounding height", o.BoundingHeight)
	case !dataset.ValidNumber(o.ReservedLabelSpace) || o.ReservedLabelSpace > o.BoundingHeight:
		return dataset.InvalidParam("reserved label space", o.ReservedLabelSpace)
	case math.IsNaN(o.ExplicitMax) || math.IsInf(o.ExplicitMax, 0):
		return dataset.InvalidParam("explicit max", o.ExplicitMax)
	}
	return nil
}

// Descriptor is one bar, in input order.
type Descriptor struct {
	Label  string  `json:"label"`
	Value  float64 `json:"value"`
	Height float64 `json:"height"`
	Color  string  `json:"color"`
}

// EffectiveMax returns the explicit maximum when it is positive, otherwise the
// largest value. It is 0 for an empty or all-zero dataset.
func EffectiveMax(entries []dataset.Entry, explicit float64) float64 {
	if explicit > 0 {
		return explicit
	}
	var m float64
	for _, e := range entries {
		if e.Value > m {
			m = e.Value
		}
	}
	return m
}

// Compute builds one descriptor per entry.
// With an effective maximum of 0 every height is 0. Heights are clamped to
// [0, Usable()], so values above an explicit maximum draw as full bars.
// Invalid values or sizes are rejected with an error wrapping dataset.ErrInvalidValue.
func Compute(entries []dataset.Entry, o Options) ([]Descriptor, error) {
	if err := o.validate(); err != nil {
		return nil, err
	}
	if err := dataset.Validate(entries); err != nil {
		return nil, err
	}

	fallback := palette.Pick(o.FallbackColor, palette.BarFallback)
	peak := EffectiveMax(entries, o.ExplicitMax)
	usable := o.Usable()

	out := make([]Descriptor, len(entries))
	for i, e := range entries {
		var h float64
		if peak > 0 {
			h = clamp(e.Value/peak*usable, 0, usable)
		}
		out[i] = Descriptor{
			Label:  e.Label,
			Value:  e.Value,
			Height: h,
			Color:  palette.Pick(e.Color, fallback),
		}
	}
	return out, nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
