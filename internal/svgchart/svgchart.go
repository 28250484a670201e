// Package svgchart draws segment and bar descriptors as SVG documents.
//
// It owns the presentation-only state (which element is hovered); the
// geometry comes from the segment and bar engines untouched.
package svgchart

import (
	"fmt"
	"io"
	"strconv"

	svg "github.com/ajstarks/svgo"

	"github.com/dianabombi/student-advisor-sub002/internal/mathutil"
	"github.com/dianabombi/student-advisor-sub002/internal/palette"
)

const (
	legendWidth = 200
	legendRow   = 22
	swatch      = 12
	fontStyle   = "font-family:sans-serif;font-size:12px"
	dimOpacity  = "0.35"
)

// State is the hover state of one rendered chart. Hover is -1 when nothing is hovered.
type State struct {
	Hover int
}

// NoHover is the idle state.
var NoHover = State{Hover: -1}

func (s State) opacity(i int) string {
	if s.Hover < 0 || s.Hover == i {
		return "1"
	}
	return dimOpacity
}

// errWriter keeps the first write error; svgo itself ignores them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	if err != nil {
		e.err = err
	}
	return n, err
}

func newCanvas(w io.Writer) (*svg.SVG, *errWriter) {
	ew := &errWriter{w: w}
	return svg.New(ew), ew
}

func fill(c string) string {
	return "fill:" + c
}

func num(v float64) string {
	return mathutil.FormatCoord(v)
}

func formatValue(v float64) string {
	return strconv.FormatFloat(mathutil.Round(v, 2), 'f', -1, 64)
}

func formatPercent(p float64) string {
	return fmt.Sprintf("%.1f%%", p)
}

func textStyle(extra string) string {
	s := fontStyle + ";" + fill(palette.TextColor)
	if extra != "" {
		s += ";" + extra
	}
	return s
}
