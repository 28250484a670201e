package svgchart

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dianabombi/student-advisor-sub002/internal/bar"
	"github.com/dianabombi/student-advisor-sub002/internal/dataset"
	"github.com/dianabombi/student-advisor-sub002/internal/segment"
)

var twoHalves = []dataset.Entry{{Label: "A", Value: 1}, {Label: "B", Value: 1}}

func TestWriteSegments(t *testing.T) {
	g := segment.Geometry{Size: 100}
	ds, err := segment.Compute(twoHalves, g)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteSegments(&buf, "Roles", ds, g, NoHover))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "<?xml"))
	assert.Contains(t, out, "M 50 50 L 50 0 A 50 50 0 0 1 50 100 Z")
	assert.Contains(t, out, "M 50 50 L 50 100 A 50 50 0 0 1 50 0 Z")
	assert.Contains(t, out, "A 50.0%")
	assert.Contains(t, out, "Roles")
	assert.NotContains(t, out, dimOpacity)
}

func TestWriteSegmentsHover(t *testing.T) {
	g := segment.Geometry{Size: 100}
	ds, err := segment.Compute(twoHalves, g)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteSegments(&buf, "", ds, g, State{Hover: 1}))
	out := buf.String()

	assert.Equal(t, 2, strings.Count(out, `opacity="`+dimOpacity+`"`))
	assert.Contains(t, out, "font-weight:bold")
}

func TestWriteSegmentsPlaceholder(t *testing.T) {
	g := segment.Geometry{Size: 100}
	ds, err := segment.Compute([]dataset.Entry{{Label: "A"}}, g)
	require.NoError(t, err)
	require.Empty(t, ds)

	var buf bytes.Buffer
	require.NoError(t, WriteSegments(&buf, "", ds, g, NoHover))
	assert.Contains(t, buf.String(), "No data")
	assert.NotContains(t, buf.String(), "<path")
}

func TestWriteSegmentsDeterministic(t *testing.T) {
	g := segment.Geometry{Size: 180, Inset: 4, InnerRatio: 0.5}
	in := []dataset.Entry{{Label: "x", Value: 3}, {Label: "y", Value: 0}, {Label: "z", Value: 9.5}}

	render := func() string {
		ds, err := segment.Compute(in, g)
		require.NoError(t, err)
		var buf bytes.Buffer
		require.NoError(t, WriteSegments(&buf, "t", ds, g, NoHover))
		return buf.String()
	}
	assert.Equal(t, render(), render())
}

func TestWriteBars(t *testing.T) {
	ds, err := bar.Compute([]dataset.Entry{{Label: "mon", Value: 10}, {Label: "tue", Value: 5}},
		bar.Options{BoundingHeight: 120, ReservedLabelSpace: 20})
	require.NoError(t, err)

	f := bar.Frame{Width: 200, BoundingHeight: 120, Reserved: 20, Gap: 20}
	assert.Equal(t, 110.0, f.Baseline())

	var buf bytes.Buffer
	require.NoError(t, WriteBars(&buf, "Sessions", ds, f, NoHover))
	out := buf.String()

	assert.Contains(t, out, "M 10 10 h 80 v 100 h -80 Z")
	assert.Contains(t, out, "M 110 60 h 80 v 50 h -80 Z")
	assert.Contains(t, out, ">mon<")
	assert.Contains(t, out, ">tue<")
}

func TestWriteBarsZeroWidth(t *testing.T) {
	ds, err := bar.Compute([]dataset.Entry{{Label: "mon", Value: 10}, {Label: "tue", Value: 5}},
		bar.Options{BoundingHeight: 10})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NotPanics(t, func() {
		require.NoError(t, WriteBars(&buf, "Sessions", ds, bar.Frame{BoundingHeight: 10}, NoHover))
	})
	assert.Contains(t, buf.String(), ">mon<")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestWriteReportsWriterError(t *testing.T) {
	g := segment.Geometry{Size: 100}
	ds, err := segment.Compute(twoHalves, g)
	require.NoError(t, err)

	assert.EqualError(t, WriteSegments(failingWriter{}, "", ds, g, NoHover), "disk full")
	assert.EqualError(t, WriteBars(failingWriter{}, "", nil, bar.Frame{Width: 10, BoundingHeight: 10}, NoHover), "disk full")
}
