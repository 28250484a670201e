package batch

import (
	"fmt"
	"image"
	"io"

	"github.com/dianabombi/student-advisor-sub002/internal/bar"
	"github.com/dianabombi/student-advisor-sub002/internal/dataset"
	"github.com/dianabombi/student-advisor-sub002/internal/raster"
	"github.com/dianabombi/student-advisor-sub002/internal/segment"
	"github.com/dianabombi/student-advisor-sub002/internal/svgchart"
)

// Chart is a dataset with its computed descriptors. Exactly one of
// Segments and Bars is set, matching Dataset.Kind.
type Chart struct {
	Dataset  dataset.Dataset
	Segments []segment.Descriptor
	Bars     []bar.Descriptor
}

// Len returns the number of descriptors.
func (c Chart) Len() int {
	if c.Dataset.Kind == dataset.KindBar {
		return len(c.Bars)
	}
	return len(c.Segments)
}

// Build runs the engine that matches the dataset kind.
func Build(cfg Config, ds dataset.Dataset) (Chart, error) {
	c := Chart{Dataset: ds}
	var err error
	switch ds.Kind {
	case dataset.KindBar:
		c.Bars, err = bar.Compute(ds.Entries, bar.Options{
			BoundingHeight:     cfg.Bar.BoundingHeight,
			ExplicitMax:        ds.Max,
			ReservedLabelSpace: cfg.Bar.Reserved,
		})
	case dataset.KindSegment, "":
		c.Segments, err = segment.Compute(ds.Entries, cfg.Segment)
	default:
		err = fmt.Errorf("unknown kind %q", ds.Kind)
	}
	if err != nil {
		return Chart{}, fmt.Errorf("batch: %s: %w", ds.Name, err)
	}
	return c, nil
}

// WriteSVG writes the chart as an SVG document.
func (c Chart) WriteSVG(w io.Writer, cfg Config) error {
	if c.Dataset.Kind == dataset.KindBar {
		return svgchart.WriteBars(w, c.Dataset.Title, c.Bars, cfg.Bar, svgchart.NoHover)
	}
	return svgchart.WriteSegments(w, c.Dataset.Title, c.Segments, cfg.Segment, svgchart.NoHover)
}

// Image rasterises the chart.
func (c Chart) Image(cfg Config) *image.NRGBA {
	opt := raster.Options{Supersample: cfg.Supersample, Hover: -1}
	if c.Dataset.Kind == dataset.KindBar {
		return raster.RenderBars(c.Bars, cfg.Bar, opt)
	}
	return raster.RenderSegments(c.Segments, cfg.Segment, opt)
}
