package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/dianabombi/student-advisor-sub002/internal/bar"
	"github.com/dianabombi/student-advisor-sub002/internal/dataset"
	"github.com/dianabombi/student-advisor-sub002/internal/segment"
)

func main() {
	size := flag.Float64("size", 320, "Circle bounding box for segment charts")
	inset := flag.Float64("inset", 8, "Gap between bounding box and circle")
	inner := flag.Float64("inner", 0, "Donut hole as a fraction of the radius")
	height := flag.Float64("height", 240, "Bounding height for bar charts")
	reserved := flag.Float64("reserved", 32, "Label space reserved in bar charts")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: chartinspect [flags] <dataset.json|dataset.yaml|dataset.xml>")
		os.Exit(2)
	}

	ds, err := dataset.Load(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var out any
	switch ds.Kind {
	case dataset.KindBar:
		out, err = bar.Compute(ds.Entries, bar.Options{
			BoundingHeight:     *height,
			ExplicitMax:        ds.Max,
			ReservedLabelSpace: *reserved,
		})
	default:
		out, err = segment.Compute(ds.Entries, segment.Geometry{Size: *size, Inset: *inset, InnerRatio: *inner})
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Dataset: %s (%s), entries: %d\n", ds.Name, ds.Kind, len(ds.Entries))
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
