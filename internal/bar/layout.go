package bar

// Slot is the horizontal placement of one bar.
type Slot struct {
	X     float64
	Width float64
}

// Layout spreads n bars left to right across width, with gap pixels between
// neighbours and half a gap at each edge. A non-positive width yields n
// zero-width slots at x = 0.
func Layout(n int, width, gap float64) []Slot {
	if n <= 0 {
		return nil
	}
	if !(width > 0) {
		return make([]Slot, n)
	}
	if gap < 0 {
		gap = 0
	}
	step := width / float64(n)
	if gap >= step {
		gap = step / 2
	}

	slots := make([]Slot, n)
	for i := range slots {
		slots[i] = Slot{
			X:     float64(i)*step + gap/2,
			Width: step - gap,
		}
	}
	return slots
}

// HitTest returns the index of the bar under (x, y), or -1. baseline is the y
// coordinate of the bars' bottom edge (y grows downwards).
func HitTest(ds []Descriptor, slots []Slot, baseline, x, y float64) int {
	for i, s := range slots {
		if i >= len(ds) {
			break
		}
		if x < s.X || x > s.X+s.Width {
			continue
		}
		if y <= baseline && y >= baseline-ds[i].Height {
			return i
		}
		return -1
	}
	return -1
}

// Frame places a bar chart on a canvas of Width × BoundingHeight pixels.
// Reserved label space is split between value labels above the bars and
// category labels below the baseline.
type Frame struct {
	Width          float64
	BoundingHeight float64
	Reserved       float64
	Gap            float64
}

// Baseline returns the y coordinate of the bars' bottom edge.
func (f Frame) Baseline() float64 {
	return f.BoundingHeight - f.Reserved/2
}

// Slots lays out n bars across the frame width.
func (f Frame) Slots(n int) []Slot {
	return Layout(n, f.Width, f.Gap)
}
