package dataset

// Kind selects which engine a dataset is drawn with.
type Kind string

const (
	KindSegment Kind = "segment"
	KindBar     Kind = "bar"
)

// Entry is one category of a chart. Color is empty when the caller supplies none.
type Entry struct {
	Label string  `json:"label" yaml:"label"`
	Value float64 `json:"value" yaml:"value"`
	Color string  `json:"color,omitempty" yaml:"color,omitempty"`
}

// Dataset is one chart's input as handed over by a collaborator.
type Dataset struct {
	Name    string  `json:"name" yaml:"name"`
	Title   string  `json:"title,omitempty" yaml:"title,omitempty"`
	Kind    Kind    `json:"kind" yaml:"kind"`
	Max     float64 `json:"max,omitempty" yaml:"max,omitempty"` // explicit bar maximum, 0 = infer
	Entries []Entry `json:"entries" yaml:"entries"`
}
