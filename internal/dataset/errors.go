package dataset

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidValue marks a caller contract violation: a negative, NaN or infinite
// value, or a negative size. Both engines reject such input before producing output.
var ErrInvalidValue = errors.New("invalid value")

// ValueError reports which entry broke the contract.
type ValueError struct {
	Index int
	Label string
	Value float64
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("entry %d (%q): value %v: %v", e.Index, e.Label, e.Value, ErrInvalidValue)
}

func (e *ValueError) Unwrap() error {
	return ErrInvalidValue
}

// Validate rejects the first entry whose value is negative, NaN or infinite.
func Validate(entries []Entry) error {
	for i, e := range entries {
		if !ValidNumber(e.Value) {
			return &ValueError{Index: i, Label: e.Label, Value: e.Value}
		}
	}
	return nil
}

// ValidNumber reports whether v is finite and non-negative.
func ValidNumber(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}

// InvalidParam builds an ErrInvalidValue-wrapping error for a size parameter.
func InvalidParam(name string, v float64) error {
	return fmt.Errorf("%s %v: %w", name, v, ErrInvalidValue)
}
