package aggregate

import (
	"errors"
	"fmt"
)

// Sentinel errors for aggregate operations.
var (
	// ErrEmptyInput is returned when an operation has no answer for an empty input.
	ErrEmptyInput = errors.New("aggregate: input is empty")

	// ErrBadStep is returned when a hike path contains a step other than 'U' or 'D'.
	ErrBadStep = errors.New("aggregate: path step must be 'U' or 'D'")

	// ErrNotSquare is returned when a matrix row length differs from the row count.
	ErrNotSquare = errors.New("aggregate: matrix is not square")
)

// Ratios is the share of positive, negative and zero values in a sequence.
// The three fields sum to 1 for a non-empty sequence and are all 0 otherwise.
type Ratios struct {
	Positive float64
	Negative float64
	Zero     float64
}

// String renders the ratios as three lines with six decimal places,
// positive first.
func (r Ratios) String() string {
	return fmt.Sprintf("%.6f\n%.6f\n%.6f", r.Positive, r.Negative, r.Zero)
}
