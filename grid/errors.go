package grid

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input must have at least one row and one column")
	// ErrRaggedInput indicates rows of differing lengths.
	ErrRaggedInput = errors.New("grid: all rows must have the same length")
	// ErrOutOfBounds is the sentinel every *BoundsError unwraps to.
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
	// ErrBadDimensions indicates negative sizes or a data length that is not width*height.
	ErrBadDimensions = errors.New("grid: data length does not match dimensions")
	// ErrUnknownDirection indicates a Direction outside North..SouthWest.
	ErrUnknownDirection = errors.New("grid: unknown direction")
)

// Axis names the coordinate component that failed validation.
type Axis uint8

const (
	// AxisX is the column axis.
	AxisX Axis = iota
	// AxisY is the row axis.
	AxisY
)

// String returns "x" or "y".
func (a Axis) String() string {
	if a == AxisX {
		return "x"
	}
	return "y"
}

// BoundsError reports a coordinate outside [0,Width) x [0,Height).
// Index is the offending component on Axis.
type BoundsError struct {
	Axis   Axis
	Index  int
	Width  int
	Height int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("grid: out of bounds index in %s axis, %s=%d (width: %d, height: %d)",
		e.Axis, e.Axis, e.Index, e.Width, e.Height)
}

// Unwrap lets errors.Is(err, ErrOutOfBounds) match.
func (e *BoundsError) Unwrap() error { return ErrOutOfBounds }
