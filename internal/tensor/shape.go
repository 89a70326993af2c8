package tensor

import "fmt"

// Shape represents the dimensions of a 2-D tensor.
type Shape struct {
	Rows int
	Cols int
}

// NumElements returns the total number of elements in the tensor.
func (s Shape) NumElements() int {
	return s.Rows * s.Cols
}

// Validate checks if the shape is valid (all dimensions > 0).
func (s Shape) Validate() error {
	if s.Rows <= 0 {
		return fmt.Errorf("invalid row count: %d (must be > 0)", s.Rows)
	}
	if s.Cols <= 0 {
		return fmt.Errorf("invalid column count: %d (must be > 0)", s.Cols)
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	return s.Rows == other.Rows && s.Cols == other.Cols
}

// String returns the shape in [rows cols] form for error messages.
func (s Shape) String() string {
	return fmt.Sprintf("[%d %d]", s.Rows, s.Cols)
}
