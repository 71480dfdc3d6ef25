package window

import (
	"errors"
	"fmt"
)

// ErrBrokenBorder is returned when a perimeter walk meets a glyph that does
// not continue the border
var ErrBrokenBorder = errors.New("box borders broken/incomplete")

// InvalidBoxOriginError is returned when a border walk does not start on a
// top-left corner
type InvalidBoxOriginError struct {
	Row int
	Col int
}

func (e *InvalidBoxOriginError) Error() string {
	return fmt.Sprintf("row %d, col %d is not a valid box start position", e.Row, e.Col)
}

// OutOfBoundsError is returned when a cell outside of a grid is requested
type OutOfBoundsError struct {
	Row int
	Col int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("row %d, col %d is out of bounds", e.Row, e.Col)
}
