// Package window finds the rectangular regions a curses application draws
// with box-drawing borders and turns any character grid into text lines.
//
// All coordinates passed through a Source are 1-indexed, the way terminal
// escape sequences address cells.
package window

// Box-drawing glyphs used by curses to frame windows
const (
	TopLeft     = '┌'
	TopRight    = '┐'
	BottomLeft  = '└'
	BottomRight = '┘'
	Horizontal  = '─'
	Vertical    = '│'
)

// A Source is anything that can report its size and read a single cell.
// Rows and columns are 1-indexed. CharAt returns an *OutOfBoundsError for
// cells outside of the extents
type Source interface {
	Size() (height int, width int)
	CharAt(row int, col int) (rune, error)
}

// Position is a cell coordinate
type Position struct {
	X int
	Y int
}

// Size is the extent of a grid
type Size struct {
	Width  int
	Height int
}

// SubWindow is an owned copy of a region of a Source. SubWindows are created
// by Extract and are not modified afterwards
type SubWindow struct {
	// Origin is the 1-indexed row (Y) and column (X) of the first interior
	// cell in the source grid
	Origin Position
	Extent Size

	grid [][]rune
}

func newSubWindow(origin Position, size Size) SubWindow {
	grid := make([][]rune, size.Height)
	for i := range grid {
		grid[i] = make([]rune, size.Width)
	}
	return SubWindow{
		Origin: origin,
		Extent: size,
		grid:   grid,
	}
}

func (w SubWindow) Size() (int, int) {
	return w.Extent.Height, w.Extent.Width
}

func (w SubWindow) CharAt(row int, col int) (rune, error) {
	if row < 1 || col < 1 || row > w.Extent.Height || col > w.Extent.Width {
		return 0, &OutOfBoundsError{Row: row, Col: col}
	}
	return w.grid[row-1][col-1], nil
}

// Lines returns the text content of the window, one string per row
func (w SubWindow) Lines() ([]string, error) {
	return Lines(w)
}

// isBorder reports whether r is one of the glyphs curses frames windows with
func isBorder(r rune) bool {
	switch r {
	case TopLeft, TopRight, BottomLeft, BottomRight, Horizontal, Vertical:
		return true
	}
	return false
}
