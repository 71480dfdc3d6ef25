package window

// Follow walks the border of the box whose top-left corner is at row, col.
// The walk goes clockwise: right along the top edge, down the right edge,
// left along the bottom and back up to the start. The interior size of the
// box is returned if the perimeter is closed.
func Follow(src Source, row int, col int) (Size, error) {
	height, width := src.Size()
	start, err := src.CharAt(row, col)
	if err != nil {
		return Size{}, err
	}
	if start != TopLeft {
		return Size{}, &InvalidBoxOriginError{Row: row, Col: col}
	}

	var (
		size    Size
		y       = row
		x       = col
		forward = true
		current = start
	)
	for {
		// the two glyphs allowed in the next cell
		var edge, corner rune
		switch {
		case forward && (current == TopLeft || current == Horizontal):
			x += 1
			edge, corner = Horizontal, TopRight
		case forward && (current == TopRight || current == Vertical):
			y += 1
			edge, corner = Vertical, BottomRight
		case forward && current == BottomRight:
			forward = false
			size.Height = y - row - 1
			size.Width = x - col - 1
			x -= 1
			edge, corner = Horizontal, BottomLeft
		case !forward && current == Horizontal:
			x -= 1
			edge, corner = Horizontal, BottomLeft
		case !forward && (current == BottomLeft || current == Vertical):
			y -= 1
			edge, corner = Vertical, TopLeft
		case !forward && current == TopLeft:
			if y == row && x == col {
				return size, nil
			}
			return Size{}, ErrBrokenBorder
		default:
			return Size{}, ErrBrokenBorder
		}

		if y < 1 || x < 1 || y > height || x > width {
			return Size{}, &OutOfBoundsError{Row: y, Col: x}
		}
		next, err := src.CharAt(y, x)
		if err != nil {
			return Size{}, err
		}
		if next != edge && next != corner {
			return Size{}, ErrBrokenBorder
		}
		current = next
	}
}

// Extract returns every bordered window on src, in the order their top-left
// corners appear scanning row by row. Candidates with a broken border are
// skipped.
//
// Applications often leave the message line at the top of the screen
// undecorated. If every candidate corner lies below row 1 and right of
// column 1, the region above and left of the topmost and leftmost corners is
// returned as an extra window after the bordered ones. With no candidates at
// all, that region spans everything but the last row and column.
//
// An error is only returned if reading src fails while scanning or copying.
func Extract(src Source) ([]SubWindow, error) {
	height, width := src.Size()
	corners := []Position{}
	for row := 1; row <= height; row += 1 {
		for col := 1; col <= width; col += 1 {
			r, err := src.CharAt(row, col)
			if err != nil {
				return nil, err
			}
			if r == TopLeft {
				corners = append(corners, Position{X: col, Y: row})
			}
		}
	}

	minRow := height
	minCol := width
	windows := []SubWindow{}
	for _, corner := range corners {
		size, err := Follow(src, corner.Y, corner.X)
		if err == nil {
			origin := Position{X: corner.X + 1, Y: corner.Y + 1}
			win, err := copyRegion(src, origin, size)
			if err != nil {
				return nil, err
			}
			windows = append(windows, win)
		}
		if corner.Y < minRow {
			minRow = corner.Y
		}
		if corner.X < minCol {
			minCol = corner.X
		}
	}

	if minRow > 1 && minCol > 1 {
		size := Size{Width: minCol - 1, Height: minRow - 1}
		win, err := copyRegion(src, Position{X: 1, Y: 1}, size)
		if err != nil {
			return nil, err
		}
		windows = append(windows, win)
	}
	return windows, nil
}

// ContainsBorders reports whether any border glyph is present on src
func ContainsBorders(src Source) bool {
	height, width := src.Size()
	for row := 1; row <= height; row += 1 {
		for col := 1; col <= width; col += 1 {
			r, err := src.CharAt(row, col)
			if err != nil {
				return false
			}
			if isBorder(r) {
				return true
			}
		}
	}
	return false
}

func copyRegion(src Source, origin Position, size Size) (SubWindow, error) {
	win := newSubWindow(origin, size)
	for row := 0; row < size.Height; row += 1 {
		for col := 0; col < size.Width; col += 1 {
			r, err := src.CharAt(origin.Y+row, origin.X+col)
			if err != nil {
				return SubWindow{}, err
			}
			win.grid[row][col] = r
		}
	}
	return win, nil
}
