package screen

// Cursor movement. Every move clamps to the grid, nothing wraps

func clamp(v int, limit int) int {
	switch {
	case v < 0:
		return 0
	case v > limit:
		return limit
	default:
		return v
	}
}

func (b *Buffer) cursorUp(n int) {
	b.cursor.row = clamp(b.cursor.row-n, b.height-1)
}

func (b *Buffer) cursorDown(n int) {
	b.cursor.row = clamp(b.cursor.row+n, b.height-1)
}

func (b *Buffer) cursorForward(n int) {
	b.cursor.col = clamp(b.cursor.col+n, b.width-1)
}

func (b *Buffer) cursorBack(n int) {
	b.cursor.col = clamp(b.cursor.col-n, b.width-1)
}

func (b *Buffer) cursorNextLine(n int) {
	b.cursorDown(n)
	b.cursor.col = 0
}

func (b *Buffer) cursorPrevLine(n int) {
	b.cursorUp(n)
	b.cursor.col = 0
}

// cursorSetColumn moves to the 1-indexed column
func (b *Buffer) cursorSetColumn(col int) {
	b.cursor.col = clamp(col-1, b.width-1)
}

// cursorSetRow moves to the 1-indexed row
func (b *Buffer) cursorSetRow(row int) {
	b.cursor.row = clamp(row-1, b.height-1)
}

// cursorSetPosition moves to the 1-indexed row and col
func (b *Buffer) cursorSetPosition(row int, col int) {
	b.cursorSetRow(row)
	b.cursorSetColumn(col)
}
