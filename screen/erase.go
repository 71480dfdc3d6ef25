package screen

// eraseDisplay implements ED. Mode 1 erases from the top of the screen up to
// (not including) the cursor, modes 2 and 3 erase everything and home the
// cursor, anything else erases from the cursor to the end of the screen.
// Erased cells are NUL
func (b *Buffer) eraseDisplay(mode int) {
	switch mode {
	case 1:
		for row := 0; row < b.cursor.row; row += 1 {
			b.clearRow(row)
		}
		b.clearCols(b.cursor.row, 0, b.cursor.col)
	case 2, 3:
		for row := range b.grid {
			b.clearRow(row)
		}
		b.cursor = cursor{}
	default:
		b.clearCols(b.cursor.row, b.cursor.col, b.width)
		for row := b.cursor.row + 1; row < b.height; row += 1 {
			b.clearRow(row)
		}
	}
}

// eraseLine implements EL. Mode 1 erases from the start of the line up to
// (not including) the cursor, mode 2 the whole line, anything else from the
// cursor to the end of the line
func (b *Buffer) eraseLine(mode int) {
	switch mode {
	case 1:
		b.clearCols(b.cursor.row, 0, b.cursor.col)
	case 2:
		b.clearRow(b.cursor.row)
	default:
		b.clearCols(b.cursor.row, b.cursor.col, b.width)
	}
}

// eraseChars writes n spaces starting at the cursor. Unlike ECH, the cursor
// advances past the written spaces, wrapping like any printed character
func (b *Buffer) eraseChars(n int) {
	cells := b.width * b.height
	if n >= cells {
		// every cell gets a space and the cursor ends up n cells further
		// on, modulo the size of the grid
		for row := range b.grid {
			for col := range b.grid[row] {
				b.grid[row][col] = ' '
			}
		}
		n %= cells
		pos := (b.cursor.row*b.width + b.cursor.col + n) % cells
		b.cursor = cursor{row: pos / b.width, col: pos % b.width}
		return
	}
	for i := 0; i < n; i += 1 {
		b.putChar(' ')
	}
}

func (b *Buffer) clearRow(row int) {
	b.clearCols(row, 0, b.width)
}

// clearCols sets cells [from, to) of row to NUL
func (b *Buffer) clearCols(row int, from int, to int) {
	line := b.grid[row]
	for col := from; col < to; col += 1 {
		line[col] = 0
	}
}
