// Package screen decodes the output of a full-screen terminal application
// into a character grid.
//
// Only what is needed to know which character sits in which cell is
// modelled: cursor movement, erasing and character set selection. Colors,
// scrolling regions and scrollback are not. Writing past the bottom of the
// grid wraps to the top row.
//
// A Buffer is not safe for concurrent use.
package screen

import (
	"fmt"
	"io"
	"strings"

	"git.sr.ht/~rockorager/nhview/window"
	"golang.org/x/exp/slog"
)

// MaxEscapeLen is the longest escape sequence a Buffer will collect. Longer
// sequences are dropped and the decoder returns to normal text
const MaxEscapeLen = 512

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

type cursor struct {
	row int // 0-indexed
	col int // 0-indexed
}

// state is what ESC 7 saves and ESC 8 restores
type state struct {
	cursor  cursor
	charset CharMap
	g0      CharMap
	g1      CharMap
}

// Buffer is a fixed size character grid fed by a raw byte stream
type Buffer struct {
	// Logger receives debug messages about sequences the decoder drops. If
	// nil, nothing is logged
	Logger *slog.Logger

	grid   [][]rune
	width  int
	height int
	cursor cursor

	mode    entryMode
	esc     escType
	escape  []byte
	utf8    []byte
	pending int // UTF-8 continuation bytes still expected

	charset CharMap
	g0      CharMap
	g1      CharMap
	saved   state
}

// New creates a width x height Buffer. All cells start as NUL
func New(width int, height int) *Buffer {
	if width < 1 || height < 1 {
		panic(fmt.Sprintf("screen: invalid size %dx%d", width, height))
	}
	grid := make([][]rune, height)
	for i := range grid {
		grid[i] = make([]rune, width)
	}
	return &Buffer{
		grid:    grid,
		width:   width,
		height:  height,
		mode:    modeNormal,
		escape:  make([]byte, 0, 32),
		utf8:    make([]byte, 0, 4),
		charset: IsoStandard,
		g0:      IsoStandard,
		g1:      IsoStandard,
	}
}

// Write feeds p to the decoder. It never returns an error
func (b *Buffer) Write(p []byte) (int, error) {
	b.Update(p)
	return len(p), nil
}

// Size returns the height and width of the grid
func (b *Buffer) Size() (int, int) {
	return b.height, b.width
}

// CharAt returns the character at the 1-indexed row and col
func (b *Buffer) CharAt(row int, col int) (rune, error) {
	if row < 1 || col < 1 || row > b.height || col > b.width {
		return 0, &window.OutOfBoundsError{Row: row, Col: col}
	}
	return b.grid[row-1][col-1], nil
}

// Cursor returns the 0-indexed cursor position
func (b *Buffer) Cursor() (row int, col int) {
	return b.cursor.row, b.cursor.col
}

// Charset returns the charset selected with ESC %
func (b *Buffer) Charset() CharMap {
	return b.charset
}

// G0 returns the map designated to G0. This is the only map applied to
// printed characters
func (b *Buffer) G0() CharMap {
	return b.g0
}

func (b *Buffer) G1() CharMap {
	return b.g1
}

// String returns the grid contents with NUL cells as spaces, one line per
// row
func (b *Buffer) String() string {
	str := strings.Builder{}
	for row := range b.grid {
		for _, r := range b.grid[row] {
			if r == 0 {
				r = ' '
			}
			str.WriteRune(r)
		}
		if row < b.height-1 {
			str.WriteRune('\n')
		}
	}
	return str.String()
}

// Dump writes the grid to w, one newline terminated line per row
func (b *Buffer) Dump(w io.Writer) error {
	_, err := io.WriteString(w, b.String()+"\n")
	return err
}

func (b *Buffer) log() *slog.Logger {
	if b.Logger == nil {
		return discard
	}
	return b.Logger
}

// putChar writes r at the cursor through the G0 map and advances. The
// cursor wraps to the next row at the right edge and to the top row at the
// bottom edge
func (b *Buffer) putChar(r rune) {
	b.grid[b.cursor.row][b.cursor.col] = mapRune(b.g0, r)
	b.cursor.col += 1
	if b.cursor.col >= b.width {
		b.cursor.row += 1
		b.cursor.col = 0
	}
	if b.cursor.row >= b.height {
		b.cursor.row = 0
	}
}

func (b *Buffer) save() {
	b.saved = state{
		cursor:  b.cursor,
		charset: b.charset,
		g0:      b.g0,
		g1:      b.g1,
	}
}

func (b *Buffer) restore() {
	b.cursor = b.saved.cursor
	b.charset = b.saved.charset
	b.g0 = b.saved.g0
	b.g1 = b.saved.g1
}
