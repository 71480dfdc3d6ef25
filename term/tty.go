// Package term provides access to the terminal nhview was started from
package term

import "io"

// TTY is the controlling terminal
type TTY interface {
	io.ReadWriteCloser

	// MakeRaw puts the terminal into raw mode. Restore undoes it
	MakeRaw() error
	Restore() error
	// Size reports the terminal's current size
	Size() (Size, error)
}

// Open opens a handle to the controlling terminal
func Open() (TTY, error) {
	return openTTY()
}

// Size is a terminal size in cells and pixels. Pixel sizes are 0 if the
// terminal doesn't report them
type Size struct {
	Rows   int
	Cols   int
	XPixel int
	YPixel int
}
