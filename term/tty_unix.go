//go:build aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris || zos

package term

import (
	"errors"
	"os"
	"syscall"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

type tty struct {
	state *term.State
	fd    int
}

func openTTY() (TTY, error) {
	fd, err := syscall.Open("/dev/tty", os.O_RDWR, 0)
	if err != nil {
		return nil, err
	}
	return &tty{fd: fd}, nil
}

func (t *tty) Read(b []byte) (int, error) {
	return syscall.Read(t.fd, b)
}

func (t *tty) Write(b []byte) (int, error) {
	return syscall.Write(t.fd, b)
}

func (t *tty) Close() error {
	return syscall.Close(t.fd)
}

func (t *tty) MakeRaw() error {
	state, err := term.MakeRaw(t.fd)
	if err != nil {
		return err
	}
	t.state = state
	return nil
}

func (t *tty) Restore() error {
	if t.state == nil {
		return errors.New("terminal is not in raw mode")
	}
	return term.Restore(t.fd, t.state)
}

func (t *tty) Size() (Size, error) {
	ws, err := unix.IoctlGetWinsize(t.fd, unix.TIOCGWINSZ)
	if err != nil {
		return Size{}, err
	}
	return Size{
		Rows:   int(ws.Row),
		Cols:   int(ws.Col),
		XPixel: int(ws.Xpixel),
		YPixel: int(ws.Ypixel),
	}, nil
}
