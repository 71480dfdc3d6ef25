//go:build aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris || zos

package main

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"syscall"

	"github.com/creack/pty"
	"golang.org/x/exp/slog"

	"git.sr.ht/~rockorager/nhview/nethack"
	"git.sr.ht/~rockorager/nhview/screen"
	"git.sr.ht/~rockorager/nhview/term"
	"git.sr.ht/~rockorager/nhview/window"
)

// live runs the command under a pty the size of our terminal. Output is
// relayed to stdout and fed to the screen, input is relayed to the child
func live(opts options, log *slog.Logger) error {
	tty, err := term.Open()
	if err != nil {
		return fmt.Errorf("opening terminal: %w", err)
	}
	defer tty.Close()
	size, err := tty.Size()
	if err != nil {
		return fmt.Errorf("getting terminal size: %w", err)
	}
	if size.Rows < 1 || size.Cols < 1 {
		return fmt.Errorf("terminal has no size: %dx%d", size.Cols, size.Rows)
	}
	log.Info("starting",
		"command", opts.command,
		"rows", size.Rows,
		"cols", size.Cols,
	)

	cmd := exec.Command(opts.command[0], opts.command[1:]...)
	if os.Getenv("TERM") == "" {
		cmd.Env = append(os.Environ(), "TERM=xterm")
	}
	ptmx, err := pty.StartWithAttrs(
		cmd,
		&pty.Winsize{
			Rows: uint16(size.Rows),
			Cols: uint16(size.Cols),
			X:    uint16(size.XPixel),
			Y:    uint16(size.YPixel),
		},
		&syscall.SysProcAttr{
			Setsid:  true,
			Setctty: true,
			Ctty:    1,
		})
	if err != nil {
		return fmt.Errorf("starting %s: %w", opts.command[0], err)
	}
	defer ptmx.Close()

	if err := tty.MakeRaw(); err != nil {
		return fmt.Errorf("entering raw mode: %w", err)
	}
	defer tty.Restore()

	go func() {
		if _, err := io.Copy(ptmx, tty); err != nil {
			log.Debug("input closed", "error", err)
		}
	}()

	buf := screen.New(size.Cols, size.Rows)
	buf.Logger = log
	game := nethack.NewGame(log)
	chunk := make([]byte, readSize)
	reads := 0
	for {
		n, err := ptmx.Read(chunk)
		if n > 0 {
			if _, err := os.Stdout.Write(chunk[:n]); err != nil {
				return err
			}
			buf.Update(chunk[:n])
			reads += 1
			if reads%opts.every == 0 {
				update(game, buf, log)
			}
		}
		if err != nil {
			// the master reads EIO once the child has exited
			log.Debug("output closed", "error", err)
			break
		}
	}
	return cmd.Wait()
}

func update(game *nethack.Game, buf *screen.Buffer, log *slog.Logger) {
	if !window.ContainsBorders(buf) {
		log.Debug("no windows on screen")
		return
	}
	if err := game.Update(buf); err != nil {
		log.Warn("couldn't read screen", "error", err)
		return
	}
	log.Info("status", "stats", game.Status)
}
