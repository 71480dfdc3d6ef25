package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/exp/slog"

	"git.sr.ht/~rockorager/nhview/nethack"
	"git.sr.ht/~rockorager/nhview/screen"
)

// replay feeds a captured session through a screen, then prints the windows
// and status found on the final screen to out
func replay(r io.Reader, out io.Writer, opts options, log *slog.Logger) error {
	buf := screen.New(opts.width, opts.height)
	buf.Logger = log
	chunk := make([]byte, readSize)
	for {
		n, err := r.Read(chunk)
		if n > 0 {
			buf.Update(chunk[:n])
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("reading capture: %w", err)
		}
	}
	row, col := buf.Cursor()
	log.Debug("replay done", "row", row, "col", col, "charset", buf.Charset())

	game := nethack.NewGame(log)
	if err := game.Update(buf); err != nil {
		return err
	}
	for i, win := range game.Windows {
		_, err := fmt.Fprintf(out, "window %d: %dx%d at row %d, col %d\n",
			i+1, win.Extent.Width, win.Extent.Height, win.Origin.Y, win.Origin.X)
		if err != nil {
			return err
		}
		lines, err := win.Lines()
		if err != nil {
			return err
		}
		if err := frame(out, lines, win.Extent.Width, opts.method); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(out, statusLine(game.Status))
	return err
}

// statusLine formats s the way NetHack's status line shows it
func statusLine(s nethack.Stats) string {
	str := strings.Builder{}
	fmt.Fprintf(&str, "%s the %s %s St:%s Dlvl:%d $:%d HP:%d(%d) Pw:%d(%d) AC:%d %s",
		s.Name, s.Rank, s.Align, s.Ability.Strength,
		s.Dlvl, s.Gold, s.HP, s.MaxHP, s.Pw, s.MaxPw, s.AC, s.Level)
	if s.Turns != nil {
		fmt.Fprintf(&str, " T:%d", *s.Turns)
	}
	if s.Score != nil {
		fmt.Fprintf(&str, " S:%d", *s.Score)
	}
	return str.String()
}
