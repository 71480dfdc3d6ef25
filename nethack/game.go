package nethack

import (
	"fmt"
	"io"

	"git.sr.ht/~rockorager/nhview/window"
	"golang.org/x/exp/slog"
)

// StatusHeight is the height of the status window. No other window NetHack
// draws has exactly two rows
const StatusHeight = 2

// Game tracks what is known about a running game. It is not safe for
// concurrent use
type Game struct {
	// Windows are the windows found by the last Update
	Windows []window.SubWindow
	Status  Stats

	log *slog.Logger
}

// NewGame creates a Game which logs to logger. A nil logger discards logs
func NewGame(logger *slog.Logger) *Game {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Game{
		Status: NewStats(),
		log:    logger,
	}
}

// Update extracts the windows from screen and reads the status window, if
// there is one
func (g *Game) Update(screen window.Source) error {
	windows, err := window.Extract(screen)
	if err != nil {
		return fmt.Errorf("extracting windows: %w", err)
	}
	g.Windows = windows
	for _, win := range windows {
		height, width := win.Size()
		g.log.Debug("window",
			"height", height,
			"width", width,
			"row", win.Origin.Y,
			"col", win.Origin.X,
		)
		if height != StatusHeight {
			continue
		}
		if err := g.Status.ReadStatusLine(win); err != nil {
			return fmt.Errorf("reading status line: %w", err)
		}
		g.log.Debug("status", "stats", g.Status)
	}
	return nil
}

// StatusWindow returns the last window found with the height of the status
// window
func (g *Game) StatusWindow() (window.SubWindow, bool) {
	for i := len(g.Windows) - 1; i >= 0; i -= 1 {
		if height, _ := g.Windows[i].Size(); height == StatusHeight {
			return g.Windows[i], true
		}
	}
	return window.SubWindow{}, false
}

// Debug writes the text of every window to w
func (g *Game) Debug(w io.Writer) error {
	for i, win := range g.Windows {
		height, width := win.Size()
		_, err := fmt.Fprintf(w, "window %d: %dx%d at row %d, col %d\n",
			i+1, width, height, win.Origin.Y, win.Origin.X)
		if err != nil {
			return err
		}
		lines, err := win.Lines()
		if err != nil {
			return err
		}
		for _, line := range lines {
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
	}
	return nil
}
