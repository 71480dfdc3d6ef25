package nethack_test

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"git.sr.ht/~rockorager/nhview/nethack"
	"git.sr.ht/~rockorager/nhview/screen"
	"git.sr.ht/~rockorager/nhview/window"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

// drawBox returns the bytes curses would send to draw a box with its top
// left corner at the 1-indexed row and col, using DEC line drawing
func drawBox(row int, col int, width int, lines ...string) string {
	str := strings.Builder{}
	hline := strings.Repeat("q", width)
	fmt.Fprintf(&str, "\x1b(0\x1b[%d;%dHl%sk", row, col, hline)
	for i, line := range lines {
		fmt.Fprintf(&str, "\x1b[%d;%dHx\x1b(B%-*s\x1b(0x", row+1+i, col, width, line)
	}
	fmt.Fprintf(&str, "\x1b[%d;%dHm%sj\x1b(B", row+1+len(lines), col, hline)
	return str.String()
}

func newScreen() *screen.Buffer {
	b := screen.New(80, 24)
	b.Update([]byte("\x1b[2J\x1b[1;1HHello Agnar, welcome to NetHack!"))
	b.Update([]byte(drawBox(2, 2, 30,
		"  -----",
		"  |.@.|",
		"  -----",
	)))
	b.Update([]byte(drawBox(7, 2, 76,
		"Agnar the Stripling St:16 Dx:12 Co:14 In:9 Wi:11 Ch:8 Neutral",
		"Dlvl:1 $:0 HP:12(12) Pw:3(3) AC:6 Xp:1/0 T:1",
	)))
	return b
}

func TestGameUpdate(t *testing.T) {
	game := nethack.NewGame(nil)
	require.NoError(t, game.Update(newScreen()))

	require.Len(t, game.Windows, 3)
	assert.Equal(t, window.Size{Width: 30, Height: 3}, game.Windows[0].Extent)
	assert.Equal(t, window.Size{Width: 76, Height: 2}, game.Windows[1].Extent)
	// the undecorated region above and left of the boxes
	assert.Equal(t, window.Size{Width: 1, Height: 1}, game.Windows[2].Extent)

	lines, err := game.Windows[0].Lines()
	require.NoError(t, err)
	assert.Equal(t, []string{"  -----", "  |.@.|", "  -----"}, lines)

	status := game.Status
	assert.Equal(t, "Agnar", status.Name)
	assert.Equal(t, nethack.Rank{Title: "Stripling"}, status.Rank)
	assert.Equal(t, nethack.Neutral, status.Align)
	assert.Equal(t, nethack.XLvlWithExp{N: 1, Exp: 0}, status.Level)
	assert.Equal(t, 12, status.HP)
	assert.Equal(t, 12, status.MaxHP)
	assert.Equal(t, 3, status.Pw)
	assert.Equal(t, 6, status.AC)
	assert.Equal(t, nethack.NormalStrength{N: 16}, status.Ability.Strength)
	assert.Equal(t, 8, status.Ability.Cha)

	win, ok := game.StatusWindow()
	require.True(t, ok)
	assert.Equal(t, window.Position{X: 3, Y: 8}, win.Origin)
}

func TestGameUpdateReplacesWindows(t *testing.T) {
	b := newScreen()
	game := nethack.NewGame(nil)
	require.NoError(t, game.Update(b))
	require.Len(t, game.Windows, 3)

	b.Update([]byte("\x1b[2J"))
	require.NoError(t, game.Update(b))
	require.Len(t, game.Windows, 1)
	_, ok := game.StatusWindow()
	assert.False(t, ok)
	// the status is kept from the previous screen
	assert.Equal(t, "Agnar", game.Status.Name)
}

func TestGameLogs(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	logger := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	game := nethack.NewGame(logger)
	require.NoError(t, game.Update(newScreen()))

	out := buf.String()
	assert.Contains(t, out, "msg=window height=2 width=76 row=8 col=3")
	assert.Contains(t, out, "stats.name=Agnar")
	assert.Contains(t, out, "stats.hp=12(12)")
}

func TestGameDebug(t *testing.T) {
	game := nethack.NewGame(nil)
	require.NoError(t, game.Update(newScreen()))

	buf := bytes.NewBuffer(nil)
	require.NoError(t, game.Debug(buf))
	out := buf.String()
	assert.Contains(t, out, "window 1: 30x3 at row 3, col 3\n  -----\n  |.@.|\n")
	assert.Contains(t, out, "window 2: 76x2 at row 8, col 3\nAgnar the Stripling")
	assert.Contains(t, out, "window 3: 1x1 at row 1, col 1\nH\n")
}
