package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"git.sr.ht/~rockorager/nhview/window"
)

type widthMethod int

const (
	wcwidth widthMethod = iota
	noZWJ               // unicodeStd, with ZWJ sequences split apart
	unicodeStd
)

func parseWidthMethod(s string) (widthMethod, error) {
	switch s {
	case "wcwidth":
		return wcwidth, nil
	case "unicode":
		return unicodeStd, nil
	case "nozwj":
		return noZWJ, nil
	default:
		return wcwidth, fmt.Errorf("unknown width method %q", s)
	}
}

// gwidth is the number of columns s takes up on a terminal using method
func gwidth(s string, method widthMethod) int {
	switch method {
	case noZWJ:
		s = strings.ReplaceAll(s, "\u200D", "")
		return uniseg.StringWidth(s)
	case unicodeStd:
		return uniseg.StringWidth(s)
	default:
		total := 0
		for _, r := range s {
			if r >= 0xFE00 && r <= 0xFE0F {
				// Variation Selectors 1 - 16
				continue
			}
			if r >= 0xE0100 && r <= 0xE01EF {
				// Variation Selectors 17-256
				continue
			}
			total += runewidth.RuneWidth(r)
		}
		return total
	}
}

// frame writes lines to w inside a box. The box is at least width columns
// wide, wider if a line needs it
func frame(w io.Writer, lines []string, width int, method widthMethod) error {
	widths := make([]int, len(lines))
	for i, line := range lines {
		widths[i] = gwidth(line, method)
		if widths[i] > width {
			width = widths[i]
		}
	}
	hline := strings.Repeat(string(window.Horizontal), width)
	if _, err := fmt.Fprintf(w, "%c%s%c\n", window.TopLeft, hline, window.TopRight); err != nil {
		return err
	}
	for i, line := range lines {
		pad := strings.Repeat(" ", width-widths[i])
		_, err := fmt.Fprintf(w, "%c%s%s%c\n", window.Vertical, line, pad, window.Vertical)
		if err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "%c%s%c\n", window.BottomLeft, hline, window.BottomRight)
	return err
}
