package window

import "strings"

// Lines converts every row of src into a line of text. Blank cells (NUL or
// space) between content are rendered as a single space each; a run of blank
// cells reaching the end of the row is dropped.
func Lines(src Source) ([]string, error) {
	height, width := src.Size()
	out := make([]string, 0, height)
	for row := 1; row <= height; row += 1 {
		line := strings.Builder{}
		// pending counts blank cells not yet known to be followed by content
		pending := 0
		for col := 1; col <= width; col += 1 {
			r, err := src.CharAt(row, col)
			if err != nil {
				return nil, err
			}
			if isBlank(r) {
				pending += 1
				continue
			}
			for ; pending > 0; pending -= 1 {
				line.WriteRune(' ')
			}
			line.WriteRune(r)
		}
		out = append(out, line.String())
	}
	return out, nil
}

func isBlank(r rune) bool {
	return r == 0 || r == ' '
}
