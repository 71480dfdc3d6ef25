package screen

import (
	"strconv"
	"strings"
)

// maxParam caps numeric parameters so cursor arithmetic cannot overflow
const maxParam = 65535

// csi handles a control sequence. seq is the sequence without the leading
// ESC [, the last byte is the final byte
func (b *Buffer) csi(seq []byte) {
	if len(seq) == 0 {
		return
	}
	final := seq[len(seq)-1]
	params := parseParams(string(seq[:len(seq)-1]))

	switch final {
	case 'A': // CUU
		b.cursorUp(params[0])
	case 'B': // CUD
		b.cursorDown(params[0])
	case 'C': // CUF
		b.cursorForward(params[0])
	case 'D': // CUB
		b.cursorBack(params[0])
	case 'E': // CNL
		b.cursorNextLine(params[0])
	case 'F': // CPL
		b.cursorPrevLine(params[0])
	case 'G': // CHA
		b.cursorSetColumn(params[0])
	case 'd': // VPA
		b.cursorSetRow(params[0])
	case 'H', 'f': // CUP, HVP
		b.cursorSetPosition(params[0], params[1])
	case 'J': // ED
		b.eraseDisplay(params[0])
	case 'K': // EL
		b.eraseLine(params[0])
	case 'X': // ECH
		b.eraseChars(params[0])
	case 'm': // SGR
	default:
		b.log().Debug("unhandled CSI", "final", string(final), "params", string(seq[:len(seq)-1]))
	}
}

// parseParams splits a parameter string on ';'. Empty fields are 1, fields
// which are not a number (private markers, intermediates) are skipped. The
// result always has at least two elements, padded with 1
func parseParams(s string) []int {
	params := make([]int, 0, 2)
	for _, field := range strings.Split(s, ";") {
		if field == "" {
			params = append(params, 1)
			continue
		}
		n, err := strconv.ParseUint(field, 10, 64)
		if err != nil {
			continue
		}
		if n > maxParam {
			n = maxParam
		}
		params = append(params, int(n))
	}
	for len(params) < 2 {
		params = append(params, 1)
	}
	return params
}
