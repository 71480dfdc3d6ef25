package screen

import "golang.org/x/text/encoding/charmap"

// CharMap selects a glyph mapping table
type CharMap int

const (
	IsoStandard CharMap = iota
	UTF8
	VTGraphics
	Null
	User
)

func (c CharMap) String() string {
	switch c {
	case IsoStandard:
		return "IsoStandard"
	case UTF8:
		return "UTF8"
	case VTGraphics:
		return "VTGraphics"
	case Null:
		return "Null"
	case User:
		return "User"
	default:
		return "CharMap(?)"
	}
}

// designate returns the map selected by the final byte of an SCS sequence
// (ESC ( F or ESC ) F)
func designate(final byte) (CharMap, bool) {
	switch final {
	case 'B':
		return IsoStandard, true
	case '0':
		return VTGraphics, true
	case 'U':
		return Null, true
	case 'K':
		return User, true
	}
	return 0, false
}

// DEC Special Graphics. Only the glyphs curses uses for borders and the map
// are translated
var vtGraphics = map[rune]rune{
	'a': '▒',
	'j': '┘',
	'k': '┐',
	'l': '┌',
	'm': '└',
	'n': '┼',
	'q': '─',
	't': '├',
	'u': '┤',
	'v': '┴',
	'w': '┬',
	'x': '│',
	'~': '·',
}

// mapRune applies m to r. Maps other than VTGraphics leave r unchanged
func mapRune(m CharMap, r rune) rune {
	if m != VTGraphics {
		return r
	}
	if shifted, ok := vtGraphics[r]; ok {
		return shifted
	}
	return r
}

// decodeByte interprets a single byte as ISO-8859-1
func decodeByte(b byte) rune {
	return charmap.ISO8859_1.DecodeByte(b)
}
