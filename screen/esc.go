package screen

// simpleEscape handles a non-CSI escape sequence. seq is the sequence
// without the leading ESC
func (b *Buffer) simpleEscape(seq []byte) {
	if len(seq) == 0 {
		return
	}
	switch seq[0] {
	case 'c': // RIS
	case 'D': // IND
	case 'E': // NEL
	case 'H': // HTS
	case 'M': // RI
	case 'Z': // DECID
	case '#': // DECALN
	case '>': // DECKPNM
	case '=': // DECKPAM
	case '7': // DECSC
		b.save()
	case '8': // DECRC
		b.restore()
	case '%':
		if len(seq) < 2 {
			return
		}
		switch seq[1] {
		case '@':
			b.charset = IsoStandard
		case 'G', '8':
			b.charset = UTF8
		}
	case '(':
		if len(seq) < 2 {
			return
		}
		if m, ok := designate(seq[1]); ok {
			b.g0 = m
		}
	case ')':
		if len(seq) < 2 {
			return
		}
		if m, ok := designate(seq[1]); ok {
			b.g1 = m
		}
	default:
		b.log().Debug("unhandled escape", "sequence", string(seq))
	}
}
