package screen

import "unicode/utf8"

// C0 control codes the decoder acts on
const (
	bs  = 0x08
	lf  = 0x0A
	cr  = 0x0D
	can = 0x18
	sub = 0x1A
	esc = 0x1B
)

type entryMode int

const (
	modeNormal entryMode = iota
	// collecting a multi-byte UTF-8 character
	modeUTF8
	// collecting an escape sequence
	modeEscape
)

type escType int

const (
	escSimple escType = iota
	escCSIParams
	escCSIInter
	escOSC
	// ESC seen inside an OSC string, waiting for the backslash of ST
	escOSCEsc
)

func (t escType) String() string {
	switch t {
	case escSimple:
		return "simple"
	case escCSIParams:
		return "csi params"
	case escCSIInter:
		return "csi intermediates"
	case escOSC:
		return "osc"
	case escOSCEsc:
		return "osc esc"
	default:
		return "?"
	}
}

type action int

const (
	// keep collecting
	actionCollect action = iota
	// the sequence is complete
	actionDispatch
	// drop the sequence
	actionAbort
)

// transition returns the escape state after reading b in state t, and what
// to do with the collected sequence. Bytes without a rule keep the state
func transition(t escType, b byte) (escType, action) {
	if b == can || b == sub {
		return t, actionAbort
	}
	switch t {
	case escSimple:
		switch {
		case b == '[':
			return escCSIParams, actionCollect
		case b == ']':
			return escOSC, actionCollect
		case b >= 0x30 && b <= 0x7E:
			return t, actionDispatch
		}
	case escCSIParams, escCSIInter:
		switch {
		case b >= 0x30 && b <= 0x3F:
			return escCSIParams, actionCollect
		case b >= 0x20 && b <= 0x2F:
			return escCSIInter, actionCollect
		case b >= 0x40 && b <= 0x7E:
			return t, actionDispatch
		}
	case escOSC:
		if b == esc {
			return escOSCEsc, actionCollect
		}
	case escOSCEsc:
		if b == '\\' {
			return t, actionDispatch
		}
	}
	return t, actionCollect
}

// Update processes p one byte at a time
func (b *Buffer) Update(p []byte) {
	for _, c := range p {
		switch b.mode {
		case modeNormal:
			b.normal(c)
		case modeUTF8:
			b.continuation(c)
		case modeEscape:
			b.escapeByte(c)
		}
	}
}

func (b *Buffer) normal(c byte) {
	switch c {
	case lf:
		b.cursorDown(1)
		return
	case cr:
		b.cursorSetColumn(1)
		return
	case bs:
		b.backspace()
		return
	case esc:
		b.escape = append(b.escape[:0], c)
		b.esc = escSimple
		b.mode = modeEscape
		return
	}

	if b.charset != UTF8 || c < utf8.RuneSelf {
		b.putChar(decodeByte(c))
		return
	}
	switch {
	case c >= 0xC0 && c < 0xE0:
		b.pending = 1
	case c >= 0xE0 && c < 0xF0:
		b.pending = 2
	case c >= 0xF0 && c < 0xF8:
		b.pending = 3
	default:
		// stray continuation byte or invalid lead byte
		b.putChar(utf8.RuneError)
		return
	}
	b.utf8 = append(b.utf8[:0], c)
	b.mode = modeUTF8
}

// continuation collects the remaining bytes of a UTF-8 character. A byte
// which is not a continuation ends the character early and is processed
// normally
func (b *Buffer) continuation(c byte) {
	if c < 0x80 || c >= 0xC0 {
		b.pending = 0
		b.mode = modeNormal
		b.putChar(utf8.RuneError)
		b.normal(c)
		return
	}
	b.utf8 = append(b.utf8, c)
	b.pending -= 1
	if b.pending > 0 {
		return
	}
	r, _ := utf8.DecodeRune(b.utf8)
	b.mode = modeNormal
	b.putChar(r)
}

func (b *Buffer) escapeByte(c byte) {
	b.escape = append(b.escape, c)
	next, act := transition(b.esc, c)
	switch act {
	case actionAbort:
		b.abortEscape()
	case actionDispatch:
		b.dispatch()
	default:
		b.esc = next
		if len(b.escape) >= MaxEscapeLen {
			b.log().Debug("escape sequence too long", "state", b.esc, "len", len(b.escape))
			b.abortEscape()
		}
	}
}

func (b *Buffer) abortEscape() {
	b.mode = modeNormal
	b.escape = b.escape[:0]
}

func (b *Buffer) dispatch() {
	switch b.esc {
	case escSimple:
		// drop the ESC
		b.simpleEscape(b.escape[1:])
	case escCSIParams, escCSIInter:
		// drop the ESC [
		b.csi(b.escape[2:])
	case escOSC, escOSCEsc:
		// OSC strings are ignored
	}
	b.mode = modeNormal
	b.escape = b.escape[:0]
}

func (b *Buffer) backspace() {
	if b.cursor.col == 0 {
		return
	}
	b.cursorBack(1)
	b.putChar(' ')
	b.cursorBack(1)
}
