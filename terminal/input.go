package terminal

// decoderState tracks progress through an escape sequence
type decoderState uint8

const (
	stateIdle           decoderState = iota // Default state, awaiting a fresh keystroke
	stateEscaped                            // After ESC, awaiting '['
	stateBracketed                          // After ESC [, awaiting final or parameter byte
	stateBracketedTilde                     // After ESC [ N, awaiting '~'
)

// Decoder folds raw input bytes into key events
// A sequence is resolved as soon as its final byte arrives; no byte is held longer
// than needed, so the result does not depend on how input is chunked across reads.
// A byte that breaks a sequence is emitted as a literal keystroke and the pending
// escape context is dropped. ESC is never emitted: in any state it starts a new sequence.
type Decoder struct {
	state   decoderState
	pending Key // Key emitted on '~' in stateBracketedTilde
}

// NewDecoder creates a decoder in the idle state
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Feed consumes one byte and returns the completed event, if any
func (d *Decoder) Feed(b byte) (Event, bool) {
	if b == byteEscape {
		d.state = stateEscaped
		d.pending = KeyNone
		return Event{}, false
	}

	switch d.state {
	case stateEscaped:
		if b == '[' {
			d.state = stateBracketed
			return Event{}, false
		}
		return d.literal(b), true

	case stateBracketed:
		if k, ok := bracketedKeys[b]; ok {
			d.state = stateIdle
			return Event{Key: k}, true
		}
		if k, ok := tildeKeys[b]; ok {
			d.state = stateBracketedTilde
			d.pending = k
			return Event{}, false
		}
		return d.literal(b), true

	case stateBracketedTilde:
		if b == '~' {
			k := d.pending
			d.state = stateIdle
			d.pending = KeyNone
			return Event{Key: k}, true
		}
		return d.literal(b), true
	}

	switch b {
	case byteLineFeed:
		return Event{Key: KeyEnter}, true
	case byteBackspace, byteDelete:
		return Event{Key: KeyBackspace}, true
	}
	return Event{Key: KeyChar, Char: b}, true
}

// Pending reports whether an escape sequence is partially consumed
func (d *Decoder) Pending() bool {
	return d.state != stateIdle
}

// literal abandons the pending sequence and treats b as a plain keystroke
func (d *Decoder) literal(b byte) Event {
	d.state = stateIdle
	d.pending = KeyNone
	return Event{Key: KeyChar, Char: b}
}
