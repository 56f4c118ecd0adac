// Package lineedit provides a single-line raw-mode editor with incremental rendering.
//
// The Editor keeps a byte buffer and cursor in step with the physical terminal line
// by emitting only the bytes each edit needs: re-echoing the tail after the cursor,
// stepping back with 0x08 and forward with ESC [ 1 C. It never redraws the prompt.
package lineedit

import (
	"io"

	"github.com/lixenwraith/rawline/history"
	"github.com/lixenwraith/rawline/terminal"
)

// Editor is a single-line text editor with cursor tracking and terminal rendering
type Editor struct {
	w       io.Writer
	echo    Echo
	history *history.Ring

	text   []byte
	cursor int
	offset int // History scroll offset, +1 per up, -1 per down

	scratch []byte
	refuse  func(terminal.Key)
}

// NewEditor creates an empty editor rendering to w
// ring may be nil, in which case history keys are refused
func NewEditor(w io.Writer, echo Echo, ring *history.Ring) *Editor {
	return &Editor{
		w:       w,
		echo:    echo,
		history: ring,
		text:    make([]byte, 0, 64),
		scratch: make([]byte, 0, 128),
	}
}

// OnRefuse registers a callback for keys that leave the line unchanged at a boundary
// (backspace at column 0, delete at the tail, clamped arrows, missing history entry)
func (e *Editor) OnRefuse(fn func(terminal.Key)) {
	e.refuse = fn
}

// Text returns the current text
func (e *Editor) Text() string {
	return string(e.text)
}

// Cursor returns the current cursor position
func (e *Editor) Cursor() int {
	return e.cursor
}

// Len returns the length of the text
func (e *Editor) Len() int {
	return len(e.text)
}

// Apply performs one key event; Enter is ignored here and handled by the session
func (e *Editor) Apply(ev terminal.Event) error {
	switch ev.Key {
	case terminal.KeyChar:
		return e.Insert(ev.Char)
	case terminal.KeyBackspace:
		return e.Backspace()
	case terminal.KeyDelete:
		return e.Delete()
	case terminal.KeyLeft:
		return e.Left()
	case terminal.KeyRight:
		return e.Right()
	case terminal.KeyHome:
		return e.Home()
	case terminal.KeyEnd:
		return e.End()
	case terminal.KeyUp:
		return e.ScrollHistory(1)
	case terminal.KeyDown:
		return e.ScrollHistory(-1)
	}
	return nil
}

// Insert puts ch at the cursor and advances it
func (e *Editor) Insert(ch byte) error {
	e.text = append(e.text, 0)
	copy(e.text[e.cursor+1:], e.text[e.cursor:])
	e.text[e.cursor] = ch

	out := e.scratch[:0]
	if e.cursor == len(e.text)-1 {
		out = append(out, e.echo.Render(ch))
	} else {
		// Re-echo from the insertion point, then step back to just after ch
		out = e.echo.appendRendered(out, e.text[e.cursor:])
		out = appendBack(out, len(e.text)-1-e.cursor)
	}
	e.cursor++
	return e.flushScratch(out)
}

// Backspace removes the character before the cursor
func (e *Editor) Backspace() error {
	if e.cursor == 0 {
		e.refused(terminal.KeyBackspace)
		return nil
	}
	e.text = append(e.text[:e.cursor-1], e.text[e.cursor:]...)
	e.cursor--

	out := append(e.scratch[:0], terminal.CursorBack)
	out = e.eraseTail(out)
	return e.flushScratch(out)
}

// Delete removes the character under the cursor
// The last character is never removed this way: a cursor on it or past it is a no-op.
func (e *Editor) Delete() error {
	if e.cursor >= len(e.text)-1 {
		e.refused(terminal.KeyDelete)
		return nil
	}
	e.text = append(e.text[:e.cursor], e.text[e.cursor+1:]...)
	return e.flushScratch(e.eraseTail(e.scratch[:0]))
}

// Left moves the cursor one column back
func (e *Editor) Left() error {
	if e.cursor == 0 {
		e.refused(terminal.KeyLeft)
		return nil
	}
	e.cursor--
	return e.flushScratch(append(e.scratch[:0], terminal.CursorBack))
}

// Right moves the cursor one column forward
func (e *Editor) Right() error {
	if e.cursor >= len(e.text) {
		e.refused(terminal.KeyRight)
		return nil
	}
	e.cursor++
	return e.flushScratch(append(e.scratch[:0], terminal.CursorForward...))
}

// Home moves the cursor to column 0
func (e *Editor) Home() error {
	out := appendBack(e.scratch[:0], e.cursor)
	e.cursor = 0
	return e.flushScratch(out)
}

// End moves the cursor past the last character
func (e *Editor) End() error {
	out := appendForward(e.scratch[:0], len(e.text)-e.cursor)
	e.cursor = len(e.text)
	return e.flushScratch(out)
}

// ScrollHistory moves the history offset by delta and loads the entry it selects
// Offset k selects index Len-k: the first step up shows the newest entry. When the
// index has no entry the line is left as is but the offset keeps its new value.
func (e *Editor) ScrollHistory(delta int) error {
	key := terminal.KeyUp
	if delta < 0 {
		key = terminal.KeyDown
	}
	if e.history == nil {
		e.refused(key)
		return nil
	}

	e.offset += delta
	line, ok := e.history.Get(e.history.Len() - e.offset)
	if !ok {
		e.refused(key)
		return nil
	}
	return e.Replace(line)
}

// Replace swaps the whole buffer for line and leaves the cursor at its end
func (e *Editor) Replace(line string) error {
	oldLen := len(e.text)

	out := appendBack(e.scratch[:0], e.cursor)
	e.text = append(e.text[:0], line...)
	e.cursor = len(e.text)
	out = e.echo.appendRendered(out, e.text)
	if excess := oldLen - len(e.text); excess > 0 {
		for i := 0; i < excess; i++ {
			out = append(out, ' ')
		}
		out = appendBack(out, excess)
	}
	return e.flushScratch(out)
}

// eraseTail re-echoes text from the cursor, blanks the stale last column and
// returns to the cursor
func (e *Editor) eraseTail(out []byte) []byte {
	tail := e.text[e.cursor:]
	out = e.echo.appendRendered(out, tail)
	out = append(out, ' ')
	return appendBack(out, len(tail)+1)
}

// flushScratch writes out unless echo is suppressed
func (e *Editor) flushScratch(out []byte) error {
	e.scratch = out[:0]
	if !e.echo.Visible() || len(out) == 0 {
		return nil
	}
	_, err := e.w.Write(out)
	return err
}

func (e *Editor) refused(k terminal.Key) {
	if e.refuse != nil {
		e.refuse(k)
	}
}

func appendBack(out []byte, n int) []byte {
	for i := 0; i < n; i++ {
		out = append(out, terminal.CursorBack)
	}
	return out
}

func appendForward(out []byte, n int) []byte {
	for i := 0; i < n; i++ {
		out = append(out, terminal.CursorForward...)
	}
	return out
}
