package terminal

import (
	"bufio"
	"io"
	"os"
)

// Terminal provides byte-level terminal access with buffered output
// Not safe for concurrent use; one editing session owns it at a time.
type Terminal struct {
	backend Backend
	in      *bufio.Reader
	out     *bufio.Writer
}

// New creates a Terminal on the process stdin/stdout
func New() *Terminal {
	return NewFile(os.Stdin, os.Stdout)
}

// NewFile creates a Terminal on explicit files, typically a tty pair
func NewFile(in, out *os.File) *Terminal {
	return NewBackend(newFileBackend(in, out))
}

// NewStream creates a Terminal on arbitrary streams; Raw reports ErrNotTerminal
func NewStream(r io.Reader, w io.Writer) *Terminal {
	return NewBackend(&streamBackend{r: r, w: w})
}

// NewBackend creates a Terminal over a custom backend
func NewBackend(b Backend) *Terminal {
	return &Terminal{
		backend: b,
		in:      bufio.NewReaderSize(b, 64),
		out:     bufio.NewWriterSize(b, 512),
	}
}

// Raw disables canonical input and echo until the guard is released
func (t *Terminal) Raw() (Guard, error) {
	return t.backend.Raw()
}

// ReadByte blocks until one input byte is available
func (t *Terminal) ReadByte() (byte, error) {
	return t.in.ReadByte()
}

// Write buffers p for output
func (t *Terminal) Write(p []byte) (int, error) {
	return t.out.Write(p)
}

// WriteString buffers s for output
func (t *Terminal) WriteString(s string) (int, error) {
	return t.out.WriteString(s)
}

// WriteByte buffers a single output byte
func (t *Terminal) WriteByte(c byte) error {
	return t.out.WriteByte(c)
}

// Flush writes buffered output to the backend
func (t *Terminal) Flush() error {
	return t.out.Flush()
}

// RestoreCookedMode turns canonical input and echo back on for the controlling tty
// For signal handlers, where the session's guard cannot run. Screen content is kept.
func RestoreCookedMode(w io.Writer) {
	w.Write(csiSGR0)
	resetTerminalMode()
}

// EmergencyReset attempts to restore terminal to sane state
// Call this from panic recovery or a signal handler if the raw mode guard cannot be
// released normally
func EmergencyReset(w io.Writer) {
	// Write sequences to provided writer
	w.Write(csiCursorShow)
	w.Write(csiSGR0)
	w.Write(csiRIS)

	// Flush if it's a file
	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// Escape sequences alone don't restore termios
	// This is best-effort; ignore errors in crash context
	resetTerminalMode()
}
