// @focus: #terminal { ansi }
package terminal

import (
	"io"
	"strconv"
)

// Cursor movement used for incremental line rendering
const (
	CursorBack    byte   = 0x08      // Retreat one column
	CursorForward string = "\x1b[1C" // Advance one column without writing
)

// Pre-allocated ANSI sequence fragments
var (
	csi    = []byte("\x1b[")
	csiEnd = []byte("m")
	// Full attribute reset in the zero-padded form terminals of every vintage accept
	csiSGR0 = []byte("\x1b[00m")

	// Cursor control
	csiCursorShow = []byte("\x1b[?25h")
	csiRIS        = []byte("\x1bc") // Reset to Initial State (emergency)
)

// writeSGR writes ESC [ prefix digits m
func writeSGR(w io.Writer, prefix string, n int) error {
	buf := make([]byte, 0, 8)
	buf = append(buf, csi...)
	buf = append(buf, prefix...)
	buf = strconv.AppendInt(buf, int64(n), 10)
	buf = append(buf, csiEnd...)
	_, err := w.Write(buf)
	return err
}
