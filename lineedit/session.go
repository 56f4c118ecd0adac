package lineedit

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/lixenwraith/rawline/history"
	"github.com/lixenwraith/rawline/terminal"
)

// Terminal is the byte surface an editing session drives
// *terminal.Terminal satisfies it; writes may be buffered until Flush.
type Terminal interface {
	Raw() (terminal.Guard, error)
	ReadByte() (byte, error)
	Write(p []byte) (int, error)
	Flush() error
}

// Options configures one editing session
type Options struct {
	Echo        Echo
	EmitNewline bool               // Write LF after Enter when echo is visible
	OnRefuse    func(terminal.Key) // Optional, see Editor.OnRefuse
}

// EditLine reads one line from term in raw mode and records it in ring
func EditLine(term Terminal, ring *history.Ring, echo Echo, emitNewline bool) (string, error) {
	return Edit(term, ring, Options{Echo: echo, EmitNewline: emitNewline})
}

// Edit runs a session: raw mode is held for its whole duration and restored on
// every return path. On end of input the partial line is returned with io.EOF and
// is not added to history.
func Edit(term Terminal, ring *history.Ring, opts Options) (line string, err error) {
	guard, err := term.Raw()
	if err != nil {
		return "", fmt.Errorf("enter raw mode: %w", err)
	}
	defer func() {
		if rerr := guard.Release(); rerr != nil {
			err = errors.Join(err, fmt.Errorf("release raw mode: %w", rerr))
		}
	}()

	// Prompt text written before the session must be visible before blocking
	if err := term.Flush(); err != nil {
		return "", fmt.Errorf("flush output: %w", err)
	}

	ed := NewEditor(term, opts.Echo, ring)
	ed.OnRefuse(opts.OnRefuse)
	dec := terminal.NewDecoder()

	for {
		b, err := term.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				if dec.Pending() {
					log.Printf("lineedit: input ended inside an escape sequence")
				}
				return ed.Text(), io.EOF
			}
			return "", fmt.Errorf("read input: %w", err)
		}

		ev, ok := dec.Feed(b)
		if !ok {
			continue
		}

		if ev.Key == terminal.KeyEnter {
			return finish(term, ring, ed, opts)
		}

		if err := ed.Apply(ev); err != nil {
			return "", fmt.Errorf("render %s: %w", ev.Key, err)
		}
		if err := term.Flush(); err != nil {
			return "", fmt.Errorf("flush output: %w", err)
		}
	}
}

func finish(term Terminal, ring *history.Ring, ed *Editor, opts Options) (string, error) {
	line := ed.Text()
	if opts.EmitNewline && opts.Echo.Visible() {
		if _, err := term.Write([]byte{'\n'}); err != nil {
			return "", fmt.Errorf("write newline: %w", err)
		}
	}
	if err := term.Flush(); err != nil {
		return "", fmt.Errorf("flush output: %w", err)
	}
	if ring != nil {
		ring.Push(line)
	}
	log.Printf("lineedit: accepted line, %d bytes, echo %s", len(line), opts.Echo)
	return line, nil
}
