// Package console is the convenience layer over terminal and lineedit: prompts,
// single-key reads and coloured printing on one shared terminal.
package console

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/lixenwraith/rawline/terminal"
)

// Console bundles a terminal with its style state and prompt settings
// Not safe for concurrent use.
type Console struct {
	term        *terminal.Terminal
	style       *terminal.StyleContext
	skipNewline bool
	refuse      func(terminal.Key)
}

// New creates a console on term
func New(term *terminal.Terminal) *Console {
	return &Console{
		term:  term,
		style: terminal.NewStyleContext(term),
	}
}

// NewStdio creates a console on stdin/stdout
// Colour and style escapes are disabled when stdout is not a terminal.
func NewStdio() *Console {
	c := New(terminal.New())
	fd := os.Stdout.Fd()
	c.style.SetEnabled(isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd))
	return c
}

// Terminal returns the underlying terminal
func (c *Console) Terminal() *terminal.Terminal {
	return c.term
}

// Style returns the persistent colour and style state
func (c *Console) Style() *terminal.StyleContext {
	return c.style
}

// OnRefuse sets the callback for keys the line editor refuses
func (c *Console) OnRefuse(fn func(terminal.Key)) {
	c.refuse = fn
}

// DiscardNewlineOnPromptNextTime suppresses the newline echoed after the next accepted line
// The flag resets after one prompt.
func (c *Console) DiscardNewlineOnPromptNextTime() {
	c.skipNewline = true
}

// UseNewlineOnPrompt cancels a pending DiscardNewlineOnPromptNextTime
func (c *Console) UseNewlineOnPrompt() {
	c.skipNewline = false
}

// takeNewline reports whether the coming prompt echoes a newline and rearms the flag
func (c *Console) takeNewline() bool {
	emit := !c.skipNewline
	c.skipNewline = false
	return emit
}

// Getch reads one byte with raw mode held only for the read
func (c *Console) Getch() (b byte, err error) {
	if err := c.term.Flush(); err != nil {
		return 0, fmt.Errorf("flush output: %w", err)
	}
	guard, err := c.term.Raw()
	if err != nil {
		return 0, fmt.Errorf("enter raw mode: %w", err)
	}
	defer func() {
		if rerr := guard.Release(); rerr != nil && err == nil {
			err = fmt.Errorf("release raw mode: %w", rerr)
		}
	}()

	b, err = c.term.ReadByte()
	if err != nil {
		return 0, err
	}
	return b, nil
}

// TestChars prints the value of each typed byte and the key it completes
// It stops after n bytes, or at end of input when n is 0.
func (c *Console) TestChars(n int) error {
	dec := terminal.NewDecoder()
	for i := 0; n == 0 || i < n; i++ {
		b, err := c.Getch()
		if err != nil {
			return err
		}

		if ev, ok := dec.Feed(b); ok {
			_, err = fmt.Fprintf(c.term, "%3d 0x%02x  %s\n", b, b, ev)
		} else {
			_, err = fmt.Fprintf(c.term, "%3d 0x%02x\n", b, b)
		}
		if err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		if err := c.term.Flush(); err != nil {
			return fmt.Errorf("flush output: %w", err)
		}
	}
	return nil
}
