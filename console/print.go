package console

import (
	"fmt"

	"github.com/lixenwraith/rawline/terminal"
)

// Print writes msg and flushes
func (c *Console) Print(msg any) error {
	if _, err := fmt.Fprint(c.term, msg); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return c.term.Flush()
}

// Println writes msg and a newline and flushes
func (c *Console) Println(msg any) error {
	if _, err := fmt.Fprintln(c.term, msg); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return c.term.Flush()
}

// PrintColour writes msg in fg, then restores the persistent foreground
func (c *Console) PrintColour(msg any, fg terminal.Colour) error {
	return c.printWith(msg, false, func() error {
		return c.style.UseColour(fg, terminal.LayerFG)
	}, func() error {
		return c.style.RestoreColour(terminal.LayerFG)
	})
}

// PrintlnColour is PrintColour followed by a newline in the persistent colour
func (c *Console) PrintlnColour(msg any, fg terminal.Colour) error {
	return c.printWith(msg, true, func() error {
		return c.style.UseColour(fg, terminal.LayerFG)
	}, func() error {
		return c.style.RestoreColour(terminal.LayerFG)
	})
}

// PrintColours writes msg in fg on bg
func (c *Console) PrintColours(msg any, fg, bg terminal.Colour) error {
	return c.printWith(msg, false, func() error {
		return c.style.UseColours(fg, bg)
	}, c.style.RestoreColours)
}

// PrintlnColours writes msg in fg on bg followed by a newline
func (c *Console) PrintlnColours(msg any, fg, bg terminal.Colour) error {
	return c.printWith(msg, true, func() error {
		return c.style.UseColours(fg, bg)
	}, c.style.RestoreColours)
}

// PrintStyle writes msg in st
func (c *Console) PrintStyle(msg any, st terminal.TextStyle) error {
	return c.printWith(msg, false, func() error {
		return c.style.UseStyle(st)
	}, c.style.RestoreStyle)
}

// PrintlnStyle writes msg in st followed by a newline
func (c *Console) PrintlnStyle(msg any, st terminal.TextStyle) error {
	return c.printWith(msg, true, func() error {
		return c.style.UseStyle(st)
	}, c.style.RestoreStyle)
}

// PrintColoursStyle writes msg in fg on bg with st
func (c *Console) PrintColoursStyle(msg any, fg, bg terminal.Colour, st terminal.TextStyle) error {
	return c.printWith(msg, false, c.useAll(fg, bg, st), c.style.RestoreStyle)
}

// PrintlnColoursStyle writes msg in fg on bg with st followed by a newline
func (c *Console) PrintlnColoursStyle(msg any, fg, bg terminal.Colour, st terminal.TextStyle) error {
	return c.printWith(msg, true, c.useAll(fg, bg, st), c.style.RestoreStyle)
}

// useAll applies the style first: a style write re-emits the stored colours
func (c *Console) useAll(fg, bg terminal.Colour, st terminal.TextStyle) func() error {
	return func() error {
		if err := c.style.UseStyle(st); err != nil {
			return err
		}
		return c.style.UseColours(fg, bg)
	}
}

// printWith brackets msg between use and restore; the newline goes after restore
// RestoreStyle re-emits the stored colours as well, so it undoes useAll.
func (c *Console) printWith(msg any, newline bool, use, restore func() error) error {
	if err := use(); err != nil {
		return err
	}
	if _, err := fmt.Fprint(c.term, msg); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	if err := restore(); err != nil {
		return err
	}
	if newline {
		if err := c.term.WriteByte('\n'); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}
	return c.term.Flush()
}
