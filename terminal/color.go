package terminal

import (
	"fmt"
	"io"
)

// Colour is one of the eight user-defined terminal colours or the terminal default
// Values are the SGR colour digits: fg is 3<n>, bg is 4<n>
type Colour uint8

const (
	ColourBlack   Colour = 0
	ColourRed     Colour = 1
	ColourGreen   Colour = 2
	ColourYellow  Colour = 3
	ColourBlue    Colour = 4
	ColourMagenta Colour = 5
	ColourCyan    Colour = 6
	ColourGrey    Colour = 7
	ColourStd     Colour = 9 // Terminal default
)

// TextStyle is an SGR attribute that does not alter fg or bg colours
type TextStyle uint8

const (
	StyleStd        TextStyle = 0
	StyleBold       TextStyle = 1
	StyleFaint      TextStyle = 2
	StyleItalic     TextStyle = 3
	StyleUnderlined TextStyle = 4
	StyleBlink      TextStyle = 5
	StyleHidden     TextStyle = 8
	StyleCrossed    TextStyle = 9
)

// Layer selects foreground or background
type Layer uint8

const (
	LayerFG Layer = iota
	LayerBG
)

var allColours = []Colour{
	ColourStd, ColourBlack, ColourRed, ColourGreen, ColourYellow,
	ColourBlue, ColourMagenta, ColourCyan, ColourGrey,
}

var allStyles = []TextStyle{
	StyleStd, StyleBold, StyleFaint, StyleItalic,
	StyleUnderlined, StyleBlink, StyleHidden, StyleCrossed,
}

var colourNames = map[Colour]string{
	ColourStd:     "std",
	ColourBlack:   "black",
	ColourRed:     "red",
	ColourGreen:   "green",
	ColourYellow:  "yellow",
	ColourBlue:    "blue",
	ColourMagenta: "magenta",
	ColourCyan:    "cyan",
	ColourGrey:    "grey",
}

var styleNames = map[TextStyle]string{
	StyleStd:        "std",
	StyleBold:       "bold",
	StyleFaint:      "faint",
	StyleItalic:     "italic",
	StyleUnderlined: "underlined",
	StyleBlink:      "blink",
	StyleHidden:     "hidden",
	StyleCrossed:    "crossed",
}

// Colours returns every colour, default first
func Colours() []Colour {
	return append([]Colour(nil), allColours...)
}

// TextStyles returns every text style, plain first
func TextStyles() []TextStyle {
	return append([]TextStyle(nil), allStyles...)
}

func (c Colour) String() string {
	if name, ok := colourNames[c]; ok {
		return name
	}
	return fmt.Sprintf("colour(%d)", uint8(c))
}

func (s TextStyle) String() string {
	if name, ok := styleNames[s]; ok {
		return name
	}
	return fmt.Sprintf("style(%d)", uint8(s))
}

// ColourByName resolves a colour name; "gray" and "default" are accepted aliases
func ColourByName(name string) (Colour, bool) {
	switch name {
	case "gray":
		return ColourGrey, true
	case "default", "":
		return ColourStd, true
	}
	for c, n := range colourNames {
		if n == name {
			return c, true
		}
	}
	return ColourStd, false
}

// TextStyleByName resolves a style name; "underline" and "strikethrough" are accepted aliases
func TextStyleByName(name string) (TextStyle, bool) {
	switch name {
	case "underline":
		return StyleUnderlined, true
	case "strikethrough":
		return StyleCrossed, true
	case "default", "":
		return StyleStd, true
	}
	for s, n := range styleNames {
		if n == name {
			return s, true
		}
	}
	return StyleStd, false
}

// Escape returns the SGR sequence selecting c on layer l
func (c Colour) Escape(l Layer) string {
	if l == LayerBG {
		return fmt.Sprintf("\x1b[4%dm", c)
	}
	return fmt.Sprintf("\x1b[3%dm", c)
}

// StyleContext holds the persistent colour and style state for one output stream
// Set* mutates the state and writes it; Use* writes without mutating; Restore*
// re-emits the stored state. A disabled context tracks state but writes nothing.
type StyleContext struct {
	w        io.Writer
	fg       Colour
	bg       Colour
	style    TextStyle
	disabled bool
}

// NewStyleContext creates a context with default colours and plain style
func NewStyleContext(w io.Writer) *StyleContext {
	return &StyleContext{
		w:     w,
		fg:    ColourStd,
		bg:    ColourStd,
		style: StyleStd,
	}
}

// SetEnabled turns escape output on or off
func (s *StyleContext) SetEnabled(enabled bool) {
	s.disabled = !enabled
}

// Enabled reports whether escapes are written
func (s *StyleContext) Enabled() bool {
	return !s.disabled
}

// Foreground returns the persistent foreground colour
func (s *StyleContext) Foreground() Colour {
	return s.fg
}

// Background returns the persistent background colour
func (s *StyleContext) Background() Colour {
	return s.bg
}

// Style returns the persistent text style
func (s *StyleContext) Style() TextStyle {
	return s.style
}

// SetColour makes c the persistent colour of layer l
func (s *StyleContext) SetColour(c Colour, l Layer) error {
	if l == LayerBG {
		s.bg = c
	} else {
		s.fg = c
	}
	return s.writeColour(c, l)
}

// SetColours makes fg and bg persistent
func (s *StyleContext) SetColours(fg, bg Colour) error {
	if err := s.SetColour(fg, LayerFG); err != nil {
		return err
	}
	return s.SetColour(bg, LayerBG)
}

// UseColour switches layer l to c until the next restore
func (s *StyleContext) UseColour(c Colour, l Layer) error {
	return s.writeColour(c, l)
}

// UseColours switches both layers until the next restore
func (s *StyleContext) UseColours(fg, bg Colour) error {
	if err := s.writeColour(fg, LayerFG); err != nil {
		return err
	}
	return s.writeColour(bg, LayerBG)
}

// RestoreColour re-emits the persistent colour of layer l
func (s *StyleContext) RestoreColour(l Layer) error {
	if l == LayerBG {
		return s.writeColour(s.bg, LayerBG)
	}
	return s.writeColour(s.fg, LayerFG)
}

// RestoreColours re-emits both persistent colours
func (s *StyleContext) RestoreColours() error {
	return s.UseColours(s.fg, s.bg)
}

// SetStyle makes st the persistent style
func (s *StyleContext) SetStyle(st TextStyle) error {
	s.style = st
	return s.writeStyle(st)
}

// UseStyle switches to st until the next restore
func (s *StyleContext) UseStyle(st TextStyle) error {
	return s.writeStyle(st)
}

// RestoreStyle re-emits the persistent style
func (s *StyleContext) RestoreStyle() error {
	return s.writeStyle(s.style)
}

// ResetColours makes the terminal default colours persistent
func (s *StyleContext) ResetColours() error {
	return s.SetColours(ColourStd, ColourStd)
}

// ResetStyle makes the plain style persistent
func (s *StyleContext) ResetStyle() error {
	return s.SetStyle(StyleStd)
}

// ResetAll clears colours and style in one SGR reset
func (s *StyleContext) ResetAll() error {
	s.fg, s.bg, s.style = ColourStd, ColourStd, StyleStd
	if s.disabled {
		return nil
	}
	_, err := s.w.Write(csiSGR0)
	return err
}

func (s *StyleContext) writeColour(c Colour, l Layer) error {
	if s.disabled {
		return nil
	}
	prefix := "3"
	if l == LayerBG {
		prefix = "4"
	}
	return writeSGR(s.w, prefix, int(c))
}

// writeStyle resets attributes, applies st, then re-applies the persistent colours
// since an SGR reset clears them too
func (s *StyleContext) writeStyle(st TextStyle) error {
	if s.disabled {
		return nil
	}
	if _, err := s.w.Write(csiSGR0); err != nil {
		return err
	}
	if err := writeSGR(s.w, "0", int(st)); err != nil {
		return err
	}
	if err := s.writeColour(s.fg, LayerFG); err != nil {
		return err
	}
	return s.writeColour(s.bg, LayerBG)
}
