package terminal

import (
	"bytes"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestStyleContext_SetUseRestore(t *testing.T) {
	var buf bytes.Buffer
	s := NewStyleContext(&buf)

	if err := s.SetColour(ColourRed, LayerFG); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "\x1b[31m" {
		t.Errorf("SetColour wrote %q", got)
	}
	buf.Reset()

	if err := s.UseColour(ColourYellow, LayerFG); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "\x1b[33m" {
		t.Errorf("UseColour wrote %q", got)
	}
	if s.Foreground() != ColourRed {
		t.Errorf("UseColour mutated state: fg=%v", s.Foreground())
	}
	buf.Reset()

	if err := s.RestoreColour(LayerFG); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "\x1b[31m" {
		t.Errorf("RestoreColour wrote %q", got)
	}
}

func TestStyleContext_Background(t *testing.T) {
	var buf bytes.Buffer
	s := NewStyleContext(&buf)

	if err := s.SetColours(ColourGreen, ColourMagenta); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "\x1b[32m\x1b[45m" {
		t.Errorf("SetColours wrote %q", got)
	}
	buf.Reset()

	s.UseColours(ColourRed, ColourBlack)
	s.RestoreColours()
	if got := buf.String(); got != "\x1b[31m\x1b[40m\x1b[32m\x1b[45m" {
		t.Errorf("use/restore wrote %q", got)
	}
	buf.Reset()

	s.ResetColours()
	if got := buf.String(); got != "\x1b[39m\x1b[49m" {
		t.Errorf("ResetColours wrote %q", got)
	}
}

func TestStyleContext_StyleKeepsColours(t *testing.T) {
	var buf bytes.Buffer
	s := NewStyleContext(&buf)
	s.SetColours(ColourCyan, ColourRed)
	buf.Reset()

	if err := s.SetStyle(StyleBold); err != nil {
		t.Fatal(err)
	}
	want := "\x1b[00m\x1b[01m\x1b[36m\x1b[41m"
	if got := buf.String(); got != want {
		t.Errorf("SetStyle wrote %q, want %q", got, want)
	}
	buf.Reset()

	s.UseStyle(StyleCrossed)
	if s.Style() != StyleBold {
		t.Errorf("UseStyle mutated style: %v", s.Style())
	}
	s.RestoreStyle()
	want = "\x1b[00m\x1b[09m\x1b[36m\x1b[41m" + "\x1b[00m\x1b[01m\x1b[36m\x1b[41m"
	if got := buf.String(); got != want {
		t.Errorf("use/restore style wrote %q, want %q", got, want)
	}
}

func TestStyleContext_ResetAll(t *testing.T) {
	var buf bytes.Buffer
	s := NewStyleContext(&buf)
	s.SetColours(ColourBlue, ColourGrey)
	s.SetStyle(StyleUnderlined)
	buf.Reset()

	s.ResetAll()
	if got := buf.String(); got != "\x1b[00m" {
		t.Errorf("ResetAll wrote %q", got)
	}
	if s.Foreground() != ColourStd || s.Background() != ColourStd || s.Style() != StyleStd {
		t.Errorf("ResetAll left state fg=%v bg=%v style=%v", s.Foreground(), s.Background(), s.Style())
	}
}

func TestStyleContext_Disabled(t *testing.T) {
	var buf bytes.Buffer
	s := NewStyleContext(&buf)
	s.SetEnabled(false)

	s.SetColours(ColourRed, ColourGreen)
	s.SetStyle(StyleBlink)
	s.ResetAll()
	if buf.Len() != 0 {
		t.Errorf("disabled context wrote %q", buf.String())
	}

	s.SetColour(ColourRed, LayerFG)
	if s.Foreground() != ColourRed {
		t.Error("disabled context should still track state")
	}
}

func TestColourNames(t *testing.T) {
	for _, c := range Colours() {
		got, ok := ColourByName(c.String())
		if !ok || got != c {
			t.Errorf("ColourByName(%q) = %v, %v", c.String(), got, ok)
		}
	}
	for _, st := range TextStyles() {
		got, ok := TextStyleByName(st.String())
		if !ok || got != st {
			t.Errorf("TextStyleByName(%q) = %v, %v", st.String(), got, ok)
		}
	}
	if _, ok := ColourByName("orange"); ok {
		t.Error("orange should not resolve")
	}
	if c, _ := ColourByName("gray"); c != ColourGrey {
		t.Errorf("gray alias = %v", c)
	}
	if len(Colours()) != 9 || len(TextStyles()) != 8 {
		t.Errorf("enumeration sizes %d/%d", len(Colours()), len(TextStyles()))
	}
}

func TestColourEscape(t *testing.T) {
	if got := ColourStd.Escape(LayerFG); got != "\x1b[39m" {
		t.Errorf("std fg = %q", got)
	}
	if got := ColourYellow.Escape(LayerBG); got != "\x1b[43m" {
		t.Errorf("yellow bg = %q", got)
	}
}

func TestColourFromTcell(t *testing.T) {
	for c, tc := range colourToTcell {
		if got := ColourFromTcell(tc); got != c {
			t.Errorf("palette %v -> %v, want %v", tc, got, c)
		}
	}

	tests := []struct {
		name string
		tc   tcell.Color
		want Colour
	}{
		{"bright lime", tcell.ColorLime, ColourGreen},
		{"bright white", tcell.ColorWhite, ColourGrey},
		{"rgb red", tcell.NewRGBColor(250, 10, 10), ColourRed},
		{"named dark red", tcell.ColorDarkRed, ColourRed},
		{"named orange", tcell.ColorOrange, ColourYellow},
		{"unset", tcell.ColorReset, ColourStd},
	}
	for _, tt := range tests {
		if got := ColourFromTcell(tt.tc); got != tt.want {
			t.Errorf("%s: got %v, want %v", tt.name, got, tt.want)
		}
	}
}
