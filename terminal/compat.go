package terminal

import (
	"github.com/gdamore/tcell/v2"
)

// colourToTcell maps each colour to the tcell palette entry with the same SGR index
var colourToTcell = map[Colour]tcell.Color{
	ColourStd:     tcell.ColorDefault,
	ColourBlack:   tcell.ColorBlack,
	ColourRed:     tcell.ColorMaroon,
	ColourGreen:   tcell.ColorGreen,
	ColourYellow:  tcell.ColorOlive,
	ColourBlue:    tcell.ColorNavy,
	ColourMagenta: tcell.ColorPurple,
	ColourCyan:    tcell.ColorTeal,
	ColourGrey:    tcell.ColorSilver,
}

// Bright palette entries fold onto their base colour
var brightToColour = map[tcell.Color]Colour{
	tcell.ColorGray:    ColourBlack,
	tcell.ColorRed:     ColourRed,
	tcell.ColorLime:    ColourGreen,
	tcell.ColorYellow:  ColourYellow,
	tcell.ColorBlue:    ColourBlue,
	tcell.ColorFuchsia: ColourMagenta,
	tcell.ColorAqua:    ColourCyan,
	tcell.ColorWhite:   ColourGrey,
}

// ColourFromTcell converts a tcell colour to the nearest of the eight base colours
// Palette entries 0-15 map exactly; other colours use nearest RGB distance.
// ColorDefault and invalid colours map to ColourStd.
func ColourFromTcell(tc tcell.Color) Colour {
	if tc == tcell.ColorDefault || !tc.Valid() {
		return ColourStd
	}
	for c, base := range colourToTcell {
		if base == tc && c != ColourStd {
			return c
		}
	}
	if c, ok := brightToColour[tc]; ok {
		return c
	}

	r, g, b := tc.RGB()
	if r < 0 {
		return ColourStd
	}
	best := ColourStd
	bestDist := int32(-1)
	for _, c := range allColours {
		if c == ColourStd {
			continue
		}
		br, bg, bb := colourToTcell[c].RGB()
		d := (r-br)*(r-br) + (g-bg)*(g-bg) + (b-bb)*(b-bb)
		if bestDist < 0 || d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}
