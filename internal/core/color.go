package core

import (
	"strconv"
	"strings"
)

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorBrown
	ColorSkin
	ColorSky
	ColorGold
	ColorNavy
	ColorDarkGray
)

// palette holds the approximate RGB value of each named color.
// Used to snap authored hex colors (level files) onto the terminal palette.
var palette = map[Color][3]uint8{
	ColorRed:           {205, 49, 49},
	ColorGreen:         {34, 139, 34},
	ColorYellow:        {229, 229, 16},
	ColorBlue:          {33, 86, 163},
	ColorMagenta:       {188, 63, 188},
	ColorCyan:          {17, 168, 205},
	ColorWhite:         {229, 229, 229},
	ColorBrightRed:     {255, 68, 68},
	ColorBrightGreen:   {76, 175, 80},
	ColorBrightYellow:  {245, 245, 67},
	ColorBrightBlue:    {52, 152, 219},
	ColorBrightMagenta: {214, 112, 214},
	ColorBrightCyan:    {135, 206, 235},
	ColorBrightWhite:   {255, 255, 255},
	ColorOrange:        {255, 152, 0},
	ColorGray:          {139, 139, 139},
	ColorBrown:         {139, 69, 19},
	ColorSkin:          {212, 165, 116},
	ColorSky:           {135, 206, 250},
	ColorGold:          {255, 215, 0},
	ColorNavy:          {44, 62, 80},
	ColorDarkGray:      {26, 26, 26},
}

// ParseHexColor maps a "#RRGGBB" (or "#RGB") string to the nearest palette color.
// Unparseable input yields ColorDefault.
func ParseHexColor(hex string) Color {
	hex = strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return ColorDefault
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return ColorDefault
	}
	r, g, b := int(v>>16&0xff), int(v>>8&0xff), int(v&0xff)

	best := ColorDefault
	bestDist := -1
	// Iterate in enum order so ties resolve deterministically.
	for c := ColorRed; c <= ColorDarkGray; c++ {
		rgb := palette[c]
		dr, dg, db := r-int(rgb[0]), g-int(rgb[1]), b-int(rgb[2])
		d := dr*dr + dg*dg + db*db
		if bestDist < 0 || d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}
