package core

// Color is a palette index used by bitmaps and screen cells.
// ColorTransparent is the color key: pixels of that value are never drawn.
type Color uint8

// Predefined palette entries.
const (
	ColorTransparent Color = iota
	ColorBlack
	ColorWhite
	ColorRed
	ColorDarkRed
	ColorGreen
	ColorDarkGreen
	ColorBlue
	ColorNavy
	ColorSky
	ColorLightSky
	ColorYellow
	ColorOrange
	ColorBrown
	ColorPink
	ColorGray
	ColorLightGray

	paletteSize
)

// RGB is a 24-bit color.
type RGB struct {
	R, G, B uint8
}

var palette = [paletteSize]RGB{
	ColorTransparent: {0, 0, 0},
	ColorBlack:       {16, 16, 16},
	ColorWhite:       {245, 245, 245},
	ColorRed:         {255, 0, 0},
	ColorDarkRed:     {160, 20, 20},
	ColorGreen:       {60, 180, 75},
	ColorDarkGreen:   {30, 110, 40},
	ColorBlue:        {0, 0, 255},
	ColorNavy:        {20, 30, 110},
	ColorSky:         {120, 180, 235},
	ColorLightSky:    {175, 215, 245},
	ColorYellow:      {250, 215, 40},
	ColorOrange:      {245, 140, 20},
	ColorBrown:       {120, 75, 35},
	ColorPink:        {245, 160, 175},
	ColorGray:        {128, 128, 128},
	ColorLightGray:   {200, 200, 200},
}

var colorNames = map[string]Color{
	"transparent": ColorTransparent,
	"black":       ColorBlack,
	"white":       ColorWhite,
	"red":         ColorRed,
	"darkred":     ColorDarkRed,
	"green":       ColorGreen,
	"darkgreen":   ColorDarkGreen,
	"blue":        ColorBlue,
	"navy":        ColorNavy,
	"sky":         ColorSky,
	"lightsky":    ColorLightSky,
	"yellow":      ColorYellow,
	"orange":      ColorOrange,
	"brown":       ColorBrown,
	"pink":        ColorPink,
	"gray":        ColorGray,
	"lightgray":   ColorLightGray,
}

// RGB returns the 24-bit value of a palette entry.
func (c Color) RGB() RGB {
	if c >= paletteSize {
		return palette[ColorBlack]
	}
	return palette[c]
}

// Hex returns the color as "#rrggbb".
func (c Color) Hex() string {
	const digits = "0123456789abcdef"
	v := c.RGB()
	b := []byte{'#', 0, 0, 0, 0, 0, 0}
	for i, x := range []uint8{v.R, v.G, v.B} {
		b[1+i*2] = digits[x>>4]
		b[2+i*2] = digits[x&0x0f]
	}
	return string(b)
}

// ParseColor looks up a palette entry by name.
func ParseColor(name string) (Color, bool) {
	c, ok := colorNames[name]
	return c, ok
}
