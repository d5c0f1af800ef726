package appicon

import (
	"fmt"
	"image/color"
	"math"

	"github.com/gogpu/gg"
)

// Palette holds the fill colors of the three icon layers.
type Palette struct {
	Background color.NRGBA
	Badge      color.NRGBA
	Glyph      color.NRGBA
}

// Default layer colors.
var (
	BackgroundGrey = color.NRGBA{R: 40, G: 40, B: 40, A: 255}
	BadgeRed       = color.NRGBA{R: 255, G: 59, B: 48, A: 255}
	GlyphWhite     = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

// DefaultPalette returns the fixed icon palette.
func DefaultPalette() Palette {
	return Palette{
		Background: BackgroundGrey,
		Badge:      BadgeRed,
		Glyph:      GlyphWhite,
	}
}

// ParsePalette builds a palette from hex strings ("#RRGGBB", "#RRGGBBAA"
// and the short forms accepted by gg). An empty string keeps the default
// color for that layer.
func ParsePalette(background, badge, glyph string) (Palette, error) {
	p := DefaultPalette()
	fields := []struct {
		name string
		hex  string
		dst  *color.NRGBA
	}{
		{"background", background, &p.Background},
		{"badge", badge, &p.Badge},
		{"glyph", glyph, &p.Glyph},
	}
	for _, f := range fields {
		if f.hex == "" {
			continue
		}
		c, err := gg.ParseHex(f.hex)
		if err != nil {
			return Palette{}, fmt.Errorf("appicon: %s color: %w", f.name, err)
		}
		*f.dst = toNRGBA(c)
	}
	return p, nil
}

// Hex formats c as "#RRGGBBAA".
func Hex(c color.NRGBA) string {
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}

func toNRGBA(c gg.RGBA) color.NRGBA {
	return color.NRGBA{
		R: channel8(c.R),
		G: channel8(c.G),
		B: channel8(c.B),
		A: channel8(c.A),
	}
}

func channel8(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, v)) * 255))
}
