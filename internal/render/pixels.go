package render

import (
	"fmt"
	"image/color"
	"iter"
	"strings"

	"lifelike/pkg/core"
	"lifelike/pkg/hue"

	"github.com/hsluv/hsluv-go"
	"github.com/lucasb-eyer/go-colorful"
)

// Palette selects how cell colors are turned into display colors.
type Palette int

const (
	// PaletteHSV shows the engine color unchanged.
	PaletteHSV Palette = iota
	// PaletteHSLuv keeps the hue but maps it through HSLuv so every hue has
	// the same perceived lightness.
	PaletteHSLuv
)

const (
	hsluvSaturation = 100
	hsluvLightness  = 65
)

// ParsePalette resolves a palette name ("hsv" or "hsluv").
func ParsePalette(name string) (Palette, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "hsv":
		return PaletteHSV, nil
	case "hsluv":
		return PaletteHSLuv, nil
	default:
		return PaletteHSV, fmt.Errorf("unknown palette %q", name)
	}
}

func (p Palette) String() string {
	if p == PaletteHSLuv {
		return "hsluv"
	}
	return "hsv"
}

// Display converts an automaton color into the color to show on screen.
// Achromatic colors (the binary automaton's white) pass through unchanged.
func (p Palette) Display(c colorful.Color) colorful.Color {
	if p != PaletteHSLuv {
		return c
	}
	_, s, _ := c.Hsv()
	if s == 0 {
		return c
	}
	r, g, b := hsluv.HsluvToRGB(hue.Of(c), hsluvSaturation, hsluvLightness)
	return colorful.Color{R: r, G: g, B: b}.Clamped()
}

// RGBA converts c to an opaque color.RGBA after applying the palette.
func (p Palette) RGBA(c colorful.Color) color.RGBA {
	r, g, b := p.Display(c).RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// GridToScreen maps a grid position to screen coordinates. Row 0 is drawn at
// the bottom of the screen.
func GridToScreen(size core.Size, p core.Point) (x, y int) {
	return p.Col, size.Rows - 1 - p.Row
}

// ScreenToGrid maps screen coordinates back to a grid position. The result
// may be out of range; callers pass it to Draw, which ignores misses.
func ScreenToGrid(size core.Size, x, y int) core.Point {
	return core.Point{Row: size.Rows - 1 - y, Col: x}
}

// fillRGBA paints live cells into buf (4 bytes per pixel, rows*cols pixels)
// over the background color.
func fillRGBA(buf []byte, size core.Size, cells iter.Seq2[core.Point, colorful.Color], palette Palette, bg color.Color) {
	rb, gb, bb, ab := bg.RGBA()
	for i := 0; i+3 < len(buf); i += 4 {
		buf[i+0] = uint8(rb >> 8)
		buf[i+1] = uint8(gb >> 8)
		buf[i+2] = uint8(bb >> 8)
		buf[i+3] = uint8(ab >> 8)
	}
	for p, c := range cells {
		x, y := GridToScreen(size, p)
		base := (y*size.Cols + x) * 4
		if x < 0 || y < 0 || base+3 >= len(buf) {
			continue
		}
		col := palette.RGBA(c)
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
