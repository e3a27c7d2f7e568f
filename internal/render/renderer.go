//go:build ebiten

package render

import (
	"image/color"

	"lifelike/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter uploads an automaton's live cells into a single RGBA image.
type GridPainter struct {
	size    core.Size
	img     *ebiten.Image
	buf     []byte
	palette Palette
	bg      color.Color
}

// NewGridPainter allocates a painter for a grid of the given size.
func NewGridPainter(size core.Size, palette Palette) *GridPainter {
	gp := &GridPainter{
		size:    size,
		buf:     make([]byte, 4*size.Rows*size.Cols),
		palette: palette,
		bg:      color.Black,
	}
	gp.img = ebiten.NewImage(size.Cols, size.Rows)
	return gp
}

// Blit paints the automaton's current live cells and draws them scaled onto dst.
func (gp *GridPainter) Blit(dst *ebiten.Image, a core.Automaton, scale int) {
	if a.Size() != gp.size {
		return
	}
	fillRGBA(gp.buf, gp.size, a.Colors(), gp.palette, gp.bg)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}
