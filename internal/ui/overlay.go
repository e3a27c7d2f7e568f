//go:build ebiten

package ui

import (
	"image/color"

	"lifelike/internal/render"
	"lifelike/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Overlay outlines the grid cell under the mouse cursor. Key 1 toggles it.
type Overlay struct {
	sim   core.Automaton
	scale int
	show  bool
	pixel *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Automaton, scale int) *Overlay {
	if scale <= 0 {
		scale = 1
	}
	o := &Overlay{sim: sim, scale: scale, show: true}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles the overlay.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.show = !o.show
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.show {
		return
	}
	size := o.sim.Size()
	mx, my := ebiten.CursorPosition()
	p := render.ScreenToGrid(size, mx/o.scale, my/o.scale)
	if mx < 0 || my < 0 || !size.Contains(p.Row, p.Col) {
		return
	}
	x, y := render.GridToScreen(size, p)
	px, py, s := float64(x*o.scale), float64(y*o.scale), float64(o.scale)
	edge := color.RGBA{R: 255, G: 255, B: 255, A: 160}
	o.rect(screen, px-1, py-1, s+2, 1, edge)
	o.rect(screen, px-1, py+s, s+2, 1, edge)
	o.rect(screen, px-1, py, 1, s, edge)
	o.rect(screen, px+s, py, 1, s, edge)
}

func (o *Overlay) rect(dst *ebiten.Image, x, y, w, h float64, c color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	dst.DrawImage(o.pixel, op)
}
