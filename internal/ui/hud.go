//go:build ebiten

package ui

import (
	"image/color"

	"lifelike/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD renders the parameter panel to the right of the simulation view.
type HUD struct {
	sim        core.Automaton
	width      int
	panel      *ebiten.Image
	lastHeight int
	title      string
	lines      []Line
	paused     bool
}

// NewHUD constructs a HUD for the provided automaton and panel width.
func NewHUD(sim core.Automaton, width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{sim: sim, width: width, title: Title(sim)}
}

// Width returns the panel width in pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update refreshes the cached parameter snapshot from the automaton.
func (h *HUD) Update(paused bool) {
	if h == nil {
		return
	}
	h.paused = paused
	provider, ok := h.sim.(core.ParameterProvider)
	if !ok {
		h.lines = nil
		return
	}
	h.lines = Lines(provider.Parameters())
}

// Draw paints the HUD panel anchored to the right edge of the simulation view.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dx() != h.width || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	h.drawLines()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawLines() {
	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	text.Draw(h.panel, h.title, face, panelPadding, y, titleColor)
	if h.paused {
		y += lineHeight
		text.Draw(h.panel, "PAUSED", face, panelPadding, y, pausedColor)
	}
	if len(h.lines) == 0 {
		y += lineHeight
		text.Draw(h.panel, "No parameters", face, panelPadding, y, dimColor)
	}
	for _, line := range h.lines {
		y += lineHeight
		if line.Header {
			y += groupGap
			text.Draw(h.panel, line.Text, face, panelPadding, y, titleColor)
			continue
		}
		text.Draw(h.panel, line.Text, face, panelPadding+indent, y, valueColor)
	}
	y += groupGap
	for _, hint := range KeyHints {
		y += lineHeight
		if y > h.lastHeight-panelPadding {
			return
		}
		text.Draw(h.panel, hint, face, panelPadding, y, dimColor)
	}
}

var (
	titleColor  = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	valueColor  = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	dimColor    = color.RGBA{R: 160, G: 160, B: 170, A: 255}
	pausedColor = color.RGBA{R: 255, G: 180, B: 60, A: 255}
)

const (
	panelPadding   = 12
	lineHeight     = 16
	groupGap       = 8
	indent         = 8
	headerBaseline = 18
)
