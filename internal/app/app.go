//go:build ebiten

package app

import (
	"errors"
	"time"

	"lifelike/internal/render"
	"lifelike/internal/ui"
	"lifelike/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const hudWidth = 200

// Game adapts an automaton to the ebiten.Game interface.
type Game struct {
	sim     core.Automaton
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay
	clock   *core.FixedStep

	scale    int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided automaton.
func New(sim core.Automaton, palette render.Palette, scale, tps int, seed int64) *Game {
	if scale <= 0 {
		scale = 1
	}
	return &Game{
		sim:     sim,
		painter: render.NewGridPainter(sim.Size(), palette),
		hud:     ui.NewHUD(sim, hudWidth),
		overlay: ui.NewOverlay(sim, scale),
		clock:   core.NewFixedStep(tps),
		scale:   scale,
		seed:    seed,
	}
}

// Reset reinitializes the automaton with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame logic and advances the automaton.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.sim.Clear()
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		size := g.sim.Size()
		if mx >= 0 && my >= 0 {
			p := render.ScreenToGrid(size, mx/g.scale, my/g.scale)
			if size.Contains(p.Row, p.Col) {
				g.sim.Draw(p.Row, p.Col)
			}
		}
	}

	g.overlay.Update()

	steps := g.clock.Advance(time.Now())
	if g.paused {
		steps = 0
	}
	if g.tickOnce {
		steps = 1
		g.tickOnce = false
	}
	for i := 0; i < steps; i++ {
		g.sim.Step()
	}
	g.hud.Update(g.paused)
	return nil
}

// Draw renders the current automaton state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim, g.scale)
	g.overlay.Draw(screen)
	s := g.sim.Size()
	g.hud.Draw(screen, s.Cols*g.scale, s.Rows*g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.Cols*g.scale + g.hud.Width(), s.Rows * g.scale
}

// Run opens a window and drives the automaton until the user quits.
func Run(sim core.Automaton, cfg *Config) error {
	palette, err := cfg.PaletteValue()
	if err != nil {
		return err
	}
	game := New(sim, palette, cfg.Scale, cfg.TPS, cfg.Seed)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("lifelike - " + ui.Title(sim))
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
