// Package term drives an automaton in a terminal using tcell.
package term

import (
	"context"
	"time"

	"lifelike/internal/render"
	"lifelike/internal/ui"
	"lifelike/pkg/core"

	"github.com/gdamore/tcell/v2"
)

const cellGlyph = '█'

// Driver renders an automaton to a tcell screen and feeds it input.
type Driver struct {
	screen  tcell.Screen
	sim     core.Automaton
	palette render.Palette
	clock   *core.FixedStep
	seed    int64

	paused bool
	quit   bool
}

// New returns a driver for sim on an initialized screen.
func New(screen tcell.Screen, sim core.Automaton, palette render.Palette, tps int, seed int64) *Driver {
	return &Driver{
		screen:  screen,
		sim:     sim,
		palette: palette,
		clock:   core.NewFixedStep(tps),
		seed:    seed,
	}
}

// FitSize returns the largest grid that fits screen, leaving one row for the
// status line.
func FitSize(screen tcell.Screen) core.Size {
	w, h := screen.Size()
	if h > 1 {
		h--
	}
	return core.Size{Rows: h, Cols: w}
}

// Paused reports whether stepping is suspended.
func (d *Driver) Paused() bool { return d.paused }

// Done reports whether the user asked to quit.
func (d *Driver) Done() bool { return d.quit }

// Tick advances the automaton by one generation unless paused.
func (d *Driver) Tick() {
	if d.paused {
		return
	}
	d.sim.Step()
}

// Handle applies a single terminal event.
func (d *Driver) Handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		d.handleKey(ev)
	case *tcell.EventMouse:
		d.handleMouse(ev)
	case *tcell.EventResize:
		// The grid keeps its size; only the terminal's backing store changes.
		d.screen.Sync()
	}
}

func (d *Driver) handleKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		d.quit = true
		return
	case tcell.KeyEnter:
		d.paused = false
		return
	case tcell.KeyRune:
	default:
		return
	}
	switch ev.Rune() {
	case 'q', 'Q':
		d.quit = true
	case ' ':
		d.paused = !d.paused
	case 'n', 'N':
		d.sim.Step()
	case 'r', 'R':
		d.sim.Reset(d.seed)
	case 's', 'S':
		d.seed = time.Now().UnixNano()
		d.sim.Reset(d.seed)
	case 'c', 'C':
		d.sim.Clear()
	}
}

func (d *Driver) handleMouse(ev *tcell.EventMouse) {
	if ev.Buttons()&tcell.Button1 == 0 {
		return
	}
	x, y := ev.Position()
	size := d.sim.Size()
	p := render.ScreenToGrid(size, x, y)
	if !size.Contains(p.Row, p.Col) {
		return
	}
	d.sim.Draw(p.Row, p.Col)
}

// Render draws the live cells and the status line.
func (d *Driver) Render() {
	d.screen.Clear()
	size := d.sim.Size()
	base := tcell.StyleDefault.Background(tcell.ColorBlack)
	for p, c := range d.sim.Colors() {
		x, y := render.GridToScreen(size, p)
		rgba := d.palette.RGBA(c)
		style := base.Foreground(tcell.NewRGBColor(int32(rgba.R), int32(rgba.G), int32(rgba.B)))
		d.screen.SetContent(x, y, cellGlyph, nil, style)
	}
	status := tcell.StyleDefault.Reverse(true)
	for i, r := range []rune(ui.Status(d.sim, d.paused)) {
		d.screen.SetContent(i, size.Rows, r, nil, status)
	}
	d.screen.Show()
}

// Run polls events and steps the automaton at the configured rate until the
// user quits or ctx is cancelled. The caller owns the screen and must call
// Fini after Run returns.
func (d *Driver) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := d.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	ticker := time.NewTicker(d.clock.Interval())
	defer ticker.Stop()

	d.Render()
	for !d.quit {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			d.Handle(ev)
		case now := <-ticker.C:
			for n := d.clock.Advance(now); n > 0; n-- {
				d.Tick()
			}
		}
		d.Render()
	}
	return nil
}
