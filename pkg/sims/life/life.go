// Package life implements life-like automata over boolean cells.
package life

import (
	"fmt"
	"iter"

	"lifelike/pkg/core"

	"github.com/lucasb-eyer/go-colorful"
)

// Name is the registry identifier of the binary automaton.
const Name = "life"

// LiveColor is the display color of every live cell.
var LiveColor = colorful.Color{R: 1, G: 1, B: 1}

// Life is a bounded-grid life-like automaton with boolean cells.
// Neighbors outside the grid never count.
type Life struct {
	cur, nxt *core.Grid[bool]
	rule     core.Rule
	density  float64
	obs      core.Observer
	gen      int
	pop      int
}

// New returns a Life automaton of width columns and height rows with a
// randomized grid.
func New(width, height int, rule core.Rule, opts ...core.Option) *Life {
	o := core.BuildOptions(opts...)
	l := &Life{
		cur:     core.NewGrid(height, width, false),
		nxt:     core.NewGrid(height, width, false),
		rule:    rule,
		density: o.Density,
		obs:     o.Observer,
	}
	l.Reset(o.Seed)
	return l
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return Name }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return l.cur.Size() }

// Rule returns the birth/survival rule.
func (l *Life) Rule() core.Rule { return l.rule }

// Generation counts steps since the last reset.
func (l *Life) Generation() int { return l.gen }

// Population counts live cells.
func (l *Life) Population() int { return l.pop }

// Alive reports whether the cell at (row, col) is alive. Out-of-range cells
// are reported dead.
func (l *Life) Alive(row, col int) bool {
	alive, _ := l.cur.Get(row, col)
	return alive
}

// Reset randomizes the board using the provided seed.
func (l *Life) Reset(seed int64) {
	rng := core.NewRNG(seed)
	size := l.cur.Size()
	l.pop = 0
	for row := 0; row < size.Rows; row++ {
		for col := 0; col < size.Cols; col++ {
			alive := rng.Chance(l.density)
			l.cur.Set(row, col, alive)
			if alive {
				l.pop++
			}
		}
	}
	l.gen = 0
	l.emit(core.Event{Kind: core.EventInit})
}

// Clear kills every cell. The generation counter keeps running.
func (l *Life) Clear() {
	l.cur.Fill(false)
	l.pop = 0
	l.emit(core.Event{Kind: core.EventClear})
}

// LiveNeighbors counts the live in-bounds Moore neighbors of (row, col).
func (l *Life) LiveNeighbors(row, col int) int {
	return countLive(l.cur, row, col)
}

func countLive(g *core.Grid[bool], row, col int) int {
	n := 0
	for _, alive := range g.Neighbors(row, col) {
		if alive {
			n++
		}
	}
	return n
}

// Step advances the simulation by one generation. Every cell is computed
// from the current grid into a separate buffer, which then replaces it.
func (l *Life) Step() {
	size := l.cur.Size()
	pop := 0
	for row := 0; row < size.Rows; row++ {
		for col := 0; col < size.Cols; col++ {
			alive, _ := l.cur.Get(row, col)
			next := l.rule.Next(alive, countLive(l.cur, row, col))
			l.nxt.Set(row, col, next)
			if next {
				pop++
			}
		}
	}
	l.cur, l.nxt = l.nxt, l.cur
	l.pop = pop
	l.gen++
	l.emit(core.Event{Kind: core.EventStep})
}

// Colors yields every live cell with LiveColor.
func (l *Life) Colors() iter.Seq2[core.Point, colorful.Color] {
	return func(yield func(core.Point, colorful.Color) bool) {
		for p, alive := range l.cur.All() {
			if !alive {
				continue
			}
			if !yield(p, LiveColor) {
				return
			}
		}
	}
}

// Draw forces the cell at (row, col) alive.
func (l *Life) Draw(row, col int) bool {
	cell := l.cur.At(row, col)
	if cell == nil {
		l.emit(core.Event{Kind: core.EventDrawMissed, Row: row, Col: col})
		return false
	}
	if !*cell {
		*cell = true
		l.pop++
	}
	l.emit(core.Event{Kind: core.EventDraw, Row: row, Col: col})
	return true
}

// Resize is not supported; the grid keeps its dimensions.
func (l *Life) Resize(rows, cols int) error {
	return fmt.Errorf("%s: resize to %dx%d: %w", Name, rows, cols, core.ErrNotImplemented)
}

// Parameters describes the automaton for the HUD.
func (l *Life) Parameters() core.ParameterSnapshot {
	return core.StandardParameters(l, l.density)
}

func (l *Life) emit(e core.Event) {
	e.Sim = Name
	e.Size = l.cur.Size()
	e.Rule = l.rule
	e.Generation = l.gen
	e.Population = l.pop
	l.obs(e)
}

func init() {
	core.Register(Name, func(cfg map[string]string, obs core.Observer) (core.Automaton, error) {
		c, err := core.ConfigFromMap(cfg)
		if err != nil {
			return nil, err
		}
		return New(c.Width, c.Height, c.Rule, c.Options(obs)...), nil
	})
}
