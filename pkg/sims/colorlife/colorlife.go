// Package colorlife implements life-like automata whose live cells carry a
// hue. A newborn cell takes the circular mean of the hues of the live
// neighbors that caused its birth.
package colorlife

import (
	"fmt"
	"iter"

	"lifelike/pkg/core"
	"lifelike/pkg/hue"

	"github.com/lucasb-eyer/go-colorful"
)

// Name is the registry identifier of the colored automaton.
const Name = "colorlife"

// Cell is a single colored cell. Hue is meaningful only when Alive.
type Cell struct {
	Alive bool
	Hue   float64
}

// Dead is the empty cell.
var Dead = Cell{}

// Alive returns a live cell with the given hue.
func Alive(h float64) Cell { return Cell{Alive: true, Hue: hue.Normalize(h)} }

// ColorLife is a bounded-grid life-like automaton over colored cells.
type ColorLife struct {
	cur, nxt *core.Grid[Cell]
	rule     core.Rule
	density  float64
	rng      *core.RNG
	obs      core.Observer
	gen      int
	pop      int

	hues [core.MaxNeighbors]float64
}

// New returns a ColorLife automaton of width columns and height rows with a
// randomized grid. Live cells start with a uniformly random hue.
func New(width, height int, rule core.Rule, opts ...core.Option) *ColorLife {
	o := core.BuildOptions(opts...)
	c := &ColorLife{
		cur:     core.NewGrid(height, width, Dead),
		nxt:     core.NewGrid(height, width, Dead),
		rule:    rule,
		density: o.Density,
		obs:     o.Observer,
	}
	c.Reset(o.Seed)
	return c
}

// Name returns the simulation identifier.
func (c *ColorLife) Name() string { return Name }

// Size returns the grid dimensions.
func (c *ColorLife) Size() core.Size { return c.cur.Size() }

// Rule returns the birth/survival rule.
func (c *ColorLife) Rule() core.Rule { return c.rule }

// Generation counts steps since the last reset.
func (c *ColorLife) Generation() int { return c.gen }

// Population counts live cells.
func (c *ColorLife) Population() int { return c.pop }

// Cell returns the cell at (row, col) and whether the position exists.
func (c *ColorLife) Cell(row, col int) (Cell, bool) {
	return c.cur.Get(row, col)
}

// Put writes cell at (row, col), reporting false when out of range.
func (c *ColorLife) Put(row, col int, cell Cell) bool {
	p := c.cur.At(row, col)
	if p == nil {
		return false
	}
	if cell.Alive {
		cell.Hue = hue.Normalize(cell.Hue)
	}
	switch {
	case cell.Alive && !p.Alive:
		c.pop++
	case !cell.Alive && p.Alive:
		c.pop--
	}
	*p = cell
	return true
}

// Reset randomizes the board using the provided seed. The same seed also
// drives hues picked later by Draw and by zero-neighbor births.
func (c *ColorLife) Reset(seed int64) {
	c.rng = core.NewRNG(seed)
	size := c.cur.Size()
	c.pop = 0
	for row := 0; row < size.Rows; row++ {
		for col := 0; col < size.Cols; col++ {
			cell := Dead
			if c.rng.Chance(c.density) {
				cell = Alive(c.rng.Hue())
				c.pop++
			}
			c.cur.Set(row, col, cell)
		}
	}
	c.gen = 0
	c.emit(core.Event{Kind: core.EventInit})
}

// Clear kills every cell. The generation counter keeps running.
func (c *ColorLife) Clear() {
	c.cur.Fill(Dead)
	c.pop = 0
	c.emit(core.Event{Kind: core.EventClear})
}

// neighborHues collects the hues of the live Moore neighbors of (row, col)
// from the current grid into c.hues.
func (c *ColorLife) neighborHues(row, col int) []float64 {
	hues := c.hues[:0]
	for _, cell := range c.cur.Neighbors(row, col) {
		if cell.Alive {
			hues = append(hues, cell.Hue)
		}
	}
	return hues
}

// LiveNeighbors counts the live in-bounds Moore neighbors of (row, col).
func (c *ColorLife) LiveNeighbors(row, col int) int {
	return len(c.neighborHues(row, col))
}

func (c *ColorLife) next(cell Cell, hues []float64) Cell {
	n := len(hues)
	if cell.Alive {
		if c.rule.Survival.Has(n) {
			return cell
		}
		return Dead
	}
	if !c.rule.Birth.Has(n) {
		return Dead
	}
	if mixed, ok := hue.Mix(hues); ok {
		return Alive(mixed)
	}
	// Birth from zero neighbors (B0 rules) has no parents to mix.
	return Alive(c.rng.Hue())
}

// Step advances the simulation by one generation. Every cell is computed
// from the current grid into a separate buffer, which then replaces it.
func (c *ColorLife) Step() {
	size := c.cur.Size()
	pop := 0
	for row := 0; row < size.Rows; row++ {
		for col := 0; col < size.Cols; col++ {
			cell, _ := c.cur.Get(row, col)
			next := c.next(cell, c.neighborHues(row, col))
			c.nxt.Set(row, col, next)
			if next.Alive {
				pop++
			}
		}
	}
	c.cur, c.nxt = c.nxt, c.cur
	c.pop = pop
	c.gen++
	c.emit(core.Event{Kind: core.EventStep})
}

// Colors yields every live cell with its full-saturation color.
func (c *ColorLife) Colors() iter.Seq2[core.Point, colorful.Color] {
	return func(yield func(core.Point, colorful.Color) bool) {
		for p, cell := range c.cur.All() {
			if !cell.Alive {
				continue
			}
			if !yield(p, hue.Color(cell.Hue)) {
				return
			}
		}
	}
}

// Draw forces the cell at (row, col) alive with a random hue.
func (c *ColorLife) Draw(row, col int) bool {
	p := c.cur.At(row, col)
	if p == nil {
		c.emit(core.Event{Kind: core.EventDrawMissed, Row: row, Col: col})
		return false
	}
	if !p.Alive {
		c.pop++
	}
	*p = Alive(c.rng.Hue())
	c.emit(core.Event{Kind: core.EventDraw, Row: row, Col: col})
	return true
}

// Resize is not supported; the grid keeps its dimensions.
func (c *ColorLife) Resize(rows, cols int) error {
	return fmt.Errorf("%s: resize to %dx%d: %w", Name, rows, cols, core.ErrNotImplemented)
}

// Parameters describes the automaton for the HUD.
func (c *ColorLife) Parameters() core.ParameterSnapshot {
	return core.StandardParameters(c, c.density)
}

func (c *ColorLife) emit(e core.Event) {
	e.Sim = Name
	e.Size = c.cur.Size()
	e.Rule = c.rule
	e.Generation = c.gen
	e.Population = c.pop
	c.obs(e)
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
