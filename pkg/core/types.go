package core

import (
	"errors"
	"fmt"
	"iter"
	"sort"

	"github.com/lucasb-eyer/go-colorful"
)

var (
	// ErrNotImplemented is returned by operations that are part of the
	// Automaton contract but have no behavior yet.
	ErrNotImplemented = errors.New("not implemented")
	// ErrUnknownSim is returned by Lookup for unregistered names.
	ErrUnknownSim = errors.New("unknown sim")
)

// Size describes the dimensions of a simulation grid.
type Size struct {
	Rows int
	Cols int
}

// Contains reports whether (row, col) addresses a cell of a grid with this size.
func (s Size) Contains(row, col int) bool {
	return row >= 0 && row < s.Rows && col >= 0 && col < s.Cols
}

// Point addresses a single cell.
type Point struct {
	Row int
	Col int
}

// Automaton is the capability set shared by every life-like rule family.
type Automaton interface {
	// Name identifies the rule family.
	Name() string
	// Size reports the grid dimensions.
	Size() Size
	// Rule returns the birth/survival rule the automaton was built with.
	Rule() Rule
	// Colors yields the live cells and their display color in row-major order.
	Colors() iter.Seq2[Point, colorful.Color]
	// Step advances the automaton by one generation.
	Step()
	// Draw forces the cell at (row, col) alive. It reports false, leaving the
	// grid untouched, when the coordinates are outside the grid.
	Draw(row, col int) bool
	// Resize changes the grid dimensions.
	Resize(rows, cols int) error
	// Reset re-randomizes the grid from the provided seed.
	Reset(seed int64)
	// Clear kills every cell without touching the generation counter.
	Clear()
	// Generation counts completed steps since the last reset.
	Generation() int
	// Population counts the live cells.
	Population() int
}

// Factory constructs an Automaton from a flag-style configuration map.
type Factory func(cfg map[string]string, obs Observer) (Automaton, error)

var sims = map[string]Factory{}

// Register adds an automaton factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Lookup returns the factory registered under name.
func Lookup(name string) (Factory, error) {
	f, ok := sims[name]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownSim, name)
	}
	return f, nil
}

// Names lists the registered automaton names in sorted order.
func Names() []string {
	names := make([]string, 0, len(sims))
	for name := range sims {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
