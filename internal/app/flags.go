package app

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"lifelike/internal/render"
	"lifelike/pkg/core"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Sim     string
	Rule    string
	Width   int
	Height  int
	Density float64
	Seed    int64
	TPS     int
	Scale   int
	Palette string
	LogFile string
	GUI     bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Sim:     "colorlife",
		Rule:    "B3/S23",
		Density: core.DefaultDensity,
		Seed:    core.DefaultSeed,
		TPS:     10,
		Scale:   4,
		Palette: "hsv",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "automaton to run (life, colorlife)")
	fs.StringVar(&c.Rule, "rule", c.Rule, "rule in B/S notation or a preset name")
	fs.IntVar(&c.Width, "w", c.Width, "grid columns (0 fits the terminal or defaults)")
	fs.IntVar(&c.Height, "h", c.Height, "grid rows (0 fits the terminal or defaults)")
	fs.Float64Var(&c.Density, "density", c.Density, "probability of a cell starting alive")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the initial grid")
	fs.IntVar(&c.TPS, "tps", c.TPS, "generations per second")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier (gui)")
	fs.StringVar(&c.Palette, "palette", c.Palette, "display palette (hsv, hsluv)")
	fs.StringVar(&c.LogFile, "log", c.LogFile, "write logs to this file")
	fs.BoolVar(&c.GUI, "gui", c.GUI, "open a window instead of drawing in the terminal")
}

// SimConfig converts the flags into the string map understood by
// automaton factories. Zero dimensions fall back to fit.
func (c *Config) SimConfig(fit core.Size) map[string]string {
	w, h := c.Width, c.Height
	if w <= 0 {
		w = fit.Cols
	}
	if h <= 0 {
		h = fit.Rows
	}
	cfg := map[string]string{
		"rule":    c.Rule,
		"density": strconv.FormatFloat(c.Density, 'f', -1, 64),
		"seed":    strconv.FormatInt(c.Seed, 10),
	}
	if w > 0 {
		cfg["w"] = strconv.Itoa(w)
	}
	if h > 0 {
		cfg["h"] = strconv.Itoa(h)
	}
	return cfg
}

// Build looks up the configured automaton and constructs it.
func (c *Config) Build(fit core.Size, obs core.Observer) (core.Automaton, error) {
	factory, err := core.Lookup(c.Sim)
	if err != nil {
		return nil, err
	}
	a, err := factory(c.SimConfig(fit), obs)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", c.Sim, err)
	}
	return a, nil
}

// PaletteValue parses the palette flag.
func (c *Config) PaletteValue() (render.Palette, error) {
	return render.ParsePalette(c.Palette)
}

// Logger opens the log destination. Without a log file everything is
// discarded, since the terminal driver owns stdout and stderr. The returned
// closer must be called on exit.
func (c *Config) Logger() (*slog.Logger, io.Closer, error) {
	if c.LogFile == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), io.NopCloser(nil), nil
	}
	f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log: %w", err)
	}
	l := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return l, f, nil
}

// DefaultSize is the grid used when no dimensions are given.
func DefaultSize() core.Size {
	c := core.DefaultConfig()
	return core.Size{Rows: c.Height, Cols: c.Width}
}
