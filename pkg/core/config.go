package core

import (
	"fmt"
	"strconv"
)

// Config holds the flag-style settings every life-like automaton accepts.
type Config struct {
	Width   int
	Height  int
	Rule    Rule
	Density float64
	Seed    int64
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:   128,
		Height:  64,
		Rule:    Conway,
		Density: DefaultDensity,
		Seed:    DefaultSeed,
	}
}

// ConfigFromMap populates a Config from a string map. Unparseable numeric
// values keep their defaults; an invalid rule is an error since it changes
// what the automaton computes.
func ConfigFromMap(cfg map[string]string) (Config, error) {
	c := DefaultConfig()
	if cfg == nil {
		return c, nil
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Density = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["rule"]; ok && v != "" {
		rule, err := ParseRule(v)
		if err != nil {
			return c, fmt.Errorf("rule: %w", err)
		}
		c.Rule = rule
	}
	return c, nil
}

// Options converts the config into constructor options.
func (c Config) Options(obs Observer) []Option {
	return []Option{WithObserver(obs), WithSeed(c.Seed), WithDensity(c.Density)}
}
