//go:build !ebiten

package app

import (
	"errors"

	"lifelike/pkg/core"
)

// ErrNoGUI is returned by Run when the binary was built without GUI support.
var ErrNoGUI = errors.New("the GUI requires building with the 'ebiten' tag")

// Run reports that the GUI build tag is missing.
func Run(core.Automaton, *Config) error { return ErrNoGUI }
