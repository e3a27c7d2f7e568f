//go:build !ebiten

package app

import (
	"errors"
	"testing"

	"lifelike/pkg/core"
	"lifelike/pkg/sims/life"
)

func TestRunWithoutGUI(t *testing.T) {
	if err := Run(life.New(2, 2, core.Conway), NewConfig()); !errors.Is(err, ErrNoGUI) {
		t.Fatalf("Run error = %v, want ErrNoGUI", err)
	}
}
