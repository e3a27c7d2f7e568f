package ui

import (
	"fmt"

	"lifelike/pkg/core"
)

// KeyHints lists the key bindings shared by the terminal and GUI drivers.
var KeyHints = []string{
	"space  pause",
	"enter  resume",
	"n      step once",
	"r      reset (same seed)",
	"s      reseed",
	"c      clear",
	"q/esc  quit",
	"mouse  draw cells",
}

// Line is a single row of HUD text. Headers start a parameter group.
type Line struct {
	Text   string
	Header bool
}

// Title builds the HUD heading for an automaton.
func Title(a core.Automaton) string {
	if a == nil || a.Name() == "" {
		return "Parameters"
	}
	return fmt.Sprintf("%s %s", a.Name(), a.Rule())
}

// Lines flattens a parameter snapshot into HUD rows.
func Lines(snapshot core.ParameterSnapshot) []Line {
	var lines []Line
	for _, group := range snapshot.Groups {
		lines = append(lines, Line{Text: group.Name, Header: true})
		for _, p := range group.Params {
			value := p.Value
			if value == "" {
				value = "--"
			}
			lines = append(lines, Line{Text: fmt.Sprintf("%-11s %s", p.Label, value)})
		}
	}
	return lines
}

// Status is the one-line summary shown under the grid.
func Status(a core.Automaton, paused bool) string {
	state := "running"
	if paused {
		state = "paused"
	}
	return fmt.Sprintf("%s  gen %d  pop %d  %s", Title(a), a.Generation(), a.Population(), state)
}
