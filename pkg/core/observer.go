package core

import (
	"context"
	"log/slog"
)

// EventKind enumerates the grid events an automaton reports.
type EventKind uint8

const (
	// EventInit is emitted after the grid has been randomized.
	EventInit EventKind = iota
	// EventStep is emitted after every completed generation.
	EventStep
	// EventDraw is emitted when Draw brought a cell alive.
	EventDraw
	// EventDrawMissed is emitted when Draw received out-of-range coordinates.
	EventDrawMissed
	// EventClear is emitted after every cell has been killed.
	EventClear
)

func (k EventKind) String() string {
	switch k {
	case EventInit:
		return "init"
	case EventStep:
		return "step"
	case EventDraw:
		return "draw"
	case EventDrawMissed:
		return "draw_missed"
	case EventClear:
		return "clear"
	default:
		return "unknown"
	}
}

// Event describes something that happened to an automaton's grid.
type Event struct {
	Kind       EventKind
	Sim        string
	Size       Size
	Rule       Rule
	Generation int
	Population int
	// Row and Col are set for draw events.
	Row, Col int
}

// Observer receives grid events. It is called synchronously from Step, Draw,
// Reset and Clear, so it must not call back into the automaton.
type Observer func(Event)

// NopObserver discards every event.
func NopObserver(Event) {}

// LogObserver reports events through l. A nil logger discards them.
func LogObserver(l *slog.Logger) Observer {
	if l == nil {
		return NopObserver
	}
	return func(e Event) {
		level := slog.LevelDebug
		msg := "automaton stepped"
		attrs := []slog.Attr{
			slog.String("sim", e.Sim),
			slog.Int("generation", e.Generation),
			slog.Int("population", e.Population),
		}
		switch e.Kind {
		case EventInit:
			level = slog.LevelInfo
			msg = "grid initialized"
			attrs = append(attrs,
				slog.Int("rows", e.Size.Rows),
				slog.Int("cols", e.Size.Cols),
				slog.String("rule", e.Rule.String()),
			)
		case EventDraw:
			level = slog.LevelInfo
			msg = "cell drawn"
			attrs = append(attrs, slog.Int("row", e.Row), slog.Int("col", e.Col))
		case EventDrawMissed:
			level = slog.LevelWarn
			msg = "draw missed: coordinates out of bounds"
			attrs = append(attrs, slog.Int("row", e.Row), slog.Int("col", e.Col))
		case EventClear:
			level = slog.LevelInfo
			msg = "grid cleared"
		}
		l.LogAttrs(context.Background(), level, msg, attrs...)
	}
}
