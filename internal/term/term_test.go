package term

import (
	"context"
	"testing"
	"time"

	"lifelike/internal/render"
	"lifelike/pkg/core"
	"lifelike/pkg/sims/colorlife"
	"lifelike/pkg/sims/life"

	"github.com/gdamore/tcell/v2"
)

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatal(err)
	}
	s.SetSize(w, h)
	t.Cleanup(s.Fini)
	return s
}

func TestFitSizeLeavesStatusLine(t *testing.T) {
	s := newScreen(t, 20, 8)
	if got := FitSize(s); got != (core.Size{Rows: 7, Cols: 20}) {
		t.Fatalf("FitSize = %+v", got)
	}
}

func TestRenderPlacesCellsBottomUp(t *testing.T) {
	s := newScreen(t, 6, 5)
	c := colorlife.New(6, 4, core.Conway, core.WithDensity(0))
	c.Put(0, 1, colorlife.Alive(120))
	d := New(s, c, render.PaletteHSV, 10, 1)
	d.Render()

	mainc, _, style, _ := s.GetContent(1, 3)
	if mainc != cellGlyph {
		t.Fatalf("glyph at (1,3) = %q, want %q", mainc, cellGlyph)
	}
	fg, _, _ := style.Decompose()
	if fg != tcell.NewRGBColor(0, 255, 0) {
		t.Fatalf("foreground = %v, want pure green", fg)
	}
	if mainc, _, _, _ := s.GetContent(1, 0); mainc == cellGlyph {
		t.Fatal("row 0 drawn at the top of the screen")
	}
	if mainc, _, _, _ := s.GetContent(0, 4); mainc != 'c' {
		t.Fatalf("status line starts with %q", mainc)
	}
}

func TestMouseDraws(t *testing.T) {
	s := newScreen(t, 5, 5)
	l := life.New(5, 4, core.Conway, core.WithDensity(0))
	d := New(s, l, render.PaletteHSV, 10, 1)

	d.Handle(tcell.NewEventMouse(2, 3, tcell.Button1, tcell.ModNone))
	if !l.Alive(0, 2) {
		t.Fatal("click on bottom row did not draw grid row 0")
	}
	d.Handle(tcell.NewEventMouse(1, 4, tcell.Button1, tcell.ModNone))
	d.Handle(tcell.NewEventMouse(3, 1, tcell.ButtonNone, tcell.ModNone))
	if n := l.Population(); n != 1 {
		t.Fatalf("population = %d, want 1 after status-line click and hover", n)
	}
}

func TestKeys(t *testing.T) {
	s := newScreen(t, 5, 5)
	l := life.New(5, 4, core.Conway, core.WithDensity(0))
	d := New(s, l, render.PaletteHSV, 10, 1)

	d.Handle(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone))
	if !d.Paused() {
		t.Fatal("space did not pause")
	}
	d.Tick()
	if l.Generation() != 0 {
		t.Fatal("Tick stepped while paused")
	}
	d.Handle(tcell.NewEventKey(tcell.KeyRune, 'n', tcell.ModNone))
	if l.Generation() != 1 {
		t.Fatalf("generation after n = %d, want 1", l.Generation())
	}
	d.Handle(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))
	if d.Paused() {
		t.Fatal("enter did not resume")
	}
	d.Handle(tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone))
	if l.Generation() != 0 {
		t.Fatal("r did not reset")
	}
	d.Handle(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone))
	if !d.Done() {
		t.Fatal("q did not quit")
	}
}

func TestClearKey(t *testing.T) {
	s := newScreen(t, 6, 5)
	l := life.New(6, 4, core.Conway, core.WithSeed(9), core.WithDensity(1))
	d := New(s, l, render.PaletteHSV, 10, 9)

	d.Handle(tcell.NewEventKey(tcell.KeyRune, 'c', tcell.ModNone))
	if n := l.Population(); n != 0 {
		t.Fatalf("population after c = %d, want 0", n)
	}
	d.Render()
	if mainc, _, _, _ := s.GetContent(0, 0); mainc == cellGlyph {
		t.Fatal("cleared grid still renders a cell")
	}
}

func TestRunStopsOnQuit(t *testing.T) {
	s := newScreen(t, 8, 6)
	l := life.New(8, 5, core.Conway, core.WithSeed(3))
	d := New(s, l, render.PaletteHSV, 50, 3)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	go func() {
		time.Sleep(100 * time.Millisecond)
		s.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	}()
	if err := d.Run(ctx); err != nil {
		t.Fatalf("Run = %v", err)
	}
	if !d.Done() {
		t.Fatal("Run returned before quit")
	}
}
