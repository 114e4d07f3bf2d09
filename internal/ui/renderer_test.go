package ui

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus/hooks/test"

	"github.com/samdwyer/hexcrawl/internal/gamedata"
	"github.com/samdwyer/hexcrawl/internal/geomorph"
	"github.com/samdwyer/hexcrawl/internal/hex"
	"github.com/samdwyer/hexcrawl/internal/terrain"
	"github.com/samdwyer/hexcrawl/internal/world"
)

type fixedChooser struct {
	chunk *geomorph.Chunk
}

func (f fixedChooser) Choose(int, hex.Vec) *geomorph.Chunk { return f.chunk }

func openWorld(t *testing.T) *world.World {
	t.Helper()
	row := strings.Repeat(".", geomorph.Width) + "\n"
	chunk := geomorph.MustParse("open", geomorph.NewAreaSpec(geomorph.Anywhere, 0), strings.Repeat(row, geomorph.Height))
	log, _ := test.NewNullLogger()
	return world.New(world.Options{Chooser: fixedChooser{chunk}, Logger: log})
}

func simScreen(t *testing.T, width, height int) *Screen {
	t.Helper()
	sim := tcell.NewSimulationScreen("")
	s, err := NewScreenFrom(sim)
	if err != nil {
		t.Fatalf("NewScreenFrom: %v", err)
	}
	sim.SetSize(width, height)
	t.Cleanup(s.Close)
	return s
}

func foreground(style tcell.Style) tcell.Color {
	fg, _, _ := style.Decompose()
	return fg
}

func TestProjectNeighbors(t *testing.T) {
	tests := []struct {
		dir      hex.Dir6
		col, row int
	}{
		{hex.North, 0, -2},
		{hex.NorthEast, 2, -1},
		{hex.SouthEast, 2, 1},
		{hex.South, 0, 2},
		{hex.SouthWest, -2, 1},
		{hex.NorthWest, -2, -1},
	}

	for _, tt := range tests {
		col, row := Project(tt.dir.Vec())
		if col != tt.col || row != tt.row {
			t.Errorf("Project(%v) = (%d, %d), want (%d, %d)", tt.dir, col, row, tt.col, tt.row)
		}
	}
}

func TestProjectRoundTrip(t *testing.T) {
	used := make(map[[2]int]hex.Vec)
	for y := -6; y <= 6; y++ {
		for x := -6; x <= 6; x++ {
			v := hex.Vec{X: x, Y: y}
			col, row := Project(v)
			if prev, ok := used[[2]int{col, row}]; ok {
				t.Fatalf("%v and %v share screen position (%d, %d)", prev, v, col, row)
			}
			used[[2]int{col, row}] = v
			if got, ok := Unproject(col, row); !ok || got != v {
				t.Errorf("Unproject(Project(%v)) = %v, %v", v, got, ok)
			}
		}
	}
	if _, ok := Unproject(1, 0); ok {
		t.Error("odd column should not map to a hex")
	}
	if _, ok := Unproject(2, 0); ok {
		t.Error("(2, 0) falls between hexes")
	}
}

func TestPaletteCoversTerrain(t *testing.T) {
	palette := gamedata.MustLoadPalette()
	for _, tr := range terrain.All() {
		if !palette.Has(tr.String()) {
			t.Errorf("no colors for terrain %q", tr)
		}
	}
}

func TestRenderSeenAndRemembered(t *testing.T) {
	screen := simScreen(t, 41, 21)
	palette := gamedata.MustLoadPalette()
	r := NewRenderer(screen, palette)

	w := openWorld(t)
	start := hex.NewLocation(0, 0, 1)
	viewer := w.Spawn(start)
	w.GiveSight(viewer)
	w.DoFOV(viewer)
	r.Render(w, viewer, "depth 1")

	cx, cy := 20, 10
	if got, _ := screen.Content(cx, cy); got != '@' {
		t.Errorf("center = %q, want '@'", got)
	}
	col, row := Project(hex.NorthEast.Vec())
	got, style := screen.Content(cx+col, cy+row)
	if got != '.' {
		t.Errorf("neighbor = %q, want '.'", got)
	}
	if foreground(style) != palette.Seen("rock") {
		t.Errorf("neighbor color = %v, want seen color", foreground(style))
	}
	if got, _ := screen.Content(0, 20); got != 'd' {
		t.Errorf("status line starts with %q, want 'd'", got)
	}

	// Walk away so the start is only remembered.
	w.SetEntityLocation(viewer, hex.NewLocation(0, 9, 1))
	w.DoFOV(viewer)
	r.Render(w, viewer, "")

	col, row = Project(hex.Vec{X: 0, Y: -9})
	got, style = screen.Content(cx+col, cy+row)
	if got != '.' {
		t.Errorf("remembered start = %q, want '.'", got)
	}
	if foreground(style) != palette.Remembered("rock") {
		t.Errorf("remembered color = %v, want remembered color", foreground(style))
	}

	// Cells never seen stay blank.
	col, row = Project(hex.Vec{X: -9, Y: 0})
	if got, _ := screen.Content(cx+col, cy+row); got != ' ' {
		t.Errorf("unknown cell = %q, want blank", got)
	}
}
