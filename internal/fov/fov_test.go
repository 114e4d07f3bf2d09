package fov

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/samdwyer/hexcrawl/internal/hex"
)

// wallMap is a map where the listed cells are opaque walls and everything
// else is open.
type wallMap map[hex.Location]bool

func (w wallMap) BlocksSight(loc hex.Location) bool { return w[loc] }
func (w wallMap) IsWall(loc hex.Location) bool      { return w[loc] }

func at(x, y int) hex.Location { return hex.NewLocation(x, y, 0) }

// disk returns every cell within radius of the origin.
func disk(radius int) map[hex.Location]bool {
	out := make(map[hex.Location]bool)
	for y := -radius; y <= radius; y++ {
		for x := -radius; x <= radius; x++ {
			if (hex.Vec{X: x, Y: y}).Len() <= radius {
				out[at(x, y)] = true
			}
		}
	}
	return out
}

// ring returns the walls of a closed ring at distance radius, minus gaps.
func ring(radius int, gaps ...hex.Location) wallMap {
	walls := make(wallMap)
	for loc := range disk(radius) {
		if (hex.Vec{X: loc.X, Y: loc.Y}).Len() == radius {
			walls[loc] = true
		}
	}
	for _, g := range gaps {
		delete(walls, g)
	}
	return walls
}

// outside returns the visible cells beyond radius, sorted.
func outside(visible map[hex.Location]bool, radius int) []hex.Location {
	var out []hex.Location
	for loc := range visible {
		if (hex.Vec{X: loc.X, Y: loc.Y}).Len() > radius {
			out = append(out, loc)
		}
	}
	sortLocations(out)
	return out
}

func sortLocations(locs []hex.Location) {
	sort.Slice(locs, func(i, j int) bool {
		if locs[i].X != locs[j].X {
			return locs[i].X < locs[j].X
		}
		return locs[i].Y < locs[j].Y
	})
}

func equalLocations(a, b []hex.Location) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestOpenField(t *testing.T) {
	for radius := 0; radius <= 8; radius++ {
		visible := Compute(wallMap{}, at(0, 0), radius)
		want := 1 + 3*radius*(radius+1)
		if len(visible) != want {
			t.Errorf("radius %d: %d cells visible, want %d", radius, len(visible), want)
		}
		for loc := range visible {
			if d := at(0, 0).Distance(loc); d > radius {
				t.Errorf("radius %d: %v visible at distance %d", radius, loc, d)
			}
		}
	}
}

func TestOriginAlwaysVisible(t *testing.T) {
	origin := hex.NewLocation(10, -3, 2)
	walls := wallMap{origin: true}
	for _, n := range origin.Neighbors() {
		walls[n] = true
	}

	visible := Compute(walls, origin, 5)
	if !visible[origin] {
		t.Error("origin not visible")
	}
	for _, n := range origin.Neighbors() {
		if !visible[n] {
			t.Errorf("adjacent wall %v not visible", n)
		}
	}
	for loc := range visible {
		if loc.Z != origin.Z {
			t.Errorf("visible cell %v on the wrong layer", loc)
		}
		if origin.Distance(loc) > 2 {
			t.Errorf("%v visible through the walls", loc)
		}
	}
}

func TestSealedRing(t *testing.T) {
	visible := Compute(ring(2), at(0, 0), 5)
	want := disk(2)
	if len(visible) != len(want) {
		t.Errorf("%d cells visible, want %d", len(visible), len(want))
	}
	for loc := range want {
		if !visible[loc] {
			t.Errorf("%v inside the ring not visible", loc)
		}
	}
	if out := outside(visible, 2); len(out) != 0 {
		t.Errorf("cells visible outside the ring: %v", out)
	}
}

func TestRingWithGap(t *testing.T) {
	tests := []struct {
		name string
		gap  hex.Location
		want []hex.Location
	}{
		{
			name: "gap on the north axis",
			gap:  at(-2, -2),
			want: []hex.Location{
				at(-5, -5), at(-5, -4), at(-4, -5), at(-4, -4), at(-4, -3),
				at(-3, -4), at(-3, -3), at(-3, -2), at(-2, -3),
			},
		},
		{
			name: "gap between axes",
			gap:  at(-1, -2),
			want: []hex.Location{
				at(-3, -5), at(-3, -4), at(-2, -5), at(-2, -4), at(-2, -3),
				at(-1, -4), at(-1, -3),
			},
		},
	}

	for _, tt := range tests {
		visible := Compute(ring(2, tt.gap), at(0, 0), 5)
		sortLocations(tt.want)
		if got := outside(visible, 2); !equalLocations(got, tt.want) {
			t.Errorf("%s: visible outside = %v, want %v", tt.name, got, tt.want)
		}
	}

	// Looking through a north gap never shows anything to the south or east.
	visible := Compute(ring(2, at(-2, -2)), at(0, 0), 5)
	for _, loc := range []hex.Location{at(3, 3), at(4, 4), at(5, 5), at(0, -3), at(3, 0)} {
		if visible[loc] {
			t.Errorf("%v should be hidden", loc)
		}
	}
}

func TestWallShadow(t *testing.T) {
	// A single pillar north of the viewer hides the cells straight behind it.
	walls := wallMap{at(-1, -1): true}
	visible := Compute(walls, at(0, 0), 6)

	if !visible[at(-1, -1)] {
		t.Error("pillar itself should be visible")
	}
	for r := 2; r <= 6; r++ {
		if visible[at(-r, -r)] {
			t.Errorf("%v behind the pillar should be hidden", at(-r, -r))
		}
	}
	// Cells to the side of the pillar stay visible.
	if !visible[at(0, -2)] || !visible[at(-2, 0)] {
		t.Error("cells beside the pillar should be visible")
	}
}

func TestAcuteCornerRevealed(t *testing.T) {
	// The viewer stands in the inside corner of two walls. The cell where the
	// walls meet is hidden by both, but should still show.
	corner := at(1, -1)
	walls := wallMap{at(0, -1): true, at(1, 0): true, corner: true}

	visible := Compute(walls, at(0, 0), 4)
	if !visible[corner] {
		t.Error("corner wall should be revealed")
	}

	// Without a wall at the meeting point nothing extra is shown.
	walls = wallMap{at(0, -1): true, at(1, 0): true}
	visible = Compute(walls, at(0, 0), 4)
	if visible[corner] {
		t.Error("open cell behind the corner should stay hidden")
	}

	// Same on the opposite side.
	corner = at(-1, 1)
	walls = wallMap{at(0, 1): true, at(-1, 0): true, corner: true}
	visible = Compute(walls, at(0, 0), 4)
	if !visible[corner] {
		t.Error("opposite corner wall should be revealed")
	}
}

func TestStaysWithinRadius(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	const radius = 6
	origin := at(0, 0)

	for trial := 0; trial < 50; trial++ {
		walls := make(wallMap)
		for loc := range disk(radius + 3) {
			if loc != origin && rng.Float64() < 0.2 {
				walls[loc] = true
			}
		}
		for loc := range Compute(walls, origin, radius) {
			if d := origin.Distance(loc); d > radius {
				t.Fatalf("trial %d: %v visible at distance %d, radius %d", trial, loc, d, radius)
			}
		}
	}
}

func TestCornerAtEdgeHidden(t *testing.T) {
	// Walls meeting just past the edge of sight: the open cell (0, -1) sees
	// both walls at distance 2, but their meeting point is at distance 3.
	corner := at(1, -2)
	walls := wallMap{at(0, -2): true, at(1, -1): true, corner: true}

	visible := Compute(walls, at(0, 0), 2)
	if !visible[at(0, -2)] || !visible[at(1, -1)] {
		t.Fatal("walls at the edge of sight should be visible")
	}
	if visible[corner] {
		t.Error("corner beyond the radius should stay hidden")
	}

	visible = Compute(walls, at(0, 0), 3)
	if !visible[corner] {
		t.Error("corner within the radius should be revealed")
	}
}
