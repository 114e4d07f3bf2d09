package hex

import "testing"

func TestDirVectors(t *testing.T) {
	tests := []struct {
		dir  Dir6
		want Vec
	}{
		{North, Vec{-1, -1}},
		{NorthEast, Vec{0, -1}},
		{SouthEast, Vec{1, 0}},
		{South, Vec{1, 1}},
		{SouthWest, Vec{0, 1}},
		{NorthWest, Vec{-1, 0}},
	}

	for _, tt := range tests {
		if got := tt.dir.Vec(); got != tt.want {
			t.Errorf("%v.Vec() = %v, want %v", tt.dir, got, tt.want)
		}
	}
}

func TestFromInt(t *testing.T) {
	if got := FromInt(0); got != North {
		t.Errorf("FromInt(0) = %v, want north", got)
	}
	if got := FromInt(1); got != NorthEast {
		t.Errorf("FromInt(1) = %v, want northeast", got)
	}
	if got := FromInt(-1); got != NorthWest {
		t.Errorf("FromInt(-1) = %v, want northwest", got)
	}
	if got := FromInt(5); got != NorthWest {
		t.Errorf("FromInt(5) = %v, want northwest", got)
	}

	for i := -18; i <= 18; i++ {
		if FromInt(i) != FromInt(i+6) {
			t.Errorf("FromInt(%d) = %v, FromInt(%d) = %v, want equal", i, FromInt(i), i+6, FromInt(i+6))
		}
		if FromInt(i) != FromInt(i-6) {
			t.Errorf("FromInt(%d) = %v, FromInt(%d) = %v, want equal", i, FromInt(i), i-6, FromInt(i-6))
		}
	}
}

func TestFromVec(t *testing.T) {
	tests := []struct {
		v    Vec
		want Dir6
	}{
		{Vec{20, -21}, NorthEast},
		{Vec{20, -10}, SouthEast},
		{Vec{-10, -10}, North},
		{Vec{1, 1}, South},
		// Nearly straight up, far away: the angle rounds to a full turn.
		{Vec{-1, -3e15}, NorthEast},
		{Vec{1, -3e15}, NorthEast},
	}

	for _, tt := range tests {
		if got := FromVec(tt.v); got != tt.want {
			t.Errorf("FromVec(%v) = %v, want %v", tt.v, got, tt.want)
		}
	}
}

func TestDirRoundTrip(t *testing.T) {
	for i := 0; i < 6; i++ {
		d := FromInt(i)
		v := d.Vec()
		prev := FromInt(i - 1).Vec()
		next := FromInt(i + 1).Vec()

		if got := Dirs()[i]; got != d {
			t.Errorf("Dirs()[%d] = %v, want %v", i, got, d)
		}
		if got := FromVec(v); got != d {
			t.Errorf("FromVec(%v) = %v, want %v", v, got, d)
		}
		if got := FromVec(v.Neg()); got != FromInt(i+3) {
			t.Errorf("FromVec(%v) = %v, want %v", v.Neg(), got, FromInt(i+3))
		}
		if got := FromVec(v.Mul(3)); got != d {
			t.Errorf("FromVec(3*%v) = %v, want %v", v, got, d)
		}
		if got := FromVec(v.Mul(3).Add(prev)); got != d {
			t.Errorf("FromVec(3*%v + %v) = %v, want %v", v, prev, got, d)
		}
		if got := FromVec(v.Mul(3).Add(next)); got != d {
			t.Errorf("FromVec(3*%v + %v) = %v, want %v", v, next, got, d)
		}
	}
}

func TestDirsOrder(t *testing.T) {
	want := []Dir6{North, NorthEast, SouthEast, South, SouthWest, NorthWest}

	// Iterating twice yields the same finite sequence.
	for pass := 0; pass < 2; pass++ {
		got := Dirs()
		if len(got) != len(want) {
			t.Fatalf("len(Dirs()) = %d, want %d", len(got), len(want))
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("pass %d: Dirs()[%d] = %v, want %v", pass, i, got[i], want[i])
			}
		}
		got[0] = South
	}
}

func TestOppositeAndRotate(t *testing.T) {
	for _, d := range Dirs() {
		if got := d.Opposite().Opposite(); got != d {
			t.Errorf("%v.Opposite().Opposite() = %v", d, got)
		}
		if got := d.Vec().Add(d.Opposite().Vec()); got != (Vec{}) {
			t.Errorf("%v + opposite = %v, want zero", d, got)
		}
		if got := d.Rotate(6); got != d {
			t.Errorf("%v.Rotate(6) = %v", d, got)
		}
	}
	if got := North.Rotate(-1); got != NorthWest {
		t.Errorf("North.Rotate(-1) = %v, want northwest", got)
	}
}

func TestVecLen(t *testing.T) {
	tests := []struct {
		v    Vec
		want int
	}{
		{Vec{0, 0}, 0},
		{Vec{1, 1}, 1},
		{Vec{-1, 0}, 1},
		{Vec{1, -1}, 2},
		{Vec{-1, 1}, 2},
		{Vec{3, 1}, 3},
		{Vec{2, -3}, 5},
		{Vec{-4, -4}, 4},
	}

	for _, tt := range tests {
		if got := tt.v.Len(); got != tt.want {
			t.Errorf("%v.Len() = %d, want %d", tt.v, got, tt.want)
		}
	}

	for _, d := range Dirs() {
		if got := d.Vec().Len(); got != 1 {
			t.Errorf("%v.Vec().Len() = %d, want 1", d, got)
		}
	}
}

func TestLocationSector(t *testing.T) {
	tests := []struct {
		loc  Location
		want Sector
	}{
		{NewLocation(0, 0, 0), Sector{0, 0, 0}},
		{NewLocation(39, 19, 0), Sector{0, 0, 0}},
		{NewLocation(40, 20, 0), Sector{1, 1, 0}},
		{NewLocation(-1, -1, 2), Sector{-1, -1, 2}},
		{NewLocation(-40, -21, 1), Sector{-1, -2, 1}},
	}

	for _, tt := range tests {
		if got := tt.loc.Sector(); got != tt.want {
			t.Errorf("%v.Sector() = %+v, want %+v", tt.loc, got, tt.want)
		}
		if !tt.want.Contains(tt.loc) {
			t.Errorf("sector %+v does not contain %v", tt.want, tt.loc)
		}
	}

	if got := (Sector{X: -1, Y: 2, Z: 3}).Origin(); got != NewLocation(-40, 40, 3) {
		t.Errorf("Origin() = %v", got)
	}
}

func TestLocationDistance(t *testing.T) {
	origin := NewLocation(5, 5, 1)

	for _, n := range origin.Neighbors() {
		if got := origin.Distance(n); got != 1 {
			t.Errorf("Distance(%v, %v) = %d, want 1", origin, n, got)
		}
	}
	if got := origin.Distance(NewLocation(5, 5, 0)); got != -1 {
		t.Errorf("cross-layer Distance = %d, want -1", got)
	}
	if got := origin.Distance(origin.Add(Vec{2, -1})); got != 3 {
		t.Errorf("Distance = %d, want 3", got)
	}
}

func TestRing(t *testing.T) {
	center := NewLocation(-3, 7, 2)
	if got := center.Ring(0); len(got) != 1 || got[0] != center {
		t.Errorf("Ring(0) = %v", got)
	}
	for r := 1; r <= 5; r++ {
		ring := center.Ring(r)
		if len(ring) != 6*r {
			t.Errorf("Ring(%d) has %d cells, want %d", r, len(ring), 6*r)
		}
		seen := make(map[Location]bool)
		for _, loc := range ring {
			if d := center.Distance(loc); d != r {
				t.Errorf("Ring(%d) contains %v at distance %d", r, loc, d)
			}
			if seen[loc] {
				t.Errorf("Ring(%d) repeats %v", r, loc)
			}
			seen[loc] = true
		}
	}
}
