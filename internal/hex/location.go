package hex

import "fmt"

const (
	// SectorWidth and SectorHeight give the size of the coarse partition used
	// to scope map memory.
	SectorWidth  = 40
	SectorHeight = 20
)

// Vec is an offset on the (x, y) plane of the grid.
type Vec struct {
	X, Y int
}

// Add returns v+o.
func (v Vec) Add(o Vec) Vec { return Vec{X: v.X + o.X, Y: v.Y + o.Y} }

// Sub returns v-o.
func (v Vec) Sub(o Vec) Vec { return Vec{X: v.X - o.X, Y: v.Y - o.Y} }

// Mul scales v by k.
func (v Vec) Mul(k int) Vec { return Vec{X: v.X * k, Y: v.Y * k} }

// Neg returns -v.
func (v Vec) Neg() Vec { return Vec{X: -v.X, Y: -v.Y} }

// Len returns the number of hex steps needed to travel along v.
func (v Vec) Len() int {
	return max(abs(v.X), abs(v.Y), abs(v.X-v.Y))
}

func (v Vec) String() string {
	return fmt.Sprintf("(%d, %d)", v.X, v.Y)
}

// Location is an absolute grid position. Z selects the sector layer; z == 0
// is the overworld. Location is comparable and is used directly as a map key.
type Location struct {
	X, Y, Z int
}

// NewLocation creates a location from its coordinates.
func NewLocation(x, y, z int) Location {
	return Location{X: x, Y: y, Z: z}
}

// Add offsets the location on its own layer.
func (l Location) Add(v Vec) Location {
	return Location{X: l.X + v.X, Y: l.Y + v.Y, Z: l.Z}
}

// Step returns the adjacent location in direction d.
func (l Location) Step(d Dir6) Location {
	return l.Add(d.Vec())
}

// VecTo returns the planar offset from l to o. The layer is ignored.
func (l Location) VecTo(o Location) Vec {
	return Vec{X: o.X - l.X, Y: o.Y - l.Y}
}

// Distance returns the hex distance to o, or -1 when the locations are on
// different layers.
func (l Location) Distance(o Location) int {
	if l.Z != o.Z {
		return -1
	}
	return l.VecTo(o).Len()
}

// Neighbors returns the six adjacent locations in canonical direction order.
func (l Location) Neighbors() [6]Location {
	var result [6]Location
	for i, d := range allDirs {
		result[i] = l.Step(d)
	}
	return result
}

// Ring returns the locations exactly r steps away, walking clockwise from
// the southwest corner. Ring(0) is the location itself.
func (l Location) Ring(r int) []Location {
	if r <= 0 {
		return []Location{l}
	}
	out := make([]Location, 0, 6*r)
	p := l.Add(SouthWest.Vec().Mul(r))
	for _, d := range allDirs {
		for i := 0; i < r; i++ {
			out = append(out, p)
			p = p.Step(d)
		}
	}
	return out
}

// Sector returns the coarse sector containing the location.
func (l Location) Sector() Sector {
	return Sector{
		X: floorDiv(l.X, SectorWidth),
		Y: floorDiv(l.Y, SectorHeight),
		Z: l.Z,
	}
}

func (l Location) String() string {
	return fmt.Sprintf("(%d, %d, %d)", l.X, l.Y, l.Z)
}

// Sector is a cell of the coarse fixed-size partition of a layer.
type Sector struct {
	X, Y, Z int
}

// Origin returns the location of the sector's top-left cell.
func (s Sector) Origin() Location {
	return Location{X: s.X * SectorWidth, Y: s.Y * SectorHeight, Z: s.Z}
}

// Contains reports whether loc lies in the sector.
func (s Sector) Contains(loc Location) bool {
	return loc.Sector() == s
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
