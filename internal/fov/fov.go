// Package fov computes the cells visible from a point on the hex grid.
package fov

import "github.com/samdwyer/hexcrawl/internal/hex"

// Map answers the terrain questions the sight calculation needs.
type Map interface {
	// BlocksSight reports whether loc stops light.
	BlocksSight(loc hex.Location) bool
	// IsWall reports whether loc is part of a wall.
	IsWall(loc hex.Location) bool
}

// frac is a non-negative fraction of a wedge's angular width.
type frac struct {
	num, den int
}

func (a frac) less(b frac) bool {
	return a.num*b.den < b.num*a.den
}

func maxFrac(a, b frac) frac {
	if a.less(b) {
		return b
	}
	return a
}

// arc is a lit angular interval [begin, end) of a wedge.
type arc struct {
	begin, end frac
}

// Compute returns the cells visible from origin out to radius steps. The
// origin is always visible, opaque cells are visible but hide what is behind
// them, and wall corners exposed diagonally are revealed afterwards.
func Compute(m Map, origin hex.Location, radius int) map[hex.Location]bool {
	visible := map[hex.Location]bool{origin: true}
	for w := 0; w < 6; w++ {
		castWedge(m, origin, radius, hex.FromInt(w), visible)
	}
	revealCorners(m, origin, radius, visible)
	return visible
}

// castWedge sweeps the 60 degree wedge between the directions d and d+1.
// Row r of the wedge holds r+1 cells; cell j covers the angular interval
// [j/(r+1), (j+1)/(r+1)].
func castWedge(m Map, origin hex.Location, radius int, d hex.Dir6, visible map[hex.Location]bool) {
	a, b := d.Vec(), d.Rotate(1).Vec()
	arcs := []arc{{begin: frac{0, 1}, end: frac{1, 1}}}

	for r := 1; r <= radius && len(arcs) > 0; r++ {
		var next []arc
		for _, lit := range arcs {
			first := lit.begin.num * (r + 1) / lit.begin.den
			last := ceilDiv(lit.end.num*(r+1), lit.end.den) - 1
			first, last = max(first, 0), min(last, r)

			open := false
			var start frac
			for j := first; j <= last; j++ {
				cellBegin := frac{j, r + 1}
				loc := origin.Add(a.Mul(r - j).Add(b.Mul(j)))
				visible[loc] = true

				if m.BlocksSight(loc) {
					if open {
						next = append(next, arc{begin: start, end: maxFrac(cellBegin, lit.begin)})
						open = false
					}
				} else if !open {
					open = true
					start = maxFrac(cellBegin, lit.begin)
				}
			}
			if open {
				next = append(next, arc{begin: start, end: lit.end})
			}
		}
		arcs = next
	}
}

// corners lists the two diagonal offsets that are not hex neighbors, with the
// pair of neighbor directions that flank each one.
var corners = [2]struct {
	diag  hex.Vec
	sides [2]hex.Dir6
}{
	{hex.Vec{X: 1, Y: -1}, [2]hex.Dir6{hex.NorthEast, hex.SouthEast}},
	{hex.Vec{X: -1, Y: 1}, [2]hex.Dir6{hex.SouthWest, hex.NorthWest}},
}

// revealCorners shows the wall cell at an acute corner when both walls
// meeting at it are visible from an open cell. Corners past radius stay
// hidden.
func revealCorners(m Map, origin hex.Location, radius int, visible map[hex.Location]bool) {
	var found []hex.Location
	for p := range visible {
		if m.BlocksSight(p) {
			continue
		}
		for _, c := range corners {
			s1, s2 := p.Step(c.sides[0]), p.Step(c.sides[1])
			if !visible[s1] || !visible[s2] || !m.IsWall(s1) || !m.IsWall(s2) {
				continue
			}
			corner := p.Add(c.diag)
			if origin.Distance(corner) <= radius && m.IsWall(corner) {
				found = append(found, corner)
			}
		}
	}
	for _, loc := range found {
		visible[loc] = true
	}
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
