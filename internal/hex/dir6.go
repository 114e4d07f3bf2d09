// Package hex provides the hex grid direction model and location types.
//
// The grid uses an offset coordinate pair where the six neighbors of (0, 0)
// are (-1,-1), (0,-1), (1,0), (1,1), (0,1) and (-1,0). The cells (1,-1) and
// (-1,1) are not adjacent; they sit two steps away.
package hex

import (
	"fmt"
	"math"
)

// Dir6 is one of the six hex grid directions.
type Dir6 int

const (
	North Dir6 = iota
	NorthEast
	SouthEast
	South
	SouthWest
	NorthWest
)

// dirVectors maps each direction to its unit offset.
var dirVectors = map[Dir6]Vec{
	North:     {X: -1, Y: -1},
	NorthEast: {X: 0, Y: -1},
	SouthEast: {X: 1, Y: 0},
	South:     {X: 1, Y: 1},
	SouthWest: {X: 0, Y: 1},
	NorthWest: {X: -1, Y: 0},
}

// allDirs is the canonical iteration order.
var allDirs = [6]Dir6{North, NorthEast, SouthEast, South, SouthWest, NorthWest}

// hexadecantDirs snaps each of the 16 angular hexadecants around the origin to
// the nearest hex direction.
//
//	   North     NorthEast
//	      \ 14 15 | 00 01
//	      13\     |      02
//	          \   |
//	    12      \ |        03
//	NW ---------- O -X------- SouthEast
//	    11        Y \      04
//	              |   \
//	      10      |     \05
//	        09 08 | 07 06 \
//	           SouthWest   South
var hexadecantDirs = [16]Dir6{
	0:  NorthEast,
	1:  NorthEast,
	2:  SouthEast,
	3:  SouthEast,
	4:  SouthEast,
	5:  South,
	6:  South,
	7:  SouthWest,
	8:  SouthWest,
	9:  SouthWest,
	10: NorthWest,
	11: NorthWest,
	12: NorthWest,
	13: North,
	14: North,
	15: NorthEast,
}

// Dirs returns the six directions in canonical order, North first and
// proceeding clockwise. The returned slice is a fresh copy.
func Dirs() []Dir6 {
	dirs := allDirs
	return dirs[:]
}

// FromInt converts an integer to a direction using floor modulo 6, so
// negative values wrap around (-1 is NorthWest).
func FromInt(i int) Dir6 {
	m := i % 6
	if m < 0 {
		m += 6
	}
	return Dir6(m)
}

// FromVec returns the hex direction closest to the given vector.
// The zero vector snaps to NorthEast.
func FromVec(v Vec) Dir6 {
	const width = math.Pi / 8

	radian := math.Atan2(float64(v.X), float64(-v.Y))
	if radian < 0 {
		radian += 2 * math.Pi
	}
	// A tiny negative angle rounds up to a full turn.
	hexadecant := int(math.Floor(radian/width)) % len(hexadecantDirs)
	if hexadecant < 0 || hexadecant >= len(hexadecantDirs) {
		panic(fmt.Sprintf("hex: bad hexadecant %d for vector %v", hexadecant, v))
	}
	return hexadecantDirs[hexadecant]
}

// Vec returns the unit offset vector of the direction.
func (d Dir6) Vec() Vec {
	v, ok := dirVectors[d]
	if !ok {
		panic(fmt.Sprintf("hex: no vector for direction %d", int(d)))
	}
	return v
}

// Opposite returns the direction pointing the other way.
func (d Dir6) Opposite() Dir6 {
	return FromInt(int(d) + 3)
}

// Rotate turns the direction clockwise by the given number of steps.
func (d Dir6) Rotate(steps int) Dir6 {
	return FromInt(int(d) + steps)
}

// String returns a human-readable direction name.
func (d Dir6) String() string {
	switch d {
	case North:
		return "north"
	case NorthEast:
		return "northeast"
	case SouthEast:
		return "southeast"
	case South:
		return "south"
	case SouthWest:
		return "southwest"
	case NorthWest:
		return "northwest"
	default:
		return "unknown"
	}
}
