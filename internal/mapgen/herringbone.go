// Package mapgen places validated chunks on the plane using a herringbone
// tiling in which neighboring chunks' edge connectors always meet.
package mapgen

import (
	"github.com/samdwyer/hexcrawl/internal/geomorph"
	"github.com/samdwyer/hexcrawl/internal/hex"
)

const w = geomorph.Width

// HerringboneMap converts a cell position inside the chunk at chunk-grid
// coordinate chunk to an absolute position. Chunks in odd columns are
// transposed.
func HerringboneMap(chunk, local hex.Vec) hex.Vec {
	div, m := floorDivMod(chunk.X, 2)
	origin := hex.Vec{
		X: div*w + chunk.Y*w,
		Y: chunk.Y*w - m*w - 3*div*w,
	}
	if m == 0 {
		return origin.Add(local)
	}
	return origin.Add(hex.Vec{X: local.Y, Y: local.X})
}

// ChunkAt returns the chunk-grid coordinate whose footprint contains the
// absolute position p. Every position belongs to exactly one chunk.
func ChunkAt(p hex.Vec) hex.Vec {
	// Footprints are built from W x W blocks. A block at (A, B) holds the
	// top or bottom half of an even chunk, or the left or right half of an
	// odd one, depending on (A - B) mod 4.
	a, b := floorDiv(p.X, w), floorDiv(p.Y, w)
	var m int
	switch _, d := floorDivMod(a-b, 4); d {
	case 0:
	case 3:
		b--
	case 1:
		m = 1
	case 2:
		a--
		m = 1
	}
	div := floorDiv(a-b-m, 4)
	cy := a - div
	return hex.Vec{X: 2*div + m, Y: cy}
}

// ChunkCells returns the absolute positions covered by a chunk together with
// the template position each one comes from.
func ChunkCells(chunk hex.Vec) map[hex.Vec]hex.Vec {
	cells := make(map[hex.Vec]hex.Vec, geomorph.Width*geomorph.Height)
	for y := 0; y < geomorph.Height; y++ {
		for x := 0; x < geomorph.Width; x++ {
			local := hex.Vec{X: x, Y: y}
			cells[HerringboneMap(chunk, local)] = local
		}
	}
	return cells
}

// LocalPos returns the template position of absolute p within its chunk.
func LocalPos(p hex.Vec) (chunk, local hex.Vec) {
	chunk = ChunkAt(p)
	origin := HerringboneMap(chunk, hex.Vec{})
	d := p.Sub(origin)
	if _, m := floorDivMod(chunk.X, 2); m == 1 {
		d = hex.Vec{X: d.Y, Y: d.X}
	}
	return chunk, d
}

func floorDivMod(a, b int) (int, int) {
	q, r := a/b, a%b
	if r < 0 {
		q--
		r += b
	}
	return q, r
}

func floorDiv(a, b int) int {
	q, _ := floorDivMod(a, b)
	return q
}
