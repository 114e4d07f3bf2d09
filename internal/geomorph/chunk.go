package geomorph

import (
	"strings"

	"github.com/samdwyer/hexcrawl/internal/hex"
	"github.com/samdwyer/hexcrawl/internal/terrain"
)

// Chunk template dimensions. A chunk is two Width x Width halves stacked
// vertically.
const (
	Width  = 11
	Height = 2 * Width
)

// Edge cells each region must reach. The top half connects through its west,
// north and east edges, the bottom half through its west, south and east
// edges.
var (
	TopConnectors = [3]hex.Vec{
		{X: 0, Y: 3},
		{X: 7, Y: 0},
		{X: Width - 1, Y: 7},
	}
	BottomConnectors = [3]hex.Vec{
		{X: 0, Y: Width + 5},
		{X: 5, Y: Height - 1},
		{X: Width - 1, Y: Width + 3},
	}
)

// Chunk is a validated map template. Chunks are immutable once loaded.
type Chunk struct {
	Name string
	Spec AreaSpec

	// Connected is true when all open cells form a single region.
	Connected bool
	// Exit is true when any cell leads off the layer.
	Exit bool

	cells [Height][Width]terrain.Cell
}

// Cell returns the cell at template position (x, y).
func (c *Chunk) Cell(x, y int) (terrain.Cell, bool) {
	if x < 0 || y < 0 || x >= Width || y >= Height {
		return terrain.Cell{}, false
	}
	return c.cells[y][x], true
}

// Parse reads a template and verifies its topology.
func Parse(name string, spec AreaSpec, text string) (*Chunk, error) {
	fail := func(e *ChunkError) (*Chunk, error) {
		e.Name, e.Text = name, text
		return nil, e
	}

	rows := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	if len(rows) != Height {
		return fail(&ChunkError{Rule: ErrBadSize, Rows: len(rows)})
	}

	c := &Chunk{Name: name, Spec: spec}
	for y, row := range rows {
		glyphs := []rune(row)
		if len(glyphs) != Width {
			return fail(&ChunkError{Rule: ErrBadSize, Rows: len(rows), Pos: hex.Vec{X: len(glyphs), Y: y}})
		}
		for x, g := range glyphs {
			cell, ok := legend[g]
			if !ok {
				return fail(&ChunkError{Rule: ErrUnknownGlyph, Glyph: g, Pos: hex.Vec{X: x, Y: y}})
			}
			c.cells[y][x] = cell
			if cell.IsExit() {
				c.Exit = true
			}
		}
	}

	regions, err := c.verify()
	if err != nil {
		return fail(err)
	}
	c.Connected = regions == 1
	return c, nil
}

// MustParse is like Parse but panics on error.
func MustParse(name string, spec AreaSpec, text string) *Chunk {
	c, err := Parse(name, spec, text)
	if err != nil {
		panic(err)
	}
	return c
}

// openCells returns the walkable positions of the chunk.
func (c *Chunk) openCells() map[hex.Vec]bool {
	open := make(map[hex.Vec]bool)
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			if c.cells[y][x].IsOpen() {
				open[hex.Vec{X: x, Y: y}] = true
			}
		}
	}
	return open
}

// verify checks that the open cells form one or two regions that reach all
// connectors, and returns the number of regions.
func (c *Chunk) verify() (int, *ChunkError) {
	regions := splitConnected(c.openCells())
	if len(regions) < 1 || len(regions) > 2 {
		return 0, &ChunkError{Rule: ErrRegionCount, Regions: len(regions)}
	}

	top, bottom := regions[0], regions[0]
	if len(regions) == 2 {
		if regions[0][TopConnectors[0]] {
			bottom = regions[1]
		} else {
			top = regions[1]
		}
	}

	for _, p := range TopConnectors {
		if !top[p] {
			return 0, &ChunkError{Rule: ErrMissingConnector, Region: "top", Pos: p}
		}
	}
	for _, p := range BottomConnectors {
		if !bottom[p] {
			return 0, &ChunkError{Rule: ErrMissingConnector, Region: "bottom", Pos: p}
		}
	}
	return len(regions), nil
}

// splitConnected partitions a set of positions into regions connected by hex
// adjacency.
func splitConnected(cells map[hex.Vec]bool) []map[hex.Vec]bool {
	rest := make(map[hex.Vec]bool, len(cells))
	for p := range cells {
		rest[p] = true
	}

	var regions []map[hex.Vec]bool
	for len(rest) > 0 {
		var start hex.Vec
		for p := range rest {
			start = p
			break
		}
		delete(rest, start)

		region := make(map[hex.Vec]bool)
		stack := []hex.Vec{start}
		for len(stack) > 0 {
			p := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			region[p] = true
			for _, d := range hex.Dirs() {
				q := p.Add(d.Vec())
				if rest[q] {
					delete(rest, q)
					stack = append(stack, q)
				}
			}
		}
		regions = append(regions, region)
	}
	return regions
}
