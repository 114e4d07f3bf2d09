package geomorph

import "github.com/samdwyer/hexcrawl/internal/terrain"

// legend maps template glyphs to the cells they stand for.
var legend = map[rune]terrain.Cell{
	'.': terrain.NewCell(terrain.Rock, terrain.Void, terrain.Void),
	'#': terrain.NewCell(terrain.Rock, terrain.Wall, terrain.Wall),
	'~': terrain.NewCell(terrain.Shallows, terrain.Void, terrain.Void),
	'=': terrain.NewCell(terrain.Water, terrain.Void, terrain.Void),
	',': terrain.NewCell(terrain.Grass, terrain.Void, terrain.Void),
	'+': terrain.NewCell(terrain.Rock, terrain.Door, terrain.Wall),
	'*': terrain.NewCell(terrain.Rock, terrain.Rock, terrain.Rock),
	'X': terrain.NewCell(terrain.Magma, terrain.Void, terrain.Void),
	'|': terrain.NewCell(terrain.Rock, terrain.Window, terrain.Window),
	'%': terrain.NewCell(terrain.Grass, terrain.Tree, terrain.Void),
	'/': terrain.NewCell(terrain.Rock, terrain.DeadTree, terrain.Void),
	'x': terrain.NewCell(terrain.Grass, terrain.Fence, terrain.Void),
	'o': terrain.NewCell(terrain.Rock, terrain.Stone, terrain.Void),
	'A': terrain.NewCell(terrain.Rock, terrain.Menhir, terrain.Void),
	'g': terrain.NewCell(terrain.Rock, terrain.Grave, terrain.Void),
	'b': terrain.NewCell(terrain.Rock, terrain.Barrel, terrain.Void),
	'T': terrain.NewCell(terrain.Rock, terrain.Table, terrain.Void),
	'a': terrain.NewCell(terrain.Rock, terrain.Altar, terrain.Void),
	'I': terrain.NewCell(terrain.Rock, terrain.Bars, terrain.Bars),
	'!': terrain.NewCell(terrain.Rock, terrain.Stalagmite, terrain.Void),
	';': terrain.NewCell(terrain.Grass, terrain.TallGrass, terrain.Void),
	'>': terrain.NewCell(terrain.Rock, terrain.Downstairs, terrain.Void),
	'_': terrain.NewCell(terrain.Void, terrain.Void, terrain.Void),
}

// Legend returns the cell for a template glyph.
func Legend(glyph rune) (terrain.Cell, bool) {
	c, ok := legend[glyph]
	return c, ok
}
