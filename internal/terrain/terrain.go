// Package terrain defines the closed set of terrain types and the stacked
// three-layer cell stored at every grid position.
package terrain

// Terrain is a single terrain type.
type Terrain uint8

const (
	Void Terrain = iota // Empty layer, or a bottomless gap when used as base
	Rock                // Bare ground as a base layer, solid rock as a feature
	Wall
	Door
	OpenDoor
	Window
	Bars
	Fence
	Water
	Shallows
	Magma
	Grass
	TallGrass
	Tree
	DeadTree
	Stone
	Menhir
	Grave
	Barrel
	Table
	Altar
	Stalagmite
	Downstairs
)

type props struct {
	name        string
	glyph       rune
	baseGlyph   rune // glyph when shown as bare ground
	unsolid     bool // base layer cannot be stood on
	blocksWalk  bool
	blocksSight bool
	wall        bool
	exit        bool
}

var table = map[Terrain]props{
	Void:       {name: "void", glyph: ' ', unsolid: true},
	Rock:       {name: "rock", glyph: '*', baseGlyph: '.', blocksWalk: true, blocksSight: true, wall: true},
	Wall:       {name: "wall", glyph: '#', blocksWalk: true, blocksSight: true, wall: true},
	Door:       {name: "door", glyph: '+', blocksSight: true, wall: true},
	OpenDoor:   {name: "open door", glyph: '\'', wall: true},
	Window:     {name: "window", glyph: '|', blocksWalk: true, wall: true},
	Bars:       {name: "bars", glyph: 'I', blocksWalk: true, wall: true},
	Fence:      {name: "fence", glyph: 'x', blocksWalk: true},
	Water:      {name: "water", glyph: '=', unsolid: true, blocksWalk: true},
	Shallows:   {name: "shallows", glyph: '~'},
	Magma:      {name: "magma", glyph: 'X', unsolid: true, blocksWalk: true},
	Grass:      {name: "grass", glyph: ','},
	TallGrass:  {name: "tall grass", glyph: ';'},
	Tree:       {name: "tree", glyph: '%', blocksWalk: true, blocksSight: true},
	DeadTree:   {name: "dead tree", glyph: '/', blocksWalk: true},
	Stone:      {name: "stone", glyph: 'o', blocksWalk: true},
	Menhir:     {name: "menhir", glyph: 'A', blocksWalk: true},
	Grave:      {name: "grave", glyph: 'g', blocksWalk: true},
	Barrel:     {name: "barrel", glyph: 'b', blocksWalk: true},
	Table:      {name: "table", glyph: 'T', blocksWalk: true},
	Altar:      {name: "altar", glyph: 'a', blocksWalk: true},
	Stalagmite: {name: "stalagmite", glyph: '!', blocksWalk: true},
	Downstairs: {name: "downstairs", glyph: '>', exit: true},
}

// All returns every terrain type in declaration order.
func All() []Terrain {
	result := make([]Terrain, 0, len(table))
	for t := Void; t <= Downstairs; t++ {
		result = append(result, t)
	}
	return result
}

// IsSolid reports whether the terrain can be stood on when used as a base layer.
func (t Terrain) IsSolid() bool { return !table[t].unsolid }

// BlocksWalk reports whether the terrain prevents movement through its cell.
func (t Terrain) BlocksWalk() bool { return table[t].blocksWalk }

// BlocksSight reports whether the terrain is opaque.
func (t Terrain) BlocksSight() bool { return table[t].blocksSight }

// IsWall reports whether the terrain is drawn as part of a wall.
func (t Terrain) IsWall() bool { return table[t].wall }

// IsExit reports whether the terrain leads to another layer.
func (t Terrain) IsExit() bool { return table[t].exit }

// Glyph returns the display character.
func (t Terrain) Glyph() rune {
	if p, ok := table[t]; ok {
		return p.glyph
	}
	return '?'
}

// BaseGlyph returns the display character of the terrain as bare ground.
func (t Terrain) BaseGlyph() rune {
	if p, ok := table[t]; ok && p.baseGlyph != 0 {
		return p.baseGlyph
	}
	return t.Glyph()
}

// String returns the terrain name.
func (t Terrain) String() string {
	if p, ok := table[t]; ok {
		return p.name
	}
	return "unknown"
}
