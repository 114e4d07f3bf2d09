package terrain

import "fmt"

// Layer indexes the stacked terrain values of a cell.
type Layer int

const (
	BaseLayer Layer = iota
	FeatureLayer
	DecorationLayer
)

// Cell holds the base, feature and decoration terrain of one grid position.
// Movement and sight are decided by the base and feature layers; the
// decoration layer only affects display.
type Cell [3]Terrain

// NewCell builds a cell from its three layers.
func NewCell(base, feature, decoration Terrain) Cell {
	return Cell{base, feature, decoration}
}

// Base returns the ground layer.
func (c Cell) Base() Terrain { return c[BaseLayer] }

// Feature returns the layer holding walls, doors and obstacles.
func (c Cell) Feature() Terrain { return c[FeatureLayer] }

// Decoration returns the display-only top layer.
func (c Cell) Decoration() Terrain { return c[DecorationLayer] }

// WithFeature returns a copy of the cell with the feature layer replaced.
func (c Cell) WithFeature(t Terrain) Cell {
	c[FeatureLayer] = t
	return c
}

// IsOpen reports whether the cell can be walked on.
func (c Cell) IsOpen() bool {
	return c.Base().IsSolid() && !c.Feature().BlocksWalk()
}

// BlocksSight reports whether the cell is opaque.
func (c Cell) BlocksSight() bool { return c.Feature().BlocksSight() }

// IsWall reports whether the cell's feature is part of a wall.
func (c Cell) IsWall() bool { return c.Feature().IsWall() }

// IsExit reports whether the cell's feature leads off the layer.
func (c Cell) IsExit() bool { return c.Feature().IsExit() }

// Glyph returns the display character: the feature when present, otherwise
// the ground.
func (c Cell) Glyph() rune {
	if c.Feature() != Void {
		return c.Feature().Glyph()
	}
	return c.Base().BaseGlyph()
}

func (c Cell) String() string {
	return fmt.Sprintf("[%v %v %v]", c[0], c[1], c[2])
}
