package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/hexcrawl/internal/ecs"
	"github.com/samdwyer/hexcrawl/internal/gamedata"
	"github.com/samdwyer/hexcrawl/internal/hex"
	"github.com/samdwyer/hexcrawl/internal/terrain"
	"github.com/samdwyer/hexcrawl/internal/world"
)

// View is the part of the world the renderer reads.
type View interface {
	Terrain(loc hex.Location) terrain.Cell
	FovStatus(e ecs.Entity, loc hex.Location) world.FovStatus
	Location(e ecs.Entity) (hex.Location, bool)
	EntitiesAt(loc hex.Location) []ecs.Entity
}

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen  *Screen
	palette *gamedata.Palette
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen, palette *gamedata.Palette) *Renderer {
	return &Renderer{screen: screen, palette: palette}
}

// Project returns the screen offset of a map offset. Hexes sit on every
// other column. North and south neighbors are two rows straight above and
// below; the other four are one row up or down and two columns across.
func Project(v hex.Vec) (col, row int) {
	return 2 * (v.X - v.Y), v.X + v.Y
}

// Unproject is the inverse of Project. It reports false for screen offsets
// that fall between hexes.
func Unproject(col, row int) (hex.Vec, bool) {
	if col%2 != 0 {
		return hex.Vec{}, false
	}
	a, b := col/2, row
	if (a-b)%2 != 0 {
		return hex.Vec{}, false
	}
	return hex.Vec{X: (a + b) / 2, Y: (b - a) / 2}, true
}

// Render draws what viewer sees and remembers, centered on the viewer, with
// a status line at the bottom.
func (r *Renderer) Render(view View, viewer ecs.Entity, status string) {
	r.screen.Clear()

	width, height := r.screen.Size()
	mapHeight := height - 1
	center, ok := view.Location(viewer)
	if ok {
		cx, cy := width/2, mapHeight/2
		for sy := 0; sy < mapHeight; sy++ {
			for sx := 0; sx < width; sx++ {
				rel, ok := Unproject(sx-cx, sy-cy)
				if !ok {
					continue
				}
				r.drawCell(view, viewer, center.Add(rel), sx, sy)
			}
		}
	}

	r.RenderMessage(status, height-1)
	r.screen.Show()
}

func (r *Renderer) drawCell(view View, viewer ecs.Entity, loc hex.Location, sx, sy int) {
	status := view.FovStatus(viewer, loc)
	if status == world.Unknown {
		return
	}

	if status == world.Seen {
		for _, e := range view.EntitiesAt(loc) {
			if e == viewer {
				style := tcell.StyleDefault.
					Foreground(tcell.ColorYellow).
					Bold(true)
				r.screen.SetContent(sx, sy, '@', style)
				return
			}
		}
	}

	cell := view.Terrain(loc)
	name := shownTerrain(cell).String()
	color := r.palette.Remembered(name)
	if status == world.Seen {
		color = r.palette.Seen(name)
	}
	r.screen.SetContent(sx, sy, cell.Glyph(), tcell.StyleDefault.Foreground(color))
}

// shownTerrain returns the layer a cell is drawn as.
func shownTerrain(c terrain.Cell) terrain.Terrain {
	if c.Feature() != terrain.Void {
		return c.Feature()
	}
	return c.Base()
}

// RenderMessage displays a message at the given row.
func (r *Renderer) RenderMessage(msg string, y int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for i, ch := range []rune(msg) {
		r.screen.SetContent(i, y, ch, style)
	}
}
