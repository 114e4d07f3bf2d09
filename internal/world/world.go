// Package world holds the game map and everything placed on it. Terrain is
// assembled from chunk templates the first time any cell of a chunk is looked
// at, so the map is effectively unbounded.
package world

import (
	"context"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/samdwyer/hexcrawl/internal/ecs"
	"github.com/samdwyer/hexcrawl/internal/hex"
	"github.com/samdwyer/hexcrawl/internal/mapgen"
	"github.com/samdwyer/hexcrawl/internal/spatial"
	"github.com/samdwyer/hexcrawl/internal/terrain"
)

// DefaultDungeonSight is the sight range below the surface.
const DefaultDungeonSight = 7

// Options configures a new world.
type Options struct {
	// Chooser picks a template for each chunk.
	Chooser mapgen.Chooser
	// DungeonSight is the sight range on layers below the surface. Zero
	// selects DefaultDungeonSight.
	DungeonSight int
	Logger       logrus.FieldLogger
}

type chunkKey struct {
	z     int
	chunk hex.Vec
}

// terrainCache is the assembled terrain of every layer.
type terrainCache map[hex.Location]terrain.Cell

func (c terrainCache) SetTerrain(loc hex.Location, cell terrain.Cell) {
	c[loc] = cell
}

// World is the game map together with entity placement and map memory.
// It is not safe for concurrent use.
type World struct {
	log          logrus.FieldLogger
	assembler    *mapgen.Assembler
	dungeonSight int

	terrain   terrainCache
	assembled map[chunkKey]bool
	exits     map[hex.Location]bool

	index  *spatial.Index
	memory *ecs.Store[MapMemory]
	tick   int
}

// New creates an empty world.
func New(opts Options) *World {
	log := opts.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}
	sight := opts.DungeonSight
	if sight <= 0 {
		sight = DefaultDungeonSight
	}
	return &World{
		log:          log.WithField("component", "world"),
		assembler:    mapgen.NewAssembler(opts.Chooser, log),
		dungeonSight: sight,
		terrain:      make(terrainCache),
		assembled:    make(map[chunkKey]bool),
		exits:        make(map[hex.Location]bool),
		index:        spatial.NewIndex(),
		memory:       ecs.NewStore[MapMemory](),
	}
}

// ensureChunk assembles the chunk containing loc if it has not been built.
func (w *World) ensureChunk(loc hex.Location) {
	key := chunkKey{z: loc.Z, chunk: mapgen.ChunkAt(hex.Vec{X: loc.X, Y: loc.Y})}
	if w.assembled[key] {
		return
	}
	w.assembled[key] = true
	exits, _ := w.assembler.Chunk(w.terrain, key.z, key.chunk)
	for _, e := range exits {
		w.exits[e] = true
	}
}

// Prewarm assembles every chunk within radius chunk steps of the chunk
// containing center.
func (w *World) Prewarm(ctx context.Context, center hex.Location, radius int) {
	mid := mapgen.ChunkAt(hex.Vec{X: center.X, Y: center.Y})
	pending := make(map[hex.Vec]bool)
	for cy := mid.Y - radius; cy <= mid.Y+radius; cy++ {
		for cx := mid.X - radius; cx <= mid.X+radius; cx++ {
			c := hex.Vec{X: cx, Y: cy}
			if !w.assembled[chunkKey{z: center.Z, chunk: c}] {
				pending[c] = true
			}
		}
	}
	if len(pending) == 0 {
		return
	}

	// Assemble into a scratch layer so already built chunks keep any changes
	// made to them.
	scratch := make(terrainCache)
	exits := w.assembler.Region(ctx, scratch, center.Z, mid, radius)
	for loc, cell := range scratch {
		if pending[mapgen.ChunkAt(hex.Vec{X: loc.X, Y: loc.Y})] {
			w.terrain[loc] = cell
		}
	}
	for _, e := range exits {
		if pending[mapgen.ChunkAt(hex.Vec{X: e.X, Y: e.Y})] {
			w.exits[e] = true
		}
	}
	for c := range pending {
		w.assembled[chunkKey{z: center.Z, chunk: c}] = true
	}
}

// RawTerrain returns the stored cell at loc, ignoring anything standing on it.
func (w *World) RawTerrain(loc hex.Location) terrain.Cell {
	w.ensureChunk(loc)
	return w.terrain[loc]
}

// Terrain returns the cell at loc as it currently appears. A door with
// something standing in it is open.
func (w *World) Terrain(loc hex.Location) terrain.Cell {
	cell := w.RawTerrain(loc)
	if cell.Feature() == terrain.Door && len(w.index.EntitiesAt(loc)) > 0 {
		return cell.WithFeature(terrain.OpenDoor)
	}
	return cell
}

// SetTerrain replaces the cell at loc.
func (w *World) SetTerrain(loc hex.Location, cell terrain.Cell) {
	w.ensureChunk(loc)
	w.terrain[loc] = cell
}

// IsOpen reports whether loc can be walked on.
func (w *World) IsOpen(loc hex.Location) bool {
	return w.Terrain(loc).IsOpen()
}

// BlocksSight reports whether loc is opaque.
func (w *World) BlocksSight(loc hex.Location) bool {
	return w.Terrain(loc).BlocksSight()
}

// IsWall reports whether loc is part of a wall.
func (w *World) IsWall(loc hex.Location) bool {
	return w.Terrain(loc).IsWall()
}

// FindOpen returns the nearest walkable, unoccupied location within radius
// steps of center.
func (w *World) FindOpen(center hex.Location, radius int) (hex.Location, bool) {
	for r := 0; r <= radius; r++ {
		for _, loc := range center.Ring(r) {
			if w.IsOpen(loc) && len(w.index.EntitiesAt(loc)) == 0 {
				return loc, true
			}
		}
	}
	return hex.Location{}, false
}

// Exits returns the known exit locations on layer z, sorted by position.
func (w *World) Exits(z int) []hex.Location {
	var out []hex.Location
	for loc := range w.exits {
		if loc.Z == z {
			out = append(out, loc)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}
		return out[i].X < out[j].X
	})
	return out
}

// Tick returns the number of completed turns.
func (w *World) Tick() int {
	return w.tick
}

// NextTick ends the turn and refreshes the view of every sighted entity.
func (w *World) NextTick() {
	for _, e := range w.memory.Entities() {
		w.DoFOV(e)
	}
	w.tick++
}
