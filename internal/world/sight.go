package world

import (
	"github.com/samdwyer/hexcrawl/internal/ecs"
	"github.com/samdwyer/hexcrawl/internal/fov"
	"github.com/samdwyer/hexcrawl/internal/hex"
)

// MapMemory is what an entity sees now and what it has seen before.
type MapMemory struct {
	Seen       map[hex.Location]bool
	Remembered map[hex.Location]bool
}

// NewMapMemory returns an empty memory.
func NewMapMemory() MapMemory {
	return MapMemory{
		Seen:       make(map[hex.Location]bool),
		Remembered: make(map[hex.Location]bool),
	}
}

// FovStatus is how an entity knows a location.
type FovStatus int

const (
	Unknown FovStatus = iota
	Remembered
	Seen
)

func (s FovStatus) String() string {
	switch s {
	case Seen:
		return "seen"
	case Remembered:
		return "remembered"
	default:
		return "unknown"
	}
}

// GiveSight lets e see. Its memory starts empty.
func (w *World) GiveSight(e ecs.Entity) {
	w.memory.Insert(e, NewMapMemory())
}

// HasSight reports whether e can see.
func (w *World) HasSight(e ecs.Entity) bool {
	return w.memory.Contains(e)
}

// SightRange returns how far an entity standing at loc can see.
func (w *World) SightRange(loc hex.Location) int {
	if loc.Z == 0 {
		return hex.SectorWidth
	}
	return w.dungeonSight
}

// DoFOV recomputes what e sees. The seen set is replaced. Newly seen cells
// in e's current sector are added to the remembered set, which never
// shrinks.
func (w *World) DoFOV(e ecs.Entity) {
	mem, ok := w.memory.GetMut(e)
	if !ok {
		return
	}
	mem.Seen = make(map[hex.Location]bool)

	origin, ok := w.index.Location(e)
	if !ok {
		return
	}
	sector := origin.Sector()
	for loc := range fov.Compute(w, origin, w.SightRange(origin)) {
		mem.Seen[loc] = true
		if loc.Sector() == sector {
			mem.Remembered[loc] = true
		}
	}
}

// FovStatus returns how e knows loc.
func (w *World) FovStatus(e ecs.Entity, loc hex.Location) FovStatus {
	mem, ok := w.memory.GetMut(e)
	switch {
	case !ok:
		return Unknown
	case mem.Seen[loc]:
		return Seen
	case mem.Remembered[loc]:
		return Remembered
	default:
		return Unknown
	}
}

// Memory returns e's map memory. The maps must not be modified.
func (w *World) Memory(e ecs.Entity) (MapMemory, bool) {
	return w.memory.Get(e)
}
