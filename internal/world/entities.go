package world

import (
	"github.com/samdwyer/hexcrawl/internal/ecs"
	"github.com/samdwyer/hexcrawl/internal/hex"
	"github.com/samdwyer/hexcrawl/internal/spatial"
)

// Spawn creates a new entity at loc.
func (w *World) Spawn(loc hex.Location) ecs.Entity {
	e := ecs.NewEntity()
	w.index.InsertAt(e, loc)
	return e
}

// Location returns where e is on the map, looking through containers.
func (w *World) Location(e ecs.Entity) (hex.Location, bool) {
	return w.index.Location(e)
}

// EntitiesAt returns the entities standing at loc.
func (w *World) EntitiesAt(loc hex.Location) []ecs.Entity {
	return w.index.EntitiesAt(loc)
}

// EntitiesIn returns the entities carried by parent.
func (w *World) EntitiesIn(parent ecs.Entity) []ecs.Entity {
	return w.index.EntitiesIn(parent)
}

// EntityEquipped returns the entity in parent's slot.
func (w *World) EntityEquipped(parent ecs.Entity, slot spatial.Slot) (ecs.Entity, bool) {
	return w.index.EntityEquipped(parent, slot)
}

// EntityContains reports whether child is inside parent at any depth.
func (w *World) EntityContains(parent, child ecs.Entity) bool {
	return w.index.Contains(parent, child)
}

// SetEntityLocation moves e to loc.
func (w *World) SetEntityLocation(e ecs.Entity, loc hex.Location) {
	w.index.InsertAt(e, loc)
}

// EquipItem puts item in parent's slot.
func (w *World) EquipItem(item, parent ecs.Entity, slot spatial.Slot) error {
	return w.index.Equip(item, parent, slot)
}

// KillEntity takes e off the map. Its components are kept.
func (w *World) KillEntity(e ecs.Entity) {
	w.index.Remove(e)
}

// RemoveEntity deletes e and all its components.
func (w *World) RemoveEntity(e ecs.Entity) {
	w.index.Remove(e)
	w.memory.Remove(e)
}

// Step moves e one cell in direction d if the destination is walkable and
// reports whether it moved.
func (w *World) Step(e ecs.Entity, d hex.Dir6) bool {
	loc, ok := w.index.Get(e)
	if !ok {
		return false
	}
	from, ok := loc.Location()
	if !ok {
		return false
	}
	to := from.Step(d)
	if !w.IsOpen(to) {
		return false
	}
	w.index.InsertAt(e, to)
	return true
}
