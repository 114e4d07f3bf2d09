package spatial

import (
	"errors"

	"github.com/samdwyer/hexcrawl/internal/ecs"
	"github.com/samdwyer/hexcrawl/internal/hex"
)

var (
	// ErrSelfContainment is returned when an entity would be put inside itself.
	ErrSelfContainment = errors.New("entity cannot contain itself")
	// ErrContainmentCycle is returned when an entity would be put inside
	// something it already contains.
	ErrContainmentCycle = errors.New("containment cycle")
	// ErrSlotOccupied is returned when the slot already holds another entity.
	ErrSlotOccupied = errors.New("slot occupied")
)

// Index maps each entity to at most one Place and keeps reverse lookups by
// location and by container. Containment is kept acyclic.
type Index struct {
	places   map[ecs.Entity]Place
	at       map[hex.Location]map[ecs.Entity]struct{}
	contents map[ecs.Entity]map[Slot]ecs.Entity
}

// NewIndex creates an empty index.
func NewIndex() *Index {
	return &Index{
		places:   make(map[ecs.Entity]Place),
		at:       make(map[hex.Location]map[ecs.Entity]struct{}),
		contents: make(map[ecs.Entity]map[Slot]ecs.Entity),
	}
}

// InsertAt places e at loc, replacing any earlier placement.
func (idx *Index) InsertAt(e ecs.Entity, loc hex.Location) {
	idx.Remove(e)
	idx.places[e] = At(loc)
	set, ok := idx.at[loc]
	if !ok {
		set = make(map[ecs.Entity]struct{})
		idx.at[loc] = set
	}
	set[e] = struct{}{}
}

// Equip places e in parent's slot, replacing any earlier placement of e.
// The placement is refused if it would make e contain itself.
func (idx *Index) Equip(e, parent ecs.Entity, slot Slot) error {
	if e == parent {
		return ErrSelfContainment
	}
	if idx.Contains(e, parent) {
		return ErrContainmentCycle
	}
	if prev, ok := idx.EntityEquipped(parent, slot); ok && prev != e {
		return ErrSlotOccupied
	}

	idx.Remove(e)
	idx.places[e] = In(parent, slot)
	slots, ok := idx.contents[parent]
	if !ok {
		slots = make(map[Slot]ecs.Entity)
		idx.contents[parent] = slots
	}
	slots[slot] = e
	return nil
}

// Remove deletes e's placement. Entities inside e stay inside it.
func (idx *Index) Remove(e ecs.Entity) {
	p, ok := idx.places[e]
	if !ok {
		return
	}
	delete(idx.places, e)

	if loc, ok := p.Location(); ok {
		set := idx.at[loc]
		delete(set, e)
		if len(set) == 0 {
			delete(idx.at, loc)
		}
		return
	}
	parent, slot, _ := p.Container()
	slots := idx.contents[parent]
	delete(slots, slot)
	if len(slots) == 0 {
		delete(idx.contents, parent)
	}
}

// Get returns e's direct placement.
func (idx *Index) Get(e ecs.Entity) (Place, bool) {
	p, ok := idx.places[e]
	return p, ok
}

// EntitiesAt returns the entities placed directly at loc, in no particular
// order.
func (idx *Index) EntitiesAt(loc hex.Location) []ecs.Entity {
	set := idx.at[loc]
	out := make([]ecs.Entity, 0, len(set))
	for e := range set {
		out = append(out, e)
	}
	return out
}

// EntitiesIn returns the entities directly inside parent, in any slot.
func (idx *Index) EntitiesIn(parent ecs.Entity) []ecs.Entity {
	slots := idx.contents[parent]
	out := make([]ecs.Entity, 0, len(slots))
	for _, e := range slots {
		out = append(out, e)
	}
	return out
}

// EntityEquipped returns the entity in parent's slot.
func (idx *Index) EntityEquipped(parent ecs.Entity, slot Slot) (ecs.Entity, bool) {
	e, ok := idx.contents[parent][slot]
	return e, ok
}

// Contains reports whether child is inside parent, directly or through
// intermediate containers.
func (idx *Index) Contains(parent, child ecs.Entity) bool {
	p, ok := idx.places[child]
	for ok {
		holder, _, in := p.Container()
		if !in {
			return false
		}
		if holder == parent {
			return true
		}
		p, ok = idx.places[holder]
	}
	return false
}

// Location resolves e's map location, following containers outward.
func (idx *Index) Location(e ecs.Entity) (hex.Location, bool) {
	p, ok := idx.places[e]
	for ok {
		if loc, at := p.Location(); at {
			return loc, true
		}
		parent, _, _ := p.Container()
		p, ok = idx.places[parent]
	}
	return hex.Location{}, false
}

// Len returns the number of placed entities.
func (idx *Index) Len() int {
	return len(idx.places)
}
