// Package spatial tracks where entities are: either on the map or inside
// another entity.
package spatial

import (
	"fmt"

	"github.com/samdwyer/hexcrawl/internal/ecs"
	"github.com/samdwyer/hexcrawl/internal/hex"
)

// Slot is a position inside a container entity.
type Slot int

const (
	Melee Slot = iota
	Ranged
	Head
	Body
	Feet
	Trinket

	bagBase Slot = 100
)

// Bag returns the nth inventory slot.
func Bag(n int) Slot {
	return bagBase + Slot(n)
}

// IsBag reports whether the slot holds carried rather than worn items.
func (s Slot) IsBag() bool {
	return s >= bagBase
}

func (s Slot) String() string {
	switch s {
	case Melee:
		return "melee"
	case Ranged:
		return "ranged"
	case Head:
		return "head"
	case Body:
		return "body"
	case Feet:
		return "feet"
	case Trinket:
		return "trinket"
	}
	if s.IsBag() {
		return fmt.Sprintf("bag %d", int(s-bagBase))
	}
	return fmt.Sprintf("slot(%d)", int(s))
}

// Place is where an entity is: At a map location or In a container.
type Place struct {
	in     bool
	loc    hex.Location
	parent ecs.Entity
	slot   Slot
}

// At places an entity on the map.
func At(loc hex.Location) Place {
	return Place{loc: loc}
}

// In places an entity in a container's slot.
func In(parent ecs.Entity, slot Slot) Place {
	return Place{in: true, parent: parent, slot: slot}
}

// Location returns the map location for an At place.
func (p Place) Location() (hex.Location, bool) {
	return p.loc, !p.in
}

// Container returns the parent and slot for an In place.
func (p Place) Container() (ecs.Entity, Slot, bool) {
	return p.parent, p.slot, p.in
}

func (p Place) String() string {
	if p.in {
		return fmt.Sprintf("in %v %v", p.parent, p.slot)
	}
	return fmt.Sprintf("at %v", p.loc)
}
