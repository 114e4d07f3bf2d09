// Package ecs provides entity identifiers and typed component storage.
package ecs

import "github.com/google/uuid"

// Entity identifies a game object. The zero value is no entity.
type Entity uuid.UUID

// Nil is the zero entity.
var Nil Entity

// NewEntity returns a fresh entity.
func NewEntity() Entity {
	return Entity(uuid.New())
}

// IsNil reports whether e is the zero entity.
func (e Entity) IsNil() bool {
	return e == Nil
}

func (e Entity) String() string {
	return uuid.UUID(e).String()
}

// Store holds one component type keyed by entity.
type Store[T any] struct {
	items map[Entity]*T
}

// NewStore creates an empty store.
func NewStore[T any]() *Store[T] {
	return &Store[T]{items: make(map[Entity]*T)}
}

// Insert sets the component for e, replacing any existing one.
func (s *Store[T]) Insert(e Entity, value T) {
	s.items[e] = &value
}

// Get returns a copy of the component for e.
func (s *Store[T]) Get(e Entity) (T, bool) {
	if p, ok := s.items[e]; ok {
		return *p, true
	}
	var zero T
	return zero, false
}

// GetMut returns the stored component for e for in-place modification.
func (s *Store[T]) GetMut(e Entity) (*T, bool) {
	p, ok := s.items[e]
	return p, ok
}

// Contains reports whether e has a component in the store.
func (s *Store[T]) Contains(e Entity) bool {
	_, ok := s.items[e]
	return ok
}

// Remove deletes the component for e.
func (s *Store[T]) Remove(e Entity) {
	delete(s.items, e)
}

// Len returns the number of stored components.
func (s *Store[T]) Len() int {
	return len(s.items)
}

// Entities returns the entities that have a component, in no particular order.
func (s *Store[T]) Entities() []Entity {
	out := make([]Entity, 0, len(s.items))
	for e := range s.items {
		out = append(out, e)
	}
	return out
}
