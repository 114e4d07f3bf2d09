package ecs

import "testing"

type health struct {
	hp int
}

func TestNewEntityUnique(t *testing.T) {
	seen := make(map[Entity]bool)
	for i := 0; i < 100; i++ {
		e := NewEntity()
		if e.IsNil() {
			t.Fatal("NewEntity returned the nil entity")
		}
		if seen[e] {
			t.Fatalf("duplicate entity %v", e)
		}
		seen[e] = true
	}
	if !Nil.IsNil() {
		t.Error("Nil.IsNil() = false")
	}
}

func TestStore(t *testing.T) {
	s := NewStore[health]()
	a, b := NewEntity(), NewEntity()

	s.Insert(a, health{hp: 10})
	if got, ok := s.Get(a); !ok || got.hp != 10 {
		t.Errorf("Get(a) = %v, %v", got, ok)
	}
	if _, ok := s.Get(b); ok {
		t.Error("Get(b) should not be found")
	}

	p, ok := s.GetMut(a)
	if !ok {
		t.Fatal("GetMut(a) not found")
	}
	p.hp -= 3
	if got, _ := s.Get(a); got.hp != 7 {
		t.Errorf("hp after GetMut = %d, want 7", got.hp)
	}

	// Get returns a copy.
	c, _ := s.Get(a)
	c.hp = 100
	if got, _ := s.Get(a); got.hp != 7 {
		t.Errorf("modifying Get result changed store: hp = %d", got.hp)
	}

	s.Insert(b, health{hp: 1})
	if s.Len() != 2 || len(s.Entities()) != 2 {
		t.Errorf("Len() = %d, Entities() = %d, want 2", s.Len(), len(s.Entities()))
	}

	s.Remove(a)
	if s.Contains(a) {
		t.Error("a still present after Remove")
	}
	if !s.Contains(b) {
		t.Error("b missing")
	}
}
