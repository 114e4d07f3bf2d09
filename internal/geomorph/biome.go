// Package geomorph parses hand-authored map chunks and proves that each one is
// internally traversable before it is used to build the world.
package geomorph

import (
	"fmt"
	"strings"
)

// Biome is a bit set of environments a chunk belongs to.
type Biome uint8

const (
	Overland Biome = 0b1
	Dungeon  Biome = 0b10

	// Anywhere matches every biome.
	Anywhere Biome = 0b11111111
)

// ParseBiome converts a biome name to its value.
func ParseBiome(name string) (Biome, error) {
	switch strings.ToLower(name) {
	case "overland":
		return Overland, nil
	case "dungeon":
		return Dungeon, nil
	case "anywhere":
		return Anywhere, nil
	default:
		return 0, fmt.Errorf("unknown biome %q", name)
	}
}

// String returns the biome name.
func (b Biome) String() string {
	switch b {
	case Overland:
		return "overland"
	case Dungeon:
		return "dungeon"
	case Anywhere:
		return "anywhere"
	default:
		return fmt.Sprintf("biome(%#b)", uint8(b))
	}
}

// AreaSpec describes where a chunk may appear, or the environment being built.
type AreaSpec struct {
	Biome Biome
	Depth int
}

// NewAreaSpec creates an area spec.
func NewAreaSpec(biome Biome, depth int) AreaSpec {
	return AreaSpec{Biome: biome, Depth: depth}
}

// CanHatch reports whether something with this spec may appear in the given
// environment: it must not be deeper than the environment and must share at
// least one biome bit with it.
func (s AreaSpec) CanHatch(env AreaSpec) bool {
	return s.Depth >= 0 && s.Depth <= env.Depth && s.Biome&env.Biome != 0
}
