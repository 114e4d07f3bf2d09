package mapgen

import (
	"encoding/binary"
	"math/rand"
	"time"

	"github.com/cespare/xxhash/v2"
	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/samdwyer/hexcrawl/internal/geomorph"
	"github.com/samdwyer/hexcrawl/internal/hex"
)

// Chooser picks the template for a chunk-grid coordinate on layer z. It
// returns nil when no template fits.
type Chooser interface {
	Choose(z int, chunk hex.Vec) *geomorph.Chunk
}

// Env returns the environment chunks on layer z are built for.
func Env(z int) geomorph.AreaSpec {
	if z == 0 {
		return geomorph.NewAreaSpec(geomorph.Overland, 0)
	}
	return geomorph.NewAreaSpec(geomorph.Dungeon, z)
}

const (
	// Noise sampling frequency per chunk step.
	noiseScale = 0.35
	// Chance of an exit chunk on dungeon layers.
	exitChance = 1.0 / 12
)

type candidates struct {
	connected []*geomorph.Chunk
	split     []*geomorph.Chunk
	exits     []*geomorph.Chunk
}

// SeededChooser picks templates from a registry using a stream seeded by the
// world seed and the chunk coordinate, so the result does not depend on the
// order chunks are requested in. Simplex noise makes split chunks more
// common in some regions than in others. It is not safe for concurrent use.
type SeededChooser struct {
	seed  int64
	noise opensimplex.Noise
	reg   *geomorph.Registry

	byLayer map[int]*candidates
}

// NewSeededChooser creates a chooser over the registry's templates.
func NewSeededChooser(seed int64, reg *geomorph.Registry) *SeededChooser {
	return &SeededChooser{
		seed:    seed,
		noise:   opensimplex.NewNormalized(seed),
		reg:     reg,
		byLayer: make(map[int]*candidates),
	}
}

// Seed returns the world seed.
func (c *SeededChooser) Seed() int64 {
	return c.seed
}

func (c *SeededChooser) layer(z int) *candidates {
	if cands, ok := c.byLayer[z]; ok {
		return cands
	}
	cands := &candidates{}
	for _, ch := range c.reg.Matching(Env(z)) {
		switch {
		case ch.Exit:
			cands.exits = append(cands.exits, ch)
		case ch.Connected:
			cands.connected = append(cands.connected, ch)
		default:
			cands.split = append(cands.split, ch)
		}
	}
	c.byLayer[z] = cands
	return cands
}

// Choose implements Chooser.
func (c *SeededChooser) Choose(z int, chunk hex.Vec) *geomorph.Chunk {
	cands := c.layer(z)
	rng := rand.New(rand.NewSource(ChunkSeed(c.seed, z, chunk)))

	if z > 0 && len(cands.exits) > 0 && rng.Float64() < exitChance {
		return cands.exits[rng.Intn(len(cands.exits))]
	}

	pool := cands.connected
	bias := c.noise.Eval3(float64(chunk.X)*noiseScale, float64(chunk.Y)*noiseScale, float64(z))
	if len(pool) == 0 || (len(cands.split) > 0 && rng.Float64() < bias) {
		pool = cands.split
	}
	if len(pool) == 0 {
		pool = cands.exits
	}
	if len(pool) == 0 {
		return nil
	}
	return pool[rng.Intn(len(pool))]
}

// ChunkSeed hashes the world seed with a chunk's layer and coordinate.
func ChunkSeed(seed int64, z int, chunk hex.Vec) int64 {
	var buf [32]byte
	binary.LittleEndian.PutUint64(buf[0:], uint64(seed))
	binary.LittleEndian.PutUint64(buf[8:], uint64(int64(z)))
	binary.LittleEndian.PutUint64(buf[16:], uint64(int64(chunk.X)))
	binary.LittleEndian.PutUint64(buf[24:], uint64(int64(chunk.Y)))
	return int64(xxhash.Sum64(buf[:]))
}

// NewRand returns a deterministic random stream. A zero seed selects a
// time-based one.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// RandomChooser picks uniformly from a fixed template list using a shared
// stream. The map it produces depends on the order chunks are requested in.
type RandomChooser struct {
	rng    *rand.Rand
	chunks []*geomorph.Chunk
}

// NewRandomChooser creates a chooser over the given templates.
func NewRandomChooser(rng *rand.Rand, chunks []*geomorph.Chunk) *RandomChooser {
	return &RandomChooser{rng: rng, chunks: chunks}
}

// Choose implements Chooser.
func (c *RandomChooser) Choose(int, hex.Vec) *geomorph.Chunk {
	if len(c.chunks) == 0 {
		return nil
	}
	return c.chunks[c.rng.Intn(len(c.chunks))]
}
