package geomorph

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/hexcrawl/internal/gamedata"
	"github.com/samdwyer/hexcrawl/internal/telemetry"
)

// Registry holds every loaded chunk. It is built once and only read after
// that, so it may be shared freely between goroutines.
type Registry struct {
	chunks []*Chunk
	byName map[string]*Chunk
}

// NewRegistry parses and verifies every definition. Any invalid template
// fails the whole load.
func NewRegistry(defs []gamedata.ChunkDef) (*Registry, error) {
	if len(defs) == 0 {
		return nil, errors.New("no chunk definitions")
	}

	r := &Registry{
		chunks: make([]*Chunk, 0, len(defs)),
		byName: make(map[string]*Chunk, len(defs)),
	}
	for _, def := range defs {
		biome, err := ParseBiome(def.Biome)
		if err != nil {
			return nil, fmt.Errorf("chunk %q: %w", def.Name, err)
		}
		if _, dup := r.byName[def.Name]; dup {
			return nil, fmt.Errorf("duplicate chunk name %q", def.Name)
		}
		c, err := Parse(def.Name, NewAreaSpec(biome, def.Depth), def.Map)
		if err != nil {
			return nil, err
		}
		r.chunks = append(r.chunks, c)
		r.byName[c.Name] = c
	}
	return r, nil
}

// MustNewRegistry is like NewRegistry but panics on error.
func MustNewRegistry(defs []gamedata.ChunkDef) *Registry {
	r, err := NewRegistry(defs)
	if err != nil {
		panic(err)
	}
	return r
}

// LoadRegistry builds a registry from the embedded chunk data.
func LoadRegistry(ctx context.Context, log logrus.FieldLogger) (*Registry, error) {
	tracer := telemetry.Tracer("geomorph")
	_, span := tracer.Start(ctx, "geomorph.load")
	defer span.End()

	defs, err := gamedata.LoadChunks()
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	r, err := NewRegistry(defs)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	connected := 0
	for _, c := range r.chunks {
		if c.Connected {
			connected++
		}
	}
	span.SetAttributes(
		attribute.Int("geomorph.chunk_count", r.Count()),
		attribute.Int("geomorph.connected_count", connected),
	)
	log.WithFields(logrus.Fields{
		"chunks":    r.Count(),
		"connected": connected,
	}).Debug("chunk registry loaded")
	return r, nil
}

// MustLoadRegistry is like LoadRegistry but panics on error.
func MustLoadRegistry(ctx context.Context, log logrus.FieldLogger) *Registry {
	r, err := LoadRegistry(ctx, log)
	if err != nil {
		panic(err)
	}
	return r
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the registry of embedded chunks, loading it on first use.
// It panics if the embedded data is invalid.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = MustLoadRegistry(context.Background(), logrus.StandardLogger())
	})
	return defaultRegistry
}

// All returns every chunk in load order.
func (r *Registry) All() []*Chunk {
	out := make([]*Chunk, len(r.chunks))
	copy(out, r.chunks)
	return out
}

// Count returns the number of chunks.
func (r *Registry) Count() int {
	return len(r.chunks)
}

// Get returns the chunk with the given name.
func (r *Registry) Get(name string) (*Chunk, bool) {
	c, ok := r.byName[name]
	return c, ok
}

// Matching returns the chunks that may appear in the environment.
func (r *Registry) Matching(env AreaSpec) []*Chunk {
	var out []*Chunk
	for _, c := range r.chunks {
		if c.Spec.CanHatch(env) {
			out = append(out, c)
		}
	}
	return out
}

// Exits returns the chunks that contain a way off the layer.
func (r *Registry) Exits() []*Chunk {
	var out []*Chunk
	for _, c := range r.chunks {
		if c.Exit {
			out = append(out, c)
		}
	}
	return out
}
