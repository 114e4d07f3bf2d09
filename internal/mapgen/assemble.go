package mapgen

import (
	"context"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/hexcrawl/internal/geomorph"
	"github.com/samdwyer/hexcrawl/internal/hex"
	"github.com/samdwyer/hexcrawl/internal/telemetry"
	"github.com/samdwyer/hexcrawl/internal/terrain"
)

// TerrainWriter receives assembled cells.
type TerrainWriter interface {
	SetTerrain(loc hex.Location, cell terrain.Cell)
}

// Assembler writes chosen chunks into terrain storage.
type Assembler struct {
	chooser Chooser
	log     logrus.FieldLogger
}

// NewAssembler creates an assembler drawing templates from chooser.
func NewAssembler(chooser Chooser, log logrus.FieldLogger) *Assembler {
	return &Assembler{
		chooser: chooser,
		log:     log.WithField("component", "mapgen"),
	}
}

// Place writes a template at chunk coordinate chunk on layer z, overwriting
// any existing cells, and returns the locations of exit cells it wrote.
func Place(dst TerrainWriter, z int, chunk hex.Vec, tmpl *geomorph.Chunk) []hex.Location {
	var exits []hex.Location
	for y := 0; y < geomorph.Height; y++ {
		for x := 0; x < geomorph.Width; x++ {
			cell, _ := tmpl.Cell(x, y)
			p := HerringboneMap(chunk, hex.Vec{X: x, Y: y})
			loc := hex.NewLocation(p.X, p.Y, z)
			dst.SetTerrain(loc, cell)
			if cell.IsExit() {
				exits = append(exits, loc)
			}
		}
	}
	return exits
}

// Chunk chooses a template for a chunk and writes it. It returns false when
// the chooser had nothing to offer.
func (a *Assembler) Chunk(dst TerrainWriter, z int, chunk hex.Vec) ([]hex.Location, bool) {
	tmpl := a.chooser.Choose(z, chunk)
	if tmpl == nil {
		a.log.WithFields(logrus.Fields{"z": z, "chunk": chunk}).Debug("no template for chunk")
		return nil, false
	}
	return Place(dst, z, chunk, tmpl), true
}

// Region assembles every chunk within radius chunk steps of center (a square
// in chunk-grid coordinates) and returns the exits written.
func (a *Assembler) Region(ctx context.Context, dst TerrainWriter, z int, center hex.Vec, radius int) []hex.Location {
	tracer := telemetry.Tracer("mapgen")
	_, span := tracer.Start(ctx, "mapgen.assemble")
	defer span.End()

	var exits []hex.Location
	placed := 0
	for cy := center.Y - radius; cy <= center.Y+radius; cy++ {
		for cx := center.X - radius; cx <= center.X+radius; cx++ {
			e, ok := a.Chunk(dst, z, hex.Vec{X: cx, Y: cy})
			if ok {
				placed++
				exits = append(exits, e...)
			}
		}
	}

	span.SetAttributes(
		attribute.Int("mapgen.z", z),
		attribute.Int("mapgen.radius", radius),
		attribute.Int("mapgen.chunk_count", placed),
		attribute.Int("mapgen.exit_count", len(exits)),
	)
	a.log.WithFields(logrus.Fields{
		"z":      z,
		"chunks": placed,
		"exits":  len(exits),
	}).Debug("region assembled")
	return exits
}
