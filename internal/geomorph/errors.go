package geomorph

import (
	"errors"
	"fmt"

	"github.com/samdwyer/hexcrawl/internal/hex"
)

var (
	// ErrBadSize means the template is not exactly Width x Height glyphs.
	ErrBadSize = errors.New("bad chunk size")
	// ErrUnknownGlyph means the template uses a glyph missing from the legend.
	ErrUnknownGlyph = errors.New("unrecognized chunk glyph")
	// ErrRegionCount means the open cells do not form one or two regions.
	ErrRegionCount = errors.New("bad number of connected regions")
	// ErrMissingConnector means a region does not reach a required edge cell.
	ErrMissingConnector = errors.New("region missing connection")
)

// ChunkError describes a template that failed to load. Rule is one of the
// sentinel errors above; the remaining fields give the details relevant to it.
type ChunkError struct {
	Name string // Template name
	Text string // Full template source
	Rule error

	Glyph   rune    // ErrUnknownGlyph
	Pos     hex.Vec // ErrUnknownGlyph, ErrMissingConnector
	Rows    int     // ErrBadSize
	Regions int     // ErrRegionCount
	Region  string  // ErrMissingConnector: "top" or "bottom"
}

func (e *ChunkError) Error() string {
	var detail string
	switch e.Rule {
	case ErrUnknownGlyph:
		detail = fmt.Sprintf("%v %q at %v", e.Rule, e.Glyph, e.Pos)
	case ErrBadSize:
		detail = fmt.Sprintf("%v: %d rows, row %d is %d wide", e.Rule, e.Rows, e.Pos.Y, e.Pos.X)
	case ErrRegionCount:
		detail = fmt.Sprintf("%v: %d", e.Rule, e.Regions)
	case ErrMissingConnector:
		detail = fmt.Sprintf("%s %v to cell %v", e.Region, e.Rule, e.Pos)
	default:
		detail = fmt.Sprint(e.Rule)
	}
	return fmt.Sprintf("chunk %q: %s\n%s", e.Name, detail, e.Text)
}

func (e *ChunkError) Unwrap() error {
	return e.Rule
}
