package gamedata

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// TerrainColorDef defines the display colors of one terrain type.
type TerrainColorDef struct {
	Name       string `yaml:"name"`       // Terrain name (e.g., "wall")
	Seen       string `yaml:"seen"`       // Hex color while in view
	Remembered string `yaml:"remembered"` // Hex color while only remembered
}

// PaletteFile represents the structure of terrain.yaml.
type PaletteFile struct {
	Terrain []TerrainColorDef `yaml:"terrain"`
}

type colorPair struct {
	seen, remembered tcell.Color
}

// Palette maps terrain names to display colors.
type Palette struct {
	colors map[string]colorPair
}

// NewPalette parses the color definitions into a palette.
func NewPalette(defs []TerrainColorDef) (*Palette, error) {
	p := &Palette{colors: make(map[string]colorPair, len(defs))}
	for _, def := range defs {
		seen, err := parseColor(def.Seen)
		if err != nil {
			return nil, fmt.Errorf("terrain %q seen color: %w", def.Name, err)
		}
		remembered, err := parseColor(def.Remembered)
		if err != nil {
			return nil, fmt.Errorf("terrain %q remembered color: %w", def.Name, err)
		}
		p.colors[def.Name] = colorPair{seen: seen, remembered: remembered}
	}
	return p, nil
}

// parseColor reads a "#RRGGBB" color.
func parseColor(s string) (tcell.Color, error) {
	if len(s) != 7 || !strings.HasPrefix(s, "#") {
		return tcell.ColorDefault, fmt.Errorf("invalid color %q, want #RRGGBB", s)
	}
	c := tcell.GetColor(s)
	if c == tcell.ColorDefault {
		return tcell.ColorDefault, fmt.Errorf("invalid color %q", s)
	}
	return c, nil
}

// LoadPalette loads the terrain palette from the embedded terrain.yaml.
func LoadPalette() (*Palette, error) {
	file, err := Load[PaletteFile]("terrain.yaml")
	if err != nil {
		return nil, err
	}
	if len(file.Terrain) == 0 {
		return nil, errors.New("no terrain colors loaded from terrain.yaml")
	}
	return NewPalette(file.Terrain)
}

// MustLoadPalette loads the palette, panicking on error.
func MustLoadPalette() *Palette {
	p, err := LoadPalette()
	if err != nil {
		panic(err)
	}
	return p
}

// Seen returns the in-view color for a terrain name.
func (p *Palette) Seen(name string) tcell.Color {
	if c, ok := p.colors[name]; ok {
		return c.seen
	}
	return tcell.ColorWhite
}

// Remembered returns the map-memory color for a terrain name.
func (p *Palette) Remembered(name string) tcell.Color {
	if c, ok := p.colors[name]; ok {
		return c.remembered
	}
	return tcell.ColorGray
}

// Count returns the number of terrain entries in the palette.
func (p *Palette) Count() int {
	return len(p.colors)
}

// Has reports whether the palette defines colors for a terrain name.
func (p *Palette) Has(name string) bool {
	_, ok := p.colors[name]
	return ok
}
