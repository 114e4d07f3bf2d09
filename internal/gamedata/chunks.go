package gamedata

import "errors"

// ChunkDef is a hand-authored map chunk loaded from YAML.
type ChunkDef struct {
	Name  string `yaml:"name"`  // Unique template name (e.g., "crypt")
	Biome string `yaml:"biome"` // "overland", "dungeon" or "anywhere"
	Depth int    `yaml:"depth"` // Shallowest layer the chunk may appear on
	Map   string `yaml:"map"`   // ASCII cells, one row per line
}

// ChunksFile represents the structure of chunks.yaml.
type ChunksFile struct {
	Chunks []ChunkDef `yaml:"chunks"`
}

// LoadChunks loads chunk templates from the embedded chunks.yaml file.
func LoadChunks() ([]ChunkDef, error) {
	file, err := Load[ChunksFile]("chunks.yaml")
	if err != nil {
		return nil, err
	}
	if len(file.Chunks) == 0 {
		return nil, errors.New("no chunks loaded from chunks.yaml")
	}
	return file.Chunks, nil
}

// MustLoadChunks loads chunk templates, panicking on error.
func MustLoadChunks() []ChunkDef {
	chunks, err := LoadChunks()
	if err != nil {
		panic(err)
	}
	return chunks
}
