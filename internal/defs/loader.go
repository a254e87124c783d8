// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
)

// libraryFile is the on-disk layout of a definitions file.
type libraryFile struct {
	Enemies []EnemyDefinition `json:"enemies"`
	Towers  []TowerDefinition `json:"towers"`
}

// LoadLibrary reads a definitions file and layers it over the built-in
// definitions. Entries with an existing ID replace the built-in one.
func LoadLibrary(path string) (*Library, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read definitions file: %w", err)
	}
	return ParseLibrary(file)
}

// ParseLibrary is LoadLibrary for data already in memory.
func ParseLibrary(data []byte) (*Library, error) {
	var raw libraryFile
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to unmarshal definitions: %w", err)
	}

	lib := DefaultLibrary()
	for i, def := range raw.Enemies {
		if def.ID == "" {
			return nil, fmt.Errorf("enemy definition %d has no id", i)
		}
		lib.Enemies[def.ID] = def
	}
	for i, def := range raw.Towers {
		if def.ID == "" {
			return nil, fmt.Errorf("tower definition %d has no id", i)
		}
		lib.Towers[def.ID] = def
	}

	log.Printf("Loaded %d enemy and %d tower definitions", len(lib.Enemies), len(lib.Towers))
	return lib, nil
}
