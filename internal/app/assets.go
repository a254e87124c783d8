// internal/app/assets.go
package app

import (
	"errors"
	"fmt"
	"log"

	"go-grid-defense/internal/config"
	"go-grid-defense/internal/defs"
	"go-grid-defense/internal/level"
	"go-grid-defense/pkg/gridmap"
)

// ErrInvalidLevel is returned when a level has validation errors.
var ErrInvalidLevel = errors.New("invalid level")

// GridConfig is the world scale every level is built with.
func GridConfig() gridmap.Config {
	return gridmap.Config{TileSize: config.TileSize, HeightScale: config.HeightScale}
}

// LoadAssets reads a level file and a definitions file. Empty paths select
// the built-in level and definitions. Validation warnings are logged;
// errors abort the load.
func LoadAssets(levelPath, defsPath string) (*level.Level, *defs.Library, error) {
	lib := defs.DefaultLibrary()
	if defsPath != "" {
		loaded, err := defs.LoadLibrary(defsPath)
		if err != nil {
			return nil, nil, err
		}
		lib = loaded
	}

	data := level.Default()
	if levelPath != "" {
		loaded, err := level.Load(levelPath)
		if err != nil {
			return nil, nil, err
		}
		data = loaded
	}

	issues := level.Validate(data, func(kind string) bool {
		_, ok := lib.Enemies[kind]
		return ok
	})
	for _, i := range issues {
		log.Printf("Level %s: %s", data.Metadata.ID, i)
	}
	if gridmap.HasErrors(issues) {
		return nil, nil, fmt.Errorf("level %q: %w", data.Metadata.ID, ErrInvalidLevel)
	}

	lvl, err := level.New(data, GridConfig())
	if err != nil {
		return nil, nil, err
	}
	return lvl, lib, nil
}
