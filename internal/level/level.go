// internal/level/level.go
package level

import (
	"errors"
	"fmt"
	"log"

	"go-grid-defense/internal/defs"
	"go-grid-defense/pkg/gridmap"
)

// ErrNoLevel is the panic value for board queries made before a level exists.
var ErrNoLevel = errors.New("level is not loaded")

// Level is a loaded level: its data and the terrain grid built from it.
type Level struct {
	data *Data
	grid *gridmap.Grid
}

// New builds the terrain grid for data.
func New(data *Data, cfg gridmap.Config) (*Level, error) {
	if data == nil {
		return nil, ErrNoLevel
	}
	grid, err := gridmap.New(data.Dimensions, data.Terrain.Heightmap, data.Paths.Nodes, cfg)
	if err != nil {
		return nil, fmt.Errorf("building level %q: %w", data.Metadata.ID, err)
	}
	log.Printf("Level %q loaded: %dx%d, %d path nodes, %d waves",
		data.Metadata.Name, data.Dimensions.Width, data.Dimensions.Height, len(data.Paths.Nodes), len(data.Waves))
	return &Level{data: data, grid: grid}, nil
}

func (l *Level) Grid() *gridmap.Grid    { return l.grid }
func (l *Level) Data() *Data            { return l.data }
func (l *Level) Waves() []defs.WaveData { return l.data.Waves }

func (l *Level) mustGrid() *gridmap.Grid {
	if l == nil || l.grid == nil {
		panic(ErrNoLevel)
	}
	return l.grid
}

// BoardCenter is the middle of the board. It panics without a level.
func (l *Level) BoardCenter() gridmap.Vec3 {
	return l.mustGrid().Center()
}

// BoardSize is the longer board side in world units. It panics without a level.
func (l *Level) BoardSize() float64 {
	return l.mustGrid().Size()
}
