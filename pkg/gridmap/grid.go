// pkg/gridmap/grid.go
package gridmap

import (
	"errors"
	"fmt"
	"math"
)

// Grid is the single source of truth for cell classification, occupancy and
// elevation. Out-of-range queries never fail: they return a safe default.
type Grid struct {
	dims      Dimensions
	cfg       Config
	cells     []Cell          // row-major, z*Width + x
	dirs      []DirectionMask // parallel to cells
	heights   [][]float64     // (Height+1) x (Width+1) lattice, unscaled
	spawns    []spawnPoint    // declaration order
	hasHeight bool
}

type spawnPoint struct {
	id string
	at Point
}

// New builds a grid from a height matrix and the level's path declarations.
// Path topology is fixed after this call.
func New(dims Dimensions, heightmap [][]float64, nodes []PathNode, cfg Config) (*Grid, error) {
	if dims.Width <= 0 || dims.Height <= 0 {
		return nil, fmt.Errorf("invalid grid dimensions %dx%d", dims.Width, dims.Height)
	}
	if cfg.TileSize <= 0 {
		return nil, errors.New("tile size must be positive")
	}

	g := &Grid{
		dims:    dims,
		cfg:     cfg,
		cells:   make([]Cell, dims.Width*dims.Height),
		dirs:    make([]DirectionMask, dims.Width*dims.Height),
		heights: heightmap,
	}
	for _, row := range heightmap {
		if len(row) > 0 {
			g.hasHeight = true
			break
		}
	}

	for i, n := range nodes {
		if !g.InBounds(n.X, n.Z) {
			return nil, fmt.Errorf("path node %d at (%d,%d) is outside the %dx%d grid", i, n.X, n.Z, dims.Width, dims.Height)
		}
		t, err := ParseCellType(n.Type)
		if err != nil {
			return nil, fmt.Errorf("path node %d: %w", i, err)
		}
		idx := g.index(n.X, n.Z)
		g.cells[idx].Type = t
		if t.IsPath() {
			g.dirs[idx] = MaskFromSlice(n.Directions)
		}
		if t == Spawn {
			g.spawns = append(g.spawns, spawnPoint{id: n.ID, at: Point{n.X, n.Z}})
		}
	}

	return g, nil
}

func (g *Grid) index(x, z int) int {
	return z*g.dims.Width + x
}

// InBounds reports whether (x, z) names a cell of this grid.
func (g *Grid) InBounds(x, z int) bool {
	return x >= 0 && x < g.dims.Width && z >= 0 && z < g.dims.Height
}

// Dimensions returns a copy of the grid size.
func (g *Grid) Dimensions() Dimensions {
	return g.dims
}

// Config returns the world scale of the grid.
func (g *Grid) Config() Config {
	return g.cfg
}

// CellType returns Blocked for any out-of-range coordinate.
func (g *Grid) CellType(x, z int) CellType {
	if !g.InBounds(x, z) {
		return Blocked
	}
	return g.cells[g.index(x, z)].Type
}

// SetCellType is meant for level initialisation only.
func (g *Grid) SetCellType(x, z int, t CellType) bool {
	if !g.InBounds(x, z) {
		return false
	}
	idx := g.index(x, z)
	g.cells[idx].Type = t
	if !t.IsPath() {
		g.dirs[idx] = 0
	}
	return true
}

// Occupant returns the entity placed in the cell, or nil.
func (g *Grid) Occupant(x, z int) any {
	if !g.InBounds(x, z) {
		return nil
	}
	return g.cells[g.index(x, z)].Occupant
}

// SetEntity writes or clears (nil) the occupant of a cell. It does not check
// CanPlaceEntity; callers must do that first.
func (g *Grid) SetEntity(x, z int, occupant any) bool {
	if !g.InBounds(x, z) {
		return false
	}
	g.cells[g.index(x, z)].Occupant = occupant
	return true
}

// CanPlaceEntity is true only for in-range, EMPTY, unoccupied cells.
func (g *Grid) CanPlaceEntity(x, z int) bool {
	if !g.InBounds(x, z) {
		return false
	}
	c := g.cells[g.index(x, z)]
	return c.Type == Empty && c.Occupant == nil
}

// PathDirections returns the exits recorded for a path, spawn or end cell.
// Every other cell, including out-of-range ones, has no exits.
func (g *Grid) PathDirections(x, z int) DirectionMask {
	if !g.InBounds(x, z) {
		return 0
	}
	idx := g.index(x, z)
	if !g.cells[idx].Type.IsPath() {
		return 0
	}
	return g.dirs[idx]
}

// SpawnPoint resolves a spawn id to the first SPAWN node declared with it.
func (g *Grid) SpawnPoint(id string) (Point, bool) {
	for _, s := range g.spawns {
		if s.id == id && g.CellType(s.at.X, s.at.Z) == Spawn {
			return s.at, true
		}
	}
	return Point{}, false
}

// SpawnIDs lists spawn ids in declaration order.
func (g *Grid) SpawnIDs() []string {
	ids := make([]string, 0, len(g.spawns))
	for _, s := range g.spawns {
		ids = append(ids, s.id)
	}
	return ids
}

// ForEachCell visits cells row by row.
func (g *Grid) ForEachCell(fn func(x, z int, c Cell)) {
	for z := 0; z < g.dims.Height; z++ {
		for x := 0; x < g.dims.Width; x++ {
			fn(x, z, g.cells[g.index(x, z)])
		}
	}
}

// Center is the middle of the board at ground level.
func (g *Grid) Center() Vec3 {
	return Vec3{
		X: float64(g.dims.Width) * g.cfg.TileSize / 2,
		Z: float64(g.dims.Height) * g.cfg.TileSize / 2,
	}
}

// Size is the larger board side in world units.
func (g *Grid) Size() float64 {
	return math.Max(float64(g.dims.Width), float64(g.dims.Height)) * g.cfg.TileSize
}
