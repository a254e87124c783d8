// pkg/gridmap/types.go
package gridmap

import (
	"fmt"
	"strings"
)

// CellType classifies a single grid cell.
type CellType uint8

const (
	Empty   CellType = iota // buildable ground
	Path                    // part of an enemy path
	Spawn                   // enemy spawn point
	End                     // enemy exit point
	Blocked                 // terrain that nothing may use
)

func (t CellType) String() string {
	switch t {
	case Empty:
		return "EMPTY"
	case Path:
		return "PATH"
	case Spawn:
		return "SPAWN"
	case End:
		return "END"
	case Blocked:
		return "BLOCKED"
	}
	return fmt.Sprintf("CellType(%d)", uint8(t))
}

// IsPath reports whether agents may stand on the cell.
func (t CellType) IsPath() bool {
	return t == Path || t == Spawn || t == End
}

// ParseCellType maps the node type used in level files to a CellType.
// An empty string is a plain path node.
func ParseCellType(s string) (CellType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "path":
		return Path, nil
	case "spawn":
		return Spawn, nil
	case "end", "exit":
		return End, nil
	case "blocked":
		return Blocked, nil
	case "empty":
		return Empty, nil
	}
	return Blocked, fmt.Errorf("unknown cell type %q", s)
}

// Dimensions is the size of the grid in cells.
type Dimensions struct {
	Width  int `json:"width" yaml:"width"`
	Height int `json:"height" yaml:"height"`
}

// Point is an integer cell coordinate.
type Point struct {
	X, Z int
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Z)
}

// Add returns the neighbour of p in direction d.
func (p Point) Add(d Direction) Point {
	dx, dz := d.Offset()
	return Point{X: p.X + dx, Z: p.Z + dz}
}

// Cell is one grid cell. Occupant is a weak reference: the grid never owns
// the placed entity, the entity registry does.
type Cell struct {
	Type     CellType
	Occupant any
}

// PathNode is a level-authored path annotation for one cell.
// Directions lists the four compass exits as 0/1 flags in N, E, S, W order.
type PathNode struct {
	X          int    `json:"x" yaml:"x"`
	Z          int    `json:"z" yaml:"z"`
	Directions []int  `json:"directions" yaml:"directions"`
	Type       string `json:"type,omitempty" yaml:"type,omitempty"`
	ID         string `json:"id,omitempty" yaml:"id,omitempty"`
}

// Config holds the world scale of a grid.
type Config struct {
	TileSize    float64
	HeightScale float64
}
