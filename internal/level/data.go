// internal/level/data.go
package level

import (
	"go-grid-defense/internal/defs"
	"go-grid-defense/pkg/gridmap"
)

// Data is the on-disk description of a level.
type Data struct {
	Metadata   Metadata           `json:"metadata" yaml:"metadata"`
	Dimensions gridmap.Dimensions `json:"dimensions" yaml:"dimensions"`
	Terrain    Terrain            `json:"terrain" yaml:"terrain"`
	Paths      Paths              `json:"paths" yaml:"paths"`
	Waves      []defs.WaveData    `json:"waves" yaml:"waves"`
}

type Metadata struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
}

// Terrain holds the (Height+1) x (Width+1) vertex heights and ground styling.
type Terrain struct {
	Heightmap [][]float64 `json:"heightmap" yaml:"heightmap"`
	Ground    Ground      `json:"ground" yaml:"ground"`
}

type Ground struct {
	Pattern string       `json:"pattern" yaml:"pattern"`
	Colors  GroundColors `json:"colors" yaml:"colors"`
}

// GroundColors are "#rrggbb" strings.
type GroundColors struct {
	Primary   string `json:"primary" yaml:"primary"`
	Secondary string `json:"secondary" yaml:"secondary"`
}

type Paths struct {
	Color string             `json:"color" yaml:"color"`
	Nodes []gridmap.PathNode `json:"nodes" yaml:"nodes"`
}
