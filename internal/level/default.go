// internal/level/default.go
package level

import (
	"math"

	"go-grid-defense/internal/config"
	"go-grid-defense/internal/defs"
	"go-grid-defense/pkg/gridmap"
)

// serpentine corners of the built-in level, from spawn to exit.
var defaultRoute = []gridmap.Point{
	{X: 0, Z: 2},
	{X: 17, Z: 2},
	{X: 17, Z: 7},
	{X: 2, Z: 7},
	{X: 2, Z: 12},
	{X: 17, Z: 12},
	{X: 17, Z: 17},
	{X: 19, Z: 17},
}

// Default returns the built-in zig-zag level used when no file is given.
func Default() *Data {
	size := config.BoardSize
	return &Data{
		Metadata: Metadata{
			ID:          "meadow",
			Name:        "Meadow",
			Description: "A single winding road across a gentle meadow.",
		},
		Dimensions: gridmap.Dimensions{Width: size, Height: size},
		Terrain: Terrain{
			Heightmap: rollingHills(size, size),
			Ground: Ground{
				Pattern: "checker",
				Colors:  GroundColors{Primary: "#f4d03f", Secondary: "#d4ac0d"},
			},
		},
		Paths: Paths{
			Color: "#966e46",
			Nodes: RouteNodes("A", defaultRoute),
		},
		Waves: []defs.WaveData{
			{ID: "wave_1", Name: "Scouts", Spawns: []defs.SpawnGroup{
				{PathID: "A", Enemies: []defs.EnemyCount{{Type: "cube", Count: 5}}},
			}},
			{ID: "wave_2", Name: "Column", Spawns: []defs.SpawnGroup{
				{PathID: "A", Enemies: []defs.EnemyCount{{Type: "cube", Count: 8}, {Type: "boss_cube", Count: 1}}},
			}},
			{ID: "wave_3", Name: "Siege", Spawns: []defs.SpawnGroup{
				{PathID: "A", Enemies: []defs.EnemyCount{{Type: "cube", Count: 10}, {Type: "boss_cube", Count: 3}}},
			}},
		},
	}
}

// RouteNodes lays a single path through axis-aligned corners. The first cell
// is a spawn with the given id and the last one is the exit.
func RouteNodes(spawnID string, corners []gridmap.Point) []gridmap.PathNode {
	var cells []gridmap.Point
	for i, c := range corners {
		if i == 0 {
			cells = append(cells, c)
			continue
		}
		prev := corners[i-1]
		dx, dz := sign(c.X-prev.X), sign(c.Z-prev.Z)
		for p := prev; p != c; {
			p = gridmap.Point{X: p.X + dx, Z: p.Z + dz}
			cells = append(cells, p)
		}
	}

	nodes := make([]gridmap.PathNode, 0, len(cells))
	for i, c := range cells {
		node := gridmap.PathNode{X: c.X, Z: c.Z, Directions: []int{0, 0, 0, 0}}
		if i+1 < len(cells) {
			next := cells[i+1]
			for _, d := range gridmap.AllDirections {
				if c.Add(d) == next {
					node.Directions[d] = 1
				}
			}
		}
		switch i {
		case 0:
			node.Type = "spawn"
			node.ID = spawnID
		case len(cells) - 1:
			node.Type = "end"
		}
		nodes = append(nodes, node)
	}
	return nodes
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

func rollingHills(w, h int) [][]float64 {
	hm := make([][]float64, h+1)
	for z := range hm {
		hm[z] = make([]float64, w+1)
		for x := range hm[z] {
			v := 0.4*math.Sin(float64(x)/3) + 0.3*math.Cos(float64(z)/4)
			hm[z][x] = math.Round(v*100) / 100
		}
	}
	return hm
}
