package level

import (
	"strings"
	"testing"

	"go-grid-defense/internal/defs"
	"go-grid-defense/pkg/gridmap"
)

var unitCfg = gridmap.Config{TileSize: 1, HeightScale: 1}

func knownKinds(kind string) bool {
	_, ok := defs.DefaultLibrary().Enemies[kind]
	return ok
}

func TestLoadFormats(t *testing.T) {
	for _, path := range []string{"testdata/crossroads.yaml", "testdata/crossroads.json"} {
		t.Run(path, func(t *testing.T) {
			data, err := Load(path)
			if err != nil {
				t.Fatalf("Load failed: %v", err)
			}
			if data.Metadata.ID != "crossroads" {
				t.Errorf("id = %q, want crossroads", data.Metadata.ID)
			}
			if data.Dimensions.Width != 4 || data.Dimensions.Height != 3 {
				t.Errorf("dimensions = %+v, want 4x3", data.Dimensions)
			}
			if len(data.Terrain.Heightmap) != 4 || len(data.Terrain.Heightmap[0]) != 5 {
				t.Errorf("heightmap shape = %dx%d", len(data.Terrain.Heightmap), len(data.Terrain.Heightmap[0]))
			}
			if len(data.Paths.Nodes) != 5 {
				t.Fatalf("nodes = %d, want 5", len(data.Paths.Nodes))
			}
			if n := data.Paths.Nodes[1]; n.ID != "north" || n.Type != "spawn" || n.Directions[2] != 1 {
				t.Errorf("node[1] = %+v", n)
			}
			if len(data.Waves) != 1 || data.Waves[0].TotalEnemies() != 5 {
				t.Errorf("waves = %+v, want one wave of 5", data.Waves)
			}
			if got := data.Waves[0].Spawns[1].PathID; got != "north" {
				t.Errorf("spawns[1].path_id = %q, want north", got)
			}
		})
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load("testdata/crossroads.txt"); err == nil {
		t.Error("unsupported extension accepted")
	}
	if _, err := Load("testdata/missing.yaml"); err == nil {
		t.Error("missing file accepted")
	}
	if _, err := Parse([]byte("{"), FormatJSON); err == nil {
		t.Error("bad JSON accepted")
	}
	if _, err := Parse([]byte("a: [1"), FormatYAML); err == nil {
		t.Error("bad YAML accepted")
	}
	if _, err := Parse(nil, Format("toml")); err == nil {
		t.Error("unknown format accepted")
	}
}

func TestNewBuildsGrid(t *testing.T) {
	data, err := Load("testdata/crossroads.yaml")
	if err != nil {
		t.Fatal(err)
	}
	lvl, err := New(data, unitCfg)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	g := lvl.Grid()
	if g.CellType(1, 0) != gridmap.Spawn || g.CellType(3, 1) != gridmap.End || g.CellType(0, 0) != gridmap.Empty {
		t.Error("cell types not taken from path nodes")
	}
	if p, ok := g.SpawnPoint("north"); !ok || p != (gridmap.Point{X: 1, Z: 0}) {
		t.Errorf("SpawnPoint(north) = %v, %v", p, ok)
	}
	if got := g.GridHeight(2, 2); got != 2 {
		t.Errorf("GridHeight(2,2) = %v, want 2", got)
	}
	if len(lvl.Waves()) != 1 {
		t.Errorf("Waves = %d, want 1", len(lvl.Waves()))
	}
	if c := lvl.BoardCenter(); c.X != 2 || c.Z != 1.5 {
		t.Errorf("BoardCenter = %v, want (2, 1.5)", c)
	}
	if lvl.BoardSize() != 4 {
		t.Errorf("BoardSize = %v, want 4", lvl.BoardSize())
	}
}

func TestNewRejectsBadData(t *testing.T) {
	if _, err := New(nil, unitCfg); err == nil {
		t.Error("nil data accepted")
	}
	data := Default()
	data.Paths.Nodes = append(data.Paths.Nodes, gridmap.PathNode{X: 99, Z: 0})
	if _, err := New(data, unitCfg); err == nil {
		t.Error("out-of-range node accepted")
	}
}

func TestBoardQueriesPanicWithoutLevel(t *testing.T) {
	defer func() {
		if r := recover(); r != ErrNoLevel {
			t.Errorf("recover() = %v, want ErrNoLevel", r)
		}
	}()
	var lvl *Level
	lvl.BoardCenter()
}

func TestDefaultLevel(t *testing.T) {
	data := Default()
	issues := Validate(data, knownKinds)
	if gridmap.HasErrors(issues) {
		t.Fatalf("default level has errors: %v", issues)
	}
	for _, i := range issues {
		t.Logf("default level: %v", i)
	}

	lvl, err := New(data, unitCfg)
	if err != nil {
		t.Fatal(err)
	}
	g := lvl.Grid()
	if g.CellType(0, 2) != gridmap.Spawn || g.CellType(19, 17) != gridmap.End {
		t.Error("default route endpoints misplaced")
	}
	if d := g.PathDirections(17, 2); !d.Has(gridmap.South) || d.Count() != 1 {
		t.Errorf("corner (17,2) exits = %v, want S", d)
	}
}

func TestRouteNodes(t *testing.T) {
	nodes := RouteNodes("A", []gridmap.Point{{X: 0, Z: 0}, {X: 2, Z: 0}, {X: 2, Z: 1}})
	if len(nodes) != 4 {
		t.Fatalf("nodes = %d, want 4", len(nodes))
	}
	want := [][]int{{0, 1, 0, 0}, {0, 1, 0, 0}, {0, 0, 1, 0}, {0, 0, 0, 0}}
	for i, n := range nodes {
		for j := range want[i] {
			if n.Directions[j] != want[i][j] {
				t.Errorf("node %d directions = %v, want %v", i, n.Directions, want[i])
				break
			}
		}
	}
	if nodes[0].Type != "spawn" || nodes[0].ID != "A" || nodes[3].Type != "end" {
		t.Errorf("endpoints = %+v / %+v", nodes[0], nodes[3])
	}
}

func TestValidateBrokenLevel(t *testing.T) {
	data, err := Load("testdata/broken.yaml")
	if err != nil {
		t.Fatal(err)
	}
	issues := Validate(data, knownKinds)
	if !gridmap.HasErrors(issues) {
		t.Fatal("broken level reported no errors")
	}

	want := []string{
		"heightmap has 1 rows, want 2",
		"heightmap row 0 has 3 samples, want 4",
		"PATH cell has no exits and is not an end cell",
		"level has no end cell",
		`wave w1 uses unknown spawn "B"`,
		`wave w1 uses unknown enemy kind "dragon"`,
		`wave w1 has 0 x "cube"`,
	}
	for _, w := range want {
		found := false
		for _, i := range issues {
			if strings.Contains(i.Message, w) {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("missing issue %q in %v", w, issues)
		}
	}
}

func TestValidateCleanLevel(t *testing.T) {
	data, err := Load("testdata/crossroads.json")
	if err != nil {
		t.Fatal(err)
	}
	if issues := Validate(data, knownKinds); gridmap.HasErrors(issues) {
		t.Errorf("crossroads has errors: %v", issues)
	}
	if issues := Validate(nil, nil); !gridmap.HasErrors(issues) {
		t.Error("nil data should be an error")
	}
}
