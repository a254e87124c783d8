package enemy

import (
	"errors"
	"math"
	"testing"

	"go-grid-defense/internal/defs"
	"go-grid-defense/pkg/gridmap"
)

var testCube = defs.EnemyDefinition{ID: "cube", Health: 100, Speed: 2.0, Height: 0.5, Bounty: 5}

func mustGrid(t *testing.T, w, h int, heights [][]float64, nodes []gridmap.PathNode) *gridmap.Grid {
	t.Helper()
	g, err := gridmap.New(gridmap.Dimensions{Width: w, Height: h}, heights, nodes, gridmap.Config{TileSize: 1, HeightScale: 1})
	if err != nil {
		t.Fatalf("gridmap.New: %v", err)
	}
	return g
}

// runUntilDone ticks e until it reaches a terminal state or maxTicks pass.
func runUntilDone(e *Enemy, dt float64, maxTicks int) int {
	for i := 0; i < maxTicks; i++ {
		if e.Done() {
			return i
		}
		e.Update(dt)
	}
	return maxTicks
}

func TestWalksLShapedPath(t *testing.T) {
	g := mustGrid(t, 2, 2, nil, []gridmap.PathNode{
		{X: 0, Z: 0, Directions: []int{0, 1, 0, 0}, Type: "spawn", ID: "A"},
		{X: 1, Z: 0, Directions: []int{0, 0, 1, 0}},
		{X: 1, Z: 1, Directions: []int{0, 0, 0, 0}, Type: "end"},
	})
	e := New(testCube, g, gridmap.Point{X: 0, Z: 0})

	visited := []gridmap.Point{e.Cell()}
	for i := 0; i < 200 && !e.Done(); i++ {
		e.Update(0.1)
		if c := e.Cell(); c != visited[len(visited)-1] {
			visited = append(visited, c)
		}
	}

	if e.Status() != ReachedEnd || !e.ReachedEnd() {
		t.Fatalf("status = %v, want reached-end", e.Status())
	}
	want := []gridmap.Point{{X: 0, Z: 0}, {X: 1, Z: 0}, {X: 1, Z: 1}}
	if len(visited) != len(want) {
		t.Fatalf("visited %v, want %v", visited, want)
	}
	for i := range want {
		if visited[i] != want[i] {
			t.Errorf("step %d = %v, want %v", i, visited[i], want[i])
		}
	}
	if e.IsDead() {
		t.Error("leaking enemy must not count as dead")
	}
}

func TestFacingAndElevation(t *testing.T) {
	g := mustGrid(t, 2, 1, nil, []gridmap.PathNode{
		{X: 0, Z: 0, Directions: []int{0, 1, 0, 0}, Type: "spawn", ID: "A"},
		{X: 1, Z: 0, Type: "end", Directions: []int{0, 0, 0, 0}},
	})
	e := New(testCube, g, gridmap.Point{})
	if got := e.Position().Y; got != 0.5 {
		t.Errorf("spawn Y = %v, want hover height 0.5", got)
	}

	e.Update(0.1)
	if math.Abs(e.Facing()-math.Pi/2) > 1e-9 {
		t.Errorf("facing east = %v, want pi/2", e.Facing())
	}
	if got := e.Position().X; math.Abs(got-0.7) > 1e-9 {
		t.Errorf("X after one tick = %v, want 0.7", got)
	}
	if e.Position().Y != 0.5 {
		t.Errorf("Y changed while moving: %v", e.Position().Y)
	}
	if e.Position().Z != 0.5 {
		t.Errorf("Z drifted: %v", e.Position().Z)
	}
}

func TestElevationFollowsTerrain(t *testing.T) {
	heights := [][]float64{{2, 2}, {2, 2}}
	g := mustGrid(t, 1, 1, heights, []gridmap.PathNode{
		{X: 0, Z: 0, Type: "end", Directions: []int{0, 0, 0, 0}},
	})
	e := New(testCube, g, gridmap.Point{})
	if got := e.Position().Y; got != 2.5 {
		t.Errorf("Y = %v, want terrain 2 + hover 0.5", got)
	}
}

func TestStallsOnDeadEnd(t *testing.T) {
	g := mustGrid(t, 2, 1, nil, []gridmap.PathNode{
		{X: 0, Z: 0, Directions: []int{0, 1, 0, 0}, Type: "spawn", ID: "A"},
		{X: 1, Z: 0, Directions: []int{0, 0, 0, 0}}, // plain path, no exits
	})
	e := New(testCube, g, gridmap.Point{})
	runUntilDone(e, 0.1, 200)

	if e.Status() != Stalled {
		t.Fatalf("status = %v, want stalled", e.Status())
	}
	if e.ReachedEnd() || e.IsDead() {
		t.Error("a stalled enemy is neither leaked nor killed")
	}
	pos := e.Position()
	e.Update(1)
	if e.Position() != pos {
		t.Error("stalled enemy kept moving")
	}
}

func TestOrdinalTieBreak(t *testing.T) {
	g := mustGrid(t, 3, 3, nil, []gridmap.PathNode{
		{X: 1, Z: 1, Directions: []int{0, 1, 1, 1}, Type: "spawn", ID: "A"},
		{X: 2, Z: 1, Type: "end", Directions: []int{0, 0, 0, 0}},
		{X: 1, Z: 2, Type: "end", Directions: []int{0, 0, 0, 0}},
		{X: 0, Z: 1, Type: "end", Directions: []int{0, 0, 0, 0}},
	})
	e := New(testCube, g, gridmap.Point{X: 1, Z: 1})
	e.Update(0.1)

	d, ok := e.LastDirection()
	if !ok || d != gridmap.East {
		t.Fatalf("LastDirection = %v, %v; want E", d, ok)
	}
	runUntilDone(e, 0.1, 200)
	if e.Cell() != (gridmap.Point{X: 2, Z: 1}) {
		t.Errorf("ended at %v, want (2,1)", e.Cell())
	}
	if _, ok := e.LastDirection(); ok {
		t.Error("last direction should be cleared on arrival")
	}
}

func TestDamage(t *testing.T) {
	g := mustGrid(t, 2, 1, nil, []gridmap.PathNode{
		{X: 0, Z: 0, Directions: []int{0, 1, 0, 0}, Type: "spawn", ID: "A"},
		{X: 1, Z: 0, Type: "end", Directions: []int{0, 0, 0, 0}},
	})
	e := New(testCube, g, gridmap.Point{})

	e.TakeDamage(-5)
	if e.Health() != 100 {
		t.Errorf("negative damage changed health to %v", e.Health())
	}
	e.TakeDamage(60)
	if e.IsDead() || e.Done() {
		t.Fatal("enemy died at 40 health")
	}
	e.TakeDamage(40)
	if !e.IsDead() || !e.Done() || e.Status() != Dead {
		t.Fatalf("status = %v, want dead", e.Status())
	}

	pos := e.Position()
	e.Update(1)
	if e.Position() != pos {
		t.Error("dead enemy moved")
	}
	e.TakeDamage(10)
	if e.Health() != 0 {
		t.Errorf("damage after death applied: health %v", e.Health())
	}
}

func TestKinds(t *testing.T) {
	k := DefaultKinds(defs.DefaultLibrary())
	for _, name := range []string{"cube", "boss_cube"} {
		if !k.Has(name) {
			t.Errorf("default kinds missing %q", name)
		}
	}

	g := mustGrid(t, 1, 1, nil, nil)
	boss, err := k.New("boss_cube", g, gridmap.Point{})
	if err != nil {
		t.Fatalf("New(boss_cube): %v", err)
	}
	if boss.Health() != 500 || boss.Speed() != 1.0 || boss.Kind != "boss_cube" {
		t.Errorf("boss = %v hp, %v speed, kind %q", boss.Health(), boss.Speed(), boss.Kind)
	}

	if _, err := k.New("ghost", g, gridmap.Point{}); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("New(ghost) err = %v, want ErrUnknownKind", err)
	}
	if err := k.Register("cube", FromDefinition(testCube)); !errors.Is(err, ErrDuplicateKind) {
		t.Errorf("duplicate Register err = %v", err)
	}
	if err := k.Register("", FromDefinition(testCube)); err == nil {
		t.Error("empty kind accepted")
	}
	if err := k.Register("slime", nil); err == nil {
		t.Error("nil factory accepted")
	}
}
