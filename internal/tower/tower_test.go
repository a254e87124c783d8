package tower

import (
	"errors"
	"math"
	"testing"

	"go-grid-defense/internal/defs"
	"go-grid-defense/internal/enemy"
	"go-grid-defense/internal/input"
	"go-grid-defense/pkg/gridmap"
)

type fixedTargets []*enemy.Enemy

func (f fixedTargets) ActiveEnemies() []*enemy.Enemy { return f }

var testRanger = defs.TowerDefinition{ID: "ranger", Damage: 25, FireRate: 2, Range: 1.5}

// corridor is a 5x3 board with a west-to-east path along z=1.
func corridor(t *testing.T) *gridmap.Grid {
	t.Helper()
	nodes := []gridmap.PathNode{{X: 0, Z: 1, Type: "spawn", ID: "A", Directions: []int{0, 1, 0, 0}}}
	for x := 1; x < 4; x++ {
		nodes = append(nodes, gridmap.PathNode{X: x, Z: 1, Directions: []int{0, 1, 0, 0}})
	}
	nodes = append(nodes, gridmap.PathNode{X: 4, Z: 1, Type: "end", Directions: []int{0, 0, 0, 0}})
	g, err := gridmap.New(gridmap.Dimensions{Width: 5, Height: 3}, nil, nodes, gridmap.Config{TileSize: 1, HeightScale: 1})
	if err != nil {
		t.Fatalf("gridmap.New: %v", err)
	}
	return g
}

func newEnemy(g *gridmap.Grid, x int) *enemy.Enemy {
	return enemy.New(defs.EnemyDefinition{ID: "cube", Health: 100, Speed: 1}, g, gridmap.Point{X: x, Z: 1})
}

func TestShootsFirstEnemyInRange(t *testing.T) {
	g := corridor(t)
	far := newEnemy(g, 0)  // 3 cells away from the tower column
	near := newEnemy(g, 3) // diagonal neighbour
	tw := New(testRanger, g, gridmap.Point{X: 3, Z: 0}, fixedTargets{far, near})

	var fired []*enemy.Enemy
	tw.OnFire(func(_ *Tower, e *enemy.Enemy) { fired = append(fired, e) })

	tw.Update(0.1)
	if len(fired) != 1 || fired[0] != near {
		t.Fatalf("fired at %v, want the enemy in range", fired)
	}
	if near.Health() != 75 || far.Health() != 100 {
		t.Errorf("health near=%v far=%v, want 75 and 100", near.Health(), far.Health())
	}

	// 2 shots per second: nothing until 0.5s have passed.
	tw.Update(0.2)
	tw.Update(0.2)
	if tw.Shots() != 1 {
		t.Errorf("shots = %d before reload finished, want 1", tw.Shots())
	}
	tw.Update(0.11)
	if tw.Shots() != 2 {
		t.Errorf("shots = %d after reload, want 2", tw.Shots())
	}
}

func TestKillsAndSkipsFinishedEnemies(t *testing.T) {
	g := corridor(t)
	first := newEnemy(g, 2)
	second := newEnemy(g, 3)
	tw := New(defs.TowerDefinition{ID: "big", Damage: 100, FireRate: 10, Range: 3}, g, gridmap.Point{X: 2, Z: 2}, fixedTargets{first, second})

	tw.Update(0.1)
	if !first.IsDead() {
		t.Fatal("first enemy should be dead after one 100 damage shot")
	}
	tw.Update(0.1)
	if !second.IsDead() {
		t.Error("tower kept shooting a dead enemy instead of the next one")
	}
}

func TestNoTargets(t *testing.T) {
	g := corridor(t)
	tw := New(testRanger, g, gridmap.Point{X: 0, Z: 0}, nil)
	tw.Update(1)
	if tw.Shots() != 0 {
		t.Error("tower without targets fired")
	}
}

func TestSelection(t *testing.T) {
	g := corridor(t)
	tw := New(testRanger, g, gridmap.Point{X: 2, Z: 0}, nil)

	in := input.NewState()
	in.SetWorldPosition(gridmap.V3(2.3, 0, 0.8))
	if tw.HandleInput(in, 0) {
		t.Error("hover without click claimed input")
	}

	in.Press(input.ButtonPrimary)
	if !tw.HandleInput(in, 0) || !tw.Selected() {
		t.Fatal("click on tower cell should select and claim")
	}

	in.EndFrame()
	in.Release(input.ButtonPrimary)
	in.EndFrame()
	in.SetWorldPosition(gridmap.V3(4.5, 0, 2.5))
	in.Press(input.ButtonPrimary)
	if tw.HandleInput(in, 0) {
		t.Error("click elsewhere was claimed")
	}
	if tw.Selected() {
		t.Error("click elsewhere should deselect")
	}
}

func TestKinds(t *testing.T) {
	k := DefaultKinds(defs.DefaultLibrary(), nil)
	if !k.Has("ranger") {
		t.Fatal("default kinds missing ranger")
	}
	g := corridor(t)
	tw, err := k.New("ranger", g, gridmap.Point{X: 1, Z: 0})
	if err != nil {
		t.Fatalf("New(ranger): %v", err)
	}
	if tw.Kind != "ranger" || tw.Position() != g.GridToWorld(1, 0) {
		t.Errorf("tower kind %q at %v", tw.Kind, tw.Position())
	}
	if _, err := k.New("laser", g, gridmap.Point{}); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("New(laser) err = %v, want ErrUnknownKind", err)
	}
	if err := k.Register("ranger", FromDefinition(testRanger, nil)); !errors.Is(err, ErrDuplicateKind) {
		t.Errorf("duplicate Register err = %v", err)
	}
}

func TestTurretTurnsTowardShot(t *testing.T) {
	g := corridor(t)
	e := newEnemy(g, 2) // south-west of the tower
	tw := New(testRanger, g, gridmap.Point{X: 3, Z: 0}, fixedTargets{e})

	tw.Update(0.01)
	want := math.Atan2(-1, 1)
	if math.Abs(tw.Facing()-want) > 1e-9 {
		t.Fatalf("Facing = %v, want %v", tw.Facing(), want)
	}
	if tw.Turret() != 0 {
		t.Errorf("Turret = %v right after the shot, want 0", tw.Turret())
	}

	tw.Update(0.05)
	if tw.Turret() >= 0 || tw.Turret() <= want {
		t.Errorf("Turret = %v, want part way to %v", tw.Turret(), want)
	}
	tw.Update(1)
	if math.Abs(tw.Turret()-want) > 1e-9 {
		t.Errorf("Turret = %v after a long tick, want %v", tw.Turret(), want)
	}
}

func TestSelectionCoversWholeTile(t *testing.T) {
	g, err := gridmap.New(gridmap.Dimensions{Width: 3, Height: 3}, nil, nil, gridmap.Config{TileSize: 2, HeightScale: 1})
	if err != nil {
		t.Fatalf("gridmap.New: %v", err)
	}
	tw := New(testRanger, g, gridmap.Point{X: 1, Z: 1}, nil)
	p := tw.Position()

	tests := []struct {
		name string
		at   gridmap.Vec3
		want bool
	}{
		{"centre", p, true},
		{"near edge", gridmap.V3(p.X+0.9, 0, p.Z-0.9), true},
		{"next tile", gridmap.V3(p.X+1.5, 0, p.Z), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := input.NewState()
			in.SetWorldPosition(tt.at)
			in.Press(input.ButtonPrimary)
			if got := tw.HandleInput(in, 0); got != tt.want {
				t.Errorf("HandleInput = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestOnSelectCallback(t *testing.T) {
	g := corridor(t)
	tw := New(testRanger, g, gridmap.Point{X: 2, Z: 0}, nil)
	var got *Tower
	tw.OnSelect(func(sel *Tower) { got = sel })

	in := input.NewState()
	in.SetWorldPosition(tw.Position())
	in.Press(input.ButtonPrimary)
	tw.HandleInput(in, 0)
	if got != tw {
		t.Error("OnSelect not called with the clicked tower")
	}
}
