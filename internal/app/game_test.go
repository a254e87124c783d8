package app

import (
	"errors"
	"testing"

	"go-grid-defense/internal/defs"
	"go-grid-defense/internal/input"
	"go-grid-defense/internal/level"
	"go-grid-defense/internal/system"
	"go-grid-defense/pkg/gridmap"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	lvl, err := level.New(level.Default(), gridmap.Config{TileSize: 1, HeightScale: 1})
	if err != nil {
		t.Fatalf("level.New: %v", err)
	}
	g, err := NewGame(lvl, nil, nil)
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	return g
}

func totalEnemies(waves []defs.WaveData) int {
	n := 0
	for _, w := range waves {
		n += w.TotalEnemies()
	}
	return n
}

func TestNewGameNeedsLevel(t *testing.T) {
	if _, err := NewGame(nil, nil, nil); !errors.Is(err, level.ErrNoLevel) {
		t.Errorf("NewGame(nil) err = %v, want ErrNoLevel", err)
	}
}

func TestNewGameStartsWaiting(t *testing.T) {
	g := newTestGame(t)
	if g.WaveManager.State() != system.WaveWaiting || g.WaveManager.WaveCount() != 3 {
		t.Errorf("state %v with %d waves, want WAITING with 3", g.WaveManager.State(), g.WaveManager.WaveCount())
	}
	if g.Finished() {
		t.Error("fresh game reports finished")
	}
}

func TestSimulateAccountsForEveryEnemy(t *testing.T) {
	g := newTestGame(t)
	placed, err := g.AutoBuild("ranger", 10)
	if err != nil {
		t.Fatalf("AutoBuild: %v", err)
	}
	if placed != 10 || len(g.Towers()) != 10 {
		t.Fatalf("placed %d (towers %d), want 10", placed, len(g.Towers()))
	}

	res := g.Simulate(SimOptions{DeltaTime: 1.0 / 30, MaxTime: 900})
	if !res.Finished {
		t.Fatalf("simulation did not finish: %+v", res)
	}
	if res.WavesPlayed != 3 {
		t.Errorf("WavesPlayed = %d, want 3", res.WavesPlayed)
	}
	s := res.Stats
	if got, want := s.Killed+s.Leaked+s.Stalled, totalEnemies(g.Level.Waves()); got != want {
		t.Errorf("killed+leaked+stalled = %d, want %d (%+v)", got, want, s)
	}
	if s.Killed == 0 {
		t.Error("ten rangers along the road killed nothing")
	}
	if s.Stalled != 0 {
		t.Errorf("stalled = %d on a valid level", s.Stalled)
	}
	if s.TowersBuilt != 10 {
		t.Errorf("TowersBuilt = %d, want 10", s.TowersBuilt)
	}
	if g.WaveManager.ActiveCount() != 0 || g.Interaction.Len() != 2+10 {
		t.Errorf("leftovers: active=%d consumers=%d", g.WaveManager.ActiveCount(), g.Interaction.Len())
	}
}

func TestHotkeyStartsWave(t *testing.T) {
	g := newTestGame(t)
	in := input.NewState()
	in.PressKey(input.KeySpace)
	g.Update(0.016, in)
	if g.WaveManager.State() != system.WaveSpawning || g.WaveManager.CurrentWaveIndex() != 0 {
		t.Errorf("state %v index %d after space, want SPAWNING 0", g.WaveManager.State(), g.WaveManager.CurrentWaveIndex())
	}
}

func TestEnemiesJoinInteraction(t *testing.T) {
	g := newTestGame(t)
	g.StartNextWave()
	before := g.Interaction.Len()
	for i := 0; i < 70; i++ { // a bit over one spawn interval
		g.Update(1.0/60, nil)
	}
	if g.WaveManager.ActiveCount() != 1 {
		t.Fatalf("active = %d, want 1", g.WaveManager.ActiveCount())
	}
	if g.Interaction.Len() != before+1 {
		t.Errorf("consumers = %d, want %d", g.Interaction.Len(), before+1)
	}
	if p, ok := g.Interaction.Priority(g.Enemies()[0]); !ok || p != input.EnemyUI {
		t.Errorf("enemy priority = %v, %v", p, ok)
	}
}

func TestSelectAndSellTower(t *testing.T) {
	g := newTestGame(t)
	if _, err := g.AutoBuild("ranger", 1); err != nil {
		t.Fatal(err)
	}
	tw := g.Towers()[0]

	in := input.NewState()
	in.SetWorldPosition(tw.Position())
	in.Press(input.ButtonPrimary)
	g.Update(0.016, in)
	if g.SelectedTower() != tw {
		t.Fatal("click on the tower did not select it")
	}

	in.EndFrame()
	in.PressKey(input.KeyDelete)
	g.Update(0.016, in)
	if len(g.Towers()) != 0 {
		t.Error("selected tower not sold")
	}
	c := tw.Cell()
	if !g.Grid.CanPlaceEntity(c.X, c.Z) {
		t.Error("sold tower's cell still occupied")
	}
}

func TestBuildHotkeyAndClick(t *testing.T) {
	g := newTestGame(t)
	site := g.BuildSites()[0]

	in := input.NewState()
	in.PressKey(input.Key1)
	g.Update(0.016, in)
	if !g.BuildSystem.IsActive() {
		t.Fatal("key 1 did not enter build mode")
	}

	in.EndFrame()
	in.SetWorldPosition(g.Grid.GridToWorld(site.X, site.Z))
	in.Press(input.ButtonPrimary)
	g.Update(0.016, in)
	if g.Grid.CanPlaceEntity(site.X, site.Z) {
		t.Error("click in build mode did not place a tower")
	}
}

func TestPauseStopsSimulation(t *testing.T) {
	g := newTestGame(t)
	g.StartNextWave()
	g.SetPaused(true)
	for i := 0; i < 120; i++ {
		g.Update(1.0/60, nil)
	}
	if g.WaveManager.ActiveCount() != 0 || g.GameTime() != 0 {
		t.Error("paused game advanced")
	}
	g.SetPaused(false)
	g.Update(1.0/60, nil)
	if g.GameTime() == 0 {
		t.Error("unpaused game did not advance")
	}
}

func TestDeltaTimeClamp(t *testing.T) {
	g := newTestGame(t)
	g.Update(5, nil)
	if g.GameTime() > 0.0600001 {
		t.Errorf("GameTime = %v after a 5s frame, want clamp", g.GameTime())
	}
	g.ToggleSpeed()
	if g.SpeedMultiplier != 2 {
		t.Errorf("SpeedMultiplier = %v, want 2", g.SpeedMultiplier)
	}
}

func TestDispose(t *testing.T) {
	g := newTestGame(t)
	g.AutoBuild("ranger", 2)
	g.StartNextWave()
	g.Dispose()
	if g.Registry.Len() != 0 || g.Interaction.Len() != 0 || g.Scheduler.Len() != 0 {
		t.Error("Dispose left state behind")
	}
}

func TestSingleSelection(t *testing.T) {
	g := newTestGame(t)
	if n, err := g.AutoBuild("ranger", 2); err != nil || n != 2 {
		t.Fatalf("AutoBuild = %d, %v", n, err)
	}
	towers := g.Towers()
	a, b := towers[0], towers[1]

	in := input.NewState()
	click := func(w gridmap.Vec3) {
		in.EndFrame()
		in.Release(input.ButtonPrimary)
		in.EndFrame()
		in.SetWorldPosition(w)
		in.Press(input.ButtonPrimary)
		g.Update(0.016, in)
	}

	click(b.Position())
	if !b.Selected() || a.Selected() {
		t.Fatalf("after clicking B: A=%v B=%v", a.Selected(), b.Selected())
	}
	click(a.Position())
	if !a.Selected() || b.Selected() {
		t.Errorf("after clicking A: A=%v B=%v, want only A", a.Selected(), b.Selected())
	}
	if g.SelectedTower() != a {
		t.Error("SelectedTower is not the last clicked tower")
	}
}
