// internal/app/game.go
package app

import (
	"go-grid-defense/internal/config"
	"go-grid-defense/internal/defs"
	"go-grid-defense/internal/enemy"
	"go-grid-defense/internal/entity"
	"go-grid-defense/internal/event"
	"go-grid-defense/internal/input"
	"go-grid-defense/internal/level"
	"go-grid-defense/internal/system"
	"go-grid-defense/internal/timer"
	"go-grid-defense/internal/tower"
	"go-grid-defense/internal/types"
	"go-grid-defense/pkg/gridmap"
)

// Stats are running totals for the current game.
type Stats struct {
	Killed      int
	Leaked      int
	Stalled     int
	Bounty      int
	TowersBuilt int
}

// Game holds the main game state and wires every component together.
type Game struct {
	Level           *level.Level
	Grid            *gridmap.Grid
	Library         *defs.Library
	Registry        *entity.Registry
	EventDispatcher *event.Dispatcher
	Scheduler       *timer.Scheduler
	EnemyKinds      *enemy.Kinds
	TowerKinds      *tower.Kinds
	WaveManager     *system.WaveManager
	BuildSystem     *system.BuildSystem
	Interaction     *input.Manager
	SpeedMultiplier float64

	gameTime float64
	isPaused bool
	stats    Stats
	enemies  map[types.EntityID]*enemy.Enemy // зарегистрированы в Interaction
}

// NewGame builds a game for a loaded level. A nil library means the
// built-in definitions; a nil presenter means nobody watches the waves.
func NewGame(lvl *level.Level, lib *defs.Library, presenter system.WavePresenter) (*Game, error) {
	if lvl == nil || lvl.Grid() == nil {
		return nil, level.ErrNoLevel
	}
	if lib == nil {
		lib = defs.DefaultLibrary()
	}

	g := &Game{
		Level:           lvl,
		Grid:            lvl.Grid(),
		Library:         lib,
		Registry:        entity.NewRegistry(),
		EventDispatcher: event.NewDispatcher(),
		Scheduler:       timer.NewScheduler(),
		EnemyKinds:      enemy.DefaultKinds(lib),
		Interaction:     input.NewManager(),
		SpeedMultiplier: 1.0,
		enemies:         make(map[types.EntityID]*enemy.Enemy),
	}
	g.WaveManager = system.NewWaveManager(g.Grid, g.EnemyKinds, g.Registry, presenter, g.EventDispatcher, g.Scheduler)
	g.TowerKinds = tower.DefaultKinds(lib, g.WaveManager)
	g.BuildSystem = system.NewBuildSystem(g.Grid, g.TowerKinds, g.Registry, g.EventDispatcher)

	g.BuildSystem.OnPlaced(func(t *tower.Tower) {
		t.OnSelect(g.selectTower)
		g.Interaction.Add(t, input.TowerUI)
	})
	g.BuildSystem.OnRemoved(func(t *tower.Tower) { g.Interaction.Remove(t) })
	g.Interaction.Add(g.BuildSystem, input.BuildMode)
	g.Interaction.Add(&hotkeys{game: g}, input.World)

	listener := &GameEventListener{game: g}
	g.EventDispatcher.Subscribe(event.EnemySpawned, listener)
	g.EventDispatcher.Subscribe(event.EnemyRemoved, listener)
	g.EventDispatcher.Subscribe(event.TowerPlaced, listener)

	g.WaveManager.Initialize(lvl.Waves())
	return g, nil
}

// GameEventListener keeps stats and input registrations in step with the
// entities the systems create and remove.
type GameEventListener struct {
	game *Game
}

func (l *GameEventListener) OnEvent(e event.Event) {
	g := l.game
	switch e.Type {
	case event.EnemySpawned:
		info, ok := e.Data.(event.EnemyInfo)
		if !ok {
			return
		}
		id := types.EntityID(info.ID)
		if ent, found := g.Registry.Entity(id); found {
			if en, isEnemy := ent.(*enemy.Enemy); isEnemy {
				g.enemies[id] = en
				g.Interaction.Add(en, input.EnemyUI)
			}
		}
	case event.EnemyRemoved:
		info, ok := e.Data.(event.EnemyInfo)
		if !ok {
			return
		}
		id := types.EntityID(info.ID)
		if en, found := g.enemies[id]; found {
			g.Interaction.Remove(en)
			delete(g.enemies, id)
		}
		switch {
		case info.Killed:
			g.stats.Killed++
			g.stats.Bounty += info.Bounty
		case info.ReachedEnd:
			g.stats.Leaked++
		default:
			g.stats.Stalled++
		}
	case event.TowerPlaced:
		g.stats.TowersBuilt++
	}
}

// Update progresses the game by one frame: input, entities, waves, timers.
func (g *Game) Update(deltaTime float64, in *input.State) {
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	if in != nil {
		g.Interaction.HandleInput(in, deltaTime)
	}
	if g.isPaused {
		return
	}

	dt := deltaTime * g.SpeedMultiplier
	g.gameTime += dt
	g.Registry.Update(dt)
	g.WaveManager.Update(dt)
	g.Scheduler.Advance(dt)
}

// StartNextWave asks the wave manager for the next wave.
func (g *Game) StartNextWave() bool {
	return g.WaveManager.StartNextWave()
}

// Finished reports whether the last wave is over, or the level has none.
func (g *Game) Finished() bool {
	if g.WaveManager.HasMoreWaves() {
		return false
	}
	st := g.WaveManager.State()
	return st == system.WaveCompleted || st == system.WaveWaiting
}

// Towers returns placed towers in placement order.
func (g *Game) Towers() []*tower.Tower {
	var towers []*tower.Tower
	g.Registry.Each(func(_ types.EntityID, e entity.Entity) {
		if t, ok := e.(*tower.Tower); ok {
			towers = append(towers, t)
		}
	})
	return towers
}

// selectTower clears every other tower's selection. A claimed click never
// reaches towers registered after the one that claimed it.
func (g *Game) selectTower(sel *tower.Tower) {
	for _, t := range g.Towers() {
		if t != sel {
			t.SetSelected(false)
		}
	}
}

// SelectedTower returns the tower the player clicked last, if any.
func (g *Game) SelectedTower() *tower.Tower {
	for _, t := range g.Towers() {
		if t.Selected() {
			return t
		}
	}
	return nil
}

// SellSelected removes the selected tower from the board.
func (g *Game) SellSelected() bool {
	t := g.SelectedTower()
	if t == nil {
		return false
	}
	c := t.Cell()
	return g.BuildSystem.RemoveAt(c.X, c.Z)
}

// ToggleSpeed cycles the simulation speed through 1x, 2x and 4x.
func (g *Game) ToggleSpeed() {
	switch g.SpeedMultiplier {
	case 1:
		g.SpeedMultiplier = 2
	case 2:
		g.SpeedMultiplier = 4
	default:
		g.SpeedMultiplier = 1
	}
}

func (g *Game) SetPaused(p bool)        { g.isPaused = p }
func (g *Game) IsPaused() bool          { return g.isPaused }
func (g *Game) GameTime() float64       { return g.gameTime }
func (g *Game) Stats() Stats            { return g.stats }
func (g *Game) Enemies() []*enemy.Enemy { return g.WaveManager.ActiveEnemies() }

// Dispose tears down every component. The game must not be used afterwards.
func (g *Game) Dispose() {
	g.WaveManager.Dispose()
	g.BuildSystem.Dispose()
	g.Scheduler.CancelAll()
	g.Interaction.Clear()
	g.Registry.Clear()
}
