// internal/state/game_state.go
package state

import (
	"fmt"

	game "go-grid-defense/internal/app"
	"go-grid-defense/internal/config"
	"go-grid-defense/internal/defs"
	"go-grid-defense/internal/input"
	"go-grid-defense/internal/input/poll"
	"go-grid-defense/internal/level"
	"go-grid-defense/internal/sfx"
	"go-grid-defense/internal/ui"
	"go-grid-defense/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// GameState — состояние игры
type GameState struct {
	sm        *StateMachine
	game      *game.Game
	camera    *render.Camera
	renderer  *render.GridRenderer
	poller    *poll.Poller
	wavePanel *ui.WavePanel
	buildBar  *ui.BuildBar
	statusBar *ui.StatusBar
	sound     *sfx.Player
}

func NewGameState(sm *StateMachine, lvl *level.Level, lib *defs.Library, sound *sfx.Player) (*GameState, error) {
	wavePanel := ui.NewWavePanel(ui.DefaultFace)
	gameLogic, err := game.NewGame(lvl, lib, wavePanel)
	if err != nil {
		return nil, fmt.Errorf("creating game: %w", err)
	}
	wavePanel.OnStart(gameLogic.StartNextWave)

	camera := render.NewCamera(gameLogic.Grid, config.ScreenWidth, config.ScreenHeight)
	renderer := render.NewGridRenderer(gameLogic.Grid, lib, render.DefaultMapColors())

	kinds := gameLogic.TowerKinds.Names()
	labels := make(map[string]string, len(kinds))
	for _, k := range kinds {
		labels[k] = lib.Towers[k].Name
	}
	buildBar := ui.NewBuildBar(gameLogic.BuildSystem, kinds, labels, ui.DefaultFace)

	// Панели выше всего, камера между врагами и башнями
	gameLogic.Interaction.Add(camera, input.Camera)
	gameLogic.Interaction.Add(wavePanel, input.MacroUI)
	gameLogic.Interaction.Add(buildBar, input.MacroUI)

	if sound != nil {
		sound.Subscribe(gameLogic.EventDispatcher)
	}

	return &GameState{
		sm:        sm,
		game:      gameLogic,
		camera:    camera,
		renderer:  renderer,
		poller:    poll.NewPoller(camera),
		wavePanel: wavePanel,
		buildBar:  buildBar,
		statusBar: ui.NewStatusBar(ui.DefaultFace),
		sound:     sound,
	}, nil
}

// GetGame returns the simulation behind this state.
func (g *GameState) GetGame() *game.Game {
	return g.game
}

func (g *GameState) Enter() {
	// Ничего не делаем при входе
}

func (g *GameState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyHome) {
		g.camera.Reset()
	}

	in := g.poller.Poll()
	g.game.Update(deltaTime, in)
	g.poller.EndFrame()
}

func (g *GameState) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.camera, render.Scene{
		Towers:  g.game.Towers(),
		Enemies: g.game.Enemies(),
		Preview: g.game.BuildSystem.Preview(),
	})

	stats := g.game.Stats()
	g.statusBar.Draw(screen, ui.Status{
		Speed:    g.game.SpeedMultiplier,
		Paused:   g.game.IsPaused(),
		Killed:   stats.Killed,
		Leaked:   stats.Leaked,
		Bounty:   stats.Bounty,
		Towers:   len(g.game.Towers()),
		GameTime: g.game.GameTime(),
	})
	g.wavePanel.Draw(screen)
	g.buildBar.Draw(screen)

	if t := g.game.SelectedTower(); t != nil {
		def := t.Definition()
		ebitenutil.DebugPrintAt(screen,
			fmt.Sprintf("%s  dmg %.0f  rate %.1f/s  range %.1f  shots %d  [Del] sell", def.Name, def.Damage, def.FireRate, def.Range, t.Shots()),
			config.HUDMargin, config.HUDMargin+40)
	}
}

func (g *GameState) Exit() {
	// Ничего не делаем при выходе: пауза возвращается в это же состояние
}

// Dispose releases the game and detaches the sound player.
func (g *GameState) Dispose() {
	if g.sound != nil {
		g.sound.Unsubscribe(g.game.EventDispatcher)
	}
	g.game.Dispose()
}
