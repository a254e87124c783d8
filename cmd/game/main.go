// cmd/game/main.go
package main

import (
	"log"
	"os"
	"time"

	"go-grid-defense/internal/app"
	"go-grid-defense/internal/config"
	"go-grid-defense/internal/sfx"
	"go-grid-defense/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	var (
		levelPath string
		defsPath  string
		mute      bool
		skipMenu  bool
	)

	rootCmd := &cobra.Command{
		Use:   "grid-defense",
		Short: "Grid tower defense",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return run(levelPath, defsPath, mute, skipMenu)
		},
	}
	rootCmd.Flags().StringVarP(&levelPath, "level", "l", "", "level file (.yaml or .json); built-in level if empty")
	rootCmd.Flags().StringVarP(&defsPath, "defs", "d", "", "enemy and tower definitions (.json)")
	rootCmd.Flags().BoolVar(&mute, "mute", false, "disable sound")
	rootCmd.Flags().BoolVar(&skipMenu, "skip-menu", false, "start playing immediately")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(levelPath, defsPath string, mute, skipMenu bool) error {
	lvl, lib, err := app.LoadAssets(levelPath, defsPath)
	if err != nil {
		return err
	}

	var sound *sfx.Player
	if !mute {
		sound = sfx.NewPlayer()
		if err := sound.Init(); err != nil {
			log.Printf("Audio disabled: %v", err)
		}
		defer sound.Close()
	}

	sm := state.NewStateMachine() // Создаём машину состояний
	defer sm.Close()
	if skipMenu {
		gs, err := state.NewGameState(sm, lvl, lib, sound)
		if err != nil {
			return err
		}
		sm.SetState(gs)
	} else {
		sm.SetState(state.NewMenuState(sm, lvl, lib, sound))
	}

	game := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Grid Defense: " + lvl.Data().Metadata.Name)
	return ebiten.RunGame(game)
}
