// internal/state/menu_state.go
package state

import (
	"fmt"
	"image/color"
	"log"

	"go-grid-defense/internal/config"
	"go-grid-defense/internal/defs"
	"go-grid-defense/internal/level"
	"go-grid-defense/internal/sfx"
	"go-grid-defense/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
)

// MenuState — титульный экран уровня
type MenuState struct {
	sm    *StateMachine
	level *level.Level
	lib   *defs.Library
	sound *sfx.Player
	lines []string
	err   error
}

func NewMenuState(sm *StateMachine, lvl *level.Level, lib *defs.Library, sound *sfx.Player) *MenuState {
	m := &MenuState{sm: sm, level: lvl, lib: lib, sound: sound}
	meta := lvl.Data().Metadata
	dims := lvl.Grid().Dimensions()
	m.lines = append(m.lines,
		meta.Name,
		fmt.Sprintf("%dx%d, %d waves", dims.Width, dims.Height, len(lvl.Waves())),
		"",
	)
	for i, w := range lvl.Waves() {
		m.lines = append(m.lines, fmt.Sprintf("%d. %s (%d enemies)", i+1, w.Name, w.TotalEnemies()))
	}
	m.lines = append(m.lines, "", "Press Space to start")
	return m
}

func (m *MenuState) Enter() {
	// Ничего не делаем при входе
}

func (m *MenuState) Update(deltaTime float64) {
	if !inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		return
	}
	gs, err := NewGameState(m.sm, m.level, m.lib, m.sound)
	if err != nil {
		log.Printf("Cannot start level: %v", err)
		m.err = err
		return
	}
	m.sm.SetState(gs)
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	y := config.ScreenHeight / 3
	for i, l := range m.lines {
		var clr color.Color = config.TextColor
		if i == 0 {
			clr = config.HeaderColor
		}
		b := text.BoundString(ui.DefaultFace, l)
		text.Draw(screen, l, ui.DefaultFace, (config.ScreenWidth-b.Dx())/2, y, clr)
		y += 20
	}
	if m.err != nil {
		text.Draw(screen, m.err.Error(), ui.DefaultFace, config.HUDMargin, config.ScreenHeight-config.HUDMargin, config.EndColor)
	}
}

func (m *MenuState) Exit() {
	// Ничего не делаем при выходе
}
