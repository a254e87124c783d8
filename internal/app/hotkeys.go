// internal/app/hotkeys.go
package app

import (
	"log"

	"go-grid-defense/internal/input"
)

// hotkeys is the world-level keyboard handler. It sits at the lowest
// priority so any UI that claims the frame wins over it.
type hotkeys struct {
	game *Game
}

func (h *hotkeys) HandleInput(in *input.State, _ float64) bool {
	g := h.game
	switch {
	case in.KeyJustPressed(input.KeySpace), in.KeyJustPressed(input.KeyN):
		return g.StartNextWave()
	case in.KeyJustPressed(input.KeyEscape):
		if g.BuildSystem.IsActive() {
			g.BuildSystem.Deactivate()
			return true
		}
	case in.KeyJustPressed(input.KeyDelete):
		return g.SellSelected()
	case in.KeyJustPressed(input.KeyF):
		g.ToggleSpeed()
		return true
	}

	kinds := g.TowerKinds.Names()
	for i, k := range []input.Key{input.Key1, input.Key2, input.Key3} {
		if i < len(kinds) && in.KeyJustPressed(k) {
			if err := g.BuildSystem.Activate(kinds[i]); err != nil {
				log.Printf("Build hotkey: %v", err)
				return false
			}
			return true
		}
	}
	return false
}
