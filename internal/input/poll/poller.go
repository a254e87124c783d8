// Package poll fills input snapshots from ebiten.
package poll

import (
	"go-grid-defense/internal/input"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var buttons = map[input.Button]ebiten.MouseButton{
	input.ButtonPrimary:   ebiten.MouseButtonLeft,
	input.ButtonMiddle:    ebiten.MouseButtonMiddle,
	input.ButtonSecondary: ebiten.MouseButtonRight,
}

var keys = map[input.Key]ebiten.Key{
	input.KeySpace:  ebiten.KeySpace,
	input.KeyEscape: ebiten.KeyEscape,
	input.KeyEnter:  ebiten.KeyEnter,
	input.KeyDelete: ebiten.KeyDelete,
	input.KeyUp:     ebiten.KeyArrowUp,
	input.KeyDown:   ebiten.KeyArrowDown,
	input.KeyLeft:   ebiten.KeyArrowLeft,
	input.KeyRight:  ebiten.KeyArrowRight,
	input.KeyW:      ebiten.KeyW,
	input.KeyA:      ebiten.KeyA,
	input.KeyS:      ebiten.KeyS,
	input.KeyD:      ebiten.KeyD,
	input.KeyF:      ebiten.KeyF,
	input.KeyP:      ebiten.KeyP,
	input.KeyN:      ebiten.KeyN,
	input.Key1:      ebiten.Key1,
	input.Key2:      ebiten.Key2,
	input.Key3:      ebiten.Key3,
}

// Poller samples ebiten once per frame into an input.State.
type Poller struct {
	state     *input.State
	projector input.Projector
}

func NewPoller(projector input.Projector) *Poller {
	return &Poller{
		state:     input.NewState(),
		projector: projector,
	}
}

// Poll refreshes and returns the shared snapshot.
func (p *Poller) Poll() *input.State {
	s := p.state

	x, y := ebiten.CursorPosition()
	s.SetCursor(x, y)

	for b, eb := range buttons {
		s.SetButton(b,
			ebiten.IsMouseButtonPressed(eb),
			inpututil.IsMouseButtonJustPressed(eb),
			inpututil.IsMouseButtonJustReleased(eb))
	}
	for k, ek := range keys {
		s.SetKey(k, ebiten.IsKeyPressed(ek), inpututil.IsKeyJustPressed(ek))
	}

	_, s.WheelY = ebiten.Wheel()

	if p.projector != nil {
		if w, ok := p.projector.ScreenToWorld(x, y); ok {
			s.SetWorldPosition(w)
		} else {
			s.ClearWorldPosition()
		}
	}
	return s
}

// EndFrame clears per-frame edges once every consumer has seen the snapshot.
func (p *Poller) EndFrame() {
	p.state.EndFrame()
}
