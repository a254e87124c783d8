// internal/ui/status_bar.go
package ui

import (
	"fmt"
	"image"

	"go-grid-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// Status is one frame's worth of numbers for the status bar.
type Status struct {
	Speed    float64
	Paused   bool
	Killed   int
	Leaked   int
	Bounty   int
	Towers   int
	GameTime float64
}

// StatusBar рисует строку состояния в левом верхнем углу.
type StatusBar struct {
	fontFace font.Face
}

func NewStatusBar(face font.Face) *StatusBar {
	if face == nil {
		face = DefaultFace
	}
	return &StatusBar{fontFace: face}
}

func (s *StatusBar) Draw(screen *ebiten.Image, st Status) {
	line := fmt.Sprintf("x%.0f  Killed %d  Leaked %d  Bounty %d  Towers %d  %s",
		st.Speed, st.Killed, st.Leaked, st.Bounty, st.Towers, clock(st.GameTime))
	if st.Paused {
		line = "PAUSED  " + line
	}
	b := text.BoundString(s.fontFace, line)
	r := image.Rect(config.HUDMargin, config.HUDMargin, config.HUDMargin+b.Dx()+2*panelPadding, config.HUDMargin+lineHeight+panelPadding)
	drawPanel(screen, r)
	text.Draw(screen, line, s.fontFace, r.Min.X+panelPadding, r.Min.Y+lineHeight, config.TextColor)
}

func clock(seconds float64) string {
	total := int(seconds)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
