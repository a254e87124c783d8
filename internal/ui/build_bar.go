// internal/ui/build_bar.go
package ui

import (
	"fmt"
	"image"
	"log"

	"go-grid-defense/internal/config"
	"go-grid-defense/internal/input"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
)

const (
	buildButtonWidth  = 140
	buildButtonHeight = 36
	buildButtonGap    = 8
)

// BuildController is the part of the build system the bar drives.
type BuildController interface {
	Activate(kind string) error
	Deactivate()
	IsActive() bool
	ActiveKind() string
}

var _ input.Interactable = (*BuildBar)(nil)

// BuildBar is a row of tower buttons along the bottom edge. Clicking a
// button starts a build session; clicking the active one ends it.
type BuildBar struct {
	build   BuildController
	kinds   []string
	buttons []*Button
	rect    image.Rectangle
}

// NewBuildBar lays out one button per kind. labels maps kind ids to display
// names; missing entries fall back to the id.
func NewBuildBar(build BuildController, kinds []string, labels map[string]string, face font.Face) *BuildBar {
	b := &BuildBar{build: build, kinds: kinds}
	x := config.HUDMargin
	y := config.ScreenHeight - config.HUDMargin - buildButtonHeight
	for i, k := range kinds {
		label := labels[k]
		if label == "" {
			label = k
		}
		r := image.Rect(x, y, x+buildButtonWidth, y+buildButtonHeight)
		b.buttons = append(b.buttons, NewButton(r, fmt.Sprintf("%d %s", i+1, label), face))
		x += buildButtonWidth + buildButtonGap
	}
	if len(b.buttons) > 0 {
		b.rect = image.Rect(config.HUDMargin, y, x-buildButtonGap, y+buildButtonHeight)
	}
	return b
}

func (b *BuildBar) HandleInput(in *input.State, _ float64) bool {
	for i, btn := range b.buttons {
		btn.Active = b.build.IsActive() && b.build.ActiveKind() == b.kinds[i]
		if !btn.Update(in) {
			continue
		}
		if btn.Active {
			b.build.Deactivate()
			return true
		}
		if err := b.build.Activate(b.kinds[i]); err != nil {
			log.Printf("Build bar: %v", err)
		}
		return true
	}
	// Клики по промежуткам между кнопками не должны строить под панелью
	return in.JustPressed(input.ButtonPrimary) && image.Pt(in.CursorX, in.CursorY).In(b.rect)
}

func (b *BuildBar) Draw(screen *ebiten.Image) {
	for _, btn := range b.buttons {
		btn.Draw(screen)
	}
}
