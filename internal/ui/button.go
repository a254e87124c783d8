// internal/ui/button.go
package ui

import (
	"image"
	"image/color"

	"go-grid-defense/internal/config"
	"go-grid-defense/internal/input"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// DefaultFace is the bitmap font every panel uses.
var DefaultFace font.Face = basicfont.Face7x13

// Button представляет собой кликабельную кнопку в UI.
type Button struct {
	Rect     image.Rectangle
	Text     string
	Enabled  bool
	Active   bool // подсвечена как выбранная
	hovered  bool
	fontFace font.Face
}

// NewButton создает новую кнопку.
func NewButton(rect image.Rectangle, label string, face font.Face) *Button {
	if face == nil {
		face = DefaultFace
	}
	return &Button{Rect: rect, Text: label, Enabled: true, fontFace: face}
}

// Contains reports whether a screen point is over the button.
func (b *Button) Contains(x, y int) bool {
	return image.Pt(x, y).In(b.Rect)
}

// Update tracks hover and reports a primary click on an enabled button.
func (b *Button) Update(in *input.State) bool {
	b.hovered = b.Contains(in.CursorX, in.CursorY)
	return b.Enabled && b.hovered && in.JustPressed(input.ButtonPrimary)
}

// Draw отрисовывает кнопку.
func (b *Button) Draw(screen *ebiten.Image) {
	bg := config.ButtonColor
	switch {
	case !b.Enabled:
		bg = config.ButtonOffColor
	case b.hovered || b.Active:
		bg = config.ButtonHoverColor
	}
	x, y := float32(b.Rect.Min.X), float32(b.Rect.Min.Y)
	w, h := float32(b.Rect.Dx()), float32(b.Rect.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, bg, false)

	border := config.PanelBorderColor
	if b.Active {
		border = config.SelectionColor
	}
	vector.StrokeRect(screen, x, y, w, h, 2, border, false)

	var textColor color.Color = config.TextColor
	if !b.Enabled {
		textColor = color.RGBA{160, 160, 160, 255}
	}
	bounds := text.BoundString(b.fontFace, b.Text)
	textX := b.Rect.Min.X + (b.Rect.Dx()-bounds.Dx())/2
	textY := b.Rect.Min.Y + (b.Rect.Dy()-bounds.Dy())/2 - bounds.Min.Y
	text.Draw(screen, b.Text, b.fontFace, textX, textY, textColor)
}

// drawPanel рисует фон и рамку панели.
func drawPanel(screen *ebiten.Image, r image.Rectangle) {
	x, y := float32(r.Min.X), float32(r.Min.Y)
	w, h := float32(r.Dx()), float32(r.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, config.PanelColor, false)
	vector.StrokeRect(screen, x, y, w, h, 2, config.PanelBorderColor, false)
}
