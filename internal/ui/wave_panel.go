// internal/ui/wave_panel.go
package ui

import (
	"fmt"
	"image"

	"go-grid-defense/internal/config"
	"go-grid-defense/internal/defs"
	"go-grid-defense/internal/input"
	"go-grid-defense/internal/system"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

const (
	lineHeight    = 18
	panelPadding  = 12
	buttonHeight  = 32
	headerSpacing = 8
)

var (
	_ system.WavePresenter = (*WavePanel)(nil)
	_ input.Interactable   = (*WavePanel)(nil)
)

// WavePanel shows the wave manager's state in the top-right corner and
// offers a button to start the next wave.
type WavePanel struct {
	waves    []defs.WaveData
	current  int
	started  bool
	state    system.WaveState
	progress [2]int

	rect        image.Rectangle
	lines       []panelLine
	startButton *Button
	onStart     func() bool
	fontFace    font.Face
}

type panelLine struct {
	text  string
	kind  lineKind
	extra int // дополнительный отступ сверху
}

type lineKind int

const (
	lineHeader lineKind = iota
	lineInfo
	lineProgress
	lineComplete
	lineEnemy
)

func NewWavePanel(face font.Face) *WavePanel {
	if face == nil {
		face = DefaultFace
	}
	p := &WavePanel{
		fontFace:    face,
		startButton: NewButton(image.Rectangle{}, "Start Next Wave", face),
	}
	p.layout()
	return p
}

// OnStart sets the start-button action. It returns whether a wave started.
func (p *WavePanel) OnStart(fn func() bool) { p.onStart = fn }

func (p *WavePanel) SetWaves(waves []defs.WaveData) {
	p.waves = waves
	p.started = false
	p.layout()
}

func (p *WavePanel) SetCurrentWave(index int) {
	p.current = index
	p.layout()
}

func (p *WavePanel) SetWaveState(s system.WaveState) {
	if s == system.WaveSpawning {
		p.started = true
	}
	p.state = s
	p.layout()
}

func (p *WavePanel) SetProgress(current, total int) {
	p.progress = [2]int{current, total}
	p.layout()
}

// Header is the "Wave N of M" title.
func (p *WavePanel) Header() string {
	return fmt.Sprintf("Wave %d of %d", p.current+1, len(p.waves))
}

// nextWave is the wave the start button would launch.
func (p *WavePanel) nextWave() (defs.WaveData, bool) {
	next := p.current + 1
	if !p.started {
		next = p.current
	}
	if next < 0 || next >= len(p.waves) {
		return defs.WaveData{}, false
	}
	return p.waves[next], true
}

func (p *WavePanel) canStart() bool {
	_, ok := p.nextWave()
	return ok && (p.state == system.WaveWaiting || p.state == system.WaveCompleted)
}

// layout пересчитывает строки и размеры панели.
func (p *WavePanel) layout() {
	p.lines = p.lines[:0]
	p.lines = append(p.lines, panelLine{text: p.Header(), kind: lineHeader})

	switch p.state {
	case system.WaveCompleted:
		p.lines = append(p.lines, panelLine{text: "Wave Complete!", kind: lineComplete, extra: headerSpacing})
	case system.WaveSpawning, system.WaveInProgress:
		p.lines = append(p.lines, panelLine{
			text:  fmt.Sprintf("Progress: %d/%d enemies defeated", p.progress[0], p.progress[1]),
			kind:  lineProgress,
			extra: headerSpacing,
		})
	}

	showButton := false
	if next, ok := p.nextWave(); ok && (p.state == system.WaveWaiting || p.state == system.WaveCompleted) {
		showButton = true
		p.lines = append(p.lines, panelLine{text: "Next Wave: " + next.Name, kind: lineInfo, extra: headerSpacing})
		for _, s := range next.Summary() {
			p.lines = append(p.lines, panelLine{text: s, kind: lineEnemy})
		}
	}

	h := panelPadding*2 + len(p.lines)*lineHeight
	for _, l := range p.lines {
		h += l.extra
	}
	if showButton {
		h += buttonHeight + headerSpacing
	}
	x := config.ScreenWidth - config.WavePanelWidth - config.HUDMargin
	y := config.HUDMargin
	p.rect = image.Rect(x, y, x+config.WavePanelWidth, y+h)

	p.startButton.Enabled = showButton && p.canStart()
	if showButton {
		p.startButton.Rect = image.Rect(
			p.rect.Min.X+panelPadding,
			p.rect.Max.Y-panelPadding-buttonHeight,
			p.rect.Max.X-panelPadding,
			p.rect.Max.Y-panelPadding,
		)
	} else {
		p.startButton.Rect = image.Rectangle{}
	}
}

// HandleInput runs the start button. Any primary press over the panel is
// claimed so it cannot build underneath.
func (p *WavePanel) HandleInput(in *input.State, _ float64) bool {
	if p.startButton.Update(in) && p.onStart != nil {
		p.onStart()
		return true
	}
	return in.JustPressed(input.ButtonPrimary) && image.Pt(in.CursorX, in.CursorY).In(p.rect)
}

func (p *WavePanel) Draw(screen *ebiten.Image) {
	drawPanel(screen, p.rect)

	y := p.rect.Min.Y + panelPadding
	for _, l := range p.lines {
		y += l.extra + lineHeight
		x := p.rect.Min.X + panelPadding
		clr := config.TextColor
		switch l.kind {
		case lineHeader:
			clr = config.HeaderColor
			b := text.BoundString(p.fontFace, l.text)
			x = p.rect.Min.X + (p.rect.Dx()-b.Dx())/2
		case lineProgress:
			clr = config.HeaderColor
		case lineComplete:
			clr = config.CompleteColor
		case lineEnemy:
			x += 12
		}
		text.Draw(screen, l.text, p.fontFace, x, y-4, clr)
	}

	if p.startButton.Rect != (image.Rectangle{}) {
		p.startButton.Draw(screen)
	}
}
