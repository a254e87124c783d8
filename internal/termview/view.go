// Package termview draws the board in a terminal.
package termview

import (
	"fmt"
	"image/color"

	"go-grid-defense/internal/defs"
	"go-grid-defense/internal/enemy"
	"go-grid-defense/internal/tower"
	"go-grid-defense/pkg/gridmap"

	"github.com/gdamore/tcell/v2"
)

// CellWidth is how many terminal columns one grid cell takes.
const CellWidth = 2

var (
	styleEmpty   = tcell.StyleDefault.Foreground(tcell.ColorOlive)
	stylePath    = tcell.StyleDefault.Foreground(tcell.ColorTan)
	styleSpawn   = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	styleEnd     = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleBlocked = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleStatus  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Reverse(true)
)

// Glyph returns the rune a cell type is drawn with.
func Glyph(t gridmap.CellType) rune {
	switch t {
	case gridmap.Path:
		return '+'
	case gridmap.Spawn:
		return 'S'
	case gridmap.End:
		return 'E'
	case gridmap.Blocked:
		return '#'
	}
	return '.'
}

func cellStyle(t gridmap.CellType) tcell.Style {
	switch t {
	case gridmap.Path:
		return stylePath
	case gridmap.Spawn:
		return styleSpawn
	case gridmap.End:
		return styleEnd
	case gridmap.Blocked:
		return styleBlocked
	}
	return styleEmpty
}

// View renders one grid onto a tcell screen.
type View struct {
	screen tcell.Screen
	grid   *gridmap.Grid
}

func NewView(screen tcell.Screen, grid *gridmap.Grid) *View {
	return &View{screen: screen, grid: grid}
}

// Screen position of cell (x, z): one row per z, CellWidth columns per x.
func (v *View) cellOrigin(x, z int) (int, int) {
	return x * CellWidth, z
}

// Draw paints terrain, towers, live enemies and a status line, then shows
// the frame.
func (v *View) Draw(towers []*tower.Tower, enemies []*enemy.Enemy, status string) {
	v.screen.Clear()

	v.grid.ForEachCell(func(x, z int, c gridmap.Cell) {
		sx, sy := v.cellOrigin(x, z)
		v.screen.SetContent(sx, sy, Glyph(c.Type), nil, cellStyle(c.Type))
	})

	for _, t := range towers {
		c := t.Cell()
		sx, sy := v.cellOrigin(c.X, c.Z)
		style := tcell.StyleDefault.Foreground(toTcell(t.Visuals().Color)).Bold(true)
		if t.Selected() {
			style = style.Reverse(true)
		}
		v.screen.SetContent(sx, sy, glyphOf(t.Visuals(), 'T'), nil, style)
	}

	for _, e := range enemies {
		if e.Done() {
			continue
		}
		x, z := v.grid.WorldToGrid(e.Position())
		if !v.grid.InBounds(x, z) {
			continue
		}
		sx, sy := v.cellOrigin(x, z)
		style := tcell.StyleDefault.Foreground(toTcell(e.Visuals().Color))
		v.screen.SetContent(sx+1, sy, glyphOf(e.Visuals(), 'e'), nil, style)
	}

	dims := v.grid.Dimensions()
	v.drawText(0, dims.Height+1, status, styleStatus)
	v.screen.Show()
}

func (v *View) drawText(x, y int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		v.screen.SetContent(x+i, y, r, nil, style)
	}
}

// Status formats a one-line summary for the status row.
func Status(wave, waves int, state string, progress, total, killed, leaked int, speed float64) string {
	return fmt.Sprintf(" wave %d/%d %s  %d/%d  killed %d  leaked %d  x%.0f  [space] next  [f] speed  [q] quit ",
		wave, waves, state, progress, total, killed, leaked, speed)
}

func glyphOf(v defs.Visuals, fallback rune) rune {
	for _, r := range v.Glyph {
		return r
	}
	return fallback
}

func toTcell(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
