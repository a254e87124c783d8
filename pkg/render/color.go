// pkg/render/color.go
package render

import (
	"image/color"

	"go-grid-defense/internal/config"
	"go-grid-defense/pkg/gridmap"
)

// MapColors holds all the color definitions needed to render the static map background.
type MapColors struct {
	BackgroundColor color.RGBA
	EmptyLightColor color.RGBA
	EmptyDarkColor  color.RGBA
	PathColor       color.RGBA
	SpawnColor      color.RGBA
	EndColor        color.RGBA
	BlockedColor    color.RGBA
	StrokeWidth     float32
}

// DefaultMapColors берёт палитру из config.
func DefaultMapColors() *MapColors {
	return &MapColors{
		BackgroundColor: config.BackgroundColor,
		EmptyLightColor: config.EmptyLightColor,
		EmptyDarkColor:  config.EmptyDarkColor,
		PathColor:       config.PathColor,
		SpawnColor:      config.SpawnColor,
		EndColor:        config.EndColor,
		BlockedColor:    config.BlockedColor,
		StrokeWidth:     1,
	}
}

// CellColor returns the base fill of a cell. EMPTY cells alternate in a
// checkerboard.
func (m *MapColors) CellColor(x, z int, t gridmap.CellType) color.RGBA {
	switch t {
	case gridmap.Path:
		return m.PathColor
	case gridmap.Spawn:
		return m.SpawnColor
	case gridmap.End:
		return m.EndColor
	case gridmap.Blocked:
		return m.BlockedColor
	}
	if (x+z)%2 == 0 {
		return m.EmptyLightColor
	}
	return m.EmptyDarkColor
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return ShadeColor(c, 0.5)
}

// ShadeColor multiplies RGB by f, clamped to [0, 255].
func ShadeColor(c color.RGBA, f float64) color.RGBA {
	scale := func(v uint8) uint8 {
		s := float64(v) * f
		if s > 255 {
			return 255
		}
		if s < 0 {
			return 0
		}
		return uint8(s)
	}
	return color.RGBA{R: scale(c.R), G: scale(c.G), B: scale(c.B), A: c.A}
}

// WithAlpha returns c with its alpha replaced.
func WithAlpha(c color.RGBA, a uint8) color.RGBA {
	c.A = a
	return c
}
