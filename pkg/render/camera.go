// pkg/render/camera.go
package render

import (
	"math"

	"go-grid-defense/internal/config"
	"go-grid-defense/internal/input"
	"go-grid-defense/pkg/gridmap"
)

// Camera is a top-down orthographic view of the board: world X runs right,
// world Z runs down the screen. It pans with WASD/arrows or a middle-button
// drag and zooms with the wheel.
type Camera struct {
	grid    *gridmap.Grid
	center  gridmap.Vec3
	zoom    float64
	screenW float64
	screenH float64

	dragging     bool
	dragX, dragY int
}

var (
	_ input.Projector    = (*Camera)(nil)
	_ input.Interactable = (*Camera)(nil)
)

// NewCamera frames the whole board on a screen of the given size.
func NewCamera(grid *gridmap.Grid, screenW, screenH int) *Camera {
	c := &Camera{
		grid:    grid,
		screenW: float64(screenW),
		screenH: float64(screenH),
	}
	c.Reset()
	return c
}

// Reset recentres on the board with a zoom that fits it.
func (c *Camera) Reset() {
	c.center = c.grid.Center()
	fit := math.Min(c.screenW, c.screenH) * 0.9 / (c.grid.Size() * config.CellPixels)
	c.zoom = clamp(fit, config.CameraMinZoom, config.CameraMaxZoom)
}

// Scale is the number of pixels per world unit.
func (c *Camera) Scale() float64 {
	return config.CellPixels * c.zoom
}

func (c *Camera) Zoom() float64            { return c.zoom }
func (c *Camera) Center() gridmap.Vec3     { return c.center }
func (c *Camera) SetCenter(v gridmap.Vec3) { c.center = v.Flat() }

// WorldToScreen projects a world position. Height is ignored; the renderer
// shades terrain instead.
func (c *Camera) WorldToScreen(w gridmap.Vec3) (float32, float32) {
	s := c.Scale()
	sx := (w.X-c.center.X)*s + c.screenW/2
	sy := (w.Z-c.center.Z)*s + c.screenH/2
	return float32(sx), float32(sy)
}

// ScreenToWorld returns the ground point under a pixel. It reports false
// when the pixel is off the board.
func (c *Camera) ScreenToWorld(x, y int) (gridmap.Vec3, bool) {
	s := c.Scale()
	w := gridmap.Vec3{
		X: (float64(x)-c.screenW/2)/s + c.center.X,
		Z: (float64(y)-c.screenH/2)/s + c.center.Z,
	}
	gx, gz := c.grid.WorldToGrid(w)
	if !c.grid.InBounds(gx, gz) {
		return gridmap.Vec3{}, false
	}
	w.Y = c.grid.HeightAt(w.X, w.Z)
	return w, true
}

// HandleInput pans and zooms. Only a middle-button drag claims the input.
func (c *Camera) HandleInput(in *input.State, deltaTime float64) bool {
	step := config.CameraPanSpeed * deltaTime / c.Scale()
	if in.KeyDown(input.KeyW) || in.KeyDown(input.KeyUp) {
		c.center.Z -= step
	}
	if in.KeyDown(input.KeyS) || in.KeyDown(input.KeyDown) {
		c.center.Z += step
	}
	if in.KeyDown(input.KeyA) || in.KeyDown(input.KeyLeft) {
		c.center.X -= step
	}
	if in.KeyDown(input.KeyD) || in.KeyDown(input.KeyRight) {
		c.center.X += step
	}

	if in.WheelY != 0 {
		c.zoom = clamp(c.zoom*(1+in.WheelY*config.CameraZoomStep), config.CameraMinZoom, config.CameraMaxZoom)
	}

	// Держим центр над доской
	half := c.grid.Size() / 2
	mid := c.grid.Center()
	c.center.X = clamp(c.center.X, mid.X-half, mid.X+half)
	c.center.Z = clamp(c.center.Z, mid.Z-half, mid.Z+half)

	if in.JustPressed(input.ButtonMiddle) {
		c.dragging = true
		c.dragX, c.dragY = in.CursorX, in.CursorY
		return true
	}
	if c.dragging {
		if !in.IsDown(input.ButtonMiddle) {
			c.dragging = false
			return false
		}
		s := c.Scale()
		c.center.X -= float64(in.CursorX-c.dragX) / s
		c.center.Z -= float64(in.CursorY-c.dragY) / s
		c.dragX, c.dragY = in.CursorX, in.CursorY
		return true
	}
	return false
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
