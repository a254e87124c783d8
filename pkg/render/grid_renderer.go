// pkg/render/grid_renderer.go
package render

import (
	"image/color"
	"math"

	"go-grid-defense/internal/config"
	"go-grid-defense/internal/defs"
	"go-grid-defense/internal/enemy"
	"go-grid-defense/internal/system"
	"go-grid-defense/internal/tower"
	"go-grid-defense/pkg/gridmap"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Scene is what one frame shows on top of the terrain.
type Scene struct {
	Towers  []*tower.Tower
	Enemies []*enemy.Enemy
	Preview *system.Preview
}

type GridRenderer struct {
	grid     *gridmap.Grid
	library  *defs.Library
	colors   *MapColors
	mapImage *ebiten.Image // предрендеренная карта в масштабе 1
	minH     float64
	maxH     float64
}

func NewGridRenderer(grid *gridmap.Grid, library *defs.Library, colors *MapColors) *GridRenderer {
	if colors == nil {
		colors = DefaultMapColors()
	}
	dims := grid.Dimensions()
	r := &GridRenderer{
		grid:     grid,
		library:  library,
		colors:   colors,
		mapImage: ebiten.NewImage(int(float64(dims.Width)*config.CellPixels), int(float64(dims.Height)*config.CellPixels)),
	}
	r.RenderMapImage()
	return r
}

// RenderMapImage redraws the cached terrain. Call it after cell types change.
func (r *GridRenderer) RenderMapImage() {
	r.mapImage.Clear()

	r.minH, r.maxH = math.Inf(1), math.Inf(-1)
	dims := r.grid.Dimensions()
	for z := 0; z <= dims.Height; z++ {
		for x := 0; x <= dims.Width; x++ {
			h := r.grid.GridHeight(x, z)
			r.minH = math.Min(r.minH, h)
			r.maxH = math.Max(r.maxH, h)
		}
	}

	px := float32(config.CellPixels)
	r.grid.ForEachCell(func(x, z int, c gridmap.Cell) {
		fill := ShadeColor(r.colors.CellColor(x, z, c.Type), r.heightShade(x, z))
		x0, z0 := float32(x)*px, float32(z)*px
		vector.DrawFilledRect(r.mapImage, x0, z0, px, px, fill, false)
		vector.StrokeRect(r.mapImage, x0, z0, px, px, r.colors.StrokeWidth, DarkenColor(fill), false)

		// Стрелки выходов пути
		mask := r.grid.PathDirections(x, z)
		cx, cz := x0+px/2, z0+px/2
		for _, d := range mask.Directions() {
			dx, dz := d.Offset()
			vector.StrokeLine(r.mapImage, cx, cz, cx+float32(dx)*px*0.35, cz+float32(dz)*px*0.35, 2, DarkenColor(r.colors.PathColor), true)
		}
	})
}

// heightShade maps the average corner height of a cell to a brightness factor.
func (r *GridRenderer) heightShade(x, z int) float64 {
	if r.maxH-r.minH < 1e-9 {
		return 1
	}
	avg := (r.grid.GridHeight(x, z) + r.grid.GridHeight(x+1, z) +
		r.grid.GridHeight(x, z+1) + r.grid.GridHeight(x+1, z+1)) / 4
	return 0.75 + 0.4*(avg-r.minH)/(r.maxH-r.minH)
}

func (r *GridRenderer) Draw(screen *ebiten.Image, cam *Camera, scene Scene) {
	screen.Fill(r.colors.BackgroundColor)

	origin := gridmap.Vec3{}
	ox, oy := cam.WorldToScreen(origin)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(cam.Zoom(), cam.Zoom())
	op.GeoM.Translate(float64(ox), float64(oy))
	screen.DrawImage(r.mapImage, op)

	scale := float32(cam.Scale())
	for _, t := range scene.Towers {
		r.drawTower(screen, cam, scale, t)
	}
	for _, e := range scene.Enemies {
		if e.Done() {
			continue
		}
		r.drawEnemy(screen, cam, scale, e)
	}
	if scene.Preview != nil && scene.Preview.Visible {
		r.drawPreview(screen, cam, scale, scene.Preview)
	}
}

func (r *GridRenderer) drawTower(screen *ebiten.Image, cam *Camera, scale float32, t *tower.Tower) {
	x, y := cam.WorldToScreen(t.Position())
	v := t.Visuals()
	radius := scale * float32(config.TowerRadius*radiusFactor(v))
	vector.DrawFilledCircle(screen, x, y, radius, v.Color, true)
	vector.StrokeCircle(screen, x, y, radius, 2, DarkenColor(v.Color), true)

	fx := x + float32(math.Sin(t.Turret()))*radius
	fy := y + float32(math.Cos(t.Turret()))*radius
	vector.StrokeLine(screen, x, y, fx, fy, 3, color.White, true)

	if t.Selected() {
		vector.StrokeCircle(screen, x, y, radius+3, 2, config.SelectionColor, true)
		vector.StrokeCircle(screen, x, y, float32(t.Range())*scale, 1, WithAlpha(config.SelectionColor, 160), true)
	}
}

func (r *GridRenderer) drawEnemy(screen *ebiten.Image, cam *Camera, scale float32, e *enemy.Enemy) {
	x, y := cam.WorldToScreen(e.Position())
	v := e.Visuals()
	half := scale * float32(config.EnemyRadius*radiusFactor(v))
	vector.DrawFilledRect(screen, x-half, y-half, half*2, half*2, v.Color, true)
	if e.Hovered() {
		vector.StrokeRect(screen, x-half, y-half, half*2, half*2, 2, config.SelectionColor, true)
	}

	fx := x + float32(math.Sin(e.Facing()))*half
	fy := y + float32(math.Cos(e.Facing()))*half
	vector.StrokeLine(screen, x, y, fx, fy, 2, DarkenColor(v.Color), true)

	// Полоска здоровья
	if e.MaxHealth() > 0 && e.Health() < e.MaxHealth() {
		frac := float32(math.Max(0, e.Health()/e.MaxHealth()))
		w := half * 2
		vector.DrawFilledRect(screen, x-half, y-half-6, w, 3, color.RGBA{60, 0, 0, 255}, false)
		vector.DrawFilledRect(screen, x-half, y-half-6, w*frac, 3, color.RGBA{0, 220, 0, 255}, false)
	}
}

func (r *GridRenderer) drawPreview(screen *ebiten.Image, cam *Camera, scale float32, p *system.Preview) {
	x, y := cam.WorldToScreen(p.Position)
	cell := config.UnplaceableColor
	if p.Placeable {
		cell = config.PlaceableColor
	}
	vector.DrawFilledRect(screen, x-scale/2, y-scale/2, scale, scale, cell, false)

	def, ok := r.library.Towers[p.Kind]
	if !ok {
		return
	}
	radius := scale * float32(config.TowerRadius*radiusFactor(def.Visuals))
	vector.DrawFilledCircle(screen, x, y, radius, WithAlpha(def.Visuals.Color, config.PreviewAlpha), true)
	vector.StrokeCircle(screen, x, y, float32(def.Range)*scale, 1, WithAlpha(cell, 200), true)
}

func radiusFactor(v defs.Visuals) float64 {
	if v.RadiusFactor <= 0 {
		return 1
	}
	return v.RadiusFactor
}
