// internal/tower/tower.go
package tower

import (
	"math"

	"go-grid-defense/internal/config"
	"go-grid-defense/internal/defs"
	"go-grid-defense/internal/enemy"
	"go-grid-defense/internal/input"
	"go-grid-defense/internal/types"
	"go-grid-defense/internal/utils"
	"go-grid-defense/pkg/gridmap"
)

// Targets supplies the enemies a tower may shoot at, in spawn order.
type Targets interface {
	ActiveEnemies() []*enemy.Enemy
}

// Tower is a static defender anchored to one grid cell.
type Tower struct {
	ID   types.EntityID
	Kind string

	def      defs.TowerDefinition
	cell     gridmap.Point
	pos      gridmap.Vec3
	targets  Targets
	half     float64 // половина клетки, зона клика
	cooldown float64
	facing   float64 // направление последнего выстрела
	turret   float64 // сглаженный поворот башни для отрисовки
	selected bool
	shots    int
	onFire   func(t *Tower, target *enemy.Enemy)
	onSelect func(t *Tower)
}

// New builds a tower at a grid cell. targets may be nil for towers that
// never shoot (previews, tests).
func New(def defs.TowerDefinition, grid *gridmap.Grid, cell gridmap.Point, targets Targets) *Tower {
	return &Tower{
		Kind:    def.ID,
		def:     def,
		cell:    cell,
		pos:     grid.GridToWorld(cell.X, cell.Z),
		targets: targets,
		half:    grid.Config().TileSize / 2,
	}
}

// OnFire registers a callback run after every shot.
func (t *Tower) OnFire(fn func(t *Tower, target *enemy.Enemy)) {
	t.onFire = fn
}

// OnSelect registers a callback run when a click selects the tower. The
// owner uses it to keep a single selection across towers.
func (t *Tower) OnSelect(fn func(t *Tower)) {
	t.onSelect = fn
}

// Update reloads and, when ready, shoots the first enemy in range.
func (t *Tower) Update(deltaTime float64) {
	if t.cooldown > 0 {
		t.cooldown -= deltaTime
	}
	t.turret = utils.LerpAngle(t.turret, t.facing, math.Min(1, deltaTime*config.TurretTurnRate))
	if t.cooldown > 0 || t.targets == nil || t.def.FireRate <= 0 {
		return
	}

	target := t.findTarget()
	if target == nil {
		return
	}

	target.TakeDamage(t.def.Damage)
	t.shots++
	t.cooldown = 1.0 / t.def.FireRate
	p := target.Position()
	t.facing = math.Atan2(p.X-t.pos.X, p.Z-t.pos.Z)
	if t.onFire != nil {
		t.onFire(t, target)
	}
}

// findTarget picks the oldest enemy still on the board within range.
func (t *Tower) findTarget() *enemy.Enemy {
	for _, e := range t.targets.ActiveEnemies() {
		if e.Done() {
			continue
		}
		if t.pos.DistXZ(e.Position()) <= t.def.Range {
			return e
		}
	}
	return nil
}

// HandleInput selects the tower when its cell is clicked and deselects it on
// a click anywhere else. Only a click on the tower itself is claimed.
func (t *Tower) HandleInput(in *input.State, _ float64) bool {
	if !in.JustPressed(input.ButtonPrimary) {
		return false
	}
	w, ok := in.WorldPosition()
	if !ok {
		return false
	}
	if t.covers(w) {
		t.selected = true
		if t.onSelect != nil {
			t.onSelect(t)
		}
		return true
	}
	t.selected = false
	return false
}

func (t *Tower) covers(w gridmap.Vec3) bool {
	return math.Abs(w.X-t.pos.X) <= t.half && math.Abs(w.Z-t.pos.Z) <= t.half
}

func (t *Tower) Cell() gridmap.Point              { return t.cell }
func (t *Tower) Position() gridmap.Vec3           { return t.pos }
func (t *Tower) Facing() float64                  { return t.facing }
func (t *Tower) Turret() float64                  { return t.turret }
func (t *Tower) Selected() bool                   { return t.selected }
func (t *Tower) SetSelected(v bool)               { t.selected = v }
func (t *Tower) Shots() int                       { return t.shots }
func (t *Tower) Range() float64                   { return t.def.Range }
func (t *Tower) Visuals() defs.Visuals            { return t.def.Visuals }
func (t *Tower) Definition() defs.TowerDefinition { return t.def }
