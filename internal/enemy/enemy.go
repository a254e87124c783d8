// internal/enemy/enemy.go
package enemy

import (
	"math"

	"go-grid-defense/internal/config"
	"go-grid-defense/internal/defs"
	"go-grid-defense/internal/input"
	"go-grid-defense/internal/types"
	"go-grid-defense/pkg/gridmap"
)

// Status is the lifecycle state of an enemy.
type Status uint8

const (
	Moving Status = iota
	ReachedEnd
	Dead
	Stalled // стоит на тупиковой клетке, которая не является выходом
)

func (s Status) String() string {
	switch s {
	case Moving:
		return "moving"
	case ReachedEnd:
		return "reached-end"
	case Dead:
		return "dead"
	case Stalled:
		return "stalled"
	}
	return "unknown"
}

// Enemy walks the path network cell by cell. It never searches for a route:
// every step is decided from the exits of the cell it stands on.
type Enemy struct {
	ID   types.EntityID
	Kind string

	def    defs.EnemyDefinition
	grid   *gridmap.Grid
	cell   gridmap.Point
	pos    gridmap.Vec3
	facing float64
	health float64
	status Status

	lastDir    gridmap.Direction
	hasLastDir bool
	hovered    bool
}

// New places an enemy of the given definition on a spawn cell.
func New(def defs.EnemyDefinition, grid *gridmap.Grid, spawn gridmap.Point) *Enemy {
	e := &Enemy{
		Kind:   def.ID,
		def:    def,
		grid:   grid,
		cell:   spawn,
		health: def.Health,
	}
	e.pos = grid.GridToWorld(spawn.X, spawn.Z)
	e.pos.Y = e.groundLevel()
	return e
}

// groundLevel is the elevation held while crossing the current cell.
func (e *Enemy) groundLevel() float64 {
	centre := e.grid.GridToWorld(e.cell.X, e.cell.Z)
	return e.grid.HeightAt(centre.X, centre.Z) + e.def.Height
}

// Update advances the enemy by one tick.
func (e *Enemy) Update(deltaTime float64) {
	if e.Done() {
		return
	}

	dir, ok := e.chooseDirection()
	if !ok {
		if e.grid.CellType(e.cell.X, e.cell.Z) == gridmap.End {
			e.status = ReachedEnd
		} else {
			e.status = Stalled
		}
		return
	}

	next := e.cell.Add(dir)
	target := e.grid.GridToWorld(next.X, next.Z)
	delta := gridmap.Vec3{X: target.X - e.pos.X, Z: target.Z - e.pos.Z}
	distance := delta.Len()

	if distance < config.ArrivalThreshold {
		e.cell = next
		e.hasLastDir = false
		e.pos.Y = e.groundLevel()
		return
	}

	step := e.def.Speed * deltaTime
	if step > distance {
		step = distance
	}
	heading := delta.Normalize()
	e.pos.X += heading.X * step
	e.pos.Z += heading.Z * step
	e.facing = math.Atan2(heading.X, heading.Z)
}

// chooseDirection keeps going straight when it can, otherwise takes the first
// open exit in N, E, S, W order and remembers it.
func (e *Enemy) chooseDirection() (gridmap.Direction, bool) {
	mask := e.grid.PathDirections(e.cell.X, e.cell.Z)
	if mask.Empty() {
		return 0, false
	}
	if e.hasLastDir && mask.Has(e.lastDir) {
		return e.lastDir, true
	}
	e.lastDir = mask.Directions()[0]
	e.hasLastDir = true
	return e.lastDir, true
}

// HandleInput only tracks hover; enemies never claim input.
func (e *Enemy) HandleInput(in *input.State, _ float64) bool {
	e.hovered = false
	if w, ok := in.WorldPosition(); ok {
		radius := config.EnemyRadius * e.grid.Config().TileSize
		e.hovered = w.DistXZ(e.pos) <= radius
	}
	return false
}

// TakeDamage lowers health. Damage to an enemy that already left the board
// is ignored.
func (e *Enemy) TakeDamage(amount float64) {
	if e.Done() || amount <= 0 {
		return
	}
	e.health -= amount
	if e.health <= 0 {
		e.status = Dead
	}
}

func (e *Enemy) IsDead() bool     { return e.status == Dead }
func (e *Enemy) ReachedEnd() bool { return e.status == ReachedEnd }

// Done reports whether the enemy reached any terminal state.
func (e *Enemy) Done() bool { return e.status != Moving }

func (e *Enemy) Status() Status                   { return e.status }
func (e *Enemy) Position() gridmap.Vec3           { return e.pos }
func (e *Enemy) Cell() gridmap.Point              { return e.cell }
func (e *Enemy) Facing() float64                  { return e.facing }
func (e *Enemy) Health() float64                  { return e.health }
func (e *Enemy) MaxHealth() float64               { return e.def.Health }
func (e *Enemy) Speed() float64                   { return e.def.Speed }
func (e *Enemy) Bounty() int                      { return e.def.Bounty }
func (e *Enemy) Visuals() defs.Visuals            { return e.def.Visuals }
func (e *Enemy) Hovered() bool                    { return e.hovered }
func (e *Enemy) Definition() defs.EnemyDefinition { return e.def }

// LastDirection returns the remembered direction, if any.
func (e *Enemy) LastDirection() (gridmap.Direction, bool) {
	return e.lastDir, e.hasLastDir
}
