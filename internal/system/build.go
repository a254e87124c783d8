// internal/system/build.go
package system

import (
	"fmt"
	"log"

	"go-grid-defense/internal/entity"
	"go-grid-defense/internal/event"
	"go-grid-defense/internal/input"
	"go-grid-defense/internal/tower"
	"go-grid-defense/pkg/gridmap"
)

// Preview is the detached ghost of the tower being placed. It follows the
// cursor but is never written into the grid.
type Preview struct {
	Kind      string
	Position  gridmap.Vec3
	Visible   bool
	Placeable bool
}

// BuildSystem turns a selected tower kind and the cursor position into a
// placement, a rejected hover or a cancelled session.
type BuildSystem struct {
	grid       *gridmap.Grid
	kinds      *tower.Kinds
	registry   *entity.Registry
	dispatcher *event.Dispatcher

	active     bool
	activeKind string
	preview    *Preview
	hovered    gridmap.Point
	hasHovered bool

	onPlaced  func(t *tower.Tower)
	onRemoved func(t *tower.Tower)
}

func NewBuildSystem(grid *gridmap.Grid, kinds *tower.Kinds, registry *entity.Registry, dispatcher *event.Dispatcher) *BuildSystem {
	return &BuildSystem{
		grid:       grid,
		kinds:      kinds,
		registry:   registry,
		dispatcher: dispatcher,
	}
}

// OnPlaced registers a hook run after each placement.
func (s *BuildSystem) OnPlaced(fn func(t *tower.Tower)) { s.onPlaced = fn }

// OnRemoved registers a hook run after RemoveAt takes a tower off the board.
func (s *BuildSystem) OnRemoved(fn func(t *tower.Tower)) { s.onRemoved = fn }

// Activate starts a build session for kind, ending any session in progress.
func (s *BuildSystem) Activate(kind string) error {
	if !s.kinds.Has(kind) {
		return fmt.Errorf("cannot build %q: %w", kind, tower.ErrUnknownKind)
	}
	if s.active {
		s.Deactivate()
	}
	s.active = true
	s.activeKind = kind
	s.preview = &Preview{Kind: kind}
	return nil
}

// Deactivate ends the session and drops the preview.
func (s *BuildSystem) Deactivate() {
	s.active = false
	s.activeKind = ""
	s.preview = nil
	s.hasHovered = false
}

// HandleInput moves the preview and reacts to clicks. Once a kind is active
// every primary and secondary press is claimed, legal or not; keys and
// everything else pass through.
func (s *BuildSystem) HandleInput(in *input.State, _ float64) bool {
	if !s.active || s.preview == nil {
		return false
	}

	w, ok := in.WorldPosition()
	if !ok {
		s.preview.Visible = false
		s.hasHovered = false
		return false
	}

	x, z := s.grid.WorldToGrid(w)
	canBuild := s.grid.CanPlaceEntity(x, z)
	s.hovered = gridmap.Point{X: x, Z: z}
	s.hasHovered = true
	s.preview.Position = s.grid.GridToWorld(x, z)
	s.preview.Visible = true
	s.preview.Placeable = canBuild

	switch {
	case in.JustPressed(input.ButtonPrimary):
		if canBuild {
			s.place(s.hovered)
		}
		return true
	case in.JustPressed(input.ButtonSecondary):
		kind := s.activeKind
		s.Deactivate()
		s.dispatcher.Dispatch(event.Event{Type: event.BuildCancelled, Data: kind})
		return true
	}
	return false
}

func (s *BuildSystem) place(at gridmap.Point) {
	t, err := s.kinds.New(s.activeKind, s.grid, at)
	if err != nil {
		log.Printf("Failed to build tower: %v", err)
		return
	}
	t.ID = entity.NewID("tower")
	s.registry.AddEntity(t.ID, t)
	s.grid.SetEntity(at.X, at.Z, t)

	s.dispatcher.Dispatch(event.Event{Type: event.TowerPlaced, Data: event.TowerInfo{
		ID:   string(t.ID),
		Kind: t.Kind,
		X:    at.X,
		Z:    at.Z,
	}})
	if s.onPlaced != nil {
		s.onPlaced(t)
	}
	s.Deactivate()
}

// RemoveAt takes the tower off a cell, freeing it for another placement.
func (s *BuildSystem) RemoveAt(x, z int) bool {
	t, ok := s.grid.Occupant(x, z).(*tower.Tower)
	if !ok {
		return false
	}
	s.grid.SetEntity(x, z, nil)
	s.registry.RemoveEntity(t.ID)
	s.dispatcher.Dispatch(event.Event{Type: event.TowerRemoved, Data: event.TowerInfo{
		ID:   string(t.ID),
		Kind: t.Kind,
		X:    x,
		Z:    z,
	}})
	if s.onRemoved != nil {
		s.onRemoved(t)
	}
	return true
}

func (s *BuildSystem) IsActive() bool     { return s.active }
func (s *BuildSystem) ActiveKind() string { return s.activeKind }

// Preview returns the current preview, or nil outside a session.
func (s *BuildSystem) Preview() *Preview { return s.preview }

// HoveredCell returns the cell under the cursor during a session.
func (s *BuildSystem) HoveredCell() (gridmap.Point, bool) {
	return s.hovered, s.active && s.hasHovered
}

// Dispose ends any session.
func (s *BuildSystem) Dispose() {
	s.Deactivate()
}
