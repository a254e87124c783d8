// internal/tower/kinds.go
package tower

import (
	"errors"
	"fmt"
	"sort"

	"go-grid-defense/internal/defs"
	"go-grid-defense/pkg/gridmap"
)

var (
	ErrUnknownKind   = errors.New("unknown tower kind")
	ErrDuplicateKind = errors.New("tower kind already registered")
)

// Factory builds a tower of one kind at a cell.
type Factory func(grid *gridmap.Grid, cell gridmap.Point) *Tower

// Kinds maps defender kinds to factories.
type Kinds struct {
	factories map[string]Factory
}

func NewKinds() *Kinds {
	return &Kinds{factories: make(map[string]Factory)}
}

// DefaultKinds registers every tower definition in lib, aiming at targets.
func DefaultKinds(lib *defs.Library, targets Targets) *Kinds {
	k := NewKinds()
	for id, def := range lib.Towers {
		_ = k.Register(id, FromDefinition(def, targets))
	}
	return k
}

// FromDefinition returns a factory for a data-driven tower.
func FromDefinition(def defs.TowerDefinition, targets Targets) Factory {
	return func(grid *gridmap.Grid, cell gridmap.Point) *Tower {
		return New(def, grid, cell, targets)
	}
}

// Register adds a kind. Empty names, nil factories and duplicates are rejected.
func (k *Kinds) Register(kind string, f Factory) error {
	if kind == "" {
		return errors.New("tower kind must not be empty")
	}
	if f == nil {
		return fmt.Errorf("tower kind %q has no factory", kind)
	}
	if _, exists := k.factories[kind]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateKind, kind)
	}
	k.factories[kind] = f
	return nil
}

func (k *Kinds) Has(kind string) bool {
	_, ok := k.factories[kind]
	return ok
}

// New builds a tower of the given kind.
func (k *Kinds) New(kind string, grid *gridmap.Grid, cell gridmap.Point) (*Tower, error) {
	f, ok := k.factories[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	t := f(grid, cell)
	if t.Kind == "" {
		t.Kind = kind
	}
	return t, nil
}

// Names lists registered kinds in sorted order.
func (k *Kinds) Names() []string {
	names := make([]string, 0, len(k.factories))
	for name := range k.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
