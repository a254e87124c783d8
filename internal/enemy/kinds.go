// internal/enemy/kinds.go
package enemy

import (
	"errors"
	"fmt"
	"sort"

	"go-grid-defense/internal/defs"
	"go-grid-defense/pkg/gridmap"
)

var (
	ErrUnknownKind   = errors.New("unknown enemy kind")
	ErrDuplicateKind = errors.New("enemy kind already registered")
)

// Factory builds one enemy of a kind at a spawn cell.
type Factory func(grid *gridmap.Grid, spawn gridmap.Point) *Enemy

// Kinds maps kind names to factories.
type Kinds struct {
	factories map[string]Factory
}

func NewKinds() *Kinds {
	return &Kinds{factories: make(map[string]Factory)}
}

// DefaultKinds registers a factory for every enemy definition in lib.
func DefaultKinds(lib *defs.Library) *Kinds {
	k := NewKinds()
	for _, id := range sortedIDs(lib.Enemies) {
		def := lib.Enemies[id]
		// ids are unique map keys, so this cannot fail
		_ = k.Register(id, FromDefinition(def))
	}
	return k
}

// FromDefinition returns a factory for a data-driven enemy.
func FromDefinition(def defs.EnemyDefinition) Factory {
	return func(grid *gridmap.Grid, spawn gridmap.Point) *Enemy {
		return New(def, grid, spawn)
	}
}

// Register adds a kind. Empty names, nil factories and duplicates are rejected.
func (k *Kinds) Register(kind string, f Factory) error {
	if kind == "" {
		return errors.New("enemy kind must not be empty")
	}
	if f == nil {
		return fmt.Errorf("enemy kind %q has no factory", kind)
	}
	if _, exists := k.factories[kind]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateKind, kind)
	}
	k.factories[kind] = f
	return nil
}

// Has reports whether kind is registered.
func (k *Kinds) Has(kind string) bool {
	_, ok := k.factories[kind]
	return ok
}

// New builds an enemy of the given kind.
func (k *Kinds) New(kind string, grid *gridmap.Grid, spawn gridmap.Point) (*Enemy, error) {
	f, ok := k.factories[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	e := f(grid, spawn)
	if e.Kind == "" {
		e.Kind = kind
	}
	return e, nil
}

// Names lists registered kinds in sorted order.
func (k *Kinds) Names() []string {
	return sortedIDs(k.factories)
}

func sortedIDs[V any](m map[string]V) []string {
	ids := make([]string, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
