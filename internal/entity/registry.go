// internal/entity/registry.go
package entity

import (
	"go-grid-defense/internal/types"

	"github.com/google/uuid"
)

// Entity is anything the registry keeps alive and ticks once per frame.
type Entity interface {
	Update(deltaTime float64)
}

// Registry owns entity lifetime. Other components only hold ids or weak
// references (grid occupants, wave tracking).
type Registry struct {
	entities map[types.EntityID]Entity
	order    []types.EntityID
}

func NewRegistry() *Registry {
	return &Registry{
		entities: make(map[types.EntityID]Entity),
	}
}

// NewID returns a fresh id such as "enemy_1b4e28ba-...".
func NewID(prefix string) types.EntityID {
	return types.EntityID(prefix + "_" + uuid.NewString())
}

// AddEntity registers e under id, replacing any entity already using it.
func (r *Registry) AddEntity(id types.EntityID, e Entity) {
	if _, exists := r.entities[id]; !exists {
		r.order = append(r.order, id)
	}
	r.entities[id] = e
}

// RemoveEntity drops id; it reports whether anything was removed.
func (r *Registry) RemoveEntity(id types.EntityID) bool {
	if _, exists := r.entities[id]; !exists {
		return false
	}
	delete(r.entities, id)
	for i, other := range r.order {
		if other == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true
}

// Entity looks up a registered entity.
func (r *Registry) Entity(id types.EntityID) (Entity, bool) {
	e, ok := r.entities[id]
	return e, ok
}

// Len returns the number of registered entities.
func (r *Registry) Len() int {
	return len(r.entities)
}

// IDs returns registered ids in insertion order.
func (r *Registry) IDs() []types.EntityID {
	return append([]types.EntityID(nil), r.order...)
}

// Each visits entities in insertion order.
func (r *Registry) Each(fn func(id types.EntityID, e Entity)) {
	for _, id := range r.IDs() {
		if e, ok := r.entities[id]; ok {
			fn(id, e)
		}
	}
}

// Update ticks every entity in insertion order. Entities removed by an
// earlier entity's update in the same pass are skipped.
func (r *Registry) Update(deltaTime float64) {
	r.Each(func(_ types.EntityID, e Entity) {
		e.Update(deltaTime)
	})
}

// Clear removes everything.
func (r *Registry) Clear() {
	r.entities = make(map[types.EntityID]Entity)
	r.order = nil
}
