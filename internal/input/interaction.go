// internal/input/interaction.go
package input

import "sort"

// Priority orders input consumers; higher values see input first.
type Priority int

const (
	World     Priority = 0
	EnemyUI   Priority = 1
	Camera    Priority = 2
	TowerUI   Priority = 3
	BuildMode Priority = 4
	MacroUI   Priority = 5
)

func (p Priority) String() string {
	switch p {
	case World:
		return "world"
	case EnemyUI:
		return "enemy-ui"
	case Camera:
		return "camera"
	case TowerUI:
		return "tower-ui"
	case BuildMode:
		return "build-mode"
	case MacroUI:
		return "macro-ui"
	}
	return "custom"
}

// Interactable is anything that can react to input. Returning true claims the
// frame's input and hides it from lower-priority consumers. Implementations
// must be comparable (pointer receivers in practice).
type Interactable interface {
	HandleInput(in *State, deltaTime float64) bool
}

type registration struct {
	target   Interactable
	priority Priority
	seq      uint64
}

// Manager routes each frame's input through the registered consumers from
// highest to lowest priority until one claims it. Consumers with equal
// priority are asked in registration order.
type Manager struct {
	entries []*registration
	seq     uint64
}

func NewManager() *Manager {
	return &Manager{}
}

// Add registers a consumer. Adding one that is already registered only
// changes its priority; it keeps its original registration slot.
func (m *Manager) Add(i Interactable, priority Priority) {
	if i == nil {
		return
	}
	for _, e := range m.entries {
		if e.target == i {
			e.priority = priority
			return
		}
	}
	m.seq++
	m.entries = append(m.entries, &registration{target: i, priority: priority, seq: m.seq})
}

// Remove unregisters a consumer. Unknown consumers are ignored.
func (m *Manager) Remove(i Interactable) {
	for idx, e := range m.entries {
		if e.target == i {
			m.entries = append(m.entries[:idx], m.entries[idx+1:]...)
			return
		}
	}
}

// Len is the number of registered consumers.
func (m *Manager) Len() int {
	return len(m.entries)
}

// Priority returns the registered priority of i.
func (m *Manager) Priority(i Interactable) (Priority, bool) {
	for _, e := range m.entries {
		if e.target == i {
			return e.priority, true
		}
	}
	return 0, false
}

// HandleInput offers the input to every consumer in order and returns the one
// that claimed it, or nil. Consumers added or removed while dispatching take
// effect next frame.
func (m *Manager) HandleInput(in *State, deltaTime float64) Interactable {
	ordered := make([]*registration, len(m.entries))
	copy(ordered, m.entries)
	sort.SliceStable(ordered, func(a, b int) bool {
		if ordered[a].priority != ordered[b].priority {
			return ordered[a].priority > ordered[b].priority
		}
		return ordered[a].seq < ordered[b].seq
	})

	for _, e := range ordered {
		if e.target.HandleInput(in, deltaTime) {
			return e.target
		}
	}
	return nil
}

// Clear drops all consumers.
func (m *Manager) Clear() {
	m.entries = nil
}
