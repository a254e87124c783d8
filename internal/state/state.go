// internal/state/state.go
package state

import "github.com/hajimehoshi/ebiten/v2"

// State — интерфейс для всех состояний
type State interface {
	Enter()
	Update(deltaTime float64)
	Draw(screen *ebiten.Image)
	Exit()
}

// disposer is implemented by states that own resources.
type disposer interface {
	Dispose()
}

// StateMachine — структура для управления состояниями
type StateMachine struct {
	current State
	owned   []disposer
}

// NewStateMachine создаёт новую машину состояний без начального состояния
func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// SetState устанавливает новое состояние. Состояния с ресурсами
// запоминаются и освобождаются в Close.
func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit()
	}
	sm.current = newState
	if sm.current == nil {
		return
	}
	if d, ok := newState.(disposer); ok && !sm.owns(d) {
		sm.owned = append(sm.owned, d)
	}
	sm.current.Enter()
}

func (sm *StateMachine) owns(d disposer) bool {
	for _, o := range sm.owned {
		if o == d {
			return true
		}
	}
	return false
}

// Current returns the active state.
func (sm *StateMachine) Current() State {
	return sm.current
}

// Update обновляет текущее состояние
func (sm *StateMachine) Update(deltaTime float64) {
	if sm.current != nil {
		sm.current.Update(deltaTime)
	}
}

// Draw отрисовывает текущее состояние
func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}

// Close exits the current state and disposes every state that owned resources.
func (sm *StateMachine) Close() {
	if sm.current != nil {
		sm.current.Exit()
		sm.current = nil
	}
	for _, d := range sm.owned {
		d.Dispose()
	}
	sm.owned = nil
}
