package input

import (
	"reflect"
	"testing"
)

type recorder struct {
	name  string
	claim bool
	calls *[]string
}

func (r *recorder) HandleInput(*State, float64) bool {
	*r.calls = append(*r.calls, r.name)
	return r.claim
}

func TestPriorityShortCircuit(t *testing.T) {
	var calls []string
	m := NewManager()
	low := &recorder{name: "low", calls: &calls}
	mid := &recorder{name: "mid", claim: true, calls: &calls}
	high := &recorder{name: "high", calls: &calls}

	m.Add(low, World)
	m.Add(mid, TowerUI)
	m.Add(high, MacroUI)

	claimed := m.HandleInput(NewState(), 0.016)
	if claimed != mid {
		t.Errorf("claimed by %v, want mid", claimed)
	}
	if want := []string{"high", "mid"}; !reflect.DeepEqual(calls, want) {
		t.Errorf("calls = %v, want %v", calls, want)
	}
}

func TestNobodyClaims(t *testing.T) {
	var calls []string
	m := NewManager()
	m.Add(&recorder{name: "a", calls: &calls}, EnemyUI)
	m.Add(&recorder{name: "b", calls: &calls}, BuildMode)

	if got := m.HandleInput(NewState(), 0); got != nil {
		t.Errorf("claimed by %v, want nil", got)
	}
	if want := []string{"b", "a"}; !reflect.DeepEqual(calls, want) {
		t.Errorf("calls = %v, want %v", calls, want)
	}
}

func TestEqualPriorityKeepsRegistrationOrder(t *testing.T) {
	var calls []string
	m := NewManager()
	for _, n := range []string{"e1", "e2", "e3", "e4"} {
		m.Add(&recorder{name: n, calls: &calls}, EnemyUI)
	}
	for i := 0; i < 3; i++ {
		calls = calls[:0]
		m.HandleInput(NewState(), 0)
		if want := []string{"e1", "e2", "e3", "e4"}; !reflect.DeepEqual(calls, want) {
			t.Fatalf("pass %d: calls = %v, want %v", i, calls, want)
		}
	}
}

func TestReAddUpdatesPriority(t *testing.T) {
	var calls []string
	m := NewManager()
	a := &recorder{name: "a", calls: &calls}
	b := &recorder{name: "b", calls: &calls}
	m.Add(a, World)
	m.Add(b, World)
	m.Add(a, World) // no-op re-add keeps a first
	m.HandleInput(NewState(), 0)
	if want := []string{"a", "b"}; !reflect.DeepEqual(calls, want) {
		t.Errorf("calls = %v, want %v", calls, want)
	}

	m.Add(b, Camera)
	if m.Len() != 2 {
		t.Fatalf("Len = %d, want 2", m.Len())
	}
	if p, _ := m.Priority(b); p != Camera {
		t.Errorf("Priority(b) = %v, want camera", p)
	}
	calls = calls[:0]
	m.HandleInput(NewState(), 0)
	if want := []string{"b", "a"}; !reflect.DeepEqual(calls, want) {
		t.Errorf("calls = %v, want %v", calls, want)
	}
}

func TestRemove(t *testing.T) {
	var calls []string
	m := NewManager()
	a := &recorder{name: "a", claim: true, calls: &calls}
	b := &recorder{name: "b", calls: &calls}
	m.Add(a, MacroUI)
	m.Add(b, World)
	m.Remove(a)
	m.Remove(&recorder{}) // unknown

	if got := m.HandleInput(NewState(), 0); got != nil {
		t.Errorf("claimed by %v after removal", got)
	}
	if want := []string{"b"}; !reflect.DeepEqual(calls, want) {
		t.Errorf("calls = %v, want %v", calls, want)
	}
	if _, ok := m.Priority(a); ok {
		t.Error("removed consumer still has a priority")
	}
}

func TestRemoveDuringDispatch(t *testing.T) {
	var calls []string
	m := NewManager()
	b := &recorder{name: "b", calls: &calls}
	a := &remover{m: m, victim: b, calls: &calls}
	m.Add(a, MacroUI)
	m.Add(b, World)

	m.HandleInput(NewState(), 0)
	if want := []string{"remover", "b"}; !reflect.DeepEqual(calls, want) {
		t.Errorf("first frame calls = %v, want %v", calls, want)
	}
	calls = calls[:0]
	m.HandleInput(NewState(), 0)
	if want := []string{"remover"}; !reflect.DeepEqual(calls, want) {
		t.Errorf("second frame calls = %v, want %v", calls, want)
	}
}

type remover struct {
	m      *Manager
	victim Interactable
	calls  *[]string
}

func (r *remover) HandleInput(*State, float64) bool {
	*r.calls = append(*r.calls, "remover")
	r.m.Remove(r.victim)
	return false
}
