// internal/event/event.go
package event

// EventType names an event.
type EventType string

// Event is delivered synchronously to every subscriber of its Type.
type Event struct {
	Type EventType
	Data interface{}
}

// Listener receives events it subscribed to.
type Listener interface {
	OnEvent(event Event)
}

// Dispatcher keeps an ordered observer list per event type.
type Dispatcher struct {
	listeners map[EventType][]Listener
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe adds a listener; listeners are called in subscription order.
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// SubscribeFunc subscribes fn and returns a function that unsubscribes it.
func (d *Dispatcher) SubscribeFunc(eventType EventType, fn func(Event)) func() {
	l := &funcListener{fn: fn}
	d.Subscribe(eventType, l)
	return func() { d.Unsubscribe(eventType, l) }
}

// funcListener is a pointer so Unsubscribe can compare it.
type funcListener struct {
	fn func(Event)
}

func (l *funcListener) OnEvent(e Event) { l.fn(e) }

// Unsubscribe removes the first registration of listener for eventType.
func (d *Dispatcher) Unsubscribe(eventType EventType, listener Listener) {
	if listeners, exists := d.listeners[eventType]; exists {
		for i, l := range listeners {
			if l == listener {
				// копируем, чтобы не портить срез, по которому сейчас идёт Dispatch
				next := make([]Listener, 0, len(listeners)-1)
				next = append(next, listeners[:i]...)
				d.listeners[eventType] = append(next, listeners[i+1:]...)
				break
			}
		}
	}
}

// Dispatch delivers event to all subscribers.
func (d *Dispatcher) Dispatch(event Event) {
	if d == nil {
		return
	}
	if listeners, exists := d.listeners[event.Type]; exists {
		for _, listener := range listeners {
			listener.OnEvent(event)
		}
	}
}

// Count returns the number of listeners for eventType.
func (d *Dispatcher) Count(eventType EventType) int {
	return len(d.listeners[eventType])
}
