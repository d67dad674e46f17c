package navigation

import "sort"

// Handler consumes one signal.
type Handler func(Signal)

// Source is a global input-event port. Subscribe returns a function that
// removes the handler again; calling it more than once is harmless.
type Source interface {
	Subscribe(h Handler) (unsubscribe func())
}

// Dispatcher is an in-process Source. Emit delivers a signal synchronously to
// every current subscriber, in subscription order, on the caller's goroutine.
type Dispatcher struct {
	next     int
	handlers map[int]Handler
}

// NewDispatcher creates an empty Dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{handlers: make(map[int]Handler)}
}

func (d *Dispatcher) Subscribe(h Handler) func() {
	id := d.next
	d.next++
	d.handlers[id] = h
	return func() { delete(d.handlers, id) }
}

// Emit sends sig to all subscribers.
func (d *Dispatcher) Emit(sig Signal) {
	ids := make([]int, 0, len(d.handlers))
	for id := range d.handlers {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		if h, ok := d.handlers[id]; ok {
			h(sig)
		}
	}
}

// Len returns the number of live subscriptions.
func (d *Dispatcher) Len() int { return len(d.handlers) }
