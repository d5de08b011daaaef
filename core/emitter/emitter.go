package emitter

import "sync"

// Listener receives event payloads.
type Listener func(data any)

// Emitter is a minimal in-process event bus. Modules emit domain events
// ("search.query", "cases.create", ...) and listeners react asynchronously.
type Emitter struct {
	mu        sync.RWMutex
	listeners map[string][]Listener
}

// New creates an empty Emitter.
func New() *Emitter {
	return &Emitter{
		listeners: make(map[string][]Listener),
	}
}

// On registers a listener for the given event name.
func (e *Emitter) On(event string, listener Listener) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.listeners[event] = append(e.listeners[event], listener)
}

// Emit calls all listeners registered for event. Listeners run in the
// caller's goroutine; long-running work belongs in the listener itself.
func (e *Emitter) Emit(event string, data any) {
	e.mu.RLock()
	listeners := make([]Listener, len(e.listeners[event]))
	copy(listeners, e.listeners[event])
	e.mu.RUnlock()

	for _, l := range listeners {
		l(data)
	}
}
