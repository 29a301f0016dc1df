package events

import "sync"

// Handler handles a published event.
type Handler func(Event)

// Dispatcher interface allows event publication/subscription. Subscribe
// returns a cancel func so dashboards can drop their subscription.
type Dispatcher interface {
	Publish(event Event)
	Subscribe(eventType EventType, handler Handler) (cancel func())
}

// inMemoryDispatcher is a simple synchronous dispatcher.
type inMemoryDispatcher struct {
	mu        sync.RWMutex
	nextID    int
	listeners map[EventType]map[int]Handler
}

// NewInMemoryDispatcher creates a dispatcher instance.
func NewInMemoryDispatcher() Dispatcher {
	return &inMemoryDispatcher{
		listeners: make(map[EventType]map[int]Handler),
	}
}

// Publish synchronously invokes handlers for the given event. All handlers
// run before Publish returns.
func (d *inMemoryDispatcher) Publish(event Event) {
	d.mu.RLock()
	handlers := make([]Handler, 0, len(d.listeners[event.Type]))
	for _, handler := range d.listeners[event.Type] {
		handlers = append(handlers, handler)
	}
	d.mu.RUnlock()

	for _, handler := range handlers {
		handler(event)
	}
}

// Subscribe registers a handler for the given event type and returns a
// cancel func that removes it.
func (d *inMemoryDispatcher) Subscribe(eventType EventType, handler Handler) func() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.listeners[eventType] == nil {
		d.listeners[eventType] = make(map[int]Handler)
	}
	id := d.nextID
	d.nextID++
	d.listeners[eventType][id] = handler

	return func() {
		d.mu.Lock()
		defer d.mu.Unlock()
		delete(d.listeners[eventType], id)
	}
}
