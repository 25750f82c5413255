package event_bus

import (
	"errors"
	"fmt"
	"github.com/bassbeaver/glistener/event_bus/event"
	"github.com/bassbeaver/glistener/event_bus/listener"
	"reflect"
	"sync"
)

// EventBus owns one ListenerRegistry per event type. Registries are created on first reference and
// join the bus directory.
type EventBus struct {
	directory *Directory

	mu         sync.RWMutex
	registries map[reflect.Type]*ListenerRegistry
}

func (b *EventBus) Directory() *Directory {
	return b.directory
}

// RegistryFor returns the registry of eventObj's type. eventObj should be a pointer to the Event object,
// a typed nil pointer is enough.
func (b *EventBus) RegistryFor(eventObj event.Event) *ListenerRegistry {
	eventType := reflect.TypeOf(eventObj)

	b.mu.RLock()
	registry, registryExists := b.registries[eventType]
	b.mu.RUnlock()
	if registryExists {
		return registry
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if registry, registryExists = b.registries[eventType]; !registryExists {
		registry = NewListenerRegistry(b.directory, eventType.String())
		b.registries[eventType] = registry
	}

	return registry
}

// eventObj - should be a pointer to the Event object
// listenerObj - identity of the listener, used for unregistration
// listenerFunc - should be a function with one argument, that argument should be a pointer to the Event object
// priority - tier of this listener in the registry of the event
func (b *EventBus) AppendListener(eventObj event.Event, listenerObj listener.Listener, listenerFunc interface{}, priority Priority) error {
	if nil == eventObj {
		return errors.New("event object is nil")
	}

	if isListener := listener.IsListenerForEvent(listenerFunc, eventObj); !isListener {
		return errors.New(
			fmt.Sprintf(
				"%s is not event listener for %s",
				reflect.TypeOf(listenerFunc),
				reflect.TypeOf(eventObj).String(),
			),
		)
	}

	return b.RegistryFor(eventObj).Register(NewRegistryEntry(listenerObj, priority, listenerFunc))
}

// RemoveListener removes listenerObj from every registry of this bus.
func (b *EventBus) RemoveListener(listenerObj listener.Listener) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()

	changed := false
	for _, registry := range b.registries {
		if registry.UnregisterListener(listenerObj) {
			changed = true
		}
	}

	return changed
}

// Dispatch runs the listeners of eventObj's type in snapshot order until one of them stops propagation.
func (b *EventBus) Dispatch(eventObj event.Event) {
	b.mu.RLock()
	registry, registryExists := b.registries[reflect.TypeOf(eventObj)]
	b.mu.RUnlock()
	if !registryExists {
		return
	}

	for _, entry := range registry.Snapshot() {
		entry.Execute(eventObj)

		if eventObj.IsPropagationStopped() {
			return
		}
	}
}

// Clear forgets every registry of this bus after emptying it. Registries referenced later are created
// again and join the bus directory, so a bus stays reachable by directory bulk operations after
// Directory.Shutdown.
func (b *EventBus) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, registry := range b.registries {
		registry.Clear()
	}
	b.registries = make(map[reflect.Type]*ListenerRegistry)
}

// ListenersCount returns the number of entries over all registries of this bus.
func (b *EventBus) ListenersCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	count := 0
	for _, registry := range b.registries {
		count += registry.Len()
	}

	return count
}

//--------------------

// NewEventBus creates a bus whose registries join directory. A nil directory stands for the
// process-wide DefaultDirectory.
func NewEventBus(directory *Directory) *EventBus {
	if nil == directory {
		directory = DefaultDirectory()
	}

	return &EventBus{
		directory:  directory,
		registries: make(map[reflect.Type]*ListenerRegistry),
	}
}
