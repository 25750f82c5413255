package event_bus

import (
	"errors"
	"github.com/bassbeaver/glistener/event_bus/event"
	"sort"
	"sync"
)

const (
	KernelEventApplicationLaunched    = "kernelEvent.ApplicationLaunched"
	KernelEventApplicationReloaded    = "kernelEvent.ApplicationReloaded"
	KernelEventApplicationTermination = "kernelEvent.ApplicationTermination"
)

// EventsRegistry maps event names used in configuration to event prototypes.
type EventsRegistry struct {
	registry      map[string]event.Event
	registryMutex sync.RWMutex
}

func (r *EventsRegistry) Register(name string, eventObj event.Event) {
	r.registryMutex.Lock()
	defer r.registryMutex.Unlock()

	r.registry[name] = eventObj
}

func (r *EventsRegistry) GetEventByName(name string) (event.Event, error) {
	r.registryMutex.RLock()
	defer r.registryMutex.RUnlock()

	if eventObj, eventMapped := r.registry[name]; eventMapped {
		return eventObj, nil
	}

	return nil, errors.New("unknown event " + name)
}

func (r *EventsRegistry) Names() []string {
	r.registryMutex.RLock()
	defer r.registryMutex.RUnlock()

	names := make([]string, 0, len(r.registry))
	for name := range r.registry {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

//--------------------

func NewRegistry() *EventsRegistry {
	return &EventsRegistry{
		registry: make(map[string]event.Event),
	}
}

func NewDefaultRegistry() *EventsRegistry {
	r := NewRegistry()

	r.Register(KernelEventApplicationLaunched, (*event.ApplicationLaunched)(nil))
	r.Register(KernelEventApplicationReloaded, (*event.ApplicationReloaded)(nil))
	r.Register(KernelEventApplicationTermination, (*event.ApplicationTermination)(nil))

	return r
}
