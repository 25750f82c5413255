package event_bus

import (
	"fmt"
	"github.com/bassbeaver/glistener/event_bus/event"
	"github.com/bassbeaver/glistener/event_bus/listener"
	"reflect"
)

// RegistryEntry is an immutable registration record. Two entries are equal when they share
// listener identity and priority, the handler does not take part in equality.
type RegistryEntry struct {
	listener listener.Listener
	priority Priority
	handler  reflect.Value
}

func (e *RegistryEntry) Listener() listener.Listener {
	return e.listener
}

func (e *RegistryEntry) Priority() Priority {
	return e.priority
}

func (e *RegistryEntry) Equals(other *RegistryEntry) bool {
	if nil == e || nil == other {
		return e == other
	}

	return e.priority == other.priority && e.belongsTo(other.listener)
}

// Execute calls the handler with eventObj. Entries without a handler do nothing.
func (e *RegistryEntry) Execute(eventObj event.Event) {
	if !e.handler.IsValid() {
		return
	}

	e.handler.Call([]reflect.Value{reflect.ValueOf(eventObj)})
}

func (e *RegistryEntry) belongsTo(listenerObj listener.Listener) bool {
	if !listener.IsComparable(listenerObj) || !listener.IsComparable(e.listener) {
		return false
	}

	return e.listener == listenerObj
}

func listenerName(listenerObj listener.Listener) string {
	return fmt.Sprintf("%T", listenerObj)
}

//--------------------

// handlerFunc may be nil for entries that are only used as removal keys.
func NewRegistryEntry(listenerObj listener.Listener, priority Priority, handlerFunc interface{}) *RegistryEntry {
	entry := &RegistryEntry{
		listener: listenerObj,
		priority: priority,
	}
	if nil != handlerFunc {
		entry.handler = reflect.ValueOf(handlerFunc)
	}

	return entry
}
