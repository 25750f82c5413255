package listener

import (
	"github.com/bassbeaver/glistener/event_bus/event"
	"reflect"
)

// Listener is the identity of a registration: usually a pointer to the object that owns handler methods.
// Registries keep the reference only, they never copy or own listener state.
type Listener interface{}

type ApplicationLaunched func(*event.ApplicationLaunched)

type ApplicationReloaded func(*event.ApplicationReloaded)

type ApplicationTermination func(*event.ApplicationTermination)

//--------------------

// IsComparable reports whether listenerObj can serve as a registration identity.
// Funcs, maps and slices can not be compared with ==, neither can structs or arrays holding them,
// directly or behind an interface field, so they are rejected.
func IsComparable(listenerObj Listener) bool {
	if nil == listenerObj {
		return false
	}

	return reflect.ValueOf(listenerObj).Comparable()
}

// listener - should be a function with one argument, that argument should be a pointer to the Event object
// event - should be a pointer to the Event object
func IsListenerForEvent(listener interface{}, eventPtr event.Event) bool {
	if nil == listener || nil == eventPtr {
		return false
	}

	listenerType := reflect.TypeOf(listener)
	if reflect.Func != listenerType.Kind() || listenerType.NumIn() != 1 {
		return false
	}

	listenerArgumentType := listenerType.In(0)
	if reflect.Ptr != listenerArgumentType.Kind() || listenerArgumentType != reflect.TypeOf(eventPtr) {
		return false
	}

	return true
}
