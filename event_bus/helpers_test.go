package event_bus

import (
	"testing"

	"github.com/bassbeaver/glistener/event_bus/event"
	"github.com/rs/zerolog"
)

type namedListener struct {
	name string
}

// boxedListener is comparable or not depending on what handle holds.
type boxedListener struct {
	handle interface{}
}

type pingEvent struct {
	event.Propagator
	calls []string
}

type pongEvent struct {
	event.Propagator
}

func newTestDirectory(t *testing.T, options ...DirectoryOption) *Directory {
	t.Helper()

	return NewDirectory(append([]DirectoryOption{WithLogger(zerolog.Nop())}, options...)...)
}

func listenersOf(entries []*RegistryEntry) []*namedListener {
	result := make([]*namedListener, 0, len(entries))
	for _, entry := range entries {
		result = append(result, entry.Listener().(*namedListener))
	}

	return result
}
