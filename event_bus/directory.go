package event_bus

import (
	"github.com/bassbeaver/glistener/event_bus/listener"
	"github.com/bassbeaver/glistener/logging"
	"github.com/rs/zerolog"
	"sync"
)

// Directory tracks every ListenerRegistry created against it, so that bulk operations can reach all of
// them. The directory mutex is held for the whole walk of a bulk operation, each registry step also
// takes the registry's own mutex. Registries never take the directory mutex themselves.
type Directory struct {
	order  PriorityOrder
	logger zerolog.Logger

	mu         sync.Mutex
	registries []*ListenerRegistry
}

type DirectoryOption func(*Directory)

// WithPriorityOrder sets the tier order used by every registry of the directory.
func WithPriorityOrder(order PriorityOrder) DirectoryOption {
	return func(d *Directory) {
		d.order = order
	}
}

func WithLogger(logger zerolog.Logger) DirectoryOption {
	return func(d *Directory) {
		d.logger = logger
	}
}

func (d *Directory) PriorityOrder() PriorityOrder {
	return d.order
}

// BakeAll rebuilds every invalidated snapshot, so that the first dispatch does not pay for it.
func (d *Directory) BakeAll() {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, r := range d.registries {
		r.Bake()
	}
	d.logger.Debug().Int("registries", len(d.registries)).Msg("Baked all registries")
}

// UnregisterAll clears every tier of every registry.
func (d *Directory) UnregisterAll() {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, r := range d.registries {
		r.Clear()
	}
	d.logger.Debug().Int("registries", len(d.registries)).Msg("Unregistered all listeners")
}

// UnregisterAllFor removes listenerObj from every registry and returns the number of registries that changed.
func (d *Directory) UnregisterAllFor(listenerObj listener.Listener) int {
	d.mu.Lock()
	defer d.mu.Unlock()

	changed := 0
	for _, r := range d.registries {
		if r.UnregisterListener(listenerObj) {
			changed++
		}
	}
	d.logger.Debug().
		Str("listener", listenerName(listenerObj)).
		Int("registries", changed).
		Msg("Unregistered listener everywhere")

	return changed
}

// Registries returns the member registries in creation order.
func (d *Directory) Registries() []*ListenerRegistry {
	d.mu.Lock()
	defer d.mu.Unlock()

	result := make([]*ListenerRegistry, len(d.registries))
	copy(result, d.registries)

	return result
}

func (d *Directory) Lookup(name string) (*ListenerRegistry, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, r := range d.registries {
		if r.name == name {
			return r, true
		}
	}

	return nil, false
}

func (d *Directory) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()

	return len(d.registries)
}

// Shutdown clears every registry and forgets them. Registries created afterwards join a fresh,
// empty membership.
func (d *Directory) Shutdown() {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, r := range d.registries {
		r.Clear()
	}
	d.logger.Debug().Int("registries", len(d.registries)).Msg("Directory shut down")
	d.registries = nil
}

func (d *Directory) add(r *ListenerRegistry) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.registries = append(d.registries, r)
}

//--------------------

func NewDirectory(options ...DirectoryOption) *Directory {
	d := &Directory{
		order:  LowestFirst,
		logger: logging.GetLogger("directory"),
	}
	for _, option := range options {
		option(d)
	}

	return d
}

//--------------------

var (
	defaultDirectory     *Directory
	defaultDirectoryOnce sync.Once
)

// DefaultDirectory returns the process-wide directory, created on first use.
func DefaultDirectory() *Directory {
	defaultDirectoryOnce.Do(func() {
		defaultDirectory = NewDirectory()
	})

	return defaultDirectory
}

// BakeAll bakes every registry of the DefaultDirectory.
func BakeAll() {
	DefaultDirectory().BakeAll()
}

// UnregisterAll clears every registry of the DefaultDirectory.
func UnregisterAll() {
	DefaultDirectory().UnregisterAll()
}

// UnregisterAllFor removes listenerObj from every registry of the DefaultDirectory.
func UnregisterAllFor(listenerObj listener.Listener) int {
	return DefaultDirectory().UnregisterAllFor(listenerObj)
}
