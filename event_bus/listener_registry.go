package event_bus

import (
	"fmt"
	kernelError "github.com/bassbeaver/glistener/error"
	"github.com/bassbeaver/glistener/event_bus/listener"
	"github.com/rs/zerolog"
	"sync"
	"sync/atomic"
)

// ListenerRegistry keeps the listeners of a single event type, grouped in priority tiers.
//
// Mutations and Bake are serialized by the registry mutex. The flattened snapshot is published through
// an atomic pointer, so Snapshot readers never take the lock while the snapshot is valid and never
// observe a partially built slice. A nil pointer means the snapshot was invalidated.
type ListenerRegistry struct {
	name   string
	order  PriorityOrder
	logger zerolog.Logger

	mu    sync.Mutex
	tiers [PriorityCount][]*RegistryEntry
	baked atomic.Pointer[[]*RegistryEntry]
}

func (r *ListenerRegistry) Name() string {
	return r.name
}

// Register appends entry to its priority tier.
// Registering an entry equal to one already present in the tier is a programming error: the registry
// is left unchanged and a *DuplicateRegistrationError is returned.
func (r *ListenerRegistry) Register(entry *RegistryEntry) error {
	if validationError := r.validate(entry); nil != validationError {
		r.logger.Error().Err(validationError).Msg("Rejected listener registration")
		return validationError
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	tier := r.tiers[entry.priority]
	for _, registered := range tier {
		if registered.Equals(entry) {
			duplicateError := kernelError.NewDuplicateRegistrationError(r.name, entry.listener, entry.priority)
			r.logger.Error().
				Err(duplicateError).
				Str("listener", listenerName(entry.listener)).
				Stringer("priority", entry.priority).
				Msg("Duplicate listener registration")

			return duplicateError
		}
	}

	r.tiers[entry.priority] = append(tier, entry)
	r.baked.Store(nil)

	return nil
}

// MustRegister registers entry and panics if registration fails.
func (r *ListenerRegistry) MustRegister(entry *RegistryEntry) {
	if err := r.Register(entry); nil != err {
		panic(err)
	}
}

// RegisterAll registers entries one by one and stops at the first failure.
// Entries registered before the failure stay registered.
func (r *ListenerRegistry) RegisterAll(entries []*RegistryEntry) error {
	for _, entry := range entries {
		if err := r.Register(entry); nil != err {
			return err
		}
	}

	return nil
}

// UnregisterListener removes every entry of listenerObj from every tier.
// Returns false, without invalidating the snapshot, when the listener was not registered.
func (r *ListenerRegistry) UnregisterListener(listenerObj listener.Listener) bool {
	if !listener.IsComparable(listenerObj) {
		return false
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	changed := false
	for priority := range r.tiers {
		if r.removeFromTier(Priority(priority), func(entry *RegistryEntry) bool { return entry.belongsTo(listenerObj) }) {
			changed = true
		}
	}

	if changed {
		r.baked.Store(nil)
	}

	return changed
}

// Unregister removes the entry equal to the given one. Absent entries are a no-op.
func (r *ListenerRegistry) Unregister(entry *RegistryEntry) bool {
	if nil == entry || !entry.priority.IsValid() {
		return false
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.removeFromTier(entry.priority, entry.Equals) {
		return false
	}
	r.baked.Store(nil)

	return true
}

// UnregisterAll calls UnregisterListener for each listener. Returns true if anything was removed.
func (r *ListenerRegistry) UnregisterAll(listeners []listener.Listener) bool {
	changed := false
	for _, listenerObj := range listeners {
		if r.UnregisterListener(listenerObj) {
			changed = true
		}
	}

	return changed
}

// Clear drops every entry and invalidates the snapshot.
func (r *ListenerRegistry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for priority := range r.tiers {
		r.tiers[priority] = nil
	}
	r.baked.Store(nil)
}

// Bake rebuilds the snapshot if it was invalidated since the last rebuild.
func (r *ListenerRegistry) Bake() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if nil != r.baked.Load() {
		return
	}

	size := 0
	for _, tier := range r.tiers {
		size += len(tier)
	}

	entries := make([]*RegistryEntry, 0, size)
	for _, priority := range r.order.tiers() {
		entries = append(entries, r.tiers[priority]...)
	}
	r.baked.Store(&entries)
}

// Snapshot returns every entry in dispatch order. The returned slice is shared between callers
// and must not be modified.
func (r *ListenerRegistry) Snapshot() []*RegistryEntry {
	for {
		if baked := r.baked.Load(); nil != baked {
			return *baked
		}
		r.Bake()
	}
}

func (r *ListenerRegistry) IsBaked() bool {
	return nil != r.baked.Load()
}

// Len returns the number of registered entries.
func (r *ListenerRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	size := 0
	for _, tier := range r.tiers {
		size += len(tier)
	}

	return size
}

func (r *ListenerRegistry) validate(entry *RegistryEntry) error {
	switch {
	case nil == entry:
		return kernelError.NewInvalidEntryError(r.name, "entry is nil")
	case !listener.IsComparable(entry.listener):
		return kernelError.NewInvalidEntryError(r.name, fmt.Sprintf("listener %T can not be used as identity", entry.listener))
	case !entry.priority.IsValid():
		return kernelError.NewInvalidEntryError(r.name, fmt.Sprintf("priority %d is out of range", int(entry.priority)))
	}

	return nil
}

// removeFromTier must be called with r.mu held.
func (r *ListenerRegistry) removeFromTier(priority Priority, match func(*RegistryEntry) bool) bool {
	tier := r.tiers[priority]

	kept := make([]*RegistryEntry, 0, len(tier))
	for _, entry := range tier {
		if !match(entry) {
			kept = append(kept, entry)
		}
	}

	if len(kept) == len(tier) {
		return false
	}
	r.tiers[priority] = kept

	return true
}

//--------------------

// NewListenerRegistry creates a registry and adds it to directory. A nil directory stands for the
// process-wide DefaultDirectory.
func NewListenerRegistry(directory *Directory, name string) *ListenerRegistry {
	if nil == directory {
		directory = DefaultDirectory()
	}

	r := &ListenerRegistry{
		name:   name,
		order:  directory.order,
		logger: directory.logger.With().Str("registry", name).Logger(),
	}
	directory.add(r)

	return r
}
