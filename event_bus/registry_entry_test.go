package event_bus

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistryEntryEquals(t *testing.T) {
	first := &namedListener{name: "first"}
	second := &namedListener{name: "second"}

	entry := NewRegistryEntry(first, PriorityLow, nil)

	assert.True(t, entry.Equals(NewRegistryEntry(first, PriorityLow, nil)))
	assert.True(t, entry.Equals(NewRegistryEntry(first, PriorityLow, func(*pingEvent) {})), "handler is not part of equality")
	assert.False(t, entry.Equals(NewRegistryEntry(first, PriorityHigh, nil)))
	assert.False(t, entry.Equals(NewRegistryEntry(second, PriorityLow, nil)))
	assert.False(t, entry.Equals(nil))

	var nilEntry *RegistryEntry
	assert.True(t, nilEntry.Equals(nil))
}

func TestRegistryEntryEqualsNonComparableListener(t *testing.T) {
	entry := NewRegistryEntry(map[string]int{}, PriorityLow, nil)

	assert.NotPanics(t, func() {
		assert.False(t, entry.Equals(NewRegistryEntry(map[string]int{}, PriorityLow, nil)))
	})
}

func TestRegistryEntryExecute(t *testing.T) {
	listenerObj := &namedListener{name: "recorder"}
	entry := NewRegistryEntry(listenerObj, PriorityNormal, func(e *pingEvent) {
		e.calls = append(e.calls, listenerObj.name)
	})

	eventObj := &pingEvent{}
	entry.Execute(eventObj)

	assert.Equal(t, []string{"recorder"}, eventObj.calls)
	assert.Same(t, listenerObj, entry.Listener())
	assert.Equal(t, PriorityNormal, entry.Priority())

	assert.NotPanics(t, func() {
		NewRegistryEntry(listenerObj, PriorityNormal, nil).Execute(eventObj)
	})
}
