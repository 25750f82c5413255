package event_bus

import (
	"errors"
	"strings"
)

// Priority is a listener tier. Tiers are fixed and totally ordered, Lowest < ... < Monitor.
type Priority int

const (
	PriorityLowest Priority = iota
	PriorityLow
	PriorityNormal
	PriorityHigh
	PriorityHighest
	// PriorityMonitor is meant for listeners that only observe the outcome of an event.
	PriorityMonitor

	PriorityCount = int(PriorityMonitor) + 1
)

var priorityNames = [PriorityCount]string{"lowest", "low", "normal", "high", "highest", "monitor"}

func (p Priority) IsValid() bool {
	return p >= PriorityLowest && p <= PriorityMonitor
}

func (p Priority) String() string {
	if !p.IsValid() {
		return "unknown"
	}

	return priorityNames[p]
}

// ParsePriority converts a tier name (case-insensitive) to Priority. Empty name means PriorityNormal.
func ParsePriority(name string) (Priority, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if "" == name {
		return PriorityNormal, nil
	}

	for i, priorityName := range priorityNames {
		if priorityName == name {
			return Priority(i), nil
		}
	}

	return PriorityNormal, errors.New("unknown priority " + name)
}

//--------------------

// PriorityOrder defines how tiers are concatenated into a snapshot.
type PriorityOrder int

const (
	// LowestFirst dispatches PriorityLowest first and PriorityMonitor last.
	LowestFirst PriorityOrder = iota
	HighestFirst
)

func (o PriorityOrder) String() string {
	if HighestFirst == o {
		return "highest_first"
	}

	return "lowest_first"
}

// tiers returns priorities in dispatch order.
func (o PriorityOrder) tiers() [PriorityCount]Priority {
	var result [PriorityCount]Priority
	for i := range result {
		if HighestFirst == o {
			result[i] = Priority(PriorityCount - 1 - i)
		} else {
			result[i] = Priority(i)
		}
	}

	return result
}

func ParsePriorityOrder(name string) (PriorityOrder, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "lowest_first":
		return LowestFirst, nil
	case "highest_first":
		return HighestFirst, nil
	}

	return LowestFirst, errors.New("unknown priority order " + name)
}
