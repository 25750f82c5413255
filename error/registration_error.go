package error

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateRegistration matches every *DuplicateRegistrationError with errors.Is.
	ErrDuplicateRegistration = errors.New("duplicate listener registration")

	// ErrInvalidEntry matches every *InvalidEntryError with errors.Is.
	ErrInvalidEntry = errors.New("invalid registry entry")
)

// DuplicateRegistrationError is returned when a listener is registered twice with the same priority
// for the same event. It always points to a programming defect, callers should not retry.
type DuplicateRegistrationError struct {
	Registry string
	Listener interface{}
	Priority fmt.Stringer
}

func (e *DuplicateRegistrationError) Error() string {
	return fmt.Sprintf(
		"listener %T (%v) is already registered with priority %s in %s",
		e.Listener,
		e.Listener,
		e.Priority,
		e.Registry,
	)
}

func (e *DuplicateRegistrationError) Is(target error) bool {
	return target == ErrDuplicateRegistration
}

//--------------------

type InvalidEntryError struct {
	Registry string
	Reason   string
}

func (e *InvalidEntryError) Error() string {
	return "invalid entry for " + e.Registry + ": " + e.Reason
}

func (e *InvalidEntryError) Is(target error) bool {
	return target == ErrInvalidEntry
}

//--------------------

func NewDuplicateRegistrationError(registry string, listenerObj interface{}, priority fmt.Stringer) *DuplicateRegistrationError {
	return &DuplicateRegistrationError{
		Registry: registry,
		Listener: listenerObj,
		Priority: priority,
	}
}

func NewInvalidEntryError(registry, reason string) *InvalidEntryError {
	return &InvalidEntryError{
		Registry: registry,
		Reason:   reason,
	}
}
