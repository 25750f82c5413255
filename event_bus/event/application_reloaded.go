package event

// ApplicationReloaded is dispatched after a full reload: every registry was reset and the configured
// listeners were registered again.
type ApplicationReloaded struct {
	Propagator
	containerAccessor
	ListenersCount int
}

//--------------------

func NewApplicationReloaded(containerAccessorObj containerAccessor, listenersCount int) *ApplicationReloaded {
	return &ApplicationReloaded{
		containerAccessor: containerAccessorObj,
		ListenersCount:    listenersCount,
	}
}
