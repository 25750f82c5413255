package event

// ApplicationLaunched is dispatched once every configured listener is registered and every registry is baked.
type ApplicationLaunched struct {
	Propagator
	containerAccessor
	ListenersCount int
}

//--------------------

func NewApplicationLaunched(containerAccessorObj containerAccessor, listenersCount int) *ApplicationLaunched {
	return &ApplicationLaunched{
		containerAccessor: containerAccessorObj,
		ListenersCount:    listenersCount,
	}
}
