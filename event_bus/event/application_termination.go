package event

// ApplicationTermination is dispatched before registries are reset on shutdown.
// Listeners may append to Errors, they are reported back by the kernel.
type ApplicationTermination struct {
	Propagator
	containerAccessor
	Errors *[]error
}

func (e *ApplicationTermination) AddError(err error) {
	if nil == err {
		return
	}

	*e.Errors = append(*e.Errors, err)
}

//--------------------

func NewApplicationTermination(containerAccessorObj containerAccessor, terminationErrors *[]error) *ApplicationTermination {
	return &ApplicationTermination{
		containerAccessor: containerAccessorObj,
		Errors:            terminationErrors,
	}
}
