package link

// EventToken identifies a native change event wired on a control. The zero
// token means the control kind fires no event that needs suppression.
type EventToken int

// NoEvent is returned by WireEvent for control kinds without a native change
// event, such as display-only labels.
const NoEvent EventToken = 0

// ControlAdapter translates between one control kind's native state and the
// canonical value type T. One implementation exists per control kind; the
// synchronization core never touches native toolkit APIs directly.
type ControlAdapter[T, W any] interface {
	// Read extracts the control's currently displayed value, converting
	// from the native representation. It returns a *linkerr.ConversionError
	// when the representation cannot be parsed as T; the core does not
	// catch it - the error propagates out of the native event emission to
	// whatever raised the user action.
	Read(control W) (T, error)

	// Write pushes value into the control's native representation. It is
	// total for well-formed values of T.
	Write(control W, value T)

	// WireEvent registers the control kind's native change event. The
	// handler must call onUserChange with the control; the binding then
	// reads the control and reports to the cell. Returns NoEvent when the
	// control kind has no such event, in which case nothing is registered.
	WireEvent(control W, onUserChange func(W) error) EventToken

	// Suppress disables the handler identified by token until Release.
	// Suppress/Release calls nest.
	Suppress(control W, token EventToken)

	// Release re-enables a handler disabled by Suppress.
	Release(control W, token EventToken)

	// FireEvent re-raises the wired native event programmatically. Most
	// control kinds leave this a no-op; embed NoFire to get that default.
	FireEvent(control W)
}

// NoFire provides the no-op FireEvent default for adapters whose control
// kind has no synthetically triggerable event.
type NoFire[W any] struct{}

// FireEvent does nothing.
func (NoFire[W]) FireEvent(W) {}
