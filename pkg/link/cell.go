package link

// Observer is a passive listener notified after every value change. It has
// no get/set surface and never originates changes, so it has no echo
// concerns. Observers are attach-only; lifetime is reference-held.
type Observer interface {
	Refresh()
}

// controlAttachment is the cell-side view of a Binding: just enough to push
// a value quietly. Keeping it unexported fixes the invariant that only
// bindings created by Link can join a cell's fan-out.
type controlAttachment[T any] interface {
	quietSet(value T)
}

// Cell holds the canonical value and the registries of attached controls and
// observers. Create one with NewCell, then attach controls via Link and
// observers via AttachObserver.
//
// At every quiescent moment - no fan-out in progress - each attached
// control's displayed value reads back equal to the cell's value, modulo the
// control's representation round-trip.
type Cell[T any] struct {
	value     T
	controls  []controlAttachment[T]
	observers []Observer
}

// NewCell creates a cell holding initial.
func NewCell[T any](initial T) *Cell[T] {
	return &Cell[T]{value: initial}
}

// Get returns the canonical value. No side effects.
func (c *Cell[T]) Get() T {
	return c.value
}

// Set assigns the canonical value and fans it out: every attached control is
// written quietly, in attachment order, then every observer is refreshed, in
// attachment order. Controls before observers. This is the path for
// programmatic updates and updates from non-control sources.
func (c *Cell[T]) Set(value T) {
	c.distribute(value, nil)
}

// setFromControl is Set for user-driven changes reported by a wired control
// event. The originating binding is skipped during fan-out: it already shows
// the value, and writing back into it would disturb native editing state
// such as the text cursor.
func (c *Cell[T]) setFromControl(value T, origin controlAttachment[T]) {
	c.distribute(value, origin)
}

func (c *Cell[T]) distribute(value T, origin controlAttachment[T]) {
	c.value = value
	for _, attached := range c.controls {
		if attached == origin {
			continue
		}
		attached.quietSet(value)
	}
	for _, observer := range c.observers {
		observer.Refresh()
	}
}

// attachControl completes the linking protocol for a binding whose event is
// already wired: push the current value into the control so it displays
// canonical state immediately, then register it for fan-out.
func (c *Cell[T]) attachControl(attached controlAttachment[T]) {
	attached.quietSet(c.value)
	c.controls = append(c.controls, attached)
}

// AttachObserver registers a passive observer. No immediate refresh is
// triggered; observers read current state on their first paint.
func (c *Cell[T]) AttachObserver(observer Observer) {
	c.observers = append(c.observers, observer)
}
