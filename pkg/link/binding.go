package link

// Binding connects one control to one cell through the control kind's
// adapter. It is created by Link and belongs to that cell for its whole
// lifetime. The control is borrowed, not owned; the caller keeps ownership.
type Binding[T, W any] struct {
	control W
	adapter ControlAdapter[T, W]
	token   EventToken
	cell    *Cell[T]
}

// Link attaches control to cell and returns the binding that mediates
// between them. In order: the adapter wires the control's native change
// event, the control is quietly set to the cell's current value, and the
// binding joins the cell's fan-out list. There is no unlink; to detach,
// discard all references.
func Link[T, W any](cell *Cell[T], control W, adapter ControlAdapter[T, W]) *Binding[T, W] {
	b := &Binding[T, W]{
		control: control,
		adapter: adapter,
		cell:    cell,
	}
	b.token = adapter.WireEvent(control, b.onUserChange)
	cell.attachControl(b)
	return b
}

// Control returns the bound control.
func (b *Binding[T, W]) Control() W {
	return b.control
}

// Cell returns the cell this binding reports to.
func (b *Binding[T, W]) Cell() *Cell[T] {
	return b.cell
}

// onUserChange runs inside the control's native event: read the control's
// new value and report it to the cell, skipping this binding in the fan-out.
// A failed read propagates to whatever raised the event.
func (b *Binding[T, W]) onUserChange(control W) error {
	value, err := b.adapter.Read(control)
	if err != nil {
		return err
	}
	b.cell.setFromControl(value, b)
	return nil
}

// quietSet writes value into the control without triggering the binding's
// own change handler. Suppression is released on every exit path, so a
// panicking Write cannot leave the handler permanently disabled.
func (b *Binding[T, W]) quietSet(value T) {
	if b.token == NoEvent {
		b.adapter.Write(b.control, value)
		return
	}
	b.adapter.Suppress(b.control, b.token)
	defer b.adapter.Release(b.control, b.token)
	b.adapter.Write(b.control, value)
}
