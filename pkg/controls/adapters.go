package controls

import (
	"github.com/go-drift/valuelink/pkg/link"
	"github.com/go-drift/valuelink/pkg/linkerr"
)

// LabelAdapter binds a display-only Label to a cell of any codec-convertible
// type. Labels have no change event, so WireEvent reports NoEvent and quiet
// writes go straight through.
type LabelAdapter[T any] struct {
	link.NoFire[*Label]
	Codec link.Codec[T]
}

// Read parses the label's displayed text.
func (a LabelAdapter[T]) Read(l *Label) (T, error) {
	value, err := a.Codec.Parse(l.Text())
	if err != nil {
		return value, &linkerr.ConversionError{
			Control: "label",
			Input:   l.Text(),
			Target:  a.Codec.Name,
			Err:     err,
		}
	}
	return value, nil
}

// Write formats value into the label's text.
func (a LabelAdapter[T]) Write(l *Label, value T) {
	l.SetText(a.Codec.Format(value))
}

// WireEvent reports that labels fire no native change event.
func (a LabelAdapter[T]) WireEvent(*Label, func(*Label) error) link.EventToken {
	return link.NoEvent
}

// Suppress does nothing; there is no event to suppress.
func (a LabelAdapter[T]) Suppress(*Label, link.EventToken) {}

// Release does nothing.
func (a LabelAdapter[T]) Release(*Label, link.EventToken) {}

// EntryAdapter binds a text Entry to a cell of any codec-convertible type.
// The wired event is the entry's commit.
type EntryAdapter[T any] struct {
	link.NoFire[*Entry]
	Codec link.Codec[T]
}

// Read parses the entry's current text. Text a user typed need not parse as
// T; the resulting conversion error propagates out of the commit.
func (a EntryAdapter[T]) Read(e *Entry) (T, error) {
	value, err := a.Codec.Parse(e.Text())
	if err != nil {
		return value, &linkerr.ConversionError{
			Control: "entry",
			Input:   e.Text(),
			Target:  a.Codec.Name,
			Err:     err,
		}
	}
	return value, nil
}

// Write formats value into the entry's text.
func (a EntryAdapter[T]) Write(e *Entry, value T) {
	e.SetText(a.Codec.Format(value))
}

// WireEvent connects the commit event.
func (a EntryAdapter[T]) WireEvent(e *Entry, onUserChange func(*Entry) error) link.EventToken {
	id := e.OnCommit(func() error {
		return onUserChange(e)
	})
	return link.EventToken(id)
}

// Suppress blocks the commit handler.
func (a EntryAdapter[T]) Suppress(e *Entry, token link.EventToken) {
	e.BlockCommit(HandlerID(token))
}

// Release unblocks the commit handler.
func (a EntryAdapter[T]) Release(e *Entry, token link.EventToken) {
	e.UnblockCommit(HandlerID(token))
}

// SliderValue constrains the numeric cell types a slider can carry.
type SliderValue interface {
	~int | ~int32 | ~int64 | ~float32 | ~float64
}

// SliderAdapter binds a Slider to a numeric cell through the slider's
// Adjustment. The wired event is the adjustment's value-changed, which also
// fires on programmatic assignment - the suppression in quiet writes is what
// keeps fan-out from re-entering the cell.
type SliderAdapter[T SliderValue] struct{}

// Read returns the adjustment's value. Numeric narrowing is total, so Read
// never fails for sliders.
func (a SliderAdapter[T]) Read(s *Slider) (T, error) {
	return T(s.Adjustment().Value()), nil
}

// Write assigns the adjustment. The wired handler is blocked for the
// duration of a quiet write, and slider reads cannot fail, so the emission
// cannot produce an error here.
func (a SliderAdapter[T]) Write(s *Slider, value T) {
	_ = s.Adjustment().SetValue(float64(value))
}

// WireEvent connects the adjustment's value-changed event.
func (a SliderAdapter[T]) WireEvent(s *Slider, onUserChange func(*Slider) error) link.EventToken {
	id := s.Adjustment().OnValueChanged(func() error {
		return onUserChange(s)
	})
	return link.EventToken(id)
}

// Suppress blocks the value-changed handler.
func (a SliderAdapter[T]) Suppress(s *Slider, token link.EventToken) {
	s.Adjustment().BlockValueChanged(HandlerID(token))
}

// Release unblocks the value-changed handler.
func (a SliderAdapter[T]) Release(s *Slider, token link.EventToken) {
	s.Adjustment().UnblockValueChanged(HandlerID(token))
}

// FireEvent re-raises value-changed so subscribers of the lower-level event
// run again. Slider reads are total, so the emission cannot fail.
func (a SliderAdapter[T]) FireEvent(s *Slider) {
	_ = s.Adjustment().Notify()
}
