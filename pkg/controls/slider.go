package controls

// Adjustment is the intermediary range object a Slider reads its position
// from: a numeric value clamped to [Lower, Upper], with a value-changed
// event that fires on every assignment - programmatic assignments included,
// which is why slider writes during fan-out must be suppressed.
type Adjustment struct {
	value        float64
	lower, upper float64
	valueChanged signal
}

// NewAdjustment creates an adjustment over [lower, upper] holding value
// (clamped).
func NewAdjustment(value, lower, upper float64) *Adjustment {
	a := &Adjustment{lower: lower, upper: upper}
	a.value = a.clamp(value)
	return a
}

// Value returns the current value.
func (a *Adjustment) Value() float64 {
	return a.value
}

// Lower returns the inclusive lower bound.
func (a *Adjustment) Lower() float64 {
	return a.lower
}

// Upper returns the inclusive upper bound.
func (a *Adjustment) Upper() float64 {
	return a.upper
}

// SetValue assigns the value, clamped to the adjustment's bounds, and fires
// the value-changed event. The first handler error is returned.
func (a *Adjustment) SetValue(value float64) error {
	a.value = a.clamp(value)
	return a.valueChanged.emit()
}

// OnValueChanged connects a handler to the value-changed event and returns
// its ID.
func (a *Adjustment) OnValueChanged(fn func() error) HandlerID {
	return a.valueChanged.connect(fn)
}

// BlockValueChanged disables the identified handler until
// UnblockValueChanged. Calls nest.
func (a *Adjustment) BlockValueChanged(id HandlerID) {
	a.valueChanged.block(id)
}

// UnblockValueChanged reverses one BlockValueChanged.
func (a *Adjustment) UnblockValueChanged(id HandlerID) {
	a.valueChanged.unblock(id)
}

// ValueChangedBlockDepth reports the handler's current block nesting.
func (a *Adjustment) ValueChangedBlockDepth(id HandlerID) int {
	return a.valueChanged.blockedDepth(id)
}

// Notify re-fires the value-changed event without changing the value, for
// callers that need subscribers of the lower-level event to run again.
func (a *Adjustment) Notify() error {
	return a.valueChanged.emit()
}

func (a *Adjustment) clamp(value float64) float64 {
	if value < a.lower {
		return a.lower
	}
	if value > a.upper {
		return a.upper
	}
	return value
}

// Slider is a numeric control whose position lives in an Adjustment.
type Slider struct {
	adjustment *Adjustment
}

// NewSlider creates a slider over [lower, upper] positioned at lower.
func NewSlider(lower, upper float64) *Slider {
	return &Slider{adjustment: NewAdjustment(lower, lower, upper)}
}

// Adjustment returns the slider's range object.
func (s *Slider) Adjustment() *Adjustment {
	return s.adjustment
}

// Drag moves the slider as a user drag does: the adjustment is assigned and
// its value-changed event fires. The first handler error is returned.
func (s *Slider) Drag(value float64) error {
	return s.adjustment.SetValue(value)
}
