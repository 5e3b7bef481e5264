// Package linktest provides deterministic doubles for testing code built on
// the synchronization core: a refresh-counting observer and a scripted
// control/adapter pair with call counters and injectable write failures.
package linktest

import "github.com/go-drift/valuelink/pkg/link"

// RecordingObserver counts refreshes and optionally appends a tag to a
// shared trace, for asserting fan-out order against control writes.
type RecordingObserver struct {
	Refreshes int
	// Tag and Trace are optional; when both are set, Refresh appends Tag
	// to *Trace.
	Tag   string
	Trace *[]string
}

// Refresh records the notification.
func (o *RecordingObserver) Refresh() {
	o.Refreshes++
	if o.Trace != nil && o.Tag != "" {
		*o.Trace = append(*o.Trace, o.Tag)
	}
}

// ScriptedControl is a minimal in-memory control holding a string value and
// one wired handler with nestable blocking, mirroring the native-surface
// contract real controls implement.
type ScriptedControl struct {
	// Value is the control's displayed representation.
	Value string
	// Fired counts invocations of the wired handler.
	Fired int
	// Tag and Trace are optional; when both are set, writes append Tag
	// to *Trace.
	Tag   string
	Trace *[]string

	handler func() error
	blocked int
}

// Emit raises the control's change event, as a user action does. Blocked or
// missing handlers make it a no-op.
func (c *ScriptedControl) Emit() error {
	if c.handler == nil || c.blocked > 0 {
		return nil
	}
	c.Fired++
	return c.handler()
}

// BlockDepth reports the current suppression nesting.
func (c *ScriptedControl) BlockDepth() int {
	return c.blocked
}

// ScriptedAdapter implements link.ControlAdapter[string, *ScriptedControl]
// with counters on every capability, plus an injectable panic on Write for
// exercising suppression-safety paths.
type ScriptedAdapter struct {
	link.NoFire[*ScriptedControl]

	// PanicOnWrite makes Write panic after counting the call.
	PanicOnWrite bool

	Reads     int
	Writes    int
	Suppresses int
	Releases  int

	// ReadErr, when set, is returned by every Read.
	ReadErr error
}

// Read returns the control's value, or ReadErr when injected.
func (a *ScriptedAdapter) Read(c *ScriptedControl) (string, error) {
	a.Reads++
	if a.ReadErr != nil {
		return "", a.ReadErr
	}
	return c.Value, nil
}

// Write stores the value, recording it in the trace when configured.
func (a *ScriptedAdapter) Write(c *ScriptedControl, value string) {
	a.Writes++
	if a.PanicOnWrite {
		panic("scripted write failure")
	}
	c.Value = value
	if c.Trace != nil && c.Tag != "" {
		*c.Trace = append(*c.Trace, c.Tag)
	}
}

// WireEvent installs the handler and returns token 1.
func (a *ScriptedAdapter) WireEvent(c *ScriptedControl, onUserChange func(*ScriptedControl) error) link.EventToken {
	c.handler = func() error {
		return onUserChange(c)
	}
	return 1
}

// Suppress increments the control's block depth.
func (a *ScriptedAdapter) Suppress(c *ScriptedControl, _ link.EventToken) {
	a.Suppresses++
	c.blocked++
}

// Release decrements the control's block depth.
func (a *ScriptedAdapter) Release(c *ScriptedControl, _ link.EventToken) {
	a.Releases++
	c.blocked--
}

// SilentAdapter is ScriptedAdapter's display-only sibling: it wires no
// event, so quiet writes skip suppression entirely.
type SilentAdapter struct {
	link.NoFire[*ScriptedControl]

	Writes int
}

// Read returns the control's value.
func (a *SilentAdapter) Read(c *ScriptedControl) (string, error) {
	return c.Value, nil
}

// Write stores the value.
func (a *SilentAdapter) Write(c *ScriptedControl, value string) {
	a.Writes++
	c.Value = value
	if c.Trace != nil && c.Tag != "" {
		*c.Trace = append(*c.Trace, c.Tag)
	}
}

// WireEvent reports no native change event.
func (a *SilentAdapter) WireEvent(*ScriptedControl, func(*ScriptedControl) error) link.EventToken {
	return link.NoEvent
}

// Suppress must never be called for a NoEvent binding; it panics to surface
// protocol violations in tests.
func (a *SilentAdapter) Suppress(*ScriptedControl, link.EventToken) {
	panic("Suppress called on an eventless adapter")
}

// Release must never be called for a NoEvent binding.
func (a *SilentAdapter) Release(*ScriptedControl, link.EventToken) {
	panic("Release called on an eventless adapter")
}
