// Package link keeps a single logical value consistent across any number of
// UI controls and passive observers.
//
// A Cell holds the canonical value. Controls attach through Link, which pairs
// a control with a ControlAdapter for its kind and produces a Binding. When
// one control reports a user change, the cell updates and pushes the new
// value into every other attached control quietly - with the control's native
// change event suppressed - so the fan-out never echoes back into the control
// that originated it. Passive observers are notified after the controls.
//
// # Core Types
//
// Cell is the canonical holder of a synchronized value and the registries of
// everything attached to it.
//
// ControlAdapter is the per-control-kind strategy: it reads and writes the
// control's native representation of the value, wires the native change
// event, and suppresses that event for the duration of a quiet write.
//
// Binding is the handle produced by Link. It mediates between one control and
// one cell for the binding's whole lifetime; re-linking a control means
// creating a new binding.
//
// # Example
//
//	cell := link.NewCell(5)
//	entry := controls.NewEntry()
//	link.Link(cell, entry, controls.EntryAdapter[int]{Codec: link.Ints()})
//
//	cell.Set(7)          // entry now displays "7"
//	entry.Commit("9")    // cell.Get() == 9, other controls follow
//
// # Threading
//
// Everything in this package is single-threaded by design: all mutation runs
// synchronously on the host event loop, the same model the rest of the
// toolkit assumes. A Set or user-driven update completes its entire fan-out
// before returning.
package link
