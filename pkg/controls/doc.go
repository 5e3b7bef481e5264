// Package controls provides the narrow native-control surface the
// synchronization core binds against, plus one ControlAdapter per control
// kind.
//
// The core in pkg/link is toolkit-agnostic: it only ever talks to controls
// through the adapter contract. This package supplies the three control
// kinds needed in practice - a display-only Label, a commit-on-confirm
// Entry, and a continuous Slider driven by an intermediary Adjustment - each
// exposing exactly the capability set the contract requires: a value
// property, and a single native change event connectable by handler ID with
// nestable block/unblock suppression.
//
// Hosts embedding a real widget toolkit write their own adapters against
// native widgets instead; these controls double as the reference
// implementation and as fully deterministic stand-ins for tests and demos.
package controls
