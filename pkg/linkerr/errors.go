// Package linkerr provides structured error handling for the valuelink
// library.
package linkerr

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindConversion indicates a control's native representation could not
	// be parsed as the cell's value type.
	KindConversion
	// KindScene indicates a scene description could not be loaded or built.
	KindScene
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindConversion:
		return "conversion"
	case KindScene:
		return "scene"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// LinkError represents a structured error in the valuelink library.
type LinkError struct {
	// Op is the operation that failed (e.g., "scene.Build").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *LinkError) Unwrap() error {
	return e.Err
}

// ConversionError reports that a control's displayed representation could
// not be parsed as the cell's value type. It is raised by an adapter's Read
// and is never caught by the synchronization core: it propagates out of the
// native event emission, and the host event loop decides whether to abort
// the interaction or surface it to the user.
type ConversionError struct {
	// Control is the control kind whose representation failed to parse
	// (e.g., "entry").
	Control string
	// Input is the native representation that failed to parse.
	Input string
	// Target is the cell's value type name.
	Target string
	// Err is the underlying parse error.
	Err error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("cannot parse %q from %s as %s: %v", e.Input, e.Control, e.Target, e.Err)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}
