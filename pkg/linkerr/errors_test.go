package linkerr

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"testing"
)

func TestLinkErrorFormatting(t *testing.T) {
	err := &LinkError{Op: "scene.Build", Kind: KindScene, Err: errors.New("bad cell")}
	got := err.Error()
	if !strings.Contains(got, "scene.Build") || !strings.Contains(got, "[scene]") {
		t.Errorf("Error() = %q, want op and kind present", got)
	}
}

func TestLinkErrorUnwrap(t *testing.T) {
	inner := errors.New("inner")
	err := &LinkError{Op: "op", Kind: KindUnknown, Err: fmt.Errorf("wrap: %w", inner)}
	if !errors.Is(err, inner) {
		t.Error("errors.Is failed to reach the wrapped error")
	}
}

func TestConversionErrorCarriesParseCause(t *testing.T) {
	_, parseErr := strconv.Atoi("seven")
	err := &ConversionError{Control: "entry", Input: "seven", Target: "int", Err: parseErr}

	var numErr *strconv.NumError
	if !errors.As(err, &numErr) {
		t.Error("errors.As failed to reach the strconv cause")
	}
	got := err.Error()
	if !strings.Contains(got, `"seven"`) || !strings.Contains(got, "entry") || !strings.Contains(got, "int") {
		t.Errorf("Error() = %q, want input, control and target present", got)
	}
}

type captureHandler struct {
	last *LinkError
}

func (h *captureHandler) HandleError(err *LinkError) { h.last = err }

func TestReportUsesConfiguredHandler(t *testing.T) {
	h := &captureHandler{}
	SetHandler(h)
	defer SetHandler(nil)

	Report(&LinkError{Op: "demo", Kind: KindConversion, Err: errors.New("x")})

	if h.last == nil {
		t.Fatal("handler did not receive the reported error")
	}
	if h.last.Timestamp.IsZero() {
		t.Error("Report left the timestamp zero")
	}
}

func TestSetHandlerNilRestoresDefault(t *testing.T) {
	SetHandler(&captureHandler{})
	SetHandler(nil)
	if _, ok := DefaultHandler.(*LogHandler); !ok {
		t.Errorf("DefaultHandler is %T after SetHandler(nil), want *LogHandler", DefaultHandler)
	}
}

func TestErrorKindStrings(t *testing.T) {
	cases := map[ErrorKind]string{
		KindUnknown:    "unknown",
		KindConversion: "conversion",
		KindScene:      "scene",
		KindPanic:      "panic",
	}
	for kind, want := range cases {
		if kind.String() != want {
			t.Errorf("%d.String() = %q, want %q", int(kind), kind.String(), want)
		}
	}
}
