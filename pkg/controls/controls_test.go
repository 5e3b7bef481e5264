package controls

import (
	"errors"
	"testing"
)

func TestSignalBlockNesting(t *testing.T) {
	var s signal
	runs := 0
	id := s.connect(func() error { runs++; return nil })

	s.block(id)
	s.block(id)
	s.emit()
	s.unblock(id)
	s.emit()
	if runs != 0 {
		t.Fatalf("handler ran %d times while still blocked, want 0", runs)
	}

	s.unblock(id)
	s.emit()
	if runs != 1 {
		t.Errorf("handler ran %d times after full unblock, want 1", runs)
	}
}

func TestSignalEmitStopsAtFirstError(t *testing.T) {
	var s signal
	boom := errors.New("boom")
	second := 0
	s.connect(func() error { return boom })
	s.connect(func() error { second++; return nil })

	if err := s.emit(); !errors.Is(err, boom) {
		t.Errorf("emit returned %v, want the first handler's error", err)
	}
	if second != 0 {
		t.Errorf("second handler ran %d times after an earlier error, want 0", second)
	}
}

func TestSignalEmitRunsInConnectionOrder(t *testing.T) {
	var s signal
	var order []int
	s.connect(func() error { order = append(order, 1); return nil })
	s.connect(func() error { order = append(order, 2); return nil })
	s.connect(func() error { order = append(order, 3); return nil })

	s.emit()

	for i, got := range order {
		if got != i+1 {
			t.Fatalf("emission order %v, want connection order", order)
		}
	}
}

func TestEntryCommitUpdatesTextBeforeEmitting(t *testing.T) {
	e := NewEntry()
	var seen string
	e.OnCommit(func() error {
		seen = e.Text()
		return nil
	})

	e.Commit("typed")

	if seen != "typed" {
		t.Errorf("handler saw %q, want the committed text", seen)
	}
}

func TestEntrySetTextDoesNotEmitCommit(t *testing.T) {
	e := NewEntry()
	runs := 0
	e.OnCommit(func() error { runs++; return nil })

	e.SetText("programmatic")

	if runs != 0 {
		t.Errorf("commit handler ran %d times on SetText, want 0", runs)
	}
}

func TestAdjustmentClampsToBounds(t *testing.T) {
	a := NewAdjustment(5, 0, 10)
	a.SetValue(42)
	if a.Value() != 10 {
		t.Errorf("Value() = %v after overshoot, want 10", a.Value())
	}
	a.SetValue(-1)
	if a.Value() != 0 {
		t.Errorf("Value() = %v after undershoot, want 0", a.Value())
	}
}

func TestAdjustmentSetValueEmitsValueChanged(t *testing.T) {
	// Programmatic assignment fires value-changed, like the native range
	// objects this models; that is exactly why slider writes during
	// fan-out are suppressed.
	a := NewAdjustment(0, 0, 10)
	runs := 0
	a.OnValueChanged(func() error { runs++; return nil })

	a.SetValue(3)

	if runs != 1 {
		t.Errorf("value-changed ran %d times on SetValue, want 1", runs)
	}
}
