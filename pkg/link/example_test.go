package link_test

import (
	"fmt"

	"github.com/go-drift/valuelink/pkg/controls"
	"github.com/go-drift/valuelink/pkg/link"
)

// Example demonstrates the basic synchronization loop: one cell, two
// controls, and a user edit on one propagating to the other.
func Example() {
	cell := link.NewCell(5)
	label := controls.NewLabel()
	entry := controls.NewEntry()
	link.Link(cell, label, controls.LabelAdapter[int]{Codec: link.Ints()})
	link.Link(cell, entry, controls.EntryAdapter[int]{Codec: link.Ints()})

	fmt.Println("label:", label.Text())

	if err := entry.Commit("7"); err != nil {
		fmt.Println("commit failed:", err)
	}
	fmt.Println("cell:", cell.Get())
	fmt.Println("label:", label.Text())

	// Output:
	// label: 5
	// cell: 7
	// label: 7
}

// ExampleCell_AttachObserver shows a passive observer following a cell.
func ExampleCell_AttachObserver() {
	cell := link.NewCell(0.0)
	slider := controls.NewSlider(0, 10)
	link.Link(cell, slider, controls.SliderAdapter[float64]{})

	cell.AttachObserver(refreshFunc(func() {
		fmt.Println("repaint:", cell.Get())
	}))

	cell.Set(3)
	_ = slider.Drag(8)

	// Output:
	// repaint: 3
	// repaint: 8
}

type refreshFunc func()

func (f refreshFunc) Refresh() { f() }
