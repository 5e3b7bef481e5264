package controls

// Label is a display-only text control. It has no change event: users cannot
// edit it, so writes into it never need suppression.
type Label struct {
	text string
}

// NewLabel creates an empty label.
func NewLabel() *Label {
	return &Label{}
}

// Text returns the displayed text.
func (l *Label) Text() string {
	return l.text
}

// SetText replaces the displayed text.
func (l *Label) SetText(text string) {
	l.text = text
}
