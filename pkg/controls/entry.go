package controls

// Entry is a single-line text input. Its native change event is
// commit-on-confirm: it fires when the user confirms an edit, not on every
// keystroke and not on programmatic SetText.
type Entry struct {
	text   string
	commit signal
}

// NewEntry creates an empty entry.
func NewEntry() *Entry {
	return &Entry{}
}

// Text returns the current text content.
func (e *Entry) Text() string {
	return e.text
}

// SetText replaces the text content without firing the commit event.
func (e *Entry) SetText(text string) {
	e.text = text
}

// OnCommit connects a handler to the commit event and returns its ID.
func (e *Entry) OnCommit(fn func() error) HandlerID {
	return e.commit.connect(fn)
}

// BlockCommit disables the identified commit handler until UnblockCommit.
// Calls nest.
func (e *Entry) BlockCommit(id HandlerID) {
	e.commit.block(id)
}

// UnblockCommit reverses one BlockCommit.
func (e *Entry) UnblockCommit(id HandlerID) {
	e.commit.unblock(id)
}

// CommitBlockDepth reports the handler's current block nesting.
func (e *Entry) CommitBlockDepth(id HandlerID) int {
	return e.commit.blockedDepth(id)
}

// Commit replaces the text and fires the commit event, as a user confirming
// an edit does. The first handler error - a conversion error when the text
// does not parse as the bound cell's type - is returned to the caller, which
// owns the policy for it.
func (e *Entry) Commit(text string) error {
	e.text = text
	return e.commit.emit()
}
