package controls

import "slices"

// HandlerID identifies a handler connected to a control's change signal.
// Zero is never issued; it is reserved for "no handler".
type HandlerID int

// signal is the one native change event a control kind exposes. Handlers
// return an error so that a failure inside a handler - a conversion error,
// typically - propagates back to whatever raised the event.
type signal struct {
	handlers map[HandlerID]*signalHandler
	nextID   HandlerID
}

type signalHandler struct {
	fn      func() error
	blocked int
}

// connect registers fn and returns its ID.
func (s *signal) connect(fn func() error) HandlerID {
	if s.handlers == nil {
		s.handlers = make(map[HandlerID]*signalHandler)
	}
	s.nextID++
	id := s.nextID
	s.handlers[id] = &signalHandler{fn: fn}
	return id
}

// block disables the handler until a matching unblock. Calls nest.
func (s *signal) block(id HandlerID) {
	if h := s.handlers[id]; h != nil {
		h.blocked++
	}
}

// unblock reverses one block.
func (s *signal) unblock(id HandlerID) {
	if h := s.handlers[id]; h != nil && h.blocked > 0 {
		h.blocked--
	}
}

// blockedDepth reports the handler's current block nesting.
func (s *signal) blockedDepth(id HandlerID) int {
	if h := s.handlers[id]; h != nil {
		return h.blocked
	}
	return 0
}

// emit runs every unblocked handler in connection order and returns the
// first error.
func (s *signal) emit() error {
	ids := make([]HandlerID, 0, len(s.handlers))
	for id := range s.handlers {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	for _, id := range ids {
		h := s.handlers[id]
		if h.blocked > 0 {
			continue
		}
		if err := h.fn(); err != nil {
			return err
		}
	}
	return nil
}
