package frontend

import "sync"

// Slot is the registration point for the context currently under
// construction. It lets distributed builder call sites, such as the ones a
// code-generation layer emits for operator expressions, reach "the current
// circuit" without threading a handle through every call.
//
// A slot holds at most one context. Activation is exclusive and
// non-reentrant: activating while any context is active is a programmer error
// and panics, whether the second activation is nested or from another
// goroutine. Construction itself is single-threaded; the slot only
// synchronizes the registration, not the graph.
type Slot[C any] struct {
	mu  sync.Mutex
	cur *C
}

// Use installs c for the duration of f and uninstalls it on every exit path,
// including an error return or a panic inside f.
func (s *Slot[C]) Use(c *C, f func() error) error {
	s.enter(c)
	defer s.leave()
	return f()
}

func (s *Slot[C]) enter(c *C) {
	if c == nil {
		panic("frontend: Use called with a nil context")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cur != nil {
		panic("frontend: a context is already active; nested construction is not supported")
	}
	s.cur = c
}

func (s *Slot[C]) leave() {
	s.mu.Lock()
	s.cur = nil
	s.mu.Unlock()
}

// With runs f with the active context. Calling it outside a Use scope is a
// programmer error and panics.
func (s *Slot[C]) With(f func(*C)) {
	s.mu.Lock()
	c := s.cur
	s.mu.Unlock()
	if c == nil {
		panic("frontend: With called outside of an active construction scope")
	}
	f(c)
}
