// Package session implements the variable registry shared by all dual values
// of one differentiation problem.
//
// A Session fixes the length of every gradient vector (its capacity) and
// records the names of the independent variables in declaration order.
// Slot i of every gradient vector built against a session is the partial
// derivative with respect to the i-th declared variable.
//
// Lifecycle:
//   - capacity is fixed once, either by New(WithCapacity(n)) or by the first
//     SetCapacity call; asking for a different capacity later is an error
//   - variables are only ever appended, the count never decreases
//   - Reset discards everything so a differently sized problem can be set up
//
// Sessions are independent of each other. A single session must not be
// populated from several goroutines while another is evaluating against it.
package session

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// Session is the registry of independent variables for one problem.
type Session struct {
	mu       sync.Mutex
	id       string
	capacity int
	names    []string
}

// Option configures a Session at construction time.
type Option func(*Session)

// WithCapacity fixes the capacity of a new session.
//
// Non-positive values are ignored and leave the capacity unset.
func WithCapacity(n int) Option {
	return func(s *Session) {
		if n > 0 {
			s.capacity = n
		}
	}
}

// New creates an empty session.
//
// Example:
//
//	s := session.New(session.WithCapacity(2))
//	slot, err := s.Declare("x") // slot == 0
func New(opts ...Option) *Session {
	s := &Session{id: uuid.NewString()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ID returns the unique identifier of the session.
func (s *Session) ID() string {
	return s.id
}

// SetCapacity fixes the number of gradient slots.
//
// The call is idempotent when n equals the current capacity. Changing an
// already fixed capacity fails with ErrCapacityFixed.
func (s *Session) SetCapacity(n int) error {
	if n < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidCapacity, n)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.capacity != 0 && s.capacity != n {
		return fmt.Errorf("%w: already %d, requested %d", ErrCapacityFixed, s.capacity, n)
	}
	s.capacity = n
	return nil
}

// Declare registers a new independent variable and returns its slot.
//
// Nothing is recorded when the session is already full.
func (s *Session) Declare(name string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.names) >= s.capacity {
		return -1, fmt.Errorf("%w: variable %q would be number %d of %d",
			ErrCapacityExceeded, name, len(s.names)+1, s.capacity)
	}
	s.names = append(s.names, name)
	return len(s.names) - 1, nil
}

// NameOf returns the name of the variable at slot.
func (s *Session) NameOf(slot int) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if slot < 0 || slot >= len(s.names) {
		return "", fmt.Errorf("%w: %d (declared %d)", ErrSlotOutOfRange, slot, len(s.names))
	}
	return s.names[slot], nil
}

// Count returns the number of declared variables.
func (s *Session) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.names)
}

// Capacity returns the gradient length, or 0 while it is unset.
func (s *Session) Capacity() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.capacity
}

// Names returns a copy of the declared names in slot order.
func (s *Session) Names() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// Reset clears the capacity and all declared variables.
//
// Values created before Reset keep their old gradient length and must not
// be combined with values created afterwards.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.capacity = 0
	s.names = nil
}
