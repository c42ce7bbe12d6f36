package entities

import (
	"errors"
	"fmt"
	"slices"
)

// ErrInvalidTransition is returned when a status change is not an edge of the order's graph.
var ErrInvalidTransition = errors.New("invalid status transition")

// StateMachine is a fixed transition table for one order kind.
//
// Every known status must be a key of the table; a status whose successor list is empty is
// terminal.
type StateMachine[S ~string] struct {
	name        string
	transitions map[S][]S
}

func NewStateMachine[S ~string](name string, transitions map[S][]S) StateMachine[S] {
	return StateMachine[S]{name: name, transitions: transitions}
}

func (m StateMachine[S]) Name() string {
	return m.name
}

// Known reports whether s belongs to this machine.
func (m StateMachine[S]) Known(s S) bool {
	_, ok := m.transitions[s]
	return ok
}

func (m StateMachine[S]) IsTerminal(s S) bool {
	next, ok := m.transitions[s]
	return ok && len(next) == 0
}

// Successors returns a copy of the statuses directly reachable from s.
func (m StateMachine[S]) Successors(s S) []S {
	return slices.Clone(m.transitions[s])
}

func (m StateMachine[S]) CanTransition(from, to S) bool {
	next, ok := m.transitions[from]
	if !ok {
		return false
	}
	return slices.Contains(next, to)
}

// Transition validates from -> to and returns the new status.
func (m StateMachine[S]) Transition(from, to S) (S, error) {
	if !m.Known(to) {
		return from, fmt.Errorf("%w: %s has no status %q", ErrInvalidTransition, m.name, to)
	}
	if m.IsTerminal(from) {
		return from, fmt.Errorf("%w: %s %s is terminal", ErrInvalidTransition, m.name, from)
	}
	if !m.CanTransition(from, to) {
		return from, fmt.Errorf("%w: %s %s → %s", ErrInvalidTransition, m.name, from, to)
	}
	return to, nil
}
