package astar

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidStart is reported when a search is initialized from a state
	// the graph does not consider legal, such as a blocked grid cell.
	ErrInvalidStart = errors.New("invalid start state")
	// ErrMalformedState is reported by graph constructors for input that does
	// not describe a valid state.
	ErrMalformedState = errors.New("malformed state")
	// ErrExpansionLimit is returned by Search when WithMaxExpansions is hit.
	ErrExpansionLimit = errors.New("expansion limit reached")

	// ErrNilArgument is returned when a session is given a nil graph,
	// goal predicate or heuristic.
	ErrNilArgument = errors.New("nil search argument")
)

// StateError wraps a rejected state with a human readable reason.
type StateError struct {
	Kind error
	Msg  string
}

func (e *StateError) Error() string {
	if e == nil {
		return ""
	}
	if e.Msg == "" {
		return e.Kind.Error()
	}
	return fmt.Sprintf("%s: %s", e.Kind.Error(), e.Msg)
}

func (e *StateError) Unwrap() error { return e.Kind }

// NewStateError builds a *StateError of the given kind.
func NewStateError(kind error, format string, args ...any) error {
	return &StateError{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}
