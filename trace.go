package astar

import (
	"fmt"
	"slices"

	"github.com/cespare/xxhash"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

// TraceEvent summarizes one Step.
type TraceEvent struct {
	Step     int    `yaml:"step"`
	Status   string `yaml:"status"`
	Current  string `yaml:"current"`
	Frontier int    `yaml:"frontier"`
	Visited  int    `yaml:"visited"`
}

// Trace is the recorded history of a session.
type Trace struct {
	Events []TraceEvent `yaml:"events"`
	Path   []string     `yaml:"path,omitempty"`
	Cost   float64      `yaml:"cost"`
}

// Digest is a stable fingerprint of the trace. Two runs over the same graph
// and inputs produce the same digest.
func (t Trace) Digest() uint64 {
	digest := xxhash.New()
	for _, event := range t.Events {
		fmt.Fprintf(digest, "%d|%s|%s|%d|%d\n",
			event.Step, event.Status, event.Current, event.Frontier, event.Visited)
	}
	for _, state := range t.Path {
		fmt.Fprintf(digest, "%s\n", state)
	}
	fmt.Fprintf(digest, "%g", t.Cost)
	return digest.Sum64()
}

// MarshalYAMLBytes encodes the trace the way search logs are written to disk.
func (t Trace) MarshalYAMLBytes() ([]byte, error) {
	return yaml.Marshal(t)
}

// Recorder wraps a Session and keeps a Trace of every step it drives.
type Recorder[NodeType comparable] struct {
	session *Session[NodeType]
	trace   Trace
}

// NewRecorder starts recording session from its current position.
func NewRecorder[NodeType comparable](session *Session[NodeType]) *Recorder[NodeType] {
	return &Recorder[NodeType]{session: session}
}

// Step advances the wrapped session. Repeated terminal results are not
// recorded twice.
func (r *Recorder[NodeType]) Step() StepResult[NodeType] {
	alreadyDone := r.session.Done()
	result := r.session.Step()
	if alreadyDone {
		return result
	}

	r.trace.Events = append(r.trace.Events, TraceEvent{
		Step:     result.StepIndex,
		Status:   result.Status.String(),
		Current:  fmt.Sprint(result.Current),
		Frontier: r.session.openSet.Len(),
		Visited:  r.session.Expanded(),
	})
	if result.Status == GoalReached {
		r.trace.Path = lo.Map(result.Path, func(state NodeType, _ int) string {
			return fmt.Sprint(state)
		})
		r.trace.Cost = result.Cost
	}
	return result
}

// Run steps until the session is terminal.
func (r *Recorder[NodeType]) Run() StepResult[NodeType] {
	for {
		result := r.Step()
		if result.Status.Terminal() {
			return result
		}
	}
}

// Trace returns a copy of what has been recorded so far.
func (r *Recorder[NodeType]) Trace() Trace {
	return Trace{
		Events: slices.Clone(r.trace.Events),
		Path:   slices.Clone(r.trace.Path),
		Cost:   r.trace.Cost,
	}
}
