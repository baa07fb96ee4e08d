package astar

import (
	"context"
	"runtime"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Graph is generic over node type N.
// N must be comparable so it can be used in maps; two states are the same
// state exactly when they compare equal.
type Graph[NodeType comparable] interface {
	// Neighbors returns every state reachable from node in one step.
	Neighbors(node NodeType) []NodeType
	// StepCost is the non-negative cost of moving from one state to a neighbor.
	StepCost(from NodeType, to NodeType) float64
}

// Blocker is implemented by graphs whose state space contains states that
// can never be entered. The engine never expands a blocked state and
// refuses to start from one.
type Blocker[NodeType comparable] interface {
	IsBlocked(node NodeType) bool
}

// Validator is implemented by graphs that can tell a malformed state from a
// legal one. Sessions refuse to start from a state it rejects.
type Validator[NodeType comparable] interface {
	Validate(node NodeType) error
}

// Heuristic returns the estimated cost from node to the goal it is bound to.
// It must never overestimate for the returned path to be optimal.
type Heuristic[NodeType comparable] func(node NodeType) float64

// GoalPredicate reports whether node is a goal state.
type GoalPredicate[NodeType comparable] func(node NodeType) bool

// GoalNode returns a predicate matching exactly goal.
func GoalNode[NodeType comparable](goal NodeType) GoalPredicate[NodeType] {
	return func(node NodeType) bool { return node == goal }
}

// Result contains the outcome of a search
type Result[NodeType comparable] struct {
	Path          []NodeType
	TotalCost     float64
	ExpandedNodes int
	Found         bool
}

// Options defines parameters for the search.
type Options struct {
	NumberOfWorkers int
	MaxExpansions   int
	Logger          *zerolog.Logger
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithWorkers specifies how many searches SearchAll runs at once.
func WithWorkers(numberOfWorkers int) Option {
	return func(options *Options) { options.NumberOfWorkers = numberOfWorkers }
}

// WithMaxExpansions stops Search with ErrExpansionLimit after n expansions.
// Zero means no limit.
func WithMaxExpansions(n int) Option {
	return func(options *Options) { options.MaxExpansions = n }
}

// WithLogger replaces the global zerolog logger for a session.
func WithLogger(logger zerolog.Logger) Option {
	return func(options *Options) { options.Logger = &logger }
}

func applyOptions(options []Option) Options {
	searchOptions := Options{
		NumberOfWorkers: runtime.NumCPU(),
	}
	for _, option := range options {
		option(&searchOptions)
	}
	if searchOptions.NumberOfWorkers < 1 {
		searchOptions.NumberOfWorkers = 1
	}
	return searchOptions
}

// searchLogger picks the WithLogger logger, then the one carried by
// contextObject, then the global logger.
func searchLogger(contextObject context.Context, searchOptions Options) *zerolog.Logger {
	if searchOptions.Logger != nil {
		return searchOptions.Logger
	}
	logger := zerolog.Ctx(contextObject)
	if logger.GetLevel() == zerolog.Disabled {
		return &log.Logger
	}
	return logger
}

// Search runs a session to completion. An unreachable goal is reported as a
// Result with Found == false and a nil error; errors are reserved for
// rejected input, cancellation and the expansion limit.
func Search[NodeType comparable](
	contextObject context.Context,
	graph Graph[NodeType],
	startNode NodeType,
	isGoal GoalPredicate[NodeType],
	heuristic Heuristic[NodeType],
	options ...Option,
) (Result[NodeType], error) {

	// --- Apply options ---
	searchOptions := applyOptions(options)
	logger := searchLogger(contextObject, searchOptions)

	// --- Initialize state ---
	session, err := NewSession(graph, startNode, isGoal, heuristic, WithLogger(*logger))
	if err != nil {
		return Result[NodeType]{}, err
	}

	// --- Drive the session ---
	startedAt := time.Now()
	for {
		if err := contextObject.Err(); err != nil {
			return Result[NodeType]{ExpandedNodes: session.Expanded()}, err
		}

		stepResult := session.Step()
		switch stepResult.Status {
		case GoalReached:
			logger.Debug().
				Int("expanded", session.Expanded()).
				Float64("cost", stepResult.Cost).
				Dur("elapsed", time.Since(startedAt)).
				Msg("search-finished")
			return Result[NodeType]{
				Path:          stepResult.Path,
				TotalCost:     stepResult.Cost,
				ExpandedNodes: session.Expanded(),
				Found:         true,
			}, nil
		case NoSolution:
			logger.Debug().
				Int("expanded", session.Expanded()).
				Dur("elapsed", time.Since(startedAt)).
				Msg("search-exhausted")
			return Result[NodeType]{ExpandedNodes: session.Expanded()}, nil
		}

		if searchOptions.MaxExpansions > 0 && session.Expanded() >= searchOptions.MaxExpansions {
			logger.Warn().Int("limit", searchOptions.MaxExpansions).Msg("expansion-limit-reached")
			return Result[NodeType]{ExpandedNodes: session.Expanded()}, ErrExpansionLimit
		}
	}
}
