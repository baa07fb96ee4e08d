package astar

import (
	"container/heap"
	"slices"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/pdrpinto/astarkit/internal"
)

// Status is the outcome of a single Step.
type Status int

const (
	// InProgress means a node was expanded and the search can continue.
	InProgress Status = iota
	// GoalReached means the selected node satisfied the goal predicate.
	GoalReached
	// NoSolution means the frontier ran dry before the goal was selected.
	NoSolution
)

func (status Status) String() string {
	switch status {
	case InProgress:
		return "in-progress"
	case GoalReached:
		return "goal-reached"
	case NoSolution:
		return "no-solution"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further progress is possible.
func (status Status) Terminal() bool { return status != InProgress }

// StepResult describes what a single call to Step did.
type StepResult[NodeType comparable] struct {
	Status Status
	// Current is the state selected during the step. It is the zero value
	// when the frontier was already empty.
	Current NodeType
	// Path runs from start to goal and is only set for GoalReached.
	Path      []NodeType
	Cost      float64
	StepIndex int
}

// Snapshot is a read-only copy of the session state for renderers.
type Snapshot[NodeType comparable] struct {
	Current   NodeType
	Frontier  []NodeType
	Visited   []NodeType
	Path      []NodeType
	Status    Status
	StepIndex int
}

// searchNode is an arena entry. Parents live in Session.parents so that the
// back-pointer tree is a plain slice of indices.
type searchNode[NodeType comparable] struct {
	state  NodeType
	gScore float64
	hScore float64
	fCost  float64
	item   *PriorityQueueItem
	closed bool
}

// Session is a resumable A* search. It is not safe for concurrent use; run
// independent sessions for concurrent searches.
type Session[NodeType comparable] struct {
	graph     Graph[NodeType]
	blocker   Blocker[NodeType]
	isGoal    GoalPredicate[NodeType]
	heuristic Heuristic[NodeType]
	logger    zerolog.Logger

	nodes   []searchNode[NodeType]
	parents []int
	index   map[NodeType]int
	openSet PriorityQueue

	current   NodeType
	stepCount int
	expanded  int
	terminal  *StepResult[NodeType]
}

// NewSession creates a session and initializes it.
func NewSession[NodeType comparable](
	graph Graph[NodeType],
	startNode NodeType,
	isGoal GoalPredicate[NodeType],
	heuristic Heuristic[NodeType],
	options ...Option,
) (*Session[NodeType], error) {
	searchOptions := applyOptions(options)
	s := &Session[NodeType]{logger: log.Logger}
	if searchOptions.Logger != nil {
		s.logger = *searchOptions.Logger
	}
	if err := s.Initialize(graph, startNode, isGoal, heuristic); err != nil {
		return nil, err
	}
	return s, nil
}

// Initialize discards any previous progress and starts a new search from
// startNode. The frontier holds only the start node with g = 0.
func (s *Session[NodeType]) Initialize(
	graph Graph[NodeType],
	startNode NodeType,
	isGoal GoalPredicate[NodeType],
	heuristic Heuristic[NodeType],
) error {
	if graph == nil || isGoal == nil || heuristic == nil {
		return ErrNilArgument
	}
	if validator, ok := graph.(Validator[NodeType]); ok {
		if err := validator.Validate(startNode); err != nil {
			return err
		}
	}
	blocker, _ := graph.(Blocker[NodeType])
	if blocker != nil && blocker.IsBlocked(startNode) {
		return NewStateError(ErrInvalidStart, "start %v is blocked", startNode)
	}

	var zero NodeType
	s.graph = graph
	s.blocker = blocker
	s.isGoal = isGoal
	s.heuristic = heuristic
	s.nodes = s.nodes[:0]
	s.parents = s.parents[:0]
	s.index = make(map[NodeType]int)
	s.openSet = make(PriorityQueue, 0)
	heap.Init(&s.openSet)
	s.current = zero
	s.stepCount = 0
	s.expanded = 0
	s.terminal = nil

	s.discover(startNode, 0, -1)
	s.logger.Debug().Interface("start", startNode).Float64("h", s.nodes[0].hScore).Msg("search-initialized")
	return nil
}

// Step performs exactly one iteration of A*. Once a terminal result has been
// produced, every later call returns it again.
func (s *Session[NodeType]) Step() StepResult[NodeType] {
	if s.terminal != nil {
		return s.terminalResult()
	}
	if s.openSet.Len() == 0 {
		return s.finish(StepResult[NodeType]{Status: NoSolution, StepIndex: s.stepCount})
	}

	// --- Select ---
	s.stepCount++
	currentIndex := s.openSet[0].NodeIndex
	current := s.nodes[currentIndex].state
	currentG := s.nodes[currentIndex].gScore
	s.current = current

	if s.isGoal(current) {
		path := lo.Map(internal.ReconstructPath(s.parents, currentIndex), func(i int, _ int) NodeType {
			return s.nodes[i].state
		})
		s.logger.Debug().
			Int("steps", s.stepCount).
			Int("expanded", s.expanded).
			Float64("cost", currentG).
			Int("path-length", len(path)).
			Msg("goal-reached")
		return s.finish(StepResult[NodeType]{
			Status:    GoalReached,
			Current:   current,
			Path:      path,
			Cost:      currentG,
			StepIndex: s.stepCount,
		})
	}

	heap.Pop(&s.openSet)
	s.nodes[currentIndex].item = nil
	s.nodes[currentIndex].closed = true
	s.expanded++

	// --- Relax ---
	for _, neighbor := range s.graph.Neighbors(current) {
		if s.blocker != nil && s.blocker.IsBlocked(neighbor) {
			continue
		}
		tentativeG := currentG + s.graph.StepCost(current, neighbor)
		neighborIndex, seen := s.index[neighbor]
		if !seen {
			s.discover(neighbor, tentativeG, currentIndex)
			continue
		}
		node := &s.nodes[neighborIndex]
		if node.closed || tentativeG >= node.gScore {
			continue
		}
		node.gScore = tentativeG
		node.fCost = tentativeG + node.hScore
		s.parents[neighborIndex] = currentIndex
		node.item.FCost = node.fCost
		heap.Fix(&s.openSet, node.item.IndexInQueue)
	}

	if s.openSet.Len() == 0 {
		s.logger.Debug().Int("steps", s.stepCount).Int("expanded", s.expanded).Msg("no-solution")
		return s.finish(StepResult[NodeType]{Status: NoSolution, Current: current, StepIndex: s.stepCount})
	}

	s.logger.Trace().Interface("current", current).Float64("g", currentG).Int("open", s.openSet.Len()).Msg("expanded")
	return StepResult[NodeType]{Status: InProgress, Current: current, StepIndex: s.stepCount}
}

// RunToCompletion calls Step until a terminal result is produced.
func (s *Session[NodeType]) RunToCompletion() StepResult[NodeType] {
	for {
		result := s.Step()
		if result.Status.Terminal() {
			return result
		}
	}
}

// Frontier returns the states awaiting expansion in discovery order.
func (s *Session[NodeType]) Frontier() []NodeType {
	return lo.FilterMap(s.nodes, func(node searchNode[NodeType], _ int) (NodeType, bool) {
		return node.state, node.item != nil
	})
}

// Visited returns the expanded states in discovery order.
func (s *Session[NodeType]) Visited() []NodeType {
	return lo.FilterMap(s.nodes, func(node searchNode[NodeType], _ int) (NodeType, bool) {
		return node.state, node.closed
	})
}

// Path returns the reconstructed path once the goal has been reached, and
// nil otherwise.
func (s *Session[NodeType]) Path() []NodeType {
	if s.terminal == nil || s.terminal.Status != GoalReached {
		return nil
	}
	return slices.Clone(s.terminal.Path)
}

// Snapshot copies the frontier, visited set and path.
func (s *Session[NodeType]) Snapshot() Snapshot[NodeType] {
	status := InProgress
	if s.terminal != nil {
		status = s.terminal.Status
	}
	return Snapshot[NodeType]{
		Current:   s.current,
		Frontier:  s.Frontier(),
		Visited:   s.Visited(),
		Path:      s.Path(),
		Status:    status,
		StepIndex: s.stepCount,
	}
}

// Cost returns the cheapest known cost from start to node.
func (s *Session[NodeType]) Cost(node NodeType) (float64, bool) {
	i, ok := s.index[node]
	if !ok {
		return 0, false
	}
	return s.nodes[i].gScore, true
}

// Expanded is the number of nodes moved to the closed set so far.
func (s *Session[NodeType]) Expanded() int { return s.expanded }

// Done reports whether the session has produced a terminal result.
func (s *Session[NodeType]) Done() bool { return s.terminal != nil }

func (s *Session[NodeType]) discover(node NodeType, gScore float64, parent int) {
	hScore := s.heuristic(node)
	nodeIndex := len(s.nodes)
	item := &PriorityQueueItem{NodeIndex: nodeIndex, FCost: gScore + hScore, HCost: hScore}
	s.nodes = append(s.nodes, searchNode[NodeType]{
		state:  node,
		gScore: gScore,
		hScore: hScore,
		fCost:  gScore + hScore,
		item:   item,
	})
	s.parents = append(s.parents, parent)
	s.index[node] = nodeIndex
	heap.Push(&s.openSet, item)
}

func (s *Session[NodeType]) finish(result StepResult[NodeType]) StepResult[NodeType] {
	s.terminal = &result
	return s.terminalResult()
}

func (s *Session[NodeType]) terminalResult() StepResult[NodeType] {
	result := *s.terminal
	result.Path = slices.Clone(result.Path)
	return result
}
