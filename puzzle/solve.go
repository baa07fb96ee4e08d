package puzzle

import (
	"context"

	"github.com/rs/zerolog"
	"lukechampine.com/frand"

	astar "github.com/pdrpinto/astarkit"
	"github.com/pdrpinto/astarkit/internal"
)

// Graph adapts boards to astar.Graph. Neighbors are generated on demand; no
// adjacency is stored.
type Graph struct{}

func (Graph) Neighbors(b Board) []Board     { return b.Neighbors() }
func (Graph) StepCost(Board, Board) float64 { return 1 }

// Validate rejects boards that are not a permutation of 1..9.
func (Graph) Validate(b Board) error { return b.Validate() }

var (
	_ astar.Graph[Board]     = Graph{}
	_ astar.Validator[Board] = Graph{}
)

// Manhattan sums, over every tile but the blank, the distance between the
// tile's cell and its cell in goal. Values outside 1..9 in either board
// contribute nothing.
func Manhattan(goal Board) astar.Heuristic[Board] {
	var target [Cells + 1]int
	for i, v := range goal {
		if v <= Cells {
			target[v] = i
		}
	}
	return func(b Board) float64 {
		distance := 0
		for i, v := range b {
			if v == Blank || v > Cells {
				continue
			}
			t := target[v]
			distance += internal.Manhattan(i%Size, i/Size, t%Size, t/Size)
		}
		return float64(distance)
	}
}

// Step is one board of a solution with the move that produced it.
type Step struct {
	Move  Move
	Board Board
}

// Solution is the outcome of Solve.
type Solution struct {
	Steps    []Step
	Expanded int
	Found    bool
}

// Moves is the number of moves in the solution.
func (s Solution) Moves() int {
	if len(s.Steps) == 0 {
		return 0
	}
	return len(s.Steps) - 1
}

// Solve finds a shortest sequence of moves from start to goal. Boards with
// different inversion parity are reported unsolved without searching.
func Solve(ctx context.Context, start, goal Board, options ...astar.Option) (Solution, error) {
	if err := start.Validate(); err != nil {
		return Solution{}, err
	}
	if err := goal.Validate(); err != nil {
		return Solution{}, err
	}
	logger := zerolog.Ctx(ctx)
	if !Solvable(start, goal) {
		logger.Info().Stringer("start", start).Stringer("goal", goal).Msg("parity-mismatch")
		return Solution{}, nil
	}

	result, err := astar.Search[Board](ctx, Graph{}, start, astar.GoalNode(goal), Manhattan(goal), options...)
	if err != nil {
		return Solution{Expanded: result.ExpandedNodes}, err
	}
	solution := Solution{Expanded: result.ExpandedNodes, Found: result.Found}
	if !result.Found {
		return solution, nil
	}
	solution.Steps = StepsOf(result.Path)
	logger.Debug().Int("moves", solution.Moves()).Int("expanded", solution.Expanded).Msg("puzzle-solved")
	return solution, nil
}

// StepsOf labels each board of path with the move that reached it.
func StepsOf(path []Board) []Step {
	steps := make([]Step, len(path))
	for i, b := range path {
		steps[i] = Step{Move: None, Board: b}
		if i > 0 {
			steps[i].Move, _ = path[i-1].MoveTo(b)
		}
	}
	return steps
}

// Shuffle walks steps random moves away from the default goal, so the
// result is always solvable.
func Shuffle(rng *frand.RNG, steps int) Board {
	if rng == nil {
		rng = frand.New()
	}
	b := Goal()
	for i := 0; i < steps; i++ {
		neighbors := b.Neighbors()
		b = neighbors[rng.Intn(len(neighbors))]
	}
	return b
}

// SolveAll solves many boards towards the same goal concurrently, returning
// solutions in the order of starts.
func SolveAll(ctx context.Context, starts []Board, goal Board, options ...astar.Option) ([]Solution, error) {
	if err := goal.Validate(); err != nil {
		return nil, err
	}
	var (
		jobs    []astar.Job[Board]
		indices []int
	)
	heuristic := Manhattan(goal)
	for i, start := range starts {
		if err := start.Validate(); err != nil {
			return nil, err
		}
		if !Solvable(start, goal) {
			continue
		}
		jobs = append(jobs, astar.Job[Board]{
			Name:      start.String(),
			Start:     start,
			IsGoal:    astar.GoalNode(goal),
			Heuristic: heuristic,
		})
		indices = append(indices, i)
	}

	results, err := astar.SearchAll[Board](ctx, Graph{}, jobs, options...)
	if err != nil {
		return nil, err
	}
	solutions := make([]Solution, len(starts))
	for j, result := range results {
		solutions[indices[j]] = Solution{
			Steps:    StepsOf(result.Path),
			Expanded: result.ExpandedNodes,
			Found:    result.Found,
		}
	}
	return solutions, nil
}
