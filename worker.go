package astar

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Job is one search request for SearchAll.
type Job[NodeType comparable] struct {
	Name      string
	Start     NodeType
	IsGoal    GoalPredicate[NodeType]
	Heuristic Heuristic[NodeType]
}

// SearchAll runs every job in its own Session, at most NumberOfWorkers at a
// time. The graph is shared between goroutines and must not be mutated while
// SearchAll runs. Results are returned in job order. The first error cancels
// the remaining jobs.
func SearchAll[NodeType comparable](
	contextObject context.Context,
	graph Graph[NodeType],
	jobs []Job[NodeType],
	options ...Option,
) ([]Result[NodeType], error) {
	searchOptions := applyOptions(options)
	logger := searchLogger(contextObject, searchOptions)

	results := make([]Result[NodeType], len(jobs))
	group, groupContext := errgroup.WithContext(contextObject)
	group.SetLimit(searchOptions.NumberOfWorkers)

	for i, job := range jobs {
		i, job := i, job
		group.Go(func() error {
			jobLogger := logger.With().Str("job", job.Name).Int("index", i).Logger()
			result, err := Search(
				jobLogger.WithContext(groupContext),
				graph,
				job.Start,
				job.IsGoal,
				job.Heuristic,
				WithMaxExpansions(searchOptions.MaxExpansions),
			)
			if err != nil {
				return err
			}
			results[i] = result
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}
	logger.Debug().Int("jobs", len(jobs)).Int("workers", searchOptions.NumberOfWorkers).Msg("batch-finished")
	return results, nil
}
