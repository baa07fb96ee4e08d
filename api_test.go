package astar

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/matryer/is"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// chain builds 0 -> 1 -> ... -> n-1 with unit costs, plus an isolated "x".
func chain(n int) mapGraph {
	g := mapGraph{edges: map[string][]edge{}}
	for i := 0; i+1 < n; i++ {
		g.edges[fmt.Sprint(i)] = []edge{{fmt.Sprint(i + 1), 1}}
	}
	return g
}

func TestSearch(t *testing.T) {
	is := is.New(t)
	result, err := Search[string](context.Background(), diamond(), "S", GoalNode("G"), zero)
	is.NoErr(err)
	is.True(result.Found)
	is.Equal(result.Path, []string{"S", "A", "B", "G"})
	is.Equal(result.TotalCost, 3.0)
	is.Equal(result.ExpandedNodes, 3)
}

func TestSearchNoSolutionIsNotAnError(t *testing.T) {
	is := is.New(t)
	result, err := Search[string](context.Background(), chain(4), "0", GoalNode("x"), zero)
	is.NoErr(err)
	is.True(!result.Found)
	is.Equal(result.Path, nil)
	is.Equal(result.ExpandedNodes, 4)
}

func TestSearchRejectsInvalidStart(t *testing.T) {
	is := is.New(t)
	g := chain(3)
	g.blocked = map[string]bool{"0": true}
	_, err := Search[string](context.Background(), g, "0", GoalNode("2"), zero)
	is.True(errors.Is(err, ErrInvalidStart))
}

func TestSearchHonoursCancellation(t *testing.T) {
	is := is.New(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Search[string](ctx, chain(10), "0", GoalNode("9"), zero)
	is.True(errors.Is(err, context.Canceled))
}

func TestSearchExpansionLimit(t *testing.T) {
	is := is.New(t)
	result, err := Search[string](context.Background(), chain(10), "0", GoalNode("9"), zero, WithMaxExpansions(3))
	is.True(errors.Is(err, ErrExpansionLimit))
	is.Equal(result.ExpandedNodes, 3)

	result, err = Search[string](context.Background(), chain(10), "0", GoalNode("9"), zero, WithMaxExpansions(50))
	is.NoErr(err)
	is.Equal(len(result.Path), 10)
}

func TestSearchLogsToContextLogger(t *testing.T) {
	is := is.New(t)
	var out strings.Builder
	logger := zerolog.New(&out).Level(zerolog.DebugLevel)
	prev := zerolog.GlobalLevel()
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	defer zerolog.SetGlobalLevel(prev)

	_, err := Search[string](logger.WithContext(context.Background()), diamond(), "S", GoalNode("G"), zero)
	is.NoErr(err)
	is.True(strings.Contains(out.String(), `"message":"search-finished"`))
	is.True(strings.Contains(out.String(), `"message":"goal-reached"`))
}

func TestSearchFallsBackToGlobalLogger(t *testing.T) {
	is := is.New(t)
	var out strings.Builder
	prev := log.Logger
	log.Logger = zerolog.New(&out)
	defer func() { log.Logger = prev }()

	_, err := Search[string](context.Background(), chain(10), "0", GoalNode("9"), zero, WithMaxExpansions(2))
	is.True(errors.Is(err, ErrExpansionLimit))
	is.True(strings.Contains(out.String(), `"message":"expansion-limit-reached"`))

	out.Reset()
	jobs := []Job[string]{{Name: "limited", Start: "0", IsGoal: GoalNode("9"), Heuristic: zero}}
	_, err = SearchAll[string](context.Background(), chain(10), jobs, WithMaxExpansions(2))
	is.True(errors.Is(err, ErrExpansionLimit))
	is.True(strings.Contains(out.String(), `"job":"limited"`))
}

func TestSearchAll(t *testing.T) {
	is := is.New(t)
	g := chain(20)
	jobs := make([]Job[string], 0, 20)
	for i := 0; i < 20; i++ {
		jobs = append(jobs, Job[string]{
			Name:      fmt.Sprint("from-", i),
			Start:     fmt.Sprint(i),
			IsGoal:    GoalNode("19"),
			Heuristic: zero,
		})
	}
	jobs = append(jobs, Job[string]{Name: "isolated", Start: "x", IsGoal: GoalNode("19"), Heuristic: zero})

	results, err := SearchAll[string](context.Background(), g, jobs, WithWorkers(4))
	is.NoErr(err)
	is.Equal(len(results), 21)
	for i := 0; i < 20; i++ {
		is.True(results[i].Found)
		is.Equal(results[i].TotalCost, float64(19-i))
	}
	is.True(!results[20].Found)
}

func TestSearchAllStopsOnError(t *testing.T) {
	is := is.New(t)
	g := chain(5)
	g.blocked = map[string]bool{"2": true}
	jobs := []Job[string]{
		{Name: "ok", Start: "0", IsGoal: GoalNode("1"), Heuristic: zero},
		{Name: "blocked", Start: "2", IsGoal: GoalNode("4"), Heuristic: zero},
	}
	results, err := SearchAll[string](context.Background(), g, jobs, WithWorkers(1))
	is.True(errors.Is(err, ErrInvalidStart))
	is.Equal(results, nil)
}
