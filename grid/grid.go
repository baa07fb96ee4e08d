// Package grid is a rectangular, four-connected state space with walls.
//
// Cells are allocated once when the grid is built. Each cell's wall status
// is drawn at construction time and never changes, so a Grid can be shared
// by any number of concurrent searches.
package grid

import (
	"fmt"
	"slices"
	"strings"

	"lukechampine.com/frand"

	astar "github.com/pdrpinto/astarkit"
	"github.com/pdrpinto/astarkit/internal"
)

// Defaults used by New when no option overrides them.
const (
	DefaultColumns         = 50
	DefaultRows            = 50
	DefaultWallProbability = 0.2

	wallRune = '#'
	openRune = '.'
)

// Point identifies a cell by column (X) and row (Y).
type Point struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

func (p Point) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

// Cell is a single square of the grid.
type Cell struct {
	Point
	Wall      bool
	neighbors []Point
}

// Grid is the pathfinding instance of astar.Graph.
type Grid struct {
	columns int
	rows    int
	cells   [][]Cell // [row][column]
}

type settings struct {
	columns         int
	rows            int
	wallProbability float64
	rng             *frand.RNG
	layout          []string
	open            []Point
}

// Option configures New.
type Option func(*settings)

// WithSize sets the number of columns and rows.
func WithSize(columns, rows int) Option {
	return func(s *settings) { s.columns, s.rows = columns, rows }
}

// WithWallProbability sets the chance that any one cell is a wall.
func WithWallProbability(p float64) Option {
	return func(s *settings) { s.wallProbability = p }
}

// WithSeed makes the wall layout reproducible.
func WithSeed(seed int64) Option {
	return func(s *settings) { s.rng = internal.SeededRNG(seed) }
}

// WithRNG draws walls from rng.
func WithRNG(rng *frand.RNG) Option {
	return func(s *settings) { s.rng = rng }
}

// WithLayout replaces the random draw with an explicit layout, one string per
// row, '#' for a wall and '.' for an open cell. The size is taken from the
// layout.
func WithLayout(rows ...string) Option {
	return func(s *settings) { s.layout = rows }
}

// WithOpen forces the given cells to be open, whatever the draw said.
func WithOpen(points ...Point) Option {
	return func(s *settings) { s.open = append(s.open, points...) }
}

// New builds a grid. Cells are allocated first, then every cell's neighbor
// list is wired in a second pass.
func New(options ...Option) (*Grid, error) {
	s := settings{
		columns:         DefaultColumns,
		rows:            DefaultRows,
		wallProbability: DefaultWallProbability,
	}
	for _, option := range options {
		option(&s)
	}

	var walls func(x, y int) bool
	if s.layout != nil {
		if err := validateLayout(s.layout); err != nil {
			return nil, err
		}
		s.rows = len(s.layout)
		s.columns = len(s.layout[0])
		walls = func(x, y int) bool { return s.layout[y][x] == wallRune }
	} else {
		if s.columns <= 0 || s.rows <= 0 {
			return nil, astar.NewStateError(astar.ErrMalformedState, "grid size %dx%d", s.columns, s.rows)
		}
		if s.wallProbability < 0 || s.wallProbability > 1 {
			return nil, astar.NewStateError(astar.ErrMalformedState, "wall probability %v outside [0,1]", s.wallProbability)
		}
		rng := s.rng
		if rng == nil {
			rng = frand.New()
		}
		walls = func(int, int) bool { return rng.Float64() < s.wallProbability }
	}

	g := &Grid{columns: s.columns, rows: s.rows}
	g.cells = make([][]Cell, s.rows)
	for y := range g.cells {
		g.cells[y] = make([]Cell, s.columns)
		for x := range g.cells[y] {
			g.cells[y][x] = Cell{Point: Point{X: x, Y: y}, Wall: walls(x, y)}
		}
	}
	for _, p := range s.open {
		if !g.Contains(p) {
			return nil, astar.NewStateError(astar.ErrMalformedState, "open cell %v outside %dx%d grid", p, s.columns, s.rows)
		}
		g.cells[p.Y][p.X].Wall = false
	}
	for y := range g.cells {
		for x := range g.cells[y] {
			g.cells[y][x].neighbors = g.adjacent(x, y)
		}
	}
	return g, nil
}

func validateLayout(layout []string) error {
	if len(layout) == 0 || len(layout[0]) == 0 {
		return astar.NewStateError(astar.ErrMalformedState, "empty layout")
	}
	for y, row := range layout {
		if len(row) != len(layout[0]) {
			return astar.NewStateError(astar.ErrMalformedState, "layout row %d has %d cells, want %d", y, len(row), len(layout[0]))
		}
		for x, r := range row {
			if r != wallRune && r != openRune {
				return astar.NewStateError(astar.ErrMalformedState, "layout cell (%d,%d) is %q", x, y, r)
			}
		}
	}
	return nil
}

// adjacent lists left, right, up, down, clipped at the board edge.
func (g *Grid) adjacent(x, y int) []Point {
	out := make([]Point, 0, 4)
	if x > 0 {
		out = append(out, Point{x - 1, y})
	}
	if x < g.columns-1 {
		out = append(out, Point{x + 1, y})
	}
	if y > 0 {
		out = append(out, Point{x, y - 1})
	}
	if y < g.rows-1 {
		out = append(out, Point{x, y + 1})
	}
	return out
}

// Columns is the grid width.
func (g *Grid) Columns() int { return g.columns }

// Rows is the grid height.
func (g *Grid) Rows() int { return g.rows }

// Contains reports whether p lies on the grid.
func (g *Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.columns && p.Y >= 0 && p.Y < g.rows
}

// Cell returns the cell at p.
func (g *Grid) Cell(p Point) (Cell, bool) {
	if !g.Contains(p) {
		return Cell{}, false
	}
	return g.cells[p.Y][p.X], true
}

// Neighbors returns the edge-clipped adjacent cells. Walls are not filtered;
// the search engine skips them through IsBlocked. The slice belongs to the
// caller.
func (g *Grid) Neighbors(p Point) []Point {
	if !g.Contains(p) {
		return nil
	}
	return slices.Clone(g.cells[p.Y][p.X].neighbors)
}

// StepCost is 1 between any two adjacent cells.
func (g *Grid) StepCost(Point, Point) float64 { return 1 }

// IsBlocked is true for walls and for points off the grid.
func (g *Grid) IsBlocked(p Point) bool {
	if !g.Contains(p) {
		return true
	}
	return g.cells[p.Y][p.X].Wall
}

func (g *Grid) TopLeft() Point     { return Point{0, 0} }
func (g *Grid) BottomRight() Point { return Point{g.columns - 1, g.rows - 1} }

// Walls lists every wall in row-major order.
func (g *Grid) Walls() []Point {
	var walls []Point
	for y := range g.cells {
		for x := range g.cells[y] {
			if g.cells[y][x].Wall {
				walls = append(walls, Point{x, y})
			}
		}
	}
	return walls
}

// String renders the grid in the same format WithLayout accepts.
func (g *Grid) String() string {
	var b strings.Builder
	for y := range g.cells {
		for x := range g.cells[y] {
			if g.cells[y][x].Wall {
				b.WriteRune(wallRune)
			} else {
				b.WriteRune(openRune)
			}
		}
		if y < g.rows-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// Manhattan is the |dx| + |dy| heuristic towards goal.
func Manhattan(goal Point) astar.Heuristic[Point] {
	return func(p Point) float64 {
		return float64(internal.Manhattan(p.X, p.Y, goal.X, goal.Y))
	}
}

// At matches exactly the goal cell.
func At(goal Point) astar.GoalPredicate[Point] {
	return astar.GoalNode(goal)
}

var (
	_ astar.Graph[Point]   = (*Grid)(nil)
	_ astar.Blocker[Point] = (*Grid)(nil)
)
