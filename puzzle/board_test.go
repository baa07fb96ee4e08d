package puzzle

import (
	"errors"
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"

	astar "github.com/pdrpinto/astarkit"
)

func TestNewBoard(t *testing.T) {
	is := is.New(t)
	b, err := NewBoard([][]int{{3, 5, 4}, {8, 7, 9}, {1, 2, 6}})
	is.NoErr(err)
	is.Equal(b, Board{3, 5, 4, 8, 7, 9, 1, 2, 6})
	is.Equal(b.At(1, 0), 8)
	r, c := b.BlankAt()
	is.Equal(r, 1)
	is.Equal(c, 2)
	is.Equal(b.Rows(), [][]int{{3, 5, 4}, {8, 7, 9}, {1, 2, 6}})
}

func TestMalformedBoards(t *testing.T) {
	for name, rows := range map[string][][]int{
		"two rows":     {{1, 2, 3}, {4, 5, 6}},
		"short row":    {{1, 2, 3}, {4, 5}, {6, 7, 8}},
		"duplicate":    {{1, 2, 3}, {4, 5, 6}, {7, 8, 8}},
		"no blank":     {{1, 2, 3}, {4, 5, 6}, {7, 8, 1}},
		"out of range": {{0, 2, 3}, {4, 5, 6}, {7, 8, 9}},
		"ten":          {{1, 2, 3}, {4, 5, 6}, {7, 8, 10}},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := NewBoard(rows)
			assert.ErrorIs(t, err, astar.ErrMalformedState)
		})
	}
}

func TestParseBoard(t *testing.T) {
	is := is.New(t)
	want := Board{3, 5, 4, 8, 7, 9, 1, 2, 6}
	for _, text := range []string{
		"3 5 4 / 8 7 9 / 1 2 6",
		"3 5 4\n8 7 9\n1 2 6\n",
		"[[3,5,4],[8,7,9],[1,2,6]]",
		"354879126",
		want.String(),
	} {
		b, err := ParseBoard(text)
		is.NoErr(err)
		is.Equal(b, want)
	}

	_, err := ParseBoard("1 2 3 4 5 6 7 8")
	is.True(errors.Is(err, astar.ErrMalformedState))
	_, err = ParseBoard("1 2 3 4 5 6 7 8 x")
	is.True(errors.Is(err, astar.ErrMalformedState))
}

func TestStringAndPretty(t *testing.T) {
	is := is.New(t)
	b := Board{3, 5, 4, 8, 7, 9, 1, 2, 6}
	is.Equal(b.String(), "3 5 4/8 7 9/1 2 6")
	is.Equal(b.Pretty(), "3 5 4\n8 7 _\n1 2 6\n")
}

func TestSuccessors(t *testing.T) {
	is := is.New(t)

	// blank in the middle: all four moves
	center := Board{1, 2, 3, 4, 9, 5, 6, 7, 8}
	is.Equal(center.Successors(), []Successor{
		{Move: Up, Board: Board{1, 9, 3, 4, 2, 5, 6, 7, 8}},
		{Move: Down, Board: Board{1, 2, 3, 4, 7, 5, 6, 9, 8}},
		{Move: Left, Board: Board{1, 2, 3, 9, 4, 5, 6, 7, 8}},
		{Move: Right, Board: Board{1, 2, 3, 4, 5, 9, 6, 7, 8}},
	})

	// blank in a corner: two moves, edge-clipped
	corner := Goal()
	is.Equal(corner.Neighbors(), []Board{
		{1, 2, 3, 4, 5, 9, 7, 8, 6},
		{1, 2, 3, 4, 5, 6, 7, 9, 8},
	})

	// the source board is never modified
	is.Equal(corner, Goal())
}

func TestMoveTo(t *testing.T) {
	is := is.New(t)
	b := Board{1, 2, 3, 4, 9, 5, 6, 7, 8}
	for _, s := range b.Successors() {
		m, ok := b.MoveTo(s.Board)
		is.True(ok)
		is.Equal(m, s.Move)
	}
	_, ok := b.MoveTo(Goal())
	is.True(!ok)
	is.Equal(Up.String(), "Up")
	is.Equal(None.String(), "Start")
}

func TestSolvable(t *testing.T) {
	is := is.New(t)
	is.True(Solvable(Board{3, 5, 4, 8, 7, 9, 1, 2, 6}, Goal()))
	is.True(Solvable(Board{4, 1, 3, 7, 2, 6, 9, 5, 8}, Goal()))
	is.True(!Solvable(Board{1, 2, 3, 4, 5, 6, 8, 7, 9}, Goal()))
}
