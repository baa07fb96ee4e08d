// Package puzzle is the 3x3 sliding-tile state space.
//
// A Board holds a permutation of 1..9 in row-major order, 9 being the blank.
// Boards are plain arrays: every move produces a fresh value and equal boards
// compare equal, which is all the search engine needs for its closed set.
package puzzle

import (
	"strconv"
	"strings"
	"unicode"

	astar "github.com/pdrpinto/astarkit"
)

const (
	// Size is the number of rows and of columns.
	Size = 3
	// Cells is the number of tiles, blank included.
	Cells = Size * Size
	// Blank is the value standing for the empty cell.
	Blank = 9
)

// Board is a 3x3 arrangement of tiles.
type Board [Cells]uint8

// Move names the direction the blank travels.
type Move int

const (
	// None marks the starting board of a solution.
	None Move = iota
	Up
	Down
	Left
	Right
)

func (m Move) String() string {
	switch m {
	case None:
		return "Start"
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Right:
		return "Right"
	default:
		return "Move(" + strconv.Itoa(int(m)) + ")"
	}
}

var moves = [...]struct {
	move   Move
	dr, dc int
}{
	{Up, -1, 0},
	{Down, 1, 0},
	{Left, 0, -1},
	{Right, 0, 1},
}

// Goal returns the default goal: 1..8 in reading order with the blank last.
func Goal() Board {
	return Board{1, 2, 3, 4, 5, 6, 7, 8, Blank}
}

// NewBoard validates rows and converts them to a Board.
func NewBoard(rows [][]int) (Board, error) {
	var b Board
	if len(rows) != Size {
		return b, astar.NewStateError(astar.ErrMalformedState, "board has %d rows, want %d", len(rows), Size)
	}
	for r, row := range rows {
		if len(row) != Size {
			return b, astar.NewStateError(astar.ErrMalformedState, "row %d has %d values, want %d", r, len(row), Size)
		}
		for c, v := range row {
			if v < 1 || v > Cells {
				return b, astar.NewStateError(astar.ErrMalformedState, "value %d at (%d,%d) outside 1..%d", v, r, c, Cells)
			}
			b[r*Size+c] = uint8(v)
		}
	}
	if err := b.Validate(); err != nil {
		return Board{}, err
	}
	return b, nil
}

// ParseBoard reads nine numbers separated by spaces, commas, slashes,
// brackets or newlines, e.g. "3 5 4 / 8 7 9 / 1 2 6". A single run of nine
// digits is accepted as well.
func ParseBoard(text string) (Board, error) {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return unicode.IsSpace(r) || strings.ContainsRune(",/|[]", r)
	})
	if len(fields) == 1 && len(fields[0]) == Cells {
		fields = strings.Split(fields[0], "")
	}
	if len(fields) != Cells {
		return Board{}, astar.NewStateError(astar.ErrMalformedState, "board %q has %d values, want %d", text, len(fields), Cells)
	}

	rows := make([][]int, Size)
	for i, field := range fields {
		v, err := strconv.Atoi(field)
		if err != nil {
			return Board{}, astar.NewStateError(astar.ErrMalformedState, "value %q is not a number", field)
		}
		rows[i/Size] = append(rows[i/Size], v)
	}
	return NewBoard(rows)
}

// Validate checks that b is a permutation of 1..9.
func (b Board) Validate() error {
	var seen [Cells + 1]bool
	for i, v := range b {
		if v < 1 || v > Cells {
			return astar.NewStateError(astar.ErrMalformedState, "value %d at cell %d outside 1..%d", v, i, Cells)
		}
		if seen[v] {
			return astar.NewStateError(astar.ErrMalformedState, "value %d appears twice", v)
		}
		seen[v] = true
	}
	return nil
}

// At returns the value at row r, column c.
func (b Board) At(r, c int) int { return int(b[r*Size+c]) }

// BlankAt returns the row and column of the blank.
func (b Board) BlankAt() (int, int) {
	for i, v := range b {
		if v == Blank {
			return i / Size, i % Size
		}
	}
	return -1, -1
}

// Rows returns the board as nested slices.
func (b Board) Rows() [][]int {
	rows := make([][]int, Size)
	for r := range rows {
		rows[r] = make([]int, Size)
		for c := range rows[r] {
			rows[r][c] = b.At(r, c)
		}
	}
	return rows
}

// String is the compact "3 5 4/8 7 9/1 2 6" form; ParseBoard reads it back.
func (b Board) String() string {
	var sb strings.Builder
	for i, v := range b {
		if i > 0 {
			if i%Size == 0 {
				sb.WriteByte('/')
			} else {
				sb.WriteByte(' ')
			}
		}
		sb.WriteString(strconv.Itoa(int(v)))
	}
	return sb.String()
}

// Pretty renders one row per line with the blank shown as '_'.
func (b Board) Pretty() string {
	var sb strings.Builder
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			if v := b.At(r, c); v == Blank {
				sb.WriteByte('_')
			} else {
				sb.WriteString(strconv.Itoa(v))
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Successor is a board reachable by a single move.
type Successor struct {
	Move  Move
	Board Board
}

// Successors swaps the blank with each orthogonal neighbor, in Up, Down,
// Left, Right order.
func (b Board) Successors() []Successor {
	row, col := b.BlankAt()
	out := make([]Successor, 0, 4)
	for _, m := range moves {
		nr, nc := row+m.dr, col+m.dc
		if nr < 0 || nr >= Size || nc < 0 || nc >= Size {
			continue
		}
		next := b
		from, to := row*Size+col, nr*Size+nc
		next[from], next[to] = next[to], next[from]
		out = append(out, Successor{Move: m.move, Board: next})
	}
	return out
}

// Neighbors returns the boards of Successors.
func (b Board) Neighbors() []Board {
	successors := b.Successors()
	out := make([]Board, len(successors))
	for i, s := range successors {
		out[i] = s.Board
	}
	return out
}

// MoveTo returns the move that turns b into next, if there is one.
func (b Board) MoveTo(next Board) (Move, bool) {
	for _, s := range b.Successors() {
		if s.Board == next {
			return s.Move, true
		}
	}
	return None, false
}

// inversions counts tile pairs out of order, ignoring the blank.
func (b Board) inversions() int {
	count := 0
	for i := 0; i < Cells; i++ {
		if b[i] == Blank {
			continue
		}
		for j := i + 1; j < Cells; j++ {
			if b[j] != Blank && b[i] > b[j] {
				count++
			}
		}
	}
	return count
}

// Solvable reports whether goal can be reached from start. On an odd-width
// board a move never changes inversion parity, and equal parity is enough.
func Solvable(start, goal Board) bool {
	return start.inversions()%2 == goal.inversions()%2
}
