package internal

import (
	"testing"

	"github.com/matryer/is"
)

func TestReconstructPath(t *testing.T) {
	is := is.New(t)
	// 0 <- 1 <- 3, 2 is a sibling branch off 0.
	parents := []int{-1, 0, 0, 1}

	is.Equal(ReconstructPath(parents, 3), []int{0, 1, 3})
	is.Equal(ReconstructPath(parents, 2), []int{0, 2})
	is.Equal(ReconstructPath(parents, 0), []int{0})
}

func TestManhattan(t *testing.T) {
	is := is.New(t)
	is.Equal(Manhattan(0, 0, 4, 4), 8)
	is.Equal(Manhattan(3, 1, 1, 2), 3)
	is.Equal(Manhattan(2, 2, 2, 2), 0)
}

func TestSeededRNGIsDeterministic(t *testing.T) {
	is := is.New(t)
	a, b := SeededRNG(3), SeededRNG(3)
	for i := 0; i < 16; i++ {
		is.Equal(a.Intn(1000), b.Intn(1000))
	}
}
