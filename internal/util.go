package internal

// ReconstructPath rebuilds the path from the parent indices of a node arena.
// The root of the tree is the node whose parent is negative. The returned
// indices run from the root to current.
func ReconstructPath(parents []int, current int) []int {
	path := []int{current}
	for parents[current] >= 0 {
		current = parents[current]
		path = append(path, current)
	}
	// reverse path
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// Manhattan returns |x1-x2| + |y1-y2|.
func Manhattan(x1, y1, x2, y2 int) int {
	return abs(x1-x2) + abs(y1-y2)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
