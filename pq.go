package astar

// PriorityQueueItem is a frontier entry pointing into the session's node arena.
type PriorityQueueItem struct {
	NodeIndex    int
	FCost        float64
	HCost        float64
	IndexInQueue int
}

// PriorityQueue orders frontier entries by f, then h, then discovery order.
// The last key makes selection fully deterministic for a given graph.
type PriorityQueue []*PriorityQueueItem

func (queue PriorityQueue) Len() int { return len(queue) }

func (queue PriorityQueue) Less(i, j int) bool {
	if queue[i].FCost != queue[j].FCost {
		return queue[i].FCost < queue[j].FCost
	}
	if queue[i].HCost != queue[j].HCost {
		return queue[i].HCost < queue[j].HCost
	}
	return queue[i].NodeIndex < queue[j].NodeIndex
}

func (queue PriorityQueue) Swap(i, j int) {
	queue[i], queue[j] = queue[j], queue[i]
	queue[i].IndexInQueue = i
	queue[j].IndexInQueue = j
}

func (queue *PriorityQueue) Push(x any) {
	item := x.(*PriorityQueueItem)
	item.IndexInQueue = len(*queue)
	*queue = append(*queue, item)
}

func (queue *PriorityQueue) Pop() any {
	oldQueue := *queue
	n := len(oldQueue)
	item := oldQueue[n-1]
	oldQueue[n-1] = nil
	item.IndexInQueue = -1
	*queue = oldQueue[:n-1]
	return item
}
