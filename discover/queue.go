// Package discover — BFS queue with deduplication.
// Maintains a visited set so directory cycles (via symlinks) and repeated
// roots are only processed once.
package discover

// Queue is a BFS queue with path deduplication.
type Queue struct {
	items   []string
	visited map[string]bool
	idx     int // current read position
}

// NewQueue creates an empty Queue.
func NewQueue() *Queue {
	return &Queue{
		visited: make(map[string]bool),
	}
}

// Add enqueues a path if it hasn't been seen before.
func (q *Queue) Add(path string) {
	if q.visited[path] {
		return
	}
	q.visited[path] = true
	q.items = append(q.items, path)
}

// HasNext returns true if there are unprocessed paths.
func (q *Queue) HasNext() bool {
	return q.idx < len(q.items)
}

// Next returns the next unprocessed path and advances the pointer.
func (q *Queue) Next() string {
	path := q.items[q.idx]
	q.idx++
	return path
}

// Visited returns the total number of unique paths seen.
func (q *Queue) Visited() int {
	return len(q.visited)
}

// All returns all discovered paths (in BFS order).
func (q *Queue) All() []string {
	return q.items
}
