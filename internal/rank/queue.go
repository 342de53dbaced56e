// Package rank implements a bounded top-K queue over scored entries.
package rank

// Item is a scored entry. Ordinal is the entry's position in the source
// sequence and breaks ties: among equal scores the lower ordinal ranks first.
type Item struct {
	Ordinal int
	Score   int
}

// Better reports whether a ranks strictly before b.
func Better(a, b Item) bool {
	if a.Score != b.Score {
		return a.Score > b.Score
	}
	return a.Ordinal < b.Ordinal
}

// Queue keeps the best K items seen so far.
//
// Internally it is a binary heap whose top is the worst kept item, so a new
// candidate is compared against a single element. It does NOT implement
// container/heap to avoid interface overhead.
type Queue struct {
	capacity int
	items    []Item
}

// NewQueue creates a queue that keeps at most capacity items.
// A capacity <= 0 keeps nothing.
func NewQueue(capacity int) *Queue {
	capacity = max(capacity, 0)
	return &Queue{
		capacity: capacity,
		items:    make([]Item, 0, min(capacity, 64)),
	}
}

// Len returns the number of kept items.
func (q *Queue) Len() int {
	return len(q.items)
}

// Worst returns the lowest-ranked kept item.
func (q *Queue) Worst() (Item, bool) {
	if len(q.items) == 0 {
		return Item{}, false
	}
	return q.items[0], true
}

// Push offers an item. If the queue is full and item does not rank before
// the worst kept item, it is dropped. Reports whether the item was kept.
func (q *Queue) Push(item Item) bool {
	if q.capacity == 0 {
		return false
	}
	if len(q.items) < q.capacity {
		q.items = append(q.items, item)
		q.siftUp(len(q.items) - 1)
		return true
	}
	if !Better(item, q.items[0]) {
		return false
	}
	q.items[0] = item
	q.siftDown(0)
	return true
}

// Drain empties the queue and returns its items best first.
func (q *Queue) Drain() []Item {
	out := make([]Item, len(q.items))
	for i := len(out) - 1; i >= 0; i-- {
		out[i] = q.pop()
	}
	return out
}

func (q *Queue) pop() Item {
	n := len(q.items)
	item := q.items[0]
	q.items[0] = q.items[n-1]
	q.items = q.items[:n-1]
	if len(q.items) > 0 {
		q.siftDown(0)
	}
	return item
}

// less orders the heap with the worst item on top.
func (q *Queue) less(i, j int) bool {
	return Better(q.items[j], q.items[i])
}

func (q *Queue) swap(i, j int) {
	q.items[i], q.items[j] = q.items[j], q.items[i]
}

func (q *Queue) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !q.less(i, parent) {
			break
		}
		q.swap(i, parent)
		i = parent
	}
}

func (q *Queue) siftDown(i int) {
	n := len(q.items)
	for {
		left := 2*i + 1
		if left >= n {
			break
		}
		child := left
		right := left + 1
		if right < n && q.less(right, left) {
			child = right
		}
		if !q.less(child, i) {
			break
		}
		q.swap(i, child)
		i = child
	}
}
