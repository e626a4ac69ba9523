package frontier

import "css-catalog/internal/parser"

// Queue holds reference-index entries waiting to be downloaded, in index order.
type Queue struct {
	totalQueued int
	elements    []parser.Entry
}

func NewQueue() *Queue {
	return &Queue{
		elements: make([]parser.Entry, 0),
	}
}

func (q *Queue) Enqueue(e parser.Entry) {
	q.elements = append(q.elements, e)
	q.totalQueued++
}

// PopFront removes the oldest entry.
func (q *Queue) PopFront() (parser.Entry, bool) {
	if len(q.elements) == 0 {
		return parser.Entry{}, false
	}
	e := q.elements[0]
	q.elements = q.elements[1:]
	return e, true
}

func (q *Queue) Size() int { return len(q.elements) }

func (q *Queue) TotalQueued() int { return q.totalQueued }
