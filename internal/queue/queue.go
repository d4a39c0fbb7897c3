package queue

import "media-playlist/internal/linkedlist"

// Queue is a first-in, first-out collection.
type Queue struct {
	list *linkedlist.List
}

// New returns an empty queue.
func New() *Queue {
	return &Queue{list: linkedlist.New()}
}

// Enqueue adds v to the rear of the queue.
func (q *Queue) Enqueue(v any) {
	q.list.Append(v)
}

// Dequeue removes and returns the front element, or (nil, false) if empty.
func (q *Queue) Dequeue() (any, bool) {
	return q.list.PopLeft()
}

// Front returns the front element without removing it.
func (q *Queue) Front() (any, bool) {
	return q.list.Front()
}

// IsEmpty reports whether the queue holds no elements.
func (q *Queue) IsEmpty() bool {
	return q.list.Len() == 0
}

// Len returns the number of queued elements.
func (q *Queue) Len() int {
	return q.list.Len()
}
