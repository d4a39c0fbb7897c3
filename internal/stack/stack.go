package stack

import "media-playlist/internal/linkedlist"

// Stack is a last-in, first-out collection.
type Stack struct {
	list *linkedlist.List
}

// New returns an empty stack.
func New() *Stack {
	return &Stack{list: linkedlist.New()}
}

// Push adds v to the top of the stack.
func (s *Stack) Push(v any) {
	s.list.Append(v)
}

// Pop removes and returns the top element, or (nil, false) if empty.
func (s *Stack) Pop() (any, bool) {
	return s.list.Pop()
}

// Peek returns the top element without removing it.
func (s *Stack) Peek() (any, bool) {
	return s.list.Back()
}

// IsEmpty reports whether the stack holds no elements.
func (s *Stack) IsEmpty() bool {
	return s.list.Len() == 0
}

// Len returns the number of elements on the stack.
func (s *Stack) Len() int {
	return s.list.Len()
}
