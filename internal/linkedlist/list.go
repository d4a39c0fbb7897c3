package linkedlist

import (
	"fmt"
	"io"
	"iter"
)

// EmptyMessage is printed by Fprint when the list holds no elements.
const EmptyMessage = "Link list is empty."

// Node is an element of a List.
type Node struct {
	value    any
	next     *Node
	prev     *Node
	sentinel bool
}

// Value returns the payload stored in the node.
func (n *Node) Value() any {
	return n.value
}

// Next returns the following node, or nil at the end of the list.
func (n *Node) Next() *Node {
	if n.next == nil || n.next.sentinel {
		return nil
	}
	return n.next
}

// Prev returns the preceding node, or nil at the start of the list.
func (n *Node) Prev() *Node {
	if n.prev == nil || n.prev.sentinel {
		return nil
	}
	return n.prev
}

// List is a doubly linked list with sentinel head and tail nodes.
type List struct {
	head *Node
	tail *Node
	size int
}

// New returns an empty list.
func New() *List {
	head := &Node{sentinel: true}
	tail := &Node{sentinel: true}
	head.next = tail
	tail.prev = head
	return &List{head: head, tail: tail}
}

// Len returns the number of elements in the list.
func (l *List) Len() int {
	return l.size
}

// Get returns the payload at index.
func (l *List) Get(index int) (any, bool) {
	n := l.NodeAt(index)
	if n == nil {
		return nil, false
	}
	return n.value, true
}

// NodeAt returns the node at index, or nil if index is outside [0, Len()).
func (l *List) NodeAt(index int) *Node {
	if index < 0 || index >= l.size {
		return nil
	}
	if index < l.size/2 {
		n := l.head.next
		for i := 0; i < index; i++ {
			n = n.next
		}
		return n
	}
	n := l.tail.prev
	for i := 0; i < l.size-index-1; i++ {
		n = n.prev
	}
	return n
}

// AppendLeft inserts v at the front of the list.
func (l *List) AppendLeft(v any) {
	l.insertAfter(l.head, v)
}

// Append inserts v at the back of the list.
func (l *List) Append(v any) {
	l.insertAfter(l.tail.prev, v)
}

// PopLeft removes and returns the front payload.
func (l *List) PopLeft() (any, bool) {
	if l.size == 0 {
		return nil, false
	}
	n := l.head.next
	l.unlink(n)
	return n.value, true
}

// Pop removes and returns the back payload.
func (l *List) Pop() (any, bool) {
	if l.size == 0 {
		return nil, false
	}
	n := l.tail.prev
	l.unlink(n)
	return n.value, true
}

// AddAtIndex inserts v so that it ends up at index. An index equal to Len()
// appends. It returns false, without changing the list, if index is outside
// [0, Len()].
func (l *List) AddAtIndex(index int, v any) bool {
	if index < 0 || index > l.size {
		return false
	}
	var prev *Node
	if index < l.size/2 {
		prev = l.head
		for i := 0; i < index; i++ {
			prev = prev.next
		}
	} else {
		next := l.tail
		for i := 0; i < l.size-index; i++ {
			next = next.prev
		}
		prev = next.prev
	}
	l.insertAfter(prev, v)
	return true
}

// DeleteAtIndex removes the element at index. It returns false, without
// changing the list, if index is outside [0, Len()).
func (l *List) DeleteAtIndex(index int) bool {
	n := l.NodeAt(index)
	if n == nil {
		return false
	}
	l.unlink(n)
	return true
}

// Front returns the first payload.
func (l *List) Front() (any, bool) {
	if l.size == 0 {
		return nil, false
	}
	return l.head.next.value, true
}

// Back returns the last payload.
func (l *List) Back() (any, bool) {
	if l.size == 0 {
		return nil, false
	}
	return l.tail.prev.value, true
}

// FrontNode returns the first node, or nil if the list is empty.
func (l *List) FrontNode() *Node {
	if l.size == 0 {
		return nil
	}
	return l.head.next
}

// BackNode returns the last node, or nil if the list is empty.
func (l *List) BackNode() *Node {
	if l.size == 0 {
		return nil
	}
	return l.tail.prev
}

// IsLinkBroken reports whether n has been spliced out of the list, that is
// whether either neighbour no longer points back at n. It is false for nil
// and for the sentinels.
func (l *List) IsLinkBroken(n *Node) bool {
	if n == nil || n == l.head || n == l.tail {
		return false
	}
	forward := n.prev != nil && n.prev.next != n
	backward := n.next != nil && n.next.prev != n
	return forward || backward
}

// All returns an iterator over the payloads from front to back.
func (l *List) All() iter.Seq[any] {
	return func(yield func(any) bool) {
		for n := l.head.next; n != l.tail; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

// Backward returns an iterator over the payloads from back to front.
func (l *List) Backward() iter.Seq[any] {
	return func(yield func(any) bool) {
		for n := l.tail.prev; n != l.head; n = n.prev {
			if !yield(n.value) {
				return
			}
		}
	}
}

// Values returns the payloads from front to back as a slice.
func (l *List) Values() []any {
	out := make([]any, 0, l.size)
	for v := range l.All() {
		out = append(out, v)
	}
	return out
}

// Fprint writes one payload per line to w, front to back when forward is
// true and back to front otherwise. An empty list prints EmptyMessage.
func (l *List) Fprint(w io.Writer, forward bool) error {
	if l.size == 0 {
		_, err := fmt.Fprintln(w, EmptyMessage)
		return err
	}
	seq := l.Backward()
	if forward {
		seq = l.All()
	}
	for v := range seq {
		if _, err := fmt.Fprintln(w, v); err != nil {
			return err
		}
	}
	return nil
}

// insertAfter links a new node holding v between prev and prev.next.
func (l *List) insertAfter(prev *Node, v any) *Node {
	n := &Node{value: v, prev: prev, next: prev.next}
	prev.next.prev = n
	prev.next = n
	l.size++
	return n
}

// unlink joins n's neighbours. n keeps its own pointers so holders can
// detect the removal with IsLinkBroken.
func (l *List) unlink(n *Node) {
	n.prev.next = n.next
	n.next.prev = n.prev
	l.size--
}
