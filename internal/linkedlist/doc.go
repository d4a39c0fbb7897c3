// Package linkedlist provides a doubly linked list bounded by two permanent
// sentinel nodes.
//
// The sentinels guarantee every real node has a neighbour on both sides, so
// insertion and removal at the ends never special-case an empty list. The
// sentinels carry no payload and are never handed to callers.
//
// Index-based operations (Get, AddAtIndex, DeleteAtIndex, NodeAt) walk from
// whichever end is closer to the target, bounding traversal at size/2 steps.
//
// Failures are reported as results, not errors:
//   - accessors return (nil, false) for an out of range index or an empty list
//   - mutators return false and leave the list unchanged
//
// Removed nodes keep their own next/prev pointers. A caller holding a *Node
// (for example a playlist cursor) can detect that it was spliced out with
// IsLinkBroken and still read where it used to be.
//
// A List is not safe for concurrent use. Hosts sharing one list across
// goroutines must guard every call with a single lock.
package linkedlist
