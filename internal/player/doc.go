// Package player implements playlist navigation on top of a linked list.
//
// The player keeps a cursor that points directly at a list node rather than
// an index, so next/prev are O(1). When an item is removed the player checks
// the cursor with IsLinkBroken; a spliced-out cursor moves to its former
// successor, or to nothing if it was the last item.
//
// Output methods (Play, PlayForward, PlayBackward) write one line per item
// to the supplied writer and print fixed messages when there is nothing to
// play.
package player
