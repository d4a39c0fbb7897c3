/*
Package stack provides a LIFO stack backed by a linkedlist.List.

Push appends to the back of the list and Pop removes from it, so both are
O(1). Pop and Peek on an empty stack return (nil, false).

The player's shell keeps removed items on a Stack so that undo restores the
most recent removal first.
*/
package stack
