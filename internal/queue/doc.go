/*
Package queue provides a FIFO queue backed by a linkedlist.List.

Enqueue appends to the back of the list and Dequeue removes from the front,
so both are O(1). Dequeue and Front on an empty queue return (nil, false).

The player's shell uses a Queue for its up next list.
*/
package queue
