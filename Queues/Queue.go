package Queues

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Entry is an element paired with its priority. Larger Prio means higher priority.
type Entry[T comparable, P constraints.Signed] struct {
	Elem T
	Prio P
}

// PriorityQueue is the capability shared by HeapQueue and ListQueue. A
// backend only changes the cost of each operation, never the result, except
// for which of several equal-priority entries comes out first.
// Elements are looked up by ==; when duplicates exist, the first one found
// in the backend's scan order is used.
// Implementations are not safe for concurrent use.
type PriorityQueue[T comparable, P constraints.Signed] interface {
	//Insert e with priority p. Duplicates are allowed.
	Insert(e T, p P)
	//ExtractMax removes and returns the element with the highest priority.
	//Returns *EmptyQueueError if the queue is empty.
	ExtractMax() (T, error)
	//FindMax returns the element with the highest priority without removing it.
	//Returns *EmptyQueueError if the queue is empty.
	FindMax() (T, error)
	//ModifyKey sets the priority of the first element equal to e to p.
	//Returns *ElementNotFoundError if there's no such element.
	ModifyKey(e T, p P) error
	//Size is the number of entries.
	Size() uint
	//Empty is Size()==0.
	Empty() bool
	//Peek is FindMax.
	Peek() (T, error)
	//Pop is ExtractMax.
	Pop() (T, error)
}

// ExtendedQueue adds the inspection helpers used by Display and Sorted.
type ExtendedQueue[T comparable, P constraints.Signed] interface {
	PriorityQueue[T, P]
	//FindMaxPriority returns the priority of the element FindMax would return.
	FindMaxPriority() (P, error)
	//ExtractMaxEntry is ExtractMax that also reports the priority.
	ExtractMaxEntry() (Entry[T, P], error)
	//Range calls f on every entry in storage order until f returns false.
	//The queue mustn't be modified during the iteration.
	Range(f func(T, P) bool)
	//Clone returns an independent copy.
	Clone() ExtendedQueue[T, P]
	//Clear removes all entries.
	Clear()
}

type EmptyQueueError struct {
}

func (e *EmptyQueueError) Error() string {
	return "Queue is Empty: cannot read the maximum."
}

type ElementNotFoundError struct {
	Elem any
}

func (e *ElementNotFoundError) Error() string {
	return fmt.Sprintf("element %v is not in the queue", e.Elem)
}

type IndexOutOfRangeError struct {
	Index, Size uint
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("index %d out of range for size %d", e.Index, e.Size)
}

type EmptyBufferError struct {
}

func (e *EmptyBufferError) Error() string {
	return "Buffer is Empty: cannot remove the last element."
}

// InvalidRangeError is returned when a priority interval has Min > Max.
type InvalidRangeError struct {
	Min, Max int64
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("invalid priority range [%d, %d]", e.Min, e.Max)
}
