package Queues

import (
	"golang.org/x/exp/constraints"
)

// A node in the ListQueue. nx is the index of the next node; 0 means none.
type listNode[T comparable, P constraints.Signed] struct {
	en Entry[T, P]
	nx uint
}

// ListQueue is an unsorted singly linked list of entries. Insert appends at
// the tail in O(1); everything else scans the list in O(n). Among equal
// priorities the entry inserted first is the maximum.
// Nodes live in one slice and link to each other by index, so removing a
// node never leaves a dangling link. nodes[0] is a sentinel standing for nil,
// and removed nodes are kept in a free list threaded through nx for reuse.
// The zero value is an empty queue ready to use.
type ListQueue[T comparable, P constraints.Signed] struct {
	head, tail, free, sz uint
	nodes                []listNode[T, P]
}

func NewListQueue[T comparable, P constraints.Signed]() *ListQueue[T, P] {
	return &ListQueue[T, P]{nodes: make([]listNode[T, P], 1, defaultBufCap+1)}
}

// addFree index once.
func (u *ListQueue[T, P]) addFree(a uint) {
	u.nodes[a] = listNode[T, P]{nx: u.free}
	u.free = a
}

// popFree index once. Returns 0 when there's no free index.
func (u *ListQueue[T, P]) popFree() uint {
	b := u.free
	u.free = u.nodes[b].nx
	return b
}

func (u *ListQueue[T, P]) Insert(e T, p P) {
	if len(u.nodes) == 0 {
		u.nodes = make([]listNode[T, P], 1, defaultBufCap+1)
	}
	n := listNode[T, P]{Entry[T, P]{e, p}, 0}
	i := u.popFree()
	if i == 0 {
		i = uint(len(u.nodes))
		u.nodes = append(u.nodes, n)
	} else {
		u.nodes[i] = n
	}
	if u.tail == 0 {
		u.head = i
	} else {
		u.nodes[u.tail].nx = i
	}
	u.tail = i
	u.sz++
}

// maxNode returns the first node with the highest priority and its predecessor.
// The list mustn't be empty.
func (u *ListQueue[T, P]) maxNode() (prev, m uint) {
	m = u.head
	for p, c := u.head, u.nodes[u.head].nx; c != 0; p, c = c, u.nodes[c].nx {
		if u.nodes[c].en.Prio > u.nodes[m].en.Prio {
			prev, m = p, c
		}
	}
	return
}

func (u *ListQueue[T, P]) ExtractMaxEntry() (Entry[T, P], error) {
	if u.sz == 0 {
		return Entry[T, P]{}, &EmptyQueueError{}
	}
	prev, m := u.maxNode()
	en, nx := u.nodes[m].en, u.nodes[m].nx
	if prev == 0 {
		u.head = nx
	} else {
		u.nodes[prev].nx = nx
	}
	if m == u.tail {
		u.tail = prev
	}
	u.addFree(m)
	u.sz--
	return en, nil
}

func (u *ListQueue[T, P]) ExtractMax() (T, error) {
	en, e := u.ExtractMaxEntry()
	return en.Elem, e
}

func (u *ListQueue[T, P]) FindMax() (T, error) {
	if u.sz == 0 {
		return *new(T), &EmptyQueueError{}
	}
	_, m := u.maxNode()
	return u.nodes[m].en.Elem, nil
}

func (u *ListQueue[T, P]) FindMaxPriority() (P, error) {
	if u.sz == 0 {
		return 0, &EmptyQueueError{}
	}
	_, m := u.maxNode()
	return u.nodes[m].en.Prio, nil
}

func (u *ListQueue[T, P]) ModifyKey(e T, p P) error {
	for c := u.head; c != 0; c = u.nodes[c].nx {
		if u.nodes[c].en.Elem == e {
			u.nodes[c].en.Prio = p
			return nil
		}
	}
	return &ElementNotFoundError{e}
}

func (u *ListQueue[T, P]) Size() uint {
	return u.sz
}

func (u *ListQueue[T, P]) Empty() bool {
	return u.sz == 0
}

func (u *ListQueue[T, P]) Peek() (T, error) {
	return u.FindMax()
}

func (u *ListQueue[T, P]) Pop() (T, error) {
	return u.ExtractMax()
}

// Range visits entries in list order.
func (u *ListQueue[T, P]) Range(f func(T, P) bool) {
	for c := u.head; c != 0; c = u.nodes[c].nx {
		if !f(u.nodes[c].en.Elem, u.nodes[c].en.Prio) {
			return
		}
	}
}

func (u *ListQueue[T, P]) Clone() ExtendedQueue[T, P] {
	c := *u
	c.nodes = make([]listNode[T, P], len(u.nodes), cap(u.nodes))
	copy(c.nodes, u.nodes)
	return &c
}

func (u *ListQueue[T, P]) Clear() {
	if len(u.nodes) > 0 {
		clear(u.nodes[1:])
		u.nodes = u.nodes[:1]
	}
	u.head, u.tail, u.free, u.sz = 0, 0, 0, 0
}
