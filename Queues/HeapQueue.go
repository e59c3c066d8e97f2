package Queues

import (
	"golang.org/x/exp/constraints"
)

// HeapQueue is a binary max-heap stored in a GrowBuf. The entry at i has its
// parent at (i-1)/2 and its children at 2i+1 and 2i+2, and no entry has a
// higher priority than its parent.
// Insert and ExtractMax are O(log n), FindMax is O(1), and ModifyKey is O(n)
// because the element has to be found by a linear scan first.
type HeapQueue[T comparable, P constraints.Signed] struct {
	buf GrowBuf[Entry[T, P]]
}

// NewHeapQueue returns an empty heap with room for initCap entries before
// the first growth. initCap 0 gives the default capacity of 10; a non-zero
// initCap replaces that default.
func NewHeapQueue[T comparable, P constraints.Signed](initCap uint) *HeapQueue[T, P] {
	return &HeapQueue[T, P]{*NewGrowBuf[Entry[T, P]](initCap)}
}

func parent(i uint) uint {
	return (i - 1) / 2
}

func left(i uint) uint {
	return 2*i + 1
}

func right(i uint) uint {
	return 2*i + 2
}

func (u *HeapQueue[T, P]) siftUp(i uint) {
	es := u.buf.slice()
	for i > 0 && es[parent(i)].Prio < es[i].Prio {
		es[i], es[parent(i)] = es[parent(i)], es[i]
		i = parent(i)
	}
}

// siftDown moves the entry at i toward the leaves. Among equal priorities the
// entry at i wins over its left child, and the left child over the right one.
func (u *HeapQueue[T, P]) siftDown(i uint) {
	es := u.buf.slice()
	n := uint(len(es))
	for {
		m := i
		if l := left(i); l < n && es[l].Prio > es[m].Prio {
			m = l
		}
		if r := right(i); r < n && es[r].Prio > es[m].Prio {
			m = r
		}
		if m == i {
			return
		}
		es[i], es[m] = es[m], es[i]
		i = m
	}
}

// indexOf the first entry holding e in array order, or Size() if there's none.
func (u *HeapQueue[T, P]) indexOf(e T) uint {
	for i, en := range u.buf.slice() {
		if en.Elem == e {
			return uint(i)
		}
	}
	return u.buf.Len()
}

func (u *HeapQueue[T, P]) Insert(e T, p P) {
	u.buf.Append(Entry[T, P]{e, p})
	u.siftUp(u.buf.Len() - 1)
}

func (u *HeapQueue[T, P]) ExtractMaxEntry() (Entry[T, P], error) {
	if u.buf.Empty() {
		return Entry[T, P]{}, &EmptyQueueError{}
	}
	es := u.buf.slice()
	top := es[0]
	if last := len(es) - 1; last > 0 {
		es[0] = es[last]
	}
	if _, e := u.buf.RemoveLast(); e != nil {
		return Entry[T, P]{}, e
	}
	if !u.buf.Empty() {
		u.siftDown(0)
	}
	return top, nil
}

func (u *HeapQueue[T, P]) ExtractMax() (T, error) {
	en, e := u.ExtractMaxEntry()
	return en.Elem, e
}

func (u *HeapQueue[T, P]) FindMax() (T, error) {
	if u.buf.Empty() {
		return *new(T), &EmptyQueueError{}
	}
	return u.buf.content[0].Elem, nil
}

func (u *HeapQueue[T, P]) FindMaxPriority() (P, error) {
	if u.buf.Empty() {
		return 0, &EmptyQueueError{}
	}
	return u.buf.content[0].Prio, nil
}

// ModifyKey scans for e, then sifts it up if p is larger than its old
// priority, or down if p is smaller.
func (u *HeapQueue[T, P]) ModifyKey(e T, p P) error {
	i := u.indexOf(e)
	en, err := u.buf.AtMut(i)
	if err != nil {
		return &ElementNotFoundError{e}
	}
	old := en.Prio
	en.Prio = p
	if p > old {
		u.siftUp(i)
	} else if p < old {
		u.siftDown(i)
	}
	return nil
}

func (u *HeapQueue[T, P]) Size() uint {
	return u.buf.Len()
}

func (u *HeapQueue[T, P]) Empty() bool {
	return u.buf.Empty()
}

func (u *HeapQueue[T, P]) Peek() (T, error) {
	return u.FindMax()
}

func (u *HeapQueue[T, P]) Pop() (T, error) {
	return u.ExtractMax()
}

// Range visits entries in array order, which is a level order of the heap.
func (u *HeapQueue[T, P]) Range(f func(T, P) bool) {
	for _, en := range u.buf.slice() {
		if !f(en.Elem, en.Prio) {
			return
		}
	}
}

func (u *HeapQueue[T, P]) Clone() ExtendedQueue[T, P] {
	c := make([]Entry[T, P], u.buf.Cap())
	copy(c, u.buf.slice())
	return &HeapQueue[T, P]{GrowBuf[Entry[T, P]]{u.buf.sz, c}}
}

func (u *HeapQueue[T, P]) Clear() {
	u.buf.Clear()
}

// corrupt reports whether some entry has a higher priority than its parent.
func (u *HeapQueue[T, P]) corrupt() bool {
	es := u.buf.slice()
	for i := uint(1); i < uint(len(es)); i++ {
		if es[parent(i)].Prio < es[i].Prio {
			return true
		}
	}
	return false
}
