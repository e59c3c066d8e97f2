package Queues

import (
	"fmt"
	"io"

	"golang.org/x/exp/constraints"
)

// Sorted returns all entries of q ordered by non-increasing priority. It
// drains a clone, so q is left as it was.
func Sorted[T comparable, P constraints.Signed](q ExtendedQueue[T, P]) []Entry[T, P] {
	c := q.Clone()
	r := make([]Entry[T, P], 0, c.Size())
	for !c.Empty() {
		en, _ := c.ExtractMaxEntry()
		r = append(r, en)
	}
	return r
}

// Display writes the entries of q to w as "elem: prio" lines, highest priority first.
func Display[T comparable, P constraints.Signed](w io.Writer, q ExtendedQueue[T, P]) error {
	if q.Empty() {
		_, e := fmt.Fprintln(w, "queue is empty")
		return e
	}
	if _, e := fmt.Fprintln(w, "contents (element: priority):"); e != nil {
		return e
	}
	for _, en := range Sorted(q) {
		if _, e := fmt.Fprintf(w, "%v: %d\n", en.Elem, en.Prio); e != nil {
			return e
		}
	}
	return nil
}
