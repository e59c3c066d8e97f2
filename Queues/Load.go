package Queues

import (
	"bufio"
	"io"
	"strconv"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Load reads whitespace separated "element priority" pairs from r and inserts
// each into q. Reading stops without an error at the first token that can't
// be parsed, or when the last pair is missing its priority. Only errors from r
// are returned. The number of inserted entries is returned in both cases.
func Load[T comparable, P constraints.Signed](r io.Reader, q PriorityQueue[T, P], parseElem func(string) (T, error)) (uint, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	var n uint
	for sc.Scan() {
		e, err := parseElem(sc.Text())
		if err != nil || !sc.Scan() {
			break
		}
		p, err := ParseInt[P](sc.Text())
		if err != nil {
			break
		}
		q.Insert(e, p)
		n++
	}
	return n, sc.Err()
}

// ParseInt parses a base 10 integer that must fit in I.
func ParseInt[I constraints.Integer](s string) (I, error) {
	var z I
	bits := int(unsafe.Sizeof(z)) * 8
	if ^z < z { // signed
		v, e := strconv.ParseInt(s, 10, bits)
		return I(v), e
	}
	v, e := strconv.ParseUint(s, 10, bits)
	return I(v), e
}
