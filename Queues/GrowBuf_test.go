package Queues

import (
	"errors"
	"testing"
)

func TestGrowBuf_Append(t *testing.T) {
	b := NewGrowBuf[int](0)
	if b.Cap() != 10 {
		t.Errorf("initial capacity is %d, want %d", b.Cap(), 10)
	}
	wantCaps := map[uint]uint{10: 10, 11: 20, 20: 20, 21: 40, 41: 80}
	for i := 0; i < 41; i++ {
		b.Append(i)
		if c, in := wantCaps[b.Len()]; in && b.Cap() != c {
			t.Errorf("capacity at length %d is %d, want %d", b.Len(), b.Cap(), c)
		}
	}
	for i := uint(0); i < b.Len(); i++ {
		if v, e := b.At(i); e != nil || v != int(i) {
			t.Errorf("element %d is %d, %v", i, v, e)
		}
	}
}

func TestGrowBuf_ZeroValue(t *testing.T) {
	var b GrowBuf[string]
	if !b.Empty() {
		t.Error("zero buffer isn't empty")
	}
	b.Append("a")
	if b.Len() != 1 || b.Cap() != 10 {
		t.Errorf("length %d capacity %d after first append", b.Len(), b.Cap())
	}
}

func TestGrowBuf_RemoveLast(t *testing.T) {
	b := NewGrowBuf[int](2)
	if _, e := b.RemoveLast(); !errors.As(e, new(*EmptyBufferError)) {
		t.Errorf("removing from empty buffer gives %v", e)
	}
	for i := 0; i < 5; i++ {
		b.Append(i)
	}
	for i := 4; i >= 0; i-- {
		v, e := b.RemoveLast()
		if e != nil || v != i {
			t.Errorf("removed %d, %v, want %d", v, e, i)
		}
	}
	if !b.Empty() {
		t.Errorf("length is %d, want 0", b.Len())
	}
	if b.content[0] != 0 || b.content[4] != 0 {
		t.Error("removed slots are not zeroed")
	}
}

func TestGrowBuf_Bounds(t *testing.T) {
	b := NewGrowBuf[int](4)
	b.Append(7)
	var ie *IndexOutOfRangeError
	if _, e := b.At(1); !errors.As(e, &ie) || ie.Index != 1 || ie.Size != 1 {
		t.Errorf("At(1) gives %v", e)
	}
	if _, e := b.AtMut(3); !errors.As(e, &ie) {
		t.Errorf("AtMut(3) gives %v", e)
	}
	if e := b.Set(1, 0); !errors.As(e, &ie) {
		t.Errorf("Set(1) gives %v", e)
	}
	p, e := b.AtMut(0)
	if e != nil {
		t.Fatal(e)
	}
	*p = 9
	if v, _ := b.At(0); v != 9 {
		t.Errorf("element 0 is %d after write through AtMut, want 9", v)
	}
	if e = b.Set(0, 3); e != nil {
		t.Error(e)
	}
	if v, _ := b.At(0); v != 3 {
		t.Errorf("element 0 is %d after Set, want 3", v)
	}
}

func TestGrowBuf_Clear(t *testing.T) {
	b := NewGrowBuf[int](0)
	for i := 0; i < 25; i++ {
		b.Append(i)
	}
	c := b.Cap()
	b.Clear()
	if !b.Empty() || b.Cap() != c {
		t.Errorf("after Clear length is %d capacity %d, want 0 and %d", b.Len(), b.Cap(), c)
	}
	if _, e := b.At(0); e == nil {
		t.Error("cleared element still readable")
	}
	b.Append(1)
	if b.Cap() != c {
		t.Errorf("capacity changed to %d on reuse", b.Cap())
	}
}

func TestGrowBuf_InitCap(t *testing.T) {
	if c := NewGrowBuf[int](3).Cap(); c != 3 {
		t.Errorf("capacity is %d, want 3", c)
	}
	if c := NewHeapQueue[int, int](0).buf.Cap(); c != 10 {
		t.Errorf("default heap capacity is %d, want 10", c)
	}
	q := NewHeapQueue[int, int](1)
	q.Insert(1, 1)
	q.Insert(2, 2)
	if c := q.buf.Cap(); c != 2 {
		t.Errorf("heap capacity is %d after growing from 1, want 2", c)
	}
}
