package Queues

import (
	"testing"
)

var (
	bInsN uint = 100000
	bModN      = 1000
)

var sideEff int

func fill(b *testing.B, q PriorityQueue[int, int]) {
	b.Helper()
	for i := range int(bInsN) {
		q.Insert(i, rg.Intn(1000000))
	}
}

func BenchmarkHeapInsert(b *testing.B) {
	for range b.N {
		fill(b, NewHeapQueue[int, int](0))
	}
}

func BenchmarkListInsert(b *testing.B) {
	for range b.N {
		fill(b, NewListQueue[int, int]())
	}
}

func BenchmarkHeapExtractAll(b *testing.B) {
	b.ResetTimer()
	for range b.N {
		b.StopTimer()
		q := NewHeapQueue[int, int](bInsN)
		fill(b, q)
		b.StartTimer()
		for !q.Empty() {
			sideEff, _ = q.ExtractMax()
		}
	}
}

func BenchmarkHeapModifyKey(b *testing.B) {
	q := NewHeapQueue[int, int](bInsN)
	fill(b, q)
	b.ResetTimer()
	for range b.N {
		for range bModN {
			q.ModifyKey(rg.Intn(int(bInsN)), rg.Intn(1000000))
		}
	}
}

func BenchmarkListModifyKey(b *testing.B) {
	q := NewListQueue[int, int]()
	fill(b, q)
	b.ResetTimer()
	for range b.N {
		for range bModN {
			q.ModifyKey(rg.Intn(int(bInsN)), rg.Intn(1000000))
		}
	}
}

func BenchmarkListFindMax(b *testing.B) {
	q := NewListQueue[int, int]()
	fill(b, q)
	b.ResetTimer()
	for range b.N {
		sideEff, _ = q.FindMax()
	}
}
