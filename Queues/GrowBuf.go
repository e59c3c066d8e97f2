package Queues

const defaultBufCap uint = 10

// GrowBuf is a contiguous buffer that doubles its capacity when an append
// finds it full. Live elements are content[:sz]. Capacity never shrinks.
// Growth moves the elements, so pointers from AtMut must be re-fetched after
// any Append.
type GrowBuf[T any] struct {
	sz      uint
	content []T
}

// NewGrowBuf allocates a buffer with initCap slots. 0 selects the default
// of 10; any other value replaces it.
func NewGrowBuf[T any](initCap uint) *GrowBuf[T] {
	if initCap == 0 {
		initCap = defaultBufCap
	}
	return &GrowBuf[T]{0, make([]T, initCap)}
}

func (this *GrowBuf[T]) resize(newLen uint) {
	nc := make([]T, newLen)
	copy(nc, this.content[:this.sz])
	this.content = nc
}

// Append v to the end. O(1) amortized.
func (this *GrowBuf[T]) Append(v T) {
	if len(this.content) == 0 {
		this.content = make([]T, defaultBufCap)
	} else if this.sz == uint(len(this.content)) {
		this.resize(this.sz * 2)
	}
	this.content[this.sz] = v
	this.sz++
}

// RemoveLast element and return it.
func (this *GrowBuf[T]) RemoveLast() (T, error) {
	if this.sz == 0 {
		return *new(T), &EmptyBufferError{}
	}
	this.sz--
	t := this.content[this.sz]
	this.content[this.sz] = *new(T)
	return t, nil
}

func (this *GrowBuf[T]) At(i uint) (T, error) {
	if i >= this.sz {
		return *new(T), &IndexOutOfRangeError{i, this.sz}
	}
	return this.content[i], nil
}

// AtMut returns a pointer to the element at i. It's valid until the next Append.
func (this *GrowBuf[T]) AtMut(i uint) (*T, error) {
	if i >= this.sz {
		return nil, &IndexOutOfRangeError{i, this.sz}
	}
	return &this.content[i], nil
}

func (this *GrowBuf[T]) Set(i uint, v T) error {
	if i >= this.sz {
		return &IndexOutOfRangeError{i, this.sz}
	}
	this.content[i] = v
	return nil
}

// Swap elements at i and j; both must be less than Len().
func (this *GrowBuf[T]) Swap(i, j uint) {
	this.content[i], this.content[j] = this.content[j], this.content[i]
}

func (this *GrowBuf[T]) Len() uint {
	return this.sz
}

func (this *GrowBuf[T]) Cap() uint {
	return uint(len(this.content))
}

func (this *GrowBuf[T]) Empty() bool {
	return this.sz == 0
}

// Clear sets the length to 0 and keeps the storage for reuse. The old
// elements stay reachable until overwritten.
func (this *GrowBuf[T]) Clear() {
	this.sz = 0
}

// live elements, valid until the next Append.
func (this *GrowBuf[T]) slice() []T {
	return this.content[:this.sz]
}
