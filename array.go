package dynarray

import (
	"reflect"

	"github.com/pkg/errors"
)

// DynamicArray is a resizable sequence stored in fixed-capacity chunks.
// Growing appends entries to the chunk table and never moves stored
// elements. A table entry stays nil until its chunk is first written.
// Not goroutine-safe; use SafeArray for shared access.
type DynamicArray[T any] struct {
	chunks []*chunk[T]
	length int
	cfg    Config
	equal  func(a, b T) bool
}

// New creates an empty DynamicArray. It returns an error matching
// ErrInvalidConfig if chunkSize <= 0 or growthFactor <= 1.
func New[T any](chunkSize int, growthFactor float64) (*DynamicArray[T], error) {
	return NewWithConfig[T](Config{ChunkSize: chunkSize, GrowthFactor: growthFactor})
}

// NewWithConfig creates an empty DynamicArray from cfg.
func NewWithConfig[T any](cfg Config) (*DynamicArray[T], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newArray[T](cfg, deepEqual[T]), nil
}

// MustNew is like New but panics on an invalid configuration.
func MustNew[T any](chunkSize int, growthFactor float64) *DynamicArray[T] {
	a, err := New[T](chunkSize, growthFactor)
	if err != nil {
		panic(err)
	}
	return a
}

// FromSlice creates a DynamicArray holding a copy of values, with exactly
// as many chunks as needed.
func FromSlice[T any](cfg Config, values []T) (*DynamicArray[T], error) {
	a, err := NewWithConfig[T](cfg)
	if err != nil {
		return nil, err
	}
	a.Add(values...)
	return a, nil
}

// newArray skips validation; cfg must come from an existing array.
func newArray[T any](cfg Config, equal func(a, b T) bool) *DynamicArray[T] {
	return &DynamicArray[T]{cfg: cfg, equal: equal}
}

func deepEqual[T any](a, b T) bool {
	return reflect.DeepEqual(a, b)
}

// Equatable replaces the equality used by Member and RemoveValue.
// The default is reflect.DeepEqual.
func (a *DynamicArray[T]) Equatable(equal func(a, b T) bool) *DynamicArray[T] {
	if equal == nil {
		equal = deepEqual[T]
	}
	a.equal = equal
	return a
}

// locate translates a logical index into a chunk index and an offset
// within that chunk.
func (a *DynamicArray[T]) locate(i int) (int, int) {
	return i / a.cfg.ChunkSize, i % a.cfg.ChunkSize
}

func (a *DynamicArray[T]) checkIndex(op string, i int) error {
	if i < 0 || i >= a.length {
		return &IndexError{Op: op, Index: i, Len: a.length}
	}
	return nil
}

// EnsureCapacity grows the chunk table so that at least n elements fit.
// Existing chunks are kept in place.
func (a *DynamicArray[T]) EnsureCapacity(n int) error {
	if n < 0 {
		return errors.Wrapf(ErrInvalidConfig, "capacity requested for negative length %d", n)
	}
	a.grow(n)
	return nil
}

// grow extends the chunk table until n elements fit, following the growth
// policy. The new entries are nil; chunkFor allocates them on first write.
func (a *DynamicArray[T]) grow(n int) {
	if n <= a.Capacity() {
		return
	}
	target := a.cfg.nextChunkCount(len(a.chunks), n)
	a.chunks = append(a.chunks, make([]*chunk[T], target-len(a.chunks))...)
}

// chunkFor returns chunk ci, allocating it if it was never written.
func (a *DynamicArray[T]) chunkFor(ci int) *chunk[T] {
	c := a.chunks[ci]
	if c == nil {
		c = newChunk[T](a.cfg.ChunkSize)
		a.chunks[ci] = c
	}
	return c
}

// shrink cuts the chunk table back to the chunks holding live elements,
// but only once it exceeds what the growth policy would keep for the
// current length.
func (a *DynamicArray[T]) shrink() {
	if len(a.chunks) <= a.cfg.retainChunks(a.length) {
		return
	}
	keep := a.cfg.chunksFor(a.length)
	clear(a.chunks[keep:])
	a.chunks = a.chunks[:keep]
}

// Add appends values at the end of the array.
func (a *DynamicArray[T]) Add(values ...T) {
	if len(values) == 0 {
		return
	}
	a.grow(a.length + len(values))
	for _, v := range values {
		ci, off := a.locate(a.length)
		a.chunkFor(ci).store(off, v)
		a.length++
	}
}

// Get returns the element at index i.
func (a *DynamicArray[T]) Get(i int) (T, error) {
	if err := a.checkIndex("get", i); err != nil {
		var zero T
		return zero, err
	}
	ci, off := a.locate(i)
	return a.chunks[ci].load(off), nil
}

// Set overwrites the element at index i.
func (a *DynamicArray[T]) Set(i int, v T) error {
	if err := a.checkIndex("set", i); err != nil {
		return err
	}
	ci, off := a.locate(i)
	a.chunks[ci].store(off, v)
	return nil
}

// Remove deletes the element at index i and returns it. Every element
// after i moves down by one, crossing chunk boundaries as needed, so the
// cost is linear in the number of trailing elements.
func (a *DynamicArray[T]) Remove(i int) (T, error) {
	if err := a.checkIndex("remove", i); err != nil {
		var zero T
		return zero, err
	}
	ci, off := a.locate(i)
	removed := a.chunks[ci].load(off)

	lci, loff := a.locate(a.length - 1)
	for ; ci < lci; ci++ {
		c := a.chunks[ci]
		c.shiftLeft(off)
		c.slots[len(c.slots)-1] = a.chunks[ci+1].slots[0]
		off = 0
	}
	a.chunks[lci].shiftLeft(off)
	a.chunks[lci].vacate(loff)

	a.length--
	a.shrink()
	return removed, nil
}

// Insert places v at index i, moving the elements at i and above up by
// one. i may equal Len, which appends.
func (a *DynamicArray[T]) Insert(i int, v T) error {
	if i < 0 || i > a.length {
		return &IndexError{Op: "insert", Index: i, Len: a.length}
	}
	a.grow(a.length + 1)

	ci, off := a.locate(i)
	lci, _ := a.locate(a.length)
	carry := a.chunkFor(ci).shiftRight(off)
	a.chunks[ci].store(off, v)
	for ci++; ci <= lci; ci++ {
		c := a.chunkFor(ci)
		next := c.shiftRight(0)
		c.slots[0] = carry
		carry = next
	}
	a.length++
	return nil
}

// Swap exchanges the elements at i and j.
func (a *DynamicArray[T]) Swap(i, j int) error {
	if err := a.checkIndex("swap", i); err != nil {
		return err
	}
	if err := a.checkIndex("swap", j); err != nil {
		return err
	}
	a.swap(i, j)
	return nil
}

func (a *DynamicArray[T]) swap(i, j int) {
	ci, oi := a.locate(i)
	cj, oj := a.locate(j)
	a.chunks[ci].slots[oi], a.chunks[cj].slots[oj] = a.chunks[cj].slots[oj], a.chunks[ci].slots[oi]
}

// at is Get without the bounds check.
func (a *DynamicArray[T]) at(i int) T {
	ci, off := a.locate(i)
	return a.chunks[ci].load(off)
}

// Len returns the number of stored elements.
func (a *DynamicArray[T]) Len() int {
	return a.length
}

// IsEmpty reports whether the array holds no elements.
func (a *DynamicArray[T]) IsEmpty() bool {
	return a.length == 0
}

// Clear removes every element and releases all chunks. The array stays
// usable with its original configuration.
func (a *DynamicArray[T]) Clear() {
	a.chunks = nil
	a.length = 0
}
