package dynarray

import (
	"fmt"
	"iter"
	"strings"

	"github.com/emirpasic/gods/utils"
	"golang.org/x/exp/slices"
)

// Member reports whether some element equals v under the array's equality.
func (a *DynamicArray[T]) Member(v T) bool {
	return a.MemberFunc(v, a.equal)
}

// MemberFunc is Member with an explicit equality.
func (a *DynamicArray[T]) MemberFunc(v T, equal func(a, b T) bool) bool {
	return a.Index(v, equal) >= 0
}

// Index returns the position of the first element equal to v, or -1.
// A nil equal uses the array's equality.
func (a *DynamicArray[T]) Index(v T, equal func(a, b T) bool) int {
	if equal == nil {
		equal = a.equal
	}
	for i := 0; i < a.length; i++ {
		if equal(a.at(i), v) {
			return i
		}
	}
	return -1
}

// RemoveValue removes the first element equal to v and reports whether
// one was found.
func (a *DynamicArray[T]) RemoveValue(v T) bool {
	i := a.Index(v, nil)
	if i < 0 {
		return false
	}
	_, err := a.Remove(i)
	return err == nil
}

// Reverse reorders the elements in place so that index i holds what was
// at Len-1-i.
func (a *DynamicArray[T]) Reverse() {
	for i, j := 0, a.length-1; i < j; i, j = i+1, j-1 {
		a.swap(i, j)
	}
}

// Filter returns a new array with the elements for which keep returns
// true, in their original order.
func (a *DynamicArray[T]) Filter(keep func(T) bool) *DynamicArray[T] {
	out := a.Empty()
	for i := 0; i < a.length; i++ {
		if v := a.at(i); keep(v) {
			out.Add(v)
		}
	}
	return out
}

// Map returns a new array holding fn applied to every element of a. The
// result shares a's chunk size and growth factor and compares elements
// with reflect.DeepEqual.
func Map[T, U any](a *DynamicArray[T], fn func(T) U) *DynamicArray[U] {
	out := newArray[U](a.cfg, deepEqual[U])
	out.grow(a.length)
	for i := 0; i < a.length; i++ {
		out.Add(fn(a.at(i)))
	}
	return out
}

// Reduce folds the elements from left to right, starting with initial.
func Reduce[T, A any](a *DynamicArray[T], fn func(acc A, v T) A, initial A) A {
	acc := initial
	for i := 0; i < a.length; i++ {
		acc = fn(acc, a.at(i))
	}
	return acc
}

// Empty returns a new array with no elements and the same configuration
// and equality as a. It is the identity element of Concat.
func (a *DynamicArray[T]) Empty() *DynamicArray[T] {
	return newArray[T](a.cfg, a.equal)
}

// Concat returns a new array with the elements of a followed by those of
// other. Neither input is modified. The result takes a's configuration.
func (a *DynamicArray[T]) Concat(other *DynamicArray[T]) *DynamicArray[T] {
	out := a.Empty()
	n := a.length
	if other != nil {
		n += other.length
	}
	out.grow(n)
	for v := range a.All() {
		out.Add(v)
	}
	if other != nil {
		for v := range other.All() {
			out.Add(v)
		}
	}
	return out
}

// All returns an iterator over the elements in index order. Each range
// over the returned sequence starts again from index 0.
func (a *DynamicArray[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < a.length; i++ {
			if !yield(a.at(i)) {
				return
			}
		}
	}
}

// Backward returns an iterator over index/value pairs from the last
// element to the first.
func (a *DynamicArray[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := a.length - 1; i >= 0; i-- {
			if !yield(i, a.at(i)) {
				return
			}
		}
	}
}

// Range calls fn for every element in order until fn returns false.
func (a *DynamicArray[T]) Range(fn func(i int, v T) bool) {
	for i := 0; i < a.length; i++ {
		if !fn(i, a.at(i)) {
			return
		}
	}
}

// Values returns the elements as a freshly allocated slice.
func (a *DynamicArray[T]) Values() []T {
	out := make([]T, 0, a.length)
	for v := range a.All() {
		out = append(out, v)
	}
	return out
}

// Sort orders the elements in place with a gods comparator. Equal
// elements keep their relative order. Each comparison boxes its
// arguments; SortFunc avoids that for typed comparators.
func (a *DynamicArray[T]) Sort(cmp utils.Comparator) {
	a.SortFunc(func(x, y T) int {
		return cmp(x, y)
	})
}

// SortFunc is Sort with a typed comparator such as cmp.Compare.
func (a *DynamicArray[T]) SortFunc(cmp func(x, y T) int) {
	if a.length < 2 {
		return
	}
	values := a.Values()
	slices.SortStableFunc(values, cmp)
	for i, v := range values {
		ci, off := a.locate(i)
		a.chunks[ci].store(off, v)
	}
}

// String renders the elements as "[a b c]".
func (a *DynamicArray[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	a.Range(func(i int, v T) bool {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprint(&b, v)
		return true
	})
	b.WriteByte(']')
	return b.String()
}
