package dynarray

import "sync"

// SafeArray is a mutex-protected wrapper around DynamicArray for callers
// that share one array between goroutines. Every call takes the lock for
// its whole duration, including user callbacks passed to Member or Reduce.
type SafeArray[T any] struct {
	mu sync.Mutex
	a  *DynamicArray[T]
}

// NewSafeArray creates an empty thread-safe array.
func NewSafeArray[T any](chunkSize int, growthFactor float64) (*SafeArray[T], error) {
	a, err := New[T](chunkSize, growthFactor)
	if err != nil {
		return nil, err
	}
	return &SafeArray[T]{a: a}, nil
}

// Add thread-safely appends values.
func (s *SafeArray[T]) Add(values ...T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.Add(values...)
}

// Get thread-safely returns the element at index i.
func (s *SafeArray[T]) Get(i int) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Get(i)
}

// Set thread-safely overwrites the element at index i.
func (s *SafeArray[T]) Set(i int, v T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Set(i, v)
}

// Remove thread-safely deletes and returns the element at index i.
func (s *SafeArray[T]) Remove(i int) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Remove(i)
}

// Member thread-safely reports whether v is stored.
func (s *SafeArray[T]) Member(v T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Member(v)
}

// EnsureCapacity thread-safely grows the chunk table to fit n elements.
func (s *SafeArray[T]) EnsureCapacity(n int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.EnsureCapacity(n)
}

// Clear thread-safely removes every element and releases all chunks.
func (s *SafeArray[T]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.Clear()
}

// Values thread-safely copies out the elements.
func (s *SafeArray[T]) Values() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Values()
}

// Snapshot thread-safely returns an unsynchronized copy of the array.
func (s *SafeArray[T]) Snapshot() *DynamicArray[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Concat(nil)
}

// SafeReduce thread-safely folds the elements of s from left to right.
func SafeReduce[T, A any](s *SafeArray[T], fn func(acc A, v T) A, initial A) A {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Reduce(s.a, fn, initial)
}
