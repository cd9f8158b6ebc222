package dynarray

import (
	"runtime"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSafeArray(t *testing.T) {
	s, err := NewSafeArray[int](4, 2)
	require.NoError(t, err)
	require.NotNil(t, s.a)

	_, err = NewSafeArray[int](0, 2)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestSafeArrayOperations(t *testing.T) {
	s, err := NewSafeArray[int](4, 2)
	require.NoError(t, err)

	s.Add(1, 2, 3)
	require.NoError(t, s.Set(1, 20))

	v, err := s.Get(1)
	require.NoError(t, err)
	assert.Equal(t, 20, v)
	assert.True(t, s.Member(3))

	removed, err := s.Remove(0)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)
	assert.Equal(t, []int{20, 3}, s.Values())

	_, err = s.Get(5)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	require.NoError(t, s.EnsureCapacity(9))
	assert.Equal(t, 3, s.NumChunks())
	assert.Equal(t, 12, s.Capacity())

	snap := s.Snapshot()
	s.Clear()
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, []int{20, 3}, snap.Values(), "snapshot is independent")
}

func TestSafeArrayMetrics(t *testing.T) {
	s, err := NewSafeArray[int](4, 2)
	require.NoError(t, err)
	s.Add(1, 2, 3, 4, 5)

	metrics := s.Metrics()
	assert.Equal(t, s.Len(), metrics.Len)
	assert.Equal(t, s.Capacity(), metrics.Capacity)
	assert.Equal(t, s.NumChunks(), metrics.NumChunks)
}

func TestSafeArrayConcurrency(t *testing.T) {
	s, err := NewSafeArray[int](16, 2)
	require.NoError(t, err)
	const numGoroutines = 10
	const numAddsPerGoroutine = 100

	var wg sync.WaitGroup
	wg.Add(numGoroutines)

	for i := 0; i < numGoroutines; i++ {
		go func(id int) {
			defer wg.Done()
			for j := 0; j < numAddsPerGoroutine; j++ {
				s.Add(id*numAddsPerGoroutine + j)
				if j%10 == 0 {
					_ = s.Member(j)
					_ = s.Metrics()
					runtime.Gosched()
				}
			}
		}(i)
	}

	wg.Wait()

	assert.Equal(t, numGoroutines*numAddsPerGoroutine, s.Len())
	sum := SafeReduce(s, func(acc, v int) int { return acc + v }, 0)
	n := numGoroutines * numAddsPerGoroutine
	assert.Equal(t, n*(n-1)/2, sum)
}

func TestSafeArrayConcurrentRemove(t *testing.T) {
	s, err := NewSafeArray[int](8, 2)
	require.NoError(t, err)
	for i := 0; i < 200; i++ {
		s.Add(i)
	}

	const numWorkers = 4
	var wg sync.WaitGroup
	wg.Add(numWorkers)
	for i := 0; i < numWorkers; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				_, err := s.Remove(0)
				assert.NoError(t, err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 0, s.Len())
	assert.Equal(t, 0, s.NumChunks())
}

func BenchmarkSafeArray(b *testing.B) {
	s, err := NewSafeArray[int](1024, 2)
	require.NoError(b, err)

	b.Run("Add", func(b *testing.B) {
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			s.Add(i)
			if i%100000 == 99999 {
				s.Clear()
			}
		}
	})
}

func BenchmarkSafeArrayConcurrent(b *testing.B) {
	s, err := NewSafeArray[int](1024, 2)
	require.NoError(b, err)

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			s.Add(i)
			i++
			if i%100000 == 99999 {
				s.Clear()
			}
		}
	})
}
