package dynarray

// NumChunks returns the number of entries in the chunk table.
func (a *DynamicArray[T]) NumChunks() int {
	return len(a.chunks)
}

// AllocatedChunks returns the number of table entries backed by memory.
// Entries added by growth stay unallocated until first written.
func (a *DynamicArray[T]) AllocatedChunks() int {
	n := 0
	for _, c := range a.chunks {
		if c != nil {
			n++
		}
	}
	return n
}

// Capacity returns the number of elements the chunk table can hold.
func (a *DynamicArray[T]) Capacity() int {
	return len(a.chunks) * a.cfg.ChunkSize
}

// ChunkSize returns the per-chunk capacity fixed at construction.
func (a *DynamicArray[T]) ChunkSize() int {
	return a.cfg.ChunkSize
}

// GrowthFactor returns the chunk table growth multiplier.
func (a *DynamicArray[T]) GrowthFactor() float64 {
	return a.cfg.GrowthFactor
}

// Config returns the construction parameters.
func (a *DynamicArray[T]) Config() Config {
	return a.cfg
}

// Utilization returns the ratio of stored elements to capacity (0.0 to 1.0).
// Returns 0.0 if no chunk is allocated.
func (a *DynamicArray[T]) Utilization() float64 {
	capacity := a.Capacity()
	if capacity == 0 {
		return 0
	}
	return float64(a.length) / float64(capacity)
}

// Metrics returns a snapshot of array statistics.
func (a *DynamicArray[T]) Metrics() ArrayMetrics {
	return ArrayMetrics{
		Len:          a.Len(),
		Capacity:     a.Capacity(),
		NumChunks:    a.NumChunks(),
		Allocated:    a.AllocatedChunks(),
		ChunkSize:    a.ChunkSize(),
		GrowthFactor: a.GrowthFactor(),
		Utilization:  a.Utilization(),
	}
}

// ArrayMetrics contains statistical information about an array.
type ArrayMetrics struct {
	Len          int     // Elements stored
	Capacity     int     // Elements the chunk table can hold
	NumChunks    int     // Chunk table entries
	Allocated    int     // Chunks backed by memory
	ChunkSize    int     // Slots per chunk
	GrowthFactor float64 // Chunk table growth multiplier
	Utilization  float64 // Ratio of Len to Capacity (0.0-1.0)
}

// Thread-safe metrics for SafeArray

// Len thread-safely returns the number of stored elements.
func (s *SafeArray[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Len()
}

// NumChunks thread-safely returns the number of chunks currently allocated.
func (s *SafeArray[T]) NumChunks() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.NumChunks()
}

// Capacity thread-safely returns the capacity of all chunks.
func (s *SafeArray[T]) Capacity() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Capacity()
}

// Metrics thread-safely returns a snapshot of array statistics.
func (s *SafeArray[T]) Metrics() ArrayMetrics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Metrics()
}
