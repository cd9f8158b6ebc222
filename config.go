package dynarray

import (
	"math"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

const (
	// DefaultChunkSize is the number of slots per chunk used by DefaultConfig.
	DefaultChunkSize = 64

	// DefaultGrowthFactor doubles the chunk table whenever it fills up.
	DefaultGrowthFactor = 2.0

	// maxGrowthChunks bounds how many table entries one growth step adds
	// beyond what the request needs, whatever the growth factor.
	maxGrowthChunks = 1024
)

// Config holds the construction parameters of a DynamicArray. Both values
// are fixed for the lifetime of the array.
type Config struct {
	// ChunkSize is the number of elements a single chunk can hold.
	ChunkSize int

	// GrowthFactor is the multiplier applied to the chunk count when the
	// chunk table runs out of capacity. Must be greater than one.
	GrowthFactor float64
}

// DefaultConfig returns a Config with DefaultChunkSize and DefaultGrowthFactor.
func DefaultConfig() Config {
	return Config{
		ChunkSize:    DefaultChunkSize,
		GrowthFactor: DefaultGrowthFactor,
	}
}

// Validate reports every invalid parameter. The returned error matches
// ErrInvalidConfig.
func (c Config) Validate() error {
	var result *multierror.Error
	if c.ChunkSize <= 0 {
		result = multierror.Append(result, errors.Wrapf(ErrInvalidConfig, "chunk size %d must be positive", c.ChunkSize))
	}
	if math.IsNaN(c.GrowthFactor) || math.IsInf(c.GrowthFactor, 0) || c.GrowthFactor <= 1 {
		result = multierror.Append(result, errors.Wrapf(ErrInvalidConfig, "growth factor %v must be a finite number greater than 1", c.GrowthFactor))
	}
	return result.ErrorOrNil()
}

// chunksFor returns the number of chunks needed to hold n elements.
func (c Config) chunksFor(n int) int {
	return (n + c.ChunkSize - 1) / c.ChunkSize
}

// nextChunkCount decides how many chunks the table should have so that n
// elements fit, given that it currently holds have chunks. An empty table
// gets exactly what is needed; a full one is multiplied by GrowthFactor,
// adding at most maxGrowthChunks entries per step.
func (c Config) nextChunkCount(have, n int) int {
	need := c.chunksFor(n)
	if have == 0 {
		return need
	}
	batch := math.Ceil(float64(have) * (c.GrowthFactor - 1))
	if batch > maxGrowthChunks {
		batch = maxGrowthChunks
	}
	grown := have + max(int(batch), 1)
	return max(need, grown)
}

// retainChunks is the largest chunk table kept for n elements: the size a
// growth step would produce from an exactly sized table. Tables above it
// are cut back after a remove, so alternating add and remove at a chunk
// boundary never reallocates.
func (c Config) retainChunks(n int) int {
	need := c.chunksFor(n)
	if need == 0 {
		return 0
	}
	return c.nextChunkCount(need, need*c.ChunkSize+1)
}
