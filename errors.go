package dynarray

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidConfig is returned when an array is constructed with a
	// non-positive chunk size or a growth factor not greater than one, or
	// when capacity is requested for a negative length.
	ErrInvalidConfig = errors.New("dynarray: invalid configuration")

	// ErrIndexOutOfRange is matched by every *IndexError.
	ErrIndexOutOfRange = errors.New("dynarray: index out of range")
)

// IndexError reports an index outside of [0, Len) for the named operation.
type IndexError struct {
	Op    string
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("dynarray: %s: index %d out of range [0, %d)", e.Op, e.Index, e.Len)
}

// Is makes errors.Is(err, ErrIndexOutOfRange) hold for any *IndexError.
func (e *IndexError) Is(target error) bool {
	return target == ErrIndexOutOfRange
}
