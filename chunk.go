package dynarray

import "github.com/aarondl/opt/omit"

// chunk is a fixed-capacity block of slots. A slot is either unset
// (unoccupied) or set to a value; a set slot may hold any value of T,
// including a nil pointer or a null.Val, so unoccupied is never confused
// with a stored "no value".
type chunk[T any] struct {
	slots []omit.Val[T]
}

func newChunk[T any](size int) *chunk[T] {
	return &chunk[T]{slots: make([]omit.Val[T], size)}
}

// load returns the value in slot off. Only called for offsets below the
// array length, which are always set.
func (c *chunk[T]) load(off int) T {
	return c.slots[off].MustGet()
}

func (c *chunk[T]) store(off int, v T) {
	c.slots[off] = omit.From(v)
}

// vacate marks the slot as unoccupied, dropping any reference it held.
func (c *chunk[T]) vacate(off int) {
	c.slots[off] = omit.Val[T]{}
}

// occupied counts set slots. A chunk never written has none.
func (c *chunk[T]) occupied() int {
	if c == nil {
		return 0
	}
	n := 0
	for _, s := range c.slots {
		if s.IsSet() {
			n++
		}
	}
	return n
}

// shiftLeft moves slots (off, len) down by one, leaving the last slot to
// be filled by the caller.
func (c *chunk[T]) shiftLeft(off int) {
	copy(c.slots[off:], c.slots[off+1:])
}

// shiftRight moves slots [off, len-1) up by one and returns the slot that
// fell off the end.
func (c *chunk[T]) shiftRight(off int) omit.Val[T] {
	last := c.slots[len(c.slots)-1]
	copy(c.slots[off+1:], c.slots[off:len(c.slots)-1])
	return last
}
