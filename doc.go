// Package dynarray implements a resizable sequence stored in
// fixed-capacity chunks that are allocated on demand.
//
// # Overview
//
// A DynamicArray keeps an ordered table of chunks, each holding up to
// ChunkSize elements. Logical index i lives in chunk i/ChunkSize at offset
// i%ChunkSize. When the table is full, new chunks are appended to it;
// elements already stored are never copied on growth, unlike a single
// reallocated buffer.
//
// # Basic Usage
//
//	a, err := dynarray.New[int](4, 2) // 4 slots per chunk, double on growth
//	if err != nil {
//		return err
//	}
//	a.Add(10, 20, 30, 40, 50) // two chunks
//	v, _ := a.Get(1)          // 20
//	a.Remove(1)               // [10 30 40 50]
//
//	for v := range a.All() {
//		fmt.Println(v)
//	}
//
// # Functional Operations
//
// Filter, Map and Concat return new arrays and leave their inputs alone.
// Reduce folds left to right. Empty is the identity of Concat, and Concat
// is associative, so arrays of one element type form a monoid:
//
//	doubled := dynarray.Map(a, func(v int) int { return v * 2 })
//	sum := dynarray.Reduce(a, func(acc, v int) int { return acc + v }, 0)
//	all := a.Concat(doubled)
//
// # Storing "no value"
//
// Every slot records whether it is occupied separately from the value it
// holds, so nil pointers, nil interfaces or null.Val from
// github.com/aarondl/opt/null are ordinary elements:
//
//	b := dynarray.MustNew[null.Val[int]](8, 2)
//	b.Add(null.From(1), null.Val[int]{})
//	b.Member(null.Val[int]{}) // true
//
// # Errors
//
// Construction with a non-positive chunk size or a growth factor not above
// one fails with an error matching ErrInvalidConfig. Get, Set, Remove,
// Insert and Swap return an *IndexError, matching ErrIndexOutOfRange, for
// indices outside [0, Len). A failed call leaves the array unchanged.
//
// # Thread Safety
//
// DynamicArray is not safe for concurrent use. SafeArray wraps one behind
// a mutex.
//
// # Performance Characteristics
//
//   - Add: O(1) amortized
//   - Get, Set, Swap: O(1)
//   - Remove, Insert: O(Len) because the tail shifts across chunks
//   - Member, Filter, Map, Reduce, Reverse, Concat: O(Len)
package dynarray
