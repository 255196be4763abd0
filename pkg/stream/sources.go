package stream

// ============================================================================
// SOURCE OPERATORS
// ============================================================================

// Of creates a finite stream over the given elements, in argument order.
//
// Parameters:
//   items: The elements to stream.
//
// Returns:
//   Stream[T]: A new stream yielding each element once.
func Of[T any](items ...T) Stream[T] {
	return FromSlice(items)
}

// FromSlice creates a finite stream over the elements of a slice, in index
// order. The slice is read but never mutated; callers must not modify it
// while the stream is being consumed.
//
// Parameters:
//   items: The backing slice.
//
// Returns:
//   Stream[T]: A new stream yielding each slice element once.
func FromSlice[T any](items []T) Stream[T] {
	i := 0
	return fromPull(func() (T, bool) {
		if i >= len(items) {
			var zero T
			return zero, false
		}
		v := items[i]
		i++
		return v, true
	})
}

// Iterate creates an infinite stream of repeated applications of next to seed:
// seed, next(seed), next(next(seed)), and so on.
// The result must be bounded with Limit before applying a terminal operator.
//
// Parameters:
//   seed: The first element.
//   next: The function producing each successive element from the previous one.
//
// Returns:
//   Stream[T]: An infinite stream.
func Iterate[T any](seed T, next func(T) T) Stream[T] {
	cur := seed
	first := true
	return fromPull(func() (T, bool) {
		if first {
			first = false
			return cur, true
		}
		cur = next(cur)
		return cur, true
	})
}
