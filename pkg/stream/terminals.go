package stream

// ============================================================================
// TERMINALS (FOLDS / SINKS)
// ============================================================================

// ForEach consumes the stream, invoking fn once per element in order.
// It blocks until the stream is exhausted; applying it to an unbounded
// stream does not return.
func (s Stream[T]) ForEach(fn func(T)) {
	for {
		v, ok := s.next()
		if !ok {
			return
		}
		fn(v)
	}
}

// Count consumes the stream and returns the number of elements it yielded.
func (s Stream[T]) Count() int {
	n := 0
	s.ForEach(func(T) { n++ })
	return n
}

// Collect consumes the stream and gathers all elements into a slice,
// preserving order. An exhausted or empty stream collects to a nil slice.
//
// Parameters:
//   s: The stream to collect.
//
// Returns:
//   []T: The collected elements.
func Collect[T any](s Stream[T]) []T {
	var out []T
	s.ForEach(func(v T) { out = append(out, v) })
	return out
}

// Reduce consumes the stream and folds its elements into a single accumulator
// using the provided function, starting from init.
//
// Parameters:
//   s: The stream to reduce.
//   init: The initial value of the accumulator.
//   fn: The reduction function combining the accumulator and the next element.
//
// Returns:
//   Acc: The final accumulated value.
func Reduce[T, Acc any](s Stream[T], init Acc, fn func(Acc, T) Acc) Acc {
	acc := init
	s.ForEach(func(v T) { acc = fn(acc, v) })
	return acc
}

// Sum consumes a stream of integers and returns their sum.
func Sum(s Stream[int]) int {
	return Reduce(s, 0, func(acc, v int) int { return acc + v })
}
