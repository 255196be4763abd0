package stream

// ============================================================================
// INTERMEDIATE OPERATORS
// ============================================================================

// Filter returns a stream yielding only the elements of s that satisfy the
// predicate. Non-matching elements are consumed from the parent and dropped.
//
// Parameters:
//   pred: The predicate deciding which elements pass through.
//
// Returns:
//   Stream[T]: The filtered stream.
func (s Stream[T]) Filter(pred func(T) bool) Stream[T] {
	return fromPull(func() (T, bool) {
		for {
			v, ok := s.next()
			if !ok {
				var zero T
				return zero, false
			}
			if pred(v) {
				return v, true
			}
		}
	})
}

// Peek returns a stream that invokes observe on each element as it flows
// through, then passes the element downstream unchanged. The observation
// happens at pull time, so effects fire in element order, interleaved with
// downstream processing. The observer's only contract is "called once per
// element, in order"; it must not mutate shared state the pipeline reads.
//
// Parameters:
//   observe: The side-effecting function to invoke per element.
//
// Returns:
//   Stream[T]: The pass-through stream.
func (s Stream[T]) Peek(observe func(T)) Stream[T] {
	return fromPull(func() (T, bool) {
		v, ok := s.next()
		if ok {
			observe(v)
		}
		return v, ok
	})
}

// Limit returns a stream truncated to at most n elements.
// After n elements have been yielded the parent is no longer pulled, which
// makes Limit the bounding operator for infinite sources.
//
// Parameters:
//   n: The maximum number of elements to yield.
//
// Returns:
//   Stream[T]: The truncated stream.
func (s Stream[T]) Limit(n int) Stream[T] {
	remaining := n
	return fromPull(func() (T, bool) {
		if remaining <= 0 {
			var zero T
			return zero, false
		}
		v, ok := s.next()
		if ok {
			remaining--
		}
		return v, ok
	})
}

// Map returns a stream applying fn to each element of the parent.
// It is a package-level function because Go methods cannot introduce new type
// parameters; same-type mappings may equally be expressed through it.
//
// Parameters:
//   s: The parent stream.
//   fn: The mapping function.
//
// Returns:
//   Stream[Out]: The mapped stream.
func Map[In, Out any](s Stream[In], fn func(In) Out) Stream[Out] {
	return fromPull(func() (Out, bool) {
		v, ok := s.next()
		if !ok {
			var zero Out
			return zero, false
		}
		return fn(v), true
	})
}
