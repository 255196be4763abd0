package stream

// ============================================================================
// CORE TYPE
// ============================================================================

// Stream represents a lazy, single-pass sequence of elements.
// It is a thin wrapper around a pull function: each call to the pull function
// produces the next element, or reports exhaustion. Operators build new
// streams by wrapping the parent's pull function, so the whole chain advances
// one element at a time.
//
// The zero value is an exhausted stream.
type Stream[T any] struct {
	pull func() (T, bool)
}

// fromPull wraps a raw pull function in a Stream.
// The pull function must return (zero, false) once exhausted and keep
// returning it on every subsequent call.
func fromPull[T any](pull func() (T, bool)) Stream[T] {
	return Stream[T]{pull: pull}
}

// next advances the stream by one element.
// A nil pull function (zero-value stream) reads as exhausted.
func (s Stream[T]) next() (T, bool) {
	if s.pull == nil {
		var zero T
		return zero, false
	}
	return s.pull()
}
