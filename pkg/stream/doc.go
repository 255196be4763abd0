// Package stream provides lazy, single-pass, pull-based sequences built on Go generics.
//
// A Stream is a blueprint over a sequence of elements: no work happens until a
// terminal operator (ForEach, Count, Collect, Reduce, Sum) pulls values through
// the chain. Intermediate operators (Filter, Map, Peek, Limit) wrap the parent
// stream and evaluate one element at a time, so side effects registered with
// Peek fire strictly in input order, interleaved with element production.
//
// Streams may be finite (Of, FromSlice) or infinite (Iterate); infinite streams
// must be bounded with Limit before a terminal operator is applied. A stream is
// consumed by pulling: once a terminal operator has run, the stream is
// exhausted and yields nothing further. Streams are not restartable and not
// safe for concurrent use.
//
// Basic usage involves creating a source, applying transformations, and
// consuming the result with a terminal operator:
//
//	total := stream.Sum(stream.Map(
//		stream.Of("  a ", "bb").Filter(notBlank),
//		func(s string) int { return len(s) },
//	))
package stream
