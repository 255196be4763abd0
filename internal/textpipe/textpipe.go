// Package textpipe implements the string-processing pipeline: qualify,
// normalize, observe, and sum character lengths.
package textpipe

import (
	"strings"
	"unicode/utf8"

	"funcflow/pkg/funcs"
	"funcflow/pkg/stream"
)

// Qualifies reports whether an input entry takes part in the pipeline:
// it must be present (non-nil) and non-empty after trimming whitespace.
// Blank and nil entries are silently skipped, never errors.
func Qualifies(s *string) bool {
	return s != nil && strings.TrimSpace(*s) != ""
}

// Normalize trims leading and trailing whitespace and lowercases the result.
// The case fold is locale-independent (strings.ToLower applies the ordinal
// Unicode mapping). Normalize is idempotent: applying it to an already
// normalized string returns the same string.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// TrimToUpper trims whitespace and uppercases the result.
// This is the single-value demo policy; it is independent of the pipeline's
// lowercase normalization, not a shared rule.
func TrimToUpper(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// Length measures a normalized entry in characters (runes), not bytes.
func Length(s string) int {
	return utf8.RuneCountInString(s)
}

// Evaluate computes the sum of character lengths of all qualifying entries in
// input, after normalization. For each qualifying entry, observe is invoked
// exactly once with the normalized value, strictly in input order; its return
// is discarded. A nil observe is treated as a no-op.
//
// The computation is a lazy stream pipeline, so observations interleave with
// element production: filter -> normalize -> peek -> length -> sum.
// input is never mutated, and the result is deterministic given a
// deterministic observer.
func Evaluate(input []*string, observe funcs.Consumer[string]) int {
	if observe == nil {
		observe = func(string) {}
	}
	qualifying := stream.FromSlice(input).Filter(Qualifies)
	normalized := stream.Map(qualifying, func(s *string) string { return Normalize(*s) })
	lengths := stream.Map(normalized.Peek(observe), Length)
	return stream.Sum(lengths)
}
