package bench

import (
	"funcflow/internal/textpipe"
	"funcflow/pkg/stream"
)

// ============================================================================
// COMPUTATION VARIANTS
// ============================================================================
//
// Both variants implement the same contract as textpipe.Evaluate minus the
// observation callback: sum the character lengths of all qualifying entries
// after trimming and lowercasing. Producing identical results for identical
// input is the behavioral property the harness verifies.

// SumLoop is the iterative variant: an explicit sequential traversal with a
// running sum.
func SumLoop(input []*string) int {
	sum := 0
	for _, s := range input {
		if !textpipe.Qualifies(s) {
			continue
		}
		sum += textpipe.Length(textpipe.Normalize(*s))
	}
	return sum
}

// SumStream is the declarative variant: a composed lazy pipeline of
// filter -> map(normalize) -> map(length) -> sum.
func SumStream(input []*string) int {
	qualifying := stream.FromSlice(input).Filter(textpipe.Qualifies)
	normalized := stream.Map(qualifying, func(s *string) string { return textpipe.Normalize(*s) })
	return stream.Sum(stream.Map(normalized, textpipe.Length))
}
