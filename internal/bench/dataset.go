package bench

import (
	"fmt"

	"github.com/samber/lo"
)

// DefaultSize is the number of elements in the synthetic benchmark dataset.
const DefaultSize = 10_000

// blankEvery controls which indexes hold a whitespace-only placeholder.
const blankEvery = 10

// Dataset generates the synthetic input sequence for the benchmark: element i
// is a whitespace-only placeholder when i is a multiple of ten, otherwise the
// string "  Abc<i>  " with two spaces of padding on each side. The slice is
// generated once per call and must be treated as read-only by consumers.
func Dataset(n int) []*string {
	return lo.Times(n, func(i int) *string {
		if i%blankEvery == 0 {
			return lo.ToPtr("   ")
		}
		return lo.ToPtr(fmt.Sprintf("  Abc%d  ", i))
	})
}
