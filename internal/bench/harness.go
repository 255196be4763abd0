// Package bench compares two equivalent implementations of the
// filter-normalize-sum computation: an explicit loop and a declarative lazy
// stream pipeline. It times one measured pass of each over a fixed synthetic
// dataset and asserts that both produce the identical sum.
package bench

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
)

// Clock supplies the current time for elapsed measurements. Injecting it
// keeps the harness testable without asserting on wall-clock values;
// time.Now is monotonic for duration arithmetic in Go.
type Clock func() time.Time

// Harness runs the loop-versus-stream comparison and reports results to Out.
// Timing numbers are observational only; the computed sums are the contract.
type Harness struct {
	Size    int            // dataset size, DefaultSize if zero
	Warmups int            // discarded passes per variant before measuring
	Clock   Clock          // time source, time.Now if nil
	Out     io.Writer      // destination for the [perf] result lines
	Log     zerolog.Logger // diagnostic logging only
}

// New returns a harness with the fixed demonstration protocol: a 10,000
// element dataset and 5 warm-up passes per variant.
func New(out io.Writer, log zerolog.Logger) *Harness {
	return &Harness{
		Size:    DefaultSize,
		Warmups: 5,
		Clock:   time.Now,
		Out:     out,
		Log:     log,
	}
}

// Run executes the benchmark protocol: generate the dataset once, run both
// variants Warmups times with results discarded, then time a single measured
// pass of each and write one result line per variant. It returns an error if
// the two variants disagree on the sum; this equivalence is the property
// under test, not a side note.
func (h *Harness) Run() error {
	size := h.Size
	if size <= 0 {
		size = DefaultSize
	}
	now := h.Clock
	if now == nil {
		now = time.Now
	}

	data := Dataset(size)
	h.Log.Debug().Int("size", size).Msg("benchmark dataset generated")

	// Warm-up passes mitigate one-time setup costs skewing the single timed
	// measurement. Results are discarded.
	for i := 0; i < h.Warmups; i++ {
		SumLoop(data)
		SumStream(data)
	}
	h.Log.Debug().Int("passes", h.Warmups).Msg("warm-up complete")

	t0 := now()
	loopSum := SumLoop(data)
	t1 := now()
	streamSum := SumStream(data)
	t2 := now()

	fmt.Fprintf(h.Out, "[perf] loop   sum=%d time(ns)=%d\n", loopSum, t1.Sub(t0).Nanoseconds())
	fmt.Fprintf(h.Out, "[perf] stream sum=%d time(ns)=%d\n", streamSum, t2.Sub(t1).Nanoseconds())

	if loopSum != streamSum {
		return fmt.Errorf("variant mismatch: loop sum %d != stream sum %d", loopSum, streamSum)
	}
	return nil
}
