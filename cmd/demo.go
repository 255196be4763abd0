package cmd

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"github.com/samber/lo"

	"funcflow/internal/bench"
	"funcflow/internal/textpipe"
	"funcflow/pkg/funcs"
	"funcflow/pkg/stream"
)

// runDemos executes the fixed demonstration sequence and writes the
// line-oriented results to out. Only the two [perf] timings are
// non-deterministic; every other line is fixed.
func runDemos(out io.Writer, log zerolog.Logger) error {
	demoFunctionValues(out)
	demoPipeline(out, log)
	demoComposition(out)
	if err := runPerf(out, log); err != nil {
		return err
	}
	demoSequencePreview(out)
	return nil
}

// demoFunctionValues shows the three flavors of function value: a literal
// (lambda), a named function used as a value (method reference), and a
// closure over a captured prefix (instance-bound reference).
func demoFunctionValues(out io.Writer) {
	length := funcs.Func[string, int](func(s string) int { return utf8.RuneCountInString(s) })
	norm := funcs.Func[string, string](textpipe.TrimToUpper)
	prefix := "ID:"
	addPrefix := funcs.Func[string, string](func(s string) string { return prefix + s })

	fmt.Fprintf(out, "[lambda] len=%d\n", length("Hello"))
	fmt.Fprintf(out, "[method ref] norm=%s\n", norm("  hello "))
	fmt.Fprintf(out, "[instance ref] prefix=%s\n", addPrefix("123"))
}

// demoPipeline evaluates the fixed mixed input (blank, nil and padded
// entries) with a counting observer.
func demoPipeline(out io.Writer, log zerolog.Logger) {
	input := []*string{lo.ToPtr("  a  "), lo.ToPtr(""), lo.ToPtr(" bb"), nil, lo.ToPtr("CCC ")}

	logged := 0
	sum := textpipe.Evaluate(input, func(s string) {
		logged++
		log.Debug().Str("entry", s).Msg("pipeline observed entry")
	})
	fmt.Fprintf(out, "[pipeline] sum=%d logged=%d\n", sum, logged)
}

// demoComposition contrasts Then (apply left first) with Compose (apply right
// first) over integers and strings.
func demoComposition(out io.Writer) {
	add2 := funcs.Func[int, int](func(x int) int { return x + 2 })
	times3 := funcs.Func[int, int](func(x int) int { return x * 3 })

	a := funcs.Then(add2, times3)(5)    // (5+2)*3 = 21
	b := funcs.Compose(add2, times3)(5) // (5*3)+2 = 17
	fmt.Fprintf(out, "[compose demo #1] %d vs %d\n", a, b)

	trim := funcs.Func[string, string](strings.TrimSpace)
	wrap := funcs.Func[string, string](func(s string) string { return "[" + s + "]" })

	s1 := funcs.Then(trim, wrap)("  hi  ")    // "[hi]"
	s2 := funcs.Compose(trim, wrap)("  hi  ") // "[  hi  ]"
	fmt.Fprintf(out, "[compose demo #2] %s vs %s\n", s1, s2)
}

// runPerf runs the loop-versus-stream benchmark with the real clock.
func runPerf(out io.Writer, log zerolog.Logger) error {
	return bench.New(out, log).Run()
}

// demoSequencePreview prints the first five elements of an infinite counter
// stream, exercising Iterate and Limit.
func demoSequencePreview(out io.Writer) {
	stream.Iterate(0, func(n int) int { return n + 1 }).
		Limit(5).
		ForEach(func(n int) { fmt.Fprintf(out, "%d ", n) })
	fmt.Fprintln(out)
}
