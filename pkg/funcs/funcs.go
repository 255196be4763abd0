// Package funcs provides named function kinds and composition helpers.
//
// Go has no special runtime construct for lambdas or method references:
// a function literal, a named function used as a value, and a closure over a
// bound receiver are all plain function values. This package gives the common
// unary shapes names and adds sequential composition over them.
package funcs

// Func is a unary transformer from T to R.
type Func[T, R any] func(T) R

// Predicate reports whether a value satisfies a condition.
type Predicate[T any] func(T) bool

// Consumer performs a side effect on a value; its result is discarded.
type Consumer[T any] func(T)

// Identity returns the function that yields its argument unchanged.
func Identity[T any]() Func[T, T] {
	return func(v T) T { return v }
}

// Then composes two functions sequentially: the result applies f first, then
// feeds its output to g.
//
//	Then(add2, times3)(5) == times3(add2(5)) == 21
func Then[A, B, C any](f Func[A, B], g Func[B, C]) Func[A, C] {
	return func(a A) C { return g(f(a)) }
}

// Compose composes two functions in reverse order: the result applies g
// first, then feeds its output to f. It is the mirror of Then.
//
//	Compose(add2, times3)(5) == add2(times3(5)) == 17
func Compose[A, B, C any](f Func[B, C], g Func[A, B]) Func[A, C] {
	return func(a A) C { return f(g(a)) }
}
