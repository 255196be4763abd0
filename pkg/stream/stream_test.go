package stream

import (
	"reflect"
	"testing"
)

func TestFromSlice_Collect(t *testing.T) {
	got := Collect(FromSlice([]int{1, 2, 3}))
	want := []int{1, 2, 3}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Collect = %v, want %v", got, want)
	}
}

func TestOf_Empty(t *testing.T) {
	if got := Collect(Of[string]()); got != nil {
		t.Errorf("expected nil from empty stream, got %v", got)
	}
}

func TestZeroValueStream_Exhausted(t *testing.T) {
	var s Stream[int]
	if n := s.Count(); n != 0 {
		t.Errorf("zero-value stream counted %d elements", n)
	}
}

func TestFilter(t *testing.T) {
	even := FromSlice([]int{1, 2, 3, 4, 5, 6}).Filter(func(n int) bool { return n%2 == 0 })
	got := Collect(even)
	want := []int{2, 4, 6}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Filter = %v, want %v", got, want)
	}
}

func TestFilter_NoneMatch(t *testing.T) {
	s := FromSlice([]int{1, 3, 5}).Filter(func(n int) bool { return n%2 == 0 })
	if n := s.Count(); n != 0 {
		t.Errorf("expected 0 elements, got %d", n)
	}
}

func TestMap_TypeConversion(t *testing.T) {
	lengths := Map(Of("a", "bb", "ccc"), func(s string) int { return len(s) })
	got := Collect(lengths)
	want := []int{1, 2, 3}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Map = %v, want %v", got, want)
	}
}

func TestPeek_OrderMatchesInput(t *testing.T) {
	var seen []string
	s := Of("x", "y", "z").Peek(func(v string) { seen = append(seen, v) })

	got := Collect(s)
	want := []string{"x", "y", "z"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Collect = %v, want %v", got, want)
	}
	if !reflect.DeepEqual(seen, want) {
		t.Errorf("Peek saw %v, want %v", seen, want)
	}
}

func TestPeek_Lazy(t *testing.T) {
	// Peek must only observe elements that are actually pulled downstream.
	var seen []int
	s := FromSlice([]int{1, 2, 3, 4, 5}).
		Peek(func(v int) { seen = append(seen, v) }).
		Limit(2)

	if n := s.Count(); n != 2 {
		t.Fatalf("expected 2 elements, got %d", n)
	}
	if !reflect.DeepEqual(seen, []int{1, 2}) {
		t.Errorf("Peek saw %v, want [1 2]", seen)
	}
}

func TestPeek_InterleavesWithDownstream(t *testing.T) {
	// The observation for element i fires before element i reaches the
	// terminal, and before element i+1 is produced.
	var events []string
	Of("a", "b").
		Peek(func(v string) { events = append(events, "peek:"+v) }).
		ForEach(func(v string) { events = append(events, "sink:"+v) })

	want := []string{"peek:a", "sink:a", "peek:b", "sink:b"}
	if !reflect.DeepEqual(events, want) {
		t.Errorf("event order = %v, want %v", events, want)
	}
}

func TestIterate_Limit(t *testing.T) {
	s := Iterate(0, func(n int) int { return n + 1 }).Limit(5)
	got := Collect(s)
	want := []int{0, 1, 2, 3, 4}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Iterate.Limit = %v, want %v", got, want)
	}
}

func TestIterate_DoesNotAdvancePastLimit(t *testing.T) {
	calls := 0
	s := Iterate(1, func(n int) int { calls++; return n * 2 }).Limit(3)
	got := Collect(s)
	want := []int{1, 2, 4}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Collect = %v, want %v", got, want)
	}
	if calls != 2 {
		t.Errorf("next called %d times, want 2", calls)
	}
}

func TestLimit_LargerThanStream(t *testing.T) {
	got := Collect(Of(1, 2).Limit(10))
	if !reflect.DeepEqual(got, []int{1, 2}) {
		t.Errorf("got %v, want [1 2]", got)
	}
}

func TestReduce(t *testing.T) {
	product := Reduce(Of(1, 2, 3, 4), 1, func(acc, v int) int { return acc * v })
	if product != 24 {
		t.Errorf("Reduce product = %d, want 24", product)
	}
}

func TestSum(t *testing.T) {
	if got := Sum(Of(1, 2, 3)); got != 6 {
		t.Errorf("Sum = %d, want 6", got)
	}
	if got := Sum(Of[int]()); got != 0 {
		t.Errorf("Sum of empty = %d, want 0", got)
	}
}

func TestSinglePass_NotRestartable(t *testing.T) {
	s := Of(1, 2, 3)
	if n := s.Count(); n != 3 {
		t.Fatalf("first pass counted %d, want 3", n)
	}
	if n := s.Count(); n != 0 {
		t.Errorf("second pass counted %d, want 0", n)
	}
}

func TestComposedPipeline(t *testing.T) {
	// filter -> map -> sum over strings, the shape the demo relies on.
	input := []string{"  a ", "", "bb", "   ", "ccc"}
	notBlank := func(s string) bool { return len(s) > 0 }
	sum := Sum(Map(FromSlice(input).Filter(notBlank), func(s string) int { return len(s) }))
	// "  a " (4) + "bb" (2) + "   " (3) + "ccc" (3)
	if sum != 12 {
		t.Errorf("sum = %d, want 12", sum)
	}
}
