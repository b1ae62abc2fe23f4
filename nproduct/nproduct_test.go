package nproduct_test

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/muir/ntext/nproduct"
)

type recorder struct {
	visits [][]int
	calls  []string
	// breakBefore stops the loop of a dimension when its index reaches
	// the given value
	breakBefore map[int]int
	breakAfter  map[int]int
}

func (r *recorder) BeforeDimension(s *nproduct.State) bool {
	r.calls = append(r.calls, fmt.Sprintf("B%d:%v", s.Dimension(), s.Indices()))
	if stop, ok := r.breakBefore[s.Dimension()]; ok && s.Index(s.Dimension()) == stop {
		return false
	}
	if s.IsInnermost() {
		r.visits = append(r.visits, s.Indices())
	}
	return true
}

func (r *recorder) AfterDimension(s *nproduct.State) bool {
	r.calls = append(r.calls, fmt.Sprintf("A%d:%v", s.Dimension(), s.Indices()))
	if stop, ok := r.breakAfter[s.Dimension()]; ok && s.Index(s.Dimension()) == stop {
		return false
	}
	return true
}

func lexicographic(sizes []int) [][]int {
	var all [][]int
	var gen func(prefix []int)
	gen = func(prefix []int) {
		if len(prefix) == len(sizes) {
			all = append(all, append([]int(nil), prefix...))
			return
		}
		for i := 0; i < sizes[len(prefix)]; i++ {
			gen(append(prefix, i))
		}
	}
	gen(nil)
	return all
}

func TestWalkVisitsEveryTupleInOrder(t *testing.T) {
	t.Parallel()
	cases := [][]int{
		{1},
		{5},
		{2, 2},
		{2, 3},
		{3, 1, 4},
		{2, 2, 2, 2},
	}
	for _, sizes := range cases {
		sizes := sizes
		t.Run(fmt.Sprint(sizes), func(t *testing.T) {
			t.Parallel()
			var r recorder
			nproduct.Walk(sizes, &r)
			assert.Equal(t, nproduct.Count(sizes), len(r.visits), "visit count")
			if diff := cmp.Diff(lexicographic(sizes), r.visits); diff != "" {
				t.Errorf("visit order (-want +got):\n%s", diff)
			}
		})
	}
}

func TestWalkHookSequence(t *testing.T) {
	t.Parallel()
	var r recorder
	nproduct.Walk([]int{2, 2}, &r)
	want := []string{
		"B0:[0 0]",
		"B1:[0 0]", "A1:[0 0]",
		"B1:[0 1]", "A1:[0 1]",
		"A0:[0 0]",
		"B0:[1 0]",
		"B1:[1 0]", "A1:[1 0]",
		"B1:[1 1]", "A1:[1 1]",
		"A0:[1 0]",
	}
	if diff := cmp.Diff(want, r.calls); diff != "" {
		t.Errorf("hooks (-want +got):\n%s", diff)
	}
}

func TestWalkRankZero(t *testing.T) {
	t.Parallel()
	var before, after int
	nproduct.Walk(nil, nproduct.ProcessorFuncs{
		Before: func(s *nproduct.State) bool {
			before++
			assert.True(t, s.IsInnermost())
			assert.True(t, s.IsFirst())
			assert.True(t, s.IsLast())
			assert.Equal(t, -1, s.Dimension())
			return true
		},
		After: func(*nproduct.State) bool {
			after++
			return true
		},
	})
	assert.Equal(t, 1, before)
	assert.Equal(t, 1, after)
	assert.Equal(t, 1, nproduct.Count(nil))
}

func TestWalkEmptyDimensions(t *testing.T) {
	t.Parallel()
	for _, sizes := range [][]int{{0}, {-3}, {2, 0}, {0, 5}, {3, -1, 2}} {
		var r recorder
		nproduct.Walk(sizes, &r)
		assert.Empty(t, r.visits, "%v", sizes)
		assert.Equal(t, 0, nproduct.Count(sizes))
	}

	// the outer loop of {2, 0} still runs
	var r recorder
	nproduct.Walk([]int{2, 0}, &r)
	assert.Equal(t, []string{"B0:[0 0]", "A0:[0 0]", "B0:[1 0]", "A0:[1 0]"}, r.calls)
}

func TestWalkBreakOnlyStopsCurrentDimension(t *testing.T) {
	t.Parallel()
	r := recorder{breakBefore: map[int]int{1: 2}}
	nproduct.Walk([]int{2, 4}, &r)
	assert.Equal(t, [][]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}}, r.visits)

	r = recorder{breakAfter: map[int]int{0: 0}}
	nproduct.Walk([]int{3, 2}, &r)
	assert.Equal(t, [][]int{{0, 0}, {0, 1}}, r.visits)
}

func TestFirstAndLast(t *testing.T) {
	t.Parallel()
	var got []string
	nproduct.Walk([]int{3}, nproduct.ProcessorFuncs{
		Before: func(s *nproduct.State) bool {
			got = append(got, fmt.Sprintf("%d:%v:%v", s.Index(0), s.IsFirst(), s.IsLast()))
			return true
		},
	})
	assert.Equal(t, []string{"0:true:false", "1:false:false", "2:false:true"}, got)
}

type shifted struct{}

func (shifted) Rank() int            { return 2 }
func (shifted) LowerBound(d int) int { return []int{1, -2}[d] }
func (shifted) Length(d int) int     { return 2 }

func TestWalkArrayLowerBounds(t *testing.T) {
	t.Parallel()
	var coords [][]int
	nproduct.WalkArray(shifted{}, nproduct.ProcessorFuncs{
		Before: func(s *nproduct.State) bool {
			if s.IsInnermost() {
				coords = append(coords, s.Coordinates())
			}
			return true
		},
	})
	assert.Equal(t, [][]int{{1, -2}, {1, -1}, {2, -2}, {2, -1}}, coords)
}
