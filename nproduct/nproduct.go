/*

Package nproduct enumerates the outer product of the dimensions of
a rectangular array: every coordinate tuple, in row-major order.

The walk does not produce output itself.  Instead it calls a Processor
before and after each index of each dimension.  The Processor is handed
the current State so that it can ask where it is: which dimension is being
iterated, whether that is the innermost dimension, and whether the current
index is the first or the last one of its loop.

For a 2x3 array the calls are:

	Before(d=0,i=0)
		Before(d=1,i=0) After(d=1,i=0)
		Before(d=1,i=1) After(d=1,i=1)
		Before(d=1,i=2) After(d=1,i=2)
	After(d=0,i=0)
	Before(d=0,i=1)
		...
	After(d=0,i=1)

Returning false from either hook stops the loop of the current dimension.
Outer dimensions carry on.

*/
package nproduct

// Array describes the shape of a rectangular array.  Dimensions are
// numbered from 0, the outermost.
type Array interface {
	Rank() int
	LowerBound(dimension int) int
	Length(dimension int) int
}

// Processor receives the hooks of a walk.
type Processor interface {
	BeforeDimension(state *State) bool
	AfterDimension(state *State) bool
}

// ProcessorFuncs adapts a pair of functions to Processor.  A nil function
// always continues.
type ProcessorFuncs struct {
	Before func(*State) bool
	After  func(*State) bool
}

var _ Processor = ProcessorFuncs{}

func (p ProcessorFuncs) BeforeDimension(state *State) bool {
	if p.Before == nil {
		return true
	}
	return p.Before(state)
}

func (p ProcessorFuncs) AfterDimension(state *State) bool {
	if p.After == nil {
		return true
	}
	return p.After(state)
}

// Walk visits every coordinate tuple of an array whose dimensions
// have the given sizes and whose lower bounds are all zero.
func Walk(sizes []int, p Processor) {
	walk(newState(sizes, nil), p)
}

// WalkArray visits every coordinate tuple of a.
func WalkArray(a Array, p Processor) {
	rank := a.Rank()
	sizes := make([]int, rank)
	lower := make([]int, rank)
	for d := 0; d < rank; d++ {
		sizes[d] = a.Length(d)
		lower[d] = a.LowerBound(d)
	}
	walk(newState(sizes, lower), p)
}

// Count returns the number of coordinate tuples that a walk over
// sizes visits.
func Count(sizes []int) int {
	n := 1
	for _, size := range sizes {
		if size <= 0 {
			return 0
		}
		n *= size
	}
	return n
}

func walk(s *State, p Processor) {
	if len(s.sizes) == 0 {
		// A rank-zero array still holds one element
		s.dimension = -1
		if p.BeforeDimension(s) {
			p.AfterDimension(s)
		}
		return
	}
	s.recurse(0, p)
}

func (s *State) recurse(dimension int, p Processor) {
	if dimension >= len(s.sizes) {
		return
	}
	for i := 0; i < s.sizes[dimension]; i++ {
		s.dimension = dimension
		s.indices[dimension] = i
		if !p.BeforeDimension(s) {
			break
		}
		s.recurse(dimension+1, p)
		s.dimension = dimension
		s.indices[dimension] = i
		if !p.AfterDimension(s) {
			break
		}
	}
	s.indices[dimension] = 0
}
