package nproduct

// State is the position of a walk.  It is only valid during the hook
// call it was passed to; the walk mutates it in place.
type State struct {
	sizes     []int
	lower     []int
	indices   []int
	dimension int
}

func newState(sizes []int, lower []int) *State {
	s := &State{
		sizes:   make([]int, len(sizes)),
		lower:   make([]int, len(sizes)),
		indices: make([]int, len(sizes)),
	}
	for d, size := range sizes {
		if size > 0 {
			s.sizes[d] = size
		}
	}
	copy(s.lower, lower)
	return s
}

// Rank is the number of dimensions being walked.
func (s *State) Rank() int { return len(s.sizes) }

// Dimension is the dimension whose loop is running.  It is -1 for
// the single visit of a rank-zero array.
func (s *State) Dimension() int { return s.dimension }

// Size returns the length of dimension d.
func (s *State) Size(d int) int { return s.sizes[d] }

// Sizes returns a copy of the dimension lengths.
func (s *State) Sizes() []int {
	return append([]int(nil), s.sizes...)
}

// Index returns the zero-based index of dimension d.  Dimensions
// deeper than the current one report 0.
func (s *State) Index(d int) int { return s.indices[d] }

// Indices returns a copy of the zero-based indices of all dimensions.
func (s *State) Indices() []int {
	return append([]int(nil), s.indices...)
}

// Coordinates returns the indices shifted by the lower bound of
// each dimension.
func (s *State) Coordinates() []int {
	c := make([]int, len(s.indices))
	for d, i := range s.indices {
		c[d] = i + s.lower[d]
	}
	return c
}

// IsInnermost is true when the running loop is the last dimension.
func (s *State) IsInnermost() bool {
	return s.dimension == len(s.sizes)-1
}

// IsFirst is true for the first index of the running loop.
func (s *State) IsFirst() bool {
	if s.dimension < 0 {
		return true
	}
	return s.indices[s.dimension] == 0
}

// IsLast is true for the last index of the running loop.
func (s *State) IsLast() bool {
	if s.dimension < 0 {
		return true
	}
	return s.indices[s.dimension] == s.sizes[s.dimension]-1
}
