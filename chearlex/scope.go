package chearlex

// ScopeStack tracks currently open indentation levels within one
// tokenization pass. It is logically a stack of previously seen
// indentation counts, non-decreasing from bottom to top, empty only at
// the top level.
//
// It is not safe to share a ScopeStack between concurrent passes.
type ScopeStack struct {
	levels  []int
	bounded bool
}

// NewScopeStack returns a stack that uses backing for its levels and
// refuses to grow past its capacity, surfacing ErrScopeOverflow
// instead of allocating. The zero ScopeStack grows without bound.
func NewScopeStack(backing []int) ScopeStack {
	return ScopeStack{levels: backing[:0], bounded: true}
}

// Reset clears all open levels, preparing the stack for a new pass.
func (st *ScopeStack) Reset() { st.levels = st.levels[:0] }

// Len returns how many levels are currently open.
func (st *ScopeStack) Len() int { return len(st.levels) }

func (st *ScopeStack) top() int {
	if n := len(st.levels); n > 0 {
		return st.levels[n-1]
	}
	return 0
}

// advance compares a line's indentation count against the open levels,
// reporting levels entered (enter > 0) or closed (exit > 0); at most
// one of the two is nonzero.
//
// Well-formed input increases one level at a time, but larger jumps
// are not an error here: the actual delta is reported and downstream
// consumers decide what to make of it. When a dedent lands between two
// open levels, the levels above are closed and the new count becomes
// the current top without an enter being reported.
func (st *ScopeStack) advance(n int) (enter, exit int, err error) {
	t := st.top()
	switch {
	case n > t:
		if st.bounded && len(st.levels) == cap(st.levels) {
			return 0, 0, ErrScopeOverflow
		}
		st.levels = append(st.levels, n)
		return n - t, 0, nil

	case n < t:
		for len(st.levels) > 0 && st.top() > n {
			st.levels = st.levels[:len(st.levels)-1]
		}
		if st.top() < n {
			// capacity is available: at least one level was just popped
			st.levels = append(st.levels, n)
		}
		return 0, t - n, nil
	}
	return 0, 0, nil
}

// flush closes every still-open level, as if a final top-level line
// had been seen. Guarantees the stack is empty afterward, for any
// finite input.
func (st *ScopeStack) flush() (exit int) {
	exit = st.top()
	st.levels = st.levels[:0]
	return exit
}
