package chearlex

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCursor(t *testing.T) {
	lines := func(src string) (out []string) {
		c := cursor{src: []byte(src)}
		for {
			line, ok := c.next()
			if !ok {
				return out
			}
			out = append(out, line.Text([]byte(src)))
		}
	}

	t.Run("terminated buffer yields no trailing empty line", func(t *testing.T) {
		assert.Equal(t, []string{"a", "b"}, lines("a\nb\n"))
	})

	t.Run("unterminated trailer yields one final line", func(t *testing.T) {
		assert.Equal(t, []string{"a", "b"}, lines("a\nb"))
	})

	t.Run("empty buffer yields nothing", func(t *testing.T) {
		assert.Equal(t, []string(nil), lines(""))
	})

	t.Run("interior empty lines are preserved", func(t *testing.T) {
		assert.Equal(t, []string{"a", "", "b"}, lines("a\n\nb"))
	})

	t.Run("carriage return excluded", func(t *testing.T) {
		assert.Equal(t, []string{"a", "b"}, lines("a\r\nb"))
	})
}

func TestCountIndent(t *testing.T) {
	for _, tc := range []struct {
		name    string
		in      string
		count   int
		content string
	}{
		{name: "no indent", in: "a", count: 0, content: "a"},
		{name: "single marker", in: "\ta", count: 1, content: "a"},
		{name: "several markers", in: "\t\t\tbc", count: 3, content: "bc"},
		{name: "empty line", in: "", count: 0, content: ""},
		// indentation with no content never opens a scope
		{name: "markers only", in: "\t\t", count: 0, content: ""},
	} {
		t.Run(tc.name, func(t *testing.T) {
			src := []byte(tc.in)
			count, content := countIndent(src, Span{0, len(src)})
			assert.Equal(t, tc.count, count)
			assert.Equal(t, tc.content, content.Text(src))
		})
	}
}

func TestScopeStack(t *testing.T) {
	type step struct {
		n           int
		enter, exit int
	}
	for _, tc := range []struct {
		name  string
		steps []step
		flush int
	}{
		{
			name:  "stay at top",
			steps: []step{{n: 0}, {n: 0}},
		},
		{
			name:  "single enter and exit",
			steps: []step{{n: 1, enter: 1}, {n: 0, exit: 1}},
		},
		{
			name:  "multi-level dedent in one step",
			steps: []step{{n: 1, enter: 1}, {n: 2, enter: 1}, {n: 0, exit: 2}},
		},
		{
			name:  "jump reports the actual delta",
			steps: []step{{n: 3, enter: 3}},
			flush: 3,
		},
		{
			name: "dedent between levels becomes the new top",
			steps: []step{
				{n: 1, enter: 1},
				{n: 3, enter: 2},
				{n: 2, exit: 1},
			},
			flush: 2,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			var st ScopeStack
			for i, s := range tc.steps {
				enter, exit, err := st.advance(s.n)
				assert.NoError(t, err)
				assert.Equal(t, s.enter, enter, "step %v enter", i)
				assert.Equal(t, s.exit, exit, "step %v exit", i)
			}
			assert.Equal(t, tc.flush, st.flush())
			assert.Equal(t, 0, st.Len())
		})
	}

	t.Run("bounded stack refuses to grow", func(t *testing.T) {
		st := NewScopeStack(make([]int, 0, 1))
		_, _, err := st.advance(1)
		assert.NoError(t, err)
		_, _, err = st.advance(2)
		assert.Equal(t, ErrScopeOverflow, err)
	})
}
