package chearlex_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chearmyp/lexer/chearlex"
)

func TestToken_format(t *testing.T) {
	src := []byte("name: ABC")
	tokens, err := chearlex.Tokenize(src)
	assert.NoError(t, err)
	assert.Len(t, tokens, 1)
	assert.Equal(t, "Attacher@0:4=@6:9", fmt.Sprintf("%v", tokens[0]))

	assert.Equal(t, "ScopeEnter+2",
		fmt.Sprintf("%v", chearlex.TokenBuilder{}.ScopeEnter(2)))
	assert.Equal(t, "ScopeExit-1",
		fmt.Sprintf("%v", chearlex.TokenBuilder{}.ScopeExit(1)))
	assert.Equal(t, "Complex@0:5",
		fmt.Sprintf("%v", chearlex.TokenBuilder{}.Complex(chearlex.SpanOf(0, 5))))
	assert.Equal(t, "BlockComment*2",
		fmt.Sprintf("%v", chearlex.TokenBuilder{}.BlockComment([]chearlex.Span{{}, {}})))
}

func TestKind_format(t *testing.T) {
	for _, tc := range []struct {
		kind chearlex.Kind
		out  string
	}{
		{chearlex.ScopeEnter, "ScopeEnter"},
		{chearlex.ScopeExit, "ScopeExit"},
		{chearlex.LineComment, "LineComment"},
		{chearlex.BlockComment, "BlockComment"},
		{chearlex.LineOthertongue, "LineOthertongue"},
		{chearlex.BlockOthertongue, "BlockOthertongue"},
		{chearlex.Simplex, "Simplex"},
		{chearlex.Complex, "Complex"},
		{chearlex.Attacher, "Attacher"},
		{chearlex.Kind(99), "InvalidKind99"},
	} {
		assert.Equal(t, tc.out, fmt.Sprintf("%v", tc.kind))
	}
}

func TestSpan(t *testing.T) {
	src := []byte("hello world")
	sp := chearlex.SpanOf(6, 11)
	assert.Equal(t, 6, sp.Start())
	assert.Equal(t, 11, sp.End())
	assert.Equal(t, 5, sp.Len())
	assert.False(t, sp.Empty())
	assert.Equal(t, "world", sp.Text(src))
	assert.Equal(t, "@6:11", fmt.Sprintf("%v", sp))

	assert.True(t, chearlex.SpanOf(3, 3).Empty())
	assert.Panics(t, func() { chearlex.SpanOf(4, 2) })
}
