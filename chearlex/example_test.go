package chearlex_test

import (
	"fmt"

	"github.com/chearmyp/lexer/chearlex"
)

func Example() {
	src := []byte(`a complex
	this: is an attacher
	a simplex|
# a closing comment`)

	tokens, _ := chearlex.Tokenize(src)
	for _, tok := range tokens {
		switch tok.Kind {
		case chearlex.ScopeEnter, chearlex.ScopeExit:
			fmt.Printf("%v\n", tok)
		case chearlex.Attacher:
			fmt.Printf("%v %q=%q\n", tok.Kind, tok.Label.Text(src), tok.Content.Text(src))
		default:
			fmt.Printf("%v %q\n", tok.Kind, tok.Content.Text(src))
		}
	}

	// Output:
	// Complex "a complex"
	// ScopeEnter+1
	// Attacher "this"="is an attacher"
	// Simplex "a simplex"
	// ScopeExit-1
	// LineComment "a closing comment"
}

func Example_fixedCapacity() {
	// a pass that must not allocate: caller-owned token backing and
	// depth stack
	src := []byte("task\n\tname: build")
	var tokens [8]chearlex.Token
	q := chearlex.NewFixedQueue(tokens[:0])
	var depth [4]int

	lx := chearlex.NewBounded(src, chearlex.TokenBuilder{}, depth[:0])
	if err := lx.Lex(q); err != nil {
		fmt.Println("lex:", err)
		return
	}
	fmt.Println(len(q.Tokens()), "tokens")

	// Output:
	// 4 tokens
}
