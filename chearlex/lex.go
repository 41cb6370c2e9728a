// Package chearlex tokenizes Chearmyp, an indentation-sensitive markup
// language, in a single forward pass over an in-memory buffer.
//
// The lexer never copies source bytes: every token references the
// original buffer through Span offsets. It also never fails on
// malformed input; ambiguous syntax degrades to the least specific
// token kind and classification precision is left to downstream
// parsers. The only errors a pass can surface are caller-contract
// violations: a full fixed-capacity queue (ErrQueueFull) or an
// exhausted bounded depth stack (ErrScopeOverflow).
//
// Example usage:
//
//	tokens, err := chearlex.Tokenize(src)
//
// or, generically over a custom token representation and sink:
//
//	err := chearlex.Lex(src, myBuilder, myQueue)
package chearlex

// Lexer drives one tokenization pass: the cursor yields a line, the
// indentation tracker counts its depth, the scope stack resolves
// enter/exit tokens, and the classifier emits at most one content
// token. Scope tokens always precede the content token of the line
// that produced them; downstream parsers depend on that order.
//
// A Lexer may be driven incrementally with Step, one line per call,
// with the depth stack persisting between calls; Lex runs the pass to
// completion. It is not safe to share a Lexer between goroutines.
type Lexer[T any] struct {
	src   []byte
	bld   Builder[T]
	cur   cursor
	scope ScopeStack
	done  bool
}

// New returns a Lexer over src producing tokens through bld.
// The source buffer is borrowed, never mutated, and must outlive every
// token produced from it.
func New[T any](src []byte, bld Builder[T]) *Lexer[T] {
	return &Lexer[T]{src: src, bld: bld, cur: cursor{src: src}}
}

// NewBounded is New with a caller-provided depth stack backing, for
// environments that must not allocate: input nesting deeper than
// cap(depth) surfaces as ErrScopeOverflow.
func NewBounded[T any](src []byte, bld Builder[T], depth []int) *Lexer[T] {
	lx := New(src, bld)
	lx.scope = NewScopeStack(depth)
	return lx
}

// Reset prepares the lexer for a new pass over src, reusing the depth
// stack backing.
func (lx *Lexer[T]) Reset(src []byte) {
	lx.src = src
	lx.cur = cursor{src: src}
	lx.scope.Reset()
	lx.done = false
}

// Depth returns how many scopes are currently open; useful when
// driving the lexer incrementally.
func (lx *Lexer[T]) Depth() int { return lx.scope.Len() }

// Step consumes one source line, pushing the tokens it produces into
// q. Once input is exhausted it performs the final scope flush,
// closing any still-open levels, and reports false. A non-nil error
// comes only from q or from a bounded depth stack; the pass must not
// be continued after one.
func (lx *Lexer[T]) Step(q Queue[T]) (more bool, err error) {
	line, ok := lx.cur.next()
	if !ok {
		if !lx.done {
			lx.done = true
			if exit := lx.scope.flush(); exit > 0 {
				err = q.Push(lx.bld.ScopeExit(exit))
			}
		}
		return false, err
	}

	count, content := countIndent(lx.src, line)
	enter, exit, err := lx.scope.advance(count)
	if err != nil {
		return false, err
	}
	if enter > 0 {
		if err := q.Push(lx.bld.ScopeEnter(enter)); err != nil {
			return false, err
		}
	}
	if exit > 0 {
		if err := q.Push(lx.bld.ScopeExit(exit)); err != nil {
			return false, err
		}
	}

	class, label, body := classify(lx.src, content)
	switch class {
	case classNone:
		return true, nil
	case classLineComment:
		err = q.Push(lx.bld.LineComment(body))
	case classBlockComment:
		err = q.Push(lx.bld.BlockComment(lx.captureBlock(count, commentMarker)))
	case classLineOthertongue:
		err = q.Push(lx.bld.LineOthertongue(body))
	case classBlockOthertongue:
		err = q.Push(lx.bld.BlockOthertongue(lx.captureBlock(count, othertongueMarker)))
	case classAttacher:
		err = q.Push(lx.bld.Attacher(label, body))
	case classSimplex:
		err = q.Push(lx.bld.Simplex(body))
	default:
		err = q.Push(lx.bld.Complex(body))
	}
	return err == nil, err
}

// captureBlock consumes raw lines after a block opener until a closing
// marker line at the opener's depth, or end of input. Captured lines
// keep their bytes verbatim, indentation included, terminators
// excluded; they do not pass through the scope resolver.
func (lx *Lexer[T]) captureBlock(depth int, marker byte) []Span {
	var lines []Span
	for {
		line, ok := lx.cur.next()
		if !ok || closesBlock(lx.src, line, depth, marker) {
			return lines
		}
		lines = append(lines, line)
	}
}

// Lex runs the pass to completion, ending with the final scope flush.
func (lx *Lexer[T]) Lex(q Queue[T]) error {
	for {
		more, err := lx.Step(q)
		if err != nil {
			return err
		}
		if !more {
			return nil
		}
	}
}

// Lex tokenizes src into q, constructing tokens through bld.
func Lex[T any](src []byte, bld Builder[T], q Queue[T]) error {
	return New(src, bld).Lex(q)
}

// Tokenize is a convenience over Lex using the default Token
// representation and a growable queue. The returned tokens reference
// src; they are valid for as long as src is.
func Tokenize(src []byte) ([]Token, error) {
	var q SliceQueue[Token]
	err := Lex(src, TokenBuilder{}, &q)
	return q.Tokens, err
}
