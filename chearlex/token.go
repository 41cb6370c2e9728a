package chearlex

import "errors"

// Kind identifies the semantic class of a lexed token.
type Kind int

// Kind constants for every token the lexer produces.
const (
	noKind Kind = iota // 0 value should never be seen by user
	ScopeEnter
	ScopeExit
	LineComment
	BlockComment
	LineOthertongue
	BlockOthertongue
	Simplex
	Complex
	Attacher
)

// Token is the default concrete token representation. It never owns
// source bytes: all content is referenced through spans into the
// buffer the lexer was run over.
//
// Which fields are meaningful depends on Kind:
//   - ScopeEnter, ScopeExit: Delta counts levels opened or closed
//   - Attacher: Label and Content
//   - BlockComment, BlockOthertongue: Lines holds the raw captured lines
//   - everything else: Content
type Token struct {
	Kind    Kind
	Delta   int
	Label   Span
	Content Span
	Lines   []Span
}

// Builder constructs tokens of some concrete representation from lexed
// spans. The lexer is polymorphic over it so that alternate token
// storage (packed structs, id-interned tables) can be substituted
// without touching lexing logic.
type Builder[T any] interface {
	ScopeEnter(delta int) T
	ScopeExit(levels int) T
	LineComment(body Span) T
	BlockComment(lines []Span) T
	LineOthertongue(content Span) T
	BlockOthertongue(lines []Span) T
	Simplex(content Span) T
	Complex(content Span) T
	Attacher(label, content Span) T
}

// Queue is the append-only sink the lexer produces tokens into.
// Push MUST retain production order; a failed push aborts the pass,
// since silently dropped tokens would corrupt downstream structure.
type Queue[T any] interface {
	Push(T) error
}

// ErrQueueFull is returned by FixedQueue.Push when the backing array
// is exhausted.
var ErrQueueFull = errors.New("chearlex: token queue full")

// ErrScopeOverflow is returned by a bounded lexer when input nests
// deeper than the caller-provided depth stack allows.
var ErrScopeOverflow = errors.New("chearlex: scope depth stack full")

// TokenBuilder is the default Builder, producing Token values.
type TokenBuilder struct{}

func (TokenBuilder) ScopeEnter(delta int) Token { return Token{Kind: ScopeEnter, Delta: delta} }
func (TokenBuilder) ScopeExit(levels int) Token { return Token{Kind: ScopeExit, Delta: levels} }

func (TokenBuilder) LineComment(body Span) Token {
	return Token{Kind: LineComment, Content: body}
}

func (TokenBuilder) BlockComment(lines []Span) Token {
	return Token{Kind: BlockComment, Lines: lines}
}

func (TokenBuilder) LineOthertongue(content Span) Token {
	return Token{Kind: LineOthertongue, Content: content}
}

func (TokenBuilder) BlockOthertongue(lines []Span) Token {
	return Token{Kind: BlockOthertongue, Lines: lines}
}

func (TokenBuilder) Simplex(content Span) Token { return Token{Kind: Simplex, Content: content} }
func (TokenBuilder) Complex(content Span) Token { return Token{Kind: Complex, Content: content} }

func (TokenBuilder) Attacher(label, content Span) Token {
	return Token{Kind: Attacher, Label: label, Content: content}
}

// SliceQueue is a growable Queue backed by an ordinary slice.
type SliceQueue[T any] struct {
	Tokens []T
}

// Push appends tok; it never fails.
func (q *SliceQueue[T]) Push(tok T) error {
	q.Tokens = append(q.Tokens, tok)
	return nil
}

// Reset discards all queued tokens, retaining the backing array for reuse.
func (q *SliceQueue[T]) Reset() { q.Tokens = q.Tokens[:0] }

// FixedQueue is a Queue over a caller-provided backing array that
// never grows. It exists for no-allocation environments; overflow
// surfaces as ErrQueueFull rather than silent loss.
type FixedQueue[T any] struct {
	tokens []T
}

// NewFixedQueue returns a queue that fills backing up to its capacity.
func NewFixedQueue[T any](backing []T) *FixedQueue[T] {
	return &FixedQueue[T]{tokens: backing[:0]}
}

// Push appends tok, or returns ErrQueueFull once capacity is reached.
func (q *FixedQueue[T]) Push(tok T) error {
	if len(q.tokens) == cap(q.tokens) {
		return ErrQueueFull
	}
	q.tokens = append(q.tokens, tok)
	return nil
}

// Tokens returns the queued tokens in production order.
func (q *FixedQueue[T]) Tokens() []T { return q.tokens }

// Reset empties the queue, retaining the backing array.
func (q *FixedQueue[T]) Reset() { q.tokens = q.tokens[:0] }
