package chearlex

import "fmt"

// Span is a half-open [start, end) byte range into a source buffer.
// Spans never own bytes: resolving one against the buffer it was taken
// from is a zero-copy slice. A span remains valid for as long as that
// buffer does.
type Span struct{ start, end int }

// SpanOf constructs a span over [start, end).
// Panics if end < start or start < 0.
func SpanOf(start, end int) Span {
	if start < 0 || end < start {
		panic(fmt.Sprintf("invalid span range [%v:%v]", start, end))
	}
	return Span{start, end}
}

// Start returns the span start offset.
func (sp Span) Start() int { return sp.start }

// End returns the span end offset.
func (sp Span) End() int { return sp.end }

// Len returns the span byte length.
func (sp Span) Len() int { return sp.end - sp.start }

// Empty returns true if the span references no bytes.
func (sp Span) Empty() bool { return sp.end == sp.start }

// Bytes resolves the span against src, the buffer it was taken from.
// The returned slice aliases src; no bytes are copied.
func (sp Span) Bytes(src []byte) []byte { return src[sp.start:sp.end] }

// Text returns a string copy of the span bytes within src.
func (sp Span) Text(src []byte) string { return string(sp.Bytes(src)) }

// Format writes the span under the fmt.Printf family as "@start:end".
func (sp Span) Format(f fmt.State, _ rune) {
	fmt.Fprintf(f, "@%v:%v", sp.start, sp.end)
}

func isLineSpace(c byte) bool { return c == ' ' || c == '\t' }

func trimLeft(src []byte, sp Span) Span {
	for sp.start < sp.end && isLineSpace(src[sp.start]) {
		sp.start++
	}
	return sp
}

func trimRight(src []byte, sp Span) Span {
	for sp.end > sp.start && isLineSpace(src[sp.end-1]) {
		sp.end--
	}
	return sp
}

func trimSpace(src []byte, sp Span) Span {
	return trimRight(src, trimLeft(src, sp))
}
