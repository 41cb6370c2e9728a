package chearlex

import "bytes"

// lineTerminator ends a line; an optional carriageReturn before it is
// excluded from the yielded span.
const (
	lineTerminator = '\n'
	carriageReturn = '\r'
)

// cursor walks a source buffer one line at a time, yielding zero-copy
// spans between terminators. It is a pure function of its offset: any
// byte sequence is valid input.
type cursor struct {
	src    []byte
	offset int
}

// next returns the span of the next line, terminator excluded, and
// advances past it. A buffer ending exactly at a terminator yields no
// further line, not even an empty one; trailing bytes after the last
// terminator yield one final unterminated line.
func (c *cursor) next() (line Span, ok bool) {
	if c.offset >= len(c.src) {
		return Span{}, false
	}
	start := c.offset
	end := len(c.src)
	if i := bytes.IndexByte(c.src[start:], lineTerminator); i >= 0 {
		end = start + i
		c.offset = end + 1
	} else {
		c.offset = end
	}
	if end > start && c.src[end-1] == carriageReturn {
		end--
	}
	return Span{start, end}, true
}
