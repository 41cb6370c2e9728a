// Package textio provides small writer combinators for line-oriented
// command output: error-latching, line-chunked buffering, and per-line
// prefixing.
package textio

import (
	"bytes"
	"io"
)

// ErrWriter wraps a writer, latching its first error and suppressing
// all writes after it.
type ErrWriter struct {
	io.Writer
	Err error
}

// Write passes through to Writer while Err is nil, retaining any
// returned error.
func (ew *ErrWriter) Write(p []byte) (n int, err error) {
	if ew.Err == nil {
		n, ew.Err = ew.Writer.Write(p)
	}
	return n, ew.Err
}

// LineBuffer accumulates writes and flushes them to To in whole-line
// chunks, so interleaved writers never split a line. Example use:
//
//	var buf LineBuffer
//	buf.To = os.Stdout
//	for _, thing := range things {
//		fmt.Fprintln(&buf, thing)
//		buf.MaybeFlush()
//	}
//	buf.Flush()
type LineBuffer struct {
	To io.Writer
	bytes.Buffer
}

// Flush writes all buffered content to To, partial final line included.
func (buf *LineBuffer) Flush() error {
	_, err := buf.WriteTo(buf.To)
	return err
}

// MaybeFlush writes buffered content through the last terminated line,
// keeping any partial trailer buffered.
func (buf *LineBuffer) MaybeFlush() error {
	b := buf.Bytes()
	i := bytes.LastIndexByte(b, '\n')
	if i < 0 {
		return nil
	}
	n, err := buf.To.Write(b[:i+1])
	buf.Next(n)
	return err
}

// PrefixWriter returns a writer that prepends prefix to every line
// written through it. The caller SHOULD close it to flush any partial
// final line.
func PrefixWriter(prefix string, w io.Writer) io.WriteCloser {
	p := &prefixer{prefix: prefix}
	p.buf.To = w
	return p
}

type prefixer struct {
	buf    LineBuffer
	prefix string
}

func (p *prefixer) Close() error { return p.buf.Flush() }

func (p *prefixer) Write(b []byte) (n int, err error) {
	for len(b) > 0 {
		if i := p.buf.Len() - 1; i < 0 || p.buf.Bytes()[i] == '\n' {
			p.buf.WriteString(p.prefix)
		}
		line := b
		if i := bytes.IndexByte(b, '\n'); i >= 0 {
			line, b = b[:i+1], b[i+1:]
		} else {
			b = nil
		}
		m, _ := p.buf.Write(line)
		n += m
	}
	return n, p.buf.MaybeFlush()
}

// Lines calls next around an internal LineBuffer until it returns
// false, flushing whole lines after every call and everything at the
// end. Iteration stops early once a write error is encountered; the
// first such error is returned.
func Lines(to io.Writer, next func(w io.Writer, flush func()) bool) error {
	ew, _ := to.(*ErrWriter)
	if ew == nil {
		ew = &ErrWriter{Writer: to}
	}
	var buf LineBuffer
	buf.To = ew
	for ew.Err == nil && next(&buf, func() { buf.Flush() }) {
		buf.MaybeFlush()
	}
	buf.Flush()
	return ew.Err
}
