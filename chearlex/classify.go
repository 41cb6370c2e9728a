package chearlex

// Marker bytes are fixed at compile time to keep classification
// deterministic and free of runtime configuration.
const (
	commentMarker     = '#'
	othertongueMarker = '='
	attacherSeparator = ':'
	simplexMarker     = '|'
	escapeMarker      = '\\'

	// blocks open and close with a line of exactly three marker bytes
	blockMarkerLen = 3
)

// lineClass is the classifier's verdict on a single line's content.
type lineClass int

const (
	classNone lineClass = iota
	classLineComment
	classBlockComment
	classLineOthertongue
	classBlockOthertongue
	classAttacher
	classSimplex
	classComplex
)

// classify inspects a line's content span (indentation already
// stripped) and extracts sub-spans for the recognized class.
//
// Precedence: block comment > line comment > block othertongue > line
// othertongue > attacher > simplex > complex. Anything ambiguous
// degrades to the least specific class rather than failing; every
// non-blank line yields exactly one class.
//
// For classAttacher both label and body are meaningful; for the block
// classes neither is (the producer captures the block's lines); blank
// content yields classNone.
func classify(src []byte, content Span) (class lineClass, label, body Span) {
	content = trimSpace(src, content)
	if content.Empty() {
		return classNone, Span{}, Span{}
	}

	switch src[content.start] {
	case commentMarker:
		if isBlockMarkerLine(src, content, commentMarker) {
			return classBlockComment, Span{}, Span{}
		}
		body = Span{content.start + 1, content.end}
		if !body.Empty() && src[body.start] == ' ' {
			body.start++
		}
		return classLineComment, Span{}, body

	case othertongueMarker:
		if isBlockMarkerLine(src, content, othertongueMarker) {
			return classBlockOthertongue, Span{}, Span{}
		}
		if content.Len() >= 2 && src[content.start+1] == ' ' {
			body = trimLeft(src, Span{content.start + 2, content.end})
			return classLineOthertongue, Span{}, body
		}
	}

	if i := findSeparator(src, content); i >= 0 {
		label = trimRight(src, Span{content.start, i})
		if !label.Empty() {
			body = trimSpace(src, Span{i + 1, content.end})
			return classAttacher, label, body
		}
	}

	if src[content.end-1] == simplexMarker {
		body = trimRight(src, Span{content.start, content.end - 1})
		if !body.Empty() {
			return classSimplex, Span{}, body
		}
	}

	return classComplex, Span{}, content
}

// findSeparator returns the absolute offset of the first unescaped
// attacher separator within content, or -1.
func findSeparator(src []byte, content Span) int {
	for i := content.start; i < content.end; i++ {
		if src[i] == attacherSeparator && (i == content.start || src[i-1] != escapeMarker) {
			return i
		}
	}
	return -1
}

// isBlockMarkerLine reports whether content is exactly three marker
// bytes. A line with anything after the markers does not open a block;
// it degrades to the corresponding line form.
func isBlockMarkerLine(src []byte, content Span, marker byte) bool {
	if content.Len() != blockMarkerLen {
		return false
	}
	for i := content.start; i < content.end; i++ {
		if src[i] != marker {
			return false
		}
	}
	return true
}

// closesBlock reports whether line is a block terminator at the given
// depth: exactly depth indentation markers, then three marker bytes,
// then nothing but trailing space.
func closesBlock(src []byte, line Span, depth int, marker byte) bool {
	count, content := countIndent(src, line)
	if count != depth {
		return false
	}
	content = trimRight(src, content)
	return isBlockMarkerLine(src, content, marker)
}
