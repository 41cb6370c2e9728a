package chearlex

// indentMarker is the byte counted as one unit of indentation.
const indentMarker = '\t'

// countIndent counts contiguous indentation markers at the start of
// line, returning the count and the span where content begins.
//
// A line consisting entirely of markers (or of nothing) reports a
// count of zero with an empty content span: indentation with no
// content to attach to never opens a scope, it only ever closes back
// toward the top level. Without this rule a trailing "\t\t" at end of
// input would leave the scope resolver waiting forever for content
// that never arrives.
func countIndent(src []byte, line Span) (count int, content Span) {
	i := line.start
	for i < line.end && src[i] == indentMarker {
		i++
	}
	if i == line.end {
		return 0, Span{line.end, line.end}
	}
	return i - line.start, Span{i, line.end}
}
