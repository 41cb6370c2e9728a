package chearlex

import (
	"fmt"
	"io"
)

// Format writes a kind name representing the receiver code.
func (k Kind) Format(f fmt.State, _ rune) {
	switch k {
	case noKind:
		io.WriteString(f, "None")
	case ScopeEnter:
		io.WriteString(f, "ScopeEnter")
	case ScopeExit:
		io.WriteString(f, "ScopeExit")
	case LineComment:
		io.WriteString(f, "LineComment")
	case BlockComment:
		io.WriteString(f, "BlockComment")
	case LineOthertongue:
		io.WriteString(f, "LineOthertongue")
	case BlockOthertongue:
		io.WriteString(f, "BlockOthertongue")
	case Simplex:
		io.WriteString(f, "Simplex")
	case Complex:
		io.WriteString(f, "Complex")
	case Attacher:
		io.WriteString(f, "Attacher")
	default:
		fmt.Fprintf(f, "InvalidKind%v", int(k))
	}
}

// Format writes a textual representation of the receiver, providing
// improved fmt.Printf display: kind plus delta for scope tokens, kind
// plus span offsets otherwise. Span contents are not printed since a
// token does not carry its source buffer.
func (t Token) Format(f fmt.State, _ rune) {
	switch t.Kind {
	case ScopeEnter:
		fmt.Fprintf(f, "%v+%v", t.Kind, t.Delta)
	case ScopeExit:
		fmt.Fprintf(f, "%v-%v", t.Kind, t.Delta)
	case Attacher:
		fmt.Fprintf(f, "%v%v=%v", t.Kind, t.Label, t.Content)
	case BlockComment, BlockOthertongue:
		fmt.Fprintf(f, "%v*%v", t.Kind, len(t.Lines))
	default:
		fmt.Fprintf(f, "%v%v", t.Kind, t.Content)
	}
}

// Format writes the receiver's open levels from bottom to top, or
// "-- top --" when no scope is open.
func (st ScopeStack) Format(f fmt.State, _ rune) {
	if len(st.levels) == 0 {
		io.WriteString(f, "-- top --")
		return
	}
	for i, level := range st.levels {
		if i > 0 {
			io.WriteString(f, " ")
		}
		fmt.Fprintf(f, "%v", level)
	}
}
