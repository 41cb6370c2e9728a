// Command chearlex reads a Chearmyp document from stdin or a file and
// prints one line per lexed token, resolving spans back to source
// text. Useful for debugging documents and downstream parsers.
//
//	chearlex [-v] [-o out.txt] [file]
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/google/renameio"

	"github.com/chearmyp/lexer/chearlex"
	"github.com/chearmyp/lexer/internal/textio"
)

func main() {
	var (
		verbose bool
		outPath string
	)
	flag.BoolVar(&verbose, "v", false, "print span offsets and scope depth with every token")
	flag.StringVar(&outPath, "o", "", "write the dump atomically to this file instead of stdout")
	flag.Parse()

	src, err := readInput(flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}

	if outPath != "" {
		var buf bytes.Buffer
		if err := dump(&buf, src, verbose); err != nil {
			log.Fatal(err)
		}
		if err := renameio.WriteFile(outPath, buf.Bytes(), 0644); err != nil {
			log.Fatal(err)
		}
		return
	}

	out := &textio.ErrWriter{Writer: os.Stdout}
	logOut := textio.PrefixWriter("> log: ", out)
	defer logOut.Close()
	log.SetOutput(logOut)
	log.SetFlags(0)

	if err := dump(out, src, verbose); err != nil {
		log.Fatal(err)
	}
}

func readInput(path string) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

// dump drives the lexer one line at a time, printing each produced
// token as it comes.
func dump(w io.Writer, src []byte, verbose bool) (rerr error) {
	lx := chearlex.New(src, chearlex.TokenBuilder{})
	var q chearlex.SliceQueue[chearlex.Token]
	n := 0
	err := textio.Lines(w, func(w io.Writer, _ func()) bool {
		q.Reset()
		more, err := lx.Step(&q)
		if err != nil {
			rerr = err
			return false
		}
		for _, tok := range q.Tokens {
			n++
			if verbose {
				fmt.Fprintf(w, "%v. [depth=%v] %v %s\n", n, lx.Depth(), tok, describe(src, tok))
			} else {
				fmt.Fprintf(w, "%v. %s\n", n, describe(src, tok))
			}
		}
		return more
	})
	if rerr == nil {
		rerr = err
	}
	return rerr
}

func describe(src []byte, tok chearlex.Token) string {
	switch tok.Kind {
	case chearlex.ScopeEnter, chearlex.ScopeExit:
		return fmt.Sprintf("%v", tok)
	case chearlex.Attacher:
		return fmt.Sprintf("%v %q=%q", tok.Kind, tok.Label.Text(src), tok.Content.Text(src))
	case chearlex.BlockComment, chearlex.BlockOthertongue:
		parts := make([]string, len(tok.Lines))
		for i, line := range tok.Lines {
			parts[i] = fmt.Sprintf("%q", line.Text(src))
		}
		return fmt.Sprintf("%v [%v]", tok.Kind, strings.Join(parts, " "))
	default:
		return fmt.Sprintf("%v %q", tok.Kind, tok.Content.Text(src))
	}
}
