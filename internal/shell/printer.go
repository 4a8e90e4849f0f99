package shell

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/amw-zero/ion/internal/lexer"
)

// kindColors assigns each token kind a stable color for interactive dumps.
var kindColors = map[lexer.Kind]*color.Color{
	lexer.Normal:        color.New(color.FgWhite),
	lexer.Whitespace:    color.New(color.FgHiBlack),
	lexer.Tilde:         color.New(color.FgCyan),
	lexer.Brace:         color.New(color.FgYellow),
	lexer.Variable:      color.New(color.FgGreen),
	lexer.ArrayVariable: color.New(color.FgHiGreen),
	lexer.Process:       color.New(color.FgMagenta),
	lexer.ArrayProcess:  color.New(color.FgHiMagenta),
}

// Printer renders word tokens one per line, optionally colorized by kind.
type Printer struct {
	out     io.Writer
	colored bool
}

// NewPrinter returns a printer writing to out. With colored false the output
// is plain text, suitable for pipes and tests.
func NewPrinter(out io.Writer, colored bool) *Printer {
	return &Printer{out: out, colored: colored}
}

// Print writes one rendered token.
func (p *Printer) Print(tok lexer.Token) {
	label := fmt.Sprintf("%-14s", tok.Kind)
	if p.colored {
		if c, ok := kindColors[tok.Kind]; ok {
			label = c.Sprint(label)
		}
	}

	var detail string
	if tok.Kind == lexer.Brace {
		parts := make([]string, len(tok.Elements))
		for i, el := range tok.Elements {
			parts[i] = fmt.Sprintf("%q", el)
		}
		detail = "[" + strings.Join(parts, ", ") + "]"
	} else {
		detail = fmt.Sprintf("%q", tok.Text)
	}
	if tok.Quoted {
		detail += " quoted"
	}
	if tok.Kind == lexer.ArrayVariable || tok.Kind == lexer.ArrayProcess {
		detail += " index=" + tok.Index.String()
	}

	fmt.Fprintf(p.out, "%s %s\n", label, detail)
}

// PrintLine lexes one shell line and prints every token. The error, if any,
// is the lexer's own fault value for an unterminated construct.
func (p *Printer) PrintLine(line string) error {
	it := lexer.New(line)
	for {
		tok, err := it.Next()
		if err != nil {
			return err
		}
		if tok.Kind == lexer.EOF {
			return nil
		}
		p.Print(tok)
	}
}
