package shell

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/amw-zero/ion/internal/lexer"
	"github.com/amw-zero/ion/internal/validate"
)

// Reporter formats lexing and validation failures for the terminal: an
// ion-prefixed message, and when the offset of the failure is known, the
// offending line with a caret underneath it.
type Reporter struct {
	out     io.Writer
	colored bool
}

// NewReporter returns a reporter writing to out.
func NewReporter(out io.Writer, colored bool) *Reporter {
	return &Reporter{out: out, colored: colored}
}

// Report writes a diagnostic for err, which occurred while handling line.
// Validation errors are ordinary syntax errors; lexer errors mean a line
// reached the lexer without passing validation and are flagged as internal.
func (r *Reporter) Report(line string, err error) {
	if err == nil {
		return
	}

	var verr *validate.Error
	var lerr *lexer.Error
	switch {
	case errors.As(err, &verr):
		fmt.Fprintf(r.out, "ion: %s: %v\n", r.tag("syntax error", color.FgRed), verr)
		r.caret(line, verr.Offset)
	case errors.As(err, &lerr):
		// By contract this never happens for validated input.
		fmt.Fprintf(r.out, "ion: %s: %v\n", r.tag("internal", color.FgHiRed), lerr)
		r.caret(line, lerr.Offset)
	default:
		fmt.Fprintf(r.out, "ion: %v\n", err)
	}
}

// tag colorizes a severity label when color is enabled.
func (r *Reporter) tag(label string, attr color.Attribute) string {
	if !r.colored {
		return label
	}
	return color.New(attr).Sprint(label)
}

// caret echoes the line with a marker under the given byte offset.
func (r *Reporter) caret(line string, offset int) {
	if offset < 0 || offset >= len(line) || strings.Contains(line, "\n") {
		return
	}
	marker := "^"
	if r.colored {
		marker = color.New(color.FgRed, color.Bold).Sprint(marker)
	}
	fmt.Fprintf(r.out, "  %s\n", line)
	fmt.Fprintf(r.out, "  %s%s\n", strings.Repeat(" ", offset), marker)
}
