// Package validate is the termination check that runs before the word lexer.
// The lexer treats an unterminated substitution or brace group as a broken
// caller contract, so every line must pass Check first; the REPL also uses
// Incomplete to decide whether to keep prompting for continuation input.
package validate

import (
	"errors"
	"fmt"

	"github.com/amw-zero/ion/internal/lexer"
)

// Fault classifies what was left open at the end of the line.
type Fault int

const (
	SingleQuote Fault = iota
	DoubleQuote
	BracedVariable
	ProcessSubstitution
	ArrayProcessSubstitution
	BraceGroup
)

// String returns a human-readable name for the fault.
func (f Fault) String() string {
	switch f {
	case SingleQuote:
		return "single quote"
	case DoubleQuote:
		return "double quote"
	case BracedVariable:
		return "braced variable"
	case ProcessSubstitution:
		return "process substitution"
	case ArrayProcessSubstitution:
		return "array process substitution"
	case BraceGroup:
		return "brace group"
	default:
		return "construct"
	}
}

// Error is a user-facing syntax error: the line ends inside an open quote,
// substitution or brace group. Unlike lexer.Error it is an expected outcome
// for interactive input, not an internal fault.
type Error struct {
	Fault  Fault
	Offset int // byte offset of the opening delimiter, -1 if unknown
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Offset < 0 {
		return fmt.Sprintf("unterminated %s", e.Fault)
	}
	return fmt.Sprintf("unterminated %s at offset %d", e.Fault, e.Offset)
}

// Check reports whether every quote, substitution and brace group opened in
// line is closed. It guarantees the word lexer's contract: a line Check
// accepts can be lexed to EOF without an error.
//
// The scan is a dry run of the lexer itself, so the two can never disagree
// about which byte opens or closes a construct.
func Check(line string) error {
	it := lexer.New(line)
	for {
		tok, err := it.Next()
		if err != nil {
			var lexErr *lexer.Error
			if errors.As(err, &lexErr) {
				return &Error{Fault: faultFor(lexErr.Construct), Offset: lexErr.Offset}
			}
			return err
		}
		if tok.Kind == lexer.EOF {
			break
		}
	}
	// The lexer tolerates quotes left open at the end of a line; for a
	// complete line they are still a syntax error.
	if it.SingleQuoted() {
		return &Error{Fault: SingleQuote, Offset: -1}
	}
	if it.DoubleQuoted() {
		return &Error{Fault: DoubleQuote, Offset: -1}
	}
	return nil
}

// Incomplete reports whether line needs more input before it can be lexed,
// which drives continuation prompts in the interactive frontend.
func Incomplete(line string) bool {
	return Check(line) != nil
}

// faultFor maps the lexer's construct kinds onto validation faults.
func faultFor(c lexer.Construct) Fault {
	switch c {
	case lexer.BracedVariable:
		return BracedVariable
	case lexer.ProcessSubstitution:
		return ProcessSubstitution
	case lexer.ArrayProcessSubstitution:
		return ArrayProcessSubstitution
	default:
		return BraceGroup
	}
}
