package lexer

import (
	"fmt"
)

// Construct identifies which bracketed form was left unterminated.
type Construct int

const (
	BracedVariable Construct = iota // ${name}
	ProcessSubstitution             // $(command)
	ArrayProcessSubstitution        // @[command]
	BraceGroup                      // {a,b,c}
)

// String returns a human-readable name for the construct.
func (c Construct) String() string {
	switch c {
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

// Error reports an unterminated construct. The frontend validator is expected
// to reject such lines before they reach the word lexer, so one of these
// surfacing means the contract with the validation pass was violated; it is
// reported as an internal parse fault rather than an ordinary syntax error.
type Error struct {
	Construct Construct
	Offset    int // byte offset of the construct's opening delimiter
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("internal parse fault: unterminated %s at offset %d", e.Construct, e.Offset)
}
