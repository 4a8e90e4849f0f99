package lexer

// Kind identifies the syntactic category of a word token.
type Kind int

const (
	// EOF marks the end of the input line. It is a normal terminal
	// condition, not an error.
	EOF Kind = iota
	Normal
	Whitespace
	Tilde
	Brace
	Variable
	ArrayVariable
	Process
	ArrayProcess
)

// Index selects which elements of an array value a reference names.
// Range and identifier selectors are reserved for later; All is the only
// selector the lexer currently produces.
type Index int

const (
	All Index = iota
)

// Token is one word-level lexical unit of a shell line.
//
// Text and Elements are substrings of the line passed to New: they share its
// backing array and must not be retained past the line's lifetime. Which
// fields are meaningful depends on Kind:
//
//	Normal, Whitespace   Text is the raw span
//	Tilde                Text is the span including the leading ~
//	Brace                Elements holds the comma-separated alternatives
//	Variable             Text is the name, Quoted set inside double quotes
//	ArrayVariable        Text is the name, plus Quoted and Index
//	Process              Text is the substitution body, plus Quoted
//	ArrayProcess         Text is the substitution body, plus Quoted and Index
type Token struct {
	Kind     Kind
	Text     string
	Elements []string
	Quoted   bool
	Index    Index
}

// String returns the kind's name.
func (k Kind) String() string {
	switch k {
	case EOF:
		return "EOF"
	case Normal:
		return "Normal"
	case Whitespace:
		return "Whitespace"
	case Tilde:
		return "Tilde"
	case Brace:
		return "Brace"
	case Variable:
		return "Variable"
	case ArrayVariable:
		return "ArrayVariable"
	case Process:
		return "Process"
	case ArrayProcess:
		return "ArrayProcess"
	default:
		return "Unknown"
	}
}

// String returns the index selector's name.
func (i Index) String() string {
	switch i {
	case All:
		return "All"
	default:
		return "Unknown"
	}
}
