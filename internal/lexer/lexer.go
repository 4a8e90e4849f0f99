// Package lexer splits one line of shell input into word tokens: literal
// text, whitespace, tilde expansions, variable and array-variable references,
// process substitutions and brace-expansion groups. It tracks single-quote,
// double-quote and backslash-escape context across all of them but performs
// no expansion itself; the tokens are consumed by a downstream expansion
// stage.
package lexer

import (
	"unicode/utf8"
)

// WordIterator lexes a single line of shell input. It owns the only cursor
// and quote/escape state for the pass; the per-construct helpers below mutate
// that shared state directly. A WordIterator is single-use: once the line has
// been consumed it cannot be rewound, re-lexing requires a fresh instance.
type WordIterator struct {
	input string
	pos   int

	// Quote and escape flags persist across Next calls: a quoted region
	// can span several returned tokens, since the quote bytes themselves
	// are consumed as boundaries rather than emitted.
	escaped      bool
	singleQuoted bool
	doubleQuoted bool
}

// New returns a word iterator over one line of shell input. The line must
// already have passed termination validation; unterminated substitutions or
// brace groups make Next fail with an internal parse fault.
func New(input string) *WordIterator {
	return &WordIterator{input: input}
}

// Pos reports the byte offset the next call to Next will resume at.
func (w *WordIterator) Pos() int {
	return w.pos
}

// SingleQuoted reports whether the cursor is inside an open single quote.
func (w *WordIterator) SingleQuoted() bool {
	return w.singleQuoted
}

// DoubleQuoted reports whether the cursor is inside an open double quote.
func (w *WordIterator) DoubleQuoted() bool {
	return w.doubleQuoted
}

// peek returns the byte after the cursor, or 0 at the end of input.
func (w *WordIterator) peek() byte {
	if w.pos+1 >= len(w.input) {
		return 0
	}
	return w.input[w.pos+1]
}

// Next returns the next word token. The end of the line is signaled by a
// token of kind EOF and a nil error. A non-nil error means an unterminated
// construct was hit, which the upstream validation pass should have rejected;
// the iterator must not be used again after that.
func (w *WordIterator) Next() (Token, error) {
	if w.pos >= len(w.input) {
		return Token{Kind: EOF}, nil
	}

	// Dispatch on the byte at the cursor. Quote characters toggle their
	// flag and are consumed without producing a token; the loop then
	// re-inspects the following byte as the real start of the token.
	start := w.pos
	for {
		if w.pos >= len(w.input) {
			return Token{Kind: EOF}, nil
		}
		c := w.input[w.pos]
		switch {
		case c == '\'' && !w.doubleQuoted:
			w.singleQuoted = !w.singleQuoted
			w.pos++
			start = w.pos
			continue
		case c == '"' && !w.singleQuoted:
			w.doubleQuoted = !w.doubleQuoted
			w.pos++
			start = w.pos
			continue
		case c == ' ' && !w.singleQuoted && !w.doubleQuoted:
			return w.whitespace(), nil
		case c == '~' && !w.singleQuoted && !w.doubleQuoted:
			return w.tilde(), nil
		case c == '{' && !w.singleQuoted && !w.doubleQuoted:
			w.pos++
			return w.braces()
		case c == '@' && !w.singleQuoted:
			if w.peek() == '[' {
				w.pos += 2
				return w.arrayProcess()
			}
			w.pos++
			return w.arrayVariable(), nil
		case c == '$' && !w.singleQuoted:
			switch w.peek() {
			case '(':
				w.pos += 2
				return w.process()
			case '{':
				w.pos += 2
				return w.bracedVariable()
			default:
				w.pos++
				return w.variable(), nil
			}
		}
		// First byte of a plain-text run. A backslash arms the escape
		// flag so the byte after it stays literal.
		if w.escaped {
			w.escaped = false
		} else if c == '\\' {
			w.escaped = true
		}
		w.pos++
		break
	}

	// Plain-text accumulation: consume bytes until an unescaped special
	// character ends the span. A closing or opening quote also ends it,
	// toggling the flag and swallowing the quote byte.
	for w.pos < len(w.input) {
		c := w.input[w.pos]
		switch {
		case w.escaped:
			w.escaped = false
		case c == '\\':
			w.escaped = true
		case c == '\'' && !w.doubleQuoted:
			w.singleQuoted = !w.singleQuoted
			text := w.input[start:w.pos]
			w.pos++
			return Token{Kind: Normal, Text: text}, nil
		case c == '"' && !w.singleQuoted:
			w.doubleQuoted = !w.doubleQuoted
			text := w.input[start:w.pos]
			w.pos++
			return Token{Kind: Normal, Text: text}, nil
		case (c == ' ' || c == '{') && !w.singleQuoted && !w.doubleQuoted:
			return Token{Kind: Normal, Text: w.input[start:w.pos]}, nil
		case (c == '$' || c == '@') && !w.singleQuoted:
			return Token{Kind: Normal, Text: w.input[start:w.pos]}, nil
		}
		w.pos++
	}

	return Token{Kind: Normal, Text: w.input[start:]}, nil
}

// whitespace consumes a maximal run of spaces starting at the cursor.
func (w *WordIterator) whitespace() Token {
	start := w.pos
	for w.pos < len(w.input) && w.input[w.pos] == ' ' {
		w.pos++
	}
	return Token{Kind: Whitespace, Text: w.input[start:w.pos]}
}

// tilde consumes the leading ~ and any following username or path bytes.
func (w *WordIterator) tilde() Token {
	start := w.pos
	w.pos++
	for w.pos < len(w.input) && isTildeByte(w.input[w.pos]) {
		w.pos++
	}
	return Token{Kind: Tilde, Text: w.input[start:w.pos]}
}

// variable consumes a variable name; the cursor sits just after the $.
func (w *WordIterator) variable() Token {
	start := w.pos
	for w.pos < len(w.input) && isNameByte(w.input[w.pos]) {
		w.pos++
	}
	return Token{Kind: Variable, Text: w.input[start:w.pos], Quoted: w.doubleQuoted}
}

// arrayVariable consumes an array variable name; the cursor sits just after
// the @. The index selector defaults to All.
func (w *WordIterator) arrayVariable() Token {
	start := w.pos
	for w.pos < len(w.input) && isNameByte(w.input[w.pos]) {
		w.pos++
	}
	return Token{Kind: ArrayVariable, Text: w.input[start:w.pos], Quoted: w.doubleQuoted, Index: All}
}

// bracedVariable consumes a ${name} interior; the cursor sits just after the
// opening ${. The name is taken verbatim up to the first unescaped }.
func (w *WordIterator) bracedVariable() (Token, error) {
	start := w.pos
	for w.pos < len(w.input) {
		switch {
		case w.escaped:
			w.escaped = false
		case w.input[w.pos] == '\\':
			w.escaped = true
		case w.input[w.pos] == '}':
			name := w.input[start:w.pos]
			w.pos++
			return Token{Kind: Variable, Text: name, Quoted: w.doubleQuoted}, nil
		}
		w.pos++
	}
	return Token{}, &Error{Construct: BracedVariable, Offset: start - 2}
}

// process consumes a $(command) body; the cursor sits just after the opening
// $(. Nested $( groups are tracked with a depth counter so an inner close
// cannot end the outer span, and quote toggles inside the body are scoped to
// this scan: on return the iterator's flags are exactly as they were at
// entry. Quoted reflects whether the substitution as a whole sits inside a
// double-quoted region, not quoting that occurred within the body.
func (w *WordIterator) process() (Token, error) {
	start := w.pos
	escaped, singleQuoted, doubleQuoted := w.escaped, w.singleQuoted, w.doubleQuoted
	level := 0
	for w.pos < len(w.input) {
		c := w.input[w.pos]
		switch {
		case w.escaped:
			w.escaped = false
		case c == '\\':
			w.escaped = true
		case c == '\'' && !w.doubleQuoted:
			w.singleQuoted = !w.singleQuoted
		case c == '"' && !w.singleQuoted:
			w.doubleQuoted = !w.doubleQuoted
		case c == '$' && !w.singleQuoted:
			if w.peek() == '(' {
				level++
			}
		case c == ')' && !w.singleQuoted:
			if level == 0 {
				body := w.input[start:w.pos]
				w.pos++
				w.escaped, w.singleQuoted, w.doubleQuoted = escaped, singleQuoted, doubleQuoted
				return Token{Kind: Process, Text: body, Quoted: doubleQuoted}, nil
			}
			level--
		}
		w.pos++
	}
	return Token{}, &Error{Construct: ProcessSubstitution, Offset: start - 2}
}

// arrayProcess consumes an @[command] body; the cursor sits just after the
// opening @[. Same nesting and flag-scoping rules as process, keyed on @[
// and ] instead of $( and ).
func (w *WordIterator) arrayProcess() (Token, error) {
	start := w.pos
	escaped, singleQuoted, doubleQuoted := w.escaped, w.singleQuoted, w.doubleQuoted
	level := 0
	for w.pos < len(w.input) {
		c := w.input[w.pos]
		switch {
		case w.escaped:
			w.escaped = false
		case c == '\\':
			w.escaped = true
		case c == '\'' && !w.doubleQuoted:
			w.singleQuoted = !w.singleQuoted
		case c == '"' && !w.singleQuoted:
			w.doubleQuoted = !w.doubleQuoted
		case c == '@' && !w.singleQuoted:
			if w.peek() == '[' {
				level++
			}
		case c == ']' && !w.singleQuoted:
			if level == 0 {
				body := w.input[start:w.pos]
				w.pos++
				w.escaped, w.singleQuoted, w.doubleQuoted = escaped, singleQuoted, doubleQuoted
				return Token{Kind: ArrayProcess, Text: body, Quoted: doubleQuoted, Index: All}, nil
			}
			level--
		}
		w.pos++
	}
	return Token{}, &Error{Construct: ArrayProcessSubstitution, Offset: start - 2}
}

// braces consumes a {a,b,c} group; the cursor sits just after the opening {.
// Elements split on unescaped, unquoted commas at nesting level zero; nested
// brace groups stay balanced literal text inside an element. The elements are
// not expanded here, and a group without commas still produces a Brace token
// whose single element the downstream expander judges.
func (w *WordIterator) braces() (Token, error) {
	open := w.pos - 1
	start := w.pos
	escaped, singleQuoted, doubleQuoted := w.escaped, w.singleQuoted, w.doubleQuoted
	level := 0
	var elements []string
	for w.pos < len(w.input) {
		c := w.input[w.pos]
		switch {
		case w.escaped:
			w.escaped = false
		case c == '\\':
			w.escaped = true
		case c == '\'' && !w.doubleQuoted:
			w.singleQuoted = !w.singleQuoted
		case c == '"' && !w.singleQuoted:
			w.doubleQuoted = !w.doubleQuoted
		case c == ',' && !w.singleQuoted && !w.doubleQuoted && level == 0:
			elements = append(elements, w.input[start:w.pos])
			start = w.pos + 1
		case c == '{' && !w.singleQuoted && !w.doubleQuoted:
			level++
		case c == '}' && !w.singleQuoted && !w.doubleQuoted:
			if level == 0 {
				elements = append(elements, w.input[start:w.pos])
				w.pos++
				w.escaped, w.singleQuoted, w.doubleQuoted = escaped, singleQuoted, doubleQuoted
				return Token{Kind: Brace, Elements: elements}, nil
			}
			level--
		}
		w.pos++
	}
	return Token{}, &Error{Construct: BraceGroup, Offset: open}
}

// isNameByte reports whether c may appear in a variable name: alphanumerics,
// underscore, and any non-ASCII byte so multibyte characters pass through.
func isNameByte(c byte) bool {
	return c == '_' ||
		'0' <= c && c <= '9' ||
		'A' <= c && c <= 'Z' ||
		'a' <= c && c <= 'z' ||
		c >= utf8.RuneSelf
}

// isTildeByte reports whether c may appear after ~ in a tilde expansion:
// name bytes plus the punctuation usernames and paths use.
func isTildeByte(c byte) bool {
	return isNameByte(c) || c == '-' || c == '.' || c == '/'
}
