package lexer

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// collect lexes input to completion and returns every token before EOF.
func collect(t *testing.T, input string) []Token {
	t.Helper()
	it := New(input)
	var tokens []Token
	for {
		tok, err := it.Next()
		if err != nil {
			t.Fatalf("lexing %q: unexpected error: %v", input, err)
		}
		if tok.Kind == EOF {
			return tokens
		}
		tokens = append(tokens, tok)
	}
}

func TestNext(t *testing.T) {
	tests := []struct {
		input    string
		expected []Token
	}{
		{
			input: "echo hello",
			expected: []Token{
				{Kind: Normal, Text: "echo"},
				{Kind: Whitespace, Text: " "},
				{Kind: Normal, Text: "hello"},
			},
		},
		{
			input: "echo $ABC",
			expected: []Token{
				{Kind: Normal, Text: "echo"},
				{Kind: Whitespace, Text: " "},
				{Kind: Variable, Text: "ABC"},
			},
		},
		{
			input: "echo ${ABC}",
			expected: []Token{
				{Kind: Normal, Text: "echo"},
				{Kind: Whitespace, Text: " "},
				{Kind: Variable, Text: "ABC"},
			},
		},
		{
			input: "echo @ARR",
			expected: []Token{
				{Kind: Normal, Text: "echo"},
				{Kind: Whitespace, Text: " "},
				{Kind: ArrayVariable, Text: "ARR", Index: All},
			},
		},
		{
			input: "echo @[ls -la]",
			expected: []Token{
				{Kind: Normal, Text: "echo"},
				{Kind: Whitespace, Text: " "},
				{Kind: ArrayProcess, Text: "ls -la", Index: All},
			},
		},
		{
			// The name stops at the first non-name byte.
			input: "$HOME/src",
			expected: []Token{
				{Kind: Variable, Text: "HOME"},
				{Kind: Normal, Text: "/src"},
			},
		},
		{
			// Consecutive spaces collapse into one Whitespace token.
			input: "a   b",
			expected: []Token{
				{Kind: Normal, Text: "a"},
				{Kind: Whitespace, Text: "   "},
				{Kind: Normal, Text: "b"},
			},
		},
	}

	for _, tt := range tests {
		got := collect(t, tt.input)
		if diff := cmp.Diff(tt.expected, got); diff != "" {
			t.Errorf("lexing %q: token mismatch (-want +got):\n%s", tt.input, diff)
		}
	}
}

func TestQuoteSuppression(t *testing.T) {
	// Inside single quotes the dollar sign is inert: no Variable token.
	got := collect(t, "'$A'")
	expected := []Token{{Kind: Normal, Text: "$A"}}
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Errorf("token mismatch (-want +got):\n%s", diff)
	}
}

func TestDoubleQuotePassthrough(t *testing.T) {
	// Inside double quotes the variable still lexes, marked quoted.
	got := collect(t, `"$A"`)
	expected := []Token{{Kind: Variable, Text: "A", Quoted: true}}
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Errorf("token mismatch (-want +got):\n%s", diff)
	}
}

func TestProcessRecursion(t *testing.T) {
	input := "echo $(echo $(echo one)) $(echo one $(echo two) three)"
	expected := []Token{
		{Kind: Normal, Text: "echo"},
		{Kind: Whitespace, Text: " "},
		{Kind: Process, Text: "echo $(echo one)"},
		{Kind: Whitespace, Text: " "},
		{Kind: Process, Text: "echo one $(echo two) three"},
	}
	got := collect(t, input)
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Errorf("lexing %q: token mismatch (-want +got):\n%s", input, diff)
	}
}

func TestProcessWithQuotes(t *testing.T) {
	tests := []struct {
		input string
		body  string
	}{
		{
			input: "echo $(git branch | rg '[*]' | awk '{print $2}')",
			body:  "git branch | rg '[*]' | awk '{print $2}'",
		},
		{
			input: `echo $(git branch | rg "[*]" | awk '{print $2}')`,
			body:  `git branch | rg "[*]" | awk '{print $2}'`,
		},
	}

	for _, tt := range tests {
		it := New(tt.input)
		expected := []Token{
			{Kind: Normal, Text: "echo"},
			{Kind: Whitespace, Text: " "},
			{Kind: Process, Text: tt.body},
		}
		var got []Token
		for {
			tok, err := it.Next()
			if err != nil {
				t.Fatalf("lexing %q: unexpected error: %v", tt.input, err)
			}
			if tok.Kind == EOF {
				break
			}
			got = append(got, tok)
		}
		if diff := cmp.Diff(expected, got); diff != "" {
			t.Errorf("lexing %q: token mismatch (-want +got):\n%s", tt.input, diff)
		}
		// Quote toggles inside the substitution body must not leak into
		// the iterator's own flags.
		if it.SingleQuoted() || it.DoubleQuoted() {
			t.Errorf("lexing %q: quote flags leaked out of the substitution scan", tt.input)
		}
	}
}

func TestBraceElements(t *testing.T) {
	input := "one{$ABC,$ABC}"
	expected := []Token{
		{Kind: Normal, Text: "one"},
		{Kind: Brace, Elements: []string{"$ABC", "$ABC"}},
	}
	got := collect(t, input)
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Errorf("lexing %q: token mismatch (-want +got):\n%s", input, diff)
	}
}

func TestNestedBraces(t *testing.T) {
	// Nested groups stay balanced literal text within an element; only
	// top-level commas split.
	input := "{a,{b,c},d}"
	expected := []Token{
		{Kind: Brace, Elements: []string{"a", "{b,c}", "d"}},
	}
	got := collect(t, input)
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Errorf("lexing %q: token mismatch (-want +got):\n%s", input, diff)
	}
}

func TestSingleElementBrace(t *testing.T) {
	// A group without commas still yields a Brace token; whether it is
	// really an expansion is the downstream expander's call.
	got := collect(t, "{abc}")
	expected := []Token{{Kind: Brace, Elements: []string{"abc"}}}
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Errorf("token mismatch (-want +got):\n%s", diff)
	}
}

func TestTildeBoundary(t *testing.T) {
	tests := []struct {
		input    string
		expected []Token
	}{
		{
			input: "~ ",
			expected: []Token{
				{Kind: Tilde, Text: "~"},
				{Kind: Whitespace, Text: " "},
			},
		},
		{
			input: "~/src/ion",
			expected: []Token{
				{Kind: Tilde, Text: "~/src/ion"},
			},
		},
		{
			input: "~user.name",
			expected: []Token{
				{Kind: Tilde, Text: "~user.name"},
			},
		},
	}

	for _, tt := range tests {
		got := collect(t, tt.input)
		if diff := cmp.Diff(tt.expected, got); diff != "" {
			t.Errorf("lexing %q: token mismatch (-want +got):\n%s", tt.input, diff)
		}
	}
}

func TestQuotedSubstitutions(t *testing.T) {
	input := `"$(seq 1 100)" "@[seq 1 3]" "@ARR"`
	expected := []Token{
		{Kind: Process, Text: "seq 1 100", Quoted: true},
		{Kind: Whitespace, Text: " "},
		{Kind: ArrayProcess, Text: "seq 1 3", Quoted: true, Index: All},
		{Kind: Whitespace, Text: " "},
		{Kind: ArrayVariable, Text: "ARR", Quoted: true, Index: All},
	}
	got := collect(t, input)
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Errorf("lexing %q: token mismatch (-want +got):\n%s", input, diff)
	}
}

func TestArrayProcessRecursion(t *testing.T) {
	input := "echo @[echo @[echo one] two]"
	expected := []Token{
		{Kind: Normal, Text: "echo"},
		{Kind: Whitespace, Text: " "},
		{Kind: ArrayProcess, Text: "echo @[echo one] two", Index: All},
	}
	got := collect(t, input)
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Errorf("lexing %q: token mismatch (-want +got):\n%s", input, diff)
	}
}

func TestMixedLine(t *testing.T) {
	input := `echo $ABC "${ABC}" one{$ABC,$ABC} ~ $(echo foo) "$(seq 1 100)"`
	expected := []Token{
		{Kind: Normal, Text: "echo"},
		{Kind: Whitespace, Text: " "},
		{Kind: Variable, Text: "ABC"},
		{Kind: Whitespace, Text: " "},
		{Kind: Variable, Text: "ABC", Quoted: true},
		{Kind: Whitespace, Text: " "},
		{Kind: Normal, Text: "one"},
		{Kind: Brace, Elements: []string{"$ABC", "$ABC"}},
		{Kind: Whitespace, Text: " "},
		{Kind: Tilde, Text: "~"},
		{Kind: Whitespace, Text: " "},
		{Kind: Process, Text: "echo foo"},
		{Kind: Whitespace, Text: " "},
		{Kind: Process, Text: "seq 1 100", Quoted: true},
	}
	got := collect(t, input)
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Errorf("lexing %q: token mismatch (-want +got):\n%s", input, diff)
	}
}
