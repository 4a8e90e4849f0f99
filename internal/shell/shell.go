// Package shell is the interactive frontend: it reads lines with readline,
// collects continuation input until a line is syntactically complete, and
// hands each complete line to the validate-then-lex pipeline for display.
package shell

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"

	"github.com/amw-zero/ion/internal/validate"
	"github.com/amw-zero/ion/pkg/platform"
)

// Shell drives the interactive read-inspect loop.
type Shell struct {
	prompt    string
	inspector *Inspector
	running   bool
}

// New returns a shell writing tokens to stdout and diagnostics to stderr.
func New(colored bool) *Shell {
	return &Shell{
		prompt: getPrompt(),
		inspector: NewInspector(
			NewPrinter(os.Stdout, colored),
			NewReporter(os.Stderr, colored),
		),
		running: true,
	}
}

// Run starts the interactive loop. It prefers readline and falls back to a
// plain scanner when the terminal cannot be set up.
func (s *Shell) Run() {
	config := &readline.Config{
		Prompt:          s.prompt,
		HistoryFile:     platform.HistoryFile(),
		HistoryLimit:    1000,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	}

	rl, err := readline.NewEx(config)
	if err != nil {
		s.runSimple()
		return
	}
	defer rl.Close()

	for s.running {
		rl.SetPrompt(s.prompt)

		line, err := rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				fmt.Println()
				continue
			}
			break
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == "exit" {
			s.running = false
			continue
		}

		// Keep prompting while the line is incomplete: an open quote,
		// substitution or brace group, or a trailing backslash.
		abandoned := false
		for needsContinuation(line) {
			rl.SetPrompt("> ")
			next, err := rl.Readline()
			if err != nil {
				abandoned = true
				if err == readline.ErrInterrupt {
					fmt.Println()
				}
				break
			}
			line = joinContinuation(line, next)
		}
		if abandoned {
			continue
		}

		s.inspector.Line(line)
		s.prompt = getPrompt()
	}
}

// runSimple is the fallback loop when readline is unavailable.
func (s *Shell) runSimple() {
	scanner := bufio.NewScanner(os.Stdin)

	for s.running {
		fmt.Print(s.prompt)
		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "exit" {
			break
		}

		for needsContinuation(line) {
			fmt.Print("> ")
			if !scanner.Scan() {
				break
			}
			line = joinContinuation(line, scanner.Text())
		}

		s.inspector.Line(line)
		s.prompt = getPrompt()
	}
}

// needsContinuation reports whether line cannot be handed to the lexer yet.
func needsContinuation(line string) bool {
	return endsWithLineContinuation(line) || validate.Incomplete(line)
}

// endsWithLineContinuation reports whether line ends in an unescaped
// backslash: an even run of trailing backslashes escapes itself.
func endsWithLineContinuation(line string) bool {
	n := 0
	for n < len(line) && line[len(line)-1-n] == '\\' {
		n++
	}
	return n%2 == 1
}

// joinContinuation merges a continuation line into the input gathered so
// far. A backslash continuation splices the lines into one; an open
// construct keeps the newline, which stays literal inside quotes.
func joinContinuation(line, next string) string {
	if endsWithLineContinuation(line) {
		return strings.TrimRight(line[:len(line)-1], " ") + " " + strings.TrimSpace(next)
	}
	return line + "\n" + next
}

// getPrompt builds the user@host:dir prompt, contracting the home directory.
func getPrompt() string {
	username := os.Getenv("USER")
	if username == "" {
		username = os.Getenv("USERNAME")
	}
	if username == "" {
		username = "user"
	}

	hostname, _ := os.Hostname()
	if hostname == "" {
		hostname = "host"
	}

	wd, _ := os.Getwd()
	if wd == "" {
		wd = "~"
	}

	return fmt.Sprintf("%s@%s:%s# ", username, hostname, platform.ContractHome(wd))
}
