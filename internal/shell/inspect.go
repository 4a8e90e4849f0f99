package shell

import (
	"bufio"
	"io"
	"strings"

	"github.com/amw-zero/ion/internal/validate"
)

// Inspector runs the frontend pipeline over complete lines: termination
// validation first, then the word lexer, rendering either the token stream
// or a diagnostic. It stands in for the expansion engine that consumes the
// tokens in a full shell.
type Inspector struct {
	printer  *Printer
	reporter *Reporter
}

// NewInspector wires a printer for token output and a reporter for faults.
func NewInspector(printer *Printer, reporter *Reporter) *Inspector {
	return &Inspector{printer: printer, reporter: reporter}
}

// Line validates and lexes one line, printing tokens or a diagnostic.
// It reports whether the line was clean.
func (i *Inspector) Line(line string) bool {
	if err := validate.Check(line); err != nil {
		i.reporter.Report(line, err)
		return false
	}
	if err := i.printer.PrintLine(line); err != nil {
		i.reporter.Report(line, err)
		return false
	}
	return true
}

// Reader feeds every line from r through the pipeline, skipping blank lines,
// a leading shebang, and comment lines. It returns whether all lines were
// clean, and the first read error if any.
func (i *Inspector) Reader(r io.Reader) (bool, error) {
	scanner := bufio.NewScanner(r)
	clean := true
	firstLine := true

	for scanner.Scan() {
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)

		if firstLine && strings.HasPrefix(trimmed, "#!") {
			firstLine = false
			continue
		}
		firstLine = false

		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		if !i.Line(line) {
			clean = false
		}
	}

	return clean, scanner.Err()
}
