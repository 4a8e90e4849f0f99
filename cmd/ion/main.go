package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/amw-zero/ion/internal/shell"
	"github.com/amw-zero/ion/internal/validate"
)

func main() {
	var noColor bool

	rootCmd := &cobra.Command{
		Use:   "ion",
		Short: "Interactive frontend for the ion word lexer",
		Run: func(cmd *cobra.Command, args []string) {
			shell.New(!noColor).Run()
		},
	}
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	var command string
	lexCmd := &cobra.Command{
		Use:   "lex [file...]",
		Short: "Print the word tokens of shell input",
		Long: "Lex shell input into word tokens and print them one per line.\n" +
			"Input comes from -c, from the given files, or from stdin.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if noColor {
				color.NoColor = true
			}
			inspector := shell.NewInspector(
				shell.NewPrinter(os.Stdout, !noColor),
				shell.NewReporter(os.Stderr, !noColor),
			)

			clean := true
			if command != "" {
				clean = inspector.Line(command)
			} else if len(args) == 0 {
				ok, err := inspector.Reader(os.Stdin)
				if err != nil {
					return err
				}
				clean = ok
			}
			for _, path := range args {
				f, err := os.Open(path)
				if err != nil {
					return err
				}
				ok, err := inspector.Reader(f)
				f.Close()
				if err != nil {
					return err
				}
				if !ok {
					clean = false
				}
			}

			if !clean {
				os.Exit(1)
			}
			return nil
		},
	}
	lexCmd.Flags().StringVarP(&command, "command", "c", "", "Lex this string instead of a file")

	checkCmd := &cobra.Command{
		Use:   "check <line>",
		Short: "Validate that a line's quotes and substitutions are terminated",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validate.Check(args[0]); err != nil {
				reporter := shell.NewReporter(os.Stderr, !noColor)
				reporter.Report(args[0], err)
				os.Exit(1)
			}
			return nil
		},
	}

	replCmd := &cobra.Command{
		Use:   "repl",
		Short: "Start the interactive token inspector",
		Run: func(cmd *cobra.Command, args []string) {
			shell.New(!noColor).Run()
		},
	}

	rootCmd.AddCommand(lexCmd, checkCmd, replCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "ion: %v\n", err)
		os.Exit(1)
	}
}
