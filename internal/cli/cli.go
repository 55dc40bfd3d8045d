// Package cli implements the single-positional-argument command surface of
// spec.md §6, grounded on CWBudde-go-dws's cmd/dwscript/cmd root/run
// command pair (narrowed: this interpreter's External Interfaces section
// explicitly rules out flags and subcommands beyond the one file path).
// spec.md §6 requires the rendered error go to standard output on failure,
// so unlike the teacher's run command this writes to os.Stdout, not
// os.Stderr. Terminal detection for ANSI-colored error rendering follows
// funvibe-funxy's internal/evaluator/builtins_term.go isatty usage.
package cli

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/sty00a4/funx-go/internal/evaluator"
	"github.com/sty00a4/funx-go/internal/ferrors"
)

// NewRootCommand builds the funx command: one positional source path, no
// flags, exit 0 on success and non-zero on any parse/evaluate error
// (spec.md §6).
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "funx <file>",
		Short:         "run a Funx source file",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, args []string) error {
			return run(args[0])
		},
	}
	return cmd
}

func run(path string) error {
	e, err := evaluator.Run(path)
	if err == nil {
		return nil
	}

	fe, ok := err.(*ferrors.Error)
	if !ok {
		fmt.Fprintln(os.Stdout, err)
		return err
	}

	var frames []ferrors.Frame
	if e != nil {
		frames = e.Frames()
	}
	color := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	fmt.Fprint(os.Stdout, fe.Format(color, frames, path, readSource))
	return err
}

func readSource(path string) (string, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", false
	}
	return string(data), true
}
