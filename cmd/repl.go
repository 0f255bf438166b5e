package cmd

import (
	"fmt"
	"io"

	"github.com/ankurananda/syconf/syconf"
	"github.com/charmbracelet/lipgloss"
	"github.com/grailbio/base/log"
	"github.com/spf13/cobra"
	"github.com/yasushi-saito/readline"
)

func newReplCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Read-eval-print loop for one-off expressions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRepl(cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVar(&formatFlag, "format", "json", `output format: "json" or "text"`)
	return cmd
}

var (
	promptStyle = lipgloss.NewStyle().Bold(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// runRepl evaluates one expression per line; each line is parsed and
// evaluated independently, with no persistent bindings between lines —
// there is no incremental recompilation or shared mutable state to carry
// forward, matching this language's value-is-immutable, single-pass
// evaluation model.
func runRepl(out io.Writer) error {
	if err := readline.Init(readline.Opts{Name: "syconf", ExpandHistory: true}); err != nil {
		log.Error.Printf("readline.Init: %v", err)
	}
	prompt := promptStyle.Render("syconf> ")
	for {
		line, err := readline.Readline(prompt)
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if line == "" {
			continue
		}
		if err := readline.AddHistory(line); err != nil {
			log.Error.Printf("readline.AddHistory: %v", err)
		}
		var value syconf.Value
		var evalErr error
		if recoverErr := syconf.Recover(func() { value, evalErr = syconf.ParseString(line) }); recoverErr != nil {
			fmt.Fprintln(out, errorStyle.Render(recoverErr.Error()))
			continue
		}
		if evalErr != nil {
			fmt.Fprintln(out, errorStyle.Render(evalErr.Error()))
			continue
		}
		rendered, renderErr := renderValue(value, formatFlag)
		if renderErr != nil {
			fmt.Fprintln(out, errorStyle.Render(renderErr.Error()))
			continue
		}
		fmt.Fprintln(out, resultStyle.Render(rendered))
	}
}
