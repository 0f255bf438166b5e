package cmd

import (
	"fmt"

	"github.com/ankurananda/syconf/syconf"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	exprFlag   string
	formatFlag string
)

func newEvalCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval [file]",
		Short: "Evaluate a configuration document and print its result",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runEval,
	}
	cmd.Flags().StringVarP(&exprFlag, "expr", "e", "", "evaluate this expression instead of a file")
	cmd.Flags().StringVar(&formatFlag, "format", "json", `output format: "json" or "text"`)
	return cmd
}

func runEval(cmd *cobra.Command, args []string) error {
	var (
		value syconf.Value
		err   error
	)
	switch {
	case exprFlag == "" && len(args) == 0:
		return fmt.Errorf("either a file argument or --expr is required")
	case exprFlag != "":
		recoverErr := syconf.Recover(func() { value, err = syconf.ParseString(exprFlag) })
		if recoverErr != nil {
			return recoverErr
		}
	default:
		recoverErr := syconf.Recover(func() { value, err = syconf.ParseFile(args[0]) })
		if recoverErr != nil {
			return recoverErr
		}
	}
	if err != nil {
		return err
	}
	rendered, err := renderValue(value, formatFlag)
	if err != nil {
		return err
	}
	cmd.Println(resultStyle.Render(rendered))
	return nil
}

// renderValue prints value the way --format asks for: "json" is the
// default, matching the language's JSON-compatible scalar/list/map shapes;
// "text" uses this package's own quoted syntax (Value.String) instead,
// which is also the only option that can show a Func value.
func renderValue(value syconf.Value, format string) (string, error) {
	switch format {
	case "json", "":
		return value.JSON(syconf.Location{})
	case "text":
		return value.String(), nil
	default:
		return "", fmt.Errorf("unknown --format %q: want \"json\" or \"text\"", format)
	}
}

var resultStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
