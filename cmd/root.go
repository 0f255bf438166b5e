// Package cmd implements syconf's command-line interface: the subcommand
// tree is built with cobra, in the style of cue's cmd/cue/cmd package.
package cmd

import (
	"fmt"
	"os"

	"github.com/grailbio/base/log"
	"github.com/spf13/cobra"
)

// New builds the root command. Main calls this and executes the result;
// main.go's sole job is to call Main.
func New() *cobra.Command {
	log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds | log.Lshortfile)
	root := &cobra.Command{
		Use:           "syconf",
		Short:         "Parse and evaluate syconf configuration documents",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newEvalCommand())
	root.AddCommand(newReplCommand())
	return root
}

// Main is the process entry point's body, split out of main() so it is
// testable without calling os.Exit directly.
func Main() int {
	if err := New().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "syconf:", err)
		return 1
	}
	return 0
}
