// Package cli defines the luaproc command-line entry point.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/piravelha/luaproc/internal/pipeline"
)

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "luaproc <filename>",
		Short:         "Expand C-style macros in a Lua-like source file",
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// A missing argument is caught by Args before RunE runs, and
			// still gets cobra's usual usage-to-stdout treatment. Once
			// we're here the argument count is fine, so any further error
			// is the pipeline's own — don't also dump usage for it.
			cmd.SilenceUsage = true
			return pipeline.Run(args[0])
		},
	}
	cmd.SetOut(os.Stdout)
	return cmd
}

// Execute runs the root command and reports failure via the process exit
// code; the command itself has already printed a diagnostic by the time
// it returns an error.
func Execute() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		cmd.PrintErrln(err)
		os.Exit(1)
	}
}
