package main

import "github.com/spf13/cobra"

// Exit codes mandated by spec.md §7: 0 on success, 65 for a lex or
// parse fault, 70 for a runtime fault.
const (
	exitOK      = 0
	exitDataErr = 65
	exitSoftErr = 70
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "loxi",
		Short:         "loxi is a tree-walking interpreter for the Lox scripting language",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.AddCommand(
		newTokenizeCmd(),
		newParseCmd(),
		newEvaluateCmd(),
		newRunCmd(),
	)

	return root
}
