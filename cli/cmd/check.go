package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vippsas/parinfer-go"
)

var (
	checkCmd = &cobra.Command{
		Use:   "check [file]",
		Short: "Run Paren Mode purely for balance diagnostics, printing no rewritten output",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(args)
		},
	}
)

func init() {
	rootCmd.AddCommand(checkCmd)
}

// runCheck reports whether a file's parens balance against its own
// indentation, without printing a rewrite: a quiet pre-commit/CI gate
// around the same pass the paren subcommand exposes interactively.
func runCheck(args []string) error {
	name, text, err := readInput(args)
	if err != nil {
		return err
	}

	result := parinfer.ParenMode(text, buildOptions())
	if !result.Success {
		return fmt.Errorf("%s:%d:%d: %s", name, result.Error.LineNo, result.Error.X, result.Error.Message)
	}
	return nil
}
