package cmd

import (
	"github.com/spf13/cobra"
	"github.com/vippsas/parinfer-go"
)

var (
	indentCmd = &cobra.Command{
		Use:   "indent [file]",
		Short: "Rewrite close-parens to match the file's indentation",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPass(args, parinfer.IndentMode)
		},
	}
)

func init() {
	rootCmd.AddCommand(indentCmd)
}
