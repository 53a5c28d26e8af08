package cmd

import (
	"github.com/spf13/cobra"
	"github.com/vippsas/parinfer-go"
)

var (
	parenCmd = &cobra.Command{
		Use:   "paren [file]",
		Short: "Rewrite indentation to match the file's close-parens",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPass(args, parinfer.ParenMode)
		},
	}
)

func init() {
	rootCmd.AddCommand(parenCmd)
}
