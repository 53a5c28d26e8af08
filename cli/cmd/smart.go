package cmd

import (
	"github.com/spf13/cobra"
	"github.com/vippsas/parinfer-go"
)

var (
	smartCmd = &cobra.Command{
		Use:   "smart [file]",
		Short: "Indent Mode, but defer rewriting a form the cursor is holding open",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPass(args, parinfer.SmartMode)
		},
	}
)

func init() {
	rootCmd.AddCommand(smartCmd)
}
