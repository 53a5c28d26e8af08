package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:          "parinfer",
		Short:        "parinfer",
		SilenceUsage: true,
		Long:         `CLI tool that reconciles indentation and parenthesis structure in Lisp-family source.`,
	}

	cursorLine, cursorX             int
	prevCursorLine, prevCursorX     int
	selectionStartLine              int
	forceBalance, returnParens      bool
	showDiff, jsonOutput            bool
	commentChars                    string
	verbose                         bool
)

// Execute executes the root command.
func Execute() error {
	rootCmd.PersistentFlags().IntVar(&cursorLine, "cursor-line", 0, "1-based cursor line, 0 for none")
	rootCmd.PersistentFlags().IntVar(&cursorX, "cursor-x", 0, "1-based cursor column, 0 for none")
	rootCmd.PersistentFlags().IntVar(&prevCursorLine, "prev-cursor-line", 0, "1-based previous cursor line, for smart mode hold detection")
	rootCmd.PersistentFlags().IntVar(&prevCursorX, "prev-cursor-x", 0, "1-based previous cursor column, for smart mode hold detection")
	rootCmd.PersistentFlags().IntVar(&selectionStartLine, "selection-start-line", 0, "1-based selection start line; disables smart-mode cursor tracking")
	rootCmd.PersistentFlags().BoolVar(&forceBalance, "force-balance", false, "in indent/smart mode, drop a close-paren that starts a line without recording it or rerunning in paren mode")
	rootCmd.PersistentFlags().BoolVar(&returnParens, "return-parens", false, "include the paren tree in --json output")
	rootCmd.PersistentFlags().BoolVar(&showDiff, "diff", false, "print a unified diff instead of the reconciled text")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "print the full Result as JSON instead of reconciled text")
	rootCmd.PersistentFlags().StringVar(&commentChars, "comment-chars", ";", "characters that start a line comment")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log pass details to stderr")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if verbose {
			logrus.SetLevel(logrus.DebugLevel)
		}
		return nil
	}

	return rootCmd.Execute()
}

func init() {
}
