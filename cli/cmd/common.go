package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	diff "github.com/shogoki/gotextdiff"
	"github.com/sirupsen/logrus"
	"github.com/vippsas/parinfer-go"
)

func readInput(args []string) (string, string, error) {
	if len(args) == 0 || args[0] == "-" {
		b, err := io.ReadAll(os.Stdin)
		return "<stdin>", string(b), err
	}
	b, err := os.ReadFile(args[0])
	return args[0], string(b), err
}

func buildOptions() parinfer.Options {
	opts := parinfer.Options{
		CursorLine:         cursorLine,
		CursorX:            cursorX,
		PrevCursorLine:     prevCursorLine,
		PrevCursorX:        prevCursorX,
		SelectionStartLine: selectionStartLine,
		ForceBalance:       forceBalance,
		ReturnParens:       returnParens,
		CommentChars:       []byte(commentChars),
	}
	if cfg, ok := loadedConfig(); ok && len(cfg.CommentChars) > 0 && !rootCmd.PersistentFlags().Changed("comment-chars") {
		opts.CommentChars = []byte(cfg.CommentChars)
	}
	return opts
}

// runPass drives one CLI subcommand: read input, invoke pass, report either
// the reconciled text, a unified diff against the original, or an error.
func runPass(args []string, pass func(string, parinfer.Options) *parinfer.Result) error {
	name, text, err := readInput(args)
	if err != nil {
		return fmt.Errorf("reading %s: %w", name, err)
	}

	logrus.WithField("file", name).Debug("running parinfer pass")

	result := pass(text, buildOptions())
	if !result.Success {
		return fmt.Errorf("%s:%d:%d: %s", name, result.Error.LineNo, result.Error.X, result.Error.Message)
	}

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	if showDiff {
		out := diff.Diff(name, []byte(text), name, []byte(result.Text))
		_, err := os.Stdout.Write(out)
		return err
	}

	_, err = fmt.Print(result.Text)
	return err
}
