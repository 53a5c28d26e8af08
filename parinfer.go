// Package parinfer implements Parinfer: a single-pass, character-driven
// reconciler between S-expression indentation and parenthesis structure.
// It exposes three entry points — IndentMode, ParenMode, and SmartMode —
// each a pure function of (text, options).
package parinfer

import "github.com/vippsas/parinfer-go/internal/engine"

func toEngineConfig(opts Options) engine.Config {
	changes := make([]engine.Change, len(opts.Changes))
	for i, c := range opts.Changes {
		changes[i] = engine.Change{LineNo: c.LineNo, X: c.X, OldText: c.OldText, NewText: c.NewText}
	}
	return engine.Config{
		CursorLine:         opts.CursorLine,
		CursorX:            opts.CursorX,
		PrevCursorLine:     opts.PrevCursorLine,
		PrevCursorX:        opts.PrevCursorX,
		SelectionStartLine: opts.SelectionStartLine,
		Changes:            changes,
		ForceBalance:       opts.ForceBalance,
		PartialResult:      opts.PartialResult,
		ReturnParens:       opts.ReturnParens,
		CommentChars:       opts.CommentChars,
	}
}

// IndentMode reconciles parens to match the given indentation: the user's
// whitespace is authoritative, close-parens are rewritten to fit it.
func IndentMode(text string, opts Options) *Result {
	r, err := engine.Run(text, engine.IndentMode, false, toEngineConfig(opts))
	return fromEngineResult(r, err)
}

// ParenMode reconciles indentation to match the given parens: the user's
// close-parens are authoritative, indentation is rewritten to fit them.
func ParenMode(text string, opts Options) *Result {
	r, err := engine.Run(text, engine.ParenMode, false, toEngineConfig(opts))
	return fromEngineResult(r, err)
}

// SmartMode behaves like IndentMode, except while the cursor is shown to be
// holding a just-closed form open it defers rewriting that form's trail. If
// the previous cursor position held a form that the current one no longer
// holds, or a line begins with a close-paren, the whole pass is rerun from
// scratch as a plain ParenMode pass. Per §6, smart tracking only applies
// when no selection is active.
func SmartMode(text string, opts Options) *Result {
	smart := opts.SelectionStartLine <= 0
	r, err := engine.Run(text, engine.IndentMode, smart, toEngineConfig(opts))
	return fromEngineResult(r, err)
}
