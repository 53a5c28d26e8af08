package engine

func isOpenParenCh(ch string) bool {
	return ch == "(" || ch == "[" || ch == "{"
}

func isCloseParenCh(ch string) bool {
	return ch == ")" || ch == "]" || ch == "}"
}

func isWhitespaceCh(ch string) bool {
	return ch == " " || ch == "\t"
}

// processChar runs one input character through the character dispatch
// (spec §4.1) and commits the (possibly rewritten) result into the current
// output line. When skipDispatch is true, the character was already fully
// decided by onIndent (e.g. a leading close-paren that got dropped or
// migrated onto a carried-over trail); only the common tail (isInCode
// recompute, trail reset, arg-tab-stop tracking, commit) still runs.
func processChar(r *Result, raw string, skipDispatch bool) error {
	r.IsEscaped = false

	if !skipDispatch {
		r.Ch = raw
		if err := dispatchChar(r, raw); err != nil {
			return err
		}
	}

	r.IsInCode = !r.IsInComment && !r.IsInStr

	if isClosableCh(r) {
		resetParenTrail(r, r.LineNo, r.X+len(r.Ch))
	}
	if r.Ch != "" && !isCloseParenCh(r.Ch) {
		r.leadingCloseParenRun = false
	}

	if r.TrackingArgTabStop != NoArgTabStop {
		handleArgTabStop(r, raw)
	}

	commitChar(r, raw)
	return nil
}

func dispatchChar(r *Result, raw string) error {
	switch {
	case r.IsEscaping:
		if err := onEscapedChar(r); err != nil {
			return err
		}
	case isOpenParenCh(raw):
		onOpenParen(r)
	case isCloseParenCh(raw):
		if err := onCloseParen(r); err != nil {
			return err
		}
	case raw == `"`:
		onQuote(r)
	case r.IsInCode && len(raw) == 1 && r.CommentChars[raw[0]]:
		onCommentChar(r)
	case raw == `\`:
		r.IsEscaping = true
	case raw == "\t" && r.IsInCode:
		r.Ch = "  "
	case raw == "\n":
		r.IsInComment = false
		r.Ch = ""
	}
	return nil
}

// isClosableCh reports whether the (possibly rewritten) current character
// could terminate a list: in code, non-empty, not whitespace, and not
// itself a close-paren (close-parens extend the trail instead, handled in
// onCloseParen).
func isClosableCh(r *Result) bool {
	if !r.IsInCode || r.Ch == "" {
		return false
	}
	if isWhitespaceCh(r.Ch) || isCloseParenCh(r.Ch) {
		return false
	}
	return true
}

func onEscapedChar(r *Result) error {
	if r.Ch == "\n" {
		if r.IsInCode {
			e := newError(ErrEOLBackslash, r.InputLineNo, r.InputX, "code line ends in a backslash")
			if r.PartialResult {
				e.LineNo, e.X = r.LineNo, r.X
			}
			return e
		}
		r.IsInComment = false
		r.Ch = ""
	} else {
		r.IsEscaped = true
	}
	r.IsEscaping = false
	return nil
}

func onOpenParen(r *Result) {
	if !r.IsInCode {
		return
	}
	opener := newOpener(r.InputLineNo, r.InputX, r.LineNo, r.X, r.Ch)
	if r.ReturnParens {
		if len(r.ParenStack) > 0 {
			parent := r.ParenStack[len(r.ParenStack)-1]
			opener.Parent = parent
			parent.Children = append(parent.Children, opener)
		} else {
			r.Parens = append(r.Parens, opener)
		}
	}
	r.ParenStack = append(r.ParenStack, opener)
	r.TrackingArgTabStop = SpaceArgTabStop
}

func onCloseParen(r *Result) error {
	if !r.IsInCode {
		return nil
	}
	if len(r.ParenStack) > 0 {
		opener := r.ParenStack[len(r.ParenStack)-1]
		if matchingCloser[opener.Ch] == r.Ch {
			r.ParenStack = r.ParenStack[:len(r.ParenStack)-1]
			r.ParenTrail.Openers = append(r.ParenTrail.Openers, opener)
			r.ParenTrail.EndX = r.X + 1
			if r.ReturnParens {
				opener.Closer = &OpenerPos{LineNo: r.LineNo, X: r.X, Ch: r.Ch}
			}
			if r.Mode == IndentMode && r.Smart {
				if err := handleCursorHold(r, opener); err != nil {
					return err
				}
			}
			return nil
		}
	}
	return onUnmatchedCloseParen(r)
}

// handleCursorHold implements the §4.3 cursor-holding test: the cursor
// sits between a just-closed opener and its (now exposed) parent on the
// same line. While held, the trail's visible extent stops just past this
// character. If the previous cursor position held but the current one
// doesn't, the whole pass is restarted in Paren Mode.
func handleCursorHold(r *Result, opener *Opener) error {
	parentX := 0
	if len(r.ParenStack) > 0 {
		parentX = r.ParenStack[len(r.ParenStack)-1].X
	}

	holdsNow := r.CursorLine == opener.LineNo && !isNull(r.CursorX) &&
		parentX+1 <= r.CursorX && r.CursorX <= opener.X

	heldBefore := r.PrevCursorLine == opener.LineNo && !isNull(r.PrevCursorX) &&
		parentX+1 <= r.PrevCursorX && r.PrevCursorX <= opener.X

	if holdsNow {
		clampTrailToCursorHold(r)
	} else if heldBefore {
		return errReleaseCursorHold
	}
	return nil
}

func clampTrailToCursorHold(r *Result) {
	t := &r.ParenTrail
	if isNull(t.Clamped.StartX) {
		t.Clamped.StartX = t.StartX
		t.Clamped.EndX = t.EndX
		t.Clamped.Openers = append([]*Opener(nil), t.Openers...)
	}
	t.EndX = r.X + 1
}

// unmatchedCloseParenMessage reports which opener, if any, this close-paren
// character would have balanced, using matchingOpener to name it.
func unmatchedCloseParenMessage(ch string) string {
	opener, ok := matchingOpener[ch]
	if !ok {
		return "unmatched close-paren"
	}
	return "unmatched close-paren " + ch + " (expected a preceding " + opener + ")"
}

func onUnmatchedCloseParen(r *Result) error {
	if r.Mode == ParenMode {
		if r.Smart && r.leadingCloseParenRun {
			r.Ch = ""
			return nil
		}
		err := newError(ErrUnmatchedCloseParen, r.InputLineNo, r.InputX, unmatchedCloseParenMessage(r.Ch))
		if r.PartialResult {
			err.LineNo, err.X = r.LineNo, r.X
		}
		return err
	}

	// Indent Mode: cache tentative positions only; per DESIGN.md this is
	// never promoted to a hard failure, matching the "stray trailing
	// close dropped" success scenario.
	cacheErrorPos(r, ErrUnmatchedCloseParen, nil)
	if len(r.ParenStack) > 0 {
		top := r.ParenStack[len(r.ParenStack)-1]
		cacheErrorPos(r, ErrUnmatchedOpenParen, &OpenerPos{LineNo: top.LineNo, X: top.X, Ch: top.Ch})
	}
	r.Ch = ""
	return nil
}

func cacheErrorPos(r *Result, name ErrorName, extra *OpenerPos) {
	lineNo, x := r.InputLineNo, r.InputX
	if r.PartialResult {
		lineNo, x = r.LineNo, r.X
	}
	r.errorPosCache[name] = &Error{Name: name, LineNo: lineNo, X: x, Extra: extra}
}

func onQuote(r *Result) {
	switch {
	case r.IsInStr:
		r.IsInStr = false
	case r.IsInComment:
		r.QuoteDanger = !r.QuoteDanger
		if r.QuoteDanger {
			cacheErrorPos(r, ErrQuoteDanger, nil)
		}
	default:
		r.IsInStr = true
		cacheErrorPos(r, ErrUnclosedQuote, nil)
	}
}

func onCommentChar(r *Result) {
	r.IsInComment = true
	r.CommentX = r.X
	r.TrackingArgTabStop = NoArgTabStop
}

func handleArgTabStop(r *Result, raw string) {
	if len(r.ParenStack) == 0 {
		return
	}
	opener := r.ParenStack[len(r.ParenStack)-1]
	switch r.TrackingArgTabStop {
	case SpaceArgTabStop:
		if isWhitespaceCh(raw) {
			r.TrackingArgTabStop = ArgArgTabStop
		} else {
			r.TrackingArgTabStop = NoArgTabStop
		}
	case ArgArgTabStop:
		if !isWhitespaceCh(raw) {
			opener.ArgX = r.X
			r.TrackingArgTabStop = NoArgTabStop
		}
	}
}

// commitChar splices the (possibly rewritten) character into the current
// output line, adjusts indentDelta bookkeeping, shifts the cursor if it
// lay to the right of this position, and advances X.
//
// The indentDelta decrement by (origLen + newLen), not (newLen - origLen),
// matches the reference's deletion-plus-insertion bookkeeping that the
// downstream indent-correction math is built against.
func commitChar(r *Result, origCh string) {
	origLen := 1
	newLen := len([]rune(r.Ch))
	if r.Ch != origCh {
		spliceLine(r, r.LineNo, r.X, r.X+origLen, r.Ch)
		r.IndentDelta -= origLen + newLen
		if r.CursorLine == r.LineNo && !isNull(r.CursorX) && r.CursorX > r.X {
			r.CursorX += newLen - origLen
		}
	}
	r.X += newLen
}

// spliceLine replaces the run of runes at 1-based columns [start, end) on
// the given 1-based line with replacement.
func spliceLine(r *Result, lineNo, start, end int, replacement string) {
	line := []rune(lineAt(r, lineNo))
	s, e := start-1, end-1
	if s < 0 {
		s = 0
	}
	if e > len(line) {
		e = len(line)
	}
	if s > len(line) {
		s = len(line)
	}
	if e < s {
		e = s
	}
	out := make([]rune, 0, len(line)-(e-s)+len([]rune(replacement)))
	out = append(out, line[:s]...)
	out = append(out, []rune(replacement)...)
	out = append(out, line[e:]...)
	setLineAt(r, lineNo, string(out))
}
