package engine

// onIndent (spec §4.4) runs once per line, at the first character that is
// neither newline, space, nor tab, while TrackingIndent is set. handled
// reports whether the triggering character has already been fully decided
// (dropped or migrated onto a carried-over trail) and should skip normal
// character dispatch.
func onIndent(r *Result) (handled bool, err error) {
	r.TrackingIndent = false
	r.IndentX = r.X

	switch {
	case isCloseParenCh(r.Ch):
		r.leadingCloseParenRun = true
		return onLeadingCloseParen(r)
	case len(r.Ch) == 1 && r.CommentChars[r.Ch[0]]:
		onLeadingComment(r)
		return false, nil
	default:
		return false, onLeadingCode(r)
	}
}

func onLeadingCloseParen(r *Result) (handled bool, err error) {
	if r.Mode == IndentMode {
		if !r.ForceBalance {
			if r.Smart {
				return false, errLeadingCloseParen
			}
			cacheErrorPos(r, ErrLeadingCloseParen, nil)
			r.Ch = ""
			return true, nil
		}
		r.Ch = ""
		return true, nil
	}

	// Paren Mode.
	if len(r.ParenStack) == 0 || matchingCloser[r.ParenStack[len(r.ParenStack)-1].Ch] != r.Ch {
		if r.Smart {
			r.Ch = ""
			return true, nil
		}
		e := newError(ErrUnmatchedCloseParen, r.InputLineNo, r.InputX, unmatchedCloseParenMessage(r.Ch))
		if r.PartialResult {
			e.LineNo, e.X = r.LineNo, r.X
		}
		return false, e
	}

	if !isNull(r.CursorX) && r.CursorLine == r.LineNo && r.CursorX < r.X {
		// Cursor sits left of the close-paren: treat it as the start of an
		// onIndent correction at this column instead of swallowing it.
		return false, onLeadingCode(r)
	}

	appendParenTrail(r)
	r.Ch = ""
	return true, nil
}

func onLeadingComment(r *Result) {
	parentIdx := resolveParentOpener(r, r.IndentX)
	if parentIdx < 0 || parentIdx >= len(r.ParenStack) {
		return
	}
	opener := r.ParenStack[parentIdx]
	applyPendingIndentDelta(r, opener)
}

func onLeadingCode(r *Result) error {
	if r.QuoteDanger {
		e := newError(ErrQuoteDanger, r.InputLineNo, r.InputX, "unbalanced quote inside comment")
		if r.PartialResult {
			e.LineNo, e.X = r.LineNo, r.X
		}
		return e
	}

	if r.Mode == IndentMode {
		correctParenTrail(r, r.IndentX)
		if len(r.ParenStack) > 0 {
			applyPendingIndentDelta(r, r.ParenStack[len(r.ParenStack)-1])
		}
		return nil
	}

	// Paren Mode: clamp the current indent to the parent's bounds, then
	// apply any pending shift the user hasn't already absorbed.
	parentIdx := resolveParentOpener(r, r.IndentX)
	if parentIdx >= 0 && parentIdx < len(r.ParenStack) {
		opener := r.ParenStack[parentIdx]
		clampIndent(r, opener)
		applyPendingIndentDelta(r, opener)
	}
	return nil
}

// setIndent rewrites the line's leading whitespace (columns [1, IndentX))
// so the first code character starts at column target, keeping X/IndentX
// and a same-line cursor consistent with the rewrite.
func setIndent(r *Result, target int) {
	if target < 1 {
		target = 1
	}
	if target == r.IndentX {
		return
	}
	oldLen := r.IndentX - 1
	newLen := target - 1
	spliceLine(r, r.LineNo, 1, r.IndentX, spacesOf(newLen))

	delta := newLen - oldLen
	if r.CursorLine == r.LineNo && !isNull(r.CursorX) && r.CursorX > oldLen {
		r.CursorX += delta
	}
	r.X += delta
	r.IndentX = target
}

// applyPendingIndentDelta shifts the current line by whatever portion of
// opener's accumulated IndentDelta hasn't yet been reflected in this pass's
// running r.IndentDelta (which accounts for shifts already absorbed via
// caller-reported Changes).
func applyPendingIndentDelta(r *Result, opener *Opener) {
	if opener.IndentDelta == r.IndentDelta {
		return
	}
	amount := opener.IndentDelta - r.IndentDelta
	setIndent(r, r.IndentX+amount)
	r.IndentDelta = opener.IndentDelta
}

func clampIndent(r *Result, opener *Opener) {
	minIndent := opener.X + 1
	maxIndent := opener.MaxChildIndent

	target := r.IndentX
	if target < minIndent {
		target = minIndent
	}
	if !isNull(maxIndent) && target > maxIndent {
		target = maxIndent
	}
	setIndent(r, target)
}

func spacesOf(n int) string {
	if n <= 0 {
		return ""
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}

// resolveParentOpener implements the decision table of spec §4.5: given an
// indentation column, find the index within the paren stack of the opener
// that claims this line as a child, scanning from the top down. Everything
// above the returned index closes on this line; the opener at the returned
// index is this line's new parent context. -1 means no opener claims this
// line: everything on the stack closes.
func resolveParentOpener(r *Result, indentX int) int {
	for i := len(r.ParenStack) - 1; i >= 0; i-- {
		opener := r.ParenStack[i]
		prevOutside := (opener.X - opener.IndentDelta) < (indentX - r.IndentDelta)
		currOutside := opener.X < indentX

		var isParent bool
		switch {
		case prevOutside && currOutside:
			isParent = true
		case !prevOutside && !currOutside:
			isParent = false
		case prevOutside && !currOutside:
			isParent = opener.IndentDelta == 0
		default: // !prevOutside && currOutside
			isParent = considerAdoption(r, i, opener, indentX)
		}

		if isParent {
			return i
		}
	}
	return -1
}

func considerAdoption(r *Result, i int, opener *Opener, indentX int) bool {
	if i == 0 {
		adopted := r.IndentDelta > opener.IndentDelta
		if adopted {
			opener.IndentDelta = 0
		}
		return adopted
	}
	next := r.ParenStack[i-1]

	var adopted bool
	switch {
	case next.IndentDelta <= opener.IndentDelta:
		adopted = indentX+next.IndentDelta > opener.X
	case next.IndentDelta > opener.IndentDelta:
		adopted = true
	}
	if adopted {
		opener.IndentDelta = 0
	}
	return adopted
}
