package engine

// resetParenTrail (spec §4.6 Reset) starts a fresh, empty trail at the
// given position; called after every closable character. A new line does
// not reset the trail, so the next line's onIndent can still correct the
// previous line's trail.
func resetParenTrail(r *Result, lineNo, x int) {
	r.ParenTrail = ParenTrail{
		LineNo:  lineNo,
		StartX:  x,
		EndX:    x,
		Clamped: ClampedParenTrail{StartX: nullCoord, EndX: nullCoord},
	}
}

// clampParenTrailToCursor (spec §4.6 Clamp to cursor) runs once per line,
// in Indent Mode, after the character loop for that line has finished. If
// the cursor sits strictly right of the trail's start and we're not in a
// comment, any leading close-parens now left of the cursor are peeled off
// into the Clamped sub-record.
func clampParenTrailToCursor(r *Result) {
	t := &r.ParenTrail
	if isNull(t.LineNo) || r.IsInComment {
		return
	}
	if r.CursorLine != t.LineNo || isNull(r.CursorX) {
		return
	}
	if r.CursorX <= t.StartX {
		return
	}

	newStartX := t.StartX
	if r.CursorX > newStartX {
		newStartX = r.CursorX
	}
	newEndX := t.EndX
	if newStartX > newEndX {
		newEndX = newStartX
	}

	line := []rune(lineAt(r, t.LineNo))
	removed := 0
	for i := t.StartX - 1; i < newStartX-1 && i < len(line); i++ {
		if isCloseParenCh(string(line[i])) {
			removed++
		}
	}

	clampedOpeners := t.Openers
	if removed > len(clampedOpeners) {
		removed = len(clampedOpeners)
	}

	if isNull(t.Clamped.StartX) {
		t.Clamped.StartX = t.StartX
		t.Clamped.EndX = t.EndX
	}
	t.Clamped.Openers = append(t.Clamped.Openers, clampedOpeners[:removed]...)

	t.StartX = newStartX
	t.EndX = newEndX
	t.Openers = clampedOpeners[removed:]
}

// popParenTrail (spec §4.6 Pop) returns every opener of a non-empty trail
// back to the paren stack, in reverse order, so later indentation
// correction can re-close against the right set of opens.
func popParenTrail(r *Result) {
	t := &r.ParenTrail
	if len(t.Openers) == 0 {
		return
	}
	for i := len(t.Openers) - 1; i >= 0; i-- {
		r.ParenStack = append(r.ParenStack, t.Openers[i])
	}
	t.Openers = nil
}

// correctParenTrail (spec §4.6 Correct) is invoked from onIndent in Indent
// Mode: it resolves the parent opener for the current indentation, pops
// that many openers off the stack into the trail, and splices the
// corresponding close characters into the line.
func correctParenTrail(r *Result, indentX int) {
	var closers []string
	parentIdx := resolveParentOpener(r, indentX)

	for len(r.ParenStack) > parentIdx+1 {
		opener := r.ParenStack[len(r.ParenStack)-1]
		r.ParenStack = r.ParenStack[:len(r.ParenStack)-1]
		opener.MaxChildIndent = indentX
		closers = append(closers, matchingCloser[opener.Ch])
		r.ParenTrail.Openers = append(r.ParenTrail.Openers, opener)
	}

	if len(closers) == 0 {
		return
	}

	closeStr := ""
	for _, c := range closers {
		closeStr += c
	}

	t := &r.ParenTrail
	spliceLine(r, t.LineNo, t.StartX, t.EndX, closeStr)
	t.EndX = t.StartX + len([]rune(closeStr))
	rememberParenTrail(r)
}

// cleanParenTrail (spec §4.6 Clean) runs in Paren Mode at per-line
// finalize: if the line's trail mixes spaces in among the close-parens,
// the spaces are stripped in place (Paren Mode never rewrites the
// close-parens themselves, only their exact packing).
func cleanParenTrail(r *Result) {
	t := &r.ParenTrail
	if isNull(t.LineNo) || t.StartX == t.EndX {
		return
	}
	line := []rune(lineAt(r, t.LineNo))
	if t.EndX-1 > len(line) {
		return
	}
	segment := line[t.StartX-1 : t.EndX-1]

	hasSpace := false
	allParens := true
	for _, ch := range segment {
		if ch == ' ' {
			hasSpace = true
		} else if !isCloseParenCh(string(ch)) {
			allParens = false
		}
	}
	if !hasSpace || !allParens {
		return
	}

	cleaned := make([]rune, 0, len(segment))
	for _, ch := range segment {
		if ch != ' ' {
			cleaned = append(cleaned, ch)
		}
	}
	spliceLine(r, t.LineNo, t.StartX, t.EndX, string(cleaned))
	t.EndX = t.StartX + len(cleaned)
}

// appendParenTrail (spec §4.6 Append) is Paren Mode's leading-close-paren
// path: the stack top is popped and its matching closer is inserted at
// the trail's current end.
func appendParenTrail(r *Result) {
	if len(r.ParenStack) == 0 {
		return
	}
	opener := r.ParenStack[len(r.ParenStack)-1]
	r.ParenStack = r.ParenStack[:len(r.ParenStack)-1]

	t := &r.ParenTrail
	closer := matchingCloser[opener.Ch]
	spliceLine(r, t.LineNo, t.EndX, t.EndX, closer)
	t.Openers = append(t.Openers, opener)
	t.EndX += len([]rune(closer))
	rememberParenTrail(r)
}

// rememberParenTrail (spec §4.6 Remember) pushes the trail's current
// extents into the exported ParenTrails sequence, coalescing with the
// previous entry when it's the same line.
func rememberParenTrail(r *Result) {
	t := &r.ParenTrail
	startX, endX := t.StartX, t.EndX
	if !isNull(t.Clamped.StartX) {
		startX = t.Clamped.StartX
	}

	if len(r.ParenTrails) > 0 {
		last := &r.ParenTrails[len(r.ParenTrails)-1]
		if last.LineNo == t.LineNo {
			last.StartX = startX
			last.EndX = endX
			return
		}
	}
	r.ParenTrails = append(r.ParenTrails, RememberedTrail{
		LineNo: t.LineNo,
		StartX: startX,
		EndX:   endX,
	})
}
