package engine

// Run executes one full pass of the algorithm (spec §2) over text in the
// given mode. A Smart-mode cursor-hold release restarts the whole pass once
// in Paren Mode, per §4.3; Run hides that trampoline from callers.
func Run(text string, mode Mode, smart bool, cfg Config) (*Result, error) {
	r, err := runPass(text, mode, smart, cfg)
	if err == nil || !isRestart(err) {
		return r, err
	}
	// Both restart signals (a leading close-paren Smart Indent Mode won't
	// silently drop, and a cursor-hold release) only ever originate from an
	// Indent Mode pass; both resolve the same way: rerun from scratch in
	// plain Paren Mode.
	return runPass(text, ParenMode, false, cfg)
}

func runPass(text string, mode Mode, smart bool, cfg Config) (*Result, error) {
	r := newResult(text, mode, smart, cfg)

	for i := range r.InputLines {
		if err := processLine(r, i); err != nil {
			r.Success = false
			return r, err
		}
	}

	if err := finalizeResult(r); err != nil {
		r.Success = false
		return r, err
	}
	r.Success = true
	return r, nil
}

func processLine(r *Result, idx int) error {
	r.InputLineNo++
	r.LineNo++
	r.InputX = 0
	r.X = 1

	raw := r.InputLines[idx]
	r.Lines = append(r.Lines, raw)

	initLineState(r)
	collectTabStops(r)

	runes := []rune(raw)
	isLastLine := idx == len(r.InputLines)-1

	limit := len(runes)
	if !isLastLine {
		limit++ // one synthetic trailing "\n"
	}

	for i := 0; i < limit; i++ {
		var ch string
		if i < len(runes) {
			ch = string(runes[i])
		} else {
			ch = "\n"
		}
		r.InputX++

		applyChangeDelta(r)

		skipDispatch := false
		if r.TrackingIndent && ch != " " && ch != "\t" && ch != "\n" {
			r.Ch = ch
			handled, err := onIndent(r)
			if err != nil {
				return err
			}
			skipDispatch = handled
		}

		if err := processChar(r, ch, skipDispatch); err != nil {
			return err
		}
	}

	finalizeLine(r)
	return nil
}

func initLineState(r *Result) {
	r.TrackingIndent = !r.IsInStr
	r.IndentX = nullCoord
	r.IndentDelta = 0
	r.TrackingArgTabStop = NoArgTabStop
	r.leadingCloseParenRun = false
}

// collectTabStops gathers one TabStop per still-open paren whenever the
// cursor or an active selection sits on this line, surfacing the column an
// editor should offer for re-indenting an argument.
func collectTabStops(r *Result) {
	onCursorLine := r.CursorLine == r.LineNo
	onSelectionLine := !isNull(r.SelectionStartLine) && r.SelectionStartLine == r.LineNo
	if !onCursorLine && !onSelectionLine {
		return
	}
	for _, opener := range r.ParenStack {
		r.TabStops = append(r.TabStops, TabStop{
			LineNo: opener.LineNo,
			X:      opener.X + 1,
			Ch:     opener.Ch,
			ArgX:   opener.ArgX,
		})
	}
}

// applyChangeDelta absorbs a caller-reported Change the instant the scan
// reaches the column right after its replacement text, so later
// indent-correction math (§4.4/§4.5) already accounts for edits the caller
// made before invoking the pass.
func applyChangeDelta(r *Result) {
	if r.Changes == nil {
		return
	}
	byX, ok := r.Changes[r.InputLineNo]
	if !ok {
		return
	}
	rec, ok := byX[r.InputX]
	if !ok {
		return
	}
	newLen := len([]rune(rec.NewText))
	oldLen := len([]rune(rec.OldText))
	r.IndentDelta += newLen - oldLen
}

// finalizeLine dispatches the per-line finalize steps of spec §4.6 once a
// line's characters have all been processed.
func finalizeLine(r *Result) {
	switch {
	case r.IsInStr:
		// Inside a multi-line string: this line's trail, if any, carries no
		// structural meaning and is left untouched for a future line to
		// correct once the string closes.
	case r.Mode == IndentMode:
		clampParenTrailToCursor(r)
		popParenTrail(r)
	case r.Mode == ParenMode:
		setMaxChildIndentFromTrail(r)
		if r.CursorLine != r.LineNo {
			cleanParenTrail(r)
		}
		rememberParenTrail(r)
	}
}

func setMaxChildIndentFromTrail(r *Result) {
	if len(r.ParenStack) == 0 {
		return
	}
	t := &r.ParenTrail
	if isNull(t.StartX) {
		return
	}
	top := r.ParenStack[len(r.ParenStack)-1]
	top.MaxChildIndent = t.StartX
}

// finalizeResult implements spec §4.7: in Indent Mode, a synthetic final
// indent event at column 1 flushes any still-open parens into the carried
// trail, closing them; then the shared checks run regardless of mode.
func finalizeResult(r *Result) error {
	if r.Mode == IndentMode {
		correctParenTrail(r, 1)
	}

	if r.QuoteDanger {
		return cachedOrNew(r, ErrQuoteDanger)
	}
	if r.IsInStr {
		return cachedOrNew(r, ErrUnclosedQuote)
	}
	if r.Mode == ParenMode && len(r.ParenStack) > 0 {
		bottom := r.ParenStack[0]
		e := newError(ErrUnclosedParen, bottom.InputLineNo, bottom.InputX, "unclosed paren")
		if r.PartialResult {
			e.LineNo, e.X = bottom.LineNo, bottom.X
		}
		return e
	}
	return nil
}

func cachedOrNew(r *Result, name ErrorName) error {
	if e, ok := r.errorPosCache[name]; ok {
		return e
	}
	return newError(name, r.InputLineNo, r.InputX, string(name))
}
