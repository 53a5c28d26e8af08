package engine

// Result is the single process-wide working value threaded through every
// operation of one pass. It is created once per top-level invocation and
// mutated in place by the character dispatch; the public result is derived
// from it only at the very end.
//
// All line numbers and columns on Result are 1-based, per the data model.
// Output lines are still stored 0-indexed in the Lines slice; use lineAt /
// setLineAt (below) rather than indexing Lines directly with a 1-based
// LineNo.
type Result struct {
	Mode  Mode
	Smart bool

	// Input
	OrigText    string
	InputLines  []string
	InputLineNo int
	InputX      int

	// Output
	Lines  []string
	LineNo int
	X      int
	Ch     string

	// Paren stack: openers in strictly increasing (LineNo, X) order.
	ParenStack []*Opener

	// Paren trail for the current output line.
	ParenTrail ParenTrail

	// One entry per completed line, exported for editors.
	ParenTrails []RememberedTrail

	// Cursor context; nullCoord means unknown/absent.
	CursorLine         int
	CursorX            int
	PrevCursorLine     int
	PrevCursorX        int
	SelectionStartLine int

	// origCursorLine/origCursorX preserve the caller-reported cursor
	// position untouched by in-pass shifts, for reporting on a failed,
	// non-partial result (§6).
	origCursorLine int
	origCursorX    int

	// Lexer flags.
	IsInCode    bool
	IsInStr     bool
	IsInComment bool
	IsEscaping  bool
	IsEscaped   bool
	QuoteDanger bool
	CommentX    int

	CommentChars map[byte]bool

	// Indent tracking.
	TrackingIndent     bool
	IndentX            int
	IndentDelta        int
	TrackingArgTabStop TrackingArgTabStop

	Changes ChangeIndex

	// Errors.
	errorPosCache map[ErrorName]*Error
	Err           *Error
	Success       bool

	// Output extras.
	TabStops      []TabStop
	Parens        []*Opener
	PartialResult bool
	ForceBalance  bool
	ReturnParens  bool

	// leadingCloseParenRun is true while the current line's leading run of
	// close-parens is still being consumed; it lets a later, non-leading
	// close-paren in that same run be recognized by onUnmatchedCloseParen.
	leadingCloseParenRun bool
}

// TabStop is one argument-column hint surfaced to editors.
type TabStop struct {
	LineNo int
	X      int
	Ch     string
	ArgX   int
}

func newResult(text string, mode Mode, smart bool, cfg Config) *Result {
	commentChars := cfg.CommentChars
	if len(commentChars) == 0 {
		commentChars = defaultCommentChars()
	}
	ccSet := make(map[byte]bool, len(commentChars))
	for _, c := range commentChars {
		ccSet[c] = true
	}

	inputLines := splitLines(text)

	r := &Result{
		Mode:               mode,
		Smart:              smart,
		OrigText:           text,
		InputLines:         inputLines,
		InputLineNo:        0,
		InputX:             nullCoord,
		Lines:              make([]string, 0, len(inputLines)),
		LineNo:             0,
		X:                  1,
		IsInCode:           true,
		CursorLine:         orNull(cfg.CursorLine),
		CursorX:            orNull(cfg.CursorX),
		PrevCursorLine:     orNull(cfg.PrevCursorLine),
		PrevCursorX:        orNull(cfg.PrevCursorX),
		SelectionStartLine: orNull(cfg.SelectionStartLine),
		CommentX:           nullCoord,
		CommentChars:       ccSet,
		IndentX:            nullCoord,
		Changes:            BuildChangeIndex(cfg.Changes),
		errorPosCache:      make(map[ErrorName]*Error),
		PartialResult:      cfg.PartialResult,
		ForceBalance:       cfg.ForceBalance,
		ReturnParens:       cfg.ReturnParens,
	}
	r.origCursorLine, r.origCursorX = r.CursorLine, r.CursorX
	r.ParenTrail = newParenTrail()
	return r
}

// OrigCursor returns the caller-reported cursor position untouched by
// in-pass shifts.
func (r *Result) OrigCursor() (line, x int) { return r.origCursorLine, r.origCursorX }

// Text joins the output lines back into a single string using \n, per the
// external interface's line-ending contract (§6).
func (r *Result) Text() string {
	return joinLines(r.Lines)
}

func orNull(v int) int {
	if v <= 0 {
		return nullCoord
	}
	return v
}

// lineAt and setLineAt translate the 1-based LineNo convention used
// throughout the algorithm into the 0-indexed Lines slice.
func lineAt(r *Result, lineNo int) string {
	return r.Lines[lineNo-1]
}

func setLineAt(r *Result, lineNo int, s string) {
	r.Lines[lineNo-1] = s
}
