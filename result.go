package parinfer

import "github.com/vippsas/parinfer-go/internal/engine"

// Error is the domain error surfaced on a failed pass (§7). Name is one of
// the fixed taxonomy strings; Extra, when non-nil, points at the opener an
// unmatched-close-paren error refers to.
type Error struct {
	Name    string
	Message string
	LineNo  int
	X       int
	Extra   *OpenerPos
}

func (e *Error) Error() string {
	return e.Message
}

// OpenerPos is the position of an open paren.
type OpenerPos struct {
	LineNo int
	X      int
	Ch     string
}

// Opener describes one paren in the tree returned when Options.ReturnParens
// is set.
type Opener struct {
	LineNo, X int
	Ch        string
	Children  []*Opener
	Closer    *OpenerPos
}

// TabStop is one argument-column hint for editors.
type TabStop struct {
	LineNo, X int
	Ch        string
	ArgX      int
}

// ParenTrailRange is one completed line's trailing close-paren extent.
type ParenTrailRange struct {
	LineNo, StartX, EndX int
}

// Result is the outcome of one pass (§6). On success, Text holds the
// reconciled output and Error is nil. On failure, Text/CursorLine/CursorX
// reflect the original input unless Options.PartialResult was set, in
// which case they reflect the work done up to the error.
type Result struct {
	Success bool
	Text    string

	CursorLine int
	CursorX    int

	TabStops    []TabStop
	ParenTrails []ParenTrailRange
	Parens      []*Opener

	Error *Error
}

func publicCoord(v int) int {
	if v == -999 {
		return 0
	}
	return v
}

func fromEngineError(e *engine.Error) *Error {
	if e == nil {
		return nil
	}
	out := &Error{
		Name:    string(e.Name),
		Message: e.Error(),
		LineNo:  e.LineNo,
		X:       e.X,
	}
	if e.Extra != nil {
		out.Extra = &OpenerPos{LineNo: e.Extra.LineNo, X: e.Extra.X, Ch: e.Extra.Ch}
	}
	return out
}

func fromEngineOpener(o *engine.Opener) *Opener {
	if o == nil {
		return nil
	}
	out := &Opener{LineNo: o.LineNo, X: o.X, Ch: o.Ch}
	if o.Closer != nil {
		out.Closer = &OpenerPos{LineNo: o.Closer.LineNo, X: o.Closer.X, Ch: o.Closer.Ch}
	}
	for _, child := range o.Children {
		out.Children = append(out.Children, fromEngineOpener(child))
	}
	return out
}

func fromEngineResult(r *engine.Result, err error) *Result {
	text, cursorLine, cursorX := r.Text(), r.CursorLine, r.CursorX
	if err != nil && !r.PartialResult {
		text = r.OrigText
		cursorLine, cursorX = r.OrigCursor()
	}

	out := &Result{
		Success:    err == nil,
		Text:       text,
		CursorLine: publicCoord(cursorLine),
		CursorX:    publicCoord(cursorX),
	}

	for _, ts := range r.TabStops {
		out.TabStops = append(out.TabStops, TabStop{
			LineNo: ts.LineNo, X: ts.X, Ch: ts.Ch, ArgX: publicCoord(ts.ArgX),
		})
	}
	for _, pt := range r.ParenTrails {
		out.ParenTrails = append(out.ParenTrails, ParenTrailRange{LineNo: pt.LineNo, StartX: pt.StartX, EndX: pt.EndX})
	}
	for _, p := range r.Parens {
		out.Parens = append(out.Parens, fromEngineOpener(p))
	}

	if engineErr, ok := err.(*engine.Error); ok {
		out.Error = fromEngineError(engineErr)
	}
	return out
}
