package engine

// Change is one editor-reported (old, new) text replacement in input
// coordinates, used to attribute indentation shifts to the user rather
// than to Parinfer.
type Change struct {
	LineNo  int
	X       int
	OldText string
	NewText string
}

// ChangeRecord is the per-position entry in the two-level change index.
type ChangeRecord struct {
	X         int
	LineNo    int
	OldEndX   int
	NewEndX   int
	OldText   string
	NewText   string
}

// ChangeIndex is a read-only, two-level mapping newEndLineNo -> newEndX ->
// ChangeRecord built once before the line loop so the character loop can
// look up an indentDelta adjustment in O(1) at exactly the position where
// a reported change ends.
type ChangeIndex map[int]map[int]*ChangeRecord

// BuildChangeIndex indexes a caller-supplied change log keyed by the
// position each change ends at after being applied, which is the position
// the character loop will actually walk over.
func BuildChangeIndex(changes []Change) ChangeIndex {
	if len(changes) == 0 {
		return nil
	}
	idx := make(ChangeIndex, len(changes))
	for _, c := range changes {
		newLines := splitLines(c.NewText)
		var newEndLineNo, newEndX int
		if len(newLines) == 1 {
			newEndLineNo = c.LineNo
			newEndX = c.X + len(c.NewText)
		} else {
			newEndLineNo = c.LineNo + len(newLines) - 1
			newEndX = len(newLines[len(newLines)-1])
		}

		oldLines := splitLines(c.OldText)
		var oldEndX int
		if len(oldLines) == 1 {
			oldEndX = c.X + len(c.OldText)
		} else {
			oldEndX = len(oldLines[len(oldLines)-1])
		}

		rec := &ChangeRecord{
			X:       c.X,
			LineNo:  c.LineNo,
			OldEndX: oldEndX,
			NewEndX: newEndX,
			OldText: c.OldText,
			NewText: c.NewText,
		}
		byX, ok := idx[newEndLineNo]
		if !ok {
			byX = make(map[int]*ChangeRecord)
			idx[newEndLineNo] = byX
		}
		byX[newEndX] = rec
	}
	return idx
}
