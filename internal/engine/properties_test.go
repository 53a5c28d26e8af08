package engine

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// snapshot reduces a Result to the fields spec §8's properties reason about,
// so cmp.Diff reports a focused mismatch instead of noise from internal
// bookkeeping (paren stacks, error caches) that isn't part of the contract.
type snapshot struct {
	Text       string
	CursorLine int
	CursorX    int
}

func snap(r *Result) snapshot {
	line, x := r.CursorLine, r.CursorX
	if isNull(line) {
		line = 0
	}
	if isNull(x) {
		x = 0
	}
	return snapshot{Text: r.Text(), CursorLine: line, CursorX: x}
}

// TestIdempotence covers spec §8's "M(M(text)) == M(text)" property: running
// a mode a second time over its own output changes nothing further.
func TestIdempotence(t *testing.T) {
	cases := []struct {
		name  string
		input string
		mode  Mode
	}{
		{"indent, already balanced", "(foo\n  bar)", IndentMode},
		{"indent, carried trail plus trailing code line", "(foo\n  bar)\nbaz", IndentMode},
		{"paren, already aligned", "(foo\n  bar)", ParenMode},
		{"paren, nested forms", "(defn f\n  (+ 1 2))", ParenMode},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			first, err := Run(tc.input, tc.mode, false, Config{})
			require.NoError(t, err)
			require.True(t, first.Success)

			second, err := Run(first.Text(), tc.mode, false, Config{})
			require.NoError(t, err)
			require.True(t, second.Success)

			if diff := cmp.Diff(snap(first), snap(second)); diff != "" {
				t.Errorf("pass was not idempotent (-first +second):\n%s", diff)
			}
		})
	}
}

// TestCrossModeFixedPoint covers spec §8's "Paren(Indent(text)) ==
// Indent(text)" (and the symmetric case): once one mode has reconciled a
// text, running the other mode over that result is a no-op, because the
// result is already both indentation- and paren-consistent.
func TestCrossModeFixedPoint(t *testing.T) {
	input := "(foo\n  bar)"

	indented, err := Run(input, IndentMode, false, Config{})
	require.NoError(t, err)
	require.True(t, indented.Success)

	reparened, err := Run(indented.Text(), ParenMode, false, Config{})
	require.NoError(t, err)
	require.True(t, reparened.Success)
	assert.Equal(t, indented.Text(), reparened.Text())

	parened, err := Run(input, ParenMode, false, Config{})
	require.NoError(t, err)
	require.True(t, parened.Success)

	reindented, err := Run(parened.Text(), IndentMode, false, Config{})
	require.NoError(t, err)
	require.True(t, reindented.Success)
	assert.Equal(t, parened.Text(), reindented.Text())
}

// TestCursorPreservationWhenNoEditPrecedesIt covers spec §8's "cursor
// preservation" property: a rewrite entirely to the right of the cursor
// (or on an earlier line) must not move it.
func TestCursorPreservationWhenNoEditPrecedesIt(t *testing.T) {
	// Indent Mode drops the stray trailing close-paren on line 2, but the
	// cursor sits on line 1, which nothing ever rewrites, so it is
	// untouched.
	r, err := Run("(foo\n  bar))", IndentMode, false, Config{CursorLine: 1, CursorX: 3})
	require.NoError(t, err)
	require.True(t, r.Success)
	assert.Equal(t, "(foo\n  bar)", r.Text())
	assert.Equal(t, 1, r.CursorLine)
	assert.Equal(t, 3, r.CursorX)
}
