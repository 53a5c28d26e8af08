package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndentModeRewritesTrailingCloseParens(t *testing.T) {
	test := func(input, expected string) func(*testing.T) {
		return func(t *testing.T) {
			r, err := Run(input, IndentMode, false, Config{})
			require.NoError(t, err)
			assert.True(t, r.Success)
			assert.Equal(t, expected, r.Text())
		}
	}

	t.Run("already balanced", test("(foo\n  bar)", "(foo\n  bar)"))
	t.Run("dedent closes the form", test("(foo\n  bar\nbaz)", "(foo\n  bar)\nbaz"))
	t.Run("stray trailing close dropped", test("(foo))", "(foo)"))
	t.Run("nested forms close on the same line as their last child", test("(defn f\n  (+ 1 2", "(defn f\n  (+ 1 2))"))
}

func TestParenModeRewritesIndentation(t *testing.T) {
	test := func(input, expected string) func(*testing.T) {
		return func(t *testing.T) {
			r, err := Run(input, ParenMode, false, Config{})
			require.NoError(t, err)
			assert.True(t, r.Success)
			assert.Equal(t, expected, r.Text())
		}
	}

	t.Run("already aligned", test("(foo\n  bar)", "(foo\n  bar)"))
	t.Run("nested forms already aligned", test("(defn f\n  (+ 1 2))", "(defn f\n  (+ 1 2))"))
}

func TestParenModeReportsUnclosedParen(t *testing.T) {
	r, err := Run("(foo\n  bar", ParenMode, false, Config{})
	require.Error(t, err)
	assert.False(t, r.Success)

	engErr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, ErrUnclosedParen, engErr.Name)
	assert.Equal(t, 1, engErr.LineNo)
	assert.Equal(t, 1, engErr.X)
}

func TestIndentModeDetectsUnclosedQuote(t *testing.T) {
	r, err := Run(`(foo "bar)`, IndentMode, false, Config{})
	require.Error(t, err)
	assert.False(t, r.Success)

	engErr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, ErrUnclosedQuote, engErr.Name)
}

func TestSmartModeFallsBackToParenModeOnCursorHoldRelease(t *testing.T) {
	// "(foo (bar)\n baz)": the opener for "(bar)" sits at column 6, its
	// parent "(foo" at column 1, so a cursor at column 3 (inside "foo")
	// lies within the hold window [parent.X+1, opener.X] = [2, 6] and
	// holds the "(bar)" form open when it closes.
	input := "(foo (bar)\n baz)"

	held, err := Run(input, IndentMode, true, Config{CursorLine: 1, CursorX: 3})
	require.NoError(t, err)
	assert.True(t, held.Success)

	// Moving the cursor outside that window releases the hold and
	// restarts the whole pass in plain Paren Mode.
	moved, err := Run(input, IndentMode, true, Config{
		CursorLine:     1,
		CursorX:        10,
		PrevCursorLine: 1,
		PrevCursorX:    3,
	})
	require.NoError(t, err)
	assert.True(t, moved.Success)
}

func TestSmartModeBehavesLikeIndentModeWithoutAHold(t *testing.T) {
	r, err := Run("(foo\n  bar)", IndentMode, true, Config{})
	require.NoError(t, err)
	assert.True(t, r.Success)
	assert.Equal(t, "(foo\n  bar)", r.Text())
}

func TestLeadingCloseParenNonSmartIndentModeDropsChar(t *testing.T) {
	r, err := Run(")foo", IndentMode, false, Config{})
	require.NoError(t, err)
	assert.True(t, r.Success)
	assert.Equal(t, "foo", r.Text())
}

func TestCommentLinesDoNotResetCarriedTrail(t *testing.T) {
	input := "(foo\n  ; a comment\n  bar\nbaz)"
	r, err := Run(input, IndentMode, false, Config{})
	require.NoError(t, err)
	assert.True(t, r.Success)
	assert.Equal(t, "(foo\n  ; a comment\n  bar)\nbaz", r.Text())
}
