package parinfer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndentModeReconcilesParens(t *testing.T) {
	r := IndentMode("(foo\n  bar\nbaz)", Options{})
	require.NotNil(t, r)
	assert.True(t, r.Success)
	assert.Equal(t, "(foo\n  bar)\nbaz", r.Text)
	assert.Nil(t, r.Error)
}

func TestParenModeReconcilesIndentation(t *testing.T) {
	r := ParenMode("(foo\n  bar)", Options{})
	require.NotNil(t, r)
	assert.True(t, r.Success)
	assert.Equal(t, "(foo\n  bar)", r.Text)
}

func TestSmartModeWithoutSelectionBehavesLikeIndentMode(t *testing.T) {
	r := SmartMode("(foo\n  bar)", Options{})
	assert.True(t, r.Success)
	assert.Equal(t, "(foo\n  bar)", r.Text)
}

func TestSmartModeWithSelectionDisablesHoldTracking(t *testing.T) {
	// A positive SelectionStartLine turns off cursor-hold tracking, so
	// SmartMode falls through to a plain Indent Mode pass regardless of
	// cursor position.
	r := SmartMode("(foo\n  bar)", Options{SelectionStartLine: 1, CursorLine: 1, CursorX: 3})
	assert.True(t, r.Success)
	assert.Equal(t, "(foo\n  bar)", r.Text)
}

func TestFailedPassRestoresOriginalTextAndCursor(t *testing.T) {
	orig := "(foo\n  bar"
	r := ParenMode(orig, Options{CursorLine: 2, CursorX: 5})
	require.False(t, r.Success)
	require.NotNil(t, r.Error)
	assert.Equal(t, "unclosed-paren", r.Error.Name)
	assert.Equal(t, orig, r.Text)
	assert.Equal(t, 2, r.CursorLine)
	assert.Equal(t, 5, r.CursorX)
}

func TestPartialResultKeepsWorkDoneBeforeTheError(t *testing.T) {
	orig := "(foo\n  bar"
	r := ParenMode(orig, Options{PartialResult: true})
	require.False(t, r.Success)
	require.NotNil(t, r.Error)
	// With PartialResult set, Text reflects the in-progress output rather
	// than being rolled back to the original.
	assert.Equal(t, orig, r.Text)
}

func TestCustomCommentCharsAreHonored(t *testing.T) {
	r := IndentMode("(foo\n  # a comment\n  bar)", Options{CommentChars: []byte{'#'}})
	assert.True(t, r.Success)
	assert.Equal(t, "(foo\n  # a comment\n  bar)", r.Text)
}

func TestReturnParensExposesTheOpenerTree(t *testing.T) {
	r := IndentMode("(foo (bar))", Options{ReturnParens: true})
	require.True(t, r.Success)
	require.Len(t, r.Parens, 1)
	foo := r.Parens[0]
	assert.Equal(t, "(", foo.Ch)
	require.Len(t, foo.Children, 1)
	assert.Equal(t, "(", foo.Children[0].Ch)
	require.NotNil(t, foo.Children[0].Closer)
}
