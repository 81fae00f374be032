package textinput

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoveCollapsesSelection(t *testing.T) {
	h := newField("hello")
	h.SetSelection(1, 4)
	h.MoveLeft(false, false)
	assert.Equal(t, 1, h.Cursor().Idx)
	assert.False(t, h.Cursor().Selecting)

	h.SetSelection(4, 1)
	h.MoveRight(false, false)
	assert.Equal(t, 4, h.Cursor().Idx)
	assert.False(t, h.Cursor().Selecting)
}

func TestMoveClampsAtEdges(t *testing.T) {
	h := newField("ab")
	h.MoveLeft(false, false)
	assert.Equal(t, 0, h.Cursor().Idx)

	h.SetCursorIndex(2)
	h.MoveRight(false, false)
	assert.Equal(t, 2, h.Cursor().Idx)
}

func TestMoveExtendsSelection(t *testing.T) {
	h := newField("hello")
	h.SetCursorIndex(1)
	h.MoveRight(true, false)
	h.MoveRight(true, false)

	c := h.Cursor()
	assert.True(t, c.HasSelection())
	assert.Equal(t, 1, c.Anchor)
	assert.Equal(t, 3, c.Idx)
	assert.Equal(t, "el", h.SelectedText())

	h.MoveLeft(true, false)
	h.MoveLeft(true, false)
	assert.Equal(t, 1, h.Cursor().Anchor)
	assert.False(t, h.Cursor().HasSelection())
}

func TestWordMotion(t *testing.T) {
	h := newField("foo bar.baz")

	var right []int
	for range 6 {
		h.MoveRight(false, true)
		right = append(right, h.Cursor().Idx)
	}
	assert.Equal(t, []int{3, 4, 7, 8, 11, 11}, right)

	var left []int
	for range 6 {
		h.MoveLeft(false, true)
		left = append(left, h.Cursor().Idx)
	}
	assert.Equal(t, []int{8, 7, 4, 3, 0, 0}, left)
}

func TestWordMotionFromInsideWord(t *testing.T) {
	h := newField("hello world")
	h.SetCursorIndex(2)
	h.MoveRight(false, true)
	assert.Equal(t, 5, h.Cursor().Idx)

	h.SetCursorIndex(8)
	h.MoveLeft(false, true)
	assert.Equal(t, 6, h.Cursor().Idx)
}

func TestWordMotionUnicode(t *testing.T) {
	h := newField("привет мир")
	h.MoveRight(false, true)
	assert.Equal(t, 6, h.Cursor().Idx)

	h = newField("h\u00e9llo w\u00f6rld")
	h.MoveRight(false, true)
	assert.Equal(t, 5, h.Cursor().Idx)
}

func TestWordMotionCrossesLineBreak(t *testing.T) {
	h := newField("ab\ncd")
	h.SetCursorIndex(2)
	h.MoveRight(false, true)
	assert.Equal(t, 3, h.Cursor().Idx)

	h.MoveLeft(false, true)
	assert.Equal(t, 2, h.Cursor().Idx)
}

func TestWordMotionPerCursorLine(t *testing.T) {
	h := newField("one\ntwo three")
	h.AddCursor(8)
	h.MoveRight(false, true)

	assert.Equal(t, 3, h.Cursor().Idx)
	require.Len(t, h.Cursors(), 1)
	assert.Equal(t, 13, h.Cursors()[0].Idx)
}

func TestVerticalKeepsPreferredColumn(t *testing.T) {
	h := newField("abcdef\nab\nabcdef")
	h.SetCursorIndex(5)

	h.MoveDown(false)
	assert.Equal(t, 9, h.Cursor().Idx)
	assert.Equal(t, 5, h.Cursor().PreferredColumn)

	h.MoveDown(false)
	assert.Equal(t, 15, h.Cursor().Idx)

	h.MoveUp(false)
	assert.Equal(t, 9, h.Cursor().Idx)
	h.MoveUp(false)
	assert.Equal(t, 5, h.Cursor().Idx)
}

func TestHorizontalResetsPreferredColumn(t *testing.T) {
	h := newField("abcdef\nab\nabcdef")
	h.SetCursorIndex(5)
	h.MoveDown(false)
	h.MoveLeft(false, false)
	assert.Equal(t, 1, h.Cursor().PreferredColumn)

	h.MoveDown(false)
	assert.Equal(t, 11, h.Cursor().Idx)
}

func TestUpOnFirstLine(t *testing.T) {
	h := newField("abc\ndef")
	h.SetCursorIndex(2)

	h.MoveUp(false)
	assert.Equal(t, 0, h.Cursor().Idx)
	assert.Equal(t, 0, h.Cursor().PreferredColumn)

	h.MoveDown(false)
	assert.Equal(t, 4, h.Cursor().Idx)
}

func TestDownOnLastLine(t *testing.T) {
	h := newField("abc\ndef")
	h.SetCursorIndex(5)

	h.MoveDown(false)
	assert.Equal(t, 7, h.Cursor().Idx)
	assert.Equal(t, 3, h.Cursor().PreferredColumn)
}

func TestVerticalExtend(t *testing.T) {
	h := newField("abc\ndef")
	h.SetCursorIndex(1)
	h.MoveDown(true)

	assert.Equal(t, 1, h.Cursor().Anchor)
	assert.Equal(t, 5, h.Cursor().Idx)
	assert.Equal(t, "bc\nd", h.SelectedText())

	h.MoveUp(false)
	assert.False(t, h.Cursor().Selecting)
	assert.Equal(t, 1, h.Cursor().Idx)
}

func TestLineStartEnd(t *testing.T) {
	h := newField("abc\ndef")
	h.SetCursorIndex(5)

	h.MoveLineStart(false)
	assert.Equal(t, 4, h.Cursor().Idx)

	h.MoveLineEnd(true)
	assert.Equal(t, 7, h.Cursor().Idx)
	assert.Equal(t, "def", h.SelectedText())
}

func TestNavigationDeduplicates(t *testing.T) {
	h := newField("abc")
	h.AddCursor(1)
	require.Equal(t, 2, h.CursorCount())

	h.MoveLeft(false, false)
	assert.Equal(t, 1, h.CursorCount())
	assert.Equal(t, 0, h.Cursor().Idx)
}

func TestExtendingUpFoldsMeetingCursors(t *testing.T) {
	h := newField("ab\ncd")
	h.SetCursorIndex(0)
	h.AddCursor(3)

	h.MoveUp(true)

	require.Equal(t, 1, h.CursorCount())
	c := h.Cursor()
	assert.Equal(t, 0, c.Idx)
	assert.Equal(t, 3, c.Anchor)
	assert.Equal(t, "ab\n", h.SelectedText())
}

func TestExtendingUpFromTwoLinesKeepsUnion(t *testing.T) {
	h := newField("ab\ncd\nef")
	h.SetCursorIndex(6)
	h.AddCursor(3)

	h.MoveUp(true)
	require.Equal(t, 2, h.CursorCount())

	h.MoveUp(true)
	require.Equal(t, 1, h.CursorCount())
	c := h.Cursor()
	assert.Equal(t, 0, c.Idx)
	assert.Equal(t, 6, c.Anchor)
	assert.Equal(t, "ab\ncd\n", h.SelectedText())
}

func TestVerticalDeduplicates(t *testing.T) {
	h := newField("a\nabc")
	h.SetCursorIndex(4)
	h.AddCursor(5)
	h.MoveUp(false)

	assert.Equal(t, 1, h.CursorCount())
	assert.Equal(t, 1, h.Cursor().Idx)
}
