package textinput

import (
	"regexp"
	"unicode/utf8"

	"github.com/dshills/multicaret/internal/engine/cursor"
)

// wordPattern tokenizes a line into runs of word characters or single
// non-word characters.
var wordPattern = regexp.MustCompile(`[\p{L}\p{N}\p{M}\p{Pc}]+|[^\p{L}\p{N}\p{M}\p{Pc}]`)

// MoveLeft moves every cursor one character left.
//
// Without extend, a cursor with a selection collapses to the selection's
// start instead of moving. With extend, the selection is anchored at the
// cursor's position on first extension. With word, the cursor jumps to the
// start of the token before it on its line.
func (h *Handler) MoveLeft(extend, word bool) {
	h.moveHorizontal(-1, extend, word)
}

// MoveRight is the mirror of MoveLeft.
func (h *Handler) MoveRight(extend, word bool) {
	h.moveHorizontal(1, extend, word)
}

// MoveUp moves every cursor to its preferred column on the previous line.
// On the first line the cursor moves to the start of the content.
func (h *Handler) MoveUp(extend bool) {
	h.moveVertical(-1, extend)
}

// MoveDown moves every cursor to its preferred column on the next line.
// On the last line the cursor moves to the end of the content.
func (h *Handler) MoveDown(extend bool) {
	h.moveVertical(1, extend)
}

// MoveLineStart moves every cursor to the start of its line.
func (h *Handler) MoveLineStart(extend bool) {
	h.moveEach(func(c cursor.Cursor) cursor.Cursor {
		c = selectMode(c, extend)
		_, col, _ := h.TextPos(c.Idx)
		return c.MoveTo(c.Idx - col)
	}, true)
}

// MoveLineEnd moves every cursor to the end of its line.
func (h *Handler) MoveLineEnd(extend bool) {
	h.moveEach(func(c cursor.Cursor) cursor.Cursor {
		c = selectMode(c, extend)
		line, col, _ := h.TextPos(c.Idx)
		return c.MoveTo(c.Idx - col + h.LineLen(line))
	}, true)
}

func (h *Handler) moveHorizontal(dir int, extend, word bool) {
	n := h.Len()
	h.moveEach(func(c cursor.Cursor) cursor.Cursor {
		if !extend && c.HasSelection() {
			r := c.Range()
			if dir < 0 {
				return cursor.New(r.Start)
			}
			return cursor.New(r.End)
		}

		c = selectMode(c, extend)
		target := c.Idx + dir
		if word {
			target = h.wordBoundary(c.Idx, dir)
		}
		return c.MoveTo(clampIndex(target, n))
	}, true)
}

func (h *Handler) moveVertical(dir int, extend bool) {
	n := h.Len()
	lines := h.LineCount()
	h.moveEach(func(c cursor.Cursor) cursor.Cursor {
		c = selectMode(c, extend)
		line, _, _ := h.TextPos(c.Idx)

		switch target := line + dir; {
		case target < 0:
			c = c.MoveTo(0)
			c.PreferredColumn = 0
		case target >= lines:
			c = c.MoveTo(n)
			c.PreferredColumn = h.column(n)
		default:
			idx, _ := h.Index(target, c.PreferredColumn)
			c = c.MoveTo(idx)
		}
		return c
	}, false)
}

// moveEach applies move to every cursor, then clamps and de-duplicates.
// resetColumn recomputes preferred columns from the new positions.
func (h *Handler) moveEach(move func(cursor.Cursor) cursor.Cursor, resetColumn bool) {
	all := h.all()
	for i, c := range all {
		all[i] = move(c)
	}
	h.setAll(all)
	if resetColumn {
		h.resetColumns()
	}
	h.focusCursor = true
}

// wordBoundary returns the offset one token away from idx in direction dir,
// staying on idx's line. At the line edge it falls back to a one character
// step, which crosses the line break.
func (h *Handler) wordBoundary(idx, dir int) int {
	line, col, ok := h.TextPos(idx)
	if !ok {
		return idx + dir
	}
	text, _ := h.Line(line)
	start := idx - col

	for _, tok := range wordTokens(text) {
		if dir > 0 && tok.Start <= col && col < tok.End {
			return start + tok.End
		}
		if dir < 0 && tok.Start < col && col <= tok.End {
			return start + tok.Start
		}
	}
	return idx + dir
}

// wordTokens returns the tokens of line as character ranges.
func wordTokens(line string) []cursor.Range {
	locs := wordPattern.FindAllStringIndex(line, -1)
	out := make([]cursor.Range, len(locs))
	for i, loc := range locs {
		s := utf8.RuneCountInString(line[:loc[0]])
		out[i] = cursor.Range{Start: s, End: s + utf8.RuneCountInString(line[loc[0]:loc[1]])}
	}
	return out
}

// selectMode anchors a selection when extending and drops it otherwise.
func selectMode(c cursor.Cursor, extend bool) cursor.Cursor {
	if extend {
		return c.StartSelection()
	}
	return c.ClearSelection()
}
