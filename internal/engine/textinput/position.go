package textinput

import (
	"strings"
	"unicode/utf8"
)

// TextPos maps a character offset to its line and column.
//
// Lines are separated by '\n'. An offset equal to the content length is
// valid: it resolves to one past the last character of the final line, or to
// column 0 of a new empty line when the content ends with '\n'. ok is false
// only when idx is negative or past the end.
func (h *Handler) TextPos(idx int) (line, col int, ok bool) {
	if idx < 0 {
		return 0, 0, false
	}
	for i, l := range strings.Split(h.content, "\n") {
		n := utf8.RuneCountInString(l)
		if idx <= n {
			return i, idx, true
		}
		idx -= n + 1
	}
	return 0, 0, false
}

// Index maps a line and column back to a character offset. The column is
// clamped to the line's length. ok is false when the line does not exist.
func (h *Handler) Index(line, col int) (int, bool) {
	if line < 0 {
		return 0, false
	}
	lines := strings.Split(h.content, "\n")
	if line >= len(lines) {
		return 0, false
	}

	idx := 0
	for _, l := range lines[:line] {
		idx += utf8.RuneCountInString(l) + 1
	}
	n := utf8.RuneCountInString(lines[line])
	return idx + clampIndex(col, n), true
}

// LineCount returns the number of lines. Empty content has one line.
func (h *Handler) LineCount() int {
	return strings.Count(h.content, "\n") + 1
}

// Line returns the text of line i without its line break.
func (h *Handler) Line(i int) (string, bool) {
	lines := strings.Split(h.content, "\n")
	if i < 0 || i >= len(lines) {
		return "", false
	}
	return lines[i], true
}

// LineLen returns the length of line i in characters, or 0 when it does not
// exist.
func (h *Handler) LineLen(i int) int {
	l, _ := h.Line(i)
	return utf8.RuneCountInString(l)
}

// column returns the column of idx, or 0 when idx is out of range.
func (h *Handler) column(idx int) int {
	_, col, _ := h.TextPos(idx)
	return col
}
