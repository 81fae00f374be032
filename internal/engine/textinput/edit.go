package textinput

import (
	"slices"
	"sort"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/dshills/multicaret/internal/engine/cursor"
)

// InsertAtCursor inserts text at every cursor, replacing any selections.
// Text is NFC-normalised and line breaks are normalised to '\n', or dropped
// when the field disallows newlines. The insert is rejected when the field is
// read-only or the result would exceed the maximum length. Returns whether the
// content changed.
func (h *Handler) InsertAtCursor(text string) bool {
	return h.insert(text)
}

// BackspaceAtCursor deletes the selection, or the character before the
// caret, at every cursor.
func (h *Handler) BackspaceAtCursor() bool {
	if !h.canEdit("backspace") {
		return false
	}
	removed := h.deleteRegions(func(c cursor.Cursor, _ int) cursor.Range {
		return c.BackspaceRange()
	})
	if removed == 0 {
		return false
	}

	// Typing after a backspace groups with the character now following the
	// caret.
	h.lastClass = classNone
	if r, ok := h.runeAt(h.cursor.Idx); ok {
		h.lastClass = classOf(r)
	}
	h.focusCursor = true
	return true
}

// DeleteAtCursor deletes the selection, or the character after the caret,
// at every cursor.
func (h *Handler) DeleteAtCursor() bool {
	if !h.canEdit("delete") {
		return false
	}
	removed := h.deleteRegions(func(c cursor.Cursor, length int) cursor.Range {
		return c.DeleteRange(length)
	})
	if removed == 0 {
		return false
	}
	h.focusCursor = true
	return true
}

// TabAtCursor inserts spaces at every cursor up to the next tab stop of
// that cursor's column.
func (h *Handler) TabAtCursor() bool {
	if !h.canEdit("tab") {
		return false
	}

	saved := h.save()
	h.collapseSelections()

	all := h.all()
	inserts := make([][]rune, len(all))
	total := 0
	for i, c := range all {
		n := h.tabWidth - h.column(c.Idx)%h.tabWidth
		inserts[i] = []rune(strings.Repeat(" ", n))
		total += n
	}
	if !h.fits(total) {
		h.restore(saved)
		h.reject("tab", "max length")
		return false
	}

	h.insertEach(all, inserts)
	h.noteTyped(' ')
	h.focusCursor = true
	return true
}

// CollapseSelections deletes every active selection.
func (h *Handler) CollapseSelections() bool {
	if !h.canEdit("collapse") {
		return false
	}
	if !h.collapseSelections() {
		return false
	}
	h.focusCursor = true
	return true
}

// InsertNewline inserts a line break at every cursor. Ignored when the field
// disallows newlines.
func (h *Handler) InsertNewline() bool {
	if !h.allowNewlines {
		return false
	}
	if !h.insert("\n") {
		return false
	}
	h.pushHistory = true
	return true
}

// SelectedText returns the text of every selection in content order, joined
// with '\n'. Overlapping selections contribute their text once.
func (h *Handler) SelectedText() string {
	text := []rune(h.content)

	var ranges []cursor.Range
	for _, c := range h.all() {
		if c.HasSelection() {
			ranges = append(ranges, c.Range().Clamp(len(text)))
		}
	}

	regions := cursor.MergeRanges(ranges)
	parts := make([]string, len(regions))
	for i, r := range regions {
		parts[i] = string(text[r.Start:r.End])
	}
	return strings.Join(parts, "\n")
}

// HasSelection reports whether any cursor selects text.
func (h *Handler) HasSelection() bool {
	for _, c := range h.all() {
		if c.HasSelection() {
			return true
		}
	}
	return false
}

// Copy writes the selected text to the clipboard. Returns whether anything
// was copied.
func (h *Handler) Copy() bool {
	text := h.SelectedText()
	if text == "" {
		return false
	}
	if err := h.clipboard.WriteText(text); err != nil {
		h.log.Debug().Err(err).Msg("clipboard write failed")
		return false
	}
	return true
}

// Cut copies the selected text and deletes it.
func (h *Handler) Cut() bool {
	if !h.canEdit("cut") {
		return false
	}
	if !h.Copy() {
		return false
	}
	h.collapseSelections()
	h.pushHistory = true
	h.focusCursor = true
	return true
}

// Paste inserts the clipboard text at every cursor.
func (h *Handler) Paste() bool {
	if !h.canEdit("paste") {
		return false
	}
	text, err := h.clipboard.ReadText()
	if err != nil {
		h.log.Debug().Err(err).Msg("clipboard read failed")
		return false
	}
	if !h.insert(text) {
		return false
	}
	h.pushHistory = true
	return true
}

// SelectAll selects the whole content with the primary cursor and drops the
// secondary cursors.
func (h *Handler) SelectAll() {
	n := h.Len()
	c := cursor.NewSelection(0, n)
	c.PreferredColumn = h.column(n)
	h.cursor = c
	h.cursors = nil
	h.focusCursor = true
}

// insert is InsertAtCursor's implementation.
func (h *Handler) insert(text string) bool {
	if !h.canEdit("insert") {
		return false
	}
	ins := []rune(h.sanitize(text))
	if len(ins) == 0 {
		return false
	}

	saved := h.save()
	h.collapseSelections()

	all := h.all()
	if !h.fits(len(ins) * len(all)) {
		h.restore(saved)
		h.reject("insert", "max length")
		return false
	}

	inserts := make([][]rune, len(all))
	for i := range inserts {
		inserts[i] = ins
	}
	h.insertEach(all, inserts)
	h.noteTyped(ins[len(ins)-1])
	h.focusCursor = true
	return true
}

// deleteRegions removes the merged ranges produced by rangeOf for every
// cursor. Regions are applied left to right; each region's original
// coordinates are corrected by the length already removed. Every cursor
// collapses to the start of the region covering its range. Returns the
// number of characters removed.
func (h *Handler) deleteRegions(rangeOf func(c cursor.Cursor, length int) cursor.Range) int {
	text := []rune(h.content)
	all := h.all()

	ranges := make([]cursor.Range, len(all))
	for i, c := range all {
		ranges[i] = rangeOf(c, len(text)).Clamp(len(text))
	}
	regions := cursor.MergeRanges(ranges)

	removed := 0
	starts := make([]int, len(regions))
	for i, r := range regions {
		start := r.Start - removed
		text = append(text[:start], text[start+r.Len():]...)
		starts[i] = start
		removed += r.Len()
	}

	for i, c := range all {
		pos := clampIndex(c.Idx, len(text))
		if k := cursor.RegionIndex(regions, ranges[i]); k >= 0 {
			pos = starts[k]
		}
		all[i] = cursor.New(pos)
	}

	h.content = string(text)
	h.setAll(all)
	h.resetColumns()
	return removed
}

// insertEach inserts inserts[i] at all[i] for every cursor, in ascending
// offset order, shifting later insertion points by the text already
// inserted. all must be the handler's [primary] + secondaries.
func (h *Handler) insertEach(all []cursor.Cursor, inserts [][]rune) {
	text := []rune(h.content)
	n := len(text)

	order := make([]int, len(all))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return all[order[a]].Idx < all[order[b]].Idx
	})

	shift := 0
	for _, i := range order {
		ins := inserts[i]
		pos := clampIndex(all[i].Idx, n) + shift
		text = slices.Insert(text, pos, ins...)
		shift += len(ins)
		all[i] = cursor.New(pos + len(ins))
	}

	h.content = string(text)
	h.setAll(all)
	h.resetColumns()
}

// collapseSelections deletes all selections without touching signals.
func (h *Handler) collapseSelections() bool {
	if !h.HasSelection() {
		return false
	}
	removed := h.deleteRegions(func(c cursor.Cursor, _ int) cursor.Range {
		return c.Range()
	})
	return removed > 0
}

// resetColumns recomputes every cursor's preferred column from its index.
func (h *Handler) resetColumns() {
	h.cursor.PreferredColumn = h.column(h.cursor.Idx)
	for i := range h.cursors {
		h.cursors[i].PreferredColumn = h.column(h.cursors[i].Idx)
	}
}

// sanitize normalises inserted text.
func (h *Handler) sanitize(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	if !h.allowNewlines {
		text = strings.ReplaceAll(text, "\n", "")
	}
	return norm.NFC.String(text)
}

// fits reports whether extra characters can be added under the max length.
func (h *Handler) fits(extra int) bool {
	return !h.limited || h.Len()+extra <= h.maxLength
}

// canEdit reports whether edits are allowed, logging rejections.
func (h *Handler) canEdit(op string) bool {
	if !h.allowEditing {
		h.reject(op, "read-only")
		return false
	}
	return true
}

func (h *Handler) reject(op, reason string) {
	h.log.Debug().
		Str("op", op).
		Str("reason", reason).
		Int("length", h.Len()).
		Int("max_length", h.maxLength).
		Int("cursors", h.CursorCount()).
		Msg("edit rejected")
}

// runeAt returns the character at idx.
func (h *Handler) runeAt(idx int) (rune, bool) {
	i := 0
	for _, r := range h.content {
		if i == idx {
			return r, true
		}
		i++
	}
	return 0, false
}
