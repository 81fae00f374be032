package textinput

import (
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/dshills/multicaret/internal/clipboard"
	"github.com/dshills/multicaret/internal/engine/cursor"
)

// Handler is the editing engine for one text field.
type Handler struct {
	content string

	// cursor is the primary cursor; cursors holds the secondaries.
	// The primary's position never appears in cursors.
	cursor  cursor.Cursor
	cursors []cursor.Cursor

	allowNewlines bool
	maxLength     int
	limited       bool
	allowEditing  bool
	tabWidth      int

	focusCursor bool
	pushHistory bool
	lastClass   charClass

	shiftMap  map[rune]rune
	clipboard clipboard.Clipboard
	log       zerolog.Logger
}

// New creates a handler for a field holding content. maxLength is optional;
// nil means unlimited and a negative value is taken as 0. The primary cursor
// starts at offset 0.
func New(content string, allowNewlines bool, maxLength *int, allowEditing bool, opts ...Option) *Handler {
	h := &Handler{
		content:       content,
		allowNewlines: allowNewlines,
		allowEditing:  allowEditing,
		tabWidth:      DefaultTabWidth,
		shiftMap:      DefaultShiftMap(),
		clipboard:     clipboard.NewMemory(),
		log:           zerolog.Nop(),
	}
	if maxLength != nil {
		h.maxLength = max(*maxLength, 0)
		h.limited = true
	}

	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Content returns the field content.
func (h *Handler) Content() string {
	return h.content
}

// Len returns the content length in characters.
func (h *Handler) Len() int {
	return utf8.RuneCountInString(h.content)
}

// Cursor returns the primary cursor.
func (h *Handler) Cursor() cursor.Cursor {
	return h.cursor
}

// Cursors returns a copy of the secondary cursors.
func (h *Handler) Cursors() []cursor.Cursor {
	out := make([]cursor.Cursor, len(h.cursors))
	copy(out, h.cursors)
	return out
}

// CursorCount returns the number of cursors including the primary.
func (h *Handler) CursorCount() int {
	return 1 + len(h.cursors)
}

// AllowEditing reports whether the field accepts edits.
func (h *Handler) AllowEditing() bool {
	return h.allowEditing
}

// SetAllowEditing toggles read-only mode.
func (h *Handler) SetAllowEditing(allow bool) {
	h.allowEditing = allow
}

// AllowNewlines reports whether the field accepts line breaks.
func (h *Handler) AllowNewlines() bool {
	return h.allowNewlines
}

// MaxLength returns the maximum content length. ok is false when the field
// is unlimited.
func (h *Handler) MaxLength() (n int, ok bool) {
	return h.maxLength, h.limited
}

// SetCursorIndex places the primary cursor at idx, as after a plain click.
// Secondary cursors and the selection are dropped.
func (h *Handler) SetCursorIndex(idx int) {
	c := cursor.New(clampIndex(idx, h.Len()))
	c.PreferredColumn = h.column(c.Idx)
	h.cursor = c
	h.cursors = nil
	h.focusCursor = true
}

// SetSelection places the primary cursor at idx with a selection anchored
// at anchor, as after a mouse drag. Secondary cursors are dropped.
func (h *Handler) SetSelection(anchor, idx int) {
	n := h.Len()
	c := cursor.NewSelection(clampIndex(anchor, n), clampIndex(idx, n))
	c.PreferredColumn = h.column(c.Idx)
	h.cursor = c
	h.cursors = nil
	h.focusCursor = true
}

// AddCursor adds a secondary cursor at idx. Adding a cursor where one
// already sits is a no-op.
func (h *Handler) AddCursor(idx int) {
	c := cursor.New(clampIndex(idx, h.Len()))
	c.PreferredColumn = h.column(c.Idx)
	h.cursor, h.cursors = cursor.Dedup(h.cursor, append(h.cursors, c))
	h.focusCursor = true
}

// ClearSecondary drops every secondary cursor.
func (h *Handler) ClearSecondary() {
	h.cursors = nil
}

// SetContent replaces the content without raising signals, as when the host
// restores a history snapshot. Cursors are clamped into the new content.
func (h *Handler) SetContent(content string) {
	h.content = content
	n := h.Len()
	h.cursor = h.cursor.Clamp(n)
	cursor.ClampAll(h.cursors, n)
	h.cursor, h.cursors = cursor.Dedup(h.cursor, h.cursors)
	h.lastClass = classNone
}

// all returns [primary] + secondaries as an owned slice.
func (h *Handler) all() []cursor.Cursor {
	out := make([]cursor.Cursor, 0, 1+len(h.cursors))
	out = append(out, h.cursor)
	return append(out, h.cursors...)
}

// setAll splits an owned [primary] + secondaries slice back into the
// handler, clamping and de-duplicating.
func (h *Handler) setAll(all []cursor.Cursor) {
	n := h.Len()
	cursor.ClampAll(all, n)
	h.cursor, h.cursors = cursor.Dedup(all[0], all[1:])
	if len(h.cursors) == 0 {
		h.cursors = nil
	}
}

// state is a copy of everything an edit can change.
type state struct {
	content   string
	cursor    cursor.Cursor
	cursors   []cursor.Cursor
	lastClass charClass
	focus     bool
	history   bool
}

func (h *Handler) save() state {
	return state{
		content:   h.content,
		cursor:    h.cursor,
		cursors:   h.Cursors(),
		lastClass: h.lastClass,
		focus:     h.focusCursor,
		history:   h.pushHistory,
	}
}

func (h *Handler) restore(s state) {
	h.content = s.content
	h.cursor = s.cursor
	h.cursors = s.cursors
	h.lastClass = s.lastClass
	h.focusCursor = s.focus
	h.pushHistory = s.history
}

// clampIndex clamps idx to [0, n].
func clampIndex(idx, n int) int {
	if idx < 0 {
		return 0
	}
	if idx > n {
		return n
	}
	return idx
}
