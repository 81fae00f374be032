package textinput

import (
	"github.com/rs/zerolog"

	"github.com/dshills/multicaret/internal/clipboard"
)

// DefaultTabWidth is the tab stop width used by TabAtCursor.
const DefaultTabWidth = 4

// Option configures a Handler during creation.
type Option func(*Handler)

// WithLogger sets the logger used for rejected edits.
func WithLogger(log zerolog.Logger) Option {
	return func(h *Handler) {
		h.log = log.With().Str("component", "textinput").Logger()
	}
}

// WithClipboard sets the clipboard used by copy, cut and paste.
func WithClipboard(cb clipboard.Clipboard) Option {
	return func(h *Handler) {
		if cb != nil {
			h.clipboard = cb
		}
	}
}

// WithTabWidth sets the tab stop width.
func WithTabWidth(width int) Option {
	return func(h *Handler) {
		if width > 0 {
			h.tabWidth = width
		}
	}
}

// WithShiftMap replaces the symbol table applied to typed characters while
// Shift is held. Letters are upper-cased regardless of the table.
func WithShiftMap(m map[rune]rune) Option {
	return func(h *Handler) {
		if m != nil {
			h.shiftMap = m
		}
	}
}
