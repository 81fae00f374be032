package textinput

import "unicode"

// charClass is the class of the last typed character, used to group undo
// history by runs of similar characters.
type charClass uint8

const (
	classNone charClass = iota
	classAlphabetic
	classNumeric
	classOther
)

// String returns the class name.
func (c charClass) String() string {
	switch c {
	case classAlphabetic:
		return "alphabetic"
	case classNumeric:
		return "numeric"
	case classOther:
		return "other"
	default:
		return "none"
	}
}

// classOf classifies a rune.
func classOf(r rune) charClass {
	switch {
	case unicode.IsLetter(r):
		return classAlphabetic
	case unicode.IsNumber(r):
		return classNumeric
	default:
		return classOther
	}
}

// Signals are the advisory flags a host consumes once per frame.
type Signals struct {
	// FocusCursor asks the host to reset caret blink and scroll the primary
	// cursor into view.
	FocusCursor bool

	// UpdateHistory asks the host to record a history checkpoint.
	UpdateHistory bool
}

// Signals returns both flags and clears them.
func (h *Handler) Signals() Signals {
	s := Signals{FocusCursor: h.focusCursor, UpdateHistory: h.pushHistory}
	h.focusCursor = false
	h.pushHistory = false
	return s
}

// ShouldFocusCursor reports and clears the focus-cursor flag.
func (h *Handler) ShouldFocusCursor() bool {
	v := h.focusCursor
	h.focusCursor = false
	return v
}

// ShouldUpdateHistory reports and clears the push-history flag.
func (h *Handler) ShouldUpdateHistory() bool {
	v := h.pushHistory
	h.pushHistory = false
	return v
}

// noteTyped records the class of the last typed rune and raises the
// push-history flag when the class changes.
func (h *Handler) noteTyped(r rune) {
	class := classOf(r)
	if h.lastClass != classNone && class != h.lastClass {
		h.pushHistory = true
	}
	h.lastClass = class
}
