package textinput

import (
	"github.com/dshills/multicaret/internal/input/key"
	"github.com/dshills/multicaret/internal/input/keymap"
)

// KeyboardState is the input gathered for one frame.
type KeyboardState struct {
	// Triggered holds the keys pressed this frame, in order.
	Triggered []key.Event

	// Modifiers holds the modifier keys held for the whole frame. They are
	// combined with each event's own modifiers.
	Modifiers key.Modifier
}

// Resolver maps key events to bound actions. *keymap.Keymap implements it.
type Resolver interface {
	Matches(action string, ev key.Event) bool
	IsBound(ev key.Event) bool
}

// editActions are the bound actions the handler performs itself.
var editActions = []string{
	keymap.ActionCopy,
	keymap.ActionCut,
	keymap.ActionPaste,
	keymap.ActionSelectAll,
}

// Process dispatches one frame of input. Each triggered key is handled by
// the first rule that claims it:
//
//  1. copy, cut, paste and select-all bindings run their action.
//  2. Any other bound key is swallowed; the host handles it.
//  3. Printable characters insert, shifted when Shift is held.
//  4. Named keys edit or navigate.
//  5. Everything else is ignored.
//
// Ctrl or Alt turn horizontal motion into word motion; Shift extends the
// selection. A nil resolver binds nothing. Returns whether the content
// changed.
func (h *Handler) Process(state KeyboardState, resolver Resolver) bool {
	changed := false
	for _, ev := range state.Triggered {
		ev.Modifiers |= state.Modifiers
		if h.processEvent(ev, resolver) {
			changed = true
		}
	}
	return changed
}

func (h *Handler) processEvent(ev key.Event, resolver Resolver) bool {
	if resolver != nil {
		for _, action := range editActions {
			if resolver.Matches(action, ev) {
				return h.runAction(action)
			}
		}
		if resolver.IsBound(ev) {
			return false
		}
	}

	if ev.IsChar() && !ev.IsModified() {
		return h.InsertAtCursor(h.shifted(ev.Rune, ev.Modifiers.HasShift()))
	}

	extend := ev.Modifiers.HasShift()
	word := ev.Modifiers.HasCtrl() || ev.Modifiers.HasAlt()

	switch ev.Key {
	case key.KeySpace:
		if ev.IsModified() {
			return false
		}
		return h.InsertAtCursor(" ")
	case key.KeyBackspace:
		return h.BackspaceAtCursor()
	case key.KeyDelete:
		return h.DeleteAtCursor()
	case key.KeyTab:
		return h.TabAtCursor()
	case key.KeyEnter, key.KeyKPEnter:
		return h.InsertNewline()
	case key.KeyLeft:
		h.MoveLeft(extend, word)
	case key.KeyRight:
		h.MoveRight(extend, word)
	case key.KeyUp:
		h.MoveUp(extend)
	case key.KeyDown:
		h.MoveDown(extend)
	case key.KeyHome:
		h.MoveLineStart(extend)
	case key.KeyEnd:
		h.MoveLineEnd(extend)
	}
	return false
}

func (h *Handler) runAction(action string) bool {
	switch action {
	case keymap.ActionCopy:
		h.Copy()
	case keymap.ActionCut:
		return h.Cut()
	case keymap.ActionPaste:
		return h.Paste()
	case keymap.ActionSelectAll:
		h.SelectAll()
	}
	return false
}
