package app

import (
	"github.com/dshills/multicaret/internal/engine/textinput"
	"github.com/dshills/multicaret/internal/input/key"
	"github.com/dshills/multicaret/internal/renderer/backend"
)

// wheelLines is how far one wheel step scrolls.
const wheelLines = 3

// handleBackendEvent processes a backend event and routes it appropriately.
// Returns ErrQuit if the application should exit.
func (app *Application) handleBackendEvent(ev backend.Event) error {
	switch ev.Type {
	case backend.EventResize:
		app.render(true)
	case backend.EventKey:
		return app.handleKeyEvent(ev)
	case backend.EventMouse:
		app.handleMouseEvent(ev)
	case backend.EventPaste:
		app.handlePasteEvent(ev)
	case backend.EventInterrupt:
		app.handleInterrupt(ev)
	}
	return nil
}

// handleKeyEvent runs one key through the field as a frame.
func (app *Application) handleKeyEvent(ev backend.Event) error {
	if app.pasting {
		app.collectPaste(ev.Key)
		return nil
	}

	app.message = ""
	res := app.field.Frame(textinput.KeyboardState{Triggered: []key.Event{ev.Key}})

	if res.Save {
		if err := app.Save(); err != nil {
			app.log.Warn().Err(err).Msg("save failed")
			app.message = err.Error()
		} else {
			app.message = "saved"
		}
	}

	if res.Quit {
		if !app.Modified() || app.quitArmed {
			return ErrQuit
		}
		app.quitArmed = true
		app.message = "unsaved changes, quit again to discard"
	} else {
		app.quitArmed = false
	}

	app.render(res.Focus || res.Changed)
	return nil
}

// collectPaste appends a key of a bracketed paste to the paste buffer.
func (app *Application) collectPaste(ev key.Event) {
	switch {
	case ev.IsRune():
		app.paste.WriteRune(ev.Rune)
	case ev.Key == key.KeySpace:
		app.paste.WriteByte(' ')
	case ev.Key == key.KeyEnter || ev.Key == key.KeyKPEnter:
		app.paste.WriteByte('\n')
	case ev.Key == key.KeyTab:
		app.paste.WriteByte('\t')
	}
}

// handlePasteEvent inserts a finished bracketed paste as one edit.
func (app *Application) handlePasteEvent(ev backend.Event) {
	if ev.PasteStart {
		app.pasting = true
		app.paste.Reset()
		return
	}

	app.pasting = false
	text := app.paste.String()
	app.paste.Reset()
	if text == "" {
		return
	}

	res := app.field.InsertText(text)
	app.log.Debug().Int("bytes", len(text)).Bool("changed", res.Changed).Msg("bracketed paste")
	app.render(true)
}

// handleMouseEvent places cursors and selections from clicks and drags.
// Ctrl or Alt click adds a cursor; Shift click extends the selection.
func (app *Application) handleMouseEvent(ev backend.Event) {
	h := app.field.Handler()
	_, height := app.backend.Size()

	switch ev.MouseButton {
	case backend.MouseWheelUp:
		app.view.Scroll(-wheelLines, h, height)
		app.render(false)
		return
	case backend.MouseWheelDown:
		app.view.Scroll(wheelLines, h, height)
		app.render(false)
		return
	case backend.MouseNone:
		app.dragging = false
		return
	case backend.MouseLeft:
	default:
		return
	}

	idx, ok := app.view.IndexAt(h, ev.MouseX, ev.MouseY, height)
	if !ok {
		return
	}

	switch {
	case app.dragging:
		h.SetSelection(app.dragAnchor, idx)
	case ev.Mod.HasCtrl() || ev.Mod.HasAlt():
		h.AddCursor(idx)
	case ev.Mod.HasShift():
		anchor := h.Cursor().Idx
		if c := h.Cursor(); c.Selecting {
			anchor = c.Anchor
		}
		h.SetSelection(anchor, idx)
		app.dragging, app.dragAnchor = true, anchor
	default:
		h.SetCursorIndex(idx)
		app.dragging, app.dragAnchor = true, idx
	}

	app.render(h.ShouldFocusCursor())
}

// handleInterrupt handles events posted from other goroutines.
func (app *Application) handleInterrupt(ev backend.Event) {
	if reload, ok := ev.Data.(reloadEvent); ok {
		app.applyConfig(reload)
		app.render(false)
	}
}

// render draws the field, first scrolling the primary cursor into view
// when focus is set.
func (app *Application) render(focus bool) {
	h := app.field.Handler()
	if focus {
		width, height := app.backend.Size()
		app.view.ScrollToCursor(h, width, height)
	}
	app.view.Render(app.backend, h, app.status())
}
