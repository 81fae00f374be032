package app

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/dshills/multicaret/internal/clipboard"
	"github.com/dshills/multicaret/internal/config"
	"github.com/dshills/multicaret/internal/engine/history"
	"github.com/dshills/multicaret/internal/engine/textinput"
	"github.com/dshills/multicaret/internal/input/key"
	"github.com/dshills/multicaret/internal/input/keymap"
)

// Result reports what one frame of input did.
type Result struct {
	// Changed is true when the content changed.
	Changed bool

	// Focus is true when the primary cursor should be scrolled into view.
	Focus bool

	// Quit and Save are true when their bindings were pressed.
	Quit bool
	Save bool
}

// Field drives a text input handler frame by frame. It owns the undo
// history the handler signals into and resolves the bindings the handler
// leaves to its host.
type Field struct {
	handler *textinput.Handler
	keymap  *keymap.Keymap
	history *history.History

	clip clipboard.Clipboard
	log  zerolog.Logger
}

// FieldOption configures a Field.
type FieldOption func(*Field)

// WithFieldLogger sets the logger passed to the handler and used for
// history checkpoints.
func WithFieldLogger(log zerolog.Logger) FieldOption {
	return func(f *Field) {
		f.log = log
	}
}

// WithFieldClipboard sets the clipboard used by copy, cut and paste.
func WithFieldClipboard(cb clipboard.Clipboard) FieldOption {
	return func(f *Field) {
		if cb != nil {
			f.clip = cb
		}
	}
}

// NewField creates a field holding content, configured by cfg.
func NewField(content string, cfg config.Config, opts ...FieldOption) (*Field, error) {
	f := &Field{
		clip: clipboard.NewMemory(),
		log:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(f)
	}

	km, err := keymap.FromMap("config", cfg.Keybinds)
	if err != nil {
		return nil, fmt.Errorf("building keymap: %w", err)
	}
	f.keymap = km
	f.handler = f.newHandler(content, cfg.Field)
	f.history = history.New(cfg.History.MaxEntries)
	f.history.Push(f.snapshot())

	return f, nil
}

func (f *Field) newHandler(content string, fc config.FieldConfig) *textinput.Handler {
	return textinput.New(content, fc.AllowNewlines, fc.MaxLengthPtr(), !fc.ReadOnly,
		textinput.WithTabWidth(fc.TabWidth),
		textinput.WithLogger(f.log),
		textinput.WithClipboard(f.clip),
	)
}

// Handler returns the underlying text input handler.
func (f *Field) Handler() *textinput.Handler {
	return f.handler
}

// Keymap returns the active keymap.
func (f *Field) Keymap() *keymap.Keymap {
	return f.keymap
}

// History returns the undo history.
func (f *Field) History() *history.History {
	return f.history
}

// Content returns the field content.
func (f *Field) Content() string {
	return f.handler.Content()
}

// Frame processes one frame of input.
//
// Undo, redo, save and quit bindings are handled here; every other key goes
// to the handler. The handler's signals are drained once at the end of the
// frame: a history request records the state from before the frame, so one
// checkpoint covers the whole run of edits that led up to it.
func (f *Field) Frame(state textinput.KeyboardState) Result {
	var res Result
	edited := false
	before := f.snapshot()

	for _, ev := range state.Triggered {
		action, _ := f.keymap.ActionFor(ev.WithModifier(state.Modifiers))
		switch action {
		case keymap.ActionUndo:
			if f.Undo() {
				res.Changed = true
				before = f.snapshot()
			}
		case keymap.ActionRedo:
			if f.Redo() {
				res.Changed = true
				before = f.snapshot()
			}
		case keymap.ActionSave:
			res.Save = true
		case keymap.ActionQuit:
			res.Quit = true
		default:
			single := textinput.KeyboardState{Triggered: []key.Event{ev}, Modifiers: state.Modifiers}
			if f.handler.Process(single, f.keymap) {
				res.Changed = true
				edited = true
			}
		}
	}

	return f.finish(before, res, edited, false)
}

// InsertText inserts text at every cursor as one undoable step, as for a
// bracketed paste.
func (f *Field) InsertText(text string) Result {
	before := f.snapshot()
	changed := f.handler.InsertAtCursor(text)
	return f.finish(before, Result{Changed: changed}, changed, true)
}

// finish drains the handler's signals and records a checkpoint of before
// when the handler asked for one. An edit made after an undo always
// records one so the redo stack is discarded.
func (f *Field) finish(before history.Snapshot, res Result, edited, checkpoint bool) Result {
	sig := f.handler.Signals()
	res.Focus = res.Focus || sig.FocusCursor

	if sig.UpdateHistory || (edited && (checkpoint || f.history.CanRedo())) {
		if f.history.Push(before) {
			f.log.Debug().
				Int("undo", f.history.UndoCount()).
				Int("length", f.handler.Len()).
				Msg("history checkpoint")
		}
	}
	return res
}

// Undo restores the previous checkpoint. Returns false when there is
// nothing to undo or the field is read-only.
func (f *Field) Undo() bool {
	if !f.handler.AllowEditing() {
		return false
	}
	prev, err := f.history.Undo(f.snapshot())
	if err != nil {
		return false
	}
	f.restore(prev)
	return true
}

// Redo reapplies the state most recently undone.
func (f *Field) Redo() bool {
	if !f.handler.AllowEditing() {
		return false
	}
	next, err := f.history.Redo(f.snapshot())
	if err != nil {
		return false
	}
	f.restore(next)
	return true
}

// Reload applies a new configuration, keeping the content and cursors.
// On error the field is unchanged.
func (f *Field) Reload(cfg config.Config) error {
	km, err := keymap.FromMap("config", cfg.Keybinds)
	if err != nil {
		return fmt.Errorf("building keymap: %w", err)
	}

	old := f.handler
	h := f.newHandler(old.Content(), cfg.Field)
	primary := old.Cursor()
	if primary.HasSelection() {
		h.SetSelection(primary.Anchor, primary.Idx)
	} else {
		h.SetCursorIndex(primary.Idx)
	}
	for _, c := range old.Cursors() {
		h.AddCursor(c.Idx)
	}
	h.Signals()

	f.keymap = km
	f.handler = h
	f.history.SetMaxEntries(cfg.History.MaxEntries)
	return nil
}

func (f *Field) snapshot() history.Snapshot {
	return history.NewSnapshot(f.handler.Content(), f.handler.Cursor().Idx)
}

func (f *Field) restore(s history.Snapshot) {
	f.handler.SetContent(s.Content)
	f.handler.SetCursorIndex(s.Cursor)
}
