package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/multicaret/internal/clipboard"
	"github.com/dshills/multicaret/internal/config"
	"github.com/dshills/multicaret/internal/input/key"
	"github.com/dshills/multicaret/internal/renderer/backend"
)

func newTestApp(t *testing.T, opts Options) (*Application, *backend.NullBackend) {
	t.Helper()
	if opts.Config.Keybinds == nil {
		opts.Config = config.Default()
	}
	opts.Logger = zerolog.Nop()

	b := backend.NewNullBackend(80, 10)
	app, err := New(b, opts)
	require.NoError(t, err)
	return app, b
}

func keyEvent(ev key.Event) backend.Event {
	return backend.Event{Type: backend.EventKey, Key: ev}
}

func postText(b *backend.NullBackend, text string) {
	for _, r := range text {
		b.PostEvent(keyEvent(key.NewRuneEvent(r, key.ModNone)))
	}
}

func postCtrl(b *backend.NullBackend, r rune) {
	b.PostEvent(keyEvent(key.NewRuneEvent(r, key.ModCtrl)))
}

func click(x, y int, mod key.Modifier) backend.Event {
	return backend.Event{Type: backend.EventMouse, MouseX: x, MouseY: y, MouseButton: backend.MouseLeft, Mod: mod}
}

func release() backend.Event {
	return backend.Event{Type: backend.EventMouse, MouseButton: backend.MouseNone}
}

func statusRow(b *backend.NullBackend) string {
	_, h := b.Size()
	return b.Row(h - 1)
}

func TestRunTypesAndConfirmsQuit(t *testing.T) {
	app, b := newTestApp(t, Options{})

	postText(b, "hi")
	postCtrl(b, 'q')
	postCtrl(b, 'q')

	require.NoError(t, app.Run(context.Background()))
	assert.Equal(t, "hi", app.Field().Content())
	assert.True(t, app.Modified())
	assert.Contains(t, statusRow(b), "unsaved changes")
}

func TestRunSavesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("abc"), 0o644))

	app, b := newTestApp(t, Options{Path: path, Content: "abc"})

	postText(b, "x")
	postCtrl(b, 's')
	postCtrl(b, 'q')

	require.NoError(t, app.Run(context.Background()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "xabc", string(data))
	assert.False(t, app.Modified())
	assert.Contains(t, statusRow(b), "saved")
}

func TestSaveErrors(t *testing.T) {
	app, _ := newTestApp(t, Options{})
	assert.ErrorIs(t, app.Save(), ErrNoFilePath)

	cfg := config.Default()
	cfg.Field.ReadOnly = true
	app, _ = newTestApp(t, Options{Path: filepath.Join(t.TempDir(), "x"), Config: cfg})
	assert.ErrorIs(t, app.Save(), ErrReadOnly)

	app, _ = newTestApp(t, Options{Path: filepath.Join(t.TempDir(), "missing", "x")})
	err := app.Save()
	var opErr *OperationError
	require.ErrorAs(t, err, &opErr)
	assert.Equal(t, "save", opErr.Op)
}

func TestRunShowsSaveErrorInStatus(t *testing.T) {
	app, b := newTestApp(t, Options{})

	postCtrl(b, 's')
	postCtrl(b, 'q')

	require.NoError(t, app.Run(context.Background()))
	assert.Contains(t, statusRow(b), ErrNoFilePath.Error())
}

func TestRunBracketedPaste(t *testing.T) {
	app, b := newTestApp(t, Options{})

	b.PostEvent(backend.Event{Type: backend.EventPaste, PasteStart: true})
	postText(b, "a")
	b.PostEvent(keyEvent(key.NewSpecialEvent(key.KeyEnter, key.ModNone)))
	postText(b, "b")
	b.PostEvent(backend.Event{Type: backend.EventPaste})
	postCtrl(b, 'q')
	postCtrl(b, 'q')

	require.NoError(t, app.Run(context.Background()))
	assert.Equal(t, "a\nb", app.Field().Content())

	require.True(t, app.Field().Undo(), "the paste is one undo step")
	assert.Equal(t, "", app.Field().Content())
}

func TestRunMouseAddsCursors(t *testing.T) {
	app, b := newTestApp(t, Options{Content: "hello\nworld"})

	b.PostEvent(click(2, 1, key.ModNone))
	b.PostEvent(release())
	b.PostEvent(click(4, 0, key.ModCtrl))
	b.PostEvent(release())
	postText(b, "X")
	postCtrl(b, 'q')
	postCtrl(b, 'q')

	require.NoError(t, app.Run(context.Background()))
	assert.Equal(t, "hellXo\nwoXrld", app.Field().Content())
}

func TestRunMouseDragSelects(t *testing.T) {
	cb := clipboard.NewMemory()
	app, b := newTestApp(t, Options{Content: "hello", Clipboard: cb})

	b.PostEvent(click(0, 0, key.ModNone))
	b.PostEvent(click(3, 0, key.ModNone))
	b.PostEvent(release())
	postCtrl(b, 'c')
	postCtrl(b, 'q')

	require.NoError(t, app.Run(context.Background()))

	text, err := cb.ReadText()
	require.NoError(t, err)
	assert.Equal(t, "hel", text)
}

func TestRunShiftClickExtends(t *testing.T) {
	app, b := newTestApp(t, Options{Content: "hello world"})

	b.PostEvent(click(2, 0, key.ModNone))
	b.PostEvent(release())
	b.PostEvent(click(8, 0, key.ModShift))
	b.PostEvent(release())
	postText(b, "_")
	postCtrl(b, 'q')
	postCtrl(b, 'q')

	require.NoError(t, app.Run(context.Background()))
	assert.Equal(t, "he_rld", app.Field().Content())
}

func TestRunConfigReload(t *testing.T) {
	app, b := newTestApp(t, Options{Content: "text"})

	cfg := config.Default()
	cfg.Field.ReadOnly = true
	app.Reload(cfg, nil)
	postText(b, "x")
	postCtrl(b, 'q')

	require.NoError(t, app.Run(context.Background()))
	assert.Equal(t, "text", app.Field().Content())
	assert.False(t, app.Field().Handler().AllowEditing())
	assert.Contains(t, statusRow(b), "[read-only]")
}

func TestRunConfigReloadError(t *testing.T) {
	app, b := newTestApp(t, Options{})

	app.Reload(config.Config{}, errors.New("bad toml"))
	postText(b, "x")
	postCtrl(b, 'q')
	b.PostEvent(backend.Event{Type: backend.EventInterrupt, Data: reloadEvent{err: errors.New("still bad")}})
	postCtrl(b, 'q')

	require.NoError(t, app.Run(context.Background()))
	assert.Equal(t, "x", app.Field().Content(), "a failed reload keeps the field editable")
	assert.Contains(t, statusRow(b), "config: still bad")
}

func TestRunContextCancel(t *testing.T) {
	app, _ := newTestApp(t, Options{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, app.Run(ctx), context.Canceled)
}

func TestRunBackendClosed(t *testing.T) {
	app, b := newTestApp(t, Options{})
	b.Shutdown()

	assert.NoError(t, app.Run(context.Background()))
}

func TestRunResize(t *testing.T) {
	app, b := newTestApp(t, Options{Content: "abc"})

	b.Resize(20, 4)
	postCtrl(b, 'q')

	require.NoError(t, app.Run(context.Background()))
	assert.True(t, strings.HasPrefix(b.Row(0), "abc"))
	assert.Len(t, []rune(statusRow(b)), 20)
}

func TestStatus(t *testing.T) {
	cfg := config.Default()
	cfg.Field.MaxLength = 10
	app, _ := newTestApp(t, Options{Path: "/tmp/notes.txt", Content: "ab\ncd", Config: cfg})

	assert.Equal(t, " notes.txt  1:1  5/10", app.status())

	h := app.Field().Handler()
	h.SetCursorIndex(4)
	h.AddCursor(0)
	h.InsertAtCursor("z")

	assert.Equal(t, " notes.txt +  2:3  2 cursors  7/10", app.status())

	scratch, _ := newTestApp(t, Options{})
	assert.True(t, strings.HasPrefix(scratch.status(), " [scratch]"))
}
