// Package app runs a text field in the terminal. It wires the editing
// engine to a backend, the undo history, the configuration watcher and the
// file the field edits.
package app

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/dshills/multicaret/internal/clipboard"
	"github.com/dshills/multicaret/internal/config"
	"github.com/dshills/multicaret/internal/renderer"
	"github.com/dshills/multicaret/internal/renderer/backend"
)

// Options configures the application.
type Options struct {
	// Path is the file being edited. Empty edits a scratch field that
	// cannot be saved.
	Path string

	// Content is the initial field content.
	Content string

	// Config is the resolved configuration.
	Config config.Config

	// Clipboard backs copy, cut and paste. Defaults to an in-memory
	// clipboard.
	Clipboard clipboard.Clipboard

	// Logger receives application logs.
	Logger zerolog.Logger
}

// Application runs one field on a backend.
type Application struct {
	backend backend.Backend
	field   *Field
	view    *renderer.View
	log     zerolog.Logger

	path  string
	saved string

	// message is shown in the status line until the next key press.
	message string

	// Bracketed paste collects key events until the paste ends.
	pasting bool
	paste   strings.Builder

	dragging   bool
	dragAnchor int

	// quitArmed is set after a quit with unsaved changes was refused.
	quitArmed bool

	running atomic.Bool
}

// reloadEvent is posted by the config watcher goroutine and handled on the
// event loop.
type reloadEvent struct {
	cfg config.Config
	err error
}

// cancelEvent wakes the event loop when the run context is cancelled.
type cancelEvent struct{}

// New creates an application drawing on b.
func New(b backend.Backend, opts Options) (*Application, error) {
	log := opts.Logger.With().Str("component", "app").Logger()

	field, err := NewField(opts.Content, opts.Config,
		WithFieldLogger(opts.Logger),
		WithFieldClipboard(opts.Clipboard),
	)
	if err != nil {
		return nil, err
	}

	viewOpts := renderer.DefaultOptions()
	viewOpts.TabWidth = opts.Config.Field.TabWidth

	return &Application{
		backend: b,
		field:   field,
		view:    renderer.NewView(viewOpts),
		log:     log,
		path:    opts.Path,
		saved:   opts.Content,
	}, nil
}

// Field returns the edited field.
func (app *Application) Field() *Field {
	return app.field
}

// Modified reports whether the content differs from the last save.
func (app *Application) Modified() bool {
	return app.field.Content() != app.saved
}

// Reload queues a configuration change for the event loop. It is safe to
// call from any goroutine and matches config.ReloadFunc.
func (app *Application) Reload(cfg config.Config, err error) {
	app.backend.PostEvent(backend.Event{
		Type: backend.EventInterrupt,
		Data: reloadEvent{cfg: cfg, err: err},
	})
}

// Run initializes the backend and processes events until quit is pressed,
// the backend closes or ctx is cancelled.
func (app *Application) Run(ctx context.Context) error {
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	if err := app.backend.Init(); err != nil {
		return NewOperationError("init", "terminal", err)
	}
	defer app.backend.Shutdown()

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			app.backend.PostEvent(backend.Event{Type: backend.EventInterrupt, Data: cancelEvent{}})
		case <-done:
		}
	}()

	app.log.Info().Str("path", app.path).Int("length", app.field.Handler().Len()).Msg("field opened")
	app.render(true)

	for {
		ev := app.backend.PollEvent()
		if ev.Type == backend.EventClosed {
			return nil
		}
		if _, ok := ev.Data.(cancelEvent); ok {
			return ctx.Err()
		}

		err := app.handleBackendEvent(ev)
		if errors.Is(err, ErrQuit) {
			app.log.Info().Bool("modified", app.Modified()).Msg("quit")
			return nil
		}
		if err != nil {
			return err
		}
	}
}
