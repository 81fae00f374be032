package app

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Save writes the field content to its file.
func (app *Application) Save() error {
	if app.path == "" {
		return ErrNoFilePath
	}
	if !app.field.Handler().AllowEditing() {
		return ErrReadOnly
	}

	content := app.field.Content()
	if err := os.WriteFile(app.path, []byte(content), 0o644); err != nil {
		return NewOperationError("save", app.path, err)
	}

	app.saved = content
	app.log.Info().Str("path", app.path).Int("bytes", len(content)).Msg("saved")
	return nil
}

// applyConfig applies a configuration delivered by the watcher. A config
// that fails to load or apply leaves the field as it was.
func (app *Application) applyConfig(r reloadEvent) {
	err := r.err
	if err == nil {
		err = app.field.Reload(r.cfg)
	}
	if err != nil {
		app.log.Warn().Err(err).Msg("config reload failed")
		app.message = "config: " + err.Error()
		return
	}

	app.view.SetTabWidth(r.cfg.Field.TabWidth)
	app.log.Info().Msg("config reloaded")
	app.message = "config reloaded"
}

// status returns the status line text.
func (app *Application) status() string {
	h := app.field.Handler()

	name := "[scratch]"
	if app.path != "" {
		name = filepath.Base(app.path)
	}

	parts := []string{name}
	if app.Modified() {
		parts[0] += " +"
	}
	if !h.AllowEditing() {
		parts = append(parts, "[read-only]")
	}

	line, col, _ := h.TextPos(h.Cursor().Idx)
	parts = append(parts, fmt.Sprintf("%d:%d", line+1, col+1))

	if n := h.CursorCount(); n > 1 {
		parts = append(parts, fmt.Sprintf("%d cursors", n))
	}
	if limit, ok := h.MaxLength(); ok {
		parts = append(parts, fmt.Sprintf("%d/%d", h.Len(), limit))
	}
	if app.message != "" {
		parts = append(parts, app.message)
	}

	return " " + strings.Join(parts, "  ")
}
