package config

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// MaxTabWidth bounds field.tab_width.
const MaxTabWidth = 16

// Config is the complete multicaret configuration.
type Config struct {
	Field    FieldConfig       `toml:"field"`
	Keybinds map[string]string `toml:"keybinds"`
	History  HistoryConfig     `toml:"history"`
	Log      LogConfig         `toml:"log"`
}

// FieldConfig configures the edited text field.
type FieldConfig struct {
	AllowNewlines bool `toml:"allow_newlines"`

	// MaxLength is the maximum content length in characters. 0 is unlimited.
	MaxLength int `toml:"max_length"`

	ReadOnly bool `toml:"read_only"`
	TabWidth int  `toml:"tab_width"`
}

// MaxLengthPtr returns MaxLength in the optional form the editing engine
// takes, or nil when unlimited.
func (f FieldConfig) MaxLengthPtr() *int {
	if f.MaxLength <= 0 {
		return nil
	}
	v := f.MaxLength
	return &v
}

// HistoryConfig configures undo history.
type HistoryConfig struct {
	MaxEntries int `toml:"max_entries"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
	File   string `toml:"file"`
}

// Validate reports every out-of-range setting. Each error wraps ErrInvalid.
func (c Config) Validate() error {
	var errs []error
	invalid := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	if c.Field.MaxLength < 0 {
		invalid("field.max_length must not be negative, got %d", c.Field.MaxLength)
	}
	if c.Field.TabWidth < 1 || c.Field.TabWidth > MaxTabWidth {
		invalid("field.tab_width must be between 1 and %d, got %d", MaxTabWidth, c.Field.TabWidth)
	}
	if c.History.MaxEntries < 1 {
		invalid("history.max_entries must be positive, got %d", c.History.MaxEntries)
	}
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		invalid("log.level %q is not a level", c.Log.Level)
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		invalid("log.format must be console or json, got %q", c.Log.Format)
	}

	return errors.Join(errs...)
}
