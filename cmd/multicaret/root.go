package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dshills/multicaret/internal/app"
	"github.com/dshills/multicaret/internal/clipboard"
	"github.com/dshills/multicaret/internal/config"
	"github.com/dshills/multicaret/internal/logging"
	"github.com/dshills/multicaret/internal/renderer/backend"
)

// flags holds the command line overrides applied on top of the
// configuration file.
type flags struct {
	configPath string
	readOnly   bool
	singleLine bool
	maxLength  int
	logLevel   string
	logFile    string
}

func newRootCmd() *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:   "multicaret [file]",
		Short: "A multi-cursor text field for the terminal",
		Long: `multicaret edits one file in a multi-cursor text field.

Ctrl or Alt click adds a cursor, Shift extends the selection, and every
edit applies at all cursors at once. Key bindings, field limits and logging
are read from a TOML configuration file that is reloaded when it changes.

Examples:
  multicaret notes.txt                 # Edit a file
  multicaret --single-line name.txt    # Refuse line breaks
  multicaret --readonly README.md      # Browse without editing`,
		Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			return run(cmd, f, path)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&f.configPath, "config", "c", "", "path to configuration file (default: user config dir)")
	pf.BoolVarP(&f.readOnly, "readonly", "R", false, "open the field read-only")
	pf.BoolVar(&f.singleLine, "single-line", false, "refuse line breaks")
	pf.IntVar(&f.maxLength, "max-length", 0, "maximum content length in characters (0 is unlimited)")
	pf.StringVar(&f.logLevel, "log-level", "", "log level (trace, debug, info, warn, error)")
	pf.StringVar(&f.logFile, "log-file", "", `log file ("-" for stderr)`)

	cmd.AddCommand(newConfigCmd(&f))
	return cmd
}

// defaultConfigPath returns the per-user configuration file path.
func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "multicaret", "config.toml")
}

// loadConfig loads the configuration file and applies the flags that were
// set on cmd.
func loadConfig(cmd *cobra.Command, f flags) (string, config.Config, error) {
	path := f.configPath
	if path == "" {
		path = defaultConfigPath()
	}

	cfg, err := config.Load(path)
	if err != nil {
		return path, cfg, err
	}
	cfg = applyFlags(cmd, f, cfg)
	return path, cfg, cfg.Validate()
}

// applyFlags overrides cfg with the flags that were explicitly set.
func applyFlags(cmd *cobra.Command, f flags, cfg config.Config) config.Config {
	set := cmd.Flags().Changed
	if set("readonly") {
		cfg.Field.ReadOnly = f.readOnly
	}
	if set("single-line") {
		cfg.Field.AllowNewlines = !f.singleLine
	}
	if set("max-length") {
		cfg.Field.MaxLength = f.maxLength
	}
	if set("log-level") {
		cfg.Log.Level = f.logLevel
	}
	if set("log-file") {
		cfg.Log.File = f.logFile
	}
	return cfg
}

func run(cmd *cobra.Command, f flags, path string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) || !term.IsTerminal(int(os.Stdin.Fd())) {
		return errors.New("multicaret needs an interactive terminal")
	}

	configPath, cfg, err := loadConfig(cmd, f)
	if err != nil {
		return err
	}

	log, closer, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	defer closer.Close()

	content, err := readContent(path)
	if err != nil {
		return err
	}

	var cb clipboard.Clipboard = clipboard.NewMemory()
	if sys, err := clipboard.NewSystem(); err == nil {
		cb = sys
	} else {
		log.Warn().Err(err).Msg("using in-process clipboard")
	}

	tb, err := backend.NewTerminal()
	if err != nil {
		return fmt.Errorf("creating terminal: %w", err)
	}

	application, err := app.New(tb, app.Options{
		Path:      path,
		Content:   content,
		Config:    cfg,
		Clipboard: cb,
		Logger:    log,
	})
	if err != nil {
		return err
	}

	if w := watchConfig(cmd, f, configPath, application, log); w != nil {
		defer w.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := application.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// readContent reads the file to edit. A file that does not exist yet is
// edited as empty and created on save.
func readContent(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", app.NewOperationError("open", path, err)
	}
	return string(data), nil
}

// watchConfig reloads the configuration into application when the file
// changes. Returns nil when the file cannot be watched.
func watchConfig(cmd *cobra.Command, f flags, path string, application *app.Application, log zerolog.Logger) *config.Watcher {
	if path == "" {
		return nil
	}

	w, err := config.Watch(path, func(cfg config.Config, err error) {
		if err == nil {
			cfg = applyFlags(cmd, f, cfg)
			err = cfg.Validate()
		}
		application.Reload(cfg, err)
	}, config.WithWatchLogger(log))
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("config hot reload disabled")
		return nil
	}
	return w
}
