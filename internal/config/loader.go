package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed default.toml
var defaultTOML []byte

// EnvPrefix prefixes environment overrides.
const EnvPrefix = "MULTICARET_"

// Default returns the embedded default configuration.
func Default() Config {
	cfg, err := resolve(nil, nil)
	if err != nil {
		// The embedded defaults are covered by tests.
		panic(fmt.Sprintf("config: invalid embedded defaults: %v", err))
	}
	return cfg
}

// Load reads the configuration at path layered over the defaults and the
// environment. A missing file is not an error. An empty path skips the
// user layer.
func Load(path string) (Config, error) {
	var user map[string]any
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return Config{}, fmt.Errorf("reading config file %s: %w", path, err)
		default:
			if user, err = Parse(path, data); err != nil {
				return Config{}, err
			}
		}
	}
	return resolve(user, EnvOverrides(os.Environ()))
}

// Parse decodes a user configuration file into a map, rejecting syntax
// errors, unknown keys and mistyped values with a *ParseError.
func Parse(source string, data []byte) (map[string]any, error) {
	var m map[string]any
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, newParseError(source, err)
	}

	var probe Config
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&probe); err != nil {
		return nil, newParseError(source, err)
	}
	return m, nil
}

// resolve merges defaults, user and env layers and decodes the result.
func resolve(user, env map[string]any) (Config, error) {
	var base map[string]any
	if err := toml.Unmarshal(defaultTOML, &base); err != nil {
		return Config{}, newParseError("default.toml", err)
	}
	merged := DeepMerge(DeepMerge(base, user), env)

	data, err := toml.Marshal(merged)
	if err != nil {
		return Config{}, fmt.Errorf("encoding merged config: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("decoding merged config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ParseError represents an error while parsing a configuration file.
type ParseError struct {
	Path    string
	Line    int
	Column  int
	Message string
	Err     error
}

func newParseError(source string, err error) *ParseError {
	pe := &ParseError{Path: source, Message: err.Error(), Err: err}

	var strict *toml.StrictMissingError
	if errors.As(err, &strict) && len(strict.Errors) > 0 {
		first := strict.Errors[0]
		pe.Line, pe.Column = first.Position()
		pe.Message = "unknown key " + strings.Join(first.Key(), ".")
		return pe
	}

	var decode *toml.DecodeError
	if errors.As(err, &decode) {
		pe.Line, pe.Column = decode.Position()
	}
	return pe
}

func (e *ParseError) Error() string {
	if e.Line > 0 && e.Column > 0 {
		return fmt.Sprintf("parse error in %s at line %d, column %d: %s", e.Path, e.Line, e.Column, e.Message)
	}
	if e.Line > 0 {
		return fmt.Sprintf("parse error in %s at line %d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error in %s: %s", e.Path, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// DeepMerge recursively merges src into dst.
// Values in src override values in dst.
// Maps are merged recursively; other types are replaced.
func DeepMerge(dst, src map[string]any) map[string]any {
	if dst == nil {
		dst = make(map[string]any)
	}
	if src == nil {
		return dst
	}

	for key, srcVal := range src {
		dstVal, exists := dst[key]
		if !exists {
			dst[key] = srcVal
			continue
		}

		srcMap, srcIsMap := srcVal.(map[string]any)
		dstMap, dstIsMap := dstVal.(map[string]any)
		if srcIsMap && dstIsMap {
			dst[key] = DeepMerge(dstMap, srcMap)
		} else {
			dst[key] = srcVal
		}
	}

	return dst
}

// EnvOverrides converts MULTICARET_SECTION_KEY=value entries of environ
// into a configuration map. MULTICARET_FIELD_MAX_LENGTH=80 becomes
// field.max_length = 80. Entries without a key part are ignored.
func EnvOverrides(environ []string) map[string]any {
	config := make(map[string]any)
	for _, env := range environ {
		name, value, ok := strings.Cut(env, "=")
		if !ok || !strings.HasPrefix(name, EnvPrefix) {
			continue
		}

		section, key, ok := strings.Cut(strings.ToLower(strings.TrimPrefix(name, EnvPrefix)), "_")
		if !ok || section == "" || key == "" {
			continue
		}

		sub, _ := config[section].(map[string]any)
		if sub == nil {
			sub = make(map[string]any)
			config[section] = sub
		}
		sub[key] = parseValue(value)
	}
	return config
}

// parseValue attempts to parse the string value into an appropriate type.
func parseValue(s string) any {
	switch strings.ToLower(s) {
	case "true", "yes", "on":
		return true
	case "false", "no", "off":
		return false
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	return s
}
