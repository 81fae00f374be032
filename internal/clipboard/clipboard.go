// Package clipboard provides clipboard backends for text fields.
//
// Memory keeps text in process and is the default for fields and tests.
// System reads and writes the operating system clipboard.
package clipboard

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
)

// ErrUnsupported is returned when no system clipboard utility is available.
var ErrUnsupported = errors.New("system clipboard unsupported")

// Clipboard reads and writes plain text.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(text string) error
}

// Memory is an in-process clipboard.
type Memory struct {
	text string
}

// NewMemory creates an empty in-process clipboard.
func NewMemory() *Memory {
	return &Memory{}
}

// ReadText returns the last written text.
func (m *Memory) ReadText() (string, error) {
	return m.text, nil
}

// WriteText stores text.
func (m *Memory) WriteText(text string) error {
	m.text = text
	return nil
}

// System uses the operating system clipboard.
type System struct{}

// NewSystem returns the OS clipboard, or ErrUnsupported when the platform
// has no clipboard utility (for example a headless Linux box without
// xclip, xsel or wl-clipboard).
func NewSystem() (*System, error) {
	if clipboard.Unsupported {
		return nil, ErrUnsupported
	}
	return &System{}, nil
}

// ReadText reads the OS clipboard.
func (s *System) ReadText() (string, error) {
	text, err := clipboard.ReadAll()
	if err != nil {
		return "", fmt.Errorf("reading system clipboard: %w", err)
	}
	return text, nil
}

// WriteText writes the OS clipboard.
func (s *System) WriteText(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("writing system clipboard: %w", err)
	}
	return nil
}
