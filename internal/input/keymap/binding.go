package keymap

import (
	"fmt"
	"strings"

	"github.com/dshills/multicaret/internal/input/key"
)

// Action names understood by text fields and hosts.
const (
	ActionCopy      = "copy"
	ActionCut       = "cut"
	ActionPaste     = "paste"
	ActionSelectAll = "select_all"
	ActionUndo      = "undo"
	ActionRedo      = "redo"
	ActionSave      = "save"
	ActionQuit      = "quit"
)

// Binding represents a single key-to-action mapping.
type Binding struct {
	// Keys is the key specification that triggers this binding.
	// Formats: "Ctrl+C", "Left Ctrl+C", "Alt+Left"
	Keys string

	// Action is the named action to trigger.
	Action string

	// Description provides documentation for the binding.
	Description string
}

// NewBinding creates a new binding with the given keys and action.
func NewBinding(keys, action string) Binding {
	return Binding{
		Keys:   keys,
		Action: action,
	}
}

// WithDescription sets the description for this binding.
func (b Binding) WithDescription(desc string) Binding {
	b.Description = desc
	return b
}

// parsedBinding is a binding with its key specification pre-parsed.
type parsedBinding struct {
	Binding
	event key.Event
}

// parse parses the binding's key specification.
func (b Binding) parse() (parsedBinding, error) {
	ev, err := key.Parse(b.Keys)
	if err != nil {
		return parsedBinding{}, &BindingError{Action: b.Action, Keys: b.Keys, Err: err}
	}
	return parsedBinding{Binding: b, event: ev}, nil
}

// BindingError reports a binding whose key specification could not be parsed.
type BindingError struct {
	Action string
	Keys   string
	Err    error
}

func (e *BindingError) Error() string {
	return fmt.Sprintf("keybinding %s = %q: %v", e.Action, e.Keys, e.Err)
}

func (e *BindingError) Unwrap() error {
	return e.Err
}

// splitAlternatives splits "Ctrl+C | Ctrl+Insert" into its alternatives.
func splitAlternatives(spec string) []string {
	parts := strings.Split(spec, " | ")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
