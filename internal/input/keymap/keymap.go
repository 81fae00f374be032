package keymap

import (
	"errors"
	"sort"

	"github.com/dshills/multicaret/internal/input/key"
)

// Keymap holds key bindings for a text field host.
type Keymap struct {
	// Name is the keymap identifier.
	Name string

	bindings []parsedBinding
}

// New creates an empty keymap with the given name.
func New(name string) *Keymap {
	return &Keymap{
		Name:     name,
		bindings: make([]parsedBinding, 0),
	}
}

// Default returns a keymap holding DefaultBindings.
func Default() *Keymap {
	km := New("default")
	for _, b := range DefaultBindings() {
		// Defaults are known-valid.
		_ = km.AddBinding(b)
	}
	return km
}

// FromMap builds a keymap from an action -> key specification table, as
// found in the [keybinds] configuration section. Actions missing from the
// table keep their default binding; an empty specification unbinds the
// action. All invalid entries are reported together.
func FromMap(name string, table map[string]string) (*Keymap, error) {
	km := Default()
	km.Name = name

	actions := make([]string, 0, len(table))
	for action := range table {
		actions = append(actions, action)
	}
	sort.Strings(actions)

	var errs []error
	for _, action := range actions {
		if err := km.Set(action, table[action]); err != nil {
			errs = append(errs, err)
		}
	}
	return km, errors.Join(errs...)
}

// AddBinding adds a binding. Keys may list alternatives separated by " | ".
func (k *Keymap) AddBinding(b Binding) error {
	for _, alt := range splitAlternatives(b.Keys) {
		single := b
		single.Keys = alt
		pb, err := single.parse()
		if err != nil {
			return err
		}
		k.bindings = append(k.bindings, pb)
	}
	return nil
}

// Add adds a binding for keys to action.
func (k *Keymap) Add(keys, action string) error {
	return k.AddBinding(NewBinding(keys, action))
}

// Set replaces every binding of action with keys. An empty keys string
// leaves the action unbound. On error the existing bindings are kept.
func (k *Keymap) Set(action, keys string) error {
	var parsed []parsedBinding
	for _, alt := range splitAlternatives(keys) {
		pb, err := NewBinding(alt, action).parse()
		if err != nil {
			return err
		}
		parsed = append(parsed, pb)
	}

	kept := k.bindings[:0]
	for _, pb := range k.bindings {
		if pb.Action != action {
			kept = append(kept, pb)
		}
	}
	k.bindings = append(kept, parsed...)
	return nil
}

// Matches reports whether ev triggers action.
func (k *Keymap) Matches(action string, ev key.Event) bool {
	for _, pb := range k.bindings {
		if pb.Action == action && pb.event.Equals(ev) {
			return true
		}
	}
	return false
}

// IsBound reports whether any binding claims ev.
func (k *Keymap) IsBound(ev key.Event) bool {
	_, ok := k.ActionFor(ev)
	return ok
}

// ActionFor returns the first action bound to ev.
func (k *Keymap) ActionFor(ev key.Event) (string, bool) {
	for _, pb := range k.bindings {
		if pb.event.Equals(ev) {
			return pb.Action, true
		}
	}
	return "", false
}

// Bindings returns a copy of all bindings in insertion order.
func (k *Keymap) Bindings() []Binding {
	out := make([]Binding, len(k.bindings))
	for i, pb := range k.bindings {
		out[i] = pb.Binding
	}
	return out
}

// Len returns the number of bindings.
func (k *Keymap) Len() int {
	return len(k.bindings)
}
