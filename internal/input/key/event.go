package key

import (
	"fmt"
	"strings"
	"unicode"
)

// Event represents a single triggered key.
type Event struct {
	// Key identifies the key pressed.
	Key Key

	// Rune is the character for KeyRune events.
	Rune rune

	// Modifiers contains the active modifier keys.
	Modifiers Modifier
}

// NewRuneEvent creates a key event for a character.
func NewRuneEvent(r rune, mods Modifier) Event {
	return Event{Key: KeyRune, Rune: r, Modifiers: mods}
}

// NewSpecialEvent creates a key event for a named key.
func NewSpecialEvent(k Key, mods Modifier) Event {
	return Event{Key: k, Modifiers: mods}
}

// IsRune returns true if this is a character key event.
func (e Event) IsRune() bool {
	return e.Key == KeyRune && e.Rune != 0
}

// IsChar returns true if this is a printable character.
func (e Event) IsChar() bool {
	return e.IsRune() && unicode.IsPrint(e.Rune)
}

// IsModified returns true if a command modifier is pressed.
// Shift alone does not count since it only changes the character.
func (e Event) IsModified() bool {
	return e.Modifiers&(ModCtrl|ModAlt|ModMeta) != 0
}

// String returns a canonical binding string such as "Ctrl+C" or "Shift+Tab".
// The result parses back to an equal event.
func (e Event) String() string {
	var parts []string
	if e.Modifiers != ModNone {
		parts = append(parts, e.Modifiers.String())
	}

	switch e.Key {
	case KeyRune:
		switch {
		case e.Rune == ' ':
			parts = append(parts, "Space")
		case e.Rune == '+':
			parts = append(parts, "Plus")
		default:
			parts = append(parts, strings.ToUpper(string(e.Rune)))
		}
	default:
		parts = append(parts, e.Key.String())
	}
	return strings.Join(parts, "+")
}

// Equals returns true if two events represent the same key press.
// Letters compare case-insensitively; Shift is carried by Modifiers.
func (e Event) Equals(other Event) bool {
	e, other = e.normalize(), other.normalize()
	if e.Key != other.Key || e.Modifiers != other.Modifiers {
		return false
	}
	if e.Key != KeyRune {
		return true
	}
	return unicode.ToLower(e.Rune) == unicode.ToLower(other.Rune)
}

// normalize folds the named Space key into its rune form.
func (e Event) normalize() Event {
	if e.Key == KeySpace {
		e.Key = KeyRune
		e.Rune = ' '
	}
	return e
}

// Matches checks if this event matches a key specification string.
func (e Event) Matches(spec string) bool {
	parsed, err := Parse(spec)
	if err != nil {
		return false
	}
	return e.Equals(parsed)
}

// WithModifier returns a copy with the specified modifier added.
func (e Event) WithModifier(mod Modifier) Event {
	e.Modifiers = e.Modifiers.With(mod)
	return e
}

// GoString implements fmt.GoStringer for debugging.
func (e Event) GoString() string {
	return fmt.Sprintf("Event{Key: %s, Rune: %q, Modifiers: %s}",
		e.Key.String(), e.Rune, e.Modifiers.String())
}
