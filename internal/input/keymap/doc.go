// Package keymap resolves named actions to key bindings.
//
// A Keymap maps action names such as "copy" or "undo" to one or more key
// specifications ("Ctrl+C", "Left Ctrl+C"). It answers two questions for a
// text field each frame:
//
//   - Matches: does this key event trigger the given action?
//   - IsBound: is this key event claimed by any binding at all?
//
// Bound keys that are not text-field actions (undo, redo, quit) are
// swallowed by the field and handled by the host.
//
// Bindings come from the [keybinds] table of the configuration file and fall
// back to DefaultBindings for actions the user does not override.
package keymap
