// Package key provides key event types and parsing for text field input.
//
// This package defines the fundamental types for representing keyboard input:
//
//   - Key: Identifies a keyboard key (named keys or runes)
//   - Modifier: Represents modifier keys (Ctrl, Alt, Shift, Meta)
//   - Event: A single triggered key with the modifiers held at the time
//
// # Key Specifications
//
// Keybindings are written as strings:
//
//   - Simple keys: "a", "1", "Enter", "Escape", "Tab"
//   - With modifiers: "Ctrl+C", "Alt+Left", "Ctrl+Shift+Z"
//   - Side-specific modifiers: "Left Ctrl+C", "Right Shift+Tab"
//
// Side-specific modifier names resolve to the plain modifier, so a binding
// written as "Ctrl+C" matches either Ctrl key.
package key
