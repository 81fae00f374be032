package keymap

// DefaultBindings returns the built-in text field bindings.
func DefaultBindings() []Binding {
	return []Binding{
		{Keys: "Ctrl+C", Action: ActionCopy, Description: "Copy selection"},
		{Keys: "Ctrl+X", Action: ActionCut, Description: "Cut selection"},
		{Keys: "Ctrl+V", Action: ActionPaste, Description: "Paste clipboard"},
		{Keys: "Ctrl+A", Action: ActionSelectAll, Description: "Select all"},
		{Keys: "Ctrl+Z", Action: ActionUndo, Description: "Undo"},
		{Keys: "Ctrl+Y | Ctrl+Shift+Z", Action: ActionRedo, Description: "Redo"},
		{Keys: "Ctrl+S", Action: ActionSave, Description: "Save"},
		{Keys: "Ctrl+Q", Action: ActionQuit, Description: "Quit"},
	}
}
