// Package history provides snapshot undo/redo for a text field host.
//
// The editing engine never stores history itself. It raises an
// update-history signal at edit boundaries and the host records a Snapshot
// of the field at that point:
//
//	h := history.New(1000)
//	h.Push(history.Snapshot{Content: field.Content(), Cursor: idx})
//
//	// Undo/redo take the current state so it can be restored later.
//	prev, err := h.Undo(current)
//	next, err := h.Redo(prev)
//
// Consecutive pushes of identical content are collapsed into one entry.
package history
