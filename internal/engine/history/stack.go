package history

import (
	"errors"
	"time"
)

// DefaultMaxEntries is used when a non-positive limit is given.
const DefaultMaxEntries = 1000

// Common errors for history operations.
var (
	ErrNothingToUndo = errors.New("nothing to undo")
	ErrNothingToRedo = errors.New("nothing to redo")
)

// Snapshot is the state of a field at a checkpoint.
type Snapshot struct {
	Content string

	// Cursor is the primary cursor offset to restore.
	Cursor int

	Timestamp time.Time
}

// NewSnapshot creates a snapshot stamped with the current time.
func NewSnapshot(content string, cursor int) Snapshot {
	return Snapshot{Content: content, Cursor: cursor, Timestamp: time.Now()}
}

// History manages undo/redo snapshots for one field.
// It is not safe for concurrent use.
type History struct {
	undoStack []Snapshot
	redoStack []Snapshot

	maxEntries int
}

// New creates a history holding at most maxEntries undo snapshots.
func New(maxEntries int) *History {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	return &History{
		maxEntries: maxEntries,
	}
}

// Push records a checkpoint and clears the redo stack.
// A snapshot whose content matches the latest checkpoint is ignored.
// Returns whether the snapshot was recorded.
func (h *History) Push(s Snapshot) bool {
	if n := len(h.undoStack); n > 0 && h.undoStack[n-1].Content == s.Content {
		return false
	}
	if s.Timestamp.IsZero() {
		s.Timestamp = time.Now()
	}

	h.undoStack = append(h.undoStack, s)
	h.redoStack = nil
	h.trim()
	return true
}

// Undo returns the checkpoint preceding current. current is kept on the redo
// stack. A latest checkpoint equal to current is skipped, since restoring it
// would change nothing.
func (h *History) Undo(current Snapshot) (Snapshot, error) {
	n := len(h.undoStack)
	if n > 0 && h.undoStack[n-1].Content == current.Content {
		n--
	}
	if n == 0 {
		return Snapshot{}, ErrNothingToUndo
	}

	prev := h.undoStack[n-1]
	h.undoStack = h.undoStack[:n-1]
	h.redoStack = append(h.redoStack, current)
	return prev, nil
}

// Redo returns the state most recently replaced by Undo. current is kept on
// the undo stack.
func (h *History) Redo(current Snapshot) (Snapshot, error) {
	n := len(h.redoStack)
	if n == 0 {
		return Snapshot{}, ErrNothingToRedo
	}

	next := h.redoStack[n-1]
	h.redoStack = h.redoStack[:n-1]
	h.undoStack = append(h.undoStack, current)
	h.trim()
	return next, nil
}

// CanUndo returns true if an undo snapshot differs from current.
func (h *History) CanUndo(current Snapshot) bool {
	n := len(h.undoStack)
	if n > 0 && h.undoStack[n-1].Content == current.Content {
		n--
	}
	return n > 0
}

// CanRedo returns true if redo is available.
func (h *History) CanRedo() bool {
	return len(h.redoStack) > 0
}

// UndoCount returns the number of recorded checkpoints.
func (h *History) UndoCount() int {
	return len(h.undoStack)
}

// RedoCount returns the number of redo snapshots available.
func (h *History) RedoCount() int {
	return len(h.redoStack)
}

// PeekUndo returns the latest checkpoint without removing it.
func (h *History) PeekUndo() (Snapshot, bool) {
	if len(h.undoStack) == 0 {
		return Snapshot{}, false
	}
	return h.undoStack[len(h.undoStack)-1], true
}

// Clear removes all undo/redo history.
func (h *History) Clear() {
	h.undoStack = nil
	h.redoStack = nil
}

// SetMaxEntries changes the maximum number of undo entries.
// If the current stack is larger, oldest entries are removed.
func (h *History) SetMaxEntries(max int) {
	if max <= 0 {
		max = DefaultMaxEntries
	}
	h.maxEntries = max
	h.trim()
}

// MaxEntries returns the maximum number of undo entries.
func (h *History) MaxEntries() int {
	return h.maxEntries
}

// trim drops the oldest entries beyond maxEntries.
func (h *History) trim() {
	if len(h.undoStack) > h.maxEntries {
		excess := len(h.undoStack) - h.maxEntries
		h.undoStack = h.undoStack[excess:]
	}
}
