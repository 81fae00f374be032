package cursor

import "fmt"

// Cursor represents a caret in a text field.
// Cursor is a value type; methods with value receivers never modify it.
type Cursor struct {
	// Idx is the character offset where typing occurs.
	Idx int

	// Anchor is where the selection started. Only meaningful while Selecting.
	Anchor int

	// Selecting reports whether Anchor is set.
	Selecting bool

	// PreferredColumn is the column remembered across vertical motion.
	PreferredColumn int
}

// New creates a cursor at the given offset with no selection.
func New(idx int) Cursor {
	if idx < 0 {
		idx = 0
	}
	return Cursor{Idx: idx}
}

// NewSelection creates a cursor at idx with a selection anchored at anchor.
func NewSelection(anchor, idx int) Cursor {
	c := New(idx)
	if anchor < 0 {
		anchor = 0
	}
	c.Anchor = anchor
	c.Selecting = true
	return c
}

// HasSelection returns true if the cursor selects at least one character.
func (c Cursor) HasSelection() bool {
	return c.Selecting && c.Anchor != c.Idx
}

// Range returns the selected span, or the empty range at Idx.
func (c Cursor) Range() Range {
	if !c.Selecting {
		return Range{Start: c.Idx, End: c.Idx}
	}
	return NewRange(c.Anchor, c.Idx)
}

// BackspaceRange returns the range a backspace at this cursor removes.
// At offset 0 with no selection the range is empty.
func (c Cursor) BackspaceRange() Range {
	if c.HasSelection() {
		return c.Range()
	}
	return Range{Start: satSub(c.Idx, 1), End: c.Idx}
}

// DeleteRange returns the range a forward delete at this cursor removes.
// At the end of content with no selection the range is empty.
func (c Cursor) DeleteRange(length int) Range {
	if c.HasSelection() {
		return c.Range()
	}
	end := c.Idx + 1
	if end > length {
		end = length
	}
	if end < c.Idx {
		end = c.Idx
	}
	return Range{Start: c.Idx, End: end}
}

// StartSelection anchors a selection at the current index unless one exists.
func (c Cursor) StartSelection() Cursor {
	if !c.Selecting {
		c.Anchor = c.Idx
		c.Selecting = true
	}
	return c
}

// ClearSelection drops the selection anchor.
func (c Cursor) ClearSelection() Cursor {
	c.Anchor = 0
	c.Selecting = false
	return c
}

// MoveTo returns the cursor moved to idx. The selection anchor is kept.
func (c Cursor) MoveTo(idx int) Cursor {
	if idx < 0 {
		idx = 0
	}
	c.Idx = idx
	return c
}

// Clamp returns a cursor with Idx and Anchor clamped to [0, maxOffset].
func (c Cursor) Clamp(maxOffset int) Cursor {
	c.Idx = clamp(c.Idx, 0, maxOffset)
	if c.Selecting {
		c.Anchor = clamp(c.Anchor, 0, maxOffset)
	}
	return c
}

// Compare returns -1 if c < other, 0 if c == other, 1 if c > other.
// Only Idx takes part in ordering.
func (c Cursor) Compare(other Cursor) int {
	if c.Idx < other.Idx {
		return -1
	}
	if c.Idx > other.Idx {
		return 1
	}
	return 0
}

// Less reports whether c orders before other.
func (c Cursor) Less(other Cursor) bool {
	return c.Idx < other.Idx
}

// Equals returns true if every field of both cursors matches.
func (c Cursor) Equals(other Cursor) bool {
	return c == other
}

// SamePosition returns true if both cursors sit at the same index and
// select the same span. PreferredColumn is ignored.
func (c Cursor) SamePosition(other Cursor) bool {
	if c.Idx != other.Idx || c.Selecting != other.Selecting {
		return false
	}
	return !c.Selecting || c.Anchor == other.Anchor
}

// String returns a string representation of the cursor.
func (c Cursor) String() string {
	if c.Selecting {
		return fmt.Sprintf("Cursor(%d, anchor=%d)", c.Idx, c.Anchor)
	}
	return fmt.Sprintf("Cursor(%d)", c.Idx)
}

// satSub subtracts b from a, flooring at zero.
func satSub(a, b int) int {
	if a <= b {
		return 0
	}
	return a - b
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
