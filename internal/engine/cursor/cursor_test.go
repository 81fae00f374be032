package cursor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Cursor Tests

func TestNew(t *testing.T) {
	c := New(10)
	assert.Equal(t, 10, c.Idx)
	assert.False(t, c.Selecting)
	assert.False(t, c.HasSelection())
}

func TestNewNegative(t *testing.T) {
	c := New(-5)
	assert.Equal(t, 0, c.Idx, "negative offset should clamp to 0")
}

func TestNewSelection(t *testing.T) {
	c := NewSelection(11, 14)
	assert.True(t, c.Selecting)
	assert.True(t, c.HasSelection())
	assert.Equal(t, Range{Start: 11, End: 14}, c.Range())

	backward := NewSelection(14, 11)
	assert.Equal(t, Range{Start: 11, End: 14}, backward.Range())
}

func TestEmptySelectionIsNotASelection(t *testing.T) {
	c := NewSelection(7, 7)
	assert.True(t, c.Selecting)
	assert.False(t, c.HasSelection())
	assert.Equal(t, Range{Start: 6, End: 7}, c.BackspaceRange())
}

func TestCursorRange(t *testing.T) {
	assert.Equal(t, Range{Start: 4, End: 4}, New(4).Range())
}

func TestBackspaceRange(t *testing.T) {
	tests := []struct {
		name string
		c    Cursor
		want Range
	}{
		{"caret", New(14), Range{Start: 13, End: 14}},
		{"at start", New(0), Range{Start: 0, End: 0}},
		{"selection", NewSelection(11, 14), Range{Start: 11, End: 14}},
		{"backward selection", NewSelection(17, 11), Range{Start: 11, End: 17}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.c.BackspaceRange())
		})
	}
}

func TestDeleteRange(t *testing.T) {
	tests := []struct {
		name   string
		c      Cursor
		length int
		want   Range
	}{
		{"caret", New(3), 10, Range{Start: 3, End: 4}},
		{"at end", New(10), 10, Range{Start: 10, End: 10}},
		{"selection", NewSelection(2, 6), 10, Range{Start: 2, End: 6}},
		{"past end", New(12), 10, Range{Start: 12, End: 12}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.c.DeleteRange(tt.length))
		})
	}
}

func TestStartSelectionKeepsExistingAnchor(t *testing.T) {
	c := New(5).StartSelection()
	require.True(t, c.Selecting)
	assert.Equal(t, 5, c.Anchor)

	c = c.MoveTo(9).StartSelection()
	assert.Equal(t, 5, c.Anchor, "anchor should stay on second extension")
	assert.Equal(t, 9, c.Idx)
}

func TestClearSelection(t *testing.T) {
	c := NewSelection(3, 8).ClearSelection()
	assert.False(t, c.Selecting)
	assert.Equal(t, 8, c.Idx)
	assert.Equal(t, Range{Start: 8, End: 8}, c.Range())
}

func TestCursorClamp(t *testing.T) {
	c := NewSelection(40, 50).Clamp(30)
	assert.Equal(t, 30, c.Idx)
	assert.Equal(t, 30, c.Anchor)

	c2 := New(10).Clamp(30)
	assert.Equal(t, 10, c2.Idx)
}

func TestCursorCompare(t *testing.T) {
	c1 := New(10)
	c2 := New(20)
	c3 := NewSelection(0, 10)

	assert.Equal(t, -1, c1.Compare(c2))
	assert.Equal(t, 1, c2.Compare(c1))
	assert.Equal(t, 0, c1.Compare(c3), "ordering ignores the selection")
	assert.False(t, c1.Equals(c3), "equality includes the selection")
}

func TestSamePositionIgnoresPreferredColumn(t *testing.T) {
	a := New(5)
	b := New(5)
	b.PreferredColumn = 9

	assert.True(t, a.SamePosition(b))
	assert.False(t, a.Equals(b))
	assert.False(t, a.SamePosition(NewSelection(1, 5)))
}

func TestCursorString(t *testing.T) {
	assert.Equal(t, "Cursor(3)", New(3).String())
	assert.Equal(t, "Cursor(3, anchor=1)", NewSelection(1, 3).String())
}

// Range Tests

func TestRangeBasics(t *testing.T) {
	r := NewRange(8, 2)
	assert.Equal(t, Range{Start: 2, End: 8}, r)
	assert.Equal(t, 6, r.Len())
	assert.False(t, r.IsEmpty())
	assert.True(t, r.Contains(2))
	assert.False(t, r.Contains(8))
	assert.Equal(t, "[2:8)", r.String())
}

func TestRangeTouches(t *testing.T) {
	a := Range{Start: 3, End: 5}
	assert.True(t, a.Touches(Range{Start: 5, End: 7}), "adjacent ranges touch")
	assert.True(t, a.Touches(Range{Start: 4, End: 4}))
	assert.False(t, a.Touches(Range{Start: 6, End: 7}))
}

// Dedup Tests

func TestDedupRemovesPrimaryAndDuplicates(t *testing.T) {
	primary := New(5)
	others := []Cursor{New(9), New(5), New(2), New(9), NewSelection(1, 9)}

	gotPrimary, got := Dedup(primary, others)
	assert.Equal(t, New(5), gotPrimary)
	assert.Equal(t, []Cursor{New(2), NewSelection(1, 9)}, got)
}

func TestDedupInterleavedSelections(t *testing.T) {
	sel := NewSelection(5, 5)
	others := []Cursor{sel, New(5), sel}

	_, got := Dedup(New(0), others)
	assert.Equal(t, []Cursor{sel}, got)
}

func TestDedupFoldsSelections(t *testing.T) {
	tests := []struct {
		name        string
		primary     Cursor
		others      []Cursor
		wantPrimary Cursor
		want        []Cursor
	}{
		{
			name:        "secondary selection folds into primary",
			primary:     NewSelection(0, 0),
			others:      []Cursor{NewSelection(3, 0)},
			wantPrimary: NewSelection(3, 0),
		},
		{
			name:        "plain primary takes the secondary anchor",
			primary:     New(4),
			others:      []Cursor{NewSelection(1, 4)},
			wantPrimary: NewSelection(1, 4),
		},
		{
			name:        "same-side selections keep the wider anchor",
			primary:     NewSelection(3, 5),
			others:      []Cursor{NewSelection(1, 5)},
			wantPrimary: NewSelection(1, 5),
		},
		{
			name:        "selections on both sides extend in the primary direction",
			primary:     NewSelection(2, 5),
			others:      []Cursor{NewSelection(8, 5)},
			wantPrimary: NewSelection(2, 8),
		},
		{
			name:        "moved caret folds the cursor it lands on",
			primary:     NewSelection(2, 5),
			others:      []Cursor{New(8), NewSelection(8, 5), New(12)},
			wantPrimary: NewSelection(2, 8),
			want:        []Cursor{New(12)},
		},
		{
			name:        "secondaries fold into the first",
			primary:     New(0),
			others:      []Cursor{NewSelection(7, 4), New(9), NewSelection(1, 4)},
			wantPrimary: New(0),
			want:        []Cursor{NewSelection(7, 1), New(9)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotPrimary, got := Dedup(tt.primary, tt.others)
			assert.Equal(t, tt.wantPrimary, gotPrimary)
			if len(tt.want) == 0 {
				assert.Empty(t, got)
			} else {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestDedupLeavesUniqueIndexes(t *testing.T) {
	others := []Cursor{New(3), NewSelection(0, 3), New(3), NewSelection(6, 3), New(1)}

	primary, got := Dedup(New(1), others)
	seen := map[int]bool{primary.Idx: true}
	for _, c := range got {
		require.False(t, seen[c.Idx], "index %d appears twice", c.Idx)
		seen[c.Idx] = true
	}
}

func TestDedupEmpty(t *testing.T) {
	_, got := Dedup(New(0), nil)
	assert.Empty(t, got)
}

func TestSortByIndexIsStable(t *testing.T) {
	cursors := []Cursor{New(4), NewSelection(9, 2), New(2), New(0)}
	SortByIndex(cursors)
	assert.Equal(t, []Cursor{New(0), NewSelection(9, 2), New(2), New(4)}, cursors)
}
