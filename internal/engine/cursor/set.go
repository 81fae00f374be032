package cursor

import "sort"

// Dedup sorts the secondary cursors by index and folds every cursor that
// shares an index with the primary or with an earlier secondary into that
// cursor. A folded cursor selects the union of both selections. The primary
// is returned because folding can widen its selection.
// The slice is reordered in place; the returned slice aliases it.
func Dedup(primary Cursor, secondary []Cursor) (Cursor, []Cursor) {
	for {
		SortByIndex(secondary)

		folded := false
		out := secondary[:0]
		for _, c := range secondary {
			switch {
			case c.Idx == primary.Idx:
				primary = fold(primary, c)
				folded = true
			case len(out) > 0 && out[len(out)-1].Idx == c.Idx:
				out[len(out)-1] = fold(out[len(out)-1], c)
				folded = true
			default:
				out = append(out, c)
			}
		}
		secondary = out

		// A fold can move a caret onto another cursor's index.
		if !folded {
			return primary, secondary
		}
	}
}

// fold merges other into keep, which sit at the same index. keep's
// PreferredColumn survives.
func fold(keep, other Cursor) Cursor {
	if !other.HasSelection() {
		return keep
	}
	if !keep.HasSelection() {
		keep.Anchor = other.Anchor
		keep.Selecting = true
		return keep
	}

	u := keep.Range().Union(other.Range())
	switch keep.Idx {
	case u.Start:
		keep.Anchor = u.End
	case u.End:
		keep.Anchor = u.Start
	default:
		// The selections lie on both sides of the caret; extend in keep's
		// direction.
		if keep.Anchor < keep.Idx {
			keep.Anchor, keep.Idx = u.Start, u.End
		} else {
			keep.Anchor, keep.Idx = u.End, u.Start
		}
	}
	keep.Selecting = true
	return keep
}

// ClampAll clamps every cursor in place to [0, maxOffset].
func ClampAll(cursors []Cursor, maxOffset int) {
	for i := range cursors {
		cursors[i] = cursors[i].Clamp(maxOffset)
	}
}

// SortByIndex sorts cursors ascending by index, keeping the relative order
// of cursors at the same index.
func SortByIndex(cursors []Cursor) {
	sort.SliceStable(cursors, func(i, j int) bool {
		return cursors[i].Less(cursors[j])
	})
}
