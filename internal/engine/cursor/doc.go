// Package cursor provides the caret and edit-range primitives for text fields.
//
// The cursor package handles:
//
//   - Single caret positioning with the Cursor value type
//   - Optional selection anchors using an anchor/index model
//   - Half-open edit ranges via the Range type
//   - Region merging for destructive multi-cursor edits
//   - Folding cursors that land on the same index
//
// Offsets:
//
// All offsets are character (rune) offsets into the field content, not byte
// offsets. This keeps positions stable under multi-byte UTF-8 text.
//
// Selection Model:
//
// A Cursor always has an index (where typing occurs). While Selecting is true
// the Anchor marks where the selection started and the selection covers the
// half-open span between the two. Anchor and Idx may be in either order.
//
// Edit Ranges:
//
// Range, BackspaceRange and DeleteRange are the only places where the
// "selection vs. caret" decision is made. Callers that collect those ranges
// from every cursor and run them through MergeRanges can treat all cursors
// uniformly:
//
//	ranges := make([]cursor.Range, 0, len(all))
//	for _, c := range all {
//		ranges = append(ranges, c.BackspaceRange())
//	}
//	for _, r := range cursor.MergeRanges(ranges) {
//		// delete r, tracking the shift for later regions
//	}
//
// Thread Safety:
//
// Cursor and Range are value types and safe to copy. Slices of cursors passed
// to Dedup are modified in place and must not be shared.
package cursor
