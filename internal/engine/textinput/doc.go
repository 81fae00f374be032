// Package textinput implements the multi-cursor editing engine behind every
// editable text field.
//
// A Handler owns a single content string, a primary cursor and any number of
// secondary cursors. Insert, delete and navigation operations are applied to
// all cursors at once. Positions are character (rune) offsets.
//
// Destructive edits follow one protocol:
//
//  1. Collect the affected range from every cursor.
//  2. Merge the ranges with cursor.MergeRanges.
//  3. Apply the merged regions left to right, correcting each region's
//     original coordinates by the length already removed or inserted.
//  4. Reposition every cursor at its collapsed result and de-duplicate.
//
// Nothing in this package reports errors to the caller. Edits attempted while
// the field is read-only, or that would exceed the maximum length, are
// silently rejected and logged at debug level.
//
// Signals:
//
// After each frame the host drains two advisory flags:
//
//   - ShouldFocusCursor: an edit or navigation happened; reset caret blink
//     and scroll the primary cursor into view.
//   - ShouldUpdateHistory: an edit boundary was crossed; snapshot Content
//     into the host's undo history.
//
// Both are read-and-clear.
//
// Thread Safety:
//
// Handler is not thread-safe. It is meant to be driven once per frame from
// the host's event loop.
package textinput
