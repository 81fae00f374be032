package renderer

import (
	"github.com/rivo/uniseg"

	"github.com/dshills/multicaret/internal/engine/cursor"
	"github.com/dshills/multicaret/internal/engine/textinput"
	"github.com/dshills/multicaret/internal/renderer/backend"
)

// Options configures a view.
type Options struct {
	// TabWidth is the tab stop width used to lay out tab characters.
	TabWidth int

	// ScrollMargin is the number of lines kept visible above and below the
	// primary cursor when scrolling to it.
	ScrollMargin int

	// ShowStatus reserves the bottom row for a status line.
	ShowStatus bool
}

// DefaultOptions returns sensible default options.
func DefaultOptions() Options {
	return Options{
		TabWidth:     4,
		ScrollMargin: 2,
		ShowStatus:   true,
	}
}

// View renders one text field and tracks its scroll position.
// It is not safe for concurrent use.
type View struct {
	opts Options

	// top is the first visible line; left the first visible screen column.
	top  int
	left int
}

// NewView creates a view scrolled to the start of the field.
func NewView(opts Options) *View {
	if opts.TabWidth < 1 {
		opts.TabWidth = 4
	}
	if opts.ScrollMargin < 0 {
		opts.ScrollMargin = 0
	}
	return &View{opts: opts}
}

// SetTabWidth changes the tab stop width.
func (v *View) SetTabWidth(width int) {
	if width > 0 {
		v.opts.TabWidth = width
	}
}

// Top returns the first visible line.
func (v *View) Top() int {
	return v.top
}

// Left returns the first visible screen column.
func (v *View) Left() int {
	return v.left
}

// textHeight returns the rows available to text on a screen of height rows.
func (v *View) textHeight(height int) int {
	if v.opts.ShowStatus {
		height--
	}
	return max(height, 1)
}

// ScrollToCursor scrolls so the primary cursor is visible on a screen of
// the given size, keeping the scroll margin where the screen allows.
func (v *View) ScrollToCursor(h *textinput.Handler, width, height int) {
	line, col, ok := h.TextPos(h.Cursor().Idx)
	if !ok {
		return
	}

	rows := v.textHeight(height)
	margin := min(v.opts.ScrollMargin, (rows-1)/2)
	if line < v.top+margin {
		v.top = line - margin
	}
	if line >= v.top+rows-margin {
		v.top = line - rows + margin + 1
	}
	v.top = clamp(v.top, 0, h.LineCount()-1)

	text, _ := h.Line(line)
	x := lineColumns([]rune(text), v.opts.TabWidth)[col]
	if x < v.left {
		v.left = x
	}
	if width > 0 && x >= v.left+width {
		v.left = x - width + 1
	}
}

// Scroll moves the view by delta lines without moving any cursor.
func (v *View) Scroll(delta int, h *textinput.Handler, height int) {
	last := max(h.LineCount()-v.textHeight(height), 0)
	v.top = clamp(v.top+delta, 0, last)
}

// IndexAt maps a screen cell to a character offset, as for a mouse click.
// Clicks below the last line land at the end of the content. ok is false
// for cells outside the text area.
func (v *View) IndexAt(h *textinput.Handler, x, y, height int) (idx int, ok bool) {
	if x < 0 || y < 0 || y >= v.textHeight(height) {
		return 0, false
	}

	line := v.top + y
	if line >= h.LineCount() {
		return h.Len(), true
	}

	text, _ := h.Line(line)
	cols := lineColumns([]rune(text), v.opts.TabWidth)
	idx, _ = h.Index(line, runeAtColumn(cols, x+v.left))
	return idx, true
}

// Render draws the visible lines, selections, carets and status line, then
// flushes the backend.
func (v *View) Render(b backend.Backend, h *textinput.Handler, status string) {
	width, height := b.Size()
	b.Clear()

	rows := v.textHeight(height)
	selected := selectedRegions(h)
	carets := secondaryCarets(h)

	for y := 0; y < rows; y++ {
		line := v.top + y
		if line >= h.LineCount() {
			break
		}
		start, _ := h.Index(line, 0)
		text, _ := h.Line(line)
		v.drawLine(b, y, width, []rune(text), start, selected, carets)
	}

	if v.opts.ShowStatus && height > 1 {
		drawStatus(b, height-1, width, status)
	}

	line, col, _ := h.TextPos(h.Cursor().Idx)
	text, _ := h.Line(line)
	x := lineColumns([]rune(text), v.opts.TabWidth)[col] - v.left
	y := line - v.top
	if x >= 0 && x < width && y >= 0 && y < rows {
		b.ShowCursor(x, y)
	} else {
		b.HideCursor()
	}

	b.Show()
}

// drawLine draws one line at row y. start is the offset of the line's first
// character.
func (v *View) drawLine(b backend.Backend, y, width int, line []rune, start int, selected []cursor.Range, carets map[int]bool) {
	cols := lineColumns(line, v.opts.TabWidth)

	prevX := -1
	var prev backend.Cell
	for i, r := range line {
		offset := start + i
		attr := backend.AttrNone
		if inRegions(selected, offset) {
			attr |= backend.AttrReverse
		}
		if carets[offset] {
			attr |= backend.AttrUnderline
		}

		w := cols[i+1] - cols[i]
		x := cols[i] - v.left
		switch {
		case w == 0:
			if prevX >= 0 {
				prev.Combining = append(prev.Combining, r)
				b.SetCell(prevX, y, prev)
			}
			continue
		case x < 0 || x >= width:
			prevX = -1
			continue
		case r == '\t':
			for k := 0; k < w && x+k < width; k++ {
				b.SetCell(x+k, y, backend.Cell{Rune: ' ', Attr: attr})
			}
			prevX = -1
			continue
		}

		prev = backend.Cell{Rune: r, Attr: attr}
		prevX = x
		b.SetCell(x, y, prev)
	}

	// A caret past the last character still needs a visible cell.
	end := start + len(line)
	if carets[end] {
		if x := cols[len(line)] - v.left; x >= 0 && x < width {
			b.SetCell(x, y, backend.Cell{Rune: ' ', Attr: backend.AttrReverse})
		}
	}
}

// drawStatus draws text on row y, reversed and padded to the full width.
func drawStatus(b backend.Backend, y, width int, text string) {
	x := 0
	state := -1
	for len(text) > 0 && x < width {
		var cluster string
		var w int
		cluster, text, w, state = uniseg.FirstGraphemeClusterInString(text, state)
		if w == 0 {
			continue
		}
		runes := []rune(cluster)
		b.SetCell(x, y, backend.Cell{Rune: runes[0], Combining: runes[1:], Attr: backend.AttrReverse})
		x += w
	}
	for ; x < width; x++ {
		b.SetCell(x, y, backend.Cell{Rune: ' ', Attr: backend.AttrReverse})
	}
}

// selectedRegions returns the merged selections of every cursor.
func selectedRegions(h *textinput.Handler) []cursor.Range {
	var ranges []cursor.Range
	for _, c := range append([]cursor.Cursor{h.Cursor()}, h.Cursors()...) {
		if c.HasSelection() {
			ranges = append(ranges, c.Range())
		}
	}
	return cursor.MergeRanges(ranges)
}

// secondaryCarets returns the offsets of the secondary cursors.
func secondaryCarets(h *textinput.Handler) map[int]bool {
	carets := make(map[int]bool, h.CursorCount())
	for _, c := range h.Cursors() {
		carets[c.Idx] = true
	}
	return carets
}

func inRegions(regions []cursor.Range, offset int) bool {
	for _, r := range regions {
		if r.Contains(offset) {
			return true
		}
	}
	return false
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	return min(max(v, lo), hi)
}
