package renderer

import "github.com/rivo/uniseg"

// runeWidth returns the display width of r placed at column col. Tabs
// expand to the next tab stop; combining marks and control characters are
// zero width.
func runeWidth(r rune, col, tabWidth int) int {
	if r == '\t' {
		return tabWidth - col%tabWidth
	}
	return uniseg.StringWidth(string(r))
}

// lineColumns returns the starting screen column of each rune of line,
// followed by the total width of the line.
func lineColumns(line []rune, tabWidth int) []int {
	cols := make([]int, len(line)+1)
	col := 0
	for i, r := range line {
		cols[i] = col
		col += runeWidth(r, col, tabWidth)
	}
	cols[len(line)] = col
	return cols
}

// runeAtColumn returns the index of the rune covering screen column x, or
// len(line) when x is past the end of the line.
func runeAtColumn(cols []int, x int) int {
	n := len(cols) - 1
	if x >= cols[n] {
		return n
	}
	for i := n - 1; i >= 0; i-- {
		if cols[i] <= x {
			return i
		}
	}
	return 0
}
