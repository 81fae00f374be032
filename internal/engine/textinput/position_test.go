package textinput

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextPos(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		idx       int
		line, col int
		ok        bool
	}{
		{"empty", "", 0, 0, 0, true},
		{"start", "ab\ncd", 0, 0, 0, true},
		{"end of first line", "ab\ncd", 2, 0, 2, true},
		{"start of second line", "ab\ncd", 3, 1, 0, true},
		{"end of content", "ab\ncd", 5, 1, 2, true},
		{"trailing newline", "a\nb\n", 4, 2, 0, true},
		{"blank lines", "\n\n", 1, 1, 0, true},
		{"multi-byte", "日本\n語", 4, 1, 1, true},
		{"past end", "ab", 3, 0, 0, false},
		{"negative", "ab", -1, 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newField(tt.content)
			line, col, ok := h.TextPos(tt.idx)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.line, line)
			assert.Equal(t, tt.col, col)
		})
	}
}

func TestIndex(t *testing.T) {
	h := newField("abc\nd\n")

	idx, ok := h.Index(0, 2)
	require.True(t, ok)
	assert.Equal(t, 2, idx)

	idx, ok = h.Index(1, 9)
	require.True(t, ok)
	assert.Equal(t, 5, idx, "column clamps to the line length")

	idx, ok = h.Index(2, 0)
	require.True(t, ok)
	assert.Equal(t, 6, idx)

	_, ok = h.Index(3, 0)
	assert.False(t, ok)

	_, ok = h.Index(-1, 0)
	assert.False(t, ok)
}

func TestPositionRoundTrip(t *testing.T) {
	contents := []string{
		"",
		"\n",
		"abc",
		"a\nb\n",
		"\n\nx\n\n",
		"h\u00e9llo\n\nw\u00f6rld",
		"日本語\nテキスト",
	}
	for _, content := range contents {
		h := newField(content)
		n := utf8.RuneCountInString(content)
		for i := 0; i <= n; i++ {
			line, col, ok := h.TextPos(i)
			require.True(t, ok, "content %q offset %d", content, i)
			got, ok := h.Index(line, col)
			require.True(t, ok, "content %q offset %d", content, i)
			assert.Equal(t, i, got, "content %q offset %d", content, i)
		}
	}
}

func TestLines(t *testing.T) {
	h := newField("ab\n\ncde")
	assert.Equal(t, 3, h.LineCount())
	assert.Equal(t, 3, h.LineLen(2))
	assert.Equal(t, 0, h.LineLen(1))
	assert.Equal(t, 0, h.LineLen(7))

	line, ok := h.Line(2)
	require.True(t, ok)
	assert.Equal(t, "cde", line)

	_, ok = h.Line(3)
	assert.False(t, ok)

	assert.Equal(t, 1, newField("").LineCount())
}
