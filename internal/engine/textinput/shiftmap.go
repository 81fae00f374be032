package textinput

import "unicode"

// usShiftMap holds the shifted symbol of each key on a US layout.
var usShiftMap = map[rune]rune{
	'`': '~', '1': '!', '2': '@', '3': '#', '4': '$', '5': '%',
	'6': '^', '7': '&', '8': '*', '9': '(', '0': ')', '-': '_',
	'=': '+', '[': '{', ']': '}', '\\': '|', ';': ':', '\'': '"',
	',': '<', '.': '>', '/': '?',
}

// DefaultShiftMap returns a copy of the US layout shift table.
func DefaultShiftMap() map[rune]rune {
	m := make(map[rune]rune, len(usShiftMap))
	for k, v := range usShiftMap {
		m[k] = v
	}
	return m
}

// shifted returns the text a key produces with Shift held or released.
// Without Shift the rune is taken as delivered by the host.
func (h *Handler) shifted(r rune, shift bool) string {
	if !shift {
		return string(r)
	}
	if s, ok := h.shiftMap[r]; ok {
		return string(s)
	}
	// One key yields one character, so full case mappings such as
	// U+00DF to "SS" do not apply.
	return string(unicode.ToUpper(r))
}
