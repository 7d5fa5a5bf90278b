package pkg

import "unicode"

// SymbolCount is the size of the message alphabet: space plus A to Z
const SymbolCount = 27

// SymbolIndex maps a message character to a segment index.
// Letters map to 1..26 regardless of case, everything else to 0.
// An index that does not exist for the given segment count is clamped to 0.
func SymbolIndex(r rune, count uint32) int {
	r = unicode.ToUpper(r)
	index := 0
	if r >= 'A' && r <= 'Z' {
		index = int(r-'A') + 1
	}
	if count == 0 || uint32(index) > count-1 {
		return 0
	}
	return index
}

// MessageIndices maps every character of message to its segment index, in order
func MessageIndices(message string, count uint32) []int {
	indices := make([]int, 0, len(message))
	for _, r := range message {
		indices = append(indices, SymbolIndex(r, count))
	}
	return indices
}
