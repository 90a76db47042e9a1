package cipher

import "strings"

// Filler pads the cells of the last grid row that the text does not reach.
const Filler = 'X'

// Clean drops every byte that is not an uppercase ASCII letter.
func Clean(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if c := s[i]; c >= 'A' && c <= 'Z' {
			sb.WriteByte(c)
		}
	}
	return sb.String()
}

// TrimPadding removes the trailing run of Filler characters. A message that
// genuinely ends in X loses those letters too.
func TrimPadding(s string) string {
	return strings.TrimRight(s, string(Filler))
}

func rowsFor(length, cols int) int {
	if cols <= 0 {
		return 0
	}
	return (length + cols - 1) / cols
}
