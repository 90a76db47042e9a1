package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/birdayz/transpose/pkg/cipher"
)

// WriteGrid draws grid as a bordered table. The header row holds the key
// digit of every column, each data row starts with its 1-based number.
//
//	  +---+---+
//	  | 2 | 1 |
//	  +---+---+
//	1 | A | B |
//	  +---+---+
func WriteGrid(w io.Writer, key cipher.Key, grid *cipher.Grid) error {
	order := key.Order()
	cell := 1
	for _, d := range order {
		cell = max(cell, len(strconv.Itoa(d)))
	}
	rowNumWidth := len(strconv.Itoa(grid.Rows()))
	pad := strings.Repeat(" ", rowNumWidth+1)

	var border strings.Builder
	border.WriteByte('+')
	for range order {
		border.WriteString(strings.Repeat("-", cell+2))
		border.WriteByte('+')
	}
	line := pad + border.String() + "\n"

	var sb strings.Builder
	sb.WriteString(line)
	sb.WriteString(pad)
	sb.WriteByte('|')
	for _, d := range order {
		fmt.Fprintf(&sb, " %*d |", cell, d)
	}
	sb.WriteByte('\n')
	sb.WriteString(line)

	for r := 0; r < grid.Rows(); r++ {
		fmt.Fprintf(&sb, "%*d |", rowNumWidth, r+1)
		for c := 0; c < grid.Cols(); c++ {
			fmt.Fprintf(&sb, " %*c |", cell, grid.Cell(r, c))
		}
		sb.WriteByte('\n')
		sb.WriteString(line)
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// FormatKey prints key digits the way they are listed in reports,
// e.g. "[3, 1, 4, 2, 5]".
func FormatKey(key cipher.Key) string {
	order := key.Order()
	parts := make([]string, len(order))
	for i, d := range order {
		parts[i] = strconv.Itoa(d)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
