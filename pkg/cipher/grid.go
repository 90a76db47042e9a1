package cipher

import "strings"

// Grid is a rows x cols table of characters stored row-major.
type Grid struct {
	rows  int
	cols  int
	cells []byte
}

// NewGrid writes text into a grid with cols columns, left to right and top
// to bottom. Cells past the end of text hold Filler. An empty text gives a
// grid with no rows.
func NewGrid(text string, cols int) *Grid {
	g := newBlankGrid(rowsFor(len(text), cols), cols)
	copy(g.cells, text)
	return g
}

func newBlankGrid(rows, cols int) *Grid {
	if cols < 0 {
		cols = 0
	}
	g := &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]byte, rows*cols),
	}
	for i := range g.cells {
		g.cells[i] = Filler
	}
	return g
}

// setColumn writes s top to bottom into column col. Cells below len(s)
// keep Filler.
func (g *Grid) setColumn(col int, s string) {
	for r := 0; r < g.rows && r < len(s); r++ {
		g.cells[r*g.cols+col] = s[r]
	}
}

func (g *Grid) Rows() int { return g.rows }

func (g *Grid) Cols() int { return g.cols }

// Cell returns the character at row, col.
func (g *Grid) Cell(row, col int) byte {
	return g.cells[row*g.cols+col]
}

// Row returns row r read left to right.
func (g *Grid) Row(r int) string {
	return string(g.cells[r*g.cols : (r+1)*g.cols])
}

// Column returns column c read top to bottom.
func (g *Grid) Column(c int) string {
	var sb strings.Builder
	sb.Grow(g.rows)
	for r := 0; r < g.rows; r++ {
		sb.WriteByte(g.Cell(r, c))
	}
	return sb.String()
}

// RowStrings returns every row, top to bottom.
func (g *Grid) RowStrings() []string {
	out := make([]string, g.rows)
	for r := range out {
		out[r] = g.Row(r)
	}
	return out
}

// String returns all cells in row-major order.
func (g *Grid) String() string {
	return string(g.cells)
}
