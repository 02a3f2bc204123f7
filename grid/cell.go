package grid

import "fmt"

// Position is a zero-based grid coordinate.
type Position struct {
	Row, Col int
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Cell is a rectangular region of the grid with one content assignment.
// RowSpan and ColSpan are at least 1.
type Cell struct {
	Row, Col         int
	RowSpan, ColSpan int
	Content          Content
	Label            LabelStyle
}

// NewCell returns an empty 1x1 cell at (row, col) with the default label.
func NewCell(row, col int) Cell {
	return Cell{Row: row, Col: col, RowSpan: 1, ColSpan: 1, Label: DefaultLabel()}
}

// NewSpan returns an empty cell covering rowSpan x colSpan positions from
// (row, col).
func NewSpan(row, col, rowSpan, colSpan int) Cell {
	c := NewCell(row, col)
	c.RowSpan, c.ColSpan = rowSpan, colSpan
	return c
}

// WithContent returns a copy of c showing content.
func (c Cell) WithContent(content Content) Cell {
	c.Content = content
	return c
}

// Contains reports whether the span of c covers (row, col).
func (c Cell) Contains(row, col int) bool {
	return row >= c.Row && row < c.Row+c.RowSpan && col >= c.Col && col < c.Col+c.ColSpan
}

// Positions returns every position covered by c in row-major order.
func (c Cell) Positions() []Position {
	ps := make([]Position, 0, c.RowSpan*c.ColSpan)
	for r := c.Row; r < c.Row+c.RowSpan; r++ {
		for col := c.Col; col < c.Col+c.ColSpan; col++ {
			ps = append(ps, Position{Row: r, Col: col})
		}
	}
	return ps
}

// Merged reports whether c spans more than one position.
func (c Cell) Merged() bool {
	return c.RowSpan > 1 || c.ColSpan > 1
}

// LabelText returns the text to overlay on c, or "" when no label is drawn.
// Hidden labels and KindNone cells never show text.
func (c Cell) LabelText() string {
	if !c.Label.Visible || c.Content.Kind == KindNone {
		return ""
	}
	if c.Label.Text != "" {
		return c.Label.Text
	}
	return c.Content.DefaultLabelText()
}
