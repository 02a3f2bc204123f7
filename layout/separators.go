package layout

import (
	"image/color"

	"github.com/gogpu/multiview/geom"
	"github.com/gogpu/multiview/grid"
)

// Segment is a horizontal or vertical line from (X0, Y0) to (X1, Y1) in
// window pixels.
type Segment struct {
	X0, Y0, X1, Y1 int
}

// Vertical reports whether s runs along the y axis.
func (s Segment) Vertical() bool { return s.X0 == s.X1 }

// Len returns the segment length in pixels.
func (s Segment) Len() int {
	return s.X1 - s.X0 + s.Y1 - s.Y0
}

// Painter draws the window chrome.
type Painter interface {
	// Clear fills the whole window with c.
	Clear(c color.Color)
	// DrawLine strokes s with color c and the given width in pixels.
	DrawLine(s Segment, c color.Color, width int)
}

// Separators returns the grid lines to draw for a layout placed with m.
//
// The four outer edges are always drawn at full length. An interior line
// is drawn only along the runs where the positions on either side have
// different owners; consecutive such positions form one segment.
func Separators(own grid.Ownership, m geom.Metrics) []Segment {
	rows, cols := own.Rows(), own.Cols()
	if rows <= 0 || cols <= 0 || m.CellW <= 0 || m.CellH <= 0 {
		return nil
	}

	var segs []Segment

	for col := 0; col <= cols; col++ {
		x := m.OffsetX + col*m.CellW
		if col == 0 || col == cols {
			segs = append(segs, Segment{X0: x, Y0: m.OffsetY, X1: x, Y1: m.OffsetY + m.GridH})
			continue
		}
		start := -1
		for row := 0; row <= rows; row++ {
			split := row < rows && own.At(row, col-1) != own.At(row, col)
			switch {
			case split && start < 0:
				start = row
			case !split && start >= 0:
				segs = append(segs, Segment{
					X0: x, Y0: m.OffsetY + start*m.CellH,
					X1: x, Y1: m.OffsetY + row*m.CellH,
				})
				start = -1
			}
		}
	}

	for row := 0; row <= rows; row++ {
		y := m.OffsetY + row*m.CellH
		if row == 0 || row == rows {
			segs = append(segs, Segment{X0: m.OffsetX, Y0: y, X1: m.OffsetX + m.GridW, Y1: y})
			continue
		}
		start := -1
		for col := 0; col <= cols; col++ {
			split := col < cols && own.At(row-1, col) != own.At(row, col)
			switch {
			case split && start < 0:
				start = col
			case !split && start >= 0:
				segs = append(segs, Segment{
					X0: m.OffsetX + start*m.CellW, Y0: y,
					X1: m.OffsetX + col*m.CellW, Y1: y,
				})
				start = -1
			}
		}
	}
	return segs
}

// CellRect returns the surface rectangle of c: its span in the grid inset
// by border on every side, never smaller than 1x1.
func CellRect(m geom.Metrics, c grid.Cell, border int) geom.Rect {
	r := m.Cell(c.Row, c.Col, c.RowSpan, c.ColSpan)
	return geom.Rect{
		X: r.X + border,
		Y: r.Y + border,
		W: max(r.W-2*border, 1),
		H: max(r.H-2*border, 1),
	}
}
