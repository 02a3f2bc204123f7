package geom

// DefaultCellAspect is the 16:9 cell shape used by multiview windows.
const DefaultCellAspect = 16.0 / 9.0

// GridMargin is the number of pixels kept free on each window edge so the
// outer separator lines stay visible.
const GridMargin = 1

// Metrics is the pixel placement of a grid inside a window.
// GridW is always CellW*cols and GridH is always CellH*rows.
type Metrics struct {
	GridW, GridH     int
	OffsetX, OffsetY int
	CellW, CellH     int
}

// Bounds returns the rectangle covered by the grid.
func (m Metrics) Bounds() Rect {
	return Rect{X: m.OffsetX, Y: m.OffsetY, W: m.GridW, H: m.GridH}
}

// Cell returns the unbordered rectangle of the span starting at (row, col).
func (m Metrics) Cell(row, col, rowSpan, colSpan int) Rect {
	return Rect{
		X: m.OffsetX + col*m.CellW,
		Y: m.OffsetY + row*m.CellH,
		W: colSpan * m.CellW,
		H: rowSpan * m.CellH,
	}
}

// GridMetrics computes an integer cell size for a rows x cols grid inside a
// winW x winH window so that every cell has approximately cellAspect
// (width/height) and the grid is an exact multiple of the cell size.
//
// The grid is fitted into the window minus GridMargin on each side, then
// centered in the full window. A non-positive cellAspect selects
// DefaultCellAspect. ok is false when the grid or window is degenerate or
// too small to give every cell at least one pixel.
func GridMetrics(rows, cols, winW, winH int, cellAspect float64) (m Metrics, ok bool) {
	if rows <= 0 || cols <= 0 {
		return Metrics{}, false
	}
	if cellAspect <= 0 {
		cellAspect = DefaultCellAspect
	}

	availW := winW - 2*GridMargin
	availH := winH - 2*GridMargin
	if availW <= 0 || availH <= 0 {
		return Metrics{}, false
	}

	gridAspect := cellAspect * float64(cols) / float64(rows)
	availAspect := float64(availW) / float64(availH)

	var gridW, gridH int
	if availAspect > gridAspect {
		gridH = availH
		gridW = int(float64(gridH) * gridAspect)
	} else {
		gridW = availW
		gridH = int(float64(gridW) / gridAspect)
	}

	m.CellW = gridW / cols
	m.CellH = gridH / rows
	if m.CellW <= 0 || m.CellH <= 0 {
		return Metrics{}, false
	}

	m.GridW = m.CellW * cols
	m.GridH = m.CellH * rows
	m.OffsetX = (winW - m.GridW) / 2
	m.OffsetY = (winH - m.GridH) / 2
	return m, true
}
