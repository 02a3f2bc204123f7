package grid

import "slices"

// Layout is a rows x cols grid and the ordered cells tiling it.
// Order matters only for ownership of overlapping spans, which a valid
// layout never has.
type Layout struct {
	Rows, Cols int
	Cells      []Cell
}

// NewLayout returns a rows x cols layout of empty 1x1 cells.
func NewLayout(rows, cols int) (Layout, error) {
	if rows < 1 || cols < 1 {
		return Layout{}, ErrInvalidDimensions
	}
	l := Layout{Rows: rows, Cols: cols, Cells: make([]Cell, 0, rows*cols)}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			l.Cells = append(l.Cells, NewCell(r, c))
		}
	}
	return l, nil
}

// Clone returns a copy of l that shares no memory with it.
func (l Layout) Clone() Layout {
	return Layout{Rows: l.Rows, Cols: l.Cols, Cells: slices.Clone(l.Cells)}
}

// Ownership builds the ownership map of l.
func (l Layout) Ownership() Ownership {
	return BuildOwnership(l.Rows, l.Cols, l.Cells)
}

// Validate checks that the cells tile the grid exactly. It returns
// ErrInvalidDimensions or the first *TilingError found.
func (l Layout) Validate() error {
	if l.Rows < 1 || l.Cols < 1 {
		return ErrInvalidDimensions
	}
	count := make([]int, l.Rows*l.Cols)
	for i, c := range l.Cells {
		if c.RowSpan < 1 || c.ColSpan < 1 {
			return &TilingError{Problem: TilingBadSpan, Row: c.Row, Col: c.Col, Cell: i}
		}
		if c.Row < 0 || c.Col < 0 || c.Row+c.RowSpan > l.Rows || c.Col+c.ColSpan > l.Cols {
			return &TilingError{Problem: TilingOutOfBounds, Row: c.Row, Col: c.Col, Cell: i}
		}
		for _, p := range c.Positions() {
			k := p.Row*l.Cols + p.Col
			if count[k] > 0 {
				return &TilingError{Problem: TilingOverlap, Row: p.Row, Col: p.Col, Cell: i}
			}
			count[k]++
		}
	}
	for k, n := range count {
		if n == 0 {
			return &TilingError{Problem: TilingGap, Row: k / l.Cols, Col: k % l.Cols, Cell: NoOwner}
		}
	}
	return nil
}

// CanMerge reports whether sel can be merged into one cell. See
// [Model.CanMerge].
func (l Layout) CanMerge(sel Selection) bool {
	return canMerge(l.Rows, l.Cols, l.Cells, l.Ownership(), sel)
}

// Merge replaces the cells under sel with a single empty cell spanning it.
func (l *Layout) Merge(sel Selection) error {
	own := l.Ownership()
	if !canMerge(l.Rows, l.Cols, l.Cells, own, sel) {
		return ErrInvalidMerge
	}
	l.Cells = merge(l.Cells, own, sel)
	return nil
}

// CanReset reports whether sel can be reset. See [Model.CanReset].
func (l Layout) CanReset(sel Selection) bool {
	return canReset(l.Rows, l.Cols, l.Cells, l.Ownership(), sel)
}

// Reset clears or splits the cells under sel. See [Model.Reset].
func (l *Layout) Reset(sel Selection) error {
	own := l.Ownership()
	if !canReset(l.Rows, l.Cols, l.Cells, own, sel) {
		return ErrInvalidReset
	}
	l.Cells, _ = reset(l.Cells, own, sel)
	return nil
}

// Resize changes the grid to rows x cols. Cells whose origin stays inside
// the grid are kept with their spans clamped; the rest are dropped, and
// every uncovered position receives a fresh 1x1 cell.
func (l *Layout) Resize(rows, cols int) error {
	if rows < 1 || cols < 1 {
		return ErrInvalidDimensions
	}
	l.Cells = resize(l.Cells, rows, cols)
	l.Rows, l.Cols = rows, cols
	return nil
}

func inBounds(rows, cols int, sel Selection) bool {
	for p := range sel.set {
		if p.Row < 0 || p.Row >= rows || p.Col < 0 || p.Col >= cols {
			return false
		}
	}
	return true
}

// coversWholeCells reports whether sel is a filled rectangle inside the
// grid that contains the full span of every cell it touches.
func coversWholeCells(rows, cols int, cells []Cell, own Ownership, sel Selection) bool {
	if !inBounds(rows, cols, sel) || !sel.IsFilledRect() {
		return false
	}
	for _, i := range own.touched(sel) {
		for _, p := range cells[i].Positions() {
			if !sel.Contains(p) {
				return false
			}
		}
	}
	return true
}

func canMerge(rows, cols int, cells []Cell, own Ownership, sel Selection) bool {
	if sel.Len() < 2 {
		return false
	}
	return coversWholeCells(rows, cols, cells, own, sel)
}

func canReset(rows, cols int, cells []Cell, own Ownership, sel Selection) bool {
	if sel.Empty() || !inBounds(rows, cols, sel) {
		return false
	}
	if _, state := singleOwner(own, sel); state == SelectionSingle {
		return true
	}
	return coversWholeCells(rows, cols, cells, own, sel)
}

// singleOwner returns the cell index shared by every selected position.
func singleOwner(own Ownership, sel Selection) (int, SelectionState) {
	if sel.Empty() {
		return NoOwner, SelectionEmpty
	}
	idx := NoOwner
	first := true
	for p := range sel.set {
		i := own.At(p.Row, p.Col)
		if first {
			idx, first = i, false
			continue
		}
		if i != idx {
			return NoOwner, SelectionAmbiguous
		}
	}
	if idx == NoOwner {
		return NoOwner, SelectionAmbiguous
	}
	return idx, SelectionSingle
}

func merge(cells []Cell, own Ownership, sel Selection) []Cell {
	top, left, rows, cols, _ := sel.Bounds()
	out := removeCells(cells, own.touched(sel))
	return append(out, NewSpan(top, left, rows, cols))
}

// reset returns the new cell list. inPlace is true when a single 1x1 cell
// was cleared without changing the structure.
func reset(cells []Cell, own Ownership, sel Selection) (out []Cell, inPlace bool) {
	if i, state := singleOwner(own, sel); state == SelectionSingle && !cells[i].Merged() {
		out = slices.Clone(cells)
		out[i] = NewCell(cells[i].Row, cells[i].Col)
		return out, true
	}

	touched := own.touched(sel)
	region := sel.Clone()
	for _, i := range touched {
		for _, p := range cells[i].Positions() {
			region.Add(p)
		}
	}

	out = removeCells(cells, touched)
	for _, p := range region.Positions() {
		out = append(out, NewCell(p.Row, p.Col))
	}
	return out, false
}

func resize(cells []Cell, rows, cols int) []Cell {
	occupied := make([]bool, rows*cols)
	out := make([]Cell, 0, rows*cols)
	for _, c := range cells {
		if c.Row < 0 || c.Col < 0 || c.Row >= rows || c.Col >= cols {
			continue
		}
		c.RowSpan = min(c.RowSpan, rows-c.Row)
		c.ColSpan = min(c.ColSpan, cols-c.Col)
		out = append(out, c)
		for _, p := range c.Positions() {
			occupied[p.Row*cols+p.Col] = true
		}
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if !occupied[r*cols+c] {
				out = append(out, NewCell(r, c))
			}
		}
	}
	return out
}

// removeCells returns cells without the given ascending indices,
// preserving the order of the rest.
func removeCells(cells []Cell, idx []int) []Cell {
	out := make([]Cell, 0, len(cells))
	j := 0
	for i, c := range cells {
		if j < len(idx) && idx[j] == i {
			j++
			continue
		}
		out = append(out, c)
	}
	return out
}
