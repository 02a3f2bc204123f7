package grid

import "slices"

// NoOwner is returned by ownership queries for positions no cell covers.
const NoOwner = -1

// Ownership maps every grid position to the index of the cell covering it.
// It is derived from a cell list and rebuilt on every structural change.
type Ownership struct {
	rows, cols int
	owner      []int
}

// BuildOwnership computes the ownership map for cells on a rows x cols
// grid. Parts of spans outside the grid are ignored. When spans overlap the
// later cell wins.
func BuildOwnership(rows, cols int, cells []Cell) Ownership {
	rows, cols = max(rows, 0), max(cols, 0)
	o := Ownership{rows: rows, cols: cols, owner: make([]int, rows*cols)}
	for i := range o.owner {
		o.owner[i] = NoOwner
	}
	for i, c := range cells {
		for r := max(c.Row, 0); r < c.Row+c.RowSpan && r < rows; r++ {
			for col := max(c.Col, 0); col < c.Col+c.ColSpan && col < cols; col++ {
				o.owner[r*cols+col] = i
			}
		}
	}
	return o
}

// At returns the index of the cell covering (row, col), or NoOwner when
// the position is outside the grid or uncovered.
func (o Ownership) At(row, col int) int {
	if row < 0 || row >= o.rows || col < 0 || col >= o.cols {
		return NoOwner
	}
	return o.owner[row*o.cols+col]
}

// Rows returns the number of rows the map was built for.
func (o Ownership) Rows() int { return o.rows }

// Cols returns the number of columns the map was built for.
func (o Ownership) Cols() int { return o.cols }

// touched returns the distinct owners of the selected positions in
// ascending order, skipping NoOwner.
func (o Ownership) touched(sel Selection) []int {
	seen := make(map[int]struct{})
	var idx []int
	for p := range sel.set {
		i := o.At(p.Row, p.Col)
		if i == NoOwner {
			continue
		}
		if _, ok := seen[i]; ok {
			continue
		}
		seen[i] = struct{}{}
		idx = append(idx, i)
	}
	slices.Sort(idx)
	return idx
}
