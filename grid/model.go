package grid

import (
	"fmt"

	"github.com/gogpu/multiview"
)

// SelectionState qualifies the result of [Model.SelectedCellIndex].
type SelectionState int

const (
	// SelectionEmpty means nothing is selected.
	SelectionEmpty SelectionState = iota
	// SelectionSingle means every selected position belongs to one cell.
	SelectionSingle
	// SelectionAmbiguous means the selection touches several cells.
	SelectionAmbiguous
)

func (s SelectionState) String() string {
	switch s {
	case SelectionEmpty:
		return "empty"
	case SelectionSingle:
		return "single"
	case SelectionAmbiguous:
		return "ambiguous"
	default:
		return fmt.Sprintf("SelectionState(%d)", int(s))
	}
}

// Change identifies what a Model mutation touched.
type Change uint8

const (
	// ChangeCells is reported when the cell list or a cell's content changed.
	ChangeCells Change = 1 << iota
	// ChangeSelection is reported when the selection changed.
	ChangeSelection
)

// Has reports whether c includes flag.
func (c Change) Has(flag Change) bool { return c&flag != 0 }

// Model is the editable grid. It keeps the ownership map in sync with the
// cell list and notifies subscribers after every mutation.
//
// Model is not safe for concurrent use. Renderers take snapshots with
// [Model.Layout].
type Model struct {
	layout Layout
	own    Ownership
	sel    Selection

	subs   map[int]func(Change)
	nextID int
}

// NewModel returns a model holding a copy of l. The layout must tile.
func NewModel(l Layout) (*Model, error) {
	m := &Model{}
	if err := m.SetGrid(l.Rows, l.Cols, l.Cells); err != nil {
		return nil, err
	}
	return m, nil
}

// SetGrid replaces the whole grid, clears the selection and rebuilds the
// ownership map. Cells that do not tile rows x cols are rejected and the
// model is left unchanged.
func (m *Model) SetGrid(rows, cols int, cells []Cell) error {
	l := Layout{Rows: rows, Cols: cols, Cells: cells}.Clone()
	if err := l.Validate(); err != nil {
		return fmt.Errorf("set grid: %w", err)
	}
	m.layout = l
	m.sel = Selection{}
	m.rebuild()
	m.notify(ChangeCells | ChangeSelection)
	return nil
}

// Rows returns the number of grid rows.
func (m *Model) Rows() int { return m.layout.Rows }

// Cols returns the number of grid columns.
func (m *Model) Cols() int { return m.layout.Cols }

// Len returns the number of cells.
func (m *Model) Len() int { return len(m.layout.Cells) }

// Cell returns the cell at index i.
func (m *Model) Cell(i int) (Cell, bool) {
	if i < 0 || i >= len(m.layout.Cells) {
		return Cell{}, false
	}
	return m.layout.Cells[i], true
}

// Layout returns a snapshot of the grid.
func (m *Model) Layout() Layout { return m.layout.Clone() }

// OwnerAt returns the index of the cell covering (row, col), or NoOwner.
func (m *Model) OwnerAt(row, col int) int { return m.own.At(row, col) }

// Selection returns a copy of the current selection.
func (m *Model) Selection() Selection { return m.sel.Clone() }

// IsSelected reports whether p is selected.
func (m *Model) IsSelected(p Position) bool { return m.sel.Contains(p) }

// Select replaces the selection with p.
func (m *Model) Select(p Position) {
	m.sel = Selection{}
	m.addSelected(p)
	m.notify(ChangeSelection)
}

// Toggle adds p to the selection or removes it.
func (m *Model) Toggle(p Position) {
	if m.sel.Contains(p) {
		m.sel.Remove(p)
	} else {
		m.addSelected(p)
	}
	m.notify(ChangeSelection)
}

// SelectRect selects the rectangle between corners a and b. When additive
// is false the previous selection is dropped first.
func (m *Model) SelectRect(a, b Position, additive bool) {
	if !additive {
		m.sel = Selection{}
	}
	for p := range RectSelection(a, b).set {
		m.addSelected(p)
	}
	m.notify(ChangeSelection)
}

// ClearSelection drops every selected position.
func (m *Model) ClearSelection() {
	m.sel = Selection{}
	m.notify(ChangeSelection)
}

func (m *Model) addSelected(p Position) {
	if p.Row < 0 || p.Row >= m.layout.Rows || p.Col < 0 || p.Col >= m.layout.Cols {
		return
	}
	m.sel.Add(p)
}

// SelectedCellIndex returns the index of the single cell owning every
// selected position. The index is NoOwner unless the state is
// SelectionSingle.
func (m *Model) SelectedCellIndex() (int, SelectionState) {
	return singleOwner(m.own, m.sel)
}

// CanMerge reports whether the selection has at least two positions,
// forms a filled rectangle, and contains the whole span of every cell it
// touches.
func (m *Model) CanMerge() bool {
	return canMerge(m.layout.Rows, m.layout.Cols, m.layout.Cells, m.own, m.sel)
}

// Merge replaces the selected cells with one empty cell spanning the
// selection and clears the selection.
func (m *Model) Merge() error {
	if !m.CanMerge() {
		multiview.Logger().Warn("grid: merge rejected", "selected", m.sel.Len())
		return ErrInvalidMerge
	}
	m.layout.Cells = merge(m.layout.Cells, m.own, m.sel)
	m.sel = Selection{}
	m.rebuild()
	m.notify(ChangeCells | ChangeSelection)
	return nil
}

// CanReset reports whether the selection lies in a single cell, or is a
// filled rectangle containing the whole span of every cell it touches.
func (m *Model) CanReset() bool {
	return canReset(m.layout.Rows, m.layout.Cols, m.layout.Cells, m.own, m.sel)
}

// Reset undoes merges and content assignments under the selection.
//
// A selection inside one 1x1 cell clears that cell's content and label in
// place and keeps the selection. Otherwise every touched cell is removed
// and each of its positions becomes an empty 1x1 cell; the selection is
// cleared.
func (m *Model) Reset() error {
	if !m.CanReset() {
		multiview.Logger().Warn("grid: reset rejected", "selected", m.sel.Len())
		return ErrInvalidReset
	}
	cells, inPlace := reset(m.layout.Cells, m.own, m.sel)
	m.layout.Cells = cells
	m.rebuild()
	if inPlace {
		m.notify(ChangeCells)
		return nil
	}
	m.sel = Selection{}
	m.notify(ChangeCells | ChangeSelection)
	return nil
}

// Resize changes the grid dimensions. See [Layout.Resize]. Resizing to
// the current dimensions does nothing.
func (m *Model) Resize(rows, cols int) error {
	if rows < 1 || cols < 1 {
		return ErrInvalidDimensions
	}
	if rows == m.layout.Rows && cols == m.layout.Cols {
		return nil
	}
	m.layout.Cells = resize(m.layout.Cells, rows, cols)
	m.layout.Rows, m.layout.Cols = rows, cols
	m.sel = Selection{}
	m.rebuild()
	m.notify(ChangeCells | ChangeSelection)
	return nil
}

// SetContentForSelected assigns content and label to the single selected
// cell.
func (m *Model) SetContentForSelected(content Content, label LabelStyle) error {
	i, state := m.SelectedCellIndex()
	if state != SelectionSingle {
		return ErrNoSingleCell
	}
	m.layout.Cells[i].Content = content
	m.layout.Cells[i].Label = label
	m.notify(ChangeCells)
	return nil
}

// Subscribe registers fn to run after every mutation. The returned
// function removes the subscription.
func (m *Model) Subscribe(fn func(Change)) (unsubscribe func()) {
	if m.subs == nil {
		m.subs = make(map[int]func(Change))
	}
	id := m.nextID
	m.nextID++
	m.subs[id] = fn
	return func() { delete(m.subs, id) }
}

func (m *Model) rebuild() {
	m.own = m.layout.Ownership()
}

func (m *Model) notify(c Change) {
	for _, fn := range m.subs {
		fn(c)
	}
}
