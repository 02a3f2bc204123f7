package grid

import (
	"errors"
	"testing"
)

func newModel(t *testing.T, rows, cols int) *Model {
	t.Helper()
	m, err := NewModel(mustLayout(t, rows, cols))
	if err != nil {
		t.Fatalf("NewModel: %v", err)
	}
	return m
}

func TestNewModelRejectsBadTiling(t *testing.T) {
	_, err := NewModel(Layout{Rows: 2, Cols: 2, Cells: []Cell{NewCell(0, 0)}})
	if !errors.Is(err, ErrInvalidTiling) {
		t.Fatalf("NewModel error = %v, want ErrInvalidTiling", err)
	}
}

func TestModelSetGrid(t *testing.T) {
	m := newModel(t, 2, 2)
	m.Select(pos(0, 0))

	l := mustLayout(t, 3, 1)
	if err := m.SetGrid(l.Rows, l.Cols, l.Cells); err != nil {
		t.Fatalf("SetGrid: %v", err)
	}
	if m.Rows() != 3 || m.Cols() != 1 || m.Len() != 3 {
		t.Errorf("dims = %dx%d len %d", m.Rows(), m.Cols(), m.Len())
	}
	if !m.Selection().Empty() {
		t.Error("SetGrid kept the selection")
	}
	if m.OwnerAt(2, 0) != 2 {
		t.Errorf("OwnerAt(2,0) = %d, want 2", m.OwnerAt(2, 0))
	}

	// Caller mutations after SetGrid must not leak in.
	l.Cells[0].Content = Program()
	if c, _ := m.Cell(0); c.Content.Kind != KindNone {
		t.Error("SetGrid kept a reference to the caller's cells")
	}

	if err := m.SetGrid(2, 2, []Cell{NewSpan(0, 0, 2, 2), NewCell(0, 0)}); err == nil {
		t.Fatal("SetGrid accepted overlapping cells")
	}
	if m.Rows() != 3 {
		t.Error("rejected SetGrid mutated the model")
	}
}

func TestModelSelectedCellIndex(t *testing.T) {
	m := newModel(t, 3, 3)
	m.SelectRect(pos(0, 0), pos(1, 1), false)
	if err := m.Merge(); err != nil {
		t.Fatalf("Merge: %v", err)
	}
	mergedIdx := m.OwnerAt(0, 0)

	if idx, state := m.SelectedCellIndex(); state != SelectionEmpty || idx != NoOwner {
		t.Errorf("after merge: (%d, %v), want (NoOwner, empty)", idx, state)
	}

	m.Select(pos(1, 1))
	m.Toggle(pos(0, 1))
	if idx, state := m.SelectedCellIndex(); state != SelectionSingle || idx != mergedIdx {
		t.Errorf("inside merged cell: (%d, %v), want (%d, single)", idx, state, mergedIdx)
	}

	m.Toggle(pos(2, 2))
	if idx, state := m.SelectedCellIndex(); state != SelectionAmbiguous || idx != NoOwner {
		t.Errorf("across cells: (%d, %v), want (NoOwner, ambiguous)", idx, state)
	}

	m.Toggle(pos(2, 2))
	if _, state := m.SelectedCellIndex(); state != SelectionSingle {
		t.Errorf("after toggling off: %v, want single", state)
	}

	m.ClearSelection()
	if _, state := m.SelectedCellIndex(); state != SelectionEmpty {
		t.Errorf("after clear: %v, want empty", state)
	}
}

func TestModelSelectIgnoresOutOfBounds(t *testing.T) {
	m := newModel(t, 2, 2)
	m.Select(pos(5, 5))
	m.SelectRect(pos(1, 1), pos(3, 3), true)
	if got := m.Selection().Positions(); len(got) != 1 || got[0] != pos(1, 1) {
		t.Errorf("selection = %v, want [(1,1)]", got)
	}
	if !m.IsSelected(pos(1, 1)) {
		t.Error("IsSelected(1,1) = false")
	}
}

func TestModelMergeRejected(t *testing.T) {
	m := newModel(t, 3, 3)
	m.Select(pos(0, 0))
	m.Toggle(pos(1, 0))
	m.Toggle(pos(1, 1))
	if m.CanMerge() {
		t.Fatal("CanMerge true for an L-shaped selection")
	}
	before := m.Layout()
	if err := m.Merge(); !errors.Is(err, ErrInvalidMerge) {
		t.Fatalf("Merge error = %v, want ErrInvalidMerge", err)
	}
	after := m.Layout()
	for i := range before.Cells {
		if before.Cells[i] != after.Cells[i] {
			t.Fatal("rejected merge mutated cells")
		}
	}
	if m.Selection().Len() != 3 {
		t.Error("rejected merge dropped the selection")
	}
}

func TestModelReset(t *testing.T) {
	m := newModel(t, 2, 3)
	m.SelectRect(pos(0, 0), pos(1, 1), false)
	if err := m.Merge(); err != nil {
		t.Fatal(err)
	}

	// Fast path keeps the selection.
	m.Select(pos(0, 2))
	if err := m.SetContentForSelected(Scene("Wide"), DefaultLabel()); err != nil {
		t.Fatal(err)
	}
	if err := m.Reset(); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if c, _ := m.Cell(m.OwnerAt(0, 2)); !c.Content.IsNone() {
		t.Errorf("content after reset = %v", c.Content)
	}
	if !m.IsSelected(pos(0, 2)) {
		t.Error("in-place reset cleared the selection")
	}

	// Clicking any part of a merged cell and resetting splits it.
	m.Select(pos(1, 1))
	if !m.CanReset() {
		t.Fatal("CanReset false inside a merged cell")
	}
	if err := m.Reset(); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if m.Len() != 6 {
		t.Errorf("Len() = %d, want 6", m.Len())
	}
	assertTiles(t, m.Layout())
	if !m.Selection().Empty() {
		t.Error("split reset kept the selection")
	}

	if err := m.Reset(); !errors.Is(err, ErrInvalidReset) {
		t.Errorf("Reset with empty selection = %v, want ErrInvalidReset", err)
	}
}

func TestModelResize(t *testing.T) {
	m := newModel(t, 4, 4)
	var changes []Change
	m.Subscribe(func(c Change) { changes = append(changes, c) })

	if err := m.Resize(4, 4); err != nil {
		t.Fatal(err)
	}
	if len(changes) != 0 {
		t.Errorf("same-size resize notified %v", changes)
	}

	m.Select(pos(3, 3))
	if err := m.Resize(2, 2); err != nil {
		t.Fatal(err)
	}
	if m.Len() != 4 || !m.Selection().Empty() {
		t.Errorf("Len %d selection %d after shrink", m.Len(), m.Selection().Len())
	}
	assertTiles(t, m.Layout())

	if err := m.Resize(0, 1); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("Resize(0,1) = %v", err)
	}
}

func TestModelSetContentForSelected(t *testing.T) {
	m := newModel(t, 2, 2)
	label := DefaultLabel()
	label.Text = "Cam A"

	if err := m.SetContentForSelected(Source("cam-a"), label); !errors.Is(err, ErrNoSingleCell) {
		t.Fatalf("empty selection error = %v, want ErrNoSingleCell", err)
	}
	m.SelectRect(pos(0, 0), pos(0, 1), false)
	if err := m.SetContentForSelected(Source("cam-a"), label); !errors.Is(err, ErrNoSingleCell) {
		t.Fatalf("ambiguous selection error = %v, want ErrNoSingleCell", err)
	}

	m.Select(pos(1, 0))
	if err := m.SetContentForSelected(Source("cam-a"), label); err != nil {
		t.Fatal(err)
	}
	c, _ := m.Cell(m.OwnerAt(1, 0))
	if c.Content != Source("cam-a") || c.LabelText() != "Cam A" {
		t.Errorf("cell = %+v", c)
	}
}

func TestModelSubscribe(t *testing.T) {
	m := newModel(t, 2, 2)
	var got []Change
	unsubscribe := m.Subscribe(func(c Change) { got = append(got, c) })

	m.Select(pos(0, 0))
	m.Toggle(pos(0, 1))
	if err := m.Merge(); err != nil {
		t.Fatal(err)
	}
	want := []Change{ChangeSelection, ChangeSelection, ChangeCells | ChangeSelection}
	if len(got) != len(want) {
		t.Fatalf("changes = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("change %d = %v, want %v", i, got[i], want[i])
		}
	}
	if !got[2].Has(ChangeCells) || got[0].Has(ChangeCells) {
		t.Error("Has mismatch")
	}

	unsubscribe()
	m.ClearSelection()
	if len(got) != len(want) {
		t.Error("notified after unsubscribe")
	}
}

func TestModelCellOutOfRange(t *testing.T) {
	m := newModel(t, 1, 1)
	if _, ok := m.Cell(1); ok {
		t.Error("Cell(1) ok on a 1-cell model")
	}
	if _, ok := m.Cell(-1); ok {
		t.Error("Cell(-1) ok")
	}
	if m.OwnerAt(0, 1) != NoOwner {
		t.Error("OwnerAt outside grid has an owner")
	}
}
