package editor

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/gogpu/multiview"
	"github.com/gogpu/multiview/geom"
	"github.com/gogpu/multiview/grid"
)

// Editor drives a grid.Model from terminal input.
type Editor struct {
	screen tcell.Screen
	model  *grid.Model

	cursor   grid.Position
	anchor   grid.Position
	dragging bool
	status   string
	quit     bool

	unsubscribe func()
	edits       int
}

// New creates an editor for model drawing on screen. The screen must be
// initialized.
func New(screen tcell.Screen, model *grid.Model) *Editor {
	e := &Editor{screen: screen, model: model}
	e.unsubscribe = model.Subscribe(func(c grid.Change) {
		if c.Has(grid.ChangeCells) {
			e.edits++
		}
	})
	return e
}

// Close detaches the editor from its model.
func (e *Editor) Close() {
	if e.unsubscribe != nil {
		e.unsubscribe()
		e.unsubscribe = nil
	}
}

// Cursor returns the keyboard cursor position.
func (e *Editor) Cursor() grid.Position { return e.cursor }

// Status returns the message shown in the status row.
func (e *Editor) Status() string { return e.status }

// Edits returns the number of edits that changed the cells.
func (e *Editor) Edits() int { return e.edits }

// Done reports whether the user asked to quit.
func (e *Editor) Done() bool { return e.quit }

// Run draws and handles events until the user quits.
func (e *Editor) Run() {
	e.screen.EnableMouse()
	for !e.quit {
		e.Draw()
		ev := e.screen.PollEvent()
		if ev == nil {
			return
		}
		e.HandleEvent(ev)
	}
}

// HandleEvent applies one terminal event.
func (e *Editor) HandleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		e.handleKey(ev)
	case *tcell.EventMouse:
		e.handleMouse(ev)
	case *tcell.EventResize:
		e.screen.Sync()
	}
}

func (e *Editor) handleKey(ev *tcell.EventKey) {
	shift := ev.Modifiers()&tcell.ModShift != 0
	switch ev.Key() {
	case tcell.KeyCtrlC:
		e.quit = true
	case tcell.KeyEscape:
		e.model.ClearSelection()
		e.status = ""
	case tcell.KeyUp:
		e.move(-1, 0, shift)
	case tcell.KeyDown:
		e.move(1, 0, shift)
	case tcell.KeyLeft:
		e.move(0, -1, shift)
	case tcell.KeyRight:
		e.move(0, 1, shift)
	case tcell.KeyRune:
		e.handleRune(ev.Rune())
	}
}

func (e *Editor) handleRune(r rune) {
	switch r {
	case 'q':
		e.quit = true
	case ' ':
		e.model.Toggle(e.cursor)
	case 'm':
		e.report("merged", e.model.Merge())
	case 's':
		e.report("split", e.model.Reset())
	case '[':
		e.resize(0, -1)
	case ']':
		e.resize(0, 1)
	case '{':
		e.resize(-1, 0)
	case '}':
		e.resize(1, 0)
	case 'p':
		e.assign(grid.Preview())
	case 'P':
		e.assign(grid.Program())
	case 'c':
		e.assign(grid.Canvas(""))
	case 'h':
		e.assign(grid.Placeholder(""))
	case 'n':
		e.assign(grid.None())
	case 'l':
		e.toggleLabel()
	}
}

// move steps the cursor, clamped to the grid. Without shift it selects
// the cursor position; with shift it extends a rectangle from the anchor.
func (e *Editor) move(dr, dc int, extend bool) {
	e.cursor.Row = min(max(e.cursor.Row+dr, 0), e.model.Rows()-1)
	e.cursor.Col = min(max(e.cursor.Col+dc, 0), e.model.Cols()-1)
	if extend {
		e.model.SelectRect(e.anchor, e.cursor, false)
		return
	}
	e.anchor = e.cursor
	e.model.Select(e.cursor)
}

func (e *Editor) resize(dr, dc int) {
	rows := min(max(e.model.Rows()+dr, MinDim), MaxDim)
	cols := min(max(e.model.Cols()+dc, MinDim), MaxDim)
	if err := e.model.Resize(rows, cols); err != nil {
		e.report("", err)
		return
	}
	e.cursor.Row = min(e.cursor.Row, rows-1)
	e.cursor.Col = min(e.cursor.Col, cols-1)
	e.anchor = e.cursor
	e.status = fmt.Sprintf("grid %dx%d", rows, cols)
}

func (e *Editor) assign(content grid.Content) {
	i, _ := e.model.SelectedCellIndex()
	label := grid.DefaultLabel()
	if cell, ok := e.model.Cell(i); ok {
		label = cell.Label
	}
	e.report("content "+content.Kind.String(), e.model.SetContentForSelected(content, label))
}

func (e *Editor) toggleLabel() {
	i, _ := e.model.SelectedCellIndex()
	cell, ok := e.model.Cell(i)
	if !ok {
		e.report("", grid.ErrNoSingleCell)
		return
	}
	label := cell.Label
	label.Visible = !label.Visible
	e.report("label toggled", e.model.SetContentForSelected(cell.Content, label))
}

// report sets the status row from the outcome of an edit.
func (e *Editor) report(ok string, err error) {
	switch {
	case err == nil:
		e.status = ok
	case errors.Is(err, grid.ErrInvalidMerge):
		e.status = "cannot merge: select a filled rectangle of whole cells"
	case errors.Is(err, grid.ErrInvalidReset):
		e.status = "cannot split: selection cuts through a merged cell"
	case errors.Is(err, grid.ErrNoSingleCell):
		e.status = "select exactly one cell first"
	default:
		e.status = err.Error()
	}
	if err != nil {
		multiview.Logger().Debug("editor: edit rejected", "err", err)
	}
}

// metrics places the grid in the screen area between the title and
// status rows.
func (e *Editor) metrics() (geom.Metrics, bool) {
	w, h := e.screen.Size()
	m, ok := geom.GridMetrics(e.model.Rows(), e.model.Cols(), w, h-2, terminalCellAspect)
	m.OffsetY++
	return m, ok
}

func (e *Editor) positionAt(x, y int) (grid.Position, bool) {
	m, ok := e.metrics()
	if !ok || !m.Bounds().Contains(x, y) {
		return grid.Position{}, false
	}
	return grid.PositionFromPixel(x-m.OffsetX, y-m.OffsetY, m.GridW, m.GridH, e.model.Rows(), e.model.Cols())
}

func (e *Editor) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	pressed := ev.Buttons()&tcell.Button1 != 0

	if !pressed {
		e.dragging = false
		return
	}
	p, ok := e.positionAt(x, y)
	if !ok {
		return
	}
	if e.dragging {
		if p != e.cursor {
			e.cursor = p
			e.model.SelectRect(e.anchor, p, false)
		}
		return
	}

	e.dragging = true
	e.cursor, e.anchor = p, p
	if ev.Modifiers()&tcell.ModCtrl != 0 {
		e.model.Toggle(p)
		return
	}
	e.model.Select(p)
}
