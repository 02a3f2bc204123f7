package editor

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/gogpu/multiview/geom"
	"github.com/gogpu/multiview/grid"
	"github.com/gogpu/multiview/layout"
)

var (
	styleBase     = tcell.StyleDefault
	styleLine     = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleSelected = tcell.StyleDefault.Background(tcell.ColorNavy).Foreground(tcell.ColorWhite)
	styleCursor   = tcell.StyleDefault.Reverse(true)
	styleDim      = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleStatus   = tcell.StyleDefault.Foreground(tcell.ColorYellow)
)

// Draw renders the editor and shows the screen.
func (e *Editor) Draw() {
	e.screen.Clear()
	w, h := e.screen.Size()
	putString(e.screen, 0, 0, w, Help, styleDim)

	if m, ok := e.metrics(); ok {
		e.drawGrid(m)
	} else {
		putString(e.screen, 0, 1, w, "window too small", styleStatus)
	}

	_, state := e.model.SelectedCellIndex()
	status := fmt.Sprintf("%dx%d  selected %d (%s)  edits %d",
		e.model.Rows(), e.model.Cols(), e.model.Selection().Len(), state, e.edits)
	if e.status != "" {
		status += "  " + e.status
	}
	putString(e.screen, 0, h-1, w, status, styleStatus)

	e.screen.Show()
}

func (e *Editor) drawGrid(m geom.Metrics) {
	l := e.model.Layout()

	for r := range l.Rows {
		for c := range l.Cols {
			p := grid.Position{Row: r, Col: c}
			style := styleBase
			switch {
			case p == e.cursor:
				style = styleCursor
			case e.model.IsSelected(p):
				style = styleSelected
			}
			fill(e.screen, m.Cell(r, c, 1, 1), style)
		}
	}

	for _, s := range layout.Separators(l.Ownership(), m) {
		drawSegment(e.screen, s)
	}

	for _, cell := range l.Cells {
		r := m.Cell(cell.Row, cell.Col, cell.RowSpan, cell.ColSpan)
		text := cell.LabelText()
		if text == "" && !cell.Content.IsNone() {
			text = cell.Content.String()
		}
		if text == "" {
			continue
		}
		inner := geom.Rect{X: r.X + 1, Y: r.Y + 1, W: r.W - 1, H: r.H - 1}
		if inner.W <= 0 || inner.H <= 0 {
			continue
		}
		runes := []rune(text)
		if len(runes) > inner.W {
			runes = runes[:inner.W]
		}
		x := inner.X + (inner.W-len(runes))/2
		y := inner.Y + (inner.H-1)/2
		for i, ch := range runes {
			_, _, st, _ := e.screen.GetContent(x+i, y)
			e.screen.SetContent(x+i, y, ch, nil, st)
		}
	}
}

// fill paints the interior of r, leaving its top and left edges to the
// separators.
func fill(s tcell.Screen, r geom.Rect, style tcell.Style) {
	for y := r.Y + 1; y < r.Bottom(); y++ {
		for x := r.X + 1; x < r.Right(); x++ {
			s.SetContent(x, y, ' ', nil, style)
		}
	}
}

func drawSegment(s tcell.Screen, seg layout.Segment) {
	if seg.Vertical() {
		for y := seg.Y0; y <= seg.Y1; y++ {
			joinLine(s, seg.X0, y, '│')
		}
		return
	}
	for x := seg.X0; x <= seg.X1; x++ {
		joinLine(s, x, seg.Y0, '─')
	}
}

// joinLine draws ch at (x, y), turning crossings into a junction.
func joinLine(s tcell.Screen, x, y int, ch rune) {
	prev, _, _, _ := s.GetContent(x, y)
	if (prev == '│' && ch == '─') || (prev == '─' && ch == '│') || prev == '┼' {
		ch = '┼'
	}
	s.SetContent(x, y, ch, nil, styleLine)
}

func putString(s tcell.Screen, x, y, maxW int, str string, style tcell.Style) {
	for _, ch := range str {
		if x >= maxW {
			return
		}
		s.SetContent(x, y, ch, nil, style)
		x++
	}
}
