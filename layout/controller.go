package layout

import (
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/gogpu/multiview"
	"github.com/gogpu/multiview/compositor"
	"github.com/gogpu/multiview/geom"
	"github.com/gogpu/multiview/grid"
)

// Sentinel errors.
var (
	// ErrNilHost is returned by New without a host.
	ErrNilHost = errors.New("layout: nil host")

	// ErrNilWindow is returned by New without a window.
	ErrNilWindow = errors.New("layout: nil window")

	// ErrClosed is returned by operations on a closed controller.
	ErrClosed = errors.New("layout: controller closed")
)

// Window is the host window cell surfaces live in.
type Window interface {
	// Size returns the window client size in pixels.
	Size() (w, h int)
	// NewSurface creates a surface at r. It becomes realized some time
	// later, at the host's discretion.
	NewSurface(r geom.Rect) (compositor.Surface, error)
	// RemoveSurface destroys a surface created by NewSurface.
	RemoveSurface(s compositor.Surface)
}

// slot is one cell with its surface and compositor.
type slot struct {
	cell    grid.Cell
	rect    geom.Rect
	surface compositor.Surface
	comp    *compositor.Compositor
}

// chrome is what Paint needs, published atomically so the render goroutine
// never waits on the UI goroutine.
type chrome struct {
	bounds geom.Rect
	segs   []Segment
	rects  []geom.Rect
}

// Controller lays out one multiview window.
//
// Build, Apply, Resize, ActivatePending and Close belong to the UI
// goroutine. Paint, Separators and CellRects may be called from the render
// goroutine.
type Controller struct {
	host compositor.Host
	win  Window
	opts options

	layout  grid.Layout
	own     grid.Ownership
	metrics geom.Metrics
	slots   []slot
	closed  bool

	chrome atomic.Pointer[chrome]
}

// New creates a controller with an empty layout.
func New(host compositor.Host, win Window, opts ...Option) (*Controller, error) {
	if host == nil {
		return nil, ErrNilHost
	}
	if win == nil {
		return nil, ErrNilWindow
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	c := &Controller{host: host, win: win, opts: o}
	c.chrome.Store(&chrome{})
	return c, nil
}

// Border returns the configured border width.
func (c *Controller) Border() int { return c.opts.border }

// Layout returns a copy of the current layout.
func (c *Controller) Layout() grid.Layout { return c.layout.Clone() }

// Metrics returns the grid placement for the current window size.
func (c *Controller) Metrics() geom.Metrics { return c.metrics }

// Len returns the number of cells.
func (c *Controller) Len() int { return len(c.slots) }

// Compositor returns the compositor of cell i.
func (c *Controller) Compositor(i int) (*compositor.Compositor, bool) {
	if i < 0 || i >= len(c.slots) {
		return nil, false
	}
	return c.slots[i].comp, true
}

// Build replaces every surface and compositor with fresh ones for l and
// tries to activate them. The layout must tile its grid.
func (c *Controller) Build(l grid.Layout) error {
	if c.closed {
		return ErrClosed
	}
	if err := l.Validate(); err != nil {
		return fmt.Errorf("layout: build: %w", err)
	}

	c.teardown()
	c.layout = l.Clone()
	c.own = c.layout.Ownership()
	w, h := c.win.Size()
	c.metrics, _ = geom.GridMetrics(c.layout.Rows, c.layout.Cols, w, h, c.opts.cellAspect)

	c.slots = make([]slot, 0, len(c.layout.Cells))
	for i, cell := range c.layout.Cells {
		s, err := c.newSlot(cell)
		if err != nil {
			c.teardown()
			return fmt.Errorf("layout: build cell %d: %w", i, err)
		}
		c.slots = append(c.slots, s)
	}
	c.publish()

	pending := c.ActivatePending()
	multiview.Logger().Info("layout: built",
		"rows", c.layout.Rows, "cols", c.layout.Cols,
		"cells", len(c.slots), "pending", pending)
	return nil
}

func (c *Controller) newSlot(cell grid.Cell) (slot, error) {
	r := CellRect(c.metrics, cell, c.opts.border)
	surface, err := c.win.NewSurface(r)
	if err != nil {
		return slot{}, err
	}
	comp, err := compositor.New(c.host, c.opts.compositor...)
	if err != nil {
		c.win.RemoveSurface(surface)
		return slot{}, err
	}
	if err := comp.Bind(surface, cell); err != nil {
		c.win.RemoveSurface(surface)
		return slot{}, err
	}
	return slot{cell: cell, rect: r, surface: surface, comp: comp}, nil
}

// Apply moves the window to l. When l has the same grid and cell spans as
// the current layout only the changed cells are updated in place;
// otherwise the window is rebuilt.
func (c *Controller) Apply(l grid.Layout) error {
	if c.closed {
		return ErrClosed
	}
	if !c.sameShape(l) {
		return c.Build(l)
	}
	for i, cell := range l.Cells {
		if cell == c.slots[i].cell {
			continue
		}
		if err := c.slots[i].comp.Update(cell); err != nil {
			return fmt.Errorf("layout: update cell %d: %w", i, err)
		}
		c.slots[i].cell = cell
		c.layout.Cells[i] = cell
	}
	return nil
}

func (c *Controller) sameShape(l grid.Layout) bool {
	if l.Rows != c.layout.Rows || l.Cols != c.layout.Cols || len(l.Cells) != len(c.slots) {
		return false
	}
	for i, cell := range l.Cells {
		old := c.slots[i].cell
		if cell.Row != old.Row || cell.Col != old.Col ||
			cell.RowSpan != old.RowSpan || cell.ColSpan != old.ColSpan {
			return false
		}
	}
	return true
}

// ActivatePending activates every compositor whose surface has become
// realized and returns how many are still waiting.
func (c *Controller) ActivatePending() int {
	pending := 0
	for i, s := range c.slots {
		if s.comp.State() != compositor.StateBound {
			continue
		}
		err := s.comp.Activate()
		switch {
		case err == nil:
		case errors.Is(err, compositor.ErrSurfaceNotRealized):
			pending++
		default:
			multiview.Logger().Warn("layout: activation failed", "cell", i, "err", err)
		}
	}
	return pending
}

// Resize recomputes the grid placement for a w x h window and moves every
// surface.
func (c *Controller) Resize(w, h int) {
	if c.closed {
		return
	}
	c.metrics, _ = geom.GridMetrics(c.layout.Rows, c.layout.Cols, w, h, c.opts.cellAspect)
	for i := range c.slots {
		s := &c.slots[i]
		s.rect = CellRect(c.metrics, s.cell, c.opts.border)
		if err := s.comp.Resize(s.rect); err != nil {
			multiview.Logger().Debug("layout: resize skipped", "cell", i, "err", err)
		}
	}
	c.publish()
}

// CellRects returns the surface rectangle of every cell, in cell order.
func (c *Controller) CellRects() []geom.Rect {
	return append([]geom.Rect(nil), c.chrome.Load().rects...)
}

// GridBounds returns the rectangle covered by the grid.
func (c *Controller) GridBounds() geom.Rect { return c.chrome.Load().bounds }

// Separators returns the separator segments for the current layout and
// window size.
func (c *Controller) Separators() []Segment {
	return append([]Segment(nil), c.chrome.Load().segs...)
}

// Paint clears the window to the background color and draws the
// separators.
func (c *Controller) Paint(p Painter) {
	ch := c.chrome.Load()
	p.Clear(c.opts.background)
	for _, s := range ch.segs {
		p.DrawLine(s, c.opts.lineColor, c.opts.border)
	}
}

// Close tears down every compositor and surface. Close is idempotent.
func (c *Controller) Close() error {
	if c.closed {
		return nil
	}
	err := c.teardown()
	c.closed = true
	return err
}

func (c *Controller) publish() {
	ch := &chrome{
		bounds: c.metrics.Bounds(),
		segs:   Separators(c.own, c.metrics),
		rects:  make([]geom.Rect, len(c.slots)),
	}
	for i, s := range c.slots {
		ch.rects[i] = s.rect
	}
	c.chrome.Store(ch)
}

// teardown closes compositors before removing the surfaces they draw on.
func (c *Controller) teardown() error {
	var errs []error
	for i, s := range c.slots {
		if err := s.comp.Close(); err != nil {
			errs = append(errs, fmt.Errorf("cell %d: %w", i, err))
		}
		c.win.RemoveSurface(s.surface)
	}
	c.slots = nil
	c.chrome.Store(&chrome{})
	return errors.Join(errs...)
}
