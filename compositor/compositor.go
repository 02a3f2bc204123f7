package compositor

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/gogpu/multiview"
	"github.com/gogpu/multiview/geom"
	"github.com/gogpu/multiview/grid"
	"github.com/gogpu/multiview/overlay"
)

// Sentinel errors.
var (
	// ErrNilHost is returned by New without a host.
	ErrNilHost = errors.New("compositor: nil host")

	// ErrNilSurface is returned by Bind without a surface.
	ErrNilSurface = errors.New("compositor: nil surface")

	// ErrNotBound is returned by Activate before Bind.
	ErrNotBound = errors.New("compositor: not bound to a surface")

	// ErrSurfaceNotRealized is returned by Activate while the host has not
	// created the native surface yet. The compositor stays Bound.
	ErrSurfaceNotRealized = errors.New("compositor: surface not realized")

	// ErrTornDown is returned by operations on a closed compositor.
	ErrTornDown = errors.New("compositor: torn down")
)

// State is the lifecycle state of a Compositor.
type State int

const (
	StateUninitialized State = iota
	StateBound
	StateActive
	StateContentChanged
	StateTornDown
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateBound:
		return "bound"
	case StateActive:
		return "active"
	case StateContentChanged:
		return "content-changed"
	case StateTornDown:
		return "torn-down"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Compositor renders a single cell. Its textures and label drawable are
// owned exclusively by it.
//
// Render runs on the host's render goroutine with the host graphics lock
// held; the other methods may be called from the UI goroutine. Methods
// that touch host resources take the graphics lock before the
// compositor's own mutex, the same order Render sees.
type Compositor struct {
	id   uuid.UUID
	host Host
	opts options

	mu      sync.Mutex
	state   State
	surface Surface
	cell    grid.Cell

	label         Drawable
	labelAttempts int
	labelWait     int
	backdrop      backdropCache
	icon          overlay.Icon
	placeholder   iconCache
}

// New creates an unbound compositor.
func New(host Host, opts ...Option) (*Compositor, error) {
	if host == nil {
		return nil, ErrNilHost
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Compositor{id: uuid.New(), host: host, opts: o}, nil
}

// logger returns the current package logger tagged with the compositor id.
func (c *Compositor) logger() *slog.Logger {
	return multiview.Logger().With("compositor", c.id.String())
}

// ID returns the compositor's instance id, used in log records.
func (c *Compositor) ID() uuid.UUID { return c.id }

// State returns the current lifecycle state.
func (c *Compositor) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Cell returns the cell configuration being rendered.
func (c *Compositor) Cell() grid.Cell {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cell
}

// Bind attaches the compositor to surface with the given cell. A bound
// compositor may be rebound to another surface before activation.
func (c *Compositor) Bind(surface Surface, cell grid.Cell) error {
	if surface == nil {
		return ErrNilSurface
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	switch c.state {
	case StateTornDown:
		return ErrTornDown
	case StateActive, StateContentChanged:
		return fmt.Errorf("compositor: bind while %s", c.state)
	}
	c.surface = surface
	c.cell = cell
	c.icon = c.iconFor(cell.Content)
	c.state = StateBound
	return nil
}

// Activate completes the two-phase initialization: once the surface is
// realized, the label is created and the draw callback installed.
// Activating an active compositor does nothing.
func (c *Compositor) Activate() error {
	c.host.Lock()
	defer c.host.Unlock()
	c.mu.Lock()
	defer c.mu.Unlock()

	switch c.state {
	case StateActive, StateContentChanged:
		return nil
	case StateTornDown:
		return ErrTornDown
	case StateUninitialized:
		return ErrNotBound
	}
	if !c.surface.Realized() {
		return ErrSurfaceNotRealized
	}

	c.createLabel()

	c.surface.SetDrawFunc(c.Render)
	c.state = StateActive
	c.logger().Info("compositor: activated",
		"row", c.cell.Row, "col", c.cell.Col, "kind", c.cell.Content.Kind.String())
	return nil
}

// Update replaces the cell configuration. On an active compositor the
// label and cached textures are rebuilt under the host graphics lock and
// rendering is paused until the rebuild completes.
func (c *Compositor) Update(cell grid.Cell) error {
	c.host.Lock()
	defer c.host.Unlock()
	c.mu.Lock()
	defer c.mu.Unlock()

	switch c.state {
	case StateTornDown:
		return ErrTornDown
	case StateUninitialized, StateBound:
		c.cell = cell
		c.icon = c.iconFor(cell.Content)
		return nil
	}

	c.state = StateContentChanged
	c.cell = cell
	c.icon = c.iconFor(cell.Content)

	c.releaseResources()
	c.createLabel()

	c.state = StateActive
	return nil
}

// Resize assigns a new rectangle to the bound surface. The placeholder
// icon follows the new size on the next frame.
func (c *Compositor) Resize(r geom.Rect) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch c.state {
	case StateTornDown:
		return ErrTornDown
	case StateUninitialized:
		return ErrNotBound
	}
	c.surface.SetGeometry(r)
	return nil
}

// Close removes the draw callback and releases every owned resource.
// Close is idempotent.
func (c *Compositor) Close() error {
	c.host.Lock()
	defer c.host.Unlock()
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == StateTornDown {
		return nil
	}
	if c.surface != nil {
		c.surface.SetDrawFunc(nil)
	}

	c.releaseResources()

	c.surface = nil
	c.state = StateTornDown
	c.logger().Debug("compositor: torn down")
	return nil
}

// iconFor picks the placeholder icon for content: its own icon file when
// it names one, the configured default otherwise.
func (c *Compositor) iconFor(content grid.Content) overlay.Icon {
	if content.Kind == grid.KindPlaceholder && content.Name != "" {
		return overlay.NewFileIcon(content.Name)
	}
	return c.opts.icon
}

// releaseResources destroys the label drawable and cached textures.
// Caller must hold c.mu and the host lock.
func (c *Compositor) releaseResources() {
	if c.label != nil {
		destroy(c.label)
		c.label = nil
	}
	c.labelAttempts = 0
	c.labelWait = 0
	c.backdrop.release()
	c.placeholder.release()
}
