package headless

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"slices"
	"sync"

	"github.com/gogpu/gpucontext"
	"github.com/google/uuid"
	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/multiview"
	"github.com/gogpu/multiview/compositor"
	"github.com/gogpu/multiview/geom"
	"github.com/gogpu/multiview/layout"
)

// Errors returned by the drawing target.
var (
	ErrForeignTexture  = errors.New("headless: texture not created by this host")
	ErrForeignDrawable = errors.New("headless: drawable not created by this host")
	ErrDestroyed       = errors.New("headless: texture destroyed")
)

// Chrome paints the window background and separators.
// *layout.Controller implements it.
type Chrome interface {
	Paint(p layout.Painter)
}

// Surface is a rectangle of a Window that one compositor draws into.
type Surface struct {
	id uuid.UUID

	mu       sync.Mutex
	geometry geom.Rect
	realized bool
	fn       compositor.DrawFunc
}

var _ compositor.Surface = (*Surface)(nil)

// ID identifies the surface in logs.
func (s *Surface) ID() uuid.UUID { return s.id }

// Geometry implements compositor.Surface.
func (s *Surface) Geometry() geom.Rect {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.geometry
}

// SetGeometry implements compositor.Surface.
func (s *Surface) SetGeometry(r geom.Rect) {
	s.mu.Lock()
	s.geometry = r
	s.mu.Unlock()
}

// Realized implements compositor.Surface.
func (s *Surface) Realized() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.realized
}

// SetDrawFunc implements compositor.Surface.
func (s *Surface) SetDrawFunc(fn compositor.DrawFunc) {
	s.mu.Lock()
	s.fn = fn
	s.mu.Unlock()
}

func (s *Surface) snapshot() (geom.Rect, compositor.DrawFunc, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.geometry, s.fn, s.realized
}

func (s *Surface) realize() {
	s.mu.Lock()
	s.realized = true
	s.mu.Unlock()
}

// Window is an offscreen multiview window.
type Window struct {
	host *Host

	mu       sync.Mutex
	w, h     int
	surfaces []*Surface

	// fb is guarded by the host graphics lock.
	fb *image.RGBA
}

var _ layout.Window = (*Window)(nil)

// NewWindow creates a w x h window drawing with host.
func NewWindow(host *Host, w, h int) *Window {
	w, h = max(w, 1), max(h, 1)
	return &Window{host: host, w: w, h: h, fb: image.NewRGBA(image.Rect(0, 0, w, h))}
}

// Size implements layout.Window.
func (win *Window) Size() (w, h int) {
	win.mu.Lock()
	defer win.mu.Unlock()
	return win.w, win.h
}

// Resize changes the framebuffer size. Callers follow it with
// Controller.Resize, as a windowing host would on a resize event.
func (win *Window) Resize(w, h int) {
	w, h = max(w, 1), max(h, 1)
	win.host.Lock()
	win.fb = image.NewRGBA(image.Rect(0, 0, w, h))
	win.host.Unlock()

	win.mu.Lock()
	win.w, win.h = w, h
	win.mu.Unlock()
}

// NewSurface implements layout.Window. The surface is realized after the
// next frame.
func (win *Window) NewSurface(r geom.Rect) (compositor.Surface, error) {
	s := &Surface{id: uuid.New(), geometry: r}
	win.mu.Lock()
	win.surfaces = append(win.surfaces, s)
	win.mu.Unlock()
	multiview.Logger().Debug("headless: surface created", "surface", s.id.String(), "rect", r.String())
	return s, nil
}

// RemoveSurface implements layout.Window.
func (win *Window) RemoveSurface(s compositor.Surface) {
	win.mu.Lock()
	defer win.mu.Unlock()
	win.surfaces = slices.DeleteFunc(win.surfaces, func(x *Surface) bool {
		return compositor.Surface(x) == s
	})
}

// Surfaces returns the number of live surfaces.
func (win *Window) Surfaces() int {
	win.mu.Lock()
	defer win.mu.Unlock()
	return len(win.surfaces)
}

// Realize marks every surface realized without drawing a frame.
func (win *Window) Realize() {
	for _, s := range win.list() {
		s.realize()
	}
}

func (win *Window) list() []*Surface {
	win.mu.Lock()
	defer win.mu.Unlock()
	return slices.Clone(win.surfaces)
}

// Draw renders one frame: chrome first, then every realized surface's draw
// callback, all under the graphics lock. A nil chrome clears to black.
func (win *Window) Draw(chrome Chrome) {
	surfaces := win.list()

	win.host.Lock()
	defer win.host.Unlock()

	p := &fbPainter{dst: win.fb}
	if chrome != nil {
		chrome.Paint(p)
	} else {
		p.Clear(color.Black)
	}

	for _, s := range surfaces {
		r, fn, realized := s.snapshot()
		if !realized || fn == nil || r.Empty() {
			continue
		}
		fn(&target{host: win.host, dst: win.fb, rect: r}, r.W, r.H)
	}

	for _, s := range surfaces {
		s.realize()
	}
}

// Frame returns a copy of the framebuffer.
func (win *Window) Frame() *image.RGBA {
	win.host.Lock()
	defer win.host.Unlock()
	out := image.NewRGBA(win.fb.Rect)
	copy(out.Pix, win.fb.Pix)
	return out
}

// fbPainter implements layout.Painter on an RGBA framebuffer.
type fbPainter struct {
	dst *image.RGBA
}

func (p *fbPainter) Clear(c color.Color) {
	draw.Draw(p.dst, p.dst.Rect, image.NewUniform(c), image.Point{}, draw.Src)
}

// DrawLine fills a width-pixel band centered on the segment, end points
// included.
func (p *fbPainter) DrawLine(s layout.Segment, c color.Color, width int) {
	width = max(width, 1)
	off := (width - 1) / 2
	var r image.Rectangle
	if s.Vertical() {
		r = image.Rect(s.X0-off, s.Y0, s.X0-off+width, s.Y1+1)
	} else {
		r = image.Rect(s.X0, s.Y0-off, s.X1+1, s.Y0-off+width)
	}
	draw.Draw(p.dst, r, image.NewUniform(c), image.Point{}, draw.Over)
}

// target draws into one surface's area of the framebuffer. Coordinates
// are surface relative and clipped to the surface.
type target struct {
	host *Host
	dst  *image.RGBA
	rect geom.Rect
}

func (t *target) clip() *image.RGBA {
	r := image.Rect(t.rect.X, t.rect.Y, t.rect.Right(), t.rect.Bottom())
	return t.dst.SubImage(r).(*image.RGBA)
}

func (t *target) TextureCreator() gpucontext.TextureCreator { return t.host }

func (t *target) DrawTexture(tex gpucontext.Texture, x, y float32) error {
	ht, ok := tex.(*Texture)
	if !ok || ht.owner != t.host {
		return ErrForeignTexture
	}
	if ht.destroyed {
		return ErrDestroyed
	}
	src, err := ht.source()
	if err != nil {
		return err
	}
	dx, dy := t.rect.X+int(x), t.rect.Y+int(y)
	r := image.Rect(dx, dy, dx+ht.Width(), dy+ht.Height())
	draw.Draw(t.clip(), r, src, image.Point{}, draw.Over)
	return nil
}

func (t *target) RenderDrawable(d compositor.Drawable, vp geom.Rect) error {
	id, ok := d.(*ImageDrawable)
	if !ok {
		return ErrForeignDrawable
	}
	img := id.Image()
	if img == nil || vp.Empty() {
		return nil
	}
	r := image.Rect(vp.X, vp.Y, vp.Right(), vp.Bottom()).Add(image.Pt(t.rect.X, t.rect.Y))
	b := img.Bounds()
	if b.Dx() == vp.W && b.Dy() == vp.H {
		draw.Draw(t.clip(), r, img, b.Min, draw.Over)
		return nil
	}
	xdraw.ApproxBiLinear.Scale(t.clip(), r, img, b, xdraw.Over, nil)
	return nil
}
