package ebitenhost

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gogpu/multiview"
	"github.com/gogpu/multiview/grid"
	"github.com/gogpu/multiview/host/headless"
	"github.com/gogpu/multiview/layout"
)

// ErrNilHost is returned by New without a host.
var ErrNilHost = errors.New("ebitenhost: nil host")

// Game is an ebiten.Game showing one multiview layout.
type Game struct {
	host *headless.Host
	win  *headless.Window
	ctrl *layout.Controller

	w, h       int
	windowedW  int
	windowedH  int
	fullscreen bool
	frame      *ebiten.Image
	tick       func()
	layoutOpts []layout.Option
}

var _ ebiten.Game = (*Game)(nil)

// Option configures a Game.
type Option func(*Game)

// WithTick sets a function called once per update, before drawing. It is
// where callers advance their sources.
func WithTick(fn func()) Option {
	return func(g *Game) { g.tick = fn }
}

// WithFullscreen starts the window fullscreen.
func WithFullscreen(on bool) Option {
	return func(g *Game) { g.fullscreen = on }
}

// WithLayoutOptions passes options to the layout controller.
func WithLayoutOptions(opts ...layout.Option) Option {
	return func(g *Game) { g.layoutOpts = append(g.layoutOpts, opts...) }
}

// New builds l in a w x h window.
func New(host *headless.Host, l grid.Layout, w, h int, opts ...Option) (*Game, error) {
	if host == nil {
		return nil, ErrNilHost
	}
	w, h = max(w, 1), max(h, 1)
	g := &Game{host: host, w: w, h: h, windowedW: w, windowedH: h}
	for _, opt := range opts {
		opt(g)
	}

	g.win = headless.NewWindow(host, w, h)
	ctrl, err := layout.New(host, g.win, g.layoutOpts...)
	if err != nil {
		return nil, err
	}
	if err := ctrl.Build(l); err != nil {
		return nil, fmt.Errorf("ebitenhost: %w", err)
	}
	g.ctrl = ctrl
	return g, nil
}

// Controller returns the layout controller, for applying edits.
func (g *Game) Controller() *layout.Controller { return g.ctrl }

// Run opens the window and blocks until it is closed.
func (g *Game) Run(title string) error {
	ebiten.SetWindowSize(g.windowedW, g.windowedH)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetRunnableOnUnfocused(true)
	ebiten.SetFullscreen(g.fullscreen)

	err := ebiten.RunGame(g)
	if cerr := g.Close(); err == nil {
		err = cerr
	}
	return err
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	if ebiten.IsWindowBeingClosed() || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		g.fullscreen = !g.fullscreen
		ebiten.SetFullscreen(g.fullscreen)
		if !g.fullscreen {
			ebiten.SetWindowSize(g.windowedW, g.windowedH)
		}
	}
	if g.tick != nil {
		g.tick()
	}
	g.ctrl.ActivatePending()
	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	g.win.Draw(g.ctrl)
	fb := g.win.Frame()

	b := fb.Bounds()
	if g.frame == nil || g.frame.Bounds().Size() != b.Size() {
		if g.frame != nil {
			g.frame.Deallocate()
		}
		g.frame = ebiten.NewImage(b.Dx(), b.Dy())
	}
	g.frame.WritePixels(fb.Pix)
	screen.DrawImage(g.frame, nil)
}

// Layout implements ebiten.Game. The framebuffer follows the window size
// one to one.
func (g *Game) Layout(outsideW, outsideH int) (int, int) {
	outsideW, outsideH = max(outsideW, 1), max(outsideH, 1)
	if outsideW != g.w || outsideH != g.h {
		g.w, g.h = outsideW, outsideH
		if !g.fullscreen {
			g.windowedW, g.windowedH = outsideW, outsideH
		}
		g.win.Resize(outsideW, outsideH)
		g.ctrl.Resize(outsideW, outsideH)
		multiview.Logger().Debug("ebitenhost: resized", "w", outsideW, "h", outsideH)
	}
	return g.w, g.h
}

// Close tears the layout down.
func (g *Game) Close() error {
	if g.frame != nil {
		g.frame.Deallocate()
		g.frame = nil
	}
	return g.ctrl.Close()
}
