package headless

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"testing"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/multiview/compositor"
	"github.com/gogpu/multiview/fontdesc"
	"github.com/gogpu/multiview/geom"
	"github.com/gogpu/multiview/grid"
	"github.com/gogpu/multiview/layout"
)

var red = color.RGBA{R: 255, A: 255}

func solid(w, h int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Rect, image.NewUniform(c), image.Point{}, draw.Src)
	return img
}

func newHost(t *testing.T, opts ...Option) *Host {
	t.Helper()
	h := New(opts...)
	t.Cleanup(func() { _ = h.Close() })
	return h
}

func rgbaAt(img *image.RGBA, x, y int) color.RGBA {
	return img.RGBAAt(x, y)
}

// --- host ---

func TestLookupDrawable(t *testing.T) {
	h := newHost(t)
	prog := h.SetSource(grid.KindProgram, "ignored", solid(4, 4, red))

	d, ok := h.LookupDrawable(grid.KindProgram, "")
	if !ok || d != prog {
		t.Fatalf("program lookup = %v, %v", d, ok)
	}
	if _, ok := h.LookupDrawable(grid.KindPreview, ""); ok {
		t.Error("preview resolved without a source")
	}

	cam := h.SetSource(grid.KindSource, "Cam", solid(8, 6, red))
	if d, ok := h.LookupDrawable(grid.KindSource, "Cam"); !ok || d != cam {
		t.Error("source lookup failed")
	}
	if w, ht := cam.Size(); w != 8 || ht != 6 {
		t.Errorf("size = %dx%d", w, ht)
	}
	if _, ok := h.LookupDrawable(grid.KindScene, "Cam"); ok {
		t.Error("kinds share a namespace")
	}

	if !h.RenameSource(grid.KindSource, "Cam", "Cam 2") {
		t.Fatal("rename failed")
	}
	if _, ok := h.LookupDrawable(grid.KindSource, "Cam"); ok {
		t.Error("old name still resolves")
	}
	if !h.RemoveSource(grid.KindSource, "Cam 2") || h.RemoveSource(grid.KindSource, "Cam 2") {
		t.Error("unexpected RemoveSource results")
	}
}

func TestBaseResolution(t *testing.T) {
	if w, ht := newHost(t).BaseResolution(); w != DefaultBaseWidth || ht != DefaultBaseHeight {
		t.Errorf("default = %dx%d", w, ht)
	}
	if w, ht := newHost(t, WithBaseResolution(1280, 720)).BaseResolution(); w != 1280 || ht != 720 {
		t.Errorf("option = %dx%d", w, ht)
	}
	if w, _ := newHost(t, WithBaseResolution(0, 720)).BaseResolution(); w != DefaultBaseWidth {
		t.Errorf("invalid option applied: %d", w)
	}
}

func TestCreateTextDrawable(t *testing.T) {
	fonts := fontdesc.NewResolver()
	defer fonts.Close()
	h := newHost(t, WithFontResolver(fonts))

	d, err := h.CreateTextDrawable("Program", fontdesc.Descriptor{Size: 20}, color.White)
	if err != nil {
		t.Fatal(err)
	}
	w, ht := d.Size()
	if w <= 0 || ht <= 0 {
		t.Fatalf("label size %dx%d", w, ht)
	}
	if h.LiveLabels() != 1 {
		t.Errorf("live labels = %d", h.LiveLabels())
	}
	d.(*ImageDrawable).Destroy()
	d.(*ImageDrawable).Destroy()
	if h.LiveLabels() != 0 {
		t.Errorf("live labels after Destroy = %d", h.LiveLabels())
	}

	if _, err := h.CreateTextDrawable("", fontdesc.Default(), color.White); err == nil {
		t.Error("empty text accepted")
	}
}

func TestTexture(t *testing.T) {
	h := newHost(t)
	if _, err := h.NewTextureFromRGBA(2, 2, make([]byte, 3)); !errors.Is(err, ErrTextureData) {
		t.Errorf("short data: %v", err)
	}
	if _, err := h.NewTextureFromRGBA(0, 2, nil); err == nil {
		t.Error("zero width accepted")
	}

	tex, err := h.NewTextureFromRGBA(2, 1, []byte{1, 2, 3, 4, 5, 6, 7, 8})
	if err != nil {
		t.Fatal(err)
	}
	ht := tex.(*Texture)
	if ht.Width() != 2 || ht.Height() != 1 || h.LiveTextures() != 1 {
		t.Fatalf("texture %dx%d, live %d", ht.Width(), ht.Height(), h.LiveTextures())
	}
	if err := ht.UpdateData([]byte{9, 9, 9, 9, 9, 9, 9, 9}); err != nil {
		t.Fatal(err)
	}
	if ht.pix.Pix[0] != 9 {
		t.Error("UpdateData did not copy")
	}
	if err := ht.UpdateData([]byte{1}); !errors.Is(err, ErrTextureData) {
		t.Errorf("bad update: %v", err)
	}
	ht.Destroy()
	ht.Destroy()
	if h.LiveTextures() != 0 {
		t.Errorf("live = %d", h.LiveTextures())
	}
	if err := ht.UpdateData(make([]byte, 8)); err == nil {
		t.Error("update after Destroy succeeded")
	}
}

// --- painter and target ---

func TestFbPainter(t *testing.T) {
	fb := image.NewRGBA(image.Rect(0, 0, 10, 10))
	p := &fbPainter{dst: fb}
	p.Clear(color.Black)
	p.DrawLine(layout.Segment{X0: 4, Y0: 0, X1: 4, Y1: 9}, color.White, 3)
	if c := rgbaAt(fb, 3, 9); c.R != 255 {
		t.Errorf("line pixel = %v", c)
	}
	if c := rgbaAt(fb, 6, 5); c.R != 0 || c.A != 255 {
		t.Errorf("pixel beside line = %v", c)
	}
	p.DrawLine(layout.Segment{X0: 0, Y0: 0, X1: 9, Y1: 0}, color.White, 1)
	if c := rgbaAt(fb, 9, 0); c.G != 255 {
		t.Errorf("end point = %v", c)
	}
}

func TestTargetClipsToSurface(t *testing.T) {
	h := newHost(t)
	fb := image.NewRGBA(image.Rect(0, 0, 20, 20))
	tg := &target{host: h, dst: fb, rect: geom.Rect{X: 5, Y: 5, W: 10, H: 10}}

	tex, _ := h.NewTextureFromRGBA(20, 20, solid(20, 20, red).Pix)
	tex.(*Texture).SetPremultiplied(true)
	if err := tg.DrawTexture(tex, -2, -2); err != nil {
		t.Fatal(err)
	}
	if c := rgbaAt(fb, 5, 5); c != red {
		t.Errorf("inside = %v", c)
	}
	if c := rgbaAt(fb, 4, 4); c.A != 0 {
		t.Errorf("outside surface = %v", c)
	}
	if c := rgbaAt(fb, 15, 15); c.A != 0 {
		t.Errorf("beyond surface = %v", c)
	}

	other := New()
	defer other.Close()
	foreign, _ := other.NewTextureFromRGBA(1, 1, make([]byte, 4))
	if err := tg.DrawTexture(foreign, 0, 0); !errors.Is(err, ErrForeignTexture) {
		t.Errorf("foreign texture: %v", err)
	}
	tex.(*Texture).Destroy()
	if err := tg.DrawTexture(tex, 0, 0); !errors.Is(err, ErrDestroyed) {
		t.Errorf("destroyed texture: %v", err)
	}
}

func TestTextureFormats(t *testing.T) {
	h := newHost(t, WithTextureFormat(gputypes.TextureFormatBGRA8Unorm))
	if h.TextureFormat() != gputypes.TextureFormatBGRA8Unorm {
		t.Fatalf("host format = %v", h.TextureFormat())
	}
	tex, err := h.NewTextureFromRGBA(2, 2, solid(2, 2, red).Pix)
	if err != nil {
		t.Fatal(err)
	}
	ht := tex.(*Texture)
	if ht.Format() != gputypes.TextureFormatBGRA8Unorm {
		t.Errorf("texture format = %v", ht.Format())
	}
	if p := ht.pix.Pix[:4]; p[0] != 0 || p[2] != 255 {
		t.Errorf("stored pixel = %v, want BGRA order", p)
	}
	ht.SetPremultiplied(true)

	fb := image.NewRGBA(image.Rect(0, 0, 4, 4))
	tg := &target{host: h, dst: fb, rect: geom.Rect{W: 4, H: 4}}
	if err := tg.DrawTexture(tex, 1, 1); err != nil {
		t.Fatal(err)
	}
	if c := rgbaAt(fb, 1, 1); c != red {
		t.Errorf("composited pixel = %v, want red", c)
	}

	ht.format = gputypes.TextureFormatR8Unorm
	if err := tg.DrawTexture(tex, 0, 0); !errors.Is(err, ErrTextureFormat) {
		t.Errorf("draw of unsupported format = %v", err)
	}

	bad := newHost(t, WithTextureFormat(gputypes.TextureFormatDepth24PlusStencil8))
	if _, err := bad.NewTextureFromRGBA(1, 1, make([]byte, 4)); !errors.Is(err, ErrTextureFormat) {
		t.Errorf("create with unsupported format = %v", err)
	}
}

func TestTargetRenderDrawableScales(t *testing.T) {
	h := newHost(t)
	fb := image.NewRGBA(image.Rect(0, 0, 40, 40))
	tg := &target{host: h, dst: fb, rect: geom.Rect{X: 10, Y: 10, W: 20, H: 20}}
	src := h.SetSource(grid.KindScene, "S", solid(4, 2, red))

	if err := tg.RenderDrawable(src, geom.Rect{X: 0, Y: 5, W: 20, H: 10}); err != nil {
		t.Fatal(err)
	}
	if c := rgbaAt(fb, 20, 20); c != red {
		t.Errorf("center = %v", c)
	}
	if c := rgbaAt(fb, 20, 12); c.A != 0 {
		t.Errorf("letterbox = %v", c)
	}
	if err := tg.RenderDrawable(stubDrawable{}, geom.Rect{W: 1, H: 1}); !errors.Is(err, ErrForeignDrawable) {
		t.Errorf("foreign drawable: %v", err)
	}
}

type stubDrawable struct{}

func (stubDrawable) Size() (int, int) { return 1, 1 }

// --- window ---

func TestWindowSurfaces(t *testing.T) {
	h := newHost(t)
	win := NewWindow(h, 100, 50)
	s, err := win.NewSurface(geom.Rect{X: 1, Y: 1, W: 10, H: 10})
	if err != nil {
		t.Fatal(err)
	}
	if s.Realized() {
		t.Error("surface realized before first frame")
	}
	win.Draw(nil)
	if !s.Realized() {
		t.Error("surface not realized after first frame")
	}
	if c := rgbaAt(win.Frame(), 50, 25); c != (color.RGBA{A: 255}) {
		t.Errorf("nil chrome did not clear to black: %v", c)
	}
	if win.Surfaces() != 1 {
		t.Errorf("surfaces = %d", win.Surfaces())
	}
	win.RemoveSurface(s)
	if win.Surfaces() != 0 {
		t.Errorf("surfaces after remove = %d", win.Surfaces())
	}

	win.Resize(0, 30)
	if w, ht := win.Size(); w != 1 || ht != 30 {
		t.Errorf("size = %dx%d", w, ht)
	}
}

func TestWindowDrawCallback(t *testing.T) {
	h := newHost(t)
	win := NewWindow(h, 100, 50)
	s, _ := win.NewSurface(geom.Rect{X: 10, Y: 5, W: 30, H: 20})
	var gotW, gotH, calls int
	s.SetDrawFunc(func(_ compositor.Target, cx, cy int) {
		calls++
		gotW, gotH = cx, cy
	})
	win.Draw(nil)
	if calls != 0 {
		t.Error("unrealized surface drawn")
	}
	win.Draw(nil)
	if calls != 1 || gotW != 30 || gotH != 20 {
		t.Errorf("calls %d, size %dx%d", calls, gotW, gotH)
	}
}

// --- end to end ---

type rig struct {
	host *Host
	win  *Window
	ctrl *layout.Controller
}

func newRig(t *testing.T, w, h int, l grid.Layout, opts ...Option) *rig {
	t.Helper()
	host := newHost(t, append([]Option{WithBaseResolution(192, 108)}, opts...)...)
	win := NewWindow(host, w, h)
	ctrl, err := layout.New(host, win)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = ctrl.Close() })
	if err := ctrl.Build(l); err != nil {
		t.Fatal(err)
	}
	win.Draw(ctrl)
	if n := ctrl.ActivatePending(); n != 0 {
		t.Fatalf("pending after first frame = %d", n)
	}
	return &rig{host: host, win: win, ctrl: ctrl}
}

func singleCell(t *testing.T, content grid.Content, labelVisible bool) grid.Layout {
	t.Helper()
	l, err := grid.NewLayout(1, 1)
	if err != nil {
		t.Fatal(err)
	}
	l.Cells[0] = l.Cells[0].WithContent(content)
	l.Cells[0].Label.Visible = labelVisible
	return l
}

func TestEndToEndProgram(t *testing.T) {
	// 200x115 window, 1x1 grid: cell 198x111 at (1,2); surface 196x109 at
	// (2,3); the 192x108 program fits as 194x109 at surface x 1.
	l := singleCell(t, grid.Program(), false)
	host := newHost(t, WithBaseResolution(192, 108))
	host.SetSource(grid.KindProgram, "", solid(192, 108, red))
	win := NewWindow(host, 200, 115)
	ctrl, err := layout.New(host, win)
	if err != nil {
		t.Fatal(err)
	}
	defer ctrl.Close()
	if err := ctrl.Build(l); err != nil {
		t.Fatal(err)
	}

	win.Draw(ctrl)
	if c := rgbaAt(win.Frame(), 100, 50); c != (color.RGBA{A: 255}) {
		t.Fatalf("content drawn before activation: %v", c)
	}
	if n := ctrl.ActivatePending(); n != 0 {
		t.Fatalf("pending = %d", n)
	}
	win.Draw(ctrl)
	frame := win.Frame()

	if c := rgbaAt(frame, 100, 50); c != red {
		t.Errorf("program pixel = %v", c)
	}
	if c := rgbaAt(frame, 3, 50); c != red {
		t.Errorf("left content edge = %v", c)
	}
	if c := rgbaAt(frame, 1, 50); c != (color.RGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Errorf("left separator = %v", c)
	}
	if c := rgbaAt(frame, 0, 0); c != (color.RGBA{A: 255}) {
		t.Errorf("background = %v", c)
	}

	// Removing the source letterboxes the cell from the next frame on.
	host.RemoveSource(grid.KindProgram, "")
	win.Draw(ctrl)
	if c := rgbaAt(win.Frame(), 100, 50); c != (color.RGBA{A: 255}) {
		t.Errorf("removed source still drawn: %v", c)
	}
}

func TestEndToEndResourcesReleased(t *testing.T) {
	l, _ := grid.NewLayout(2, 2)
	l.Cells[0] = l.Cells[0].WithContent(grid.Scene("Cam"))
	l.Cells[1] = l.Cells[1].WithContent(grid.Placeholder(""))
	r := newRig(t, 640, 360, l)
	r.host.SetSource(grid.KindScene, "Cam", solid(64, 36, red))

	r.win.Draw(r.ctrl)
	// Two label backdrops and one icon.
	if got := r.host.LiveTextures(); got != 3 {
		t.Errorf("live textures = %d, want 3", got)
	}
	if got := r.host.LiveLabels(); got != 2 {
		t.Errorf("live labels = %d, want 2", got)
	}

	r.win.Resize(1280, 720)
	r.ctrl.Resize(1280, 720)
	r.win.Draw(r.ctrl)
	if got := r.host.LiveTextures(); got != 3 {
		t.Errorf("live textures after resize = %d, want 3", got)
	}

	if err := r.ctrl.Close(); err != nil {
		t.Fatal(err)
	}
	if r.host.LiveTextures() != 0 || r.host.LiveLabels() != 0 {
		t.Errorf("leaked %d textures, %d labels", r.host.LiveTextures(), r.host.LiveLabels())
	}
	if r.win.Surfaces() != 0 {
		t.Errorf("surfaces left: %d", r.win.Surfaces())
	}
}

func TestEndToEndMergedCellHasNoInteriorLine(t *testing.T) {
	l, _ := grid.NewLayout(2, 2)
	if err := l.Merge(grid.RectSelection(grid.Position{}, grid.Position{Row: 1, Col: 1})); err != nil {
		t.Fatal(err)
	}
	r := newRig(t, 400, 225, l)
	r.win.Draw(r.ctrl)
	m := r.ctrl.Metrics()
	frame := r.win.Frame()
	cx := m.OffsetX + m.CellW
	if c := rgbaAt(frame, cx, m.OffsetY+m.CellH/2); c.R == 255 && c.G == 255 {
		t.Errorf("interior separator drawn at x=%d", cx)
	}
	if c := rgbaAt(frame, m.OffsetX, m.OffsetY+m.CellH/2); c.G != 255 {
		t.Errorf("outer edge missing: %v", c)
	}
}
