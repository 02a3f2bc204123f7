package headless

import (
	"image"
	"image/color"
	"sync"
	"sync/atomic"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/multiview/compositor"
	"github.com/gogpu/multiview/fontdesc"
	"github.com/gogpu/multiview/grid"
	"github.com/gogpu/multiview/overlay"
)

// Default base canvas size.
const (
	DefaultBaseWidth  = 1920
	DefaultBaseHeight = 1080
)

// Option configures a Host.
type Option func(*options)

type options struct {
	baseW, baseH int
	fonts        *fontdesc.Resolver
	format       gputypes.TextureFormat
}

// WithBaseResolution sets the output canvas size reported for preview and
// program feeds.
func WithBaseResolution(w, h int) Option {
	return func(o *options) {
		if w > 0 && h > 0 {
			o.baseW, o.baseH = w, h
		}
	}
}

// WithFontResolver sets the resolver used for label fonts. The host does
// not close a resolver it was given.
func WithFontResolver(r *fontdesc.Resolver) Option {
	return func(o *options) {
		o.fonts = r
	}
}

// WithTextureFormat sets the pixel layout textures are stored in. RGBA8
// and BGRA8 layouts are supported; NewTextureFromRGBA fails with
// ErrTextureFormat for any other.
func WithTextureFormat(f gputypes.TextureFormat) Option {
	return func(o *options) {
		o.format = f
	}
}

type sourceKey struct {
	kind grid.ContentKind
	name string
}

// Host implements compositor.Host in memory. The zero value is not usable;
// create hosts with New.
type Host struct {
	gfx sync.Mutex

	opts      options
	ownFonts  bool
	srcMu     sync.RWMutex
	sources   map[sourceKey]*ImageDrawable
	textures  atomic.Int64
	drawables atomic.Int64
}

var _ compositor.Host = (*Host)(nil)

// New creates a host. Without WithFontResolver it builds a resolver over
// the bundled Go fonts.
func New(opts ...Option) *Host {
	o := options{
		baseW:  DefaultBaseWidth,
		baseH:  DefaultBaseHeight,
		format: gputypes.TextureFormatRGBA8Unorm,
	}
	for _, opt := range opts {
		opt(&o)
	}
	h := &Host{opts: o, sources: make(map[sourceKey]*ImageDrawable)}
	if h.opts.fonts == nil {
		h.opts.fonts = fontdesc.NewResolver()
		h.ownFonts = true
	}
	return h
}

// Lock acquires the graphics lock.
func (h *Host) Lock() { h.gfx.Lock() }

// Unlock releases the graphics lock.
func (h *Host) Unlock() { h.gfx.Unlock() }

// SetSource publishes img under kind and name, replacing any previous
// entry. Preview and program feeds ignore name.
func (h *Host) SetSource(kind grid.ContentKind, name string, img image.Image) *ImageDrawable {
	d := &ImageDrawable{img: img}
	h.srcMu.Lock()
	h.sources[keyFor(kind, name)] = d
	h.srcMu.Unlock()
	return d
}

// RemoveSource withdraws a source; compositors showing it render nothing
// from the next frame on.
func (h *Host) RemoveSource(kind grid.ContentKind, name string) bool {
	k := keyFor(kind, name)
	h.srcMu.Lock()
	defer h.srcMu.Unlock()
	if _, ok := h.sources[k]; !ok {
		return false
	}
	delete(h.sources, k)
	return true
}

// RenameSource moves a source to a new name.
func (h *Host) RenameSource(kind grid.ContentKind, from, to string) bool {
	h.srcMu.Lock()
	defer h.srcMu.Unlock()
	d, ok := h.sources[keyFor(kind, from)]
	if !ok {
		return false
	}
	delete(h.sources, keyFor(kind, from))
	h.sources[keyFor(kind, to)] = d
	return true
}

func keyFor(kind grid.ContentKind, name string) sourceKey {
	if kind == grid.KindPreview || kind == grid.KindProgram {
		name = ""
	}
	return sourceKey{kind: kind, name: name}
}

// LookupDrawable implements compositor.Host.
func (h *Host) LookupDrawable(kind grid.ContentKind, name string) (compositor.Drawable, bool) {
	h.srcMu.RLock()
	defer h.srcMu.RUnlock()
	d, ok := h.sources[keyFor(kind, name)]
	if !ok {
		return nil, false
	}
	return d, true
}

// BaseResolution implements compositor.Host.
func (h *Host) BaseResolution() (w, ht int) { return h.opts.baseW, h.opts.baseH }

// CreateTextDrawable implements compositor.Host by rasterizing text with
// the resolved face.
func (h *Host) CreateTextDrawable(s string, font fontdesc.Descriptor, col color.Color) (compositor.Drawable, error) {
	face, err := h.opts.fonts.Face(font)
	if err != nil {
		return nil, err
	}
	img, err := overlay.Text(s, face, col)
	if err != nil {
		return nil, err
	}
	h.drawables.Add(1)
	return &ImageDrawable{img: img, owner: h}, nil
}

// TextureFormat returns the layout new textures are stored in.
func (h *Host) TextureFormat() gputypes.TextureFormat { return h.opts.format }

// NewTextureFromRGBA implements gpucontext.TextureCreator. data is RGBA
// and is converted to the host texture format.
func (h *Host) NewTextureFromRGBA(w, ht int, data []byte) (gpucontext.Texture, error) {
	t, err := newTexture(w, ht, data, h.opts.format)
	if err != nil {
		return nil, err
	}
	t.owner = h
	h.textures.Add(1)
	return t, nil
}

// LiveTextures returns the number of textures created and not yet
// destroyed.
func (h *Host) LiveTextures() int { return int(h.textures.Load()) }

// LiveLabels returns the number of text drawables not yet destroyed.
func (h *Host) LiveLabels() int { return int(h.drawables.Load()) }

// Close releases the font resolver the host created.
func (h *Host) Close() error {
	if h.ownFonts {
		return h.opts.fonts.Close()
	}
	return nil
}
