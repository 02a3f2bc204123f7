package compositor

import (
	"image/color"
	"sync"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/multiview/fontdesc"
	"github.com/gogpu/multiview/geom"
	"github.com/gogpu/multiview/grid"
)

// Drawable is an opaque renderable entity owned by the host: a video
// source, a scene, a canvas output, or a text label.
type Drawable interface {
	// Size returns the native pixel size. Zero in either axis means the
	// drawable has nothing to show right now.
	Size() (w, h int)
}

// Target is the drawing context handed to a draw callback. Coordinates are
// relative to the surface origin.
type Target interface {
	gpucontext.TextureDrawer

	// RenderDrawable draws d scaled to exactly fill viewport.
	RenderDrawable(d Drawable, viewport geom.Rect) error
}

// DrawFunc is invoked by the host once per frame with the surface size.
type DrawFunc func(t Target, cx, cy int)

// Surface is a host drawing area that one compositor renders into.
// Surface methods are called with the host graphics lock held and must not
// acquire it themselves.
type Surface interface {
	// Geometry returns the surface rectangle in window coordinates.
	Geometry() geom.Rect
	// SetGeometry moves and resizes the surface.
	SetGeometry(r geom.Rect)
	// Realized reports whether the native surface exists and can display.
	Realized() bool
	// SetDrawFunc installs the per-frame callback; nil removes it.
	SetDrawFunc(fn DrawFunc)
}

// Host provides content lookup and resource creation.
//
// The embedded Locker is the graphics-context lock. Hosts hold it while
// invoking draw callbacks; compositors take it when they create or release
// resources outside a callback.
type Host interface {
	sync.Locker

	// LookupDrawable resolves a content reference. Preview and Program
	// ignore name; Canvas with an empty name is the main canvas.
	LookupDrawable(kind grid.ContentKind, name string) (Drawable, bool)

	// BaseResolution returns the output canvas size used for preview and
	// program feeds.
	BaseResolution() (w, h int)

	// CreateTextDrawable renders a single line of text.
	CreateTextDrawable(text string, font fontdesc.Descriptor, col color.Color) (Drawable, error)
}

// textureDestroyer is implemented by textures and drawables that hold
// host resources.
type textureDestroyer interface {
	Destroy()
}

func destroy(v any) {
	if d, ok := v.(textureDestroyer); ok {
		d.Destroy()
	}
}
