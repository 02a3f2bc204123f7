package overlay

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"sync"

	// Decoders for placeholder icon files.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"github.com/gogpu/gg"
	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/multiview/geom"
)

// Icon produces a square placeholder image at a requested edge length.
type Icon interface {
	Rasterize(size int) (*image.RGBA, error)
}

// LookingGlass is the built-in placeholder icon: a magnifying glass with a
// translucent lens.
type LookingGlass struct {
	// Color is the stroke color; nil means opaque light grey.
	Color color.Color
}

// Rasterize implements Icon.
func (g LookingGlass) Rasterize(size int) (*image.RGBA, error) {
	if size <= 0 {
		return nil, ErrBadSize
	}
	col := g.Color
	if col == nil {
		col = color.NRGBA{R: 200, G: 200, B: 200, A: 255}
	}
	s := float64(size)

	dc := gg.NewContext(size, size)
	defer dc.Close()

	cx, cy, r := 0.42*s, 0.42*s, 0.28*s
	dc.SetColor(withAlpha(col, 0.25))
	dc.DrawCircle(cx, cy, r)
	if err := dc.Fill(); err != nil {
		return nil, err
	}

	dc.SetColor(col)
	dc.SetLineWidth(0.07 * s)
	dc.DrawCircle(cx, cy, r)
	if err := dc.Stroke(); err != nil {
		return nil, err
	}

	dc.SetLineWidth(0.11 * s)
	dc.SetLineCap(gg.LineCapRound)
	dc.DrawLine(0.63*s, 0.63*s, 0.88*s, 0.88*s)
	if err := dc.Stroke(); err != nil {
		return nil, err
	}
	return snapshot(dc)
}

func withAlpha(c color.Color, a float64) color.Color {
	rgba := gg.FromColor(c)
	rgba.A *= a
	return rgba
}

// FileIcon loads its image from disk on first use and scales it to fit
// the requested square, preserving aspect ratio.
// FileIcon is safe for concurrent use.
type FileIcon struct {
	path string

	mu  sync.Mutex
	img image.Image
}

// NewFileIcon returns an icon backed by the image file at path. PNG,
// JPEG, GIF, BMP and WebP are supported.
func NewFileIcon(path string) *FileIcon {
	return &FileIcon{path: path}
}

// Path returns the file the icon reads.
func (f *FileIcon) Path() string { return f.path }

// Rasterize implements Icon. The file is decoded on first success and
// kept; a missing or undecodable file returns an error and is read again
// on the next call.
func (f *FileIcon) Rasterize(size int) (*image.RGBA, error) {
	if size <= 0 {
		return nil, ErrBadSize
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.img == nil {
		img, err := f.load()
		if err != nil {
			return nil, err
		}
		f.img = img
	}
	return Fit(f.img, size, size), nil
}

func (f *FileIcon) load() (image.Image, error) {
	file, err := os.Open(f.path)
	if err != nil {
		return nil, fmt.Errorf("overlay: icon: %w", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("overlay: icon %s: %w", f.path, err)
	}
	return img, nil
}

// Fit scales src into a transparent w x h image, aspect-fit and centered.
// Degenerate sizes yield an empty image of the requested size.
func Fit(src image.Image, w, h int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, max(w, 0), max(h, 0)))
	b := src.Bounds()
	fit, ok := geom.FitAndCenter(b.Dx(), b.Dy(), w, h)
	if !ok {
		return dst
	}
	r := image.Rect(fit.X, fit.Y, fit.X+fit.W, fit.Y+fit.H)
	xdraw.CatmullRom.Scale(dst, r, src, b, xdraw.Over, nil)
	return dst
}
