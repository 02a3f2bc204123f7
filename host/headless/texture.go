package headless

import (
	"errors"
	"fmt"
	"image"

	"github.com/gogpu/gputypes"
)

var (
	// ErrTextureData is returned when pixel data does not match the
	// texture size.
	ErrTextureData = errors.New("headless: texture data size mismatch")

	// ErrTextureFormat is returned for texture formats the host cannot
	// store or composite.
	ErrTextureFormat = errors.New("headless: unsupported texture format")
)

// Texture is a CPU texture in an 8-bit four-channel layout. Pixels are
// stored in the order given by its format.
type Texture struct {
	pix           *image.RGBA
	format        gputypes.TextureFormat
	premultiplied bool
	destroyed     bool
	owner         *Host
}

// supportedFormat reports whether f is a layout textures can use.
func supportedFormat(f gputypes.TextureFormat) bool {
	switch f {
	case gputypes.TextureFormatRGBA8Unorm, gputypes.TextureFormatBGRA8Unorm:
		return true
	}
	return false
}

func newTexture(w, h int, data []byte, format gputypes.TextureFormat) (*Texture, error) {
	if !supportedFormat(format) {
		return nil, fmt.Errorf("%w: %s", ErrTextureFormat, format)
	}
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("headless: texture size %dx%d", w, h)
	}
	if len(data) != w*h*4 {
		return nil, fmt.Errorf("%w: got %d bytes for %dx%d", ErrTextureData, len(data), w, h)
	}
	t := &Texture{pix: image.NewRGBA(image.Rect(0, 0, w, h)), format: format}
	t.store(data)
	return t, nil
}

// store copies RGBA data into the texture's layout.
func (t *Texture) store(data []byte) {
	copy(t.pix.Pix, data)
	if t.format == gputypes.TextureFormatBGRA8Unorm {
		swapRB(t.pix.Pix)
	}
}

func swapRB(pix []byte) {
	for i := 0; i+3 < len(pix); i += 4 {
		pix[i], pix[i+2] = pix[i+2], pix[i]
	}
}

// Width implements gpucontext.Texture.
func (t *Texture) Width() int { return t.pix.Rect.Dx() }

// Height implements gpucontext.Texture.
func (t *Texture) Height() int { return t.pix.Rect.Dy() }

// Format reports the pixel layout.
func (t *Texture) Format() gputypes.TextureFormat { return t.format }

// SetPremultiplied records whether the pixel data has premultiplied alpha.
// Straight-alpha textures are converted when drawn.
func (t *Texture) SetPremultiplied(pm bool) { t.premultiplied = pm }

// Premultiplied reports the alpha mode set with SetPremultiplied.
func (t *Texture) Premultiplied() bool { return t.premultiplied }

// UpdateData implements gpucontext.TextureUpdater. data is RGBA.
func (t *Texture) UpdateData(data []byte) error {
	if t.destroyed {
		return errors.New("headless: texture destroyed")
	}
	if len(data) != len(t.pix.Pix) {
		return fmt.Errorf("%w: got %d bytes, want %d", ErrTextureData, len(data), len(t.pix.Pix))
	}
	t.store(data)
	return nil
}

// Destroy releases the texture. It is safe to call more than once.
func (t *Texture) Destroy() {
	if t.destroyed {
		return
	}
	t.destroyed = true
	if t.owner != nil {
		t.owner.textures.Add(-1)
	}
}

// source returns the texture as an RGBA-ordered image for compositing.
func (t *Texture) source() (image.Image, error) {
	pix := t.pix.Pix
	switch t.format {
	case gputypes.TextureFormatRGBA8Unorm:
	case gputypes.TextureFormatBGRA8Unorm:
		pix = make([]byte, len(t.pix.Pix))
		copy(pix, t.pix.Pix)
		swapRB(pix)
	default:
		return nil, fmt.Errorf("%w: %s", ErrTextureFormat, t.format)
	}
	if t.premultiplied {
		return &image.RGBA{Pix: pix, Stride: t.pix.Stride, Rect: t.pix.Rect}, nil
	}
	return &image.NRGBA{Pix: pix, Stride: t.pix.Stride, Rect: t.pix.Rect}, nil
}
