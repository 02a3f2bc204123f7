package overlay

import (
	"errors"
	"image"
	"image/color"
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/text/unicode/norm"
)

// Sentinel errors.
var (
	// ErrEmptyText is returned when the text has no visible extent.
	ErrEmptyText = errors.New("overlay: text is empty")

	// ErrNilFace is returned when no font face is supplied.
	ErrNilFace = errors.New("overlay: nil font face")

	// ErrBadSize is returned for non-positive raster sizes.
	ErrBadSize = errors.New("overlay: size must be positive")
)

// Text rasterizes s in a single line with face and col. The image is as
// wide as the text advance and as tall as the face's line height. The
// string is NFC-normalized first so composed and decomposed input render
// alike.
func Text(s string, face text.Face, col color.Color) (*image.RGBA, error) {
	if face == nil {
		return nil, ErrNilFace
	}
	s = norm.NFC.String(s)
	w, h := text.Measure(s, face)
	iw, ih := int(math.Ceil(w)), int(math.Ceil(h))
	if iw <= 0 || ih <= 0 {
		return nil, ErrEmptyText
	}

	dc := gg.NewContext(iw, ih)
	defer dc.Close()
	dc.SetFont(face)
	dc.SetColor(col)
	dc.DrawStringAnchored(s, 0, 0, 0, 0)
	return snapshot(dc)
}

// RoundedRect rasterizes a w x h rounded rectangle filled with col.
func RoundedRect(w, h int, radius float64, col color.Color) (*image.RGBA, error) {
	if w <= 0 || h <= 0 {
		return nil, ErrBadSize
	}
	dc := gg.NewContext(w, h)
	defer dc.Close()
	dc.SetColor(col)
	dc.DrawRoundedRectangle(0, 0, float64(w), float64(h), radius)
	if err := dc.Fill(); err != nil {
		return nil, err
	}
	return snapshot(dc)
}

// snapshot flushes pending drawing and copies the context pixels.
func snapshot(dc *gg.Context) (*image.RGBA, error) {
	if err := dc.FlushGPU(); err != nil {
		return nil, err
	}
	return dc.ResizeTarget().ToImage(), nil
}
