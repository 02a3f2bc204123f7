package overlay

import (
	"image"
	"image/color"
	"math"

	"github.com/gogpu/gg"
)

// barColors are the 75% colour bars, left to right.
var barColors = [...]color.NRGBA{
	{191, 191, 191, 255},
	{191, 191, 0, 255},
	{0, 191, 191, 255},
	{0, 191, 0, 255},
	{191, 0, 191, 255},
	{191, 0, 0, 255},
	{0, 0, 191, 255},
}

// ColorBars rasterizes a w x h colour-bar test pattern. A white marker
// sweeps along the bottom strip; phase in [0, 1) selects its position, so
// advancing phase per frame animates the feed.
func ColorBars(w, h int, phase float64) (*image.RGBA, error) {
	if w <= 0 || h <= 0 {
		return nil, ErrBadSize
	}
	dc := gg.NewContext(w, h)
	defer dc.Close()

	fw, fh := float64(w), float64(h)
	barH := fh * 0.8
	barW := fw / float64(len(barColors))
	for i, c := range barColors {
		dc.SetColor(c)
		dc.DrawRectangle(float64(i)*barW, 0, math.Ceil(barW), barH)
		if err := dc.Fill(); err != nil {
			return nil, err
		}
	}

	dc.SetColor(color.NRGBA{R: 16, G: 16, B: 16, A: 255})
	dc.DrawRectangle(0, barH, fw, fh-barH)
	if err := dc.Fill(); err != nil {
		return nil, err
	}

	_, frac := math.Modf(phase)
	if frac < 0 {
		frac++
	}
	markW := math.Max(fw/16, 1)
	dc.SetColor(color.White)
	dc.DrawRectangle(frac*(fw-markW), barH, markW, fh-barH)
	if err := dc.Fill(); err != nil {
		return nil, err
	}
	return snapshot(dc)
}
