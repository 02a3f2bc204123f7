package geom

import "math"

// Fit is the placement of aspect-fit content inside a box.
// X and Y are offsets from the box origin; W and H never exceed the box.
type Fit struct {
	X, Y  int
	Scale float64
	W, H  int
}

// Viewport returns the fitted area relative to the box origin.
func (f Fit) Viewport() Rect {
	return Rect{X: f.X, Y: f.Y, W: f.W, H: f.H}
}

// FitAndCenter scales contentW x contentH to the largest size that fits in
// boxW x boxH while keeping its aspect ratio, and centers it.
//
// When the box is relatively wider than the content, height binds: the
// scale is boxH/contentH and the rounded width is clamped to boxW.
// Otherwise width binds symmetrically. The letterbox remainder is split
// evenly, with the odd pixel on the far side.
//
// ok is false when any dimension is zero or negative; the caller skips
// drawing.
func FitAndCenter(contentW, contentH, boxW, boxH int) (f Fit, ok bool) {
	if contentW <= 0 || contentH <= 0 || boxW <= 0 || boxH <= 0 {
		return Fit{}, false
	}

	boxAspect := float64(boxW) / float64(boxH)
	contentAspect := float64(contentW) / float64(contentH)

	if boxAspect > contentAspect {
		f.Scale = float64(boxH) / float64(contentH)
		f.H = boxH
		f.W = min(int(math.Round(float64(contentW)*f.Scale)), boxW)
	} else {
		f.Scale = float64(boxW) / float64(contentW)
		f.W = boxW
		f.H = min(int(math.Round(float64(contentH)*f.Scale)), boxH)
	}

	f.X = (boxW - f.W) / 2
	f.Y = (boxH - f.H) / 2
	return f, true
}
