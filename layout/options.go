package layout

import (
	"image/color"

	"github.com/gogpu/multiview/compositor"
	"github.com/gogpu/multiview/geom"
)

// Border width limits in pixels.
const (
	MinBorder     = 1
	MaxBorder     = 10
	DefaultBorder = 1
)

// Option configures a Controller.
type Option func(*options)

type options struct {
	border     int
	lineColor  color.Color
	background color.Color
	cellAspect float64
	compositor []compositor.Option
}

func defaultOptions() options {
	return options{
		border:     DefaultBorder,
		lineColor:  color.White,
		background: color.Black,
		cellAspect: geom.DefaultCellAspect,
	}
}

// WithBorder sets the separator width, which is also the inset of every
// cell rectangle. Values are clamped to [MinBorder, MaxBorder].
func WithBorder(px int) Option {
	return func(o *options) {
		o.border = min(max(px, MinBorder), MaxBorder)
	}
}

// WithLineColor sets the separator color.
func WithLineColor(c color.Color) Option {
	return func(o *options) {
		if c != nil {
			o.lineColor = c
		}
	}
}

// WithBackground sets the color the window is cleared to.
func WithBackground(c color.Color) Option {
	return func(o *options) {
		if c != nil {
			o.background = c
		}
	}
}

// WithCellAspect sets the target width/height ratio of a grid cell.
// Non-positive values keep the 16:9 default.
func WithCellAspect(aspect float64) Option {
	return func(o *options) {
		if aspect > 0 {
			o.cellAspect = aspect
		}
	}
}

// WithCompositorOptions passes options to every compositor the controller
// creates.
func WithCompositorOptions(opts ...compositor.Option) Option {
	return func(o *options) {
		o.compositor = append(o.compositor, opts...)
	}
}
