package compositor

import "github.com/gogpu/multiview/overlay"

// Overlay geometry in pixels.
const (
	DefaultLabelPadding = 6
	backdropPadding     = 4
	backdropRadius      = 6
	minIconSize         = 16
)

// Option configures a Compositor.
type Option func(*options)

type options struct {
	icon         overlay.Icon
	labelPadding int
}

func defaultOptions() options {
	return options{
		icon:         overlay.LookingGlass{},
		labelPadding: DefaultLabelPadding,
	}
}

// WithPlaceholderIcon sets the icon drawn by placeholder cells that do not
// name their own icon file. nil disables the default icon.
func WithPlaceholderIcon(icon overlay.Icon) Option {
	return func(o *options) {
		o.icon = icon
	}
}

// WithLabelPadding sets the distance between an edge-anchored label and
// the cell edge.
func WithLabelPadding(px int) Option {
	return func(o *options) {
		if px >= 0 {
			o.labelPadding = px
		}
	}
}
