package grid

import "image/color"

// HAlign is the horizontal anchor of a label inside its cell.
type HAlign int

const (
	AlignLeft HAlign = iota
	AlignCenter
	AlignRight
)

func (a HAlign) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignRight:
		return "right"
	default:
		return "center"
	}
}

// VAlign is the vertical anchor of a label inside its cell.
type VAlign int

const (
	AlignTop VAlign = iota
	AlignMiddle
	AlignBottom
)

func (a VAlign) String() string {
	switch a {
	case AlignTop:
		return "top"
	case AlignMiddle:
		return "middle"
	default:
		return "bottom"
	}
}

// DefaultLabelBackground is the semi-opaque black behind labels.
var DefaultLabelBackground = color.NRGBA{A: 128}

// LabelStyle controls the text overlay drawn on a cell.
//
// Font is a font descriptor string, either "Family,size[,bold][,italic]" or
// a Qt QFont string. Empty selects the default face. A Background with zero
// alpha disables the backdrop.
type LabelStyle struct {
	Visible    bool
	HAlign     HAlign
	VAlign     VAlign
	Text       string
	Font       string
	Background color.NRGBA
}

// DefaultLabel returns a visible label centered at the bottom of the cell
// with the default backdrop.
func DefaultLabel() LabelStyle {
	return LabelStyle{
		Visible:    true,
		HAlign:     AlignCenter,
		VAlign:     AlignBottom,
		Background: DefaultLabelBackground,
	}
}
