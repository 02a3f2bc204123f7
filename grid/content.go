package grid

import (
	"fmt"
	"strings"
)

// ContentKind selects what a cell displays.
type ContentKind int

const (
	// KindNone renders nothing, not even a label.
	KindNone ContentKind = iota
	// KindPreview is the preview feed.
	KindPreview
	// KindProgram is the program output.
	KindProgram
	// KindCanvas is a named canvas, or the main canvas when the name is empty.
	KindCanvas
	// KindScene is a scene looked up by name every frame.
	KindScene
	// KindSource is a source looked up by name every frame.
	KindSource
	// KindPlaceholder draws the placeholder icon.
	KindPlaceholder
)

var kindNames = [...]string{
	KindNone:        "none",
	KindPreview:     "preview",
	KindProgram:     "program",
	KindCanvas:      "canvas",
	KindScene:       "scene",
	KindSource:      "source",
	KindPlaceholder: "placeholder",
}

func (k ContentKind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("ContentKind(%d)", int(k))
}

// ParseContentKind parses the lower-case name printed by String.
func ParseContentKind(s string) (ContentKind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for k, name := range kindNames {
		if name == s {
			return ContentKind(k), nil
		}
	}
	return KindNone, fmt.Errorf("grid: unknown content kind %q", s)
}

// Content is the tagged reference a cell displays. Name is the canvas id
// for KindCanvas, the scene or source name for KindScene and KindSource,
// and an optional icon file for KindPlaceholder. Names are resolved at
// render time and may stop resolving at any moment.
type Content struct {
	Kind ContentKind
	Name string
}

// None returns empty content.
func None() Content { return Content{} }

// Preview returns a reference to the preview feed.
func Preview() Content { return Content{Kind: KindPreview} }

// Program returns a reference to the program output.
func Program() Content { return Content{Kind: KindProgram} }

// Canvas returns a reference to the canvas with the given id; an empty id
// means the main canvas.
func Canvas(id string) Content { return Content{Kind: KindCanvas, Name: id} }

// Scene returns a reference to the named scene.
func Scene(name string) Content { return Content{Kind: KindScene, Name: name} }

// Source returns a reference to the named source.
func Source(name string) Content { return Content{Kind: KindSource, Name: name} }

// Placeholder returns placeholder content. iconPath may be empty to use the
// compositor's default icon.
func Placeholder(iconPath string) Content { return Content{Kind: KindPlaceholder, Name: iconPath} }

// IsNone reports whether c displays nothing.
func (c Content) IsNone() bool { return c.Kind == KindNone }

func (c Content) String() string {
	if c.Name == "" {
		return c.Kind.String()
	}
	return c.Kind.String() + ":" + c.Name
}

// DefaultLabelText returns the label shown when a cell has no explicit
// label text. Scenes and sources are labelled by their name.
func (c Content) DefaultLabelText() string {
	switch c.Kind {
	case KindPreview:
		return "Preview"
	case KindProgram:
		return "Program"
	case KindCanvas:
		if c.Name != "" {
			return c.Name
		}
		return "Canvas"
	case KindScene, KindSource:
		return c.Name
	case KindPlaceholder:
		return "Placeholder"
	default:
		return ""
	}
}
