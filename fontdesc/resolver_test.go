package fontdesc

import (
	"errors"
	"testing"

	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/fontscan"
	"github.com/gogpu/gg/text"
)

func TestResolverBundledFaces(t *testing.T) {
	r := NewResolver()
	defer r.Close()

	regular, err := r.Face(Descriptor{Size: 20})
	if err != nil {
		t.Fatalf("Face: %v", err)
	}
	if regular.Size() != 20 {
		t.Errorf("Size() = %v, want 20", regular.Size())
	}
	if w, h := text.Measure("Program", regular); w <= 0 || h <= 0 {
		t.Errorf("Measure = %v x %v", w, h)
	}

	bold, err := r.Face(Descriptor{Size: 20, Bold: true})
	if err != nil {
		t.Fatalf("bold Face: %v", err)
	}
	if bold.Source() == regular.Source() {
		t.Error("bold and regular share a font source")
	}

	// Unknown family without system fonts falls back to the bundled face.
	fallback, err := r.Face(Descriptor{Family: "No Such Family", Size: 20})
	if err != nil {
		t.Fatalf("fallback Face: %v", err)
	}
	if fallback.Source() != regular.Source() {
		t.Error("unknown family did not reuse the bundled regular source")
	}
}

func TestResolverCachesFaces(t *testing.T) {
	r := NewResolver(WithCacheLimit(4))
	defer r.Close()

	a, err := r.FaceFor(",18")
	if err != nil {
		t.Fatal(err)
	}
	b, err := r.Face(Descriptor{Size: 18})
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Error("equal descriptors produced different faces")
	}
	s := r.Stats()
	if s.Hits != 1 || s.Misses != 1 || s.Capacity != 4 {
		t.Errorf("Stats = %+v", s)
	}

	def, err := r.FaceFor("")
	if err != nil {
		t.Fatal(err)
	}
	if def.Size() != DefaultSize {
		t.Errorf("default size = %v", def.Size())
	}
}

func TestResolverClosed(t *testing.T) {
	r := NewResolver()
	if err := r.Close(); err != nil {
		t.Fatal(err)
	}
	if err := r.Close(); err != nil {
		t.Errorf("second Close = %v", err)
	}
	if _, err := r.Face(Default()); !errors.Is(err, ErrClosed) {
		t.Errorf("Face after Close = %v, want ErrClosed", err)
	}
}

func TestPickFootprint(t *testing.T) {
	fp := func(file string, style font.Style, weight font.Weight) fontscan.Footprint {
		return fontscan.Footprint{
			Location: fontscan.Location{File: file},
			Family:   font.NormalizeFamily("Open Sans"),
			Aspect:   font.Aspect{Style: style, Weight: weight},
		}
	}
	fps := []fontscan.Footprint{
		{Location: fontscan.Location{File: "other.ttf"}, Family: font.NormalizeFamily("Other")},
		fp("regular.ttf", font.StyleNormal, font.WeightNormal),
		fp("semibold.ttf", font.StyleNormal, font.WeightSemibold),
		fp("bold.ttf", font.StyleNormal, font.WeightBold),
		fp("italic.ttf", font.StyleItalic, font.WeightNormal),
		fp("bolditalic.ttf", font.StyleItalic, font.WeightBold),
	}
	tests := []struct {
		d    Descriptor
		want string
	}{
		{Descriptor{Family: "Open Sans"}, "regular.ttf"},
		{Descriptor{Family: "open sans", Bold: true}, "bold.ttf"},
		{Descriptor{Family: "Open Sans", Italic: true}, "italic.ttf"},
		{Descriptor{Family: "Open Sans", Bold: true, Italic: true}, "bolditalic.ttf"},
	}
	for _, tt := range tests {
		loc, ok := pickFootprint(fps, tt.d)
		if !ok || loc.File != tt.want {
			t.Errorf("pickFootprint(%+v) = %q, %v, want %q", tt.d, loc.File, ok, tt.want)
		}
	}
	if _, ok := pickFootprint(fps, Descriptor{Family: "Missing"}); ok {
		t.Error("pickFootprint found a missing family")
	}
}
