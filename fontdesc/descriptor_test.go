package fontdesc

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Descriptor
	}{
		{"", Descriptor{Size: 36}},
		{"   ", Descriptor{Size: 36}},
		{"Arial", Descriptor{Family: "Arial", Size: 36}},
		{",20", Descriptor{Size: 20}},
		{"DejaVu Sans,24,bold", Descriptor{Family: "DejaVu Sans", Size: 24, Bold: true}},
		{"Inter, 12.5 ,Italic,bold", Descriptor{Family: "Inter", Size: 12.5, Bold: true, Italic: true}},
		{"Mono,0", Descriptor{Family: "Mono", Size: 36}},
		{"Mono,-4,regular", Descriptor{Family: "Mono", Size: 36}},
		// Qt 5: weight 75 is bold, style 1 is italic.
		{"Sans Serif,20,-1,5,75,1,0,0,0,0", Descriptor{Family: "Sans Serif", Size: 20, Bold: true, Italic: true}},
		{"Sans Serif,9,-1,5,50,0,0,0,0,0", Descriptor{Family: "Sans Serif", Size: 9}},
		// Pixel-sized Qt font.
		{"Noto Sans,-1,28,5,50,0,0,0,0,0", Descriptor{Family: "Noto Sans", Size: 28}},
		// Qt 6 uses OpenType weights.
		{"Segoe UI,20,-1,5,700,0,0,0,0,0,0,0,0,0,0,1", Descriptor{Family: "Segoe UI", Size: 20, Bold: true}},
		{"Segoe UI,20,-1,5,400,0,0,0,0,0,0,0,0,0,0,1", Descriptor{Family: "Segoe UI", Size: 20}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			if err != nil {
				t.Fatalf("Parse(%q): %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseMalformed(t *testing.T) {
	for _, in := range []string{"Arial,big", "Arial,12,heavy"} {
		d, err := Parse(in)
		if !errors.Is(err, ErrMalformed) {
			t.Errorf("Parse(%q) error = %v, want ErrMalformed", in, err)
		}
		if d.Family != "Arial" || d.Size <= 0 {
			t.Errorf("Parse(%q) fallback = %+v", in, d)
		}
	}
}

func TestDescriptorStringRoundTrip(t *testing.T) {
	for _, d := range []Descriptor{
		{Family: "Go", Size: 20},
		{Family: "Go Mono", Size: 11.5, Bold: true},
		{Size: 36, Italic: true},
		{Family: "X", Size: 8, Bold: true, Italic: true},
	} {
		got, err := Parse(d.String())
		if err != nil || got != d {
			t.Errorf("Parse(%q) = %+v, %v, want %+v", d.String(), got, err, d)
		}
	}
}

func TestMustParsePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustParse did not panic")
		}
	}()
	MustParse("A,not-a-size")
}
