package fontdesc

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// DefaultSize is the point size used when a descriptor has none.
const DefaultSize = 36

// ErrMalformed is returned by Parse for descriptors it cannot read.
var ErrMalformed = errors.New("fontdesc: malformed font descriptor")

// Descriptor names a font face. The zero value is the default face at
// DefaultSize after Normalize.
type Descriptor struct {
	Family string
	Size   float64
	Bold   bool
	Italic bool
}

// Default returns the descriptor used for empty font strings.
func Default() Descriptor {
	return Descriptor{Size: DefaultSize}
}

// Normalize returns d with a positive size and a trimmed family.
func (d Descriptor) Normalize() Descriptor {
	d.Family = strings.TrimSpace(d.Family)
	if d.Size <= 0 {
		d.Size = DefaultSize
	}
	return d
}

// String formats d in the simple descriptor form accepted by Parse.
func (d Descriptor) String() string {
	s := d.Family + "," + strconv.FormatFloat(d.Size, 'f', -1, 64)
	if d.Bold {
		s += ",bold"
	}
	if d.Italic {
		s += ",italic"
	}
	return s
}

// Parse reads a font descriptor. An empty string yields Default. On error
// the returned descriptor is still usable: it carries whatever was parsed,
// normalized.
func Parse(s string) (Descriptor, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Default(), nil
	}
	fields := strings.Split(s, ",")
	d := Descriptor{Family: fields[0]}
	if len(fields) >= 10 && isQtForm(fields) {
		return parseQt(d, fields)
	}
	return parseSimple(d, fields)
}

// MustParse is Parse for literals known to be well formed.
func MustParse(s string) Descriptor {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}

func parseSimple(d Descriptor, fields []string) (Descriptor, error) {
	if len(fields) > 1 {
		sz := strings.TrimSpace(fields[1])
		if sz != "" {
			v, err := strconv.ParseFloat(sz, 64)
			if err != nil {
				return d.Normalize(), fmt.Errorf("%w: size %q", ErrMalformed, sz)
			}
			d.Size = v
		}
	}
	for _, f := range fields[min(2, len(fields)):] {
		switch strings.ToLower(strings.TrimSpace(f)) {
		case "bold":
			d.Bold = true
		case "italic", "oblique":
			d.Italic = true
		case "", "regular", "normal":
		default:
			return d.Normalize(), fmt.Errorf("%w: style %q", ErrMalformed, f)
		}
	}
	return d.Normalize(), nil
}

// isQtForm reports whether fields 1 through 5 are all integers, as in
// QFont::toString output.
func isQtForm(fields []string) bool {
	for _, f := range fields[1:6] {
		if _, err := strconv.ParseFloat(strings.TrimSpace(f), 64); err != nil {
			return false
		}
	}
	return true
}

// parseQt reads "family,pointSize,pixelSize,styleHint,weight,style,...".
// Qt 5 writes weights on a 0-99 scale and ten or eleven fields; Qt 6 uses
// OpenType weights and sixteen or more fields.
func parseQt(d Descriptor, fields []string) (Descriptor, error) {
	num := func(i int) float64 {
		v, _ := strconv.ParseFloat(strings.TrimSpace(fields[i]), 64)
		return v
	}
	pt, px, weight, style := num(1), num(2), num(4), num(5)
	switch {
	case pt > 0:
		d.Size = pt
	case px > 0:
		d.Size = px
	}
	if len(fields) >= 16 {
		d.Bold = weight >= 600
	} else {
		d.Bold = weight >= 63
	}
	d.Italic = style != 0
	return d.Normalize(), nil
}
