package fontdesc

import (
	"errors"
	"fmt"
	"sync"

	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/fontscan"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/multiview"
	"github.com/gogpu/multiview/internal/cache"
)

// ErrClosed is returned by a Resolver after Close.
var ErrClosed = errors.New("fontdesc: resolver is closed")

const defaultCacheLimit = 32

// Option configures a Resolver.
type Option func(*options)

type options struct {
	systemFonts bool
	cacheDir    string
	cacheLimit  int
}

// WithSystemFonts enables family lookup among installed fonts. The font
// index is stored under cacheDir; an empty cacheDir uses the platform
// cache directory.
func WithSystemFonts(cacheDir string) Option {
	return func(o *options) {
		o.systemFonts = true
		o.cacheDir = cacheDir
	}
}

// WithCacheLimit sets how many faces the resolver keeps.
func WithCacheLimit(n int) Option {
	return func(o *options) {
		o.cacheLimit = n
	}
}

// sourceKey identifies a parsed font file.
type sourceKey struct {
	file  string
	index int
	style builtinStyle
}

// Resolver turns descriptors into text faces. Parsed font sources and
// sized faces are cached. Resolver is safe for concurrent use.
type Resolver struct {
	mu         sync.Mutex
	closed     bool
	footprints []fontscan.Footprint

	sources *cache.Cache[sourceKey, *text.FontSource]
	faces   *cache.Cache[Descriptor, text.Face]
}

// NewResolver creates a resolver. Failing to index system fonts is not
// fatal: the resolver logs it and falls back to the bundled fonts.
func NewResolver(opts ...Option) *Resolver {
	o := options{cacheLimit: defaultCacheLimit}
	for _, opt := range opts {
		opt(&o)
	}

	r := &Resolver{
		sources: cache.New[sourceKey, *text.FontSource](0, cache.WithOnEvict(func(_ sourceKey, s *text.FontSource) {
			_ = s.Close()
		})),
		faces: cache.New[Descriptor, text.Face](o.cacheLimit),
	}
	if o.systemFonts {
		fps, err := fontscan.SystemFonts(scanLogger{}, o.cacheDir)
		if err != nil {
			multiview.Logger().Warn("fontdesc: system fonts unavailable", "err", err)
		}
		r.footprints = fps
	}
	return r
}

// Face returns the face for d, normalized. Unknown families resolve to the
// bundled Go font with matching weight and slant.
func (r *Resolver) Face(d Descriptor) (text.Face, error) {
	r.mu.Lock()
	closed := r.closed
	r.mu.Unlock()
	if closed {
		return nil, ErrClosed
	}

	d = d.Normalize()
	return r.faces.GetOrLoad(d, func() (text.Face, error) {
		src, err := r.source(d)
		if err != nil {
			return nil, err
		}
		return src.Face(d.Size), nil
	})
}

// FaceFor parses s and resolves it. Malformed descriptors are logged and
// resolved with whatever could be parsed.
func (r *Resolver) FaceFor(s string) (text.Face, error) {
	d, err := Parse(s)
	if err != nil {
		multiview.Logger().Warn("fontdesc: using fallback for font", "font", s, "err", err)
	}
	return r.Face(d)
}

// Stats reports face cache statistics.
func (r *Resolver) Stats() cache.Stats {
	return r.faces.Stats()
}

// Close releases every parsed font. Faces handed out become invalid.
func (r *Resolver) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return nil
	}
	r.closed = true
	r.faces.Clear()
	r.sources.Clear()
	return nil
}

func (r *Resolver) source(d Descriptor) (*text.FontSource, error) {
	if d.Family != "" {
		if loc, ok := pickFootprint(r.footprints, d); ok {
			key := sourceKey{file: loc.File, index: int(loc.Index)}
			src, err := r.sources.GetOrLoad(key, func() (*text.FontSource, error) {
				return text.NewFontSourceFromFile(loc.File, text.WithCollectionIndex(int(loc.Index)))
			})
			if err == nil {
				return src, nil
			}
			multiview.Logger().Warn("fontdesc: system font unusable", "family", d.Family, "file", loc.File, "err", err)
		} else {
			multiview.Logger().Debug("fontdesc: family not found, using bundled font", "family", d.Family)
		}
	}

	style := styleOf(d)
	return r.sources.GetOrLoad(sourceKey{style: style}, func() (*text.FontSource, error) {
		src, err := text.NewFontSource(style.ttf())
		if err != nil {
			return nil, fmt.Errorf("fontdesc: bundled %s font: %w", style, err)
		}
		return src, nil
	})
}

type builtinStyle uint8

const (
	styleRegular builtinStyle = iota
	styleBold
	styleItalic
	styleBoldItalic
)

func styleOf(d Descriptor) builtinStyle {
	switch {
	case d.Bold && d.Italic:
		return styleBoldItalic
	case d.Bold:
		return styleBold
	case d.Italic:
		return styleItalic
	default:
		return styleRegular
	}
}

func (s builtinStyle) ttf() []byte {
	switch s {
	case styleBold:
		return gobold.TTF
	case styleItalic:
		return goitalic.TTF
	case styleBoldItalic:
		return gobolditalic.TTF
	default:
		return goregular.TTF
	}
}

func (s builtinStyle) String() string {
	return [...]string{"regular", "bold", "italic", "bold italic"}[s]
}

// pickFootprint chooses the installed face of d's family closest to its
// weight and slant. Slant mismatches cost more than weight distance.
func pickFootprint(fps []fontscan.Footprint, d Descriptor) (fontscan.Location, bool) {
	family := font.NormalizeFamily(d.Family)
	wantWeight := font.WeightNormal
	if d.Bold {
		wantWeight = font.WeightBold
	}
	wantStyle := font.StyleNormal
	if d.Italic {
		wantStyle = font.StyleItalic
	}

	best, bestScore := -1, float32(0)
	for i, fp := range fps {
		if fp.Family != family {
			continue
		}
		style := fp.Aspect.Style
		if style == 0 {
			style = font.StyleNormal
		}
		weight := fp.Aspect.Weight
		if weight == 0 {
			weight = font.WeightNormal
		}
		score := float32(weight - wantWeight)
		if score < 0 {
			score = -score
		}
		if style != wantStyle {
			score += 1000
		}
		if best < 0 || score < bestScore {
			best, bestScore = i, score
		}
	}
	if best < 0 {
		return fontscan.Location{}, false
	}
	return fps[best].Location, true
}

// scanLogger routes fontscan warnings to the multiview logger.
type scanLogger struct{}

func (scanLogger) Printf(format string, args ...interface{}) {
	multiview.Logger().Debug("fontscan: " + fmt.Sprintf(format, args...))
}
