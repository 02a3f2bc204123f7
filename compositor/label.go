package compositor

import (
	"image/color"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/multiview/fontdesc"
	"github.com/gogpu/multiview/geom"
	"github.com/gogpu/multiview/grid"
	"github.com/gogpu/multiview/overlay"
)

// A failing label is recreated on every frame for the first
// labelRetryBurst attempts, then once every labelRetryInterval frames.
const (
	labelRetryBurst    = 8
	labelRetryInterval = 30
)

// labelColor is the label text color.
var labelColor = color.White

// createLabel builds the label drawable for the current cell. A cell
// without label text gets no drawable. Caller must hold c.mu and the host
// lock.
func (c *Compositor) createLabel() {
	txt := c.cell.LabelText()
	if txt == "" {
		return
	}

	font, err := fontdesc.Parse(c.cell.Label.Font)
	if err != nil {
		c.logger().Warn("compositor: malformed label font, using defaults",
			"font", c.cell.Label.Font, "err", err)
	}
	font = font.Normalize()

	d, err := c.host.CreateTextDrawable(txt, font, labelColor)
	if err != nil {
		c.labelAttempts++
		if c.labelAttempts >= labelRetryBurst {
			c.labelWait = labelRetryInterval
		}
		log := c.logger()
		if c.labelAttempts == 1 {
			log.Warn("compositor: label creation failed", "text", txt, "err", err)
		} else {
			log.Debug("compositor: label creation failed",
				"text", txt, "attempt", c.labelAttempts, "err", err)
		}
		return
	}
	c.label = d
	c.labelAttempts = 0
	c.labelWait = 0
}

// labelRect places a w x h label inside a cx x cy surface according to the
// alignment in style.
func labelRect(style grid.LabelStyle, w, h, cx, cy, pad int) geom.Rect {
	r := geom.Rect{W: w, H: h}
	switch style.HAlign {
	case grid.AlignLeft:
		r.X = pad
	case grid.AlignRight:
		r.X = cx - w - pad
	default:
		r.X = (cx - w) / 2
	}
	switch style.VAlign {
	case grid.AlignTop:
		r.Y = pad
	case grid.AlignMiddle:
		r.Y = (cy - h) / 2
	default:
		r.Y = cy - h - pad
	}
	return r
}

// drawLabel draws the backdrop and label text. Caller must hold c.mu.
func (c *Compositor) drawLabel(t Target, cx, cy int) {
	if c.label == nil {
		if c.cell.LabelText() == "" {
			return
		}
		if c.labelWait > 0 {
			c.labelWait--
			return
		}
		c.createLabel()
		if c.label == nil {
			return
		}
	}

	lw, lh := c.label.Size()
	if lw <= 0 || lh <= 0 {
		return
	}
	r := labelRect(c.cell.Label, lw, lh, cx, cy, c.opts.labelPadding)

	if bg := c.cell.Label.Background; bg.A > 0 {
		bw, bh := lw+2*backdropPadding, lh+2*backdropPadding
		tex := c.backdrop.get(t.TextureCreator(), bw, bh, bg)
		if tex == nil {
			c.logger().Debug("compositor: backdrop unavailable")
		} else if err := t.DrawTexture(tex, float32(r.X-backdropPadding), float32(r.Y-backdropPadding)); err != nil {
			c.logger().Debug("compositor: backdrop draw failed", "err", err)
		}
	}

	if err := t.RenderDrawable(c.label, r); err != nil {
		c.logger().Debug("compositor: label draw failed", "err", err)
	}
}

type backdropKey struct {
	w, h int
	col  color.NRGBA
}

// backdropCache holds the rounded-rectangle texture behind the label,
// regenerated when its size or color changes.
type backdropCache struct {
	key backdropKey
	tex gpucontext.Texture
}

func (b *backdropCache) get(tc gpucontext.TextureCreator, w, h int, col color.NRGBA) gpucontext.Texture {
	key := backdropKey{w: w, h: h, col: col}
	if b.tex != nil && b.key == key {
		return b.tex
	}
	b.release()
	if tc == nil {
		return nil
	}

	img, err := overlay.RoundedRect(w, h, backdropRadius, col)
	if err != nil {
		return nil
	}
	tex, err := tc.NewTextureFromRGBA(w, h, img.Pix)
	if err != nil {
		return nil
	}
	markPremultiplied(tex)
	b.key = key
	b.tex = tex
	return tex
}

func (b *backdropCache) release() {
	if b.tex != nil {
		destroy(b.tex)
		b.tex = nil
	}
	b.key = backdropKey{}
}

// markPremultiplied flags a texture whose pixels come from gg, which
// produces premultiplied RGBA.
func markPremultiplied(tex gpucontext.Texture) {
	if pm, ok := tex.(interface{ SetPremultiplied(bool) }); ok {
		pm.SetPremultiplied(true)
	}
}
