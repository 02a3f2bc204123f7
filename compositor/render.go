package compositor

import (
	"github.com/gogpu/multiview/geom"
	"github.com/gogpu/multiview/grid"
)

// Render draws one frame of the cell into t. It is installed as the
// surface draw callback by Activate; hosts call it with their graphics
// lock held. Frames are skipped unless the compositor is Active and the
// surface has a positive size.
func (c *Compositor) Render(t Target, cx, cy int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateActive || cx <= 0 || cy <= 0 {
		return
	}

	switch c.cell.Content.Kind {
	case grid.KindNone:
		return
	case grid.KindPreview, grid.KindProgram:
		if d, ok := c.host.LookupDrawable(c.cell.Content.Kind, ""); ok {
			bw, bh := c.host.BaseResolution()
			c.drawFitted(t, d, bw, bh, cx, cy)
		}
	case grid.KindCanvas:
		c.drawCanvas(t, cx, cy)
	case grid.KindScene, grid.KindSource:
		if d, ok := c.host.LookupDrawable(c.cell.Content.Kind, c.cell.Content.Name); ok {
			w, h := d.Size()
			c.drawFitted(t, d, w, h, cx, cy)
		} else {
			c.logger().Debug("compositor: content not found", "content", c.cell.Content.String())
		}
	case grid.KindPlaceholder:
		c.drawPlaceholder(t, cx, cy)
	}

	c.drawLabel(t, cx, cy)
}

// drawCanvas renders canvas content. The main canvas falls back to the
// program feed; a named canvas that does not exist draws nothing.
func (c *Compositor) drawCanvas(t Target, cx, cy int) {
	name := c.cell.Content.Name
	if name == "" {
		d, ok := c.host.LookupDrawable(grid.KindCanvas, "")
		if !ok {
			d, ok = c.host.LookupDrawable(grid.KindProgram, "")
		}
		if ok {
			bw, bh := c.host.BaseResolution()
			c.drawFitted(t, d, bw, bh, cx, cy)
		}
		return
	}

	d, ok := c.host.LookupDrawable(grid.KindCanvas, name)
	if !ok {
		c.logger().Debug("compositor: canvas not found", "canvas", name)
		return
	}
	w, h := d.Size()
	c.drawFitted(t, d, w, h, cx, cy)
}

// drawFitted draws d, whose content is w x h, aspect-fit and centered in a
// cx x cy surface.
func (c *Compositor) drawFitted(t Target, d Drawable, w, h, cx, cy int) {
	fit, ok := geom.FitAndCenter(w, h, cx, cy)
	if !ok {
		c.logger().Debug("compositor: zero-size content skipped",
			"content", c.cell.Content.String(), "w", w, "h", h)
		return
	}
	if err := t.RenderDrawable(d, fit.Viewport()); err != nil {
		c.logger().Debug("compositor: render failed", "content", c.cell.Content.String(), "err", err)
	}
}
