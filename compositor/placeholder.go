package compositor

import (
	"github.com/gogpu/gpucontext"

	"github.com/gogpu/multiview/overlay"
)

// iconCache holds the placeholder icon texture for one size. A failed
// rasterization is retried on the next frame; failing tracks whether the
// last attempt failed so the failure is reported once.
type iconCache struct {
	size    int
	tex     gpucontext.Texture
	failing bool
}

func (ic *iconCache) get(tc gpucontext.TextureCreator, icon overlay.Icon, size int) (gpucontext.Texture, error) {
	if ic.tex != nil && ic.size == size {
		return ic.tex, nil
	}
	ic.release()
	if tc == nil {
		return nil, nil
	}

	img, err := icon.Rasterize(size)
	if err != nil {
		return nil, err
	}
	b := img.Bounds()
	tex, err := tc.NewTextureFromRGBA(b.Dx(), b.Dy(), img.Pix)
	if err != nil {
		return nil, err
	}
	markPremultiplied(tex)
	ic.size = size
	ic.tex = tex
	return tex, nil
}

func (ic *iconCache) release() {
	if ic.tex != nil {
		destroy(ic.tex)
		ic.tex = nil
	}
	ic.size = 0
}

// placeholderSize is the icon edge for a cx x cy surface: half the shorter
// side, never below minIconSize.
func placeholderSize(cx, cy int) int {
	return max(min(cx, cy)/2, minIconSize)
}

// drawPlaceholder draws the cell icon centered in the surface. Caller must
// hold c.mu.
func (c *Compositor) drawPlaceholder(t Target, cx, cy int) {
	if c.icon == nil {
		return
	}
	size := placeholderSize(cx, cy)
	tex, err := c.placeholder.get(t.TextureCreator(), c.icon, size)
	if err != nil {
		if !c.placeholder.failing {
			c.logger().Warn("compositor: placeholder icon failed", "size", size, "err", err)
		}
		c.placeholder.failing = true
		return
	}
	c.placeholder.failing = false
	if tex == nil {
		return
	}
	x := (cx - tex.Width()) / 2
	y := (cy - tex.Height()) / 2
	if err := t.DrawTexture(tex, float32(x), float32(y)); err != nil {
		c.logger().Debug("compositor: placeholder draw failed", "err", err)
	}
}
