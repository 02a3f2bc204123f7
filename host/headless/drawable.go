package headless

import (
	"image"
	"sync"
)

// ImageDrawable is a drawable backed by an image. Sources can swap the
// image at any time to simulate live video.
type ImageDrawable struct {
	mu        sync.RWMutex
	img       image.Image
	owner     *Host
	destroyed bool
}

// Size implements compositor.Drawable. A nil image has size zero.
func (d *ImageDrawable) Size() (w, h int) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.img == nil {
		return 0, 0
	}
	b := d.img.Bounds()
	return b.Dx(), b.Dy()
}

// SetImage replaces the current frame.
func (d *ImageDrawable) SetImage(img image.Image) {
	d.mu.Lock()
	d.img = img
	d.mu.Unlock()
}

// Image returns the current frame.
func (d *ImageDrawable) Image() image.Image {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.img
}

// Destroy releases a text drawable. Sources are owned by the host and
// ignore Destroy.
func (d *ImageDrawable) Destroy() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.owner == nil || d.destroyed {
		return
	}
	d.destroyed = true
	d.img = nil
	d.owner.drawables.Add(-1)
}
