// Package headless is a software multiview host.
//
// [Host] keeps named image sources, creates label drawables with gg and
// hands out CPU textures. [Window] owns an *image.RGBA framebuffer and the
// cell surfaces laid out on it; [Window.Draw] runs one frame under the
// graphics lock the way a windowing host would, which makes the package
// suitable for tests, snapshots and offscreen rendering.
//
// Surfaces become realized at the end of the first frame drawn after they
// were created, mirroring a native window that is only usable once shown.
package headless
