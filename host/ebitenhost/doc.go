// Package ebitenhost shows a multiview window on screen with ebiten.
//
// Frames are composited by a headless host into a CPU framebuffer and
// uploaded to an ebiten image once per frame. The window is resizable;
// F11 toggles fullscreen and Escape closes it.
package ebitenhost
