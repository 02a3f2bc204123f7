// Package compositor renders one grid cell into a host drawing surface.
//
// A [Compositor] is a small state machine:
//
//	Uninitialized -> Bound -> Active <-> ContentChanged
//	                              \-> TornDown
//
// [Compositor.Bind] attaches a surface and a cell. [Compositor.Activate]
// registers the draw callback once the host reports the surface as
// realized; until then the compositor stays Bound and the caller retries.
// [Compositor.Update] swaps the cell configuration, rebuilding the label
// outside the render callback under the host graphics lock.
//
// On every frame the host invokes the draw callback with the surface size.
// The compositor resolves its content by name (never cached across frames),
// draws it aspect-fit and letterboxed, then draws the label and backdrop,
// or the placeholder icon. Missing content, zero-size drawables and
// texture failures skip the element for that frame and are logged at
// debug level; nothing during rendering is fatal.
//
// The host is reached only through the [Host], [Surface] and [Target]
// interfaces. Textures are created through gpucontext.TextureCreator and
// released through an optional Destroy method, following gg's ggcanvas
// integration.
package compositor
