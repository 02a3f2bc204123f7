// Package layout places grid cells inside a multiview window.
//
// A [Controller] turns a [grid.Layout] and a window size into one
// rectangle per cell (see [CellRect]), creates a surface and a
// [compositor.Compositor] for every cell, and keeps their geometry in step
// with window resizes. Compositors are activated in two phases: Build binds
// them to freshly created surfaces, and [Controller.ActivatePending] is
// called again until the host reports every surface as realized.
//
// The window chrome is a black background and separator lines drawn only
// where neighbouring positions belong to different cells, so the inside of
// a merged cell is never crossed by a line. [Separators] computes those
// segments; [Controller.Paint] draws them through a [Painter].
package layout
