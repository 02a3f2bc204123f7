// Package multiview composites live video feeds into arbitrary-shaped grids.
//
// # Overview
//
// An operator describes a logical grid of cells. Cells can be merged into
// rectangular spans, reset back to 1x1 cells, and assigned a content
// reference (preview, program, a canvas, a named scene or source, or a
// placeholder). The grid is mapped onto a physical window with exact integer
// pixel alignment and each cell renders its content aspect-fit into its
// rectangle, with a label and placeholder icon on top.
//
// # Architecture
//
// The module is organized leaves first:
//   - geom: aspect-fit and grid metric calculations (pure functions)
//   - grid: cells, ownership map, selection, merge/reset/resize editing
//   - overlay: gg-based rasterizers for label text, label backdrops and icons
//   - compositor: per-cell render state machine driven by a host draw loop
//   - layout: window layout controller, surface binding, separator lines
//   - host/headless, host/ebitenhost: concrete hosts
//
// The host video API is an external collaborator reached only through the
// interfaces in package compositor.
//
// # Logging
//
// All packages log through the logger configured with [SetLogger]. By default
// nothing is logged.
package multiview

// Version is the current version of the module.
const Version = "0.3.0"
