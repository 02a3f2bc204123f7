// Package geom holds the integer geometry shared by the grid, layout and
// compositor packages.
//
// Both calculations are pure functions over pixel sizes. [FitAndCenter]
// places arbitrary-aspect content inside a box. [GridMetrics] chooses a
// cell size so that a rows x cols grid tiles the window at exact integer
// pixel boundaries.
package geom
