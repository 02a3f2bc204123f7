// Package editor is an interactive terminal grid editor built on tcell.
//
// It edits a [grid.Model]: moving a cursor or clicking selects positions,
// shift-moves and mouse drags select rectangles, space toggles a position
// in or out of the selection, and single keys merge, split, resize the grid
// and assign content to the selected cell. Cells are separated the same
// way the multiview window separates them, so merged cells show no
// interior lines.
package editor
