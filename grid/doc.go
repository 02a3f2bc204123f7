// Package grid models a multiview grid: cells with spans, the derived
// ownership map, the operator's selection, and the edit operations that
// merge, reset and resize cells.
//
// A valid [Layout] tiles rows x cols exactly: every position is covered by
// one cell span and spans never overlap. Every edit operation either keeps
// that invariant or is rejected before it mutates anything. [Model] wraps a
// Layout with a cached [Ownership] map and a [Selection] and is the type the
// editor works against.
//
// Grid types are plain values. Compositors receive copies of [Cell] and
// never share state with the Model.
package grid
