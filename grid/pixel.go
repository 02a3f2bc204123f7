package grid

// PositionFromPixel maps a point in a w x h editor area divided into
// rows x cols equal cells to a grid position. Points past the last cell
// clamp to the edge. ok is false when the area is too small to give every
// cell a pixel.
func PositionFromPixel(x, y, w, h, rows, cols int) (p Position, ok bool) {
	if rows < 1 || cols < 1 {
		return Position{}, false
	}
	cellW, cellH := w/cols, h/rows
	if cellW <= 0 || cellH <= 0 {
		return Position{}, false
	}
	return Position{
		Row: clamp(y/cellH, 0, rows-1),
		Col: clamp(x/cellW, 0, cols-1),
	}, true
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
