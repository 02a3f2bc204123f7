package grid

import "slices"

// Selection is a set of grid positions. It is independent of cell
// boundaries and may cover parts of several cells.
// The zero value is an empty selection ready to use.
type Selection struct {
	set map[Position]struct{}
}

// NewSelection returns a selection holding ps.
func NewSelection(ps ...Position) Selection {
	var s Selection
	for _, p := range ps {
		s.Add(p)
	}
	return s
}

// RectSelection returns the selection of every position in the rectangle
// spanned by corners a and b, in either order.
func RectSelection(a, b Position) Selection {
	var s Selection
	for r := min(a.Row, b.Row); r <= max(a.Row, b.Row); r++ {
		for c := min(a.Col, b.Col); c <= max(a.Col, b.Col); c++ {
			s.Add(Position{Row: r, Col: c})
		}
	}
	return s
}

// Add inserts p.
func (s *Selection) Add(p Position) {
	if s.set == nil {
		s.set = make(map[Position]struct{})
	}
	s.set[p] = struct{}{}
}

// Remove deletes p.
func (s *Selection) Remove(p Position) {
	delete(s.set, p)
}

// Toggle adds p when absent and removes it when present.
func (s *Selection) Toggle(p Position) {
	if s.Contains(p) {
		s.Remove(p)
		return
	}
	s.Add(p)
}

// Contains reports whether p is selected.
func (s Selection) Contains(p Position) bool {
	_, ok := s.set[p]
	return ok
}

// Len returns the number of selected positions.
func (s Selection) Len() int { return len(s.set) }

// Empty reports whether nothing is selected.
func (s Selection) Empty() bool { return len(s.set) == 0 }

// Clone returns an independent copy of s.
func (s Selection) Clone() Selection {
	var c Selection
	for p := range s.set {
		c.Add(p)
	}
	return c
}

// Positions returns the selected positions in row-major order.
func (s Selection) Positions() []Position {
	ps := make([]Position, 0, len(s.set))
	for p := range s.set {
		ps = append(ps, p)
	}
	slices.SortFunc(ps, func(a, b Position) int {
		if a.Row != b.Row {
			return a.Row - b.Row
		}
		return a.Col - b.Col
	})
	return ps
}

// Bounds returns the smallest span covering the selection. ok is false for
// an empty selection.
func (s Selection) Bounds() (top, left, rows, cols int, ok bool) {
	if len(s.set) == 0 {
		return 0, 0, 0, 0, false
	}
	first := true
	var minR, maxR, minC, maxC int
	for p := range s.set {
		if first {
			minR, maxR, minC, maxC = p.Row, p.Row, p.Col, p.Col
			first = false
			continue
		}
		minR, maxR = min(minR, p.Row), max(maxR, p.Row)
		minC, maxC = min(minC, p.Col), max(maxC, p.Col)
	}
	return minR, minC, maxR - minR + 1, maxC - minC + 1, true
}

// IsFilledRect reports whether the selection is non-empty and contains
// every position of its bounding rectangle.
func (s Selection) IsFilledRect() bool {
	top, left, rows, cols, ok := s.Bounds()
	if !ok || rows*cols != len(s.set) {
		return false
	}
	for r := top; r < top+rows; r++ {
		for c := left; c < left+cols; c++ {
			if !s.Contains(Position{Row: r, Col: c}) {
				return false
			}
		}
	}
	return true
}
