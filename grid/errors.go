package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by edit operations.
var (
	// ErrInvalidMerge is returned when the selection is not a filled
	// rectangle, has fewer than two positions, or cuts through a cell.
	ErrInvalidMerge = errors.New("grid: selection cannot be merged")

	// ErrInvalidReset is returned when the selection is empty or neither a
	// single cell nor a filled rectangle of whole cells.
	ErrInvalidReset = errors.New("grid: selection cannot be reset")

	// ErrNoSingleCell is returned by single-cell actions when the selection
	// does not map to exactly one cell.
	ErrNoSingleCell = errors.New("grid: selection does not map to a single cell")

	// ErrInvalidDimensions is returned for grids with fewer than one row or
	// column.
	ErrInvalidDimensions = errors.New("grid: rows and columns must be at least 1")

	// ErrInvalidTiling is wrapped by every *TilingError.
	ErrInvalidTiling = errors.New("grid: cells do not tile the grid")
)

// TilingProblem classifies a *TilingError.
type TilingProblem int

const (
	// TilingGap means a position is not covered by any cell.
	TilingGap TilingProblem = iota
	// TilingOverlap means a position is covered by more than one cell.
	TilingOverlap
	// TilingOutOfBounds means a cell span leaves the grid.
	TilingOutOfBounds
	// TilingBadSpan means a cell has a span smaller than 1.
	TilingBadSpan
)

func (p TilingProblem) String() string {
	switch p {
	case TilingGap:
		return "gap"
	case TilingOverlap:
		return "overlap"
	case TilingOutOfBounds:
		return "out of bounds"
	case TilingBadSpan:
		return "bad span"
	default:
		return fmt.Sprintf("TilingProblem(%d)", int(p))
	}
}

// TilingError reports the first violation found by [Layout.Validate].
// Cell is the offending cell index, or -1 for gaps.
type TilingError struct {
	Problem TilingProblem
	Row     int
	Col     int
	Cell    int
}

func (e *TilingError) Error() string {
	if e.Cell < 0 {
		return fmt.Sprintf("grid: %s at (%d,%d)", e.Problem, e.Row, e.Col)
	}
	return fmt.Sprintf("grid: %s at (%d,%d) in cell %d", e.Problem, e.Row, e.Col, e.Cell)
}

// Unwrap makes errors.Is(err, ErrInvalidTiling) hold for every TilingError.
func (e *TilingError) Unwrap() error {
	return ErrInvalidTiling
}
