package ui

import (
	"math"

	"github.com/HuXin0817/dots-and-boxes-engine/pkg/models/chess"
)

// EdgePosition returns the pixel endpoints of e.
func (l Layout) EdgePosition(e chess.Edge) (x1, y1, x2, y2 float32) {
	x1, y1 = l.DotPosition(e.Dot1())
	x2, y2 = l.DotPosition(e.Dot2())
	return
}

// Snap maps a pointer position to the nearest horizontal or vertical edge. Positions that
// are not within half a cell of a dot, or whose edge would leave the board, resolve to nothing.
func (l Layout) Snap(x, y float32) (chess.Edge, bool) {
	if l.BoardSize < 2 || l.DotDistance <= 0 {
		return 0, false
	}

	col := int(math.Round(float64((x - l.DotMargin) / l.DotDistance)))
	row := int(math.Round(float64((y - l.DotMargin) / l.DotDistance)))
	if col < 0 || row < 0 || col >= l.BoardSize || row >= l.BoardSize {
		return 0, false
	}

	dx := x - l.getPosition(col)
	dy := y - l.getPosition(row)
	half := l.DotDistance / 2
	if abs(dx) >= half || abs(dy) >= half {
		return 0, false
	}

	if abs(dx) > abs(dy) {
		if dx < 0 {
			col--
		}
		if col < 0 || col+1 >= l.BoardSize {
			return 0, false
		}
		return chess.NewEdge(chess.NewDot(col, row), chess.NewDot(col+1, row)), true
	}

	if dy < 0 {
		row--
	}
	if row < 0 || row+1 >= l.BoardSize {
		return 0, false
	}
	return chess.NewEdge(chess.NewDot(col, row), chess.NewDot(col, row+1)), true
}

// Hover returns the preview edge under the pointer, unless it is already claimed.
func (l Layout) Hover(g *chess.Game, x, y float32) (chess.Edge, bool) {
	e, ok := l.Snap(x, y)
	if !ok || g.IsLineOccupied(e) {
		return 0, false
	}
	return e, true
}

func abs(f float32) float32 {
	if f < 0 {
		return -f
	}
	return f
}
