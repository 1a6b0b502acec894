package chess

import (
	"fmt"
	"sync"
)

const (
	E        = D << 1
	edgeMod  = 1 << E
	edgeMask = edgeMod - 1
)

// Edge is a segment between two lattice-adjacent dots, packed as (Dot1 << E) + Dot2 with Dot1 < Dot2.
type Edge int

// NewEdge normalizes the endpoints so that the same segment always has the same key.
func NewEdge(Dot1, Dot2 Dot) Edge {
	if Dot1 > Dot2 {
		Dot1, Dot2 = Dot2, Dot1
	}
	return Edge((Dot1 << E) + Dot2)
}

// ParseEdge builds an edge from raw lattice coordinates, in either direction.
func ParseEdge(boardSize, x1, y1, x2, y2 int) (Edge, error) {
	for _, c := range [...]int{x1, y1, x2, y2} {
		if c < 0 || c >= boardSize || c >= MaxBoardSize {
			return 0, fmt.Errorf("%w: (%d, %d) -> (%d, %d) is off the %dx%d board", ErrInvalidEdge, x1, y1, x2, y2, boardSize, boardSize)
		}
	}

	e := NewEdge(NewDot(x1, y1), NewDot(x2, y2))
	if !e.Valid(boardSize) {
		return 0, fmt.Errorf("%w: (%d, %d) and (%d, %d) are not adjacent", ErrInvalidEdge, x1, y1, x2, y2)
	}
	return e, nil
}

func (e Edge) Dot1() Dot {
	return Dot(e) >> E
}

func (e Edge) Dot2() Dot {
	return Dot(e) & edgeMask
}

func (e Edge) String() string {
	return fmt.Sprintf("(%d, %d) -> (%d, %d)", e.Dot1().X(), e.Dot1().Y(), e.Dot2().X(), e.Dot2().Y())
}

// Horizontal reports whether both endpoints share a row.
func (e Edge) Horizontal() bool {
	return e.Dot1().Y() == e.Dot2().Y()
}

// Valid reports whether e is a canonical edge of a boardSize lattice.
func (e Edge) Valid(boardSize int) bool {
	if e < 0 || e != NewEdge(e.Dot1(), e.Dot2()) {
		return false
	}

	d1, d2 := e.Dot1(), e.Dot2()
	if !d1.Valid(boardSize) || !d2.Valid(boardSize) {
		return false
	}

	dx := d2.X() - d1.X()
	dy := d2.Y() - d1.Y()
	return (dx == 1 && dy == 0) || (dx == 0 && dy == 1)
}

// NearBoxes returns the boxes bounded by e: two for inner edges, one on the border.
func (e Edge) NearBoxes(boardSize int) (nearBoxes []Box) {
	x, y := e.Dot1().X(), e.Dot1().Y()

	var candidates [2]Dot
	if e.Horizontal() {
		candidates = [...]Dot{NewDot(x, y-1), NewDot(x, y)}
		if y == 0 {
			candidates[0] = -1
		}
	} else {
		candidates = [...]Dot{NewDot(x-1, y), NewDot(x, y)}
		if x == 0 {
			candidates[0] = -1
		}
	}

	for _, d := range candidates {
		if Box(d).Valid(boardSize) {
			nearBoxes = append(nearBoxes, Box(d))
		}
	}
	return
}

var (
	edgesMu  sync.Mutex
	edgesMap = make(map[int][]Edge)
)

// Edges returns every edge of the lattice in (x, y) order. The slice is shared; do not modify it.
func Edges(boardSize int) (edges []Edge) {
	edgesMu.Lock()
	defer edgesMu.Unlock()

	if res, c := edgesMap[boardSize]; c {
		return res
	}

	for i := 0; i < boardSize; i++ {
		for j := 0; j < boardSize; j++ {
			d := NewDot(i, j)
			if i+1 < boardSize {
				edges = append(edges, NewEdge(d, NewDot(i+1, j)))
			}

			if j+1 < boardSize {
				edges = append(edges, NewEdge(d, NewDot(i, j+1)))
			}
		}
	}

	edgesMap[boardSize] = edges
	return
}
