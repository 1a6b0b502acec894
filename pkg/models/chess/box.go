package chess

import "sync"

// Box is a unit cell, identified by its top-left dot.
type Box Dot

func (b Box) X() int { return Dot(b).X() }

func (b Box) Y() int { return Dot(b).Y() }

func (b Box) String() string { return Dot(b).String() }

func (b Box) Valid(boardSize int) bool {
	return b >= 0 && b.X() < boardSize-1 && b.Y() < boardSize-1
}

func (b Box) Dots() [4]Dot {
	x := b.X()
	y := b.Y()

	return [...]Dot{
		NewDot(x, y),
		NewDot(x+1, y),
		NewDot(x, y+1),
		NewDot(x+1, y+1),
	}
}

// Edges returns the bounding edges in top, right, bottom, left order.
func (b Box) Edges() [4]Edge {
	x := b.X()
	y := b.Y()

	D00 := NewDot(x, y)
	D10 := NewDot(x+1, y)
	D01 := NewDot(x, y+1)
	D11 := NewDot(x+1, y+1)

	return [...]Edge{
		NewEdge(D00, D10),
		NewEdge(D10, D11),
		NewEdge(D01, D11),
		NewEdge(D00, D01),
	}
}

var (
	boxesMu  sync.Mutex
	boxesMap = make(map[int][]Box)
)

// Boxes returns every box of the board. The slice is shared; do not modify it.
func Boxes(boardSize int) (boxes []Box) {
	boxesMu.Lock()
	defer boxesMu.Unlock()

	if res, c := boxesMap[boardSize]; c {
		return res
	}

	for i := 0; i < boardSize-1; i++ {
		for j := 0; j < boardSize-1; j++ {
			boxes = append(boxes, Box(NewDot(i, j)))
		}
	}

	boxesMap[boardSize] = boxes
	return
}
