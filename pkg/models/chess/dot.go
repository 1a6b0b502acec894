package chess

import (
	"fmt"
	"sync"
)

const (
	D       = 8
	dotMod  = 1 << D
	dotMask = dotMod - 1

	// MaxBoardSize is the largest number of dots per side a packed Dot can address.
	MaxBoardSize = dotMod
)

// Dot is a lattice vertex packed as (x << D) + y, where x is the column and y the row.
type Dot int

func NewDot(x, y int) Dot {
	return Dot((x << D) + y)
}

func (d Dot) X() int {
	return int(d) >> D
}

func (d Dot) Y() int {
	return int(d) & dotMask
}

func (d Dot) Valid(boardSize int) bool {
	return d >= 0 && d.X() < boardSize && d.Y() < boardSize
}

func (d Dot) String() string {
	return fmt.Sprintf("(%d, %d)", d.X(), d.Y())
}

var (
	dotsMu  sync.Mutex
	dotsMap = make(map[int][]Dot)
)

// Dots returns every dot of a boardSize x boardSize lattice. The slice is shared; do not modify it.
func Dots(boardSize int) (dots []Dot) {
	dotsMu.Lock()
	defer dotsMu.Unlock()

	if res, c := dotsMap[boardSize]; c {
		return res
	}

	for i := 0; i < boardSize; i++ {
		for j := 0; j < boardSize; j++ {
			dots = append(dots, NewDot(i, j))
		}
	}

	dotsMap[boardSize] = dots
	return
}
