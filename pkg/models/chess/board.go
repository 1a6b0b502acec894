package chess

import "fmt"

// Board is the set of claimed edges of one lattice, with the player that claimed each.
type Board struct {
	BoardSize int
	Edges     map[Edge]Turn
}

func NewBoard(boardSize int) (newBoard Board, err error) {
	if boardSize < 2 || boardSize > MaxBoardSize {
		return Board{}, fmt.Errorf("%w: %d, want 2..%d", ErrInvalidBoardSize, boardSize, MaxBoardSize)
	}

	return Board{
		BoardSize: boardSize,
		Edges:     make(map[Edge]Turn, len(Edges(boardSize))),
	}, nil
}

func (b Board) Contains(e Edge) bool {
	_, c := b.Edges[e]
	return c
}

// Owner returns the player that claimed e.
func (b Board) Owner(e Edge) (Turn, bool) {
	t, c := b.Edges[e]
	return t, c
}

func (b Board) EdgesCountInBox(box Box) (count int) {
	boxEdges := box.Edges()
	for _, e := range boxEdges {
		if b.Contains(e) {
			count++
		}
	}
	return
}

func (b Board) TotalEdgesCount() int {
	return len(Edges(b.BoardSize))
}

func (b Board) FreeEdgesCount() int {
	return b.TotalEdgesCount() - len(b.Edges)
}

func (b Board) FreeEdges() (freeEdges []Edge) {
	allEdges := Edges(b.BoardSize)
	for _, e := range allEdges {
		if !b.Contains(e) {
			freeEdges = append(freeEdges, e)
		}
	}
	return
}

// ObtainsBoxes returns the boxes that claiming the free edge e would complete.
func (b Board) ObtainsBoxes(e Edge) (obtainsBoxes []Box) {
	if b.Contains(e) {
		return
	}

	boxes := e.NearBoxes(b.BoardSize)
	for _, box := range boxes {
		if b.EdgesCountInBox(box) == 3 {
			obtainsBoxes = append(obtainsBoxes, box)
		}
	}
	return
}
