package chess

import (
	"cmp"
	"slices"
)

// Snapshot is a self-contained copy of a game's state for rendering collaborators.
type Snapshot struct {
	GameUid       string      `json:"gameUid"`
	BoardSize     int         `json:"boardSize"`
	Edges         []EdgeClaim `json:"edges"`
	Boxes         []BoxClaim  `json:"boxes"`
	CurrentPlayer Turn        `json:"currentPlayer"`
	Player1Score  int         `json:"player1Score"`
	Player2Score  int         `json:"player2Score"`
	StepCount     int         `json:"stepCount"`
	TotalEdges    int         `json:"totalEdges"`
	State         State       `json:"state"`
	Winner        Turn        `json:"winner"`
}

func (g *Game) Snapshot() Snapshot {
	edges := make([]EdgeClaim, 0, len(g.board.Edges))
	for e, owner := range g.board.Edges {
		edges = append(edges, NewEdgeClaim(e, owner))
	}
	slices.SortFunc(edges, func(a, b EdgeClaim) int { return cmp.Compare(a.Edge, b.Edge) })

	boxes := make([]BoxClaim, 0, len(g.boxOwners))
	for box, owner := range g.boxOwners {
		boxes = append(boxes, NewBoxClaim(box, owner))
	}
	slices.SortFunc(boxes, func(a, b BoxClaim) int { return cmp.Compare(a.Box, b.Box) })

	return Snapshot{
		GameUid:       g.uid,
		BoardSize:     g.board.BoardSize,
		Edges:         edges,
		Boxes:         boxes,
		CurrentPlayer: g.nowPlayer,
		Player1Score:  g.player1Score,
		Player2Score:  g.player2Score,
		StepCount:     g.StepCount(),
		TotalEdges:    g.TotalEdgesCount(),
		State:         g.State(),
		Winner:        g.winner,
	}
}

// EdgeOwner looks up the owner of e in the snapshot.
func (s Snapshot) EdgeOwner(e Edge) (Turn, bool) {
	i, found := slices.BinarySearchFunc(s.Edges, e, func(c EdgeClaim, e Edge) int { return cmp.Compare(c.Edge, e) })
	if !found {
		return Draw, false
	}
	return s.Edges[i].Owner, true
}

// BoxOwner looks up the owner of box in the snapshot.
func (s Snapshot) BoxOwner(box Box) (Turn, bool) {
	i, found := slices.BinarySearchFunc(s.Boxes, box, func(c BoxClaim, b Box) int { return cmp.Compare(c.Box, b) })
	if !found {
		return Draw, false
	}
	return s.Boxes[i].Owner, true
}
