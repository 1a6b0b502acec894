package chess

import (
	"fmt"
	"time"
)

// MoveRecord is one accepted move, with the scores as they stood before it.
type MoveRecord struct {
	TimeStamp    time.Time
	Step         int
	Player       Turn
	MoveEdge     Edge
	Player1Score int
	Player2Score int
}

func (r MoveRecord) String() string {
	return fmt.Sprintf("%s Step: %d, Player: %s, Edge: %s, Score: %d:%d",
		r.TimeStamp.Format(time.DateTime), r.Step, r.Player, r.MoveEdge, r.Player1Score, r.Player2Score)
}

type BoxClaim struct {
	Box   Box  `json:"box"`
	X     int  `json:"x"`
	Y     int  `json:"y"`
	Owner Turn `json:"owner"`
}

func NewBoxClaim(box Box, owner Turn) BoxClaim {
	return BoxClaim{Box: box, X: box.X(), Y: box.Y(), Owner: owner}
}

type EdgeClaim struct {
	Edge  Edge `json:"edge"`
	X1    int  `json:"x1"`
	Y1    int  `json:"y1"`
	X2    int  `json:"x2"`
	Y2    int  `json:"y2"`
	Owner Turn `json:"owner"`
}

func NewEdgeClaim(e Edge, owner Turn) EdgeClaim {
	return EdgeClaim{
		Edge:  e,
		X1:    e.Dot1().X(),
		Y1:    e.Dot1().Y(),
		X2:    e.Dot2().X(),
		Y2:    e.Dot2().Y(),
		Owner: owner,
	}
}

// MoveResult describes what one accepted claim changed.
type MoveResult struct {
	Step           int        `json:"step"`
	Edge           Edge       `json:"edge"`
	Player         Turn       `json:"player"`
	CompletedBoxes []BoxClaim `json:"completedBoxes"`
	NextPlayer     Turn       `json:"nextPlayer"`
	Player1Score   int        `json:"player1Score"`
	Player2Score   int        `json:"player2Score"`
	GameOver       bool       `json:"gameOver"`
	// Winner is only meaningful when GameOver is set; Draw means a tie.
	Winner Turn `json:"winner"`
}

// TurnChanged reports whether the move passed the turn to the opponent.
func (r MoveResult) TurnChanged() bool {
	return r.NextPlayer != r.Player
}
