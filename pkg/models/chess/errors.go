package chess

import "errors"

var (
	ErrInvalidBoardSize = errors.New("invalid board size")
	ErrInvalidEdge      = errors.New("invalid edge")
	ErrAlreadyClaimed   = errors.New("edge already claimed")
	ErrInvalidTurn      = errors.New("not this player's turn")
	ErrGameOver         = errors.New("game over")
)
